package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type JobPostingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	Create(ctx context.Context, p job.Posting) (job.Posting, error)
	Update(ctx context.Context, p job.Posting) (job.Posting, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobsNotifier is told about every posting write so live listings can
// refresh.
type JobsNotifier interface {
	NotifyJobsUpdated(action string, jobID uuid.UUID)
}

// Actor is the authenticated caller as seen by usecases.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type JobPostingInput struct {
	Title       string
	Description string
	Location    string
	Salary      *float64
	MinSalary   *float64
	MaxSalary   *float64
	Skills      []string
	Tags        []string
	Remote      *bool
	Type        string
	IsActive    *bool
}

type JobPostingUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (job.Posting, error)
	Create(ctx context.Context, actor Actor, in JobPostingInput) (job.Posting, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, in JobPostingInput) (job.Posting, error)
	Remove(ctx context.Context, actor Actor, id uuid.UUID, soft bool) error
}

type JobPostings struct {
	jobs     JobPostingRepository
	cache    SearchCache
	notifier JobsNotifier
	logger   *log.Logger
}

func NewJobPostingUsecase(jobs JobPostingRepository, cache SearchCache, notifier JobsNotifier, logger *log.Logger) *JobPostings {
	return &JobPostings{jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

func (u *JobPostings) Get(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	if id == uuid.Nil {
		return job.Posting{}, ErrNotFound
	}
	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *JobPostings) Create(ctx context.Context, actor Actor, in JobPostingInput) (job.Posting, error) {
	if actor.Role != user.RoleRecruiter {
		return job.Posting{}, ErrForbidden
	}

	p := job.Posting{ID: uuid.New(), CreatedBy: actor.UserID, IsActive: true}
	if err := applyInput(&p, in); err != nil {
		return job.Posting{}, err
	}

	created, err := u.jobs.Create(ctx, p)
	if err != nil {
		u.logf("[Jobs] create failed: %v", err)
		return job.Posting{}, ErrInternal
	}
	u.changed(ctx, "created", created.ID)
	return created, nil
}

func (u *JobPostings) Update(ctx context.Context, actor Actor, id uuid.UUID, in JobPostingInput) (job.Posting, error) {
	p, err := u.owned(ctx, actor, id)
	if err != nil {
		return job.Posting{}, err
	}
	if err := applyInput(&p, in); err != nil {
		return job.Posting{}, err
	}

	updated, err := u.jobs.Update(ctx, p)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Posting{}, ErrNotFound
		}
		u.logf("[Jobs] update failed id=%s: %v", id, err)
		return job.Posting{}, ErrInternal
	}
	u.changed(ctx, "updated", updated.ID)
	return updated, nil
}

// Remove hard-deletes a posting, or only deactivates it when soft is set.
func (u *JobPostings) Remove(ctx context.Context, actor Actor, id uuid.UUID, soft bool) error {
	if _, err := u.owned(ctx, actor, id); err != nil {
		return err
	}

	var err error
	action := "deleted"
	if soft {
		action = "deactivated"
		err = u.jobs.SetActive(ctx, id, false)
	} else {
		err = u.jobs.Delete(ctx, id)
	}
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		u.logf("[Jobs] %s failed id=%s: %v", action, id, err)
		return ErrInternal
	}
	u.changed(ctx, action, id)
	return nil
}

func (u *JobPostings) owned(ctx context.Context, actor Actor, id uuid.UUID) (job.Posting, error) {
	if actor.Role != user.RoleRecruiter {
		return job.Posting{}, ErrForbidden
	}
	p, err := u.Get(ctx, id)
	if err != nil {
		return job.Posting{}, err
	}
	if p.CreatedBy != actor.UserID {
		return job.Posting{}, ErrForbidden
	}
	return p, nil
}

func (u *JobPostings) changed(ctx context.Context, action string, id uuid.UUID) {
	if u.cache != nil {
		// one retry; stale listings otherwise live until the cache TTL
		err := u.cache.DeleteByPattern(ctx, JobsSearchPattern)
		if err != nil {
			err = u.cache.DeleteByPattern(ctx, JobsSearchPattern)
		}
		if err != nil {
			u.logf("[Jobs] cache invalidation failed, listings stale until TTL: %v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyJobsUpdated(action, id)
	}
}

func (u *JobPostings) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func applyInput(p *job.Posting, in JobPostingInput) error {
	p.Title = strings.TrimSpace(in.Title)
	p.Description = strings.TrimSpace(in.Description)
	p.Location = strings.TrimSpace(in.Location)
	if !p.HasRequiredFields() {
		return ErrInvalidInput
	}

	for _, v := range []*float64{in.Salary, in.MinSalary, in.MaxSalary} {
		if v != nil && *v < 0 {
			return ErrInvalidInput
		}
	}
	if in.MinSalary != nil && in.MaxSalary != nil && *in.MinSalary > *in.MaxSalary {
		return ErrInvalidInput
	}

	p.Salary = in.Salary
	p.MinSalary = in.MinSalary
	p.MaxSalary = in.MaxSalary
	p.Skills = cleanList(in.Skills)
	p.Tags = cleanList(in.Tags)
	p.Remote = in.Remote
	p.Type = strings.TrimSpace(in.Type)
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
