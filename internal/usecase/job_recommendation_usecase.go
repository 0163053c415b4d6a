package usecase

import (
	"context"
	"log"

	"job-board/internal/domain/user"
	"job-board/internal/search"

	"github.com/google/uuid"
)

type JobAdvisorUsecase interface {
	Recommend(ctx context.Context, actor Actor, skills string) (search.Recommendation, error)
	Match(ctx context.Context, actor Actor, skills []string) ([]search.KeywordMatch, error)
}

type recommender interface {
	Recommend(ctx context.Context, userID uuid.UUID, explicit string) (search.Recommendation, error)
	Match(ctx context.Context, skills []string) ([]search.KeywordMatch, error)
}

type JobAdvisor struct {
	rec    recommender
	logger *log.Logger
}

func NewJobAdvisorUsecase(rec recommender, logger *log.Logger) *JobAdvisor {
	return &JobAdvisor{rec: rec, logger: logger}
}

func (u *JobAdvisor) Recommend(ctx context.Context, actor Actor, skills string) (search.Recommendation, error) {
	if actor.UserID == uuid.Nil {
		return search.Recommendation{}, ErrUnauthorized
	}
	if actor.Role != user.RoleSeeker {
		return search.Recommendation{}, ErrForbidden
	}

	out, err := u.rec.Recommend(ctx, actor.UserID, skills)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Advisor] recommend failed user=%s: %v", actor.UserID, err)
		}
		return search.Recommendation{}, ErrInternal
	}
	return out, nil
}

func (u *JobAdvisor) Match(ctx context.Context, actor Actor, skills []string) ([]search.KeywordMatch, error) {
	if actor.UserID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if actor.Role != user.RoleSeeker {
		return nil, ErrForbidden
	}
	if len(cleanList(skills)) == 0 {
		return nil, ErrInvalidInput
	}

	out, err := u.rec.Match(ctx, skills)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Advisor] match failed user=%s: %v", actor.UserID, err)
		}
		return nil, ErrInternal
	}
	return out, nil
}
