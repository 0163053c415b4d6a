package usecase

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileInput struct {
	Skills        []string
	CareerRoadmap string
}

type ProfileUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error)
}

type Profiles struct {
	users user.Repository
}

func NewProfileUsecase(users user.Repository) *Profiles {
	return &Profiles{users: users}
}

func (u *Profiles) GetMe(ctx context.Context, userID uuid.UUID) (user.User, user.Profile, error) {
	if userID == uuid.Nil {
		return user.User{}, user.Profile{}, ErrUnauthorized
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, user.Profile{}, mapUserErr(err)
	}
	p, err := u.users.GetProfile(ctx, userID)
	if err != nil {
		return user.User{}, user.Profile{}, mapUserErr(err)
	}
	return usr, p, nil
}

func (u *Profiles) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	p := user.Profile{
		UserID:        userID,
		Skills:        cleanList(in.Skills),
		CareerRoadmap: strings.TrimSpace(in.CareerRoadmap),
	}
	if err := u.users.UpdateProfile(ctx, p); err != nil {
		return user.Profile{}, mapUserErr(err)
	}
	return p, nil
}

func mapUserErr(err error) error {
	if errors.Is(err, user.ErrNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
