package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the part of a user record the job advisor reads: an explicit
// skill list and a free-text career roadmap.
type Profile struct {
	UserID        uuid.UUID `json:"userId"`
	Skills        []string  `json:"skills"`
	CareerRoadmap string    `json:"careerRoadmap"`
}
