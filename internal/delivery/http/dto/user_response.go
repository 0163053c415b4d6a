package dto

import (
	"time"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	Skills        []string `json:"skills"`
	CareerRoadmap string   `json:"careerRoadmap"`
}

type MeResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Skills        []string `json:"skills"`
	CareerRoadmap string   `json:"careerRoadmap"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{Skills: skills, CareerRoadmap: p.CareerRoadmap}
}
