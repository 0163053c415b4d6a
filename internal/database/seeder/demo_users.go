package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoRecruiterEmail = "recruiter@jobboard.local"
	DemoSeekerEmail    = "seeker@jobboard.local"
)

type DemoUsersSeeder struct {
	Password string
}

func (DemoUsersSeeder) Name() string { return "demo_users" }

func (s DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if len(s.Password) < 8 {
		return fmt.Errorf("demo password must be at least 8 characters")
	}
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role", "skills", "career_roadmap"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	items := []struct {
		Email   string
		Role    user.Role
		Skills  []string
		Roadmap string
	}{
		{Email: DemoRecruiterEmail, Role: user.RoleRecruiter, Skills: []string{}},
		{
			Email:   DemoSeekerEmail,
			Role:    user.RoleSeeker,
			Skills:  []string{"go", "postgresql", "docker"},
			Roadmap: "Grow from backend developer into a platform engineer. Learn kubernetes, terraform and observability.",
		},
	}

	for _, it := range items {
		if _, err := db.Exec(
			ctx,
			`INSERT INTO users (id, email, password_hash, role, skills, career_roadmap)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) DO NOTHING`,
			uuid.New(), it.Email, string(hash), string(it.Role), it.Skills, it.Roadmap,
		); err != nil {
			return err
		}
	}
	return nil
}
