package seeder

import (
	"context"
	"errors"
	"fmt"

	"job-board/internal/database"

	"github.com/google/uuid"
)

type demoPosting struct {
	Title       string
	Description string
	Location    string
	MinSalary   *float64
	MaxSalary   *float64
	Salary      *float64
	Skills      []string
	Tags        []string
	Remote      bool
	Type        string
}

func money(v float64) *float64 { return &v }

var demoPostings = []demoPosting{
	{
		Title:       "Backend Engineer (Go)",
		Description: "Build and operate Go services on PostgreSQL and Redis. Docker experience required.",
		Location:    "Jakarta",
		MinSalary:   money(15000000),
		MaxSalary:   money(25000000),
		Skills:      []string{"Go", "PostgreSQL", "Redis", "Docker"},
		Tags:        []string{"backend"},
		Type:        "full-time",
	},
	{
		Title:       "Platform Engineer",
		Description: "Run Kubernetes clusters and Terraform pipelines. Go tooling is a plus.",
		Location:    "Remote",
		MinSalary:   money(20000000),
		MaxSalary:   money(35000000),
		Skills:      []string{"Kubernetes", "Terraform", "Go"},
		Tags:        []string{"infra"},
		Remote:      true,
		Type:        "full-time",
	},
	{
		Title:       "Frontend Developer",
		Description: "Ship React and TypeScript interfaces for the job board.",
		Location:    "Bandung",
		MaxSalary:   money(18000000),
		Skills:      []string{"React", "TypeScript"},
		Tags:        []string{"frontend"},
		Type:        "contract",
	},
	{
		Title:       "Data Analyst",
		Description: "Write SQL against PostgreSQL and build dashboards.",
		Location:    "Surabaya",
		Salary:      money(12000000),
		Skills:      []string{"SQL", "PostgreSQL"},
		Type:        "part-time",
	},
}

type DemoPostingsSeeder struct{}

func (DemoPostingsSeeder) Name() string { return "demo_postings" }

// Run inserts each demo posting for the demo recruiter unless a posting with
// the same title already belongs to that recruiter.
func (DemoPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_postings",
		"id", "title", "description", "location", "salary", "min_salary", "max_salary",
		"skills", "tags", "remote", "type", "is_active", "created_by",
	); err != nil {
		return err
	}

	var recruiterID uuid.UUID
	if err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, DemoRecruiterEmail).Scan(&recruiterID); err != nil {
		return fmt.Errorf("demo recruiter: %w", err)
	}
	if recruiterID == uuid.Nil {
		return errors.New("demo recruiter: nil id")
	}

	for _, p := range demoPostings {
		if _, err := db.Exec(
			ctx,
			`INSERT INTO job_postings
				(id, title, description, location, salary, min_salary, max_salary, skills, tags, remote, type, is_active, created_by)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12
			WHERE NOT EXISTS (SELECT 1 FROM job_postings WHERE created_by = $12 AND title = $2)`,
			uuid.New(), p.Title, p.Description, p.Location, p.Salary, p.MinSalary, p.MaxSalary,
			p.Skills, p.Tags, p.Remote, p.Type, recruiterID,
		); err != nil {
			return err
		}
	}
	return nil
}
