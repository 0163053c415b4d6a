package job

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job posting not found")

// Posting is a job advertisement owned by a recruiter. Salary is the legacy
// single figure; newer postings carry MinSalary/MaxSalary instead.
type Posting struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Salary      *float64   `json:"salary,omitempty"`
	MinSalary   *float64   `json:"minSalary,omitempty"`
	MaxSalary   *float64   `json:"maxSalary,omitempty"`
	Skills      []string   `json:"skills"`
	Tags        []string   `json:"tags"`
	Remote      *bool      `json:"remote,omitempty"`
	Type        string     `json:"type"`
	IsActive    bool       `json:"isActive"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// HasRequiredFields reports whether title, description and location are all
// non-blank.
func (p Posting) HasRequiredFields() bool {
	return strings.TrimSpace(p.Title) != "" &&
		strings.TrimSpace(p.Description) != "" &&
		strings.TrimSpace(p.Location) != ""
}
