package dto

import "job-board/internal/usecase"

type JobPostingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Salary      *float64 `json:"salary"`
	MinSalary   *float64 `json:"minSalary"`
	MaxSalary   *float64 `json:"maxSalary"`
	Skills      []string `json:"skills"`
	Tags        []string `json:"tags"`
	Remote      *bool    `json:"remote"`
	Type        string   `json:"type"`
	IsActive    *bool    `json:"isActive"`
}

func (r JobPostingRequest) Input() usecase.JobPostingInput {
	return usecase.JobPostingInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Salary:      r.Salary,
		MinSalary:   r.MinSalary,
		MaxSalary:   r.MaxSalary,
		Skills:      r.Skills,
		Tags:        r.Tags,
		Remote:      r.Remote,
		Type:        r.Type,
		IsActive:    r.IsActive,
	}
}

type MatchRequest struct {
	Skills []string `json:"skills"`
}
