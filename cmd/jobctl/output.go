package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"job-board/internal/domain/job"
	"job-board/internal/search"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderResult(w io.Writer, res search.Result) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d postings", res.Total)),
		mutedStyle.Render(fmt.Sprintf("page %d/%d", res.Page, res.TotalPages)))
	if len(res.Data) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no postings match"))
		return
	}
	for _, p := range res.Data {
		renderPosting(w, p)
	}
}

func renderRecommendation(w io.Writer, rec search.Recommendation) {
	if rec.MissingSkills {
		fmt.Fprintln(w, mutedStyle.Render("no skills on record; pass --skills or fill in the profile"))
		return
	}
	fmt.Fprintln(w, labelStyle.Render("skills:"), strings.Join(rec.Skills, ", "))
	for _, p := range rec.Jobs {
		renderPosting(w, p)
	}
}

func renderMatches(w io.Writer, matches []search.KeywordMatch) {
	for _, m := range matches {
		fmt.Fprint(w, labelStyle.Render(fmt.Sprintf("[%d] ", m.Matches)))
		renderPosting(w, m.Posting)
	}
}

func renderPosting(w io.Writer, p job.Posting) {
	line := titleStyle.Render(p.Title) + " " + mutedStyle.Render(p.Location)
	if s := salaryRange(p); s != "" {
		line += " " + s
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "  "+mutedStyle.Render(p.ID.String()))
}

func salaryRange(p job.Posting) string {
	switch {
	case p.MinSalary != nil && p.MaxSalary != nil:
		return fmt.Sprintf("%.0f-%.0f", *p.MinSalary, *p.MaxSalary)
	case p.MinSalary != nil:
		return fmt.Sprintf("from %.0f", *p.MinSalary)
	case p.MaxSalary != nil:
		return fmt.Sprintf("up to %.0f", *p.MaxSalary)
	case p.Salary != nil:
		return fmt.Sprintf("%.0f", *p.Salary)
	}
	return ""
}
