package repository

import (
	"strconv"
	"strings"

	"job-board/internal/search"
)

const jobColumns = `id, title, description, location, salary, min_salary, max_salary,
	COALESCE(skills, '{}'), COALESCE(tags, '{}'), remote, COALESCE(type, ''), is_active,
	created_by, created_at, updated_at`

type sqlArgs struct {
	args []any
}

func (a *sqlArgs) add(v any) string {
	a.args = append(a.args, v)
	return "$" + strconv.Itoa(len(a.args))
}

// buildWhere renders c as a WHERE clause over job_postings. The returned
// clause always constrains is_active.
func buildWhere(c search.Criteria, a *sqlArgs) string {
	conds := make([]string, 0, 8)

	conds = append(conds, "is_active = "+a.add(c.Active))

	switch c.Mode {
	case search.TextFullText:
		conds = append(conds, "search_vector @@ websearch_to_tsquery('english', "+a.add(c.Term)+")")
	case search.TextSubstring:
		p := a.add(likePattern(c.Term))
		conds = append(conds, "(title ILIKE "+p+" OR description ILIKE "+p+" OR location ILIKE "+p+
			" OR EXISTS (SELECT 1 FROM unnest(skills) AS s(skill) WHERE s.skill ILIKE "+p+"))")
	}

	if c.Location != "" {
		conds = append(conds, "location ILIKE "+a.add(likePattern(c.Location)))
	}
	if c.Remote != nil {
		conds = append(conds, "remote = "+a.add(*c.Remote))
	}
	if len(c.Types) > 0 {
		conds = append(conds, "type = ANY("+a.add(c.Types)+")")
	}
	if c.MinSalary != nil {
		p := a.add(*c.MinSalary)
		conds = append(conds, "(max_salary >= "+p+" OR salary >= "+p+")")
	}
	if c.MaxSalary != nil {
		p := a.add(*c.MaxSalary)
		conds = append(conds, "(min_salary <= "+p+" OR salary <= "+p+")")
	}
	if c.CreatedBy != nil {
		conds = append(conds, "created_by = "+a.add(*c.CreatedBy))
	}
	if len(c.SkillPatterns) > 0 {
		patterns := make([]string, 0, len(c.SkillPatterns))
		for _, s := range c.SkillPatterns {
			patterns = append(patterns, likePattern(s))
		}
		conds = append(conds, "EXISTS (SELECT 1 FROM unnest(skills) AS s(skill) WHERE s.skill ILIKE ANY("+a.add(patterns)+"))")
	}

	return "WHERE " + strings.Join(conds, " AND ")
}

// buildOrder renders order as an ORDER BY clause. Missing values sort as the
// smallest, so they lead ascending orders and trail descending ones.
func buildOrder(order []search.SortField) string {
	parts := make([]string, 0, len(order))
	for _, f := range order {
		col := sortColumn(f.Field)
		if col == "" {
			continue
		}
		if f.Desc {
			parts = append(parts, col+" DESC NULLS LAST")
		} else {
			parts = append(parts, col+" ASC NULLS FIRST")
		}
	}
	if len(parts) == 0 {
		return "ORDER BY created_at DESC, id ASC"
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

func sortColumn(f search.Field) string {
	switch f {
	case search.FieldCreatedAt:
		return "created_at"
	case search.FieldMinSalary:
		return "min_salary"
	case search.FieldMaxSalary:
		return "max_salary"
	case search.FieldSalary:
		return "salary"
	case search.FieldID:
		return "id"
	default:
		return ""
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
