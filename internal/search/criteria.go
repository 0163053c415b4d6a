// Package search turns listing and advisor requests into typed store queries
// and runs them with a single degraded retry when full-text search is
// unavailable.
package search

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Query carries the raw listing parameters exactly as they arrived on the
// query string. Every field may be empty.
type Query struct {
	Q         string
	Location  string
	Remote    string
	Type      string
	MinSalary string
	MaxSalary string
	IsActive  string
	CreatedBy string
	Page      string
	Limit     string
	Sort      string
}

type TextMode int

const (
	TextNone TextMode = iota
	TextFullText
	TextSubstring
)

func (m TextMode) String() string {
	switch m {
	case TextFullText:
		return "fulltext"
	case TextSubstring:
		return "substring"
	default:
		return "none"
	}
}

// Criteria is the normalised predicate a Store evaluates. Nil pointers and
// empty slices leave the corresponding field unconstrained; Active is always
// applied.
type Criteria struct {
	Term string
	Mode TextMode

	Location  string
	Remote    *bool
	Types     []string
	MinSalary *float64
	MaxSalary *float64
	Active    bool
	CreatedBy *uuid.UUID

	// SkillPatterns matches postings having at least one skill that contains
	// any of the patterns, case-insensitively.
	SkillPatterns []string
}

// BuildCriteria maps raw listing parameters to a Criteria. Malformed values
// never produce an error, they simply leave the field unconstrained.
func BuildCriteria(q Query, useTextSearch bool) Criteria {
	c := Criteria{Active: true}

	if term := strings.TrimSpace(q.Q); term != "" {
		c.Term = term
		if useTextSearch {
			c.Mode = TextFullText
		} else {
			c.Mode = TextSubstring
		}
	}

	c.Location = strings.TrimSpace(q.Location)
	c.Remote = parseBool(q.Remote)
	c.Types = splitList(q.Type)
	c.MinSalary = parseNumber(q.MinSalary)
	c.MaxSalary = parseNumber(q.MaxSalary)

	if active := parseBool(q.IsActive); active != nil {
		c.Active = *active
	}

	if id, err := uuid.Parse(strings.TrimSpace(q.CreatedBy)); err == nil && id != uuid.Nil {
		c.CreatedBy = &id
	}

	return c
}

// WithSubstringSearch returns a copy of c whose text term, if any, is matched
// by substring instead of the full-text index.
func (c Criteria) WithSubstringSearch() Criteria {
	if c.Mode == TextFullText {
		c.Mode = TextSubstring
	}
	return c
}

func parseBool(s string) *bool {
	var v bool
	switch s {
	case "true":
		v = true
	case "false":
		v = false
	default:
		return nil
	}
	return &v
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
