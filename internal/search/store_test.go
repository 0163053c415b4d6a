package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

// memStore evaluates Criteria over an in-memory slice. Full-text mode matches
// whole words so tests can tell the two text modes apart.
type memStore struct {
	postings []job.Posting

	fullTextErr error
	findErr     error
	countErr    error

	mu      sync.Mutex
	finds   []Criteria
	offsets []int
}

func (m *memStore) Find(_ context.Context, c Criteria, order []SortField, offset, limit int) ([]job.Posting, error) {
	m.mu.Lock()
	m.finds = append(m.finds, c)
	m.offsets = append(m.offsets, offset)
	m.mu.Unlock()

	if c.Mode == TextFullText && m.fullTextErr != nil {
		return nil, m.fullTextErr
	}
	if m.findErr != nil {
		return nil, m.findErr
	}

	matched := m.filter(c)
	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j], order) })

	if offset >= len(matched) {
		return []job.Posting{}, nil
	}
	end := len(matched)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return matched[offset:end], nil
}

func (m *memStore) Count(_ context.Context, c Criteria) (int, error) {
	if c.Mode == TextFullText && m.fullTextErr != nil {
		return 0, m.fullTextErr
	}
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.filter(c)), nil
}

func (m *memStore) findsWithMode(mode TextMode) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.finds {
		if c.Mode == mode {
			n++
		}
	}
	return n
}

func (m *memStore) filter(c Criteria) []job.Posting {
	out := make([]job.Posting, 0, len(m.postings))
	for _, p := range m.postings {
		if matches(c, p) {
			out = append(out, p)
		}
	}
	return out
}

func matches(c Criteria, p job.Posting) bool {
	if p.IsActive != c.Active {
		return false
	}
	switch c.Mode {
	case TextFullText:
		if !containsWord(p.Title+" "+p.Description+" "+p.Location+" "+strings.Join(p.Skills, " "), c.Term) {
			return false
		}
	case TextSubstring:
		fields := append([]string{p.Title, p.Description, p.Location}, p.Skills...)
		found := false
		for _, f := range fields {
			if containsFold(f, c.Term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.Location != "" && !containsFold(p.Location, c.Location) {
		return false
	}
	if c.Remote != nil && (p.Remote == nil || *p.Remote != *c.Remote) {
		return false
	}
	if len(c.Types) > 0 {
		ok := false
		for _, t := range c.Types {
			if p.Type == t {
				ok = true
			}
		}
		if !ok {
			return false
		}
	}
	if c.MinSalary != nil {
		lo := *c.MinSalary
		if !((p.MaxSalary != nil && *p.MaxSalary >= lo) || (p.Salary != nil && *p.Salary >= lo)) {
			return false
		}
	}
	if c.MaxSalary != nil {
		hi := *c.MaxSalary
		if !((p.MinSalary != nil && *p.MinSalary <= hi) || (p.Salary != nil && *p.Salary <= hi)) {
			return false
		}
	}
	if c.CreatedBy != nil && p.CreatedBy != *c.CreatedBy {
		return false
	}
	if len(c.SkillPatterns) > 0 {
		ok := false
		for _, s := range p.Skills {
			for _, pat := range c.SkillPatterns {
				if containsFold(s, pat) {
					ok = true
				}
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func less(a, b job.Posting, order []SortField) bool {
	for _, f := range order {
		cmp := compareField(a, b, f.Field)
		if cmp == 0 {
			continue
		}
		if f.Desc {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}

func compareField(a, b job.Posting, f Field) int {
	switch f {
	case FieldCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case FieldMinSalary:
		return compareOptional(a.MinSalary, b.MinSalary)
	case FieldMaxSalary:
		return compareOptional(a.MaxSalary, b.MaxSalary)
	case FieldSalary:
		return compareOptional(a.Salary, b.Salary)
	case FieldID:
		return strings.Compare(a.ID.String(), b.ID.String())
	}
	return 0
}

// compareOptional orders missing values before any number.
func compareOptional(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func containsWord(s, word string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if w == strings.ToLower(word) {
			return true
		}
	}
	return false
}

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newPostings builds n active postings; posting i is i minutes newer than
// posting i-1.
func newPostings(n int, title string) []job.Posting {
	out := make([]job.Posting, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, job.Posting{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("%s %d", title, i),
			Description: "build things",
			Location:    "Berlin",
			Skills:      []string{"Go"},
			Type:        "full-time",
			IsActive:    true,
			CreatedAt:   baseTime.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
