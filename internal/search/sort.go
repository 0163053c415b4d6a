package search

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortSalaryAsc  SortKey = "salary_asc"
	SortSalaryDesc SortKey = "salary_desc"
)

const (
	DefaultLimit = 12
	MaxLimit     = 50
)

type Field string

const (
	FieldCreatedAt Field = "created_at"
	FieldMinSalary Field = "min_salary"
	FieldMaxSalary Field = "max_salary"
	FieldSalary    Field = "salary"
	FieldID        Field = "id"
)

type SortField struct {
	Field Field
	Desc  bool
}

// ParseSort falls back to SortNewest for anything outside the enumeration.
func ParseSort(s string) SortKey {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortNewest, SortOldest, SortSalaryAsc, SortSalaryDesc:
		return k
	default:
		return SortNewest
	}
}

// Fields is the ordering a Store must apply for k. Salary orderings compare
// the range bounds first and the legacy salary last; id keeps pages stable
// when every other key ties.
func (k SortKey) Fields() []SortField {
	switch k {
	case SortOldest:
		return []SortField{{FieldCreatedAt, false}, {FieldID, false}}
	case SortSalaryAsc:
		return []SortField{{FieldMinSalary, false}, {FieldMaxSalary, false}, {FieldSalary, false}, {FieldID, false}}
	case SortSalaryDesc:
		return []SortField{{FieldMaxSalary, true}, {FieldMinSalary, true}, {FieldSalary, true}, {FieldID, false}}
	default:
		return []SortField{{FieldCreatedAt, true}, {FieldID, false}}
	}
}

// Page is a normalised page window.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ParsePage clamps page to at least 1 and limit to [1, MaxLimit]. Missing,
// malformed or zero limits use DefaultLimit. Numbers beyond the int range
// clamp like any other out-of-range value, and page is capped so Offset
// never overflows; such a page is simply past the last row.
func ParsePage(page, limit string) Page {
	n, err := parseInt(page)
	if err != nil || n < 1 {
		n = 1
	}

	l, err := parseInt(limit)
	if err != nil || l == 0 {
		l = DefaultLimit
	}
	if l < 1 {
		l = 1
	}
	if l > MaxLimit {
		l = MaxLimit
	}

	if maxPage := math.MaxInt/l + 1; n > maxPage {
		n = maxPage
	}
	return Page{Number: n, Limit: l}
}

// parseInt accepts out-of-range integers, returning the saturated value
// strconv reports alongside ErrRange.
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return n, err
}

// TotalPages is ceil(total/limit) with a floor of one.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
