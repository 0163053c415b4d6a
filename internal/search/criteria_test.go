package search

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestBuildCriteria_InvalidSalaryIsAbsent(t *testing.T) {
	for _, v := range []string{"abc", "", "  ", "NaN", "Inf", "-Infinity", "12k"} {
		c := BuildCriteria(Query{MinSalary: v, MaxSalary: v}, false)
		if c.MinSalary != nil || c.MaxSalary != nil {
			t.Fatalf("salary %q: expected no salary constraint, got min=%v max=%v", v, c.MinSalary, c.MaxSalary)
		}
	}
}

func TestBuildCriteria_SalaryWindow(t *testing.T) {
	c := BuildCriteria(Query{MinSalary: " 50000 ", MaxSalary: "1e5"}, false)
	if c.MinSalary == nil || *c.MinSalary != 50000 {
		t.Fatalf("expected min 50000, got %v", c.MinSalary)
	}
	if c.MaxSalary == nil || *c.MaxSalary != 100000 {
		t.Fatalf("expected max 100000, got %v", c.MaxSalary)
	}
}

func TestBuildCriteria_ActiveDefaultsTrue(t *testing.T) {
	for _, v := range []string{"", "yes", "TRUE", "1"} {
		if c := BuildCriteria(Query{IsActive: v}, false); !c.Active {
			t.Fatalf("isActive %q: expected active constraint true", v)
		}
	}
	if c := BuildCriteria(Query{IsActive: "false"}, false); c.Active {
		t.Fatalf("isActive false: expected active=false")
	}
}

func TestBuildCriteria_Remote(t *testing.T) {
	if c := BuildCriteria(Query{Remote: "true"}, false); c.Remote == nil || !*c.Remote {
		t.Fatalf("expected remote=true")
	}
	if c := BuildCriteria(Query{Remote: "false"}, false); c.Remote == nil || *c.Remote {
		t.Fatalf("expected remote=false")
	}
	for _, v := range []string{"", "True", "1", "remote"} {
		if c := BuildCriteria(Query{Remote: v}, false); c.Remote != nil {
			t.Fatalf("remote %q: expected unconstrained", v)
		}
	}
}

func TestBuildCriteria_Types(t *testing.T) {
	c := BuildCriteria(Query{Type: " full-time, ,contract ,"}, false)
	if len(c.Types) != 2 || c.Types[0] != "full-time" || c.Types[1] != "contract" {
		t.Fatalf("unexpected types: %#v", c.Types)
	}
	if c := BuildCriteria(Query{Type: " , ,"}, false); c.Types != nil {
		t.Fatalf("expected no type constraint, got %#v", c.Types)
	}
}

func TestBuildCriteria_TextModes(t *testing.T) {
	c := BuildCriteria(Query{Q: "  engineer "}, true)
	if c.Mode != TextFullText || c.Term != "engineer" {
		t.Fatalf("expected fulltext engineer, got %s %q", c.Mode, c.Term)
	}
	c = BuildCriteria(Query{Q: "engineer"}, false)
	if c.Mode != TextSubstring {
		t.Fatalf("expected substring mode, got %s", c.Mode)
	}
	c = BuildCriteria(Query{Q: "   "}, true)
	if c.Mode != TextNone || c.Term != "" {
		t.Fatalf("expected no text constraint, got %s %q", c.Mode, c.Term)
	}
	if got := BuildCriteria(Query{Q: "go"}, true).WithSubstringSearch(); got.Mode != TextSubstring || got.Term != "go" {
		t.Fatalf("WithSubstringSearch: got %s %q", got.Mode, got.Term)
	}
}

func TestBuildCriteria_LocationTrimmed(t *testing.T) {
	if c := BuildCriteria(Query{Location: "  Berlin "}, false); c.Location != "Berlin" {
		t.Fatalf("expected Berlin, got %q", c.Location)
	}
}

func TestBuildCriteria_CreatedBy(t *testing.T) {
	id := uuid.New()
	c := BuildCriteria(Query{CreatedBy: id.String()}, false)
	if c.CreatedBy == nil || *c.CreatedBy != id {
		t.Fatalf("expected owner %s, got %v", id, c.CreatedBy)
	}
	for _, v := range []string{"", "not-an-id", "12345"} {
		if c := BuildCriteria(Query{CreatedBy: v}, false); c.CreatedBy != nil {
			t.Fatalf("createdBy %q: expected ignored", v)
		}
	}
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		page, limit string
		want        Page
	}{
		{"", "", Page{1, DefaultLimit}},
		{"0", "0", Page{1, DefaultLimit}},
		{"-3", "-3", Page{1, 1}},
		{"abc", "abc", Page{1, DefaultLimit}},
		{"4", "500", Page{4, MaxLimit}},
		{"2", "5", Page{2, 5}},
		{"2", "100000000000000000000", Page{2, MaxLimit}},
		{"1", "-100000000000000000000", Page{1, 1}},
		{"-100000000000000000000", "5", Page{1, 5}},
		{"100000000000000000000", "5", Page{math.MaxInt/5 + 1, 5}},
		{"9223372036854775807", "50", Page{math.MaxInt/MaxLimit + 1, MaxLimit}},
	}
	for _, tc := range cases {
		if got := ParsePage(tc.page, tc.limit); got != tc.want {
			t.Fatalf("ParsePage(%q, %q) = %+v, want %+v", tc.page, tc.limit, got, tc.want)
		}
	}
	if off := (Page{Number: 3, Limit: 5}).Offset(); off != 10 {
		t.Fatalf("expected offset 10, got %d", off)
	}
	for _, limit := range []string{"1", "7", "50"} {
		if off := ParsePage("9223372036854775807", limit).Offset(); off < 0 {
			t.Fatalf("offset overflowed for limit %s: %d", limit, off)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ total, limit, want int }{
		{0, 12, 1},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{12, 5, 3},
		{50, 50, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestParseSort(t *testing.T) {
	if ParseSort("") != SortNewest || ParseSort("random") != SortNewest {
		t.Fatalf("expected newest as default")
	}
	f := ParseSort("salary_desc").Fields()
	if f[0].Field != FieldMaxSalary || !f[0].Desc || f[2].Field != FieldSalary {
		t.Fatalf("unexpected salary_desc order: %+v", f)
	}
	f = ParseSort("salary_asc").Fields()
	if f[0].Field != FieldMinSalary || f[0].Desc || f[2].Field != FieldSalary {
		t.Fatalf("unexpected salary_asc order: %+v", f)
	}
}
