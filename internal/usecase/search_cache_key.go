package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"job-board/internal/search"
)

const jobsSearchKeyPrefix = "jobs:search:"

// JobsSearchPattern matches every cached listing page.
const JobsSearchPattern = jobsSearchKeyPrefix + "*"

type jobSearchCacheKeyInput struct {
	FullText  bool   `json:"full_text"`
	Q         string `json:"q"`
	Location  string `json:"location"`
	Remote    string `json:"remote"`
	Type      string `json:"type"`
	MinSalary string `json:"min_salary"`
	MaxSalary string `json:"max_salary"`
	IsActive  string `json:"is_active"`
	CreatedBy string `json:"created_by"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	Sort      string `json:"sort"`
}

// normalizeSearchValue folds case only; inner whitespace is significant for
// substring matching.
func normalizeSearchValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// JobsSearchCacheKey hashes the listing parameters after the same
// normalisation the executor applies, so equivalent requests share a key.
func JobsSearchCacheKey(q search.Query, fullText bool) string {
	page := search.ParsePage(q.Page, q.Limit)
	in := jobSearchCacheKeyInput{
		FullText:  fullText,
		Q:         normalizeSearchValue(q.Q),
		Location:  normalizeSearchValue(q.Location),
		Remote:    q.Remote,
		Type:      strings.TrimSpace(q.Type),
		MinSalary: strings.TrimSpace(q.MinSalary),
		MaxSalary: strings.TrimSpace(q.MaxSalary),
		IsActive:  q.IsActive,
		CreatedBy: strings.ToLower(strings.TrimSpace(q.CreatedBy)),
		Page:      page.Number,
		Limit:     page.Limit,
		Sort:      string(search.ParseSort(q.Sort)),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsSearchKeyPrefix + hex.EncodeToString(sum[:])
}
