package search

import (
	"context"
	"errors"

	"job-board/internal/domain/job"
)

// Store is the document collection the executor queries. Find and Count must
// evaluate the same Criteria identically. A limit <= 0 means no limit.
type Store interface {
	Find(ctx context.Context, c Criteria, order []SortField, offset, limit int) ([]job.Posting, error)
	Count(ctx context.Context, c Criteria) (int, error)
}

type FailureKind int

const (
	FailureGeneric FailureKind = iota
	// FailureIndexUnavailable means the full-text index backing TextFullText
	// does not exist; the same criteria in substring mode may still succeed.
	FailureIndexUnavailable
)

func (k FailureKind) String() string {
	if k == FailureIndexUnavailable {
		return "index unavailable"
	}
	return "failure"
}

type StoreError struct {
	Kind FailureKind
	Err  error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return "search store: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "search store: " + e.Kind.String()
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func IndexUnavailable(err error) *StoreError {
	return &StoreError{Kind: FailureIndexUnavailable, Err: err}
}

func IsIndexUnavailable(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind == FailureIndexUnavailable
	}
	return false
}
