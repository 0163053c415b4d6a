package search

import (
	"context"
	"log"

	"job-board/internal/domain/job"

	"golang.org/x/sync/errgroup"
)

type Result struct {
	Data       []job.Posting `json:"data"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}

type Executor struct {
	store  Store
	logger *log.Logger
}

func NewExecutor(store Store, logger *log.Logger) *Executor {
	return &Executor{store: store, logger: logger}
}

// Search runs q against the store. With useTextSearch the term goes through
// the full-text index first; if the store reports the index as unavailable
// the same request is re-run once with substring matching.
func (e *Executor) Search(ctx context.Context, q Query, useTextSearch bool) (Result, error) {
	page := ParsePage(q.Page, q.Limit)
	order := ParseSort(q.Sort).Fields()
	c := BuildCriteria(q, useTextSearch)

	res, err := e.run(ctx, c, order, page)
	if err == nil {
		return res, nil
	}
	if c.Mode != TextFullText || !IsIndexUnavailable(err) {
		return Result{}, err
	}

	if e.logger != nil {
		e.logger.Printf("[Search] full-text unavailable, falling back to substring match: %v", err)
	}
	return e.run(ctx, c.WithSubstringSearch(), order, page)
}

func (e *Executor) run(ctx context.Context, c Criteria, order []SortField, page Page) (Result, error) {
	var (
		items []job.Posting
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = e.store.Find(gctx, c, order, page.Offset(), page.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = e.store.Count(gctx, c)
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if items == nil {
		items = []job.Posting{}
	}
	return Result{
		Data:       items,
		Page:       page.Number,
		PageSize:   len(items),
		Total:      total,
		TotalPages: TotalPages(total, page.Limit),
	}, nil
}
