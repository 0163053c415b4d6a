package usecase

import (
	"context"
	"log"

	"job-board/internal/search"
)

type JobListUsecase interface {
	ListJobs(ctx context.Context, q search.Query) (search.Result, error)
}

type jobSearcher interface {
	Search(ctx context.Context, q search.Query, useTextSearch bool) (search.Result, error)
}

type JobList struct {
	searcher jobSearcher
	cache    SearchCache
	fullText bool
	logger   *log.Logger
}

func NewJobListUsecase(searcher jobSearcher, cache SearchCache, fullText bool, logger *log.Logger) *JobList {
	return &JobList{searcher: searcher, cache: cache, fullText: fullText, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, q search.Query) (search.Result, error) {
	cacheKey := ""
	if u.cache != nil {
		cacheKey = JobsSearchCacheKey(q, u.fullText)

		var cached search.Result
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logf("[Jobs] Cache HIT: %s", cacheKey)
			return cached, nil
		}
		u.logf("[Jobs] Cache MISS: %s", cacheKey)
	}

	res, err := u.searcher.Search(ctx, q, u.fullText)
	if err != nil {
		u.logf("[Jobs] search failed: %v", err)
		return search.Result{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, res, 0); err == nil {
			u.logf("[Jobs] Cache SET: %s", cacheKey)
		}
	}
	return res, nil
}

func (u *JobList) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
