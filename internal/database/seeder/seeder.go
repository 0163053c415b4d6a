// Package seeder loads demo users and postings into an empty database so the
// listing and advisor endpoints have something to return.
package seeder

import (
	"context"

	"job-board/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
