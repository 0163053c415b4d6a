package seeder

import (
	"context"
	"fmt"
	"log"

	"job-board/internal/database"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seed] %s done", s.Name())
		}
	}
	return nil
}

// Defaults returns the demo seeders in dependency order. password is set on
// every demo account.
func Defaults(password string) []Seeder {
	return []Seeder{
		DemoUsersSeeder{Password: password},
		DemoPostingsSeeder{},
	}
}
