package main

import (
	"fmt"

	"job-board/internal/config"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/database/seeder"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:     "seed",
		Short:   "Load demo users and postings",
		Long:    "seed inserts a demo recruiter, a demo seeker with a profile, and a handful of postings. Existing rows are left alone.",
		Example: "  jobctl seed --password demo-password",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := dbpostgres.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			r := seeder.Runner{Seeders: seeder.Defaults(password), Logger: opts.logger()}
			if err := r.Run(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("demo data loaded"),
				mutedStyle.Render(fmt.Sprintf("(%s / %s)", seeder.DemoRecruiterEmail, seeder.DemoSeekerEmail)))
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "jobboard-demo", "password for the demo accounts")
	return cmd
}
