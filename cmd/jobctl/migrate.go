package main

import (
	"fmt"

	"job-board/internal/app"
	"job-board/internal/config"
	dbpostgres "job-board/internal/database/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Apply pending schema migrations",
		Example: "  jobctl migrate\n  jobctl migrate --dir ./migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Migrations.Dir = dir
			}

			db, err := dbpostgres.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := app.Migrate(cmd.Context(), cfg, db, opts.logger()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("migrations up to date"))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "read migrations from this directory instead of the embedded set")
	return cmd
}
