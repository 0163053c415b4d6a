package main

import (
	"io"
	"log"
	"os"

	"job-board/internal/app"
	"job-board/internal/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	asJSON  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "jobctl",
		Short:         "Operate the job board database",
		Long:          "jobctl applies schema migrations and runs listing searches and recommendations against the configured database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log component output to stderr")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	cmd.AddCommand(newMigrateCmd(opts), newSeedCmd(opts), newSearchCmd(opts), newRecommendCmd(opts))
	return cmd
}

func (o *rootOptions) logger() *log.Logger {
	if o == nil || !o.verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// container loads configuration and connects to the database. The caller
// closes it.
func (o *rootOptions) container() (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.Migrations.OnStart = false
	return app.NewContainer(cfg, o.logger())
}
