package main

import (
	"strconv"

	"job-board/internal/search"

	"github.com/spf13/cobra"
)

type searchFlags struct {
	q, location, remote, jobType string
	minSalary, maxSalary         string
	active, createdBy, sort      string
	page, limit                  int
	substring                    bool
}

// query keeps flag values as raw strings so the CLI parses exactly like the
// HTTP listing endpoint.
func (f searchFlags) query() search.Query {
	q := search.Query{
		Q:         f.q,
		Location:  f.location,
		Remote:    f.remote,
		Type:      f.jobType,
		MinSalary: f.minSalary,
		MaxSalary: f.maxSalary,
		IsActive:  f.active,
		CreatedBy: f.createdBy,
		Sort:      f.sort,
	}
	if f.page != 0 {
		q.Page = strconv.Itoa(f.page)
	}
	if f.limit != 0 {
		q.Limit = strconv.Itoa(f.limit)
	}
	return q
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a listing search",
		Example: `  jobctl search --q "golang" --remote true --sort salary_desc
  jobctl search --type full-time,contract --min-salary 5000 --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			res, err := c.Executor.Search(cmd.Context(), f.query(), !f.substring && c.Config.Search.FullText)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			renderResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.q, "q", "", "free-text query")
	fl.StringVar(&f.location, "location", "", "location substring")
	fl.StringVar(&f.remote, "remote", "", "true or false")
	fl.StringVar(&f.jobType, "type", "", "comma-separated employment types")
	fl.StringVar(&f.minSalary, "min-salary", "", "lower salary bound")
	fl.StringVar(&f.maxSalary, "max-salary", "", "upper salary bound")
	fl.StringVar(&f.active, "active", "", "true or false; defaults to active postings")
	fl.StringVar(&f.createdBy, "created-by", "", "recruiter id")
	fl.StringVar(&f.sort, "sort", "", "newest, oldest, salary_asc or salary_desc")
	fl.IntVar(&f.page, "page", 0, "page number")
	fl.IntVar(&f.limit, "limit", 0, "page size")
	fl.BoolVar(&f.substring, "substring", false, "skip the text index and match substrings")
	return cmd
}
