package main

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		userID string
		skills string
		rank   bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend postings for a user or a skill list",
		Example: `  jobctl recommend --user 6c3f0b8e-2d4a-4f59-9a53-1f0d2c7e8b41
  jobctl recommend --skills go,postgres
  jobctl recommend --skills go,postgres --rank`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid.Nil
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return errors.New("--user must be a UUID")
				}
				id = parsed
			}
			if id == uuid.Nil && strings.TrimSpace(skills) == "" {
				return errors.New("either --user or --skills is required")
			}
			if rank && strings.TrimSpace(skills) == "" {
				return errors.New("--rank needs --skills")
			}

			c, err := opts.container()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			out := cmd.OutOrStdout()
			if rank {
				matches, err := c.Recommender.Match(cmd.Context(), strings.Split(skills, ","))
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(out, matches)
				}
				renderMatches(out, matches)
				return nil
			}

			rec, err := c.Recommender.Recommend(cmd.Context(), id, skills)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(out, rec)
			}
			renderRecommendation(out, rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user whose stored profile supplies the skills")
	cmd.Flags().StringVar(&skills, "skills", "", "comma-separated skills; overrides the profile")
	cmd.Flags().BoolVar(&rank, "rank", false, "rank every active posting by keyword count instead")
	return cmd
}
