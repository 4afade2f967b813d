package main

import (
	"fmt"

	"newsfeed/internal/api/config"
	"newsfeed/internal/pkg/database"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create tables and insert sample posts into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(cmd.Context(), config.Cfg, false)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			n, err := database.Seed(cmd.Context(), db)
			if err != nil {
				return err
			}
			if n == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "posts table is not empty, nothing seeded")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts\n", n)
			return err
		},
	}
}
