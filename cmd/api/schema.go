package main

import (
	"io"

	"newsfeed/internal/api/graph"

	"github.com/spf13/cobra"
)

// NewSchemaCommand creates the schema command, which prints the GraphQL SDL.
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the GraphQL schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), graph.SchemaSDL)
			return err
		},
	}
}
