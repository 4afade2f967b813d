package main

import (
	"fmt"
	"io"

	"newsfeed/internal/api/config"
	"newsfeed/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigDir string

	logCloser io.Closer
}

// NewRootCommand creates the newsfeed CLI. Without a subcommand it serves the API.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "newsfeed",
		Short:         "NewsFeed GraphQL API server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 加载配置
			if err := config.LoadConfig(opts.ConfigDir); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			// 初始化日志
			closer, err := logger.InitLogger(config.Cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logCloser = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logCloser != nil {
				return opts.logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigDir, "config", "c", "./configs", "directory containing config.yaml")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewSchemaCommand())

	return cmd
}
