package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synheart/syndata/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server exposing the generator as tools (stdio)",
		Long: `Starts a Model Context Protocol server over stdio. Connected agents can
list scenarios and request reproducible synthetic biosignal sessions
without invoking the CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(&mcp.ServerConfig{
				Name:    "syndata",
				Version: version,
				Config:  cfg,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(context.Background())
		},
	}
}
