package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iconsmith-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Exposes the pipeline to MCP clients over stdio (default) or HTTP.

Tools: resolve_subject, generate_icon and, when a remote source is
configured, search_icons.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, _ []string) error {
	if subjectSvc == nil || iconMaker == nil {
		return errors.New("mcp services not configured")
	}

	var source driven.IconSource
	if sourceFactory != nil {
		settings := domain.DefaultSettings()
		if settingsStore != nil {
			if loaded, err := settingsStore.Load(); err == nil {
				settings = loaded
			}
		}
		if src, err := sourceFactory.Create(settings); err == nil {
			source = src
		}
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Resolver: subjectSvc,
		Maker:    iconMaker,
		Source:   source,
	})
	if err != nil {
		return fmt.Errorf("create mcp server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if mcpHTTPAddr != "" {
		return server.RunHTTP(ctx, mcpHTTPAddr)
	}
	return server.Run(ctx)
}
