package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/tripwise/internal/logger"
	"github.com/mark3labs/tripwise/internal/mcpserver"
	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/spf13/cobra"
)

var mcpFlags struct {
	http string
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the trip planning tools over MCP",
	Long: `Serve list-pois, trip-duration and plan-trip as MCP tools.

Tools are served on stdio by default. Use --http to serve streamable HTTP
on a local address instead.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpFlags.http, "http", "", "Serve over HTTP on this address (e.g. 127.0.0.1:8765)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	b, err := openBus(cfg)
	if err != nil {
		return err
	}
	defer closeBus(b)

	srv := mcpserver.New(c,
		mcpserver.WithVersion(version),
		mcpserver.WithDefaultCity(cfg.City()),
		mcpserver.WithOnTripCreated(func(t trip.Trip) {
			if err := b.PublishTripCreated(t); err != nil {
				logger.Warn("publishing trip %s: %v", t.ID, err)
			}
		}),
	)

	if mcpFlags.http == "" {
		return srv.ServeStdio()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := srv.Start(ctx, mcpFlags.http); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", srv.URL())

	<-ctx.Done()
	return srv.Stop()
}
