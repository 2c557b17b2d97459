package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OlegQm/database-expert-bot/internal/adapters/driven/config/file"
	"github.com/OlegQm/database-expert-bot/internal/adapters/driven/mongodb"
	"github.com/OlegQm/database-expert-bot/internal/adapters/driven/postgres"
	"github.com/OlegQm/database-expert-bot/internal/adapters/driving/mcp"
	"github.com/OlegQm/database-expert-bot/internal/core/services"
	"github.com/OlegQm/database-expert-bot/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  dbexpert serve

  # HTTP mode
  dbexpert serve --port 8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("getting config flag: %w", err)
	}

	cfg, err := file.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := mongodb.Dial(cfg.MongoDB.URI)
	if err != nil {
		return err
	}

	knowledge := services.NewKnowledgeService(
		mongodb.NewStore(client, cfg.MongoDB.Database, cfg.MongoDB.Collection))
	schema := services.NewSchemaService(postgres.NewStore(cfg.Postgres.DSN))

	ctx := cmd.Context()
	if err := knowledge.Initialize(ctx); err != nil {
		return err
	}
	if err := schema.Initialize(ctx); err != nil {
		return err
	}
	defer func() {
		// Context may already be cancelled when we get here.
		shutdown := context.Background()
		if err := knowledge.Close(shutdown); err != nil {
			logger.Error("closing knowledge service: %v", err)
		}
		if err := schema.Close(shutdown); err != nil {
			logger.Error("closing schema service: %v", err)
		}
	}()

	server, err := mcp.NewServer(&mcp.Ports{
		Knowledge: knowledge,
		Schema:    schema,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
