package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/spatial-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can query
and populate the registry.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead.

Tools:     in_zone, proximity, add_zone, add_entity, status
Resources: spatial://zones, spatial://entities, spatial://export,
           spatial://zones/{zoneName}/entities

Examples:
  # Stdio mode (default)
  spatial mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  spatial mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Spatial:  svc,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
