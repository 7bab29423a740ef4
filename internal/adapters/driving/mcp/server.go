package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/spatial-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// instructions is sent to clients during initialization.
const instructions = `Spatial registry of spherical zones and point entities in 3D space.
Use in_zone to list the entities inside a named zone and proximity to find
entities near a named entity. Both return matches sorted by distance and an
empty list for unknown names. Zones and entities are added with add_zone and
add_entity; read the spatial:// resources for full listings and exports.`

// Server exposes the spatial registry to MCP clients as tools and resources.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer registers the registry tools and resources against ports.
// Ports must carry a spatial service; settings are optional.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "spatial",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves the registry over stdio until ctx is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Section("MCP server")
	logger.Info("serving registry over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the registry as a streamable HTTP endpoint on addr. A
// cancelled ctx shuts the listener down and RunHTTP returns nil.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Section("MCP server")
	logger.Info("serving registry over HTTP on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
