package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for registry resources.
	uriScheme = "spatial://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "zones",
		Name:        "zones",
		Description: "All zones, including inactive ones",
		MIMEType:    "application/json",
	}, s.handleZonesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "entities",
		Name:        "entities",
		Description: "All registered entities",
		MIMEType:    "application/json",
	}, s.handleEntitiesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "export",
		Name:        "export",
		Description: "Full registry export",
		MIMEType:    "application/json",
	}, s.handleExportResource)

	// Template for zone members.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "zones/{zoneName}/entities",
		Name:        "zone-entities",
		Description: "Entities inside a specific zone",
		MIMEType:    "application/json",
	}, s.handleZoneEntitiesResource)
}

// handleZonesResource returns every zone.
func (s *Server) handleZonesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	zones, err := s.ports.Spatial.ListZones(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}

	records := make([]domain.ZoneRecord, len(zones))
	for i := range zones {
		records[i] = domain.NewZoneRecord(zones[i])
	}
	return jsonResult(req.Params.URI, records)
}

// handleEntitiesResource returns every entity.
func (s *Server) handleEntitiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entities, err := s.ports.Spatial.ListEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}

	// Build entity list with structured metadata.
	type entityInfo struct {
		ID          int64           `json:"id"`
		Name        string          `json:"name"`
		X           float64         `json:"x"`
		Y           float64         `json:"y"`
		Z           float64         `json:"z"`
		Type        string          `json:"entity_type"`
		Metadata    domain.Metadata `json:"metadata"`
		LastUpdated time.Time       `json:"last_updated"`
	}

	infos := make([]entityInfo, len(entities))
	for i := range entities {
		e := entities[i]
		infos[i] = entityInfo{
			ID:          e.ID,
			Name:        e.Name,
			X:           e.Position.X,
			Y:           e.Position.Y,
			Z:           e.Position.Z,
			Type:        e.Type,
			Metadata:    e.Metadata,
			LastUpdated: e.LastUpdated,
		}
		if infos[i].Metadata == nil {
			infos[i].Metadata = domain.Metadata{}
		}
	}
	return jsonResult(req.Params.URI, infos)
}

// handleExportResource returns the full export document.
func (s *Server) handleExportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	export, err := s.ports.Spatial.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting registry: %w", err)
	}
	return jsonResult(req.Params.URI, export)
}

// handleZoneEntitiesResource returns the members of a specific zone.
func (s *Server) handleZoneEntitiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract zoneName from URI: spatial://zones/{zoneName}/entities
	zoneName := extractZoneName(req.Params.URI)
	if zoneName == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	matches, err := s.ports.Spatial.FindEntitiesInZone(ctx, zoneName)
	if err != nil {
		return nil, fmt.Errorf("finding entities in zone: %w", err)
	}
	return jsonResult(req.Params.URI, toMatchesOutput(matches))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractZoneName extracts the zone name from a URI like
// spatial://zones/{zoneName}/entities. Names may be percent-encoded.
func extractZoneName(uri string) string {
	const prefix = uriScheme + "zones/"
	const suffix = "/entities"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimSuffix(uri, suffix))
	if err != nil {
		return ""
	}
	return name
}
