package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// InZoneInput is the input schema for the in_zone tool.
type InZoneInput struct {
	Zone string `json:"zone" jsonschema:"name of the zone to query"`
}

// ProximityInput is the input schema for the proximity tool.
type ProximityInput struct {
	Entity    string   `json:"entity" jsonschema:"name of the target entity"`
	Threshold *float64 `json:"threshold,omitempty" jsonschema:"maximum distance (default from settings, 50)"`
}

// MatchesOutput is the output schema for the query tools.
type MatchesOutput struct {
	Matches []MatchOutput `json:"matches"`
	Count   int           `json:"count"`
}

// MatchOutput is a single entity with its distance to the query origin.
type MatchOutput struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Type     string  `json:"entity_type"`
	Distance float64 `json:"distance"`
}

// AddZoneInput is the input schema for the add_zone tool.
type AddZoneInput struct {
	Name   string   `json:"name" jsonschema:"unique zone name"`
	CX     float64  `json:"cx,omitempty" jsonschema:"center x"`
	CY     float64  `json:"cy,omitempty" jsonschema:"center y"`
	CZ     float64  `json:"cz,omitempty" jsonschema:"center z"`
	Radius *float64 `json:"radius,omitempty" jsonschema:"radius (default from settings, 10)"`
	Type   string   `json:"zone_type,omitempty" jsonschema:"zone type (default generic)"`
}

// AddEntityInput is the input schema for the add_entity tool.
type AddEntityInput struct {
	Name     string         `json:"name" jsonschema:"entity name"`
	X        float64        `json:"x,omitempty" jsonschema:"x coordinate"`
	Y        float64        `json:"y,omitempty" jsonschema:"y coordinate"`
	Z        float64        `json:"z,omitempty" jsonschema:"z coordinate"`
	Type     string         `json:"entity_type,omitempty" jsonschema:"entity type (default object)"`
	Metadata map[string]any `json:"metadata,omitempty" jsonschema:"string-keyed attributes; values may be null, strings, numbers, booleans or objects"`
}

// CreatedOutput reports a created record.
type CreatedOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StatusInput is the (empty) input schema for the status tool.
type StatusInput struct{}

// StatusOutput is the output schema for the status tool.
type StatusOutput struct {
	ActiveZones   int    `json:"active_zones"`
	TotalEntities int    `json:"total_entities"`
	Location      string `json:"location"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "in_zone",
		Description: "List the entities inside a zone, nearest to its center first",
	}, s.handleInZone)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "proximity",
		Description: "List the entities within a distance of a named entity, nearest first",
	}, s.handleProximity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_zone",
		Description: "Create a spherical zone with a unique name",
	}, s.handleAddZone)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_entity",
		Description: "Register an entity at a position",
	}, s.handleAddEntity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "status",
		Description: "Count active zones and registered entities",
	}, s.handleStatus)
}

// handleInZone handles the in_zone tool invocation.
func (s *Server) handleInZone(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InZoneInput,
) (*mcp.CallToolResult, MatchesOutput, error) {
	matches, err := s.ports.Spatial.FindEntitiesInZone(ctx, input.Zone)
	if err != nil {
		return nil, MatchesOutput{}, err
	}
	return nil, toMatchesOutput(matches), nil
}

// handleProximity handles the proximity tool invocation.
func (s *Server) handleProximity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProximityInput,
) (*mcp.CallToolResult, MatchesOutput, error) {
	threshold := s.ports.defaults().DefaultThreshold
	if input.Threshold != nil {
		threshold = *input.Threshold
	}

	matches, err := s.ports.Spatial.ProximityCheck(ctx, input.Entity, threshold)
	if err != nil {
		return nil, MatchesOutput{}, err
	}
	return nil, toMatchesOutput(matches), nil
}

// handleAddZone handles the add_zone tool invocation.
func (s *Server) handleAddZone(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddZoneInput,
) (*mcp.CallToolResult, CreatedOutput, error) {
	radius := s.ports.defaults().DefaultRadius
	if input.Radius != nil {
		radius = *input.Radius
	}

	zone, err := s.ports.Spatial.CreateZone(ctx, domain.ZoneSpec{
		Name:   input.Name,
		Center: domain.Point{X: input.CX, Y: input.CY, Z: input.CZ},
		Radius: radius,
		Type:   input.Type,
	})
	if err != nil {
		return nil, CreatedOutput{}, err
	}
	return nil, CreatedOutput{ID: zone.ID, Name: zone.Name}, nil
}

// handleAddEntity handles the add_entity tool invocation.
func (s *Server) handleAddEntity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddEntityInput,
) (*mcp.CallToolResult, CreatedOutput, error) {
	meta, err := toMetadata(input.Metadata)
	if err != nil {
		return nil, CreatedOutput{}, err
	}

	entity, err := s.ports.Spatial.CreateEntity(ctx, domain.EntitySpec{
		Name:     input.Name,
		Position: domain.Point{X: input.X, Y: input.Y, Z: input.Z},
		Type:     input.Type,
		Metadata: meta,
	})
	if err != nil {
		return nil, CreatedOutput{}, err
	}
	return nil, CreatedOutput{ID: entity.ID, Name: entity.Name}, nil
}

// handleStatus handles the status tool invocation.
func (s *Server) handleStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StatusInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	st, err := s.ports.Spatial.Status(ctx)
	if err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, StatusOutput{
		ActiveZones:   st.ActiveZones,
		TotalEntities: st.TotalEntities,
		Location:      st.Location,
	}, nil
}

func toMatchesOutput(matches []domain.Match) MatchesOutput {
	output := MatchesOutput{
		Matches: make([]MatchOutput, len(matches)),
		Count:   len(matches),
	}
	for i := range matches {
		e := matches[i].Entity
		output.Matches[i] = MatchOutput{
			ID:       e.ID,
			Name:     e.Name,
			X:        e.Position.X,
			Y:        e.Position.Y,
			Z:        e.Position.Z,
			Type:     e.Type,
			Distance: matches[i].Distance,
		}
	}
	return output
}

// toMetadata re-decodes loosely typed tool arguments into metadata.
func toMetadata(raw map[string]any) (domain.Metadata, error) {
	if len(raw) == 0 {
		return domain.Metadata{}, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	return domain.ParseMetadata(string(data))
}
