package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

var (
	entityX    float64
	entityY    float64
	entityZ    float64
	entityType string
	entityMeta []string
)

var addEntityCmd = &cobra.Command{
	Use:   "add-entity <name>",
	Short: "Register an entity",
	Long: `Register a named entity at a position. Names need not be unique.

Metadata is given as repeated --meta key=value pairs. Values of null, true,
false and numbers keep their type; anything else is stored as a string.`,
	Example: `  spatial add-entity drone-1 --x 3 --y 4 --type drone --meta battery=87 --meta armed=false`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAddEntity,
}

func init() {
	addEntityCmd.Flags().Float64Var(&entityX, "x", 0, "x coordinate")
	addEntityCmd.Flags().Float64Var(&entityY, "y", 0, "y coordinate")
	addEntityCmd.Flags().Float64Var(&entityZ, "z", 0, "z coordinate")
	addEntityCmd.Flags().StringVar(&entityType, "type", domain.DefaultEntityType, "entity type")
	addEntityCmd.Flags().StringArrayVar(&entityMeta, "meta", nil, "metadata key=value (repeatable)")
	rootCmd.AddCommand(addEntityCmd)
}

func runAddEntity(cmd *cobra.Command, args []string) error {
	meta, err := parseMetaFlags(entityMeta)
	if err != nil {
		return err
	}

	svc, err := requireSpatial()
	if err != nil {
		return err
	}

	entity, err := svc.CreateEntity(cmd.Context(), domain.EntitySpec{
		Name:     args[0],
		Position: domain.Point{X: entityX, Y: entityY, Z: entityZ},
		Type:     entityType,
		Metadata: meta,
	})
	if err != nil {
		return err
	}

	newPrinter(cmd).Created("Entity", entity.Name, "registered", entity.ID)
	return nil
}

// parseMetaFlags turns key=value pairs into metadata. Later keys win.
func parseMetaFlags(pairs []string) (domain.Metadata, error) {
	meta := domain.Metadata{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("metadata must be key=value, got %q: %w", pair, domain.ErrInvalidInput)
		}
		meta[key] = domain.ParseMetadataValue(value)
	}
	return meta, nil
}
