package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/custodia-labs/spatial-cli/internal/core/domain"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driven"
	"github.com/custodia-labs/spatial-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDataDir          = "storage.data_dir"
	KeyDefaultThreshold = "query.default_threshold"
	KeyDefaultRadius    = "zone.default_radius"
	KeyColor            = "output.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or malformed keys fall back to
// the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		DataDir:          s.configStore.GetString(KeyDataDir),
		DefaultThreshold: s.getNonNegative(KeyDefaultThreshold, defaults.DefaultThreshold),
		DefaultRadius:    s.getNonNegative(KeyDefaultRadius, defaults.DefaultRadius),
		Color:            defaults.Color,
	}
	if mode, err := domain.ParseColorMode(s.configStore.GetString(KeyColor)); err == nil {
		settings.Color = mode
	}

	return settings, nil
}

// Set parses and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyDataDir:
		return s.configStore.Set(key, value)
	case KeyDefaultThreshold, KeyDefaultRadius:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %q: %w", key, value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, f)
	case KeyColor:
		mode, err := domain.ParseColorMode(value)
		if err != nil {
			return err
		}
		return s.configStore.Set(key, mode.String())
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// Keys lists the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyDataDir, KeyDefaultThreshold, KeyDefaultRadius, KeyColor}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getNonNegative(key string, fallback float64) float64 {
	f, ok := s.configStore.GetFloat(key)
	if !ok || math.IsNaN(f) || f < 0 {
		return fallback
	}
	return f
}
