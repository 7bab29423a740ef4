package domain

import (
	"fmt"
	"strings"
)

// ColorMode controls styled console output.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto styles output only when writing to a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"

	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// ParseColorMode parses a colour mode, case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown colour mode %q: %w", s, ErrInvalidInput)
	}
	return m, nil
}

// Settings holds user-configurable defaults.
type Settings struct {
	// DataDir is where the registry database lives. Empty means the
	// default location under the user's home directory.
	DataDir string

	// DefaultThreshold is the proximity threshold used when none is given.
	DefaultThreshold float64

	// DefaultRadius is the zone radius used when none is given.
	DefaultRadius float64

	// Color controls styled output.
	Color ColorMode
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultThreshold: 50,
		DefaultRadius:    10,
		Color:            ColorAuto,
	}
}
