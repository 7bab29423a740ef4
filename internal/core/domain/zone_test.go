package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneSpec_Validate_Defaults(t *testing.T) {
	spec := ZoneSpec{Name: "dock", Radius: 5}

	require.NoError(t, spec.Validate())
	assert.Equal(t, "dock", spec.Name)
	assert.Equal(t, DefaultZoneType, spec.Type)
}

func TestZoneSpec_Validate_KeepsType(t *testing.T) {
	spec := ZoneSpec{Name: "dock", Radius: 5, Type: "restricted"}

	require.NoError(t, spec.Validate())
	assert.Equal(t, "restricted", spec.Type)
}

func TestZoneSpec_Validate_NameVerbatim(t *testing.T) {
	spec := ZoneSpec{Name: "  dock  ", Radius: 5}

	require.NoError(t, spec.Validate())
	assert.Equal(t, "  dock  ", spec.Name)
}

func TestZoneSpec_Validate_ZeroRadius(t *testing.T) {
	spec := ZoneSpec{Name: "pin", Radius: 0}
	assert.NoError(t, spec.Validate())
}

func TestZoneSpec_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec ZoneSpec
	}{
		{"empty name", ZoneSpec{Name: "", Radius: 1}},
		{"negative radius", ZoneSpec{Name: "a", Radius: -1}},
		{"nan radius", ZoneSpec{Name: "a", Radius: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEntitySpec_Validate_Defaults(t *testing.T) {
	spec := EntitySpec{Name: "probe"}

	require.NoError(t, spec.Validate())
	assert.Equal(t, DefaultEntityType, spec.Type)
	assert.NotNil(t, spec.Metadata)
	assert.Empty(t, spec.Metadata)
}

func TestEntitySpec_Validate_AnyName(t *testing.T) {
	for _, name := range []string{"", "   ", " probe "} {
		spec := EntitySpec{Name: name}

		require.NoError(t, spec.Validate())
		assert.Equal(t, name, spec.Name)
	}
}
