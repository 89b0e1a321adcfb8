package aihorde_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lapismyt/aihorde-go"
)

// TestVersion_Constants verifies version constants are set correctly.
func TestVersion_Constants(t *testing.T) {
	assert.NotEmpty(t, aihorde.Version, "Version should not be empty")
	assert.NotEmpty(t, aihorde.APIVersion, "APIVersion should not be empty")
	assert.NotEmpty(t, aihorde.APIVersionRange, "APIVersionRange should not be empty")
	assert.True(t, aihorde.IsCompatible(aihorde.APIVersion), "the target API version must be in range")

	t.Logf("SDK Version: %s", aihorde.Version)
	t.Logf("API Version: %s", aihorde.APIVersion)
	t.Logf("API Range: %s", aihorde.APIVersionRange)
}

// TestIsCompatible tests the IsCompatible convenience function.
func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
	}{
		{"exact target version", aihorde.APIVersion, true},
		{"patch version in range", "4.44.7", true},
		{"older minor", "4.1.0", true},
		{"prerelease", "4.45.0-rc1", true},
		{"previous major", "3.9.9", false},
		{"next major", "5.0.0", false},
		{"empty version", "", false},
		{"invalid version", "not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := aihorde.IsCompatible(tt.version)
			assert.Equal(t, tt.compatible, result, "IsCompatible(%q) should return %v", tt.version, tt.compatible)
		})
	}
}

func TestCheckCompatibility_Compatible(t *testing.T) {
	result := aihorde.CheckCompatibility("4.44.0")

	assert.Equal(t, aihorde.Compatible, result.Status)
	assert.True(t, result.IsCompatible())
	assert.Equal(t, "4.44.0", result.ServerVersion)
	assert.Equal(t, aihorde.Version, result.SDKVersion)
	assert.Equal(t, aihorde.APIVersion, result.TargetAPIVersion)
	assert.Equal(t, aihorde.APIVersionRange, result.SupportedRange)
	assert.Contains(t, result.Message, "compatible")
	assert.NotContains(t, result.Message, "not compatible")
}

func TestCheckCompatibility_Incompatible(t *testing.T) {
	for _, v := range []string{"3.0.0", "5.1.0", "10.0.0"} {
		t.Run(v, func(t *testing.T) {
			result := aihorde.CheckCompatibility(v)

			assert.Equal(t, aihorde.Incompatible, result.Status)
			assert.False(t, result.IsCompatible())
			assert.Contains(t, result.Message, "not compatible")
			assert.Contains(t, result.Message, aihorde.APIVersionRange)
		})
	}
}

func TestCheckCompatibility_Unknown(t *testing.T) {
	result := aihorde.CheckCompatibility("latest")

	assert.Equal(t, aihorde.CompatibilityUnknown, result.Status)
	assert.False(t, result.IsCompatible())
	assert.Contains(t, result.Message, "cannot parse")
	assert.Equal(t, "unknown", result.Status.String())
}

func TestCompatibilityStatus_String(t *testing.T) {
	assert.Equal(t, "compatible", aihorde.Compatible.String())
	assert.Equal(t, "incompatible", aihorde.Incompatible.String())
	assert.Equal(t, "unknown", aihorde.CompatibilityUnknown.String())
}
