// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseECLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    ECLevel
		wantErr bool
	}{
		{"L", ECLow, false},
		{"M", ECMedium, false},
		{"Q", ECQuartile, false},
		{"H", ECHigh, false},
		{"m", ECMedium, false},
		{" h ", ECHigh, false},
		{"", "", true},
		{"X", "", true},
		{"High", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseECLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderConfigValidate(t *testing.T) {
	valid := DefaultRenderConfig()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RenderConfig)
	}{
		{"zero qr size", func(c *RenderConfig) { c.SizeCM = 0 }},
		{"negative qr size", func(c *RenderConfig) { c.SizeCM = -1 }},
		{"zero note width", func(c *RenderConfig) { c.NoteWidthCM = 0 }},
		{"negative margin", func(c *RenderConfig) { c.PageMarginCM = -0.1 }},
		{"icon size out of range", func(c *RenderConfig) {
			c.IconPath = "icon.png"
			c.IconSizePercent = 0
		}},
		{"bad level", func(c *RenderConfig) { c.Level = "Z" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRenderConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// Oversized icons are an operator responsibility, not a validation error.
func TestRenderConfigValidate_PermitsOversizedIcon(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.IconPath = "icon.png"
	cfg.IconSizePercent = 50
	assert.NoError(t, cfg.Validate())
}
