// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model: the render configuration,
// input notes, and the error taxonomy used across the pipeline stages.
package types

import (
	"fmt"
	"strings"
)

// ECLevel identifies a QR error-correction tier. Higher tiers tolerate more
// physical damage to the printed symbol at the cost of payload capacity.
type ECLevel string

const (
	ECLow      ECLevel = "L"
	ECMedium   ECLevel = "M"
	ECQuartile ECLevel = "Q"
	ECHigh     ECLevel = "H"
)

// ParseECLevel maps a user-supplied level name (case-insensitive) to an
// ECLevel.
func ParseECLevel(s string) (ECLevel, error) {
	switch l := ECLevel(strings.ToUpper(strings.TrimSpace(s))); l {
	case ECLow, ECMedium, ECQuartile, ECHigh:
		return l, nil
	default:
		return "", fmt.Errorf("unknown error-correction level %q (expected L, M, Q, or H)", s)
	}
}

// RenderConfig holds everything needed to turn a token list into a printable
// sheet of notes: artwork paths, QR placement, and page geometry. All
// physical lengths are centimeters; conversion to the PDF engine's point
// units happens once, at draw time.
type RenderConfig struct {
	// FrontImage and BackImage are the note artwork. The QR symbol is
	// overlaid on the front; the back is printed duplex-aligned.
	FrontImage string
	BackImage  string

	// Output is the final PDF path.
	Output string

	// QRDir is the directory for intermediate per-note QR images.
	QRDir string

	// IconPath is an optional image composited onto the center of every QR
	// symbol. When set, the default error-correction level upgrades to H
	// because the overlay occludes modules.
	IconPath string

	// IconSizePercent sizes the icon relative to the QR edge. Values above
	// 30 risk unscannable symbols even at level H; this is an operator
	// responsibility, not a hard check.
	IconSizePercent int

	// Level is the effective error-correction level.
	Level ECLevel

	// XOffsetCM and YOffsetCM position the QR symbol relative to the
	// bottom-left corner of the front artwork.
	XOffsetCM float64
	YOffsetCM float64

	// SizeCM is the printed edge length of the QR symbol.
	SizeCM float64

	// NoteWidthCM and NoteHeightCM are the printed artwork dimensions.
	NoteWidthCM  float64
	NoteHeightCM float64

	// PageMarginCM pads the sheet on all sides; VSpacingCM separates
	// vertically stacked notes.
	PageMarginCM float64
	VSpacingCM   float64

	// Transparent renders the QR background transparent so the front
	// artwork shows through between modules.
	Transparent bool

	// KeepGoing continues past per-note encoding failures instead of
	// aborting on the first one. The run still exits non-zero.
	KeepGoing bool

	// ManifestPath, when non-empty, writes a YAML manifest tying input
	// rows to printed sheets.
	ManifestPath string
}

// DefaultRenderConfig returns the configuration the CLI flags default to.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		FrontImage:      "front.png",
		BackImage:       "back.png",
		Output:          "ecash_notes.pdf",
		QRDir:           "qr_codes",
		IconSizePercent: 20,
		Level:           ECMedium,
		SizeCM:          7,
		NoteWidthCM:     14,
		NoteHeightCM:    7,
		Transparent:     true,
	}
}

// Validate checks the geometry for values the renderer cannot work with.
func (c RenderConfig) Validate() error {
	if c.SizeCM <= 0 {
		return fmt.Errorf("qr size must be positive, got %vcm", c.SizeCM)
	}
	if c.NoteWidthCM <= 0 || c.NoteHeightCM <= 0 {
		return fmt.Errorf("note dimensions must be positive, got %vx%vcm", c.NoteWidthCM, c.NoteHeightCM)
	}
	if c.PageMarginCM < 0 || c.VSpacingCM < 0 {
		return fmt.Errorf("page margin and vertical spacing must not be negative")
	}
	if c.IconPath != "" && (c.IconSizePercent < 1 || c.IconSizePercent > 100) {
		return fmt.Errorf("qr icon size must be between 1 and 100 percent, got %d", c.IconSizePercent)
	}
	if _, err := ParseECLevel(string(c.Level)); err != nil {
		return err
	}
	return nil
}
