// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package qr rasterizes bearer tokens into QR symbol images sized for
// print, with an optional center icon overlay.
package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/elsirion/paper-ecash/pkg/types"
)

// dpi fixes the raster density used to derive pixel dimensions from the
// configured physical size. Doubling the physical size doubles the bitmap.
const dpi = 300

// IconSafePercent is the icon edge length, relative to the QR edge, above
// which the symbol may not stay scannable even at level H. Exceeding it is
// allowed; callers should warn the operator.
const IconSafePercent = 30

// EffectiveLevel resolves the error-correction policy. An explicitly chosen
// level always wins. Otherwise the default is M, upgraded to H when an icon
// overlay will occlude modules.
func EffectiveLevel(requested types.ECLevel, hasIcon, explicit bool) types.ECLevel {
	if explicit {
		return requested
	}
	if hasIcon {
		return types.ECHigh
	}
	if requested == "" {
		return types.ECMedium
	}
	return requested
}

// recoveryLevel maps the L/M/Q/H naming onto the encoder's constants. The
// encoder calls the Q tier "High" and the H tier "Highest".
func recoveryLevel(l types.ECLevel) (qrcode.RecoveryLevel, error) {
	switch l {
	case types.ECLow:
		return qrcode.Low, nil
	case types.ECMedium:
		return qrcode.Medium, nil
	case types.ECQuartile:
		return qrcode.High, nil
	case types.ECHigh:
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("unknown error-correction level %q", l)
}

// PixelSize converts a physical QR edge length in centimeters to pixels.
func PixelSize(sizeCM float64) int {
	return int(math.Round(sizeCM / 2.54 * dpi))
}

// FileName returns the QR image name for the n-th input token (1-based).
// Numbering follows input order even when earlier tokens failed, so file
// names stay matchable to input lines.
func FileName(n int) string {
	return fmt.Sprintf("ecash_%04d.png", n)
}

// Generator rasterizes tokens into QR images under a common configuration.
type Generator struct {
	cfg   types.RenderConfig
	level qrcode.RecoveryLevel
	icon  image.Image
}

// NewGenerator validates the configured level and loads the icon artwork,
// if any. The configuration's Level must already be the effective level.
func NewGenerator(cfg types.RenderConfig) (*Generator, error) {
	level, err := recoveryLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, level: level}
	if cfg.IconPath != "" {
		icon, err := imaging.Open(cfg.IconPath)
		if err != nil {
			return nil, &types.InputError{Path: cfg.IconPath, Err: err}
		}
		g.icon = icon
	}
	return g, nil
}

// Encode rasterizes a single note into a QR image at the configured
// physical size. The icon, if any, is composited onto the center after
// rasterization; it never participates in module generation. A token that
// exceeds the symbol capacity at the configured level yields an
// EncodingError carrying the note's line number.
func (g *Generator) Encode(note types.Note) (image.Image, error) {
	code, err := qrcode.New(note.Token, g.level)
	if err != nil {
		return nil, &types.EncodingError{Line: note.Line, Err: err}
	}
	if g.cfg.Transparent {
		code.BackgroundColor = color.Transparent
	}

	px := PixelSize(g.cfg.SizeCM)
	// Clone normalizes the encoder's paletted output to NRGBA so the PDF
	// engine always sees a plain RGBA PNG.
	img := imaging.Clone(code.Image(px))

	if g.icon != nil {
		edge := px * g.cfg.IconSizePercent / 100
		overlay := imaging.Resize(g.icon, edge, edge, imaging.Lanczos)
		img = imaging.OverlayCenter(img, overlay, 1.0)
	}
	return img, nil
}

// BatchResult holds the outcome of a batch QR generation run. Files has one
// entry per input note, in input order; an empty path marks a note whose
// encoding failed.
type BatchResult struct {
	Files     []string
	Generated int
	Failed    int
}

// HasFailures reports whether any notes failed encoding.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// GenerateBatch encodes every note into a PNG under dir, writing per-note
// progress to w. With keepGoing false it stops at the first encoding
// failure and returns it; otherwise it records the failure and continues.
// Filesystem failures abort in either mode.
func (g *Generator) GenerateBatch(noteList []types.Note, dir string, keepGoing bool, w io.Writer) (BatchResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return BatchResult{}, &types.RenderError{Path: dir, Err: err}
	}

	result := BatchResult{Files: make([]string, 0, len(noteList))}
	for i, note := range noteList {
		name := FileName(i + 1)
		img, err := g.Encode(note)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
			result.Failed++
			result.Files = append(result.Files, "")
			if !keepGoing {
				return result, err
			}
			continue
		}

		path := filepath.Join(dir, name)
		if err := writePNG(img, path); err != nil {
			return result, &types.RenderError{Path: path, Err: err}
		}
		fmt.Fprintf(w, "generated: %s (line %d)\n", name, note.Line)
		result.Generated++
		result.Files = append(result.Files, path)
	}

	fmt.Fprintf(w, "\n%d QR code(s) generated, %d failed\n", result.Generated, result.Failed)
	return result, nil
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
