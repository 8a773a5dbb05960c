// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout plans printable sheets of two-sided notes and emits the
// final PDF. Geometry is computed in centimeters throughout; the conversion
// to the PDF engine's point units happens once, at draw time, so rounding
// error never compounds across notes.
package layout

import (
	"github.com/elsirion/paper-ecash/pkg/types"
)

// A4 portrait, in centimeters.
const (
	PageWidthCM  = 21.0
	PageHeightCM = 29.7
)

// ptPerCM converts the authoritative centimeter space to PDF points.
const ptPerCM = 72.0 / 2.54

// CMToPt converts a length in centimeters to PDF points.
func CMToPt(cm float64) float64 {
	return cm * ptPerCM
}

// Slot is one note position on a sheet, in page coordinates (centimeters,
// origin at the top-left corner, y growing downward as the PDF engine
// draws).
type Slot struct {
	// FrontX, FrontY anchor the front artwork at the left page edge.
	FrontX, FrontY float64

	// BackX, BackY anchor the back artwork at the right page edge, so the
	// back lines up with its front when the sheet is flipped on the long
	// edge for duplex printing.
	BackX, BackY float64

	// QRX, QRY are the top-left corner of the QR overlay. The configured
	// offsets are measured from the bottom-left corner of the front.
	QRX, QRY float64
}

// SlotsPerSheet returns how many notes fit vertically on one sheet given
// the note height, vertical spacing, and page margin. Always at least 1: an
// oversized note still gets a sheet to itself.
func SlotsPerSheet(cfg types.RenderConfig) int {
	usable := PageHeightCM - 2*cfg.PageMarginCM
	fit := int((usable + cfg.VSpacingCM) / (cfg.NoteHeightCM + cfg.VSpacingCM))
	if fit < 1 {
		fit = 1
	}
	return fit
}

// SheetCount returns how many physical sheets n notes occupy.
func SheetCount(n, perSheet int) int {
	return (n + perSheet - 1) / perSheet
}

// SlotAt computes the geometry of slot s (0-based from the top of the
// sheet).
func SlotAt(cfg types.RenderConfig, s int) Slot {
	top := cfg.PageMarginCM + float64(s)*(cfg.NoteHeightCM+cfg.VSpacingCM)
	slot := Slot{
		FrontX: cfg.PageMarginCM,
		FrontY: top,
		BackX:  PageWidthCM - cfg.PageMarginCM - cfg.NoteWidthCM,
		BackY:  top,
	}
	slot.QRX = slot.FrontX + cfg.XOffsetCM
	slot.QRY = top + cfg.NoteHeightCM - cfg.YOffsetCM - cfg.SizeCM
	return slot
}
