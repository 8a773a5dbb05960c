// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signintech/gopdf"

	"github.com/elsirion/paper-ecash/pkg/types"
)

// cutLineWidthPt is the stroke width of the dashed cutting guides.
const cutLineWidthPt = 0.4

// Emit serializes the planned sheets into a single PDF at cfg.Output: for
// each sheet, a front page followed by its duplex back page, in input
// order. qrFiles holds one QR PNG path per note; an empty path leaves the
// slot's QR blank (the note failed encoding and the operator chose to
// continue). The PDF is written to a temporary file and renamed into place,
// so a failed run never leaves an output that implies success.
func Emit(cfg types.RenderConfig, qrFiles []string, w io.Writer) error {
	perSheet := SlotsPerSheet(cfg)
	sheets := SheetCount(len(qrFiles), perSheet)

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	noteW := CMToPt(cfg.NoteWidthCM)
	noteH := CMToPt(cfg.NoteHeightCM)
	qrSize := CMToPt(cfg.SizeCM)

	for sheet := 0; sheet < sheets; sheet++ {
		lo := sheet * perSheet
		hi := min(lo+perSheet, len(qrFiles))

		addGuidePage(&pdf)
		for s := 0; lo+s < hi; s++ {
			slot := SlotAt(cfg, s)
			x, y := CMToPt(slot.FrontX), CMToPt(slot.FrontY)
			if err := pdf.Image(cfg.FrontImage, x, y, &gopdf.Rect{W: noteW, H: noteH}); err != nil {
				return &types.RenderError{Path: cfg.FrontImage, Err: err}
			}
			if file := qrFiles[lo+s]; file != "" {
				if err := pdf.Image(file, CMToPt(slot.QRX), CMToPt(slot.QRY), &gopdf.Rect{W: qrSize, H: qrSize}); err != nil {
					return &types.RenderError{Path: file, Err: err}
				}
			}
			frontGuides(&pdf, x, y, noteW, noteH)
		}

		addGuidePage(&pdf)
		for s := 0; lo+s < hi; s++ {
			slot := SlotAt(cfg, s)
			x, y := CMToPt(slot.BackX), CMToPt(slot.BackY)
			if err := pdf.Image(cfg.BackImage, x, y, &gopdf.Rect{W: noteW, H: noteH}); err != nil {
				return &types.RenderError{Path: cfg.BackImage, Err: err}
			}
			backGuides(&pdf, x, y, noteW, noteH)
		}
	}

	if err := writeAtomic(&pdf, cfg.Output); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s (%d sheet(s), %d page(s))\n", cfg.Output, sheets, 2*sheets)
	return nil
}

// addGuidePage starts a page and sets the guide line state. Line width and
// dash pattern are content-stream operators scoped to the current page, so
// they must be re-issued after every AddPage.
func addGuidePage(pdf *gopdf.GoPdf) {
	pdf.AddPage()
	pdf.SetLineWidth(cutLineWidthPt)
	pdf.SetLineType("dashed")
}

// frontGuides draws dashed cutting lines on the top, bottom, and right
// edges of a front. The left edge sits on the page edge and needs none.
func frontGuides(pdf *gopdf.GoPdf, x, y, w, h float64) {
	pdf.Line(x, y, x+w, y)
	pdf.Line(x, y+h, x+w, y+h)
	pdf.Line(x+w, y, x+w, y+h)
}

// backGuides mirrors frontGuides for the right-anchored back: top, bottom,
// and left edges.
func backGuides(pdf *gopdf.GoPdf, x, y, w, h float64) {
	pdf.Line(x, y, x+w, y)
	pdf.Line(x, y+h, x+w, y+h)
	pdf.Line(x, y, x, y+h)
}

// writeAtomic renders the document into a temporary file beside outPath and
// renames it into place.
func writeAtomic(pdf *gopdf.GoPdf, outPath string) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".*")
	if err != nil {
		return &types.RenderError{Path: outPath, Err: err}
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := pdf.WritePdf(tmpPath); err != nil {
		os.Remove(tmpPath)
		return &types.RenderError{Path: outPath, Err: err}
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return &types.RenderError{Path: outPath, Err: err}
	}
	return nil
}
