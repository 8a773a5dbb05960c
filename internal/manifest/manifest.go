// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records which input row landed on which printed sheet,
// so unspent notes can be traced back to the source file and reclaimed.
package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/elsirion/paper-ecash/pkg/types"
)

// prefixLen bounds the token excerpt recorded per entry. The full token is
// a bearer instrument; the manifest is a cross-reference, not a wallet
// backup, and must never duplicate spendable material.
const prefixLen = 16

// Entry ties one input row to its rendered artifacts. Sheet and Slot are
// 1-based; Slot counts from the top of the sheet.
type Entry struct {
	Line        int    `yaml:"line"`
	TokenPrefix string `yaml:"token_prefix"`
	QRFile      string `yaml:"qr_file"`
	Sheet       int    `yaml:"sheet"`
	Slot        int    `yaml:"slot"`
}

// Document is the on-disk manifest.
type Document struct {
	GeneratedAt string  `yaml:"generated_at"`
	Source      string  `yaml:"source"`
	Output      string  `yaml:"output"`
	Notes       []Entry `yaml:"notes"`
}

// Prefix returns the traceability excerpt recorded for a token.
func Prefix(token string) string {
	if len(token) <= prefixLen {
		return token
	}
	return token[:prefixLen]
}

// Build assembles the manifest for a completed run. noteList and qrFiles
// are aligned by index; an empty file path means the note failed encoding
// and is omitted (its absence is itself the signal that the row was never
// printed). perSheet is the slot count from the layout plan.
func Build(source, output string, noteList []types.Note, qrFiles []string, perSheet int) Document {
	doc := Document{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      source,
		Output:      output,
	}
	for i, note := range noteList {
		if i >= len(qrFiles) || qrFiles[i] == "" {
			continue
		}
		doc.Notes = append(doc.Notes, Entry{
			Line:        note.Line,
			TokenPrefix: Prefix(note.Token),
			QRFile:      qrFiles[i],
			Sheet:       i/perSheet + 1,
			Slot:        i%perSheet + 1,
		})
	}
	return doc
}

// Write marshals the document to path.
func Write(doc Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.RenderError{Path: path, Err: err}
	}
	return nil
}
