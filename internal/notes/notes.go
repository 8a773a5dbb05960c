// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes reads bearer tokens from a token file, one per line.
package notes

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/elsirion/paper-ecash/pkg/types"
)

// maxTokenLen bounds a single input line. Ecash tokens run to a few
// kilobytes; anything near this limit will not fit a QR symbol anyway.
const maxTokenLen = 1 << 20

// Load reads tokens from path. The file is a single column, so no CSV
// quoting applies: each non-blank line is one opaque token. Blank and
// whitespace-only lines are skipped; surviving tokens keep their original
// 1-based line numbers. A missing file or a file with no usable tokens is
// an InputError.
func Load(path string) ([]types.Note, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.InputError{Path: path, Err: err}
	}
	defer f.Close()

	var out []types.Note
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenLen)
	line := 0
	for scanner.Scan() {
		line++
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		out = append(out, types.Note{Line: line, Token: token})
	}
	if err := scanner.Err(); err != nil {
		return nil, &types.InputError{Path: path, Err: err}
	}
	if len(out) == 0 {
		return nil, &types.InputError{Path: path, Err: errors.New("no tokens found")}
	}
	return out, nil
}
