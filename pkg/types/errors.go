// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// InputError reports a missing or unusable input: the token file or one of
// the artwork images. Input errors are fatal and surface before any output
// is produced.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// EncodingError reports a token that could not be encoded as a QR symbol,
// typically because it exceeds the symbol capacity at the chosen
// error-correction level. Line is the 1-based line number of the offending
// token in the input file.
type EncodingError struct {
	Line int
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding note at line %d: %v", e.Line, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// RenderError reports a failure laying out or writing an output artifact.
// Render errors are fatal; the emitter guarantees no half-written PDF is
// left at the output path.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
