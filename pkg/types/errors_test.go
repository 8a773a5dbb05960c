// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	cause := os.ErrNotExist

	var err error = &InputError{Path: "notes.csv", Err: cause}
	assert.Contains(t, err.Error(), "notes.csv")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	err = &EncodingError{Line: 12, Err: errors.New("content too long to encode")}
	assert.Contains(t, err.Error(), "line 12")
	var encErr *EncodingError
	assert.True(t, errors.As(err, &encErr))
	assert.Equal(t, 12, encErr.Line)

	err = &RenderError{Path: "ecash_notes.pdf", Err: errors.New("disk full")}
	assert.Contains(t, err.Error(), "ecash_notes.pdf")
	assert.Contains(t, err.Error(), "disk full")
}
