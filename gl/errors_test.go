// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type handleName string

func (n handleName) String() string { return string(n) }

func TestTypedErrors(t *testing.T) {
	var err error = &UnsupportedError{Op: "BufferStorage", Reason: "missing glBufferStorage"}
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.False(t, errors.Is(err, ErrInvalidHandle))
	assert.Equal(t, "gl: BufferStorage is not supported: missing glBufferStorage", err.Error())
	assert.Equal(t, "gl: PolygonMode is not supported", (&UnsupportedError{Op: "PolygonMode"}).Error())

	err = fmt.Errorf("draw: %w", &InvalidHandleError{Kind: "Texture", Handle: handleName("3v1")})
	assert.True(t, errors.Is(err, ErrInvalidHandle))
	var herr *InvalidHandleError
	if assert.True(t, errors.As(err, &herr)) {
		assert.Equal(t, "Texture", herr.Kind)
	}
	assert.Contains(t, err.Error(), "invalid Texture handle 3v1")
}
