// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32(v uint32) *uint32 { return &v }

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"4.6.0 NVIDIA 535.104.05", NewVersion(4, 6, u32(0), "NVIDIA 535.104.05")},
		{"3.3 (Core Profile) Mesa 23.0.4", NewVersion(3, 3, nil, "(Core Profile) Mesa 23.0.4")},
		{"2.1", NewVersion(2, 1, nil, "")},
		{"OpenGL ES 3.2 build 1.13@5776728", NewEmbeddedVersion(3, 2, "build 1.13@5776728")},
		{"OpenGL ES-CM 1.1", NewEmbeddedVersion(1, 1, "")},
		{"OpenGL ES-CL 1.0 Vendor", NewEmbeddedVersion(1, 0, "Vendor")},
		{"OpenGL ES 2.0 (WebGL 1.0)", NewEmbeddedVersion(2, 0, "(WebGL 1.0)")},
		{"WebGL 1.0", NewEmbeddedVersion(2, 0, "")},
		{"WebGL 2.0 (OpenGL ES 3.0 Chromium)", NewEmbeddedVersion(3, 0, "(OpenGL ES 3.0 Chromium)")},
	}
	for _, test := range tests {
		got, err := ParseVersion(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestParseVersionErrors(t *testing.T) {
	for _, in := range []string{"", "OpenGL ES", "4", "a.b", "4.6.0.1", "OpenGL ES x.1", "-1.0"} {
		_, err := ParseVersion(in)
		var verr *VersionError
		if assert.True(t, errors.As(err, &verr), "%q: got %v", in, err) {
			assert.Equal(t, in, verr.Raw)
		}
	}
}

func TestVersionOrdering(t *testing.T) {
	gl33 := NewVersion(3, 3, nil, "")
	gl46 := NewVersion(4, 6, u32(0), "NVIDIA")
	gl460 := NewVersion(4, 6, u32(9), "other")
	es30 := NewEmbeddedVersion(3, 0, "")
	es32 := NewEmbeddedVersion(3, 2, "")

	c, ok := gl33.Compare(gl46)
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = gl46.Compare(gl460)
	assert.True(t, ok)
	assert.Equal(t, 0, c, "patch and vendor info must not affect ordering")

	c, ok = es32.Compare(es30)
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	_, ok = es32.Compare(gl33)
	assert.False(t, ok)

	assert.True(t, gl46.AtLeast(gl33))
	assert.False(t, gl33.AtLeast(gl46))
	assert.False(t, es32.AtLeast(NewVersion(3, 2, nil, "")), "embedded never satisfies a desktop minimum")
	assert.False(t, NewVersion(3, 2, nil, "").AtLeast(es30))
	assert.True(t, gl46.AtLeastGL(4, 3))
	assert.False(t, gl46.AtLeastES(2, 0))
	assert.True(t, es30.AtLeastES(3, 0))
}

func TestVersionCrossKind(t *testing.T) {
	es, err := ParseVersion("OpenGL ES 3.2")
	require.NoError(t, err)
	desktop := NewVersion(3, 0, nil, "")
	assert.False(t, es.AtLeast(desktop))
	assert.False(t, desktop.AtLeast(es))
	_, ok := es.Compare(desktop)
	assert.False(t, ok)
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "4.6.0 NVIDIA", NewVersion(4, 6, u32(0), "NVIDIA").String())
	assert.Equal(t, "3.3", NewVersion(3, 3, nil, "").String())
	assert.Equal(t, "OpenGL ES 3.2 Mali", NewEmbeddedVersion(3, 2, "Mali").String())
}
