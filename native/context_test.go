// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"gioui.org/glow/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestNewContextNilLoader(t *testing.T) {
	_, err := NewContext(nil)
	assert.Error(t, err)
}

func TestNewContextVersion(t *testing.T) {
	d := newFakeDriver("OpenGL ES 3.1 Mesa 23.0")
	c, err := d.context()
	require.NoError(t, err)
	v := c.Version()
	assert.True(t, v.Embedded)
	assert.Equal(t, uint32(3), v.Major)
	assert.Equal(t, uint32(1), v.Minor)
	assert.Equal(t, "Mesa 23.0", v.VendorInfo)
}

func TestNoCurrentContext(t *testing.T) {
	d := newFakeDriver("")
	d.nullVersion = true
	_, err := d.context()
	assert.ErrorIs(t, err, gl.ErrNoCurrentContext)

	_, err = newFakeDriver("").context()
	assert.ErrorIs(t, err, gl.ErrNoCurrentContext)
}

func TestMalformedVersion(t *testing.T) {
	_, err := newFakeDriver("garbage").context()
	var verr *gl.VersionError
	assert.True(t, errors.As(err, &verr))
}

func TestExtensions(t *testing.T) {
	exts := []string{"GL_EXT_color_buffer_float", "GL_OES_texture_float"}

	legacy, err := newFakeDriver("OpenGL ES 2.0", exts...).context()
	require.NoError(t, err)
	assert.Equal(t, exts, legacy.Extensions().Sorted())

	d := newFakeDriver("4.6.0 NVIDIA 535.54", exts...)
	d.indexed = true
	indexed, err := d.context()
	require.NoError(t, err)
	assert.True(t, indexed.HasExtension("GL_OES_texture_float"))
	assert.False(t, indexed.HasExtension("GL_KHR_debug"))
	assert.Len(t, indexed.Extensions(), 2)
}

func TestUnresolvedSorted(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	u := c.Unresolved()
	assert.True(t, slices.IsSorted(u))
	assert.Contains(t, u, "glBufferStorage")
	assert.NotContains(t, u, "glGetString")
	u[0] = "changed"
	assert.NotEqual(t, "changed", c.Unresolved()[0])
}

func TestCreateObjects(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	b1, err := c.CreateBuffer()
	require.NoError(t, err)
	b2, err := c.CreateBuffer()
	require.NoError(t, err)
	assert.True(t, b1.Valid())
	assert.NotEqual(t, b1, b2)

	tex, err := c.CreateTexture()
	require.NoError(t, err)
	c.DeleteTexture(tex)
	c.DeleteBuffer(b1)

	q, err := c.CreateQuery()
	require.NoError(t, err, "queries fall back to GL_EXT_disjoint_timer_query")
	assert.True(t, q.Valid())
}

func TestCreateObjectsAllocationFailure(t *testing.T) {
	d := newFakeDriver("OpenGL ES 3.0")
	c, err := d.context()
	require.NoError(t, err)
	d.failAlloc = true
	_, err = c.CreateBuffer()
	assert.ErrorIs(t, err, gl.ErrAllocation)
	_, err = c.CreateShader(gl.VERTEX_SHADER)
	assert.ErrorIs(t, err, gl.ErrAllocation)
}

func TestDeleteReleasesName(t *testing.T) {
	d := newFakeDriver("OpenGL ES 3.0")
	c, err := d.context()
	require.NoError(t, err)
	b, err := c.CreateBuffer()
	require.NoError(t, err)
	c.DeleteBuffer(b)
	assert.Equal(t, []uint32{b.V}, d.deleted)
}

func TestExtensionFallbacks(t *testing.T) {
	d := newFakeDriver("OpenGL ES 3.0")
	c, err := d.context()
	require.NoError(t, err)
	c.BufferStorage(gl.ARRAY_BUFFER, 4, nil, gl.DYNAMIC_STORAGE_BIT)
	c.DrawArraysInstanced(gl.TRIANGLES, 0, 3, 2)
	c.ClearDepthF32(1)
	c.DepthRangeF32(0, 1)
	assert.Equal(t, []string{"glBufferStorageEXT", "glDrawArraysInstancedANGLE", "glClearDepth", "glDepthRange"}, d.calls)
}

func TestCoreEntryPointsPreferred(t *testing.T) {
	d := newFakeDriver("OpenGL ES 3.2")
	d.core = true
	c, err := d.context()
	require.NoError(t, err)
	c.BufferStorage(gl.ARRAY_BUFFER, 4, nil, gl.DYNAMIC_STORAGE_BIT)
	c.DrawArraysInstanced(gl.TRIANGLES, 0, 3, 2)
	c.ClearDepthF32(1)
	c.DepthRangeF32(0, 1)
	assert.Equal(t, []string{"glBufferStorage", "glDrawArraysInstanced", "glClearDepthf", "glDepthRangef"}, d.calls)
}

func TestMissingEntryPointPanics(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		var uerr *gl.UnsupportedError
		require.True(t, errors.As(err, &uerr))
		assert.Equal(t, "DispatchCompute", uerr.Op)
		assert.ErrorIs(t, err, gl.ErrUnsupported)
	}()
	c.DispatchCompute(1, 1, 1)
}

func TestUniforms(t *testing.T) {
	d := newFakeDriver("OpenGL ES 3.0")
	c, err := d.context()
	require.NoError(t, err)

	l, ok := c.GetUniformLocation(gl.Program{V: 1}, "offset")
	require.True(t, ok)
	assert.True(t, l.Valid(), "location 0 is a valid location")
	_, ok = c.GetUniformLocation(gl.Program{V: 1}, "missing")
	assert.False(t, ok)

	c.Uniform2F32Slice(l, []float32{1, 2, 3, 4, 5, 6})
	assert.Equal(t, int32(3), d.uniforms[l.V])
	assert.Panics(t, func() {
		c.Uniform2F32Slice(l, []float32{1, 2, 3})
	})
}

func TestUniformBlockIndex(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	_, ok := c.GetUniformBlockIndex(gl.Program{V: 1}, "Block")
	assert.False(t, ok)
}

func TestParameterSlice(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	vp := make([]int32, 4)
	c.GetParameterI32Slice(gl.VIEWPORT, vp)
	assert.Equal(t, []int32{0, 0, 640, 480}, vp)

	short := make([]int32, 2)
	c.GetParameterI32Slice(gl.VIEWPORT, short)
	assert.Equal(t, []int32{0, 0}, short)
	assert.NotPanics(t, func() { c.GetParameterI32Slice(gl.VIEWPORT, nil) })

	color := make([]float32, 3)
	c.GetParameterF32Slice(gl.COLOR_CLEAR_VALUE, color)
	assert.Equal(t, []float32{0.25, 0.5, 0.75}, color)
}

func TestClearBufferSlice(t *testing.T) {
	d := newFakeDriver("OpenGL ES 3.0")
	c, err := d.context()
	require.NoError(t, err)

	c.ClearBufferF32Slice(gl.COLOR, 0, []float32{1, 0, 1, 1})
	assert.Equal(t, []float32{1, 0, 1, 1}, d.cleared)
	c.ClearBufferF32Slice(gl.DEPTH, 0, []float32{0.5})
	assert.Equal(t, []float32{0.5}, d.cleared)

	assert.PanicsWithError(t, "native: ClearBufferF32Slice: slice length 1 is less than 4", func() {
		c.ClearBufferF32Slice(gl.COLOR, 0, []float32{1})
	})
	assert.PanicsWithError(t, "native: ClearBufferI32Slice: slice length 0 is less than 1", func() {
		c.ClearBufferI32Slice(gl.STENCIL, 0, nil)
	})
	assert.PanicsWithError(t, "native: ClearBufferU32Slice: slice length 3 is less than 4", func() {
		c.ClearBufferU32Slice(gl.COLOR, 1, []uint32{1, 2, 3})
	})
}

func TestInvalidUTF8Panics(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	assert.Panics(t, func() {
		c.GetParameterString(gl.VENDOR)
	})
}

func TestSync(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	f, err := c.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	require.NoError(t, err)
	assert.True(t, f.Valid())
	assert.Equal(t, uint32(gl.SIGNALED), c.GetSyncStatus(f))
	assert.Equal(t, uint32(gl.ALREADY_SIGNALED), c.ClientWaitSync(f, 0, gl.TIMEOUT_IGNORED))
	assert.Equal(t, uint32(gl.TIMEOUT_EXPIRED), c.ClientWaitSync(f, 0, 1000))
}

func TestDebugUnsupported(t *testing.T) {
	c, err := newFakeDriver("OpenGL ES 3.0").context()
	require.NoError(t, err)
	assert.False(t, c.SupportsDebug())
	assert.Zero(t, c.MaxLabelLength())
	defer func() {
		_, ok := recover().(*gl.UnsupportedError)
		assert.True(t, ok)
	}()
	c.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, "frame")
}

func debugDriver() *fakeDriver {
	d := newFakeDriver("OpenGL ES 3.0", "GL_KHR_debug")
	d.debug = true
	return d
}

func TestObjectLabel(t *testing.T) {
	c, err := debugDriver().context()
	require.NoError(t, err)
	require.True(t, c.SupportsDebug())
	assert.Equal(t, int32(16), c.MaxLabelLength())

	assert.Equal(t, "", c.GetObjectLabel(gl.BUFFER, 1))
	c.ObjectLabel(gl.BUFFER, 1, "vertices")
	assert.Equal(t, "vertices", c.GetObjectLabel(gl.BUFFER, 1))

	c.ObjectLabel(gl.TEXTURE, 2, "a very long texture label")
	assert.Equal(t, "a very long tex", c.GetObjectLabel(gl.TEXTURE, 2))
}

func TestDebugCallback(t *testing.T) {
	c, err := debugDriver().context()
	require.NoError(t, err)

	var got []gl.DebugMessage
	c.DebugMessageCallback(func(source, typ, id, severity uint32, message string) {
		got = append(got, gl.DebugMessage{Source: source, Type: typ, ID: id, Severity: severity, Message: message})
	})
	c.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 7, gl.DEBUG_SEVERITY_NOTIFICATION, "hello")
	require.Len(t, got, 1)
	assert.Equal(t, gl.DebugMessage{
		Source:   gl.DEBUG_SOURCE_APPLICATION,
		Type:     gl.DEBUG_TYPE_MARKER,
		ID:       7,
		Severity: gl.DEBUG_SEVERITY_NOTIFICATION,
		Message:  "hello",
	}, got[0])

	c.DebugMessageCallback(nil)
	c.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 8, gl.DEBUG_SEVERITY_NOTIFICATION, "dropped")
	assert.Len(t, got, 1)
}

func TestReleaseDropsDebugCallback(t *testing.T) {
	d := debugDriver()
	c, err := d.context()
	require.NoError(t, err)

	calls := 0
	c.DebugMessageCallback(func(source, typ, id, severity uint32, message string) {
		calls++
	})
	token := d.token
	require.NotZero(t, token)

	c.Release()
	debugCallbacks.mu.Lock()
	_, registered := debugCallbacks.funcs[token]
	debugCallbacks.mu.Unlock()
	assert.False(t, registered)

	c.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 9, gl.DEBUG_SEVERITY_NOTIFICATION, "late")
	assert.Zero(t, calls)
	assert.NotPanics(t, c.Release)
}

func TestDebugCallbackPanicRecovered(t *testing.T) {
	var buf bytes.Buffer
	gl.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer gl.SetLogger(nil)

	c, err := debugDriver().context()
	require.NoError(t, err)
	c.DebugMessageCallback(func(source, typ, id, severity uint32, message string) {
		panic("callback failed")
	})
	assert.NotPanics(t, func() {
		c.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_ERROR, 1, gl.DEBUG_SEVERITY_HIGH, "boom")
	})
	assert.Contains(t, buf.String(), "debug callback panicked")
}
