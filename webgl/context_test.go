// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"errors"
	"math"
	"syscall/js"
	"testing"

	"gioui.org/glow/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	webgl1Version = "WebGL 1.0 (OpenGL ES 2.0 Chromium)"
	webgl2Version = "WebGL 2.0 (OpenGL ES 3.0 Chromium)"
)

// panicsWith runs fn and returns the error it panicked with.
func panicsWith(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		v := recover()
		require.NotNil(t, v, "expected a panic")
		e, ok := v.(error)
		require.True(t, ok, "panic value %v is not an error", v)
		err = e
	}()
	fn()
	return nil
}

func assertUnsupported(t *testing.T, op string, fn func()) {
	t.Helper()
	err := panicsWith(t, fn)
	var uerr *gl.UnsupportedError
	require.True(t, errors.As(err, &uerr), "got %v", err)
	assert.Equal(t, op, uerr.Op)
}

func TestNewContextErrors(t *testing.T) {
	_, err := NewWebGL1(js.Null())
	assert.Error(t, err)

	f := newFakeGL(t, "")
	f.version = nil
	_, err = NewWebGL2(f.ctx)
	assert.ErrorIs(t, err, gl.ErrNoCurrentContext)
}

func TestVersion(t *testing.T) {
	c := newFakeGL(t, webgl2Version).webgl2()
	assert.Equal(t, WebGL2, c.Level())
	assert.Equal(t, gl.NewEmbeddedVersion(3, 0, "(OpenGL ES 3.0 Chromium)"), c.Version())
	assert.False(t, c.SupportsDebug())
	assert.Zero(t, c.MaxLabelLength())

	c = newFakeGL(t, "Experimental").webgl1()
	assert.True(t, c.Version().AtLeastES(2, 0))
	assert.False(t, c.Version().AtLeastES(3, 0))
}

func TestExtensions(t *testing.T) {
	f := newFakeGL(t, webgl1Version)
	f.extensions = []any{"OES_texture_float", "EXT_sRGB"}
	c := f.webgl1()
	assert.True(t, c.HasExtension("OES_texture_float"))
	assert.True(t, c.HasExtension("GL_EXT_sRGB"))
	assert.False(t, c.HasExtension("WEBGL_draw_buffers"))
	assert.Equal(t, "GL_EXT_sRGB GL_OES_texture_float", c.GetParameterString(gl.EXTENSIONS))
}

func TestHandleReuse(t *testing.T) {
	c := newFakeGL(t, webgl2Version).webgl2()
	t1, err := c.CreateTexture()
	require.NoError(t, err)
	c.DeleteTexture(t1)
	t2, err := c.CreateTexture()
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
	assert.Equal(t, t1.K.Index(), t2.K.Index(), "the slot is reused")

	err = panicsWith(t, func() { c.BindTexture(gl.TEXTURE_2D, t1) })
	var herr *gl.InvalidHandleError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "texture", herr.Kind)
	assert.ErrorIs(t, err, gl.ErrInvalidHandle)
}

func TestZeroHandleUnbinds(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	c := f.webgl2()
	c.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	bind, ok := f.last("bindBuffer")
	require.True(t, ok)
	assert.True(t, bind.args[1].IsNull())
	c.DeleteBuffer(gl.Buffer{})
	_, ok = f.last("deleteBuffer")
	assert.False(t, ok)
}

func TestDeleteTwice(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	c := f.webgl2()
	tex, err := c.CreateTexture()
	require.NoError(t, err)
	p, err := c.CreateProgram()
	require.NoError(t, err)

	c.DeleteTexture(tex)
	assert.NotPanics(t, func() { c.DeleteTexture(tex) })
	assert.Equal(t, 1, f.count("deleteTexture"))
	c.DeleteProgram(p)
	assert.NotPanics(t, func() { c.DeleteProgram(p) })
	assert.Equal(t, 1, f.count("deleteProgram"))
}

func TestDeleteZeroHandleWebGL1(t *testing.T) {
	c := newFakeGL(t, webgl1Version).webgl1()
	assert.NotPanics(t, func() {
		c.DeleteVertexArray(gl.VertexArray{})
		c.DeleteQuery(gl.Query{})
		c.DeleteSampler(gl.Sampler{})
		c.DeleteTransformFeedback(gl.TransformFeedback{})
		c.DeleteSync(gl.Fence{})
	})
}

func TestCreateAllocationFailure(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	f.on(f.ctx, "createBuffer", func([]js.Value) any { return nil })
	c := f.webgl2()
	_, err := c.CreateBuffer()
	assert.ErrorIs(t, err, gl.ErrAllocation)
}

func TestBufferData(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	c := f.webgl2()
	c.BufferData(gl.ARRAY_BUFFER, []byte{1, 2, 3}, gl.STATIC_DRAW)
	data, ok := f.last("bufferData")
	require.True(t, ok)
	dst := make([]byte, 3)
	js.CopyBytesToGo(dst, data.args[1])
	assert.Equal(t, []byte{1, 2, 3}, dst)
}

func TestTexImageFloatView(t *testing.T) {
	f := newFakeGL(t, webgl1Version)
	c := f.webgl1()
	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.FLOAT, make([]byte, 16))
	tex, ok := f.last("texImage2D")
	require.True(t, ok)
	pixels := tex.args[8]
	assert.True(t, pixels.InstanceOf(js.Global().Get("Float32Array")))
	assert.Equal(t, 4, pixels.Length())

	c.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	tex, _ = f.last("texImage2D")
	assert.True(t, tex.args[8].IsNull())
}

func TestWebGL1Unsupported(t *testing.T) {
	c := newFakeGL(t, webgl1Version).webgl1()
	assertUnsupported(t, "CreateSampler", func() { c.CreateSampler() })
	assertUnsupported(t, "GetParameterIndexedI32", func() { c.GetParameterIndexedI32(gl.UNIFORM_BUFFER_BINDING, 0) })
	assertUnsupported(t, "TexStorage2D", func() { c.TexStorage2D(gl.TEXTURE_2D, 1, gl.RGBA8, 1, 1) })
	assertUnsupported(t, "FenceSync", func() { c.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0) })
	assertUnsupported(t, "Uniform1U32", func() { c.Uniform1U32(gl.UniformLocation{}, 1) })
	assertUnsupported(t, "InvalidateFramebuffer", func() { c.InvalidateFramebuffer(gl.FRAMEBUFFER, []uint32{gl.COLOR_ATTACHMENT0}) })
}

func TestUnsupportedOnBothLevels(t *testing.T) {
	c := newFakeGL(t, webgl2Version).webgl2()
	assertUnsupported(t, "BufferStorage", func() { c.BufferStorage(gl.ARRAY_BUFFER, 4, nil, 0) })
	assertUnsupported(t, "MapBufferRange", func() { c.MapBufferRange(gl.ARRAY_BUFFER, 0, 4, gl.MAP_READ_BIT) })
	assertUnsupported(t, "DispatchCompute", func() { c.DispatchCompute(1, 1, 1) })
	assertUnsupported(t, "DrawElementsBaseVertex", func() { c.DrawElementsBaseVertex(gl.TRIANGLES, 3, gl.UNSIGNED_SHORT, 0, 1) })
	assertUnsupported(t, "DrawArraysIndirectOffset", func() { c.DrawArraysIndirectOffset(gl.TRIANGLES, 0) })
	assertUnsupported(t, "PolygonMode", func() { c.PolygonMode(0, 0) })
	assertUnsupported(t, "GetParameterIndexedString", func() { c.GetParameterIndexedString(gl.EXTENSIONS, 0) })
	assertUnsupported(t, "PushDebugGroup", func() { c.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, "frame") })
	assertUnsupported(t, "DrawArraysInstancedBaseInstance", func() { c.DrawArraysInstancedBaseInstance(gl.TRIANGLES, 0, 3, 1, 1) })
}

func TestWebGL1Extensions(t *testing.T) {
	f := newFakeGL(t, webgl1Version)
	c := f.webgl1()
	assertUnsupported(t, "CreateVertexArray", func() { c.CreateVertexArray() })
	assertUnsupported(t, "DrawArraysInstanced", func() { c.DrawArraysInstanced(gl.TRIANGLES, 0, 3, 2) })

	f = newFakeGL(t, webgl1Version)
	f.addExtension("OES_vertex_array_object", "createVertexArrayOES", "bindVertexArrayOES", "deleteVertexArrayOES")
	f.addExtension("ANGLE_instanced_arrays", "drawArraysInstancedANGLE", "vertexAttribDivisorANGLE")
	c = f.webgl1()
	a, err := c.CreateVertexArray()
	require.NoError(t, err)
	c.BindVertexArray(a)
	c.DeleteVertexArray(a)
	c.DrawArraysInstanced(gl.TRIANGLES, 0, 3, 2)
	for _, name := range []string{"createVertexArrayOES", "bindVertexArrayOES", "deleteVertexArrayOES", "drawArraysInstancedANGLE"} {
		_, ok := f.last(name)
		assert.True(t, ok, name)
	}
	_, ok := f.last("drawArraysInstanced")
	assert.False(t, ok)
}

func TestUniformLocations(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	c := f.webgl2()
	p, err := c.CreateProgram()
	require.NoError(t, err)

	l1, ok := c.GetUniformLocation(p, "color")
	require.True(t, ok)
	l2, ok := c.GetUniformLocation(p, "color")
	require.True(t, ok)
	assert.Equal(t, l1, l2)
	_, ok = c.GetUniformLocation(p, "missing")
	assert.False(t, ok)

	c.Uniform2F32Slice(l1, []float32{1, 2, 3, 4})
	u, ok := f.last("uniform2fv")
	require.True(t, ok)
	assert.Equal(t, 4, u.args[1].Length())
	assert.Panics(t, func() { c.Uniform2F32Slice(l1, []float32{1, 2, 3}) })

	c.DeleteProgram(p)
	err = panicsWith(t, func() { c.Uniform1I32(l1, 0) })
	assert.ErrorIs(t, err, gl.ErrInvalidHandle)
}

func TestRelinkInvalidatesUniformLocations(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	c := f.webgl2()
	p, err := c.CreateProgram()
	require.NoError(t, err)
	c.LinkProgram(p)

	before, ok := c.GetUniformLocation(p, "color")
	require.True(t, ok)
	assert.Equal(t, 1, f.count("getUniformLocation"))

	c.LinkProgram(p)
	after, ok := c.GetUniformLocation(p, "color")
	require.True(t, ok)
	assert.Equal(t, 2, f.count("getUniformLocation"))
	assert.NotEqual(t, before, after)

	err = panicsWith(t, func() { c.Uniform1I32(before, 0) })
	var herr *gl.InvalidHandleError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "uniform location", herr.Kind)
	c.Uniform1I32(after, 0)
}

func TestParameterCoercion(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	f.params[gl.MAX_TEXTURE_SIZE] = 4096
	f.params[gl.RENDERER] = "WebKit WebGL"
	f.params[gl.DEPTH_TEST] = true
	f.params[gl.VIEWPORT] = []any{0, 0, 800, 600}
	c := f.webgl2()

	assert.Equal(t, int32(4096), c.GetParameterI32(gl.MAX_TEXTURE_SIZE))
	assert.Equal(t, int32(0), c.GetParameterI32(gl.RENDERER), "strings coerce to 0")
	assert.Equal(t, int32(1), c.GetParameterI32(gl.DEPTH_TEST))
	assert.Equal(t, "", c.GetParameterString(gl.MAX_TEXTURE_SIZE))
	assert.Equal(t, "WebKit WebGL", c.GetParameterString(gl.RENDERER))
	assert.True(t, c.GetParameterBool(gl.DEPTH_TEST))
	assert.False(t, c.GetParameterBool(gl.BLEND), "unset state is false")

	vp := make([]int32, 4)
	c.GetParameterI32Slice(gl.VIEWPORT, vp)
	assert.Equal(t, []int32{0, 0, 800, 600}, vp)
}

func TestNumberClamping(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	f.params[gl.MAX_TEXTURE_SIZE] = 1e12
	f.params[gl.VIEWPORT] = []any{-1e12, 0, 1e12, 600}
	c := f.webgl2()

	assert.Equal(t, int32(math.MaxInt32), c.GetParameterI32(gl.MAX_TEXTURE_SIZE))
	vp := make([]int32, 4)
	c.GetParameterI32Slice(gl.VIEWPORT, vp)
	assert.Equal(t, []int32{math.MinInt32, 0, math.MaxInt32, 600}, vp)

	assert.Equal(t, uint32(0), toUint32("test", js.ValueOf(-1)))
	assert.Equal(t, uint32(math.MaxUint32), toUint32("test", js.ValueOf(5e9)))
	assert.Equal(t, int32(0), toInt32("test", js.ValueOf(math.NaN())))
}

func TestSync(t *testing.T) {
	f := newFakeGL(t, webgl2Version)
	c := f.webgl2()
	s, err := c.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.ALREADY_SIGNALED), c.ClientWaitSync(s, 0, gl.TIMEOUT_IGNORED))
	assert.Equal(t, uint32(gl.TIMEOUT_EXPIRED), c.ClientWaitSync(s, 0, 1000))
	c.DeleteSync(s)
	assert.Panics(t, func() { c.ClientWaitSync(s, 0, 0) })
}
