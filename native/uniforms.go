// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"fmt"

	"gioui.org/glow/gl"
)

// uniformCount returns the number of n component elements in a slice of
// length l.
func uniformCount(op string, l, n int) int32 {
	if l%n != 0 {
		panic(fmt.Errorf("native: %s: slice length %d is not a multiple of %d", op, l, n))
	}
	return int32(l / n)
}

func (c *Context) Uniform1I32(l gl.UniformLocation, x int32) {
	c.p.Uniform1i(l.V, x)
}

func (c *Context) Uniform2I32(l gl.UniformLocation, x, y int32) {
	c.p.Uniform2i(l.V, x, y)
}

func (c *Context) Uniform3I32(l gl.UniformLocation, x, y, z int32) {
	c.p.Uniform3i(l.V, x, y, z)
}

func (c *Context) Uniform4I32(l gl.UniformLocation, x, y, z, w int32) {
	c.p.Uniform4i(l.V, x, y, z, w)
}

func (c *Context) Uniform1U32(l gl.UniformLocation, x uint32) {
	c.p.Uniform1ui(l.V, x)
}

func (c *Context) Uniform2U32(l gl.UniformLocation, x, y uint32) {
	c.p.Uniform2ui(l.V, x, y)
}

func (c *Context) Uniform3U32(l gl.UniformLocation, x, y, z uint32) {
	c.p.Uniform3ui(l.V, x, y, z)
}

func (c *Context) Uniform4U32(l gl.UniformLocation, x, y, z, w uint32) {
	c.p.Uniform4ui(l.V, x, y, z, w)
}

func (c *Context) Uniform1F32(l gl.UniformLocation, x float32) {
	c.p.Uniform1f(l.V, x)
}

func (c *Context) Uniform2F32(l gl.UniformLocation, x, y float32) {
	c.p.Uniform2f(l.V, x, y)
}

func (c *Context) Uniform3F32(l gl.UniformLocation, x, y, z float32) {
	c.p.Uniform3f(l.V, x, y, z)
}

func (c *Context) Uniform4F32(l gl.UniformLocation, x, y, z, w float32) {
	c.p.Uniform4f(l.V, x, y, z, w)
}

func (c *Context) Uniform1I32Slice(l gl.UniformLocation, v []int32) {
	c.uniformI32(l, "Uniform1I32Slice", v, 1, c.p.Uniform1iv)
}

func (c *Context) Uniform2I32Slice(l gl.UniformLocation, v []int32) {
	c.uniformI32(l, "Uniform2I32Slice", v, 2, c.p.Uniform2iv)
}

func (c *Context) Uniform3I32Slice(l gl.UniformLocation, v []int32) {
	c.uniformI32(l, "Uniform3I32Slice", v, 3, c.p.Uniform3iv)
}

func (c *Context) Uniform4I32Slice(l gl.UniformLocation, v []int32) {
	c.uniformI32(l, "Uniform4I32Slice", v, 4, c.p.Uniform4iv)
}

func (c *Context) Uniform1U32Slice(l gl.UniformLocation, v []uint32) {
	c.uniformU32(l, "Uniform1U32Slice", v, 1, c.p.Uniform1uiv)
}

func (c *Context) Uniform2U32Slice(l gl.UniformLocation, v []uint32) {
	c.uniformU32(l, "Uniform2U32Slice", v, 2, c.p.Uniform2uiv)
}

func (c *Context) Uniform3U32Slice(l gl.UniformLocation, v []uint32) {
	c.uniformU32(l, "Uniform3U32Slice", v, 3, c.p.Uniform3uiv)
}

func (c *Context) Uniform4U32Slice(l gl.UniformLocation, v []uint32) {
	c.uniformU32(l, "Uniform4U32Slice", v, 4, c.p.Uniform4uiv)
}

func (c *Context) Uniform1F32Slice(l gl.UniformLocation, v []float32) {
	c.uniformF32(l, "Uniform1F32Slice", v, 1, c.p.Uniform1fv)
}

func (c *Context) Uniform2F32Slice(l gl.UniformLocation, v []float32) {
	c.uniformF32(l, "Uniform2F32Slice", v, 2, c.p.Uniform2fv)
}

func (c *Context) Uniform3F32Slice(l gl.UniformLocation, v []float32) {
	c.uniformF32(l, "Uniform3F32Slice", v, 3, c.p.Uniform3fv)
}

func (c *Context) Uniform4F32Slice(l gl.UniformLocation, v []float32) {
	c.uniformF32(l, "Uniform4F32Slice", v, 4, c.p.Uniform4fv)
}

func (c *Context) UniformMatrix2F32Slice(l gl.UniformLocation, transpose bool, v []float32) {
	c.uniformMatrix(l, "UniformMatrix2F32Slice", transpose, v, 4, c.p.UniformMatrix2fv)
}

func (c *Context) UniformMatrix3F32Slice(l gl.UniformLocation, transpose bool, v []float32) {
	c.uniformMatrix(l, "UniformMatrix3F32Slice", transpose, v, 9, c.p.UniformMatrix3fv)
}

func (c *Context) UniformMatrix4F32Slice(l gl.UniformLocation, transpose bool, v []float32) {
	c.uniformMatrix(l, "UniformMatrix4F32Slice", transpose, v, 16, c.p.UniformMatrix4fv)
}

func (c *Context) uniformI32(l gl.UniformLocation, op string, v []int32, n int, f func(location, count int32, value *int32)) {
	count := uniformCount(op, len(v), n)
	if count == 0 {
		return
	}
	f(l.V, count, &v[0])
}

func (c *Context) uniformU32(l gl.UniformLocation, op string, v []uint32, n int, f func(location, count int32, value *uint32)) {
	count := uniformCount(op, len(v), n)
	if count == 0 {
		return
	}
	f(l.V, count, &v[0])
}

func (c *Context) uniformF32(l gl.UniformLocation, op string, v []float32, n int, f func(location, count int32, value *float32)) {
	count := uniformCount(op, len(v), n)
	if count == 0 {
		return
	}
	f(l.V, count, &v[0])
}

func (c *Context) uniformMatrix(l gl.UniformLocation, op string, transpose bool, v []float32, n int, f func(location, count int32, transpose bool, value *float32)) {
	count := uniformCount(op, len(v), n)
	if count == 0 {
		return
	}
	f(l.V, count, transpose, &v[0])
}
