// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"fmt"

	"gioui.org/glow/gl"
)

// checkLen panics unless l is a multiple of the component count n.
func checkLen(op string, l, n int) {
	if l%n != 0 {
		panic(fmt.Errorf("webgl: %s: slice length %d is not a multiple of %d", op, l, n))
	}
}

func (c *Context) Uniform1I32(l gl.UniformLocation, x int32) {
	c.ctx.Call("uniform1i", c.uniform(l), x)
}

func (c *Context) Uniform2I32(l gl.UniformLocation, x, y int32) {
	c.ctx.Call("uniform2i", c.uniform(l), x, y)
}

func (c *Context) Uniform3I32(l gl.UniformLocation, x, y, z int32) {
	c.ctx.Call("uniform3i", c.uniform(l), x, y, z)
}

func (c *Context) Uniform4I32(l gl.UniformLocation, x, y, z, w int32) {
	c.ctx.Call("uniform4i", c.uniform(l), x, y, z, w)
}

func (c *Context) Uniform1U32(l gl.UniformLocation, x uint32) {
	c.requireWebGL2("Uniform1U32")
	c.ctx.Call("uniform1ui", c.uniform(l), x)
}

func (c *Context) Uniform2U32(l gl.UniformLocation, x, y uint32) {
	c.requireWebGL2("Uniform2U32")
	c.ctx.Call("uniform2ui", c.uniform(l), x, y)
}

func (c *Context) Uniform3U32(l gl.UniformLocation, x, y, z uint32) {
	c.requireWebGL2("Uniform3U32")
	c.ctx.Call("uniform3ui", c.uniform(l), x, y, z)
}

func (c *Context) Uniform4U32(l gl.UniformLocation, x, y, z, w uint32) {
	c.requireWebGL2("Uniform4U32")
	c.ctx.Call("uniform4ui", c.uniform(l), x, y, z, w)
}

func (c *Context) Uniform1F32(l gl.UniformLocation, x float32) {
	c.ctx.Call("uniform1f", c.uniform(l), x)
}

func (c *Context) Uniform2F32(l gl.UniformLocation, x, y float32) {
	c.ctx.Call("uniform2f", c.uniform(l), x, y)
}

func (c *Context) Uniform3F32(l gl.UniformLocation, x, y, z float32) {
	c.ctx.Call("uniform3f", c.uniform(l), x, y, z)
}

func (c *Context) Uniform4F32(l gl.UniformLocation, x, y, z, w float32) {
	c.ctx.Call("uniform4f", c.uniform(l), x, y, z, w)
}

func (c *Context) Uniform1I32Slice(l gl.UniformLocation, v []int32) {
	checkLen("Uniform1I32Slice", len(v), 1)
	c.ctx.Call("uniform1iv", c.uniform(l), anys(v))
}

func (c *Context) Uniform2I32Slice(l gl.UniformLocation, v []int32) {
	checkLen("Uniform2I32Slice", len(v), 2)
	c.ctx.Call("uniform2iv", c.uniform(l), anys(v))
}

func (c *Context) Uniform3I32Slice(l gl.UniformLocation, v []int32) {
	checkLen("Uniform3I32Slice", len(v), 3)
	c.ctx.Call("uniform3iv", c.uniform(l), anys(v))
}

func (c *Context) Uniform4I32Slice(l gl.UniformLocation, v []int32) {
	checkLen("Uniform4I32Slice", len(v), 4)
	c.ctx.Call("uniform4iv", c.uniform(l), anys(v))
}

func (c *Context) Uniform1U32Slice(l gl.UniformLocation, v []uint32) {
	c.requireWebGL2("Uniform1U32Slice")
	checkLen("Uniform1U32Slice", len(v), 1)
	c.ctx.Call("uniform1uiv", c.uniform(l), anys(v))
}

func (c *Context) Uniform2U32Slice(l gl.UniformLocation, v []uint32) {
	c.requireWebGL2("Uniform2U32Slice")
	checkLen("Uniform2U32Slice", len(v), 2)
	c.ctx.Call("uniform2uiv", c.uniform(l), anys(v))
}

func (c *Context) Uniform3U32Slice(l gl.UniformLocation, v []uint32) {
	c.requireWebGL2("Uniform3U32Slice")
	checkLen("Uniform3U32Slice", len(v), 3)
	c.ctx.Call("uniform3uiv", c.uniform(l), anys(v))
}

func (c *Context) Uniform4U32Slice(l gl.UniformLocation, v []uint32) {
	c.requireWebGL2("Uniform4U32Slice")
	checkLen("Uniform4U32Slice", len(v), 4)
	c.ctx.Call("uniform4uiv", c.uniform(l), anys(v))
}

func (c *Context) Uniform1F32Slice(l gl.UniformLocation, v []float32) {
	checkLen("Uniform1F32Slice", len(v), 1)
	c.ctx.Call("uniform1fv", c.uniform(l), anys(v))
}

func (c *Context) Uniform2F32Slice(l gl.UniformLocation, v []float32) {
	checkLen("Uniform2F32Slice", len(v), 2)
	c.ctx.Call("uniform2fv", c.uniform(l), anys(v))
}

func (c *Context) Uniform3F32Slice(l gl.UniformLocation, v []float32) {
	checkLen("Uniform3F32Slice", len(v), 3)
	c.ctx.Call("uniform3fv", c.uniform(l), anys(v))
}

func (c *Context) Uniform4F32Slice(l gl.UniformLocation, v []float32) {
	checkLen("Uniform4F32Slice", len(v), 4)
	c.ctx.Call("uniform4fv", c.uniform(l), anys(v))
}

func (c *Context) UniformMatrix2F32Slice(l gl.UniformLocation, transpose bool, v []float32) {
	checkLen("UniformMatrix2F32Slice", len(v), 4)
	c.ctx.Call("uniformMatrix2fv", c.uniform(l), transpose, anys(v))
}

func (c *Context) UniformMatrix3F32Slice(l gl.UniformLocation, transpose bool, v []float32) {
	checkLen("UniformMatrix3F32Slice", len(v), 9)
	c.ctx.Call("uniformMatrix3fv", c.uniform(l), transpose, anys(v))
}

func (c *Context) UniformMatrix4F32Slice(l gl.UniformLocation, transpose bool, v []float32) {
	checkLen("UniformMatrix4F32Slice", len(v), 16)
	c.ctx.Call("uniformMatrix4fv", c.uniform(l), transpose, anys(v))
}
