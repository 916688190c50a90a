// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"strings"

	"gioui.org/glow/gl"
)

func (c *Context) GetParameterI32(pname uint32) int32 {
	return toInt32("GetParameterI32", c.ctx.Call("getParameter", pname))
}

func (c *Context) GetParameterF32(pname uint32) float32 {
	return toFloat32("GetParameterF32", c.ctx.Call("getParameter", pname))
}

func (c *Context) GetParameterBool(pname uint32) bool {
	return toBool("GetParameterBool", c.ctx.Call("getParameter", pname))
}

// GetParameterString returns the space separated extension list for
// gl.EXTENSIONS, which WebGL does not expose as a parameter.
func (c *Context) GetParameterString(pname uint32) string {
	if pname == gl.EXTENSIONS {
		return strings.Join(c.extensions.Sorted(), " ")
	}
	return toString("GetParameterString", c.ctx.Call("getParameter", pname))
}

func (c *Context) GetParameterI32Slice(pname uint32, dst []int32) {
	toSlice("GetParameterI32Slice", c.ctx.Call("getParameter", pname), dst)
}

func (c *Context) GetParameterF32Slice(pname uint32, dst []float32) {
	toSlice("GetParameterF32Slice", c.ctx.Call("getParameter", pname), dst)
}

func (c *Context) GetParameterIndexedI32(pname, index uint32) int32 {
	c.requireWebGL2("GetParameterIndexedI32")
	return toInt32("GetParameterIndexedI32", c.ctx.Call("getIndexedParameter", pname, index))
}

func (c *Context) GetParameterIndexedString(pname, index uint32) string {
	unsupported("GetParameterIndexedString", "indexed string queries are not available in WebGL")
	return ""
}
