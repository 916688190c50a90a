// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"gioui.org/glow/gl"
)

func (c *Context) GetParameterI32(pname uint32) int32 {
	c.ints[0] = 0
	c.p.GetIntegerv(pname, &c.ints[0])
	return c.ints[0]
}

func (c *Context) GetParameterF32(pname uint32) float32 {
	c.floats[0] = 0
	c.p.GetFloatv(pname, &c.floats[0])
	return c.floats[0]
}

func (c *Context) GetParameterBool(pname uint32) bool {
	c.bools[0] = 0
	c.p.GetBooleanv(pname, &c.bools[0])
	return c.bools[0] != gl.FALSE
}

func (c *Context) GetParameterString(pname uint32) string {
	return driverString(c.p.GetString(pname), "string parameter")
}

// GetParameterI32Slice fills dst with the values of a multi-valued
// parameter. The driver writes into scratch space of 16 values, so at most
// that many are copied to dst.
func (c *Context) GetParameterI32Slice(pname uint32, dst []int32) {
	c.ints = [16]int32{}
	c.p.GetIntegerv(pname, &c.ints[0])
	copy(dst, c.ints[:])
}

func (c *Context) GetParameterF32Slice(pname uint32, dst []float32) {
	c.floats = [16]float32{}
	c.p.GetFloatv(pname, &c.floats[0])
	copy(dst, c.floats[:])
}

func (c *Context) GetParameterIndexedI32(pname, index uint32) int32 {
	c.ints[0] = 0
	c.p.GetIntegeri_v(pname, index, &c.ints[0])
	return c.ints[0]
}

func (c *Context) GetParameterIndexedString(pname, index uint32) string {
	return driverString(c.p.GetStringi(pname, index), "indexed string parameter")
}
