// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

func (c *Context) Enable(cap uint32) {
	c.p.Enable(cap)
}

func (c *Context) Disable(cap uint32) {
	c.p.Disable(cap)
}

func (c *Context) IsEnabled(cap uint32) bool {
	return c.p.IsEnabled(cap)
}

func (c *Context) BlendFunc(src, dst uint32) {
	c.p.BlendFunc(src, dst)
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	c.p.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (c *Context) BlendEquation(mode uint32) {
	c.p.BlendEquation(mode)
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	c.p.BlendEquationSeparate(modeRGB, modeAlpha)
}

func (c *Context) BlendColor(r, g, b, a float32) {
	c.p.BlendColor(r, g, b, a)
}

func (c *Context) DepthFunc(fn uint32) {
	c.p.DepthFunc(fn)
}

func (c *Context) DepthMask(flag bool) {
	c.p.DepthMask(flag)
}

func (c *Context) DepthRangeF32(near, far float32) {
	c.p.DepthRangef(near, far)
}

func (c *Context) ColorMask(r, g, b, a bool) {
	c.p.ColorMask(r, g, b, a)
}

func (c *Context) CullFace(mode uint32) {
	c.p.CullFace(mode)
}

func (c *Context) FrontFace(mode uint32) {
	c.p.FrontFace(mode)
}

func (c *Context) Scissor(x, y, width, height int32) {
	c.p.Scissor(x, y, width, height)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.p.Viewport(x, y, width, height)
}

func (c *Context) LineWidth(width float32) {
	c.p.LineWidth(width)
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.p.PolygonOffset(factor, units)
}

func (c *Context) PolygonMode(face, mode uint32) {
	c.p.PolygonMode(face, mode)
}

func (c *Context) StencilFunc(fn uint32, ref int32, mask uint32) {
	c.p.StencilFunc(fn, ref, mask)
}

func (c *Context) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	c.p.StencilFuncSeparate(face, fn, ref, mask)
}

func (c *Context) StencilOp(fail, zfail, zpass uint32) {
	c.p.StencilOp(fail, zfail, zpass)
}

func (c *Context) StencilOpSeparate(face, fail, zfail, zpass uint32) {
	c.p.StencilOpSeparate(face, fail, zfail, zpass)
}

func (c *Context) StencilMask(mask uint32) {
	c.p.StencilMask(mask)
}

func (c *Context) StencilMaskSeparate(face, mask uint32) {
	c.p.StencilMaskSeparate(face, mask)
}

func (c *Context) Clear(mask uint32) {
	c.p.Clear(mask)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.p.ClearColor(r, g, b, a)
}

func (c *Context) ClearDepthF32(depth float32) {
	c.p.ClearDepthf(depth)
}

func (c *Context) ClearStencil(s int32) {
	c.p.ClearStencil(s)
}

func (c *Context) Hint(target, mode uint32) {
	c.p.Hint(target, mode)
}

func (c *Context) Flush() {
	c.p.Flush()
}

func (c *Context) Finish() {
	c.p.Finish()
}

func (c *Context) GetError() uint32 {
	return c.p.GetError()
}

func (c *Context) MemoryBarrier(barriers uint32) {
	c.p.MemoryBarrier(barriers)
}

func (c *Context) DispatchCompute(x, y, z uint32) {
	c.p.DispatchCompute(x, y, z)
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.p.DrawArrays(mode, first, count)
}

func (c *Context) DrawArraysInstanced(mode uint32, first, count, instanceCount int32) {
	c.p.DrawArraysInstanced(mode, first, count, instanceCount)
}

func (c *Context) DrawArraysInstancedBaseInstance(mode uint32, first, count, instanceCount int32, baseInstance uint32) {
	c.p.DrawArraysInstancedBaseInstance(mode, first, count, instanceCount, baseInstance)
}

func (c *Context) DrawArraysIndirectOffset(mode uint32, offset int) {
	c.p.DrawArraysIndirect(mode, uintptr(offset))
}

func (c *Context) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	c.p.DrawElements(mode, count, typ, uintptr(offset))
}

func (c *Context) DrawElementsInstanced(mode uint32, count int32, typ uint32, offset int, instanceCount int32) {
	c.p.DrawElementsInstanced(mode, count, typ, uintptr(offset), instanceCount)
}

func (c *Context) DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset int, baseVertex int32) {
	c.p.DrawElementsBaseVertex(mode, count, typ, uintptr(offset), baseVertex)
}

func (c *Context) DrawElementsInstancedBaseVertex(mode uint32, count int32, typ uint32, offset int, instanceCount, baseVertex int32) {
	c.p.DrawElementsInstancedBaseVertex(mode, count, typ, uintptr(offset), instanceCount, baseVertex)
}

func (c *Context) DrawElementsInstancedBaseVertexBaseInstance(mode uint32, count int32, typ uint32, offset int, instanceCount, baseVertex int32, baseInstance uint32) {
	c.p.DrawElementsInstancedBaseVertexBaseInstance(mode, count, typ, uintptr(offset), instanceCount, baseVertex, baseInstance)
}

func (c *Context) DrawElementsIndirectOffset(mode, typ uint32, offset int) {
	c.p.DrawElementsIndirect(mode, typ, uintptr(offset))
}
