// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

func (c *Context) Enable(cap uint32) {
	c.ctx.Call("enable", cap)
}

func (c *Context) Disable(cap uint32) {
	c.ctx.Call("disable", cap)
}

func (c *Context) IsEnabled(cap uint32) bool {
	return toBool("IsEnabled", c.ctx.Call("isEnabled", cap))
}

func (c *Context) BlendFunc(src, dst uint32) {
	c.ctx.Call("blendFunc", src, dst)
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	c.ctx.Call("blendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (c *Context) BlendEquation(mode uint32) {
	c.ctx.Call("blendEquation", mode)
}

func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	c.ctx.Call("blendEquationSeparate", modeRGB, modeAlpha)
}

func (c *Context) BlendColor(r, g, b, a float32) {
	c.ctx.Call("blendColor", r, g, b, a)
}

func (c *Context) DepthFunc(fn uint32) {
	c.ctx.Call("depthFunc", fn)
}

func (c *Context) DepthMask(flag bool) {
	c.ctx.Call("depthMask", flag)
}

func (c *Context) DepthRangeF32(near, far float32) {
	c.ctx.Call("depthRange", near, far)
}

func (c *Context) ColorMask(r, g, b, a bool) {
	c.ctx.Call("colorMask", r, g, b, a)
}

func (c *Context) CullFace(mode uint32) {
	c.ctx.Call("cullFace", mode)
}

func (c *Context) FrontFace(mode uint32) {
	c.ctx.Call("frontFace", mode)
}

func (c *Context) Scissor(x, y, width, height int32) {
	c.ctx.Call("scissor", x, y, width, height)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.ctx.Call("viewport", x, y, width, height)
}

func (c *Context) LineWidth(width float32) {
	c.ctx.Call("lineWidth", width)
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.ctx.Call("polygonOffset", factor, units)
}

func (c *Context) PolygonMode(face, mode uint32) {
	unsupported("PolygonMode", "polygon modes are not available in WebGL")
}

func (c *Context) StencilFunc(fn uint32, ref int32, mask uint32) {
	c.ctx.Call("stencilFunc", fn, ref, mask)
}

func (c *Context) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	c.ctx.Call("stencilFuncSeparate", face, fn, ref, mask)
}

func (c *Context) StencilOp(fail, zfail, zpass uint32) {
	c.ctx.Call("stencilOp", fail, zfail, zpass)
}

func (c *Context) StencilOpSeparate(face, fail, zfail, zpass uint32) {
	c.ctx.Call("stencilOpSeparate", face, fail, zfail, zpass)
}

func (c *Context) StencilMask(mask uint32) {
	c.ctx.Call("stencilMask", mask)
}

func (c *Context) StencilMaskSeparate(face, mask uint32) {
	c.ctx.Call("stencilMaskSeparate", face, mask)
}

func (c *Context) Clear(mask uint32) {
	c.ctx.Call("clear", mask)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.ctx.Call("clearColor", r, g, b, a)
}

func (c *Context) ClearDepthF32(depth float32) {
	c.ctx.Call("clearDepth", depth)
}

func (c *Context) ClearStencil(s int32) {
	c.ctx.Call("clearStencil", s)
}

func (c *Context) Hint(target, mode uint32) {
	c.ctx.Call("hint", target, mode)
}

func (c *Context) Flush() {
	c.ctx.Call("flush")
}

func (c *Context) Finish() {
	c.ctx.Call("finish")
}

func (c *Context) GetError() uint32 {
	return toUint32("GetError", c.ctx.Call("getError"))
}

func (c *Context) MemoryBarrier(barriers uint32) {
	unsupported("MemoryBarrier", "compute is not available in WebGL")
}

func (c *Context) DispatchCompute(x, y, z uint32) {
	unsupported("DispatchCompute", "compute is not available in WebGL")
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.ctx.Call("drawArrays", mode, first, count)
}

func (c *Context) DrawArraysInstanced(mode uint32, first, count, instanceCount int32) {
	if c.level >= WebGL2 {
		c.ctx.Call("drawArraysInstanced", mode, first, count, instanceCount)
		return
	}
	ext := extension("DrawArraysInstanced", c.ext.angleInstancedArrays, "ANGLE_instanced_arrays")
	ext.Call("drawArraysInstancedANGLE", mode, first, count, instanceCount)
}

func (c *Context) DrawArraysInstancedBaseInstance(mode uint32, first, count, instanceCount int32, baseInstance uint32) {
	c.requireWebGL2("DrawArraysInstancedBaseInstance")
	ext := extension("DrawArraysInstancedBaseInstance", c.ext.webglDrawInstancedBaseVertexBaseInstance, "WEBGL_draw_instanced_base_vertex_base_instance")
	ext.Call("drawArraysInstancedBaseInstanceWEBGL", mode, first, count, instanceCount, baseInstance)
}

func (c *Context) DrawArraysIndirectOffset(mode uint32, offset int) {
	unsupported("DrawArraysIndirectOffset", "indirect drawing is not available in WebGL")
}

func (c *Context) DrawElements(mode uint32, count int32, typ uint32, offset int) {
	c.ctx.Call("drawElements", mode, count, typ, offset)
}

func (c *Context) DrawElementsInstanced(mode uint32, count int32, typ uint32, offset int, instanceCount int32) {
	if c.level >= WebGL2 {
		c.ctx.Call("drawElementsInstanced", mode, count, typ, offset, instanceCount)
		return
	}
	ext := extension("DrawElementsInstanced", c.ext.angleInstancedArrays, "ANGLE_instanced_arrays")
	ext.Call("drawElementsInstancedANGLE", mode, count, typ, offset, instanceCount)
}

func (c *Context) DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset int, baseVertex int32) {
	unsupported("DrawElementsBaseVertex", "base vertex drawing is not available in WebGL")
}

func (c *Context) DrawElementsInstancedBaseVertex(mode uint32, count int32, typ uint32, offset int, instanceCount, baseVertex int32) {
	unsupported("DrawElementsInstancedBaseVertex", "base vertex drawing is not available in WebGL")
}

func (c *Context) DrawElementsInstancedBaseVertexBaseInstance(mode uint32, count int32, typ uint32, offset int, instanceCount, baseVertex int32, baseInstance uint32) {
	c.requireWebGL2("DrawElementsInstancedBaseVertexBaseInstance")
	ext := extension("DrawElementsInstancedBaseVertexBaseInstance", c.ext.webglDrawInstancedBaseVertexBaseInstance, "WEBGL_draw_instanced_base_vertex_base_instance")
	ext.Call("drawElementsInstancedBaseVertexBaseInstanceWEBGL", mode, count, typ, offset, instanceCount, baseVertex, baseInstance)
}

func (c *Context) DrawElementsIndirectOffset(mode, typ uint32, offset int) {
	unsupported("DrawElementsIndirectOffset", "indirect drawing is not available in WebGL")
}
