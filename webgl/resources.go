// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"syscall/js"

	"gioui.org/glow/gl"
)

func (c *Context) BindBuffer(target uint32, b gl.Buffer) {
	c.ctx.Call("bindBuffer", target, c.buffer(b))
}

func (c *Context) BindBufferBase(target, index uint32, b gl.Buffer) {
	c.requireWebGL2("BindBufferBase")
	c.ctx.Call("bindBufferBase", target, index, c.buffer(b))
}

func (c *Context) BindBufferRange(target, index uint32, b gl.Buffer, offset, size int) {
	c.requireWebGL2("BindBufferRange")
	c.ctx.Call("bindBufferRange", target, index, c.buffer(b), offset, size)
}

func (c *Context) BufferDataSize(target uint32, size int, usage uint32) {
	c.ctx.Call("bufferData", target, size, usage)
}

func (c *Context) BufferData(target uint32, data []byte, usage uint32) {
	if data == nil {
		data = []byte{}
	}
	c.ctx.Call("bufferData", target, c.arrays.bytes(data), usage)
}

func (c *Context) BufferSubData(target uint32, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	c.ctx.Call("bufferSubData", target, offset, c.arrays.bytes(data))
}

func (c *Context) BufferStorage(target uint32, size int, data []byte, flags uint32) {
	unsupported("BufferStorage", "immutable buffer storage is not available in WebGL")
}

func (c *Context) GetBufferSubData(target uint32, offset int, dst []byte) {
	c.requireWebGL2("GetBufferSubData")
	if len(dst) == 0 {
		return
	}
	c.arrays.readInto(typeUnsignedByte, dst, func(view js.Value) {
		c.ctx.Call("getBufferSubData", target, offset, view)
	})
}

func (c *Context) CopyBufferSubData(readTarget, writeTarget uint32, readOffset, writeOffset, size int) {
	c.requireWebGL2("CopyBufferSubData")
	c.ctx.Call("copyBufferSubData", readTarget, writeTarget, readOffset, writeOffset, size)
}

func (c *Context) MapBufferRange(target uint32, offset, length int, access uint32) []byte {
	unsupported("MapBufferRange", "buffer mapping is not available in WebGL")
	return nil
}

func (c *Context) UnmapBuffer(target uint32) bool {
	unsupported("UnmapBuffer", "buffer mapping is not available in WebGL")
	return false
}

func (c *Context) GetBufferParameterI32(target, pname uint32) int32 {
	return toInt32("GetBufferParameterI32", c.ctx.Call("getBufferParameter", target, pname))
}

func (c *Context) BindVertexArray(a gl.VertexArray) {
	if c.level >= WebGL2 {
		c.ctx.Call("bindVertexArray", c.vertexArray(a))
		return
	}
	ext := extension("BindVertexArray", c.ext.oesVertexArrayObject, "OES_vertex_array_object")
	ext.Call("bindVertexArrayOES", c.vertexArray(a))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.ctx.Call("enableVertexAttribArray", index)
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.ctx.Call("disableVertexAttribArray", index)
}

func (c *Context) VertexAttribPointerF32(index uint32, size int32, typ uint32, normalized bool, stride, offset int32) {
	c.ctx.Call("vertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (c *Context) VertexAttribPointerI32(index uint32, size int32, typ uint32, stride, offset int32) {
	c.requireWebGL2("VertexAttribPointerI32")
	c.ctx.Call("vertexAttribIPointer", index, size, typ, stride, offset)
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	if c.level >= WebGL2 {
		c.ctx.Call("vertexAttribDivisor", index, divisor)
		return
	}
	ext := extension("VertexAttribDivisor", c.ext.angleInstancedArrays, "ANGLE_instanced_arrays")
	ext.Call("vertexAttribDivisorANGLE", index, divisor)
}

func (c *Context) VertexAttrib1F32(index uint32, x float32) {
	c.ctx.Call("vertexAttrib1f", index, x)
}

func (c *Context) VertexAttrib2F32(index uint32, x, y float32) {
	c.ctx.Call("vertexAttrib2f", index, x, y)
}

func (c *Context) VertexAttrib3F32(index uint32, x, y, z float32) {
	c.ctx.Call("vertexAttrib3f", index, x, y, z)
}

func (c *Context) VertexAttrib4F32(index uint32, x, y, z, w float32) {
	c.ctx.Call("vertexAttrib4f", index, x, y, z, w)
}

func (c *Context) BindTexture(target uint32, t gl.Texture) {
	c.ctx.Call("bindTexture", target, c.texture(t))
}

func (c *Context) ActiveTexture(unit uint32) {
	c.ctx.Call("activeTexture", unit)
}

func (c *Context) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, typ uint32, pixels []byte) {
	c.ctx.Call("texImage2D", target, level, internalFormat, width, height, border, format, typ, c.arrays.pixels(typ, pixels))
}

func (c *Context) TexSubImage2D(target uint32, level, x, y, width, height int32, format, typ uint32, pixels []byte) {
	c.ctx.Call("texSubImage2D", target, level, x, y, width, height, format, typ, c.arrays.pixels(typ, pixels))
}

func (c *Context) TexImage3D(target uint32, level, internalFormat, width, height, depth, border int32, format, typ uint32, pixels []byte) {
	c.requireWebGL2("TexImage3D")
	c.ctx.Call("texImage3D", target, level, internalFormat, width, height, depth, border, format, typ, c.arrays.pixels(typ, pixels))
}

func (c *Context) TexSubImage3D(target uint32, level, x, y, z, width, height, depth int32, format, typ uint32, pixels []byte) {
	c.requireWebGL2("TexSubImage3D")
	c.ctx.Call("texSubImage3D", target, level, x, y, z, width, height, depth, format, typ, c.arrays.pixels(typ, pixels))
}

func (c *Context) TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32) {
	c.requireWebGL2("TexStorage2D")
	c.ctx.Call("texStorage2D", target, levels, internalFormat, width, height)
}

func (c *Context) TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	c.requireWebGL2("TexStorage3D")
	c.ctx.Call("texStorage3D", target, levels, internalFormat, width, height, depth)
}

func (c *Context) TexParameterI32(target, pname uint32, param int32) {
	c.ctx.Call("texParameteri", target, pname, param)
}

func (c *Context) TexParameterF32(target, pname uint32, param float32) {
	c.ctx.Call("texParameterf", target, pname, param)
}

func (c *Context) GenerateMipmap(target uint32) {
	c.ctx.Call("generateMipmap", target)
}

func (c *Context) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32) {
	c.ctx.Call("copyTexSubImage2D", target, level, xoffset, yoffset, x, y, width, height)
}

func (c *Context) PixelStoreI32(pname uint32, param int32) {
	c.ctx.Call("pixelStorei", pname, param)
}

func (c *Context) BindImageTexture(unit uint32, t gl.Texture, level int32, layered bool, layer int32, access, format uint32) {
	unsupported("BindImageTexture", "image load/store is not available in WebGL")
}

func (c *Context) BindSampler(unit uint32, s gl.Sampler) {
	c.requireWebGL2("BindSampler")
	c.ctx.Call("bindSampler", unit, c.sampler(s))
}

func (c *Context) SamplerParameterI32(s gl.Sampler, pname uint32, param int32) {
	c.requireWebGL2("SamplerParameterI32")
	c.ctx.Call("samplerParameteri", c.sampler(s), pname, param)
}

func (c *Context) SamplerParameterF32(s gl.Sampler, pname uint32, param float32) {
	c.requireWebGL2("SamplerParameterF32")
	c.ctx.Call("samplerParameterf", c.sampler(s), pname, param)
}

func (c *Context) BindFramebuffer(target uint32, f gl.Framebuffer) {
	c.ctx.Call("bindFramebuffer", target, c.framebuffer(f))
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget uint32, t gl.Texture, level int32) {
	c.ctx.Call("framebufferTexture2D", target, attachment, texTarget, c.texture(t), level)
}

func (c *Context) FramebufferTextureLayer(target, attachment uint32, t gl.Texture, level, layer int32) {
	c.requireWebGL2("FramebufferTextureLayer")
	c.ctx.Call("framebufferTextureLayer", target, attachment, c.texture(t), level, layer)
}

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget uint32, r gl.Renderbuffer) {
	c.ctx.Call("framebufferRenderbuffer", target, attachment, rbTarget, c.renderbuffer(r))
}

func (c *Context) CheckFramebufferStatus(target uint32) uint32 {
	return toUint32("CheckFramebufferStatus", c.ctx.Call("checkFramebufferStatus", target))
}

func (c *Context) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	c.requireWebGL2("BlitFramebuffer")
	c.ctx.Call("blitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (c *Context) InvalidateFramebuffer(target uint32, attachments []uint32) {
	c.requireWebGL2("InvalidateFramebuffer")
	c.ctx.Call("invalidateFramebuffer", target, anys(attachments))
}

func (c *Context) DrawBuffers(buffers []uint32) {
	if c.level >= WebGL2 {
		c.ctx.Call("drawBuffers", anys(buffers))
		return
	}
	ext := extension("DrawBuffers", c.ext.webglDrawBuffers, "WEBGL_draw_buffers")
	ext.Call("drawBuffersWEBGL", anys(buffers))
}

func (c *Context) ReadBuffer(src uint32) {
	c.requireWebGL2("ReadBuffer")
	c.ctx.Call("readBuffer", src)
}

func (c *Context) ReadPixels(x, y, width, height int32, format, typ uint32, dst []byte) {
	c.arrays.readInto(typ, dst, func(view js.Value) {
		c.ctx.Call("readPixels", x, y, width, height, format, typ, view)
	})
}

func (c *Context) ClearBufferF32Slice(buffer uint32, drawBuffer int32, v []float32) {
	c.requireWebGL2("ClearBufferF32Slice")
	c.ctx.Call("clearBufferfv", buffer, drawBuffer, anys(v))
}

func (c *Context) ClearBufferI32Slice(buffer uint32, drawBuffer int32, v []int32) {
	c.requireWebGL2("ClearBufferI32Slice")
	c.ctx.Call("clearBufferiv", buffer, drawBuffer, anys(v))
}

func (c *Context) ClearBufferU32Slice(buffer uint32, drawBuffer int32, v []uint32) {
	c.requireWebGL2("ClearBufferU32Slice")
	c.ctx.Call("clearBufferuiv", buffer, drawBuffer, anys(v))
}

func (c *Context) ClearBufferDepthStencil(buffer uint32, drawBuffer int32, depth float32, stencil int32) {
	c.requireWebGL2("ClearBufferDepthStencil")
	c.ctx.Call("clearBufferfi", buffer, drawBuffer, depth, stencil)
}

func (c *Context) BindRenderbuffer(target uint32, r gl.Renderbuffer) {
	c.ctx.Call("bindRenderbuffer", target, c.renderbuffer(r))
}

func (c *Context) RenderbufferStorage(target, internalFormat uint32, width, height int32) {
	c.ctx.Call("renderbufferStorage", target, internalFormat, width, height)
}

func (c *Context) RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width, height int32) {
	c.requireWebGL2("RenderbufferStorageMultisample")
	c.ctx.Call("renderbufferStorageMultisample", target, samples, internalFormat, width, height)
}

func (c *Context) GetFramebufferAttachmentParameterI32(target, attachment, pname uint32) int32 {
	return toInt32("GetFramebufferAttachmentParameterI32", c.ctx.Call("getFramebufferAttachmentParameter", target, attachment, pname))
}

func (c *Context) GetRenderbufferParameterI32(target, pname uint32) int32 {
	return toInt32("GetRenderbufferParameterI32", c.ctx.Call("getRenderbufferParameter", target, pname))
}
