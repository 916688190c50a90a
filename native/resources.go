// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"fmt"
	"unsafe"

	"gioui.org/glow/gl"
)

func (c *Context) BindBuffer(target uint32, b gl.Buffer) {
	c.p.BindBuffer(target, b.V)
}

func (c *Context) BindBufferBase(target, index uint32, b gl.Buffer) {
	c.p.BindBufferBase(target, index, b.V)
}

func (c *Context) BindBufferRange(target, index uint32, b gl.Buffer, offset, size int) {
	c.p.BindBufferRange(target, index, b.V, offset, size)
}

func (c *Context) BufferDataSize(target uint32, size int, usage uint32) {
	c.p.BufferData(target, size, nil, usage)
}

func (c *Context) BufferData(target uint32, data []byte, usage uint32) {
	c.p.BufferData(target, len(data), ptr(data), usage)
}

func (c *Context) BufferSubData(target uint32, offset int, data []byte) {
	c.p.BufferSubData(target, offset, len(data), ptr(data))
}

func (c *Context) BufferStorage(target uint32, size int, data []byte, flags uint32) {
	if data != nil && len(data) < size {
		panic("native: BufferStorage data is shorter than size")
	}
	c.p.BufferStorage(target, size, ptr(data), flags)
}

func (c *Context) GetBufferSubData(target uint32, offset int, dst []byte) {
	c.p.GetBufferSubData(target, offset, len(dst), ptr(dst))
}

func (c *Context) CopyBufferSubData(readTarget, writeTarget uint32, readOffset, writeOffset, size int) {
	c.p.CopyBufferSubData(readTarget, writeTarget, readOffset, writeOffset, size)
}

func (c *Context) MapBufferRange(target uint32, offset, length int, access uint32) []byte {
	p := c.p.MapBufferRange(target, offset, length, access)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (c *Context) UnmapBuffer(target uint32) bool {
	return c.p.UnmapBuffer(target)
}

func (c *Context) GetBufferParameterI32(target, pname uint32) int32 {
	c.ints[0] = 0
	c.p.GetBufferParameteriv(target, pname, &c.ints[0])
	return c.ints[0]
}

func (c *Context) BindVertexArray(a gl.VertexArray) {
	c.p.BindVertexArray(a.V)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.p.EnableVertexAttribArray(index)
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.p.DisableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointerF32(index uint32, size int32, typ uint32, normalized bool, stride, offset int32) {
	c.p.VertexAttribPointer(index, size, typ, normalized, stride, uintptr(offset))
}

func (c *Context) VertexAttribPointerI32(index uint32, size int32, typ uint32, stride, offset int32) {
	c.p.VertexAttribIPointer(index, size, typ, stride, uintptr(offset))
}

func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	c.p.VertexAttribDivisor(index, divisor)
}

func (c *Context) VertexAttrib1F32(index uint32, x float32) {
	c.p.VertexAttrib1f(index, x)
}

func (c *Context) VertexAttrib2F32(index uint32, x, y float32) {
	c.p.VertexAttrib2f(index, x, y)
}

func (c *Context) VertexAttrib3F32(index uint32, x, y, z float32) {
	c.p.VertexAttrib3f(index, x, y, z)
}

func (c *Context) VertexAttrib4F32(index uint32, x, y, z, w float32) {
	c.p.VertexAttrib4f(index, x, y, z, w)
}

func (c *Context) BindTexture(target uint32, t gl.Texture) {
	c.p.BindTexture(target, t.V)
}

func (c *Context) ActiveTexture(unit uint32) {
	c.p.ActiveTexture(unit)
}

func (c *Context) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, typ uint32, pixels []byte) {
	c.p.TexImage2D(target, level, internalFormat, width, height, border, format, typ, ptr(pixels))
}

func (c *Context) TexSubImage2D(target uint32, level, x, y, width, height int32, format, typ uint32, pixels []byte) {
	c.p.TexSubImage2D(target, level, x, y, width, height, format, typ, ptr(pixels))
}

func (c *Context) TexImage3D(target uint32, level, internalFormat, width, height, depth, border int32, format, typ uint32, pixels []byte) {
	c.p.TexImage3D(target, level, internalFormat, width, height, depth, border, format, typ, ptr(pixels))
}

func (c *Context) TexSubImage3D(target uint32, level, x, y, z, width, height, depth int32, format, typ uint32, pixels []byte) {
	c.p.TexSubImage3D(target, level, x, y, z, width, height, depth, format, typ, ptr(pixels))
}

func (c *Context) TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32) {
	c.p.TexStorage2D(target, levels, internalFormat, width, height)
}

func (c *Context) TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	c.p.TexStorage3D(target, levels, internalFormat, width, height, depth)
}

func (c *Context) TexParameterI32(target, pname uint32, param int32) {
	c.p.TexParameteri(target, pname, param)
}

func (c *Context) TexParameterF32(target, pname uint32, param float32) {
	c.p.TexParameterf(target, pname, param)
}

func (c *Context) GenerateMipmap(target uint32) {
	c.p.GenerateMipmap(target)
}

func (c *Context) CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32) {
	c.p.CopyTexSubImage2D(target, level, xoffset, yoffset, x, y, width, height)
}

func (c *Context) PixelStoreI32(pname uint32, param int32) {
	c.p.PixelStorei(pname, param)
}

func (c *Context) BindImageTexture(unit uint32, t gl.Texture, level int32, layered bool, layer int32, access, format uint32) {
	c.p.BindImageTexture(unit, t.V, level, layered, layer, access, format)
}

func (c *Context) BindSampler(unit uint32, s gl.Sampler) {
	c.p.BindSampler(unit, s.V)
}

func (c *Context) SamplerParameterI32(s gl.Sampler, pname uint32, param int32) {
	c.p.SamplerParameteri(s.V, pname, param)
}

func (c *Context) SamplerParameterF32(s gl.Sampler, pname uint32, param float32) {
	c.p.SamplerParameterf(s.V, pname, param)
}

func (c *Context) BindFramebuffer(target uint32, f gl.Framebuffer) {
	c.p.BindFramebuffer(target, f.V)
}

func (c *Context) FramebufferTexture2D(target, attachment, texTarget uint32, t gl.Texture, level int32) {
	c.p.FramebufferTexture2D(target, attachment, texTarget, t.V, level)
}

func (c *Context) FramebufferTextureLayer(target, attachment uint32, t gl.Texture, level, layer int32) {
	c.p.FramebufferTextureLayer(target, attachment, t.V, level, layer)
}

func (c *Context) FramebufferRenderbuffer(target, attachment, rbTarget uint32, r gl.Renderbuffer) {
	c.p.FramebufferRenderbuffer(target, attachment, rbTarget, r.V)
}

func (c *Context) CheckFramebufferStatus(target uint32) uint32 {
	return c.p.CheckFramebufferStatus(target)
}

func (c *Context) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	c.p.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (c *Context) InvalidateFramebuffer(target uint32, attachments []uint32) {
	if len(attachments) == 0 {
		return
	}
	c.p.InvalidateFramebuffer(target, int32(len(attachments)), &attachments[0])
}

func (c *Context) DrawBuffers(buffers []uint32) {
	if len(buffers) == 0 {
		c.p.DrawBuffers(0, nil)
		return
	}
	c.p.DrawBuffers(int32(len(buffers)), &buffers[0])
}

func (c *Context) ReadBuffer(src uint32) {
	c.p.ReadBuffer(src)
}

func (c *Context) ReadPixels(x, y, width, height int32, format, typ uint32, dst []byte) {
	c.p.ReadPixels(x, y, width, height, format, typ, ptr(dst))
}

// clearValues panics unless a slice of length l holds the values the
// driver reads for buffer: four for gl.COLOR, one otherwise.
func clearValues(op string, buffer uint32, l int) {
	n := 1
	if buffer == gl.COLOR {
		n = 4
	}
	if l < n {
		panic(fmt.Errorf("native: %s: slice length %d is less than %d", op, l, n))
	}
}

func (c *Context) ClearBufferF32Slice(buffer uint32, drawBuffer int32, v []float32) {
	clearValues("ClearBufferF32Slice", buffer, len(v))
	c.p.ClearBufferfv(buffer, drawBuffer, &v[0])
}

func (c *Context) ClearBufferI32Slice(buffer uint32, drawBuffer int32, v []int32) {
	clearValues("ClearBufferI32Slice", buffer, len(v))
	c.p.ClearBufferiv(buffer, drawBuffer, &v[0])
}

func (c *Context) ClearBufferU32Slice(buffer uint32, drawBuffer int32, v []uint32) {
	clearValues("ClearBufferU32Slice", buffer, len(v))
	c.p.ClearBufferuiv(buffer, drawBuffer, &v[0])
}

func (c *Context) ClearBufferDepthStencil(buffer uint32, drawBuffer int32, depth float32, stencil int32) {
	c.p.ClearBufferfi(buffer, drawBuffer, depth, stencil)
}

func (c *Context) BindRenderbuffer(target uint32, r gl.Renderbuffer) {
	c.p.BindRenderbuffer(target, r.V)
}

func (c *Context) RenderbufferStorage(target, internalFormat uint32, width, height int32) {
	c.p.RenderbufferStorage(target, internalFormat, width, height)
}

func (c *Context) RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width, height int32) {
	c.p.RenderbufferStorageMultisample(target, samples, internalFormat, width, height)
}

func (c *Context) GetFramebufferAttachmentParameterI32(target, attachment, pname uint32) int32 {
	c.ints[0] = 0
	c.p.GetFramebufferAttachmentParameteriv(target, attachment, pname, &c.ints[0])
	return c.ints[0]
}

func (c *Context) GetRenderbufferParameterI32(target, pname uint32) int32 {
	c.ints[0] = 0
	c.p.GetRenderbufferParameteriv(target, pname, &c.ints[0])
	return c.ints[0]
}
