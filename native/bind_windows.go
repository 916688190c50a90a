// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows && (amd64 || arm64)

package native

import (
	"math"
	"runtime"
	"sync"
	"syscall"
	"unsafe"
)

var (
	debugProcOnce sync.Once
	debugProc     uintptr
)

// debugCallbackProc returns the address of the GLDEBUGPROC that forwards
// driver messages to dispatchDebugMessage. Callbacks created by
// syscall.NewCallback are never released, so only one is created.
func debugCallbackProc() uintptr {
	debugProcOnce.Do(func() {
		debugProc = syscall.NewCallback(func(source, typ, id, severity, length uintptr, message *byte, token uintptr) uintptr {
			var msg string
			if message != nil {
				if n := int32(length); n >= 0 {
					msg = string(unsafe.Slice(message, n))
				} else {
					msg = goString(message)
				}
			}
			dispatchDebugMessage(token, uint32(source), uint32(typ), uint32(id), uint32(severity), msg)
			return 0
		})
	})
	return debugProc
}

func (r *resolver) addr(name string) uintptr {
	return uintptr(r.resolve(name))
}

func loadProcs(r *resolver) (*procs, error) {
	p := new(procs)
	if sym := r.addr("glActiveTexture"); sym != 0 {
		p.ActiveTexture = func(texture uint32) {
			syscall.SyscallN(sym, uintptr(texture))
		}
	}
	if sym := r.addr("glAttachShader"); sym != 0 {
		p.AttachShader = func(program uint32, shader uint32) {
			syscall.SyscallN(sym, uintptr(program), uintptr(shader))
		}
	}
	if sym := r.addr("glBeginQuery"); sym != 0 {
		p.BeginQuery = func(target uint32, id uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(id))
		}
	}
	if sym := r.addr("glBeginQueryEXT"); sym != 0 {
		p.BeginQueryEXT = func(target uint32, id uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(id))
		}
	}
	if sym := r.addr("glBeginTransformFeedback"); sym != 0 {
		p.BeginTransformFeedback = func(primitiveMode uint32) {
			syscall.SyscallN(sym, uintptr(primitiveMode))
		}
	}
	if sym := r.addr("glBindAttribLocation"); sym != 0 {
		p.BindAttribLocation = func(program uint32, index uint32, name *byte) {
			syscall.SyscallN(sym, uintptr(program), uintptr(index), uintptr(unsafe.Pointer(name)))
		}
	}
	if sym := r.addr("glBindBuffer"); sym != 0 {
		p.BindBuffer = func(target uint32, buffer uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(buffer))
		}
	}
	if sym := r.addr("glBindBufferBase"); sym != 0 {
		p.BindBufferBase = func(target uint32, index uint32, buffer uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(index), uintptr(buffer))
		}
	}
	if sym := r.addr("glBindBufferRange"); sym != 0 {
		p.BindBufferRange = func(target uint32, index uint32, buffer uint32, offset int, size int) {
			syscall.SyscallN(sym, uintptr(target), uintptr(index), uintptr(buffer), uintptr(offset), uintptr(size))
		}
	}
	if sym := r.addr("glBindFramebuffer"); sym != 0 {
		p.BindFramebuffer = func(target uint32, framebuffer uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(framebuffer))
		}
	}
	if sym := r.addr("glBindImageTexture"); sym != 0 {
		p.BindImageTexture = func(unit uint32, texture uint32, level int32, layered bool, layer int32, access uint32, format uint32) {
			syscall.SyscallN(sym, uintptr(unit), uintptr(texture), uintptr(level), boolArg(layered), uintptr(layer), uintptr(access), uintptr(format))
		}
	}
	if sym := r.addr("glBindRenderbuffer"); sym != 0 {
		p.BindRenderbuffer = func(target uint32, renderbuffer uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(renderbuffer))
		}
	}
	if sym := r.addr("glBindSampler"); sym != 0 {
		p.BindSampler = func(unit uint32, sampler uint32) {
			syscall.SyscallN(sym, uintptr(unit), uintptr(sampler))
		}
	}
	if sym := r.addr("glBindTexture"); sym != 0 {
		p.BindTexture = func(target uint32, texture uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(texture))
		}
	}
	if sym := r.addr("glBindTransformFeedback"); sym != 0 {
		p.BindTransformFeedback = func(target uint32, id uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(id))
		}
	}
	if sym := r.addr("glBindVertexArray"); sym != 0 {
		p.BindVertexArray = func(array uint32) {
			syscall.SyscallN(sym, uintptr(array))
		}
	}
	if sym := r.addr("glBindVertexArrayOES"); sym != 0 {
		p.BindVertexArrayOES = func(array uint32) {
			syscall.SyscallN(sym, uintptr(array))
		}
	}
	if sym := r.addr("glBlendColor"); sym != 0 {
		p.BlendColor = func(red float32, green float32, blue float32, alpha float32) {
			syscall.SyscallN(sym, uintptr(math.Float32bits(red)), uintptr(math.Float32bits(green)), uintptr(math.Float32bits(blue)), uintptr(math.Float32bits(alpha)))
		}
	}
	if sym := r.addr("glBlendEquation"); sym != 0 {
		p.BlendEquation = func(mode uint32) {
			syscall.SyscallN(sym, uintptr(mode))
		}
	}
	if sym := r.addr("glBlendEquationSeparate"); sym != 0 {
		p.BlendEquationSeparate = func(modeRGB uint32, modeAlpha uint32) {
			syscall.SyscallN(sym, uintptr(modeRGB), uintptr(modeAlpha))
		}
	}
	if sym := r.addr("glBlendFunc"); sym != 0 {
		p.BlendFunc = func(sfactor uint32, dfactor uint32) {
			syscall.SyscallN(sym, uintptr(sfactor), uintptr(dfactor))
		}
	}
	if sym := r.addr("glBlendFuncSeparate"); sym != 0 {
		p.BlendFuncSeparate = func(srcRGB uint32, dstRGB uint32, srcAlpha uint32, dstAlpha uint32) {
			syscall.SyscallN(sym, uintptr(srcRGB), uintptr(dstRGB), uintptr(srcAlpha), uintptr(dstAlpha))
		}
	}
	if sym := r.addr("glBlitFramebuffer"); sym != 0 {
		p.BlitFramebuffer = func(srcX0 int32, srcY0 int32, srcX1 int32, srcY1 int32, dstX0 int32, dstY0 int32, dstX1 int32, dstY1 int32, mask uint32, filter uint32) {
			syscall.SyscallN(sym, uintptr(srcX0), uintptr(srcY0), uintptr(srcX1), uintptr(srcY1), uintptr(dstX0), uintptr(dstY0), uintptr(dstX1), uintptr(dstY1), uintptr(mask), uintptr(filter))
		}
	}
	if sym := r.addr("glBufferData"); sym != 0 {
		p.BufferData = func(target uint32, size int, data unsafe.Pointer, usage uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(size), uintptr(data), uintptr(usage))
		}
	}
	if sym := r.addr("glBufferStorage"); sym != 0 {
		p.BufferStorage = func(target uint32, size int, data unsafe.Pointer, flags uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(size), uintptr(data), uintptr(flags))
		}
	}
	if sym := r.addr("glBufferStorageEXT"); sym != 0 {
		p.BufferStorageEXT = func(target uint32, size int, data unsafe.Pointer, flags uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(size), uintptr(data), uintptr(flags))
		}
	}
	if sym := r.addr("glBufferSubData"); sym != 0 {
		p.BufferSubData = func(target uint32, offset int, size int, data unsafe.Pointer) {
			syscall.SyscallN(sym, uintptr(target), uintptr(offset), uintptr(size), uintptr(data))
		}
	}
	if sym := r.addr("glCheckFramebufferStatus"); sym != 0 {
		p.CheckFramebufferStatus = func(target uint32) uint32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(target))
			return uint32(ret)
		}
	}
	if sym := r.addr("glClear"); sym != 0 {
		p.Clear = func(mask uint32) {
			syscall.SyscallN(sym, uintptr(mask))
		}
	}
	if sym := r.addr("glClearBufferfi"); sym != 0 {
		p.ClearBufferfi = func(buffer uint32, drawbuffer int32, depth float32, stencil int32) {
			syscall.SyscallN(sym, uintptr(buffer), uintptr(drawbuffer), uintptr(math.Float32bits(depth)), uintptr(stencil))
		}
	}
	if sym := r.addr("glClearBufferfv"); sym != 0 {
		p.ClearBufferfv = func(buffer uint32, drawbuffer int32, value *float32) {
			syscall.SyscallN(sym, uintptr(buffer), uintptr(drawbuffer), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glClearBufferiv"); sym != 0 {
		p.ClearBufferiv = func(buffer uint32, drawbuffer int32, value *int32) {
			syscall.SyscallN(sym, uintptr(buffer), uintptr(drawbuffer), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glClearBufferuiv"); sym != 0 {
		p.ClearBufferuiv = func(buffer uint32, drawbuffer int32, value *uint32) {
			syscall.SyscallN(sym, uintptr(buffer), uintptr(drawbuffer), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glClearColor"); sym != 0 {
		p.ClearColor = func(red float32, green float32, blue float32, alpha float32) {
			syscall.SyscallN(sym, uintptr(math.Float32bits(red)), uintptr(math.Float32bits(green)), uintptr(math.Float32bits(blue)), uintptr(math.Float32bits(alpha)))
		}
	}
	if sym := r.addr("glClearDepth"); sym != 0 {
		p.ClearDepth = func(depth float64) {
			syscall.SyscallN(sym, uintptr(math.Float64bits(depth)))
		}
	}
	if sym := r.addr("glClearDepthf"); sym != 0 {
		p.ClearDepthf = func(d float32) {
			syscall.SyscallN(sym, uintptr(math.Float32bits(d)))
		}
	}
	if sym := r.addr("glClearStencil"); sym != 0 {
		p.ClearStencil = func(s int32) {
			syscall.SyscallN(sym, uintptr(s))
		}
	}
	if sym := r.addr("glClientWaitSync"); sym != 0 {
		p.ClientWaitSync = func(sync uintptr, flags uint32, timeout uint64) uint32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(sync), uintptr(flags), uintptr(timeout))
			return uint32(ret)
		}
	}
	if sym := r.addr("glColorMask"); sym != 0 {
		p.ColorMask = func(red bool, green bool, blue bool, alpha bool) {
			syscall.SyscallN(sym, boolArg(red), boolArg(green), boolArg(blue), boolArg(alpha))
		}
	}
	if sym := r.addr("glCompileShader"); sym != 0 {
		p.CompileShader = func(shader uint32) {
			syscall.SyscallN(sym, uintptr(shader))
		}
	}
	if sym := r.addr("glCopyBufferSubData"); sym != 0 {
		p.CopyBufferSubData = func(readTarget uint32, writeTarget uint32, readOffset int, writeOffset int, size int) {
			syscall.SyscallN(sym, uintptr(readTarget), uintptr(writeTarget), uintptr(readOffset), uintptr(writeOffset), uintptr(size))
		}
	}
	if sym := r.addr("glCopyTexSubImage2D"); sym != 0 {
		p.CopyTexSubImage2D = func(target uint32, level int32, xoffset int32, yoffset int32, x int32, y int32, width int32, height int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(level), uintptr(xoffset), uintptr(yoffset), uintptr(x), uintptr(y), uintptr(width), uintptr(height))
		}
	}
	if sym := r.addr("glCreateProgram"); sym != 0 {
		p.CreateProgram = func() uint32 {
			ret, _, _ := syscall.SyscallN(sym)
			return uint32(ret)
		}
	}
	if sym := r.addr("glCreateShader"); sym != 0 {
		p.CreateShader = func(typ uint32) uint32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(typ))
			return uint32(ret)
		}
	}
	if sym := r.addr("glCullFace"); sym != 0 {
		p.CullFace = func(mode uint32) {
			syscall.SyscallN(sym, uintptr(mode))
		}
	}
	if sym := r.addr("glDebugMessageControl"); sym != 0 {
		p.DebugMessageControl = func(source uint32, typ uint32, severity uint32, count int32, ids *uint32, enabled bool) {
			syscall.SyscallN(sym, uintptr(source), uintptr(typ), uintptr(severity), uintptr(count), uintptr(unsafe.Pointer(ids)), boolArg(enabled))
		}
	}
	if sym := r.addr("glDebugMessageControlKHR"); sym != 0 {
		p.DebugMessageControlKHR = func(source uint32, typ uint32, severity uint32, count int32, ids *uint32, enabled bool) {
			syscall.SyscallN(sym, uintptr(source), uintptr(typ), uintptr(severity), uintptr(count), uintptr(unsafe.Pointer(ids)), boolArg(enabled))
		}
	}
	if sym := r.addr("glDebugMessageInsert"); sym != 0 {
		p.DebugMessageInsert = func(source uint32, typ uint32, id uint32, severity uint32, length int32, buf *byte) {
			syscall.SyscallN(sym, uintptr(source), uintptr(typ), uintptr(id), uintptr(severity), uintptr(length), uintptr(unsafe.Pointer(buf)))
		}
	}
	if sym := r.addr("glDebugMessageInsertKHR"); sym != 0 {
		p.DebugMessageInsertKHR = func(source uint32, typ uint32, id uint32, severity uint32, length int32, buf *byte) {
			syscall.SyscallN(sym, uintptr(source), uintptr(typ), uintptr(id), uintptr(severity), uintptr(length), uintptr(unsafe.Pointer(buf)))
		}
	}
	if sym := r.addr("glDeleteBuffers"); sym != 0 {
		p.DeleteBuffers = func(n int32, buffers *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(buffers)))
		}
	}
	if sym := r.addr("glDeleteFramebuffers"); sym != 0 {
		p.DeleteFramebuffers = func(n int32, framebuffers *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(framebuffers)))
		}
	}
	if sym := r.addr("glDeleteProgram"); sym != 0 {
		p.DeleteProgram = func(program uint32) {
			syscall.SyscallN(sym, uintptr(program))
		}
	}
	if sym := r.addr("glDeleteQueries"); sym != 0 {
		p.DeleteQueries = func(n int32, ids *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(ids)))
		}
	}
	if sym := r.addr("glDeleteQueriesEXT"); sym != 0 {
		p.DeleteQueriesEXT = func(n int32, ids *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(ids)))
		}
	}
	if sym := r.addr("glDeleteRenderbuffers"); sym != 0 {
		p.DeleteRenderbuffers = func(n int32, renderbuffers *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(renderbuffers)))
		}
	}
	if sym := r.addr("glDeleteSamplers"); sym != 0 {
		p.DeleteSamplers = func(count int32, samplers *uint32) {
			syscall.SyscallN(sym, uintptr(count), uintptr(unsafe.Pointer(samplers)))
		}
	}
	if sym := r.addr("glDeleteShader"); sym != 0 {
		p.DeleteShader = func(shader uint32) {
			syscall.SyscallN(sym, uintptr(shader))
		}
	}
	if sym := r.addr("glDeleteSync"); sym != 0 {
		p.DeleteSync = func(sync uintptr) {
			syscall.SyscallN(sym, uintptr(sync))
		}
	}
	if sym := r.addr("glDeleteTextures"); sym != 0 {
		p.DeleteTextures = func(n int32, textures *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(textures)))
		}
	}
	if sym := r.addr("glDeleteTransformFeedbacks"); sym != 0 {
		p.DeleteTransformFeedbacks = func(n int32, ids *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(ids)))
		}
	}
	if sym := r.addr("glDeleteVertexArrays"); sym != 0 {
		p.DeleteVertexArrays = func(n int32, arrays *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(arrays)))
		}
	}
	if sym := r.addr("glDeleteVertexArraysOES"); sym != 0 {
		p.DeleteVertexArraysOES = func(n int32, arrays *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(arrays)))
		}
	}
	if sym := r.addr("glDepthFunc"); sym != 0 {
		p.DepthFunc = func(fn uint32) {
			syscall.SyscallN(sym, uintptr(fn))
		}
	}
	if sym := r.addr("glDepthMask"); sym != 0 {
		p.DepthMask = func(flag bool) {
			syscall.SyscallN(sym, boolArg(flag))
		}
	}
	if sym := r.addr("glDepthRange"); sym != 0 {
		p.DepthRange = func(n float64, f float64) {
			syscall.SyscallN(sym, uintptr(math.Float64bits(n)), uintptr(math.Float64bits(f)))
		}
	}
	if sym := r.addr("glDepthRangef"); sym != 0 {
		p.DepthRangef = func(n float32, f float32) {
			syscall.SyscallN(sym, uintptr(math.Float32bits(n)), uintptr(math.Float32bits(f)))
		}
	}
	if sym := r.addr("glDetachShader"); sym != 0 {
		p.DetachShader = func(program uint32, shader uint32) {
			syscall.SyscallN(sym, uintptr(program), uintptr(shader))
		}
	}
	if sym := r.addr("glDisable"); sym != 0 {
		p.Disable = func(cap uint32) {
			syscall.SyscallN(sym, uintptr(cap))
		}
	}
	if sym := r.addr("glDisableVertexAttribArray"); sym != 0 {
		p.DisableVertexAttribArray = func(index uint32) {
			syscall.SyscallN(sym, uintptr(index))
		}
	}
	if sym := r.addr("glDiscardFramebufferEXT"); sym != 0 {
		p.DiscardFramebufferEXT = func(target uint32, numAttachments int32, attachments *uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(numAttachments), uintptr(unsafe.Pointer(attachments)))
		}
	}
	if sym := r.addr("glDispatchCompute"); sym != 0 {
		p.DispatchCompute = func(numGroupsX uint32, numGroupsY uint32, numGroupsZ uint32) {
			syscall.SyscallN(sym, uintptr(numGroupsX), uintptr(numGroupsY), uintptr(numGroupsZ))
		}
	}
	if sym := r.addr("glDrawArrays"); sym != 0 {
		p.DrawArrays = func(mode uint32, first int32, count int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(first), uintptr(count))
		}
	}
	if sym := r.addr("glDrawArraysIndirect"); sym != 0 {
		p.DrawArraysIndirect = func(mode uint32, indirect uintptr) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(indirect))
		}
	}
	if sym := r.addr("glDrawArraysInstanced"); sym != 0 {
		p.DrawArraysInstanced = func(mode uint32, first int32, count int32, instancecount int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(first), uintptr(count), uintptr(instancecount))
		}
	}
	if sym := r.addr("glDrawArraysInstancedANGLE"); sym != 0 {
		p.DrawArraysInstancedANGLE = func(mode uint32, first int32, count int32, instancecount int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(first), uintptr(count), uintptr(instancecount))
		}
	}
	if sym := r.addr("glDrawArraysInstancedEXT"); sym != 0 {
		p.DrawArraysInstancedEXT = func(mode uint32, first int32, count int32, instancecount int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(first), uintptr(count), uintptr(instancecount))
		}
	}
	if sym := r.addr("glDrawArraysInstancedBaseInstance"); sym != 0 {
		p.DrawArraysInstancedBaseInstance = func(mode uint32, first int32, count int32, instancecount int32, baseinstance uint32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(first), uintptr(count), uintptr(instancecount), uintptr(baseinstance))
		}
	}
	if sym := r.addr("glDrawArraysInstancedBaseInstanceEXT"); sym != 0 {
		p.DrawArraysInstancedBaseInstanceEXT = func(mode uint32, first int32, count int32, instancecount int32, baseinstance uint32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(first), uintptr(count), uintptr(instancecount), uintptr(baseinstance))
		}
	}
	if sym := r.addr("glDrawBuffers"); sym != 0 {
		p.DrawBuffers = func(n int32, bufs *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(bufs)))
		}
	}
	if sym := r.addr("glDrawBuffersEXT"); sym != 0 {
		p.DrawBuffersEXT = func(n int32, bufs *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(bufs)))
		}
	}
	if sym := r.addr("glDrawElements"); sym != 0 {
		p.DrawElements = func(mode uint32, count int32, typ uint32, indices uintptr) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices))
		}
	}
	if sym := r.addr("glDrawElementsBaseVertex"); sym != 0 {
		p.DrawElementsBaseVertex = func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(basevertex))
		}
	}
	if sym := r.addr("glDrawElementsBaseVertexEXT"); sym != 0 {
		p.DrawElementsBaseVertexEXT = func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(basevertex))
		}
	}
	if sym := r.addr("glDrawElementsBaseVertexOES"); sym != 0 {
		p.DrawElementsBaseVertexOES = func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(basevertex))
		}
	}
	if sym := r.addr("glDrawElementsIndirect"); sym != 0 {
		p.DrawElementsIndirect = func(mode uint32, typ uint32, indirect uintptr) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(typ), uintptr(indirect))
		}
	}
	if sym := r.addr("glDrawElementsInstanced"); sym != 0 {
		p.DrawElementsInstanced = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount))
		}
	}
	if sym := r.addr("glDrawElementsInstancedANGLE"); sym != 0 {
		p.DrawElementsInstancedANGLE = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount))
		}
	}
	if sym := r.addr("glDrawElementsInstancedEXT"); sym != 0 {
		p.DrawElementsInstancedEXT = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount))
		}
	}
	if sym := r.addr("glDrawElementsInstancedBaseVertex"); sym != 0 {
		p.DrawElementsInstancedBaseVertex = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount), uintptr(basevertex))
		}
	}
	if sym := r.addr("glDrawElementsInstancedBaseVertexEXT"); sym != 0 {
		p.DrawElementsInstancedBaseVertexEXT = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount), uintptr(basevertex))
		}
	}
	if sym := r.addr("glDrawElementsInstancedBaseVertexOES"); sym != 0 {
		p.DrawElementsInstancedBaseVertexOES = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount), uintptr(basevertex))
		}
	}
	if sym := r.addr("glDrawElementsInstancedBaseVertexBaseInstance"); sym != 0 {
		p.DrawElementsInstancedBaseVertexBaseInstance = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32, baseinstance uint32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount), uintptr(basevertex), uintptr(baseinstance))
		}
	}
	if sym := r.addr("glDrawElementsInstancedBaseVertexBaseInstanceEXT"); sym != 0 {
		p.DrawElementsInstancedBaseVertexBaseInstanceEXT = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32, baseinstance uint32) {
			syscall.SyscallN(sym, uintptr(mode), uintptr(count), uintptr(typ), uintptr(indices), uintptr(instancecount), uintptr(basevertex), uintptr(baseinstance))
		}
	}
	if sym := r.addr("glEnable"); sym != 0 {
		p.Enable = func(cap uint32) {
			syscall.SyscallN(sym, uintptr(cap))
		}
	}
	if sym := r.addr("glEnableVertexAttribArray"); sym != 0 {
		p.EnableVertexAttribArray = func(index uint32) {
			syscall.SyscallN(sym, uintptr(index))
		}
	}
	if sym := r.addr("glEndQuery"); sym != 0 {
		p.EndQuery = func(target uint32) {
			syscall.SyscallN(sym, uintptr(target))
		}
	}
	if sym := r.addr("glEndQueryEXT"); sym != 0 {
		p.EndQueryEXT = func(target uint32) {
			syscall.SyscallN(sym, uintptr(target))
		}
	}
	if sym := r.addr("glEndTransformFeedback"); sym != 0 {
		p.EndTransformFeedback = func() {
			syscall.SyscallN(sym)
		}
	}
	if sym := r.addr("glFenceSync"); sym != 0 {
		p.FenceSync = func(condition uint32, flags uint32) uintptr {
			ret, _, _ := syscall.SyscallN(sym, uintptr(condition), uintptr(flags))
			return ret
		}
	}
	if sym := r.addr("glFinish"); sym != 0 {
		p.Finish = func() {
			syscall.SyscallN(sym)
		}
	}
	if sym := r.addr("glFlush"); sym != 0 {
		p.Flush = func() {
			syscall.SyscallN(sym)
		}
	}
	if sym := r.addr("glFramebufferRenderbuffer"); sym != 0 {
		p.FramebufferRenderbuffer = func(target uint32, attachment uint32, renderbuffertarget uint32, renderbuffer uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(attachment), uintptr(renderbuffertarget), uintptr(renderbuffer))
		}
	}
	if sym := r.addr("glFramebufferTexture2D"); sym != 0 {
		p.FramebufferTexture2D = func(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(attachment), uintptr(textarget), uintptr(texture), uintptr(level))
		}
	}
	if sym := r.addr("glFramebufferTextureLayer"); sym != 0 {
		p.FramebufferTextureLayer = func(target uint32, attachment uint32, texture uint32, level int32, layer int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(attachment), uintptr(texture), uintptr(level), uintptr(layer))
		}
	}
	if sym := r.addr("glFrontFace"); sym != 0 {
		p.FrontFace = func(mode uint32) {
			syscall.SyscallN(sym, uintptr(mode))
		}
	}
	if sym := r.addr("glGenBuffers"); sym != 0 {
		p.GenBuffers = func(n int32, buffers *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(buffers)))
		}
	}
	if sym := r.addr("glGenFramebuffers"); sym != 0 {
		p.GenFramebuffers = func(n int32, framebuffers *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(framebuffers)))
		}
	}
	if sym := r.addr("glGenQueries"); sym != 0 {
		p.GenQueries = func(n int32, ids *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(ids)))
		}
	}
	if sym := r.addr("glGenQueriesEXT"); sym != 0 {
		p.GenQueriesEXT = func(n int32, ids *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(ids)))
		}
	}
	if sym := r.addr("glGenRenderbuffers"); sym != 0 {
		p.GenRenderbuffers = func(n int32, renderbuffers *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(renderbuffers)))
		}
	}
	if sym := r.addr("glGenSamplers"); sym != 0 {
		p.GenSamplers = func(count int32, samplers *uint32) {
			syscall.SyscallN(sym, uintptr(count), uintptr(unsafe.Pointer(samplers)))
		}
	}
	if sym := r.addr("glGenTextures"); sym != 0 {
		p.GenTextures = func(n int32, textures *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(textures)))
		}
	}
	if sym := r.addr("glGenTransformFeedbacks"); sym != 0 {
		p.GenTransformFeedbacks = func(n int32, ids *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(ids)))
		}
	}
	if sym := r.addr("glGenVertexArrays"); sym != 0 {
		p.GenVertexArrays = func(n int32, arrays *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(arrays)))
		}
	}
	if sym := r.addr("glGenVertexArraysOES"); sym != 0 {
		p.GenVertexArraysOES = func(n int32, arrays *uint32) {
			syscall.SyscallN(sym, uintptr(n), uintptr(unsafe.Pointer(arrays)))
		}
	}
	if sym := r.addr("glGenerateMipmap"); sym != 0 {
		p.GenerateMipmap = func(target uint32) {
			syscall.SyscallN(sym, uintptr(target))
		}
	}
	if sym := r.addr("glGetActiveAttrib"); sym != 0 {
		p.GetActiveAttrib = func(program uint32, index uint32, bufSize int32, length *int32, size *int32, typ *uint32, name *byte) {
			syscall.SyscallN(sym, uintptr(program), uintptr(index), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(size)), uintptr(unsafe.Pointer(typ)), uintptr(unsafe.Pointer(name)))
		}
	}
	if sym := r.addr("glGetActiveUniform"); sym != 0 {
		p.GetActiveUniform = func(program uint32, index uint32, bufSize int32, length *int32, size *int32, typ *uint32, name *byte) {
			syscall.SyscallN(sym, uintptr(program), uintptr(index), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(size)), uintptr(unsafe.Pointer(typ)), uintptr(unsafe.Pointer(name)))
		}
	}
	if sym := r.addr("glGetAttribLocation"); sym != 0 {
		p.GetAttribLocation = func(program uint32, name *byte) int32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(program), uintptr(unsafe.Pointer(name)))
			return int32(ret)
		}
	}
	if sym := r.addr("glGetBooleanv"); sym != 0 {
		p.GetBooleanv = func(pname uint32, data *uint8) {
			syscall.SyscallN(sym, uintptr(pname), uintptr(unsafe.Pointer(data)))
		}
	}
	if sym := r.addr("glGetBufferParameteriv"); sym != 0 {
		p.GetBufferParameteriv = func(target uint32, pname uint32, params *int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(pname), uintptr(unsafe.Pointer(params)))
		}
	}
	if sym := r.addr("glGetBufferSubData"); sym != 0 {
		p.GetBufferSubData = func(target uint32, offset int, size int, data unsafe.Pointer) {
			syscall.SyscallN(sym, uintptr(target), uintptr(offset), uintptr(size), uintptr(data))
		}
	}
	if sym := r.addr("glGetDebugMessageLog"); sym != 0 {
		p.GetDebugMessageLog = func(count uint32, bufSize int32, sources *uint32, types *uint32, ids *uint32, severities *uint32, lengths *int32, messageLog *byte) uint32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(count), uintptr(bufSize), uintptr(unsafe.Pointer(sources)), uintptr(unsafe.Pointer(types)), uintptr(unsafe.Pointer(ids)), uintptr(unsafe.Pointer(severities)), uintptr(unsafe.Pointer(lengths)), uintptr(unsafe.Pointer(messageLog)))
			return uint32(ret)
		}
	}
	if sym := r.addr("glGetDebugMessageLogKHR"); sym != 0 {
		p.GetDebugMessageLogKHR = func(count uint32, bufSize int32, sources *uint32, types *uint32, ids *uint32, severities *uint32, lengths *int32, messageLog *byte) uint32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(count), uintptr(bufSize), uintptr(unsafe.Pointer(sources)), uintptr(unsafe.Pointer(types)), uintptr(unsafe.Pointer(ids)), uintptr(unsafe.Pointer(severities)), uintptr(unsafe.Pointer(lengths)), uintptr(unsafe.Pointer(messageLog)))
			return uint32(ret)
		}
	}
	if sym := r.addr("glGetError"); sym != 0 {
		p.GetError = func() uint32 {
			ret, _, _ := syscall.SyscallN(sym)
			return uint32(ret)
		}
	}
	if sym := r.addr("glGetFloatv"); sym != 0 {
		p.GetFloatv = func(pname uint32, data *float32) {
			syscall.SyscallN(sym, uintptr(pname), uintptr(unsafe.Pointer(data)))
		}
	}
	if sym := r.addr("glGetFramebufferAttachmentParameteriv"); sym != 0 {
		p.GetFramebufferAttachmentParameteriv = func(target uint32, attachment uint32, pname uint32, params *int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(attachment), uintptr(pname), uintptr(unsafe.Pointer(params)))
		}
	}
	if sym := r.addr("glGetIntegeri_v"); sym != 0 {
		p.GetIntegeri_v = func(target uint32, index uint32, data *int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(index), uintptr(unsafe.Pointer(data)))
		}
	}
	if sym := r.addr("glGetIntegerv"); sym != 0 {
		p.GetIntegerv = func(pname uint32, data *int32) {
			syscall.SyscallN(sym, uintptr(pname), uintptr(unsafe.Pointer(data)))
		}
	}
	if sym := r.addr("glGetObjectLabel"); sym != 0 {
		p.GetObjectLabel = func(identifier uint32, name uint32, bufSize int32, length *int32, label *byte) {
			syscall.SyscallN(sym, uintptr(identifier), uintptr(name), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glGetObjectLabelKHR"); sym != 0 {
		p.GetObjectLabelKHR = func(identifier uint32, name uint32, bufSize int32, length *int32, label *byte) {
			syscall.SyscallN(sym, uintptr(identifier), uintptr(name), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glGetObjectPtrLabel"); sym != 0 {
		p.GetObjectPtrLabel = func(ptr uintptr, bufSize int32, length *int32, label *byte) {
			syscall.SyscallN(sym, uintptr(ptr), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glGetObjectPtrLabelKHR"); sym != 0 {
		p.GetObjectPtrLabelKHR = func(ptr uintptr, bufSize int32, length *int32, label *byte) {
			syscall.SyscallN(sym, uintptr(ptr), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glGetProgramInfoLog"); sym != 0 {
		p.GetProgramInfoLog = func(program uint32, bufSize int32, length *int32, infoLog *byte) {
			syscall.SyscallN(sym, uintptr(program), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(infoLog)))
		}
	}
	if sym := r.addr("glGetProgramiv"); sym != 0 {
		p.GetProgramiv = func(program uint32, pname uint32, params *int32) {
			syscall.SyscallN(sym, uintptr(program), uintptr(pname), uintptr(unsafe.Pointer(params)))
		}
	}
	if sym := r.addr("glGetQueryObjectuiv"); sym != 0 {
		p.GetQueryObjectuiv = func(id uint32, pname uint32, params *uint32) {
			syscall.SyscallN(sym, uintptr(id), uintptr(pname), uintptr(unsafe.Pointer(params)))
		}
	}
	if sym := r.addr("glGetQueryObjectuivEXT"); sym != 0 {
		p.GetQueryObjectuivEXT = func(id uint32, pname uint32, params *uint32) {
			syscall.SyscallN(sym, uintptr(id), uintptr(pname), uintptr(unsafe.Pointer(params)))
		}
	}
	if sym := r.addr("glGetRenderbufferParameteriv"); sym != 0 {
		p.GetRenderbufferParameteriv = func(target uint32, pname uint32, params *int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(pname), uintptr(unsafe.Pointer(params)))
		}
	}
	if sym := r.addr("glGetShaderInfoLog"); sym != 0 {
		p.GetShaderInfoLog = func(shader uint32, bufSize int32, length *int32, infoLog *byte) {
			syscall.SyscallN(sym, uintptr(shader), uintptr(bufSize), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(infoLog)))
		}
	}
	if sym := r.addr("glGetShaderiv"); sym != 0 {
		p.GetShaderiv = func(shader uint32, pname uint32, params *int32) {
			syscall.SyscallN(sym, uintptr(shader), uintptr(pname), uintptr(unsafe.Pointer(params)))
		}
	}
	if sym := r.addr("glGetString"); sym != 0 {
		p.GetString = func(name uint32) *byte {
			ret, _, _ := syscall.SyscallN(sym, uintptr(name))
			return (*byte)(unsafe.Pointer(ret))
		}
	}
	if sym := r.addr("glGetStringi"); sym != 0 {
		p.GetStringi = func(name uint32, index uint32) *byte {
			ret, _, _ := syscall.SyscallN(sym, uintptr(name), uintptr(index))
			return (*byte)(unsafe.Pointer(ret))
		}
	}
	if sym := r.addr("glGetSynciv"); sym != 0 {
		p.GetSynciv = func(sync uintptr, pname uint32, count int32, length *int32, values *int32) {
			syscall.SyscallN(sym, uintptr(sync), uintptr(pname), uintptr(count), uintptr(unsafe.Pointer(length)), uintptr(unsafe.Pointer(values)))
		}
	}
	if sym := r.addr("glGetUniformBlockIndex"); sym != 0 {
		p.GetUniformBlockIndex = func(program uint32, uniformBlockName *byte) uint32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(program), uintptr(unsafe.Pointer(uniformBlockName)))
			return uint32(ret)
		}
	}
	if sym := r.addr("glGetUniformLocation"); sym != 0 {
		p.GetUniformLocation = func(program uint32, name *byte) int32 {
			ret, _, _ := syscall.SyscallN(sym, uintptr(program), uintptr(unsafe.Pointer(name)))
			return int32(ret)
		}
	}
	if sym := r.addr("glHint"); sym != 0 {
		p.Hint = func(target uint32, mode uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(mode))
		}
	}
	if sym := r.addr("glInvalidateFramebuffer"); sym != 0 {
		p.InvalidateFramebuffer = func(target uint32, numAttachments int32, attachments *uint32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(numAttachments), uintptr(unsafe.Pointer(attachments)))
		}
	}
	if sym := r.addr("glIsEnabled"); sym != 0 {
		p.IsEnabled = func(cap uint32) bool {
			ret, _, _ := syscall.SyscallN(sym, uintptr(cap))
			return byte(ret) != 0
		}
	}
	if sym := r.addr("glLineWidth"); sym != 0 {
		p.LineWidth = func(width float32) {
			syscall.SyscallN(sym, uintptr(math.Float32bits(width)))
		}
	}
	if sym := r.addr("glLinkProgram"); sym != 0 {
		p.LinkProgram = func(program uint32) {
			syscall.SyscallN(sym, uintptr(program))
		}
	}
	if sym := r.addr("glMapBufferRange"); sym != 0 {
		p.MapBufferRange = func(target uint32, offset int, length int, access uint32) unsafe.Pointer {
			ret, _, _ := syscall.SyscallN(sym, uintptr(target), uintptr(offset), uintptr(length), uintptr(access))
			return unsafe.Pointer(ret)
		}
	}
	if sym := r.addr("glMemoryBarrier"); sym != 0 {
		p.MemoryBarrier = func(barriers uint32) {
			syscall.SyscallN(sym, uintptr(barriers))
		}
	}
	if sym := r.addr("glObjectLabel"); sym != 0 {
		p.ObjectLabel = func(identifier uint32, name uint32, length int32, label *byte) {
			syscall.SyscallN(sym, uintptr(identifier), uintptr(name), uintptr(length), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glObjectLabelKHR"); sym != 0 {
		p.ObjectLabelKHR = func(identifier uint32, name uint32, length int32, label *byte) {
			syscall.SyscallN(sym, uintptr(identifier), uintptr(name), uintptr(length), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glObjectPtrLabel"); sym != 0 {
		p.ObjectPtrLabel = func(ptr uintptr, length int32, label *byte) {
			syscall.SyscallN(sym, uintptr(ptr), uintptr(length), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glObjectPtrLabelKHR"); sym != 0 {
		p.ObjectPtrLabelKHR = func(ptr uintptr, length int32, label *byte) {
			syscall.SyscallN(sym, uintptr(ptr), uintptr(length), uintptr(unsafe.Pointer(label)))
		}
	}
	if sym := r.addr("glPauseTransformFeedback"); sym != 0 {
		p.PauseTransformFeedback = func() {
			syscall.SyscallN(sym)
		}
	}
	if sym := r.addr("glPixelStorei"); sym != 0 {
		p.PixelStorei = func(pname uint32, param int32) {
			syscall.SyscallN(sym, uintptr(pname), uintptr(param))
		}
	}
	if sym := r.addr("glPolygonMode"); sym != 0 {
		p.PolygonMode = func(face uint32, mode uint32) {
			syscall.SyscallN(sym, uintptr(face), uintptr(mode))
		}
	}
	if sym := r.addr("glPolygonOffset"); sym != 0 {
		p.PolygonOffset = func(factor float32, units float32) {
			syscall.SyscallN(sym, uintptr(math.Float32bits(factor)), uintptr(math.Float32bits(units)))
		}
	}
	if sym := r.addr("glPopDebugGroup"); sym != 0 {
		p.PopDebugGroup = func() {
			syscall.SyscallN(sym)
		}
	}
	if sym := r.addr("glPopDebugGroupKHR"); sym != 0 {
		p.PopDebugGroupKHR = func() {
			syscall.SyscallN(sym)
		}
	}
	if sym := r.addr("glPushDebugGroup"); sym != 0 {
		p.PushDebugGroup = func(source uint32, id uint32, length int32, message *byte) {
			syscall.SyscallN(sym, uintptr(source), uintptr(id), uintptr(length), uintptr(unsafe.Pointer(message)))
		}
	}
	if sym := r.addr("glPushDebugGroupKHR"); sym != 0 {
		p.PushDebugGroupKHR = func(source uint32, id uint32, length int32, message *byte) {
			syscall.SyscallN(sym, uintptr(source), uintptr(id), uintptr(length), uintptr(unsafe.Pointer(message)))
		}
	}
	if sym := r.addr("glQueryCounter"); sym != 0 {
		p.QueryCounter = func(id uint32, target uint32) {
			syscall.SyscallN(sym, uintptr(id), uintptr(target))
		}
	}
	if sym := r.addr("glQueryCounterEXT"); sym != 0 {
		p.QueryCounterEXT = func(id uint32, target uint32) {
			syscall.SyscallN(sym, uintptr(id), uintptr(target))
		}
	}
	if sym := r.addr("glReadBuffer"); sym != 0 {
		p.ReadBuffer = func(src uint32) {
			syscall.SyscallN(sym, uintptr(src))
		}
	}
	if sym := r.addr("glReadPixels"); sym != 0 {
		p.ReadPixels = func(x int32, y int32, width int32, height int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			syscall.SyscallN(sym, uintptr(x), uintptr(y), uintptr(width), uintptr(height), uintptr(format), uintptr(typ), uintptr(pixels))
		}
	}
	if sym := r.addr("glRenderbufferStorage"); sym != 0 {
		p.RenderbufferStorage = func(target uint32, internalformat uint32, width int32, height int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(internalformat), uintptr(width), uintptr(height))
		}
	}
	if sym := r.addr("glRenderbufferStorageMultisample"); sym != 0 {
		p.RenderbufferStorageMultisample = func(target uint32, samples int32, internalformat uint32, width int32, height int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(samples), uintptr(internalformat), uintptr(width), uintptr(height))
		}
	}
	if sym := r.addr("glResumeTransformFeedback"); sym != 0 {
		p.ResumeTransformFeedback = func() {
			syscall.SyscallN(sym)
		}
	}
	if sym := r.addr("glSamplerParameterf"); sym != 0 {
		p.SamplerParameterf = func(sampler uint32, pname uint32, param float32) {
			syscall.SyscallN(sym, uintptr(sampler), uintptr(pname), uintptr(math.Float32bits(param)))
		}
	}
	if sym := r.addr("glSamplerParameteri"); sym != 0 {
		p.SamplerParameteri = func(sampler uint32, pname uint32, param int32) {
			syscall.SyscallN(sym, uintptr(sampler), uintptr(pname), uintptr(param))
		}
	}
	if sym := r.addr("glScissor"); sym != 0 {
		p.Scissor = func(x int32, y int32, width int32, height int32) {
			syscall.SyscallN(sym, uintptr(x), uintptr(y), uintptr(width), uintptr(height))
		}
	}
	if sym := r.addr("glStencilFunc"); sym != 0 {
		p.StencilFunc = func(fn uint32, ref int32, mask uint32) {
			syscall.SyscallN(sym, uintptr(fn), uintptr(ref), uintptr(mask))
		}
	}
	if sym := r.addr("glStencilFuncSeparate"); sym != 0 {
		p.StencilFuncSeparate = func(face uint32, fn uint32, ref int32, mask uint32) {
			syscall.SyscallN(sym, uintptr(face), uintptr(fn), uintptr(ref), uintptr(mask))
		}
	}
	if sym := r.addr("glStencilMask"); sym != 0 {
		p.StencilMask = func(mask uint32) {
			syscall.SyscallN(sym, uintptr(mask))
		}
	}
	if sym := r.addr("glStencilMaskSeparate"); sym != 0 {
		p.StencilMaskSeparate = func(face uint32, mask uint32) {
			syscall.SyscallN(sym, uintptr(face), uintptr(mask))
		}
	}
	if sym := r.addr("glStencilOp"); sym != 0 {
		p.StencilOp = func(fail uint32, zfail uint32, zpass uint32) {
			syscall.SyscallN(sym, uintptr(fail), uintptr(zfail), uintptr(zpass))
		}
	}
	if sym := r.addr("glStencilOpSeparate"); sym != 0 {
		p.StencilOpSeparate = func(face uint32, sfail uint32, dpfail uint32, dppass uint32) {
			syscall.SyscallN(sym, uintptr(face), uintptr(sfail), uintptr(dpfail), uintptr(dppass))
		}
	}
	if sym := r.addr("glTexImage2D"); sym != 0 {
		p.TexImage2D = func(target uint32, level int32, internalformat int32, width int32, height int32, border int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			syscall.SyscallN(sym, uintptr(target), uintptr(level), uintptr(internalformat), uintptr(width), uintptr(height), uintptr(border), uintptr(format), uintptr(typ), uintptr(pixels))
		}
	}
	if sym := r.addr("glTexImage3D"); sym != 0 {
		p.TexImage3D = func(target uint32, level int32, internalformat int32, width int32, height int32, depth int32, border int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			syscall.SyscallN(sym, uintptr(target), uintptr(level), uintptr(internalformat), uintptr(width), uintptr(height), uintptr(depth), uintptr(border), uintptr(format), uintptr(typ), uintptr(pixels))
		}
	}
	if sym := r.addr("glTexParameterf"); sym != 0 {
		p.TexParameterf = func(target uint32, pname uint32, param float32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(pname), uintptr(math.Float32bits(param)))
		}
	}
	if sym := r.addr("glTexParameteri"); sym != 0 {
		p.TexParameteri = func(target uint32, pname uint32, param int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(pname), uintptr(param))
		}
	}
	if sym := r.addr("glTexStorage2D"); sym != 0 {
		p.TexStorage2D = func(target uint32, levels int32, internalformat uint32, width int32, height int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(levels), uintptr(internalformat), uintptr(width), uintptr(height))
		}
	}
	if sym := r.addr("glTexStorage3D"); sym != 0 {
		p.TexStorage3D = func(target uint32, levels int32, internalformat uint32, width int32, height int32, depth int32) {
			syscall.SyscallN(sym, uintptr(target), uintptr(levels), uintptr(internalformat), uintptr(width), uintptr(height), uintptr(depth))
		}
	}
	if sym := r.addr("glTexSubImage2D"); sym != 0 {
		p.TexSubImage2D = func(target uint32, level int32, xoffset int32, yoffset int32, width int32, height int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			syscall.SyscallN(sym, uintptr(target), uintptr(level), uintptr(xoffset), uintptr(yoffset), uintptr(width), uintptr(height), uintptr(format), uintptr(typ), uintptr(pixels))
		}
	}
	if sym := r.addr("glTexSubImage3D"); sym != 0 {
		p.TexSubImage3D = func(target uint32, level int32, xoffset int32, yoffset int32, zoffset int32, width int32, height int32, depth int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			syscall.SyscallN(sym, uintptr(target), uintptr(level), uintptr(xoffset), uintptr(yoffset), uintptr(zoffset), uintptr(width), uintptr(height), uintptr(depth), uintptr(format), uintptr(typ), uintptr(pixels))
		}
	}
	if sym := r.addr("glUniform1f"); sym != 0 {
		p.Uniform1f = func(location int32, v0 float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(math.Float32bits(v0)))
		}
	}
	if sym := r.addr("glUniform1fv"); sym != 0 {
		p.Uniform1fv = func(location int32, count int32, value *float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform1i"); sym != 0 {
		p.Uniform1i = func(location int32, v0 int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0))
		}
	}
	if sym := r.addr("glUniform1iv"); sym != 0 {
		p.Uniform1iv = func(location int32, count int32, value *int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform1ui"); sym != 0 {
		p.Uniform1ui = func(location int32, v0 uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0))
		}
	}
	if sym := r.addr("glUniform1uiv"); sym != 0 {
		p.Uniform1uiv = func(location int32, count int32, value *uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform2f"); sym != 0 {
		p.Uniform2f = func(location int32, v0 float32, v1 float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(math.Float32bits(v0)), uintptr(math.Float32bits(v1)))
		}
	}
	if sym := r.addr("glUniform2fv"); sym != 0 {
		p.Uniform2fv = func(location int32, count int32, value *float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform2i"); sym != 0 {
		p.Uniform2i = func(location int32, v0 int32, v1 int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0), uintptr(v1))
		}
	}
	if sym := r.addr("glUniform2iv"); sym != 0 {
		p.Uniform2iv = func(location int32, count int32, value *int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform2ui"); sym != 0 {
		p.Uniform2ui = func(location int32, v0 uint32, v1 uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0), uintptr(v1))
		}
	}
	if sym := r.addr("glUniform2uiv"); sym != 0 {
		p.Uniform2uiv = func(location int32, count int32, value *uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform3f"); sym != 0 {
		p.Uniform3f = func(location int32, v0 float32, v1 float32, v2 float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(math.Float32bits(v0)), uintptr(math.Float32bits(v1)), uintptr(math.Float32bits(v2)))
		}
	}
	if sym := r.addr("glUniform3fv"); sym != 0 {
		p.Uniform3fv = func(location int32, count int32, value *float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform3i"); sym != 0 {
		p.Uniform3i = func(location int32, v0 int32, v1 int32, v2 int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0), uintptr(v1), uintptr(v2))
		}
	}
	if sym := r.addr("glUniform3iv"); sym != 0 {
		p.Uniform3iv = func(location int32, count int32, value *int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform3ui"); sym != 0 {
		p.Uniform3ui = func(location int32, v0 uint32, v1 uint32, v2 uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0), uintptr(v1), uintptr(v2))
		}
	}
	if sym := r.addr("glUniform3uiv"); sym != 0 {
		p.Uniform3uiv = func(location int32, count int32, value *uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform4f"); sym != 0 {
		p.Uniform4f = func(location int32, v0 float32, v1 float32, v2 float32, v3 float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(math.Float32bits(v0)), uintptr(math.Float32bits(v1)), uintptr(math.Float32bits(v2)), uintptr(math.Float32bits(v3)))
		}
	}
	if sym := r.addr("glUniform4fv"); sym != 0 {
		p.Uniform4fv = func(location int32, count int32, value *float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform4i"); sym != 0 {
		p.Uniform4i = func(location int32, v0 int32, v1 int32, v2 int32, v3 int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0), uintptr(v1), uintptr(v2), uintptr(v3))
		}
	}
	if sym := r.addr("glUniform4iv"); sym != 0 {
		p.Uniform4iv = func(location int32, count int32, value *int32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniform4ui"); sym != 0 {
		p.Uniform4ui = func(location int32, v0 uint32, v1 uint32, v2 uint32, v3 uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(v0), uintptr(v1), uintptr(v2), uintptr(v3))
		}
	}
	if sym := r.addr("glUniform4uiv"); sym != 0 {
		p.Uniform4uiv = func(location int32, count int32, value *uint32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniformBlockBinding"); sym != 0 {
		p.UniformBlockBinding = func(program uint32, uniformBlockIndex uint32, uniformBlockBinding uint32) {
			syscall.SyscallN(sym, uintptr(program), uintptr(uniformBlockIndex), uintptr(uniformBlockBinding))
		}
	}
	if sym := r.addr("glUniformMatrix2fv"); sym != 0 {
		p.UniformMatrix2fv = func(location int32, count int32, transpose bool, value *float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), boolArg(transpose), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniformMatrix3fv"); sym != 0 {
		p.UniformMatrix3fv = func(location int32, count int32, transpose bool, value *float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), boolArg(transpose), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUniformMatrix4fv"); sym != 0 {
		p.UniformMatrix4fv = func(location int32, count int32, transpose bool, value *float32) {
			syscall.SyscallN(sym, uintptr(location), uintptr(count), boolArg(transpose), uintptr(unsafe.Pointer(value)))
		}
	}
	if sym := r.addr("glUnmapBuffer"); sym != 0 {
		p.UnmapBuffer = func(target uint32) bool {
			ret, _, _ := syscall.SyscallN(sym, uintptr(target))
			return byte(ret) != 0
		}
	}
	if sym := r.addr("glUseProgram"); sym != 0 {
		p.UseProgram = func(program uint32) {
			syscall.SyscallN(sym, uintptr(program))
		}
	}
	if sym := r.addr("glValidateProgram"); sym != 0 {
		p.ValidateProgram = func(program uint32) {
			syscall.SyscallN(sym, uintptr(program))
		}
	}
	if sym := r.addr("glVertexAttrib1f"); sym != 0 {
		p.VertexAttrib1f = func(index uint32, x float32) {
			syscall.SyscallN(sym, uintptr(index), uintptr(math.Float32bits(x)))
		}
	}
	if sym := r.addr("glVertexAttrib2f"); sym != 0 {
		p.VertexAttrib2f = func(index uint32, x float32, y float32) {
			syscall.SyscallN(sym, uintptr(index), uintptr(math.Float32bits(x)), uintptr(math.Float32bits(y)))
		}
	}
	if sym := r.addr("glVertexAttrib3f"); sym != 0 {
		p.VertexAttrib3f = func(index uint32, x float32, y float32, z float32) {
			syscall.SyscallN(sym, uintptr(index), uintptr(math.Float32bits(x)), uintptr(math.Float32bits(y)), uintptr(math.Float32bits(z)))
		}
	}
	if sym := r.addr("glVertexAttrib4f"); sym != 0 {
		p.VertexAttrib4f = func(index uint32, x float32, y float32, z float32, w float32) {
			syscall.SyscallN(sym, uintptr(index), uintptr(math.Float32bits(x)), uintptr(math.Float32bits(y)), uintptr(math.Float32bits(z)), uintptr(math.Float32bits(w)))
		}
	}
	if sym := r.addr("glVertexAttribDivisor"); sym != 0 {
		p.VertexAttribDivisor = func(index uint32, divisor uint32) {
			syscall.SyscallN(sym, uintptr(index), uintptr(divisor))
		}
	}
	if sym := r.addr("glVertexAttribDivisorANGLE"); sym != 0 {
		p.VertexAttribDivisorANGLE = func(index uint32, divisor uint32) {
			syscall.SyscallN(sym, uintptr(index), uintptr(divisor))
		}
	}
	if sym := r.addr("glVertexAttribDivisorEXT"); sym != 0 {
		p.VertexAttribDivisorEXT = func(index uint32, divisor uint32) {
			syscall.SyscallN(sym, uintptr(index), uintptr(divisor))
		}
	}
	if sym := r.addr("glVertexAttribIPointer"); sym != 0 {
		p.VertexAttribIPointer = func(index uint32, size int32, typ uint32, stride int32, pointer uintptr) {
			syscall.SyscallN(sym, uintptr(index), uintptr(size), uintptr(typ), uintptr(stride), uintptr(pointer))
		}
	}
	if sym := r.addr("glVertexAttribPointer"); sym != 0 {
		p.VertexAttribPointer = func(index uint32, size int32, typ uint32, normalized bool, stride int32, pointer uintptr) {
			syscall.SyscallN(sym, uintptr(index), uintptr(size), uintptr(typ), boolArg(normalized), uintptr(stride), uintptr(pointer))
		}
	}
	if sym := r.addr("glViewport"); sym != 0 {
		p.Viewport = func(x int32, y int32, width int32, height int32) {
			syscall.SyscallN(sym, uintptr(x), uintptr(y), uintptr(width), uintptr(height))
		}
	}
	if sym := r.addr("glWaitSync"); sym != 0 {
		p.WaitSync = func(sync uintptr, flags uint32, timeout uint64) {
			syscall.SyscallN(sym, uintptr(sync), uintptr(flags), uintptr(timeout))
		}
	}
	if sym := r.addr("glShaderSource"); sym != 0 {
		p.ShaderSource = func(shader uint32, src string) {
			csrc := append([]byte(src), 0)
			psrc := &csrc[0]
			n := int32(len(src))
			syscall.SyscallN(sym, uintptr(shader), 1, uintptr(unsafe.Pointer(&psrc)), uintptr(unsafe.Pointer(&n)))
		}
	}
	if sym := r.addr("glTransformFeedbackVaryings"); sym != 0 {
		p.TransformFeedbackVaryings = func(program uint32, varyings []string, bufferMode uint32) {
			ptrs := make([]*byte, len(varyings))
			for i, v := range varyings {
				ptrs[i] = &append([]byte(v), 0)[0]
			}
			var ptr uintptr
			if len(ptrs) > 0 {
				ptr = uintptr(unsafe.Pointer(&ptrs[0]))
			}
			syscall.SyscallN(sym, uintptr(program), uintptr(len(ptrs)), ptr, uintptr(bufferMode))
			runtime.KeepAlive(ptrs)
		}
	}
	for _, name := range []string{"glDebugMessageCallback", "glDebugMessageCallbackKHR"} {
		sym := r.addr(name)
		if sym == 0 {
			continue
		}
		fn := func(token uintptr) {
			var cb uintptr
			if token != 0 {
				cb = debugCallbackProc()
			}
			syscall.SyscallN(sym, cb, token)
		}
		if name == "glDebugMessageCallback" {
			p.DebugMessageCallback = fn
		} else {
			p.DebugMessageCallbackKHR = fn
		}
	}
	return p, nil
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}
