// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"reflect"
	"unsafe"

	"gioui.org/glow/gl"
	"golang.org/x/exp/slices"
)

// procs is the driver entry point table. Field names are the entry point
// names without the gl prefix. A nil field is an entry point the loader
// could not resolve.
//
// Parameters follow the C prototypes: pointers into Go memory are passed as
// typed pointers, buffer offsets and sync objects as uintptr.
type procs struct {
	ActiveTexture                                  func(texture uint32)
	AttachShader                                   func(program uint32, shader uint32)
	BeginQuery                                     func(target uint32, id uint32)
	BeginQueryEXT                                  func(target uint32, id uint32)
	BeginTransformFeedback                         func(primitiveMode uint32)
	BindAttribLocation                             func(program uint32, index uint32, name *byte)
	BindBuffer                                     func(target uint32, buffer uint32)
	BindBufferBase                                 func(target uint32, index uint32, buffer uint32)
	BindBufferRange                                func(target uint32, index uint32, buffer uint32, offset int, size int)
	BindFramebuffer                                func(target uint32, framebuffer uint32)
	BindImageTexture                               func(unit uint32, texture uint32, level int32, layered bool, layer int32, access uint32, format uint32)
	BindRenderbuffer                               func(target uint32, renderbuffer uint32)
	BindSampler                                    func(unit uint32, sampler uint32)
	BindTexture                                    func(target uint32, texture uint32)
	BindTransformFeedback                          func(target uint32, id uint32)
	BindVertexArray                                func(array uint32)
	BindVertexArrayOES                             func(array uint32)
	BlendColor                                     func(red float32, green float32, blue float32, alpha float32)
	BlendEquation                                  func(mode uint32)
	BlendEquationSeparate                          func(modeRGB uint32, modeAlpha uint32)
	BlendFunc                                      func(sfactor uint32, dfactor uint32)
	BlendFuncSeparate                              func(srcRGB uint32, dstRGB uint32, srcAlpha uint32, dstAlpha uint32)
	BlitFramebuffer                                func(srcX0 int32, srcY0 int32, srcX1 int32, srcY1 int32, dstX0 int32, dstY0 int32, dstX1 int32, dstY1 int32, mask uint32, filter uint32)
	BufferData                                     func(target uint32, size int, data unsafe.Pointer, usage uint32)
	BufferStorage                                  func(target uint32, size int, data unsafe.Pointer, flags uint32)
	BufferStorageEXT                               func(target uint32, size int, data unsafe.Pointer, flags uint32)
	BufferSubData                                  func(target uint32, offset int, size int, data unsafe.Pointer)
	CheckFramebufferStatus                         func(target uint32) uint32
	Clear                                          func(mask uint32)
	ClearBufferfi                                  func(buffer uint32, drawbuffer int32, depth float32, stencil int32)
	ClearBufferfv                                  func(buffer uint32, drawbuffer int32, value *float32)
	ClearBufferiv                                  func(buffer uint32, drawbuffer int32, value *int32)
	ClearBufferuiv                                 func(buffer uint32, drawbuffer int32, value *uint32)
	ClearColor                                     func(red float32, green float32, blue float32, alpha float32)
	ClearDepth                                     func(depth float64)
	ClearDepthf                                    func(d float32)
	ClearStencil                                   func(s int32)
	ClientWaitSync                                 func(sync uintptr, flags uint32, timeout uint64) uint32
	ColorMask                                      func(red bool, green bool, blue bool, alpha bool)
	CompileShader                                  func(shader uint32)
	CopyBufferSubData                              func(readTarget uint32, writeTarget uint32, readOffset int, writeOffset int, size int)
	CopyTexSubImage2D                              func(target uint32, level int32, xoffset int32, yoffset int32, x int32, y int32, width int32, height int32)
	CreateProgram                                  func() uint32
	CreateShader                                   func(typ uint32) uint32
	CullFace                                       func(mode uint32)
	DebugMessageCallback                           func(token uintptr)
	DebugMessageCallbackKHR                        func(token uintptr)
	DebugMessageControl                            func(source uint32, typ uint32, severity uint32, count int32, ids *uint32, enabled bool)
	DebugMessageControlKHR                         func(source uint32, typ uint32, severity uint32, count int32, ids *uint32, enabled bool)
	DebugMessageInsert                             func(source uint32, typ uint32, id uint32, severity uint32, length int32, buf *byte)
	DebugMessageInsertKHR                          func(source uint32, typ uint32, id uint32, severity uint32, length int32, buf *byte)
	DeleteBuffers                                  func(n int32, buffers *uint32)
	DeleteFramebuffers                             func(n int32, framebuffers *uint32)
	DeleteProgram                                  func(program uint32)
	DeleteQueries                                  func(n int32, ids *uint32)
	DeleteQueriesEXT                               func(n int32, ids *uint32)
	DeleteRenderbuffers                            func(n int32, renderbuffers *uint32)
	DeleteSamplers                                 func(count int32, samplers *uint32)
	DeleteShader                                   func(shader uint32)
	DeleteSync                                     func(sync uintptr)
	DeleteTextures                                 func(n int32, textures *uint32)
	DeleteTransformFeedbacks                       func(n int32, ids *uint32)
	DeleteVertexArrays                             func(n int32, arrays *uint32)
	DeleteVertexArraysOES                          func(n int32, arrays *uint32)
	DepthFunc                                      func(fn uint32)
	DepthMask                                      func(flag bool)
	DepthRange                                     func(n float64, f float64)
	DepthRangef                                    func(n float32, f float32)
	DetachShader                                   func(program uint32, shader uint32)
	Disable                                        func(cap uint32)
	DisableVertexAttribArray                       func(index uint32)
	DiscardFramebufferEXT                          func(target uint32, numAttachments int32, attachments *uint32)
	DispatchCompute                                func(numGroupsX uint32, numGroupsY uint32, numGroupsZ uint32)
	DrawArrays                                     func(mode uint32, first int32, count int32)
	DrawArraysIndirect                             func(mode uint32, indirect uintptr)
	DrawArraysInstanced                            func(mode uint32, first int32, count int32, instancecount int32)
	DrawArraysInstancedANGLE                       func(mode uint32, first int32, count int32, instancecount int32)
	DrawArraysInstancedBaseInstance                func(mode uint32, first int32, count int32, instancecount int32, baseinstance uint32)
	DrawArraysInstancedBaseInstanceEXT             func(mode uint32, first int32, count int32, instancecount int32, baseinstance uint32)
	DrawArraysInstancedEXT                         func(mode uint32, first int32, count int32, instancecount int32)
	DrawBuffers                                    func(n int32, bufs *uint32)
	DrawBuffersEXT                                 func(n int32, bufs *uint32)
	DrawElements                                   func(mode uint32, count int32, typ uint32, indices uintptr)
	DrawElementsBaseVertex                         func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32)
	DrawElementsBaseVertexEXT                      func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32)
	DrawElementsBaseVertexOES                      func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32)
	DrawElementsIndirect                           func(mode uint32, typ uint32, indirect uintptr)
	DrawElementsInstanced                          func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32)
	DrawElementsInstancedANGLE                     func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32)
	DrawElementsInstancedBaseVertex                func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32)
	DrawElementsInstancedBaseVertexBaseInstance    func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32, baseinstance uint32)
	DrawElementsInstancedBaseVertexBaseInstanceEXT func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32, baseinstance uint32)
	DrawElementsInstancedBaseVertexEXT             func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32)
	DrawElementsInstancedBaseVertexOES             func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32)
	DrawElementsInstancedEXT                       func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32)
	Enable                                         func(cap uint32)
	EnableVertexAttribArray                        func(index uint32)
	EndQuery                                       func(target uint32)
	EndQueryEXT                                    func(target uint32)
	EndTransformFeedback                           func()
	FenceSync                                      func(condition uint32, flags uint32) uintptr
	Finish                                         func()
	Flush                                          func()
	FramebufferRenderbuffer                        func(target uint32, attachment uint32, renderbuffertarget uint32, renderbuffer uint32)
	FramebufferTexture2D                           func(target uint32, attachment uint32, textarget uint32, texture uint32, level int32)
	FramebufferTextureLayer                        func(target uint32, attachment uint32, texture uint32, level int32, layer int32)
	FrontFace                                      func(mode uint32)
	GenBuffers                                     func(n int32, buffers *uint32)
	GenFramebuffers                                func(n int32, framebuffers *uint32)
	GenQueries                                     func(n int32, ids *uint32)
	GenQueriesEXT                                  func(n int32, ids *uint32)
	GenRenderbuffers                               func(n int32, renderbuffers *uint32)
	GenSamplers                                    func(count int32, samplers *uint32)
	GenTextures                                    func(n int32, textures *uint32)
	GenTransformFeedbacks                          func(n int32, ids *uint32)
	GenVertexArrays                                func(n int32, arrays *uint32)
	GenVertexArraysOES                             func(n int32, arrays *uint32)
	GenerateMipmap                                 func(target uint32)
	GetActiveAttrib                                func(program uint32, index uint32, bufSize int32, length *int32, size *int32, typ *uint32, name *byte)
	GetActiveUniform                               func(program uint32, index uint32, bufSize int32, length *int32, size *int32, typ *uint32, name *byte)
	GetAttribLocation                              func(program uint32, name *byte) int32
	GetBooleanv                                    func(pname uint32, data *uint8)
	GetBufferParameteriv                           func(target uint32, pname uint32, params *int32)
	GetBufferSubData                               func(target uint32, offset int, size int, data unsafe.Pointer)
	GetDebugMessageLog                             func(count uint32, bufSize int32, sources *uint32, types *uint32, ids *uint32, severities *uint32, lengths *int32, messageLog *byte) uint32
	GetDebugMessageLogKHR                          func(count uint32, bufSize int32, sources *uint32, types *uint32, ids *uint32, severities *uint32, lengths *int32, messageLog *byte) uint32
	GetError                                       func() uint32
	GetFloatv                                      func(pname uint32, data *float32)
	GetFramebufferAttachmentParameteriv            func(target uint32, attachment uint32, pname uint32, params *int32)
	GetIntegeri_v                                  func(target uint32, index uint32, data *int32)
	GetIntegerv                                    func(pname uint32, data *int32)
	GetObjectLabel                                 func(identifier uint32, name uint32, bufSize int32, length *int32, label *byte)
	GetObjectLabelKHR                              func(identifier uint32, name uint32, bufSize int32, length *int32, label *byte)
	GetObjectPtrLabel                              func(ptr uintptr, bufSize int32, length *int32, label *byte)
	GetObjectPtrLabelKHR                           func(ptr uintptr, bufSize int32, length *int32, label *byte)
	GetProgramInfoLog                              func(program uint32, bufSize int32, length *int32, infoLog *byte)
	GetProgramiv                                   func(program uint32, pname uint32, params *int32)
	GetQueryObjectuiv                              func(id uint32, pname uint32, params *uint32)
	GetQueryObjectuivEXT                           func(id uint32, pname uint32, params *uint32)
	GetRenderbufferParameteriv                     func(target uint32, pname uint32, params *int32)
	GetShaderInfoLog                               func(shader uint32, bufSize int32, length *int32, infoLog *byte)
	GetShaderiv                                    func(shader uint32, pname uint32, params *int32)
	GetString                                      func(name uint32) *byte
	GetStringi                                     func(name uint32, index uint32) *byte
	GetSynciv                                      func(sync uintptr, pname uint32, count int32, length *int32, values *int32)
	GetUniformBlockIndex                           func(program uint32, uniformBlockName *byte) uint32
	GetUniformLocation                             func(program uint32, name *byte) int32
	Hint                                           func(target uint32, mode uint32)
	InvalidateFramebuffer                          func(target uint32, numAttachments int32, attachments *uint32)
	IsEnabled                                      func(cap uint32) bool
	LineWidth                                      func(width float32)
	LinkProgram                                    func(program uint32)
	MapBufferRange                                 func(target uint32, offset int, length int, access uint32) unsafe.Pointer
	MemoryBarrier                                  func(barriers uint32)
	ObjectLabel                                    func(identifier uint32, name uint32, length int32, label *byte)
	ObjectLabelKHR                                 func(identifier uint32, name uint32, length int32, label *byte)
	ObjectPtrLabel                                 func(ptr uintptr, length int32, label *byte)
	ObjectPtrLabelKHR                              func(ptr uintptr, length int32, label *byte)
	PauseTransformFeedback                         func()
	PixelStorei                                    func(pname uint32, param int32)
	PolygonMode                                    func(face uint32, mode uint32)
	PolygonOffset                                  func(factor float32, units float32)
	PopDebugGroup                                  func()
	PopDebugGroupKHR                               func()
	PushDebugGroup                                 func(source uint32, id uint32, length int32, message *byte)
	PushDebugGroupKHR                              func(source uint32, id uint32, length int32, message *byte)
	QueryCounter                                   func(id uint32, target uint32)
	QueryCounterEXT                                func(id uint32, target uint32)
	ReadBuffer                                     func(src uint32)
	ReadPixels                                     func(x int32, y int32, width int32, height int32, format uint32, typ uint32, pixels unsafe.Pointer)
	RenderbufferStorage                            func(target uint32, internalformat uint32, width int32, height int32)
	RenderbufferStorageMultisample                 func(target uint32, samples int32, internalformat uint32, width int32, height int32)
	ResumeTransformFeedback                        func()
	SamplerParameterf                              func(sampler uint32, pname uint32, param float32)
	SamplerParameteri                              func(sampler uint32, pname uint32, param int32)
	Scissor                                        func(x int32, y int32, width int32, height int32)
	ShaderSource                                   func(shader uint32, src string)
	StencilFunc                                    func(fn uint32, ref int32, mask uint32)
	StencilFuncSeparate                            func(face uint32, fn uint32, ref int32, mask uint32)
	StencilMask                                    func(mask uint32)
	StencilMaskSeparate                            func(face uint32, mask uint32)
	StencilOp                                      func(fail uint32, zfail uint32, zpass uint32)
	StencilOpSeparate                              func(face uint32, sfail uint32, dpfail uint32, dppass uint32)
	TexImage2D                                     func(target uint32, level int32, internalformat int32, width int32, height int32, border int32, format uint32, typ uint32, pixels unsafe.Pointer)
	TexImage3D                                     func(target uint32, level int32, internalformat int32, width int32, height int32, depth int32, border int32, format uint32, typ uint32, pixels unsafe.Pointer)
	TexParameterf                                  func(target uint32, pname uint32, param float32)
	TexParameteri                                  func(target uint32, pname uint32, param int32)
	TexStorage2D                                   func(target uint32, levels int32, internalformat uint32, width int32, height int32)
	TexStorage3D                                   func(target uint32, levels int32, internalformat uint32, width int32, height int32, depth int32)
	TexSubImage2D                                  func(target uint32, level int32, xoffset int32, yoffset int32, width int32, height int32, format uint32, typ uint32, pixels unsafe.Pointer)
	TexSubImage3D                                  func(target uint32, level int32, xoffset int32, yoffset int32, zoffset int32, width int32, height int32, depth int32, format uint32, typ uint32, pixels unsafe.Pointer)
	TransformFeedbackVaryings                      func(program uint32, varyings []string, bufferMode uint32)
	Uniform1f                                      func(location int32, v0 float32)
	Uniform1fv                                     func(location int32, count int32, value *float32)
	Uniform1i                                      func(location int32, v0 int32)
	Uniform1iv                                     func(location int32, count int32, value *int32)
	Uniform1ui                                     func(location int32, v0 uint32)
	Uniform1uiv                                    func(location int32, count int32, value *uint32)
	Uniform2f                                      func(location int32, v0 float32, v1 float32)
	Uniform2fv                                     func(location int32, count int32, value *float32)
	Uniform2i                                      func(location int32, v0 int32, v1 int32)
	Uniform2iv                                     func(location int32, count int32, value *int32)
	Uniform2ui                                     func(location int32, v0 uint32, v1 uint32)
	Uniform2uiv                                    func(location int32, count int32, value *uint32)
	Uniform3f                                      func(location int32, v0 float32, v1 float32, v2 float32)
	Uniform3fv                                     func(location int32, count int32, value *float32)
	Uniform3i                                      func(location int32, v0 int32, v1 int32, v2 int32)
	Uniform3iv                                     func(location int32, count int32, value *int32)
	Uniform3ui                                     func(location int32, v0 uint32, v1 uint32, v2 uint32)
	Uniform3uiv                                    func(location int32, count int32, value *uint32)
	Uniform4f                                      func(location int32, v0 float32, v1 float32, v2 float32, v3 float32)
	Uniform4fv                                     func(location int32, count int32, value *float32)
	Uniform4i                                      func(location int32, v0 int32, v1 int32, v2 int32, v3 int32)
	Uniform4iv                                     func(location int32, count int32, value *int32)
	Uniform4ui                                     func(location int32, v0 uint32, v1 uint32, v2 uint32, v3 uint32)
	Uniform4uiv                                    func(location int32, count int32, value *uint32)
	UniformBlockBinding                            func(program uint32, uniformBlockIndex uint32, uniformBlockBinding uint32)
	UniformMatrix2fv                               func(location int32, count int32, transpose bool, value *float32)
	UniformMatrix3fv                               func(location int32, count int32, transpose bool, value *float32)
	UniformMatrix4fv                               func(location int32, count int32, transpose bool, value *float32)
	UnmapBuffer                                    func(target uint32) bool
	UseProgram                                     func(program uint32)
	ValidateProgram                                func(program uint32)
	VertexAttrib1f                                 func(index uint32, x float32)
	VertexAttrib2f                                 func(index uint32, x float32, y float32)
	VertexAttrib3f                                 func(index uint32, x float32, y float32, z float32)
	VertexAttrib4f                                 func(index uint32, x float32, y float32, z float32, w float32)
	VertexAttribDivisor                            func(index uint32, divisor uint32)
	VertexAttribDivisorANGLE                       func(index uint32, divisor uint32)
	VertexAttribDivisorEXT                         func(index uint32, divisor uint32)
	VertexAttribIPointer                           func(index uint32, size int32, typ uint32, stride int32, pointer uintptr)
	VertexAttribPointer                            func(index uint32, size int32, typ uint32, normalized bool, stride int32, pointer uintptr)
	Viewport                                       func(x int32, y int32, width int32, height int32)
	WaitSync                                       func(sync uintptr, flags uint32, timeout uint64)
}

// resolver wraps a Loader for the binding layer.
type resolver struct {
	load Loader
}

func (r *resolver) resolve(name string) unsafe.Pointer {
	return r.load(name)
}

// unresolved returns the names of the entry points that are not loaded.
func (p *procs) unresolved() []string {
	var names []string
	p.each(func(name string, f reflect.Value) {
		if f.IsNil() {
			names = append(names, "gl"+name)
		}
	})
	slices.Sort(names)
	return names
}

// fallback fills core entry points from their extension equivalents. Core
// entry points are always preferred.
func (p *procs) fallback() {
	if p.BeginQuery == nil {
		p.BeginQuery = p.BeginQueryEXT
	}
	if p.EndQuery == nil {
		p.EndQuery = p.EndQueryEXT
	}
	if p.GenQueries == nil {
		p.GenQueries = p.GenQueriesEXT
	}
	if p.DeleteQueries == nil {
		p.DeleteQueries = p.DeleteQueriesEXT
	}
	if p.GetQueryObjectuiv == nil {
		p.GetQueryObjectuiv = p.GetQueryObjectuivEXT
	}
	if p.QueryCounter == nil {
		p.QueryCounter = p.QueryCounterEXT
	}
	if p.BindVertexArray == nil {
		p.BindVertexArray = p.BindVertexArrayOES
	}
	if p.GenVertexArrays == nil {
		p.GenVertexArrays = p.GenVertexArraysOES
	}
	if p.DeleteVertexArrays == nil {
		p.DeleteVertexArrays = p.DeleteVertexArraysOES
	}
	if p.BufferStorage == nil {
		p.BufferStorage = p.BufferStorageEXT
	}
	if p.DrawBuffers == nil {
		p.DrawBuffers = p.DrawBuffersEXT
	}
	if p.InvalidateFramebuffer == nil {
		p.InvalidateFramebuffer = p.DiscardFramebufferEXT
	}
	if p.DrawArraysInstanced == nil {
		p.DrawArraysInstanced = p.DrawArraysInstancedEXT
	}
	if p.DrawArraysInstanced == nil {
		p.DrawArraysInstanced = p.DrawArraysInstancedANGLE
	}
	if p.DrawElementsInstanced == nil {
		p.DrawElementsInstanced = p.DrawElementsInstancedEXT
	}
	if p.DrawElementsInstanced == nil {
		p.DrawElementsInstanced = p.DrawElementsInstancedANGLE
	}
	if p.VertexAttribDivisor == nil {
		p.VertexAttribDivisor = p.VertexAttribDivisorEXT
	}
	if p.VertexAttribDivisor == nil {
		p.VertexAttribDivisor = p.VertexAttribDivisorANGLE
	}
	if p.DrawArraysInstancedBaseInstance == nil {
		p.DrawArraysInstancedBaseInstance = p.DrawArraysInstancedBaseInstanceEXT
	}
	if p.DrawElementsBaseVertex == nil {
		p.DrawElementsBaseVertex = p.DrawElementsBaseVertexEXT
	}
	if p.DrawElementsBaseVertex == nil {
		p.DrawElementsBaseVertex = p.DrawElementsBaseVertexOES
	}
	if p.DrawElementsInstancedBaseVertex == nil {
		p.DrawElementsInstancedBaseVertex = p.DrawElementsInstancedBaseVertexEXT
	}
	if p.DrawElementsInstancedBaseVertex == nil {
		p.DrawElementsInstancedBaseVertex = p.DrawElementsInstancedBaseVertexOES
	}
	if p.DrawElementsInstancedBaseVertexBaseInstance == nil {
		p.DrawElementsInstancedBaseVertexBaseInstance = p.DrawElementsInstancedBaseVertexBaseInstanceEXT
	}
	if p.ClearDepthf == nil && p.ClearDepth != nil {
		clearDepth := p.ClearDepth
		p.ClearDepthf = func(d float32) {
			clearDepth(float64(d))
		}
	}
	if p.DepthRangef == nil && p.DepthRange != nil {
		depthRange := p.DepthRange
		p.DepthRangef = func(n, f float32) {
			depthRange(float64(n), float64(f))
		}
	}
	// GL_KHR_debug on OpenGL ES suffixes every entry point.
	if p.DebugMessageControl == nil {
		p.DebugMessageControl = p.DebugMessageControlKHR
	}
	if p.DebugMessageInsert == nil {
		p.DebugMessageInsert = p.DebugMessageInsertKHR
	}
	if p.DebugMessageCallback == nil {
		p.DebugMessageCallback = p.DebugMessageCallbackKHR
	}
	if p.GetDebugMessageLog == nil {
		p.GetDebugMessageLog = p.GetDebugMessageLogKHR
	}
	if p.PushDebugGroup == nil {
		p.PushDebugGroup = p.PushDebugGroupKHR
	}
	if p.PopDebugGroup == nil {
		p.PopDebugGroup = p.PopDebugGroupKHR
	}
	if p.ObjectLabel == nil {
		p.ObjectLabel = p.ObjectLabelKHR
	}
	if p.GetObjectLabel == nil {
		p.GetObjectLabel = p.GetObjectLabelKHR
	}
	if p.ObjectPtrLabel == nil {
		p.ObjectPtrLabel = p.ObjectPtrLabelKHR
	}
	if p.GetObjectPtrLabel == nil {
		p.GetObjectPtrLabel = p.GetObjectPtrLabelKHR
	}
}

// stubMissing replaces every entry point that is still nil with a function
// panicking with a *gl.UnsupportedError.
func (p *procs) stubMissing() {
	p.each(func(name string, f reflect.Value) {
		if !f.IsNil() {
			return
		}
		err := &gl.UnsupportedError{Op: name, Reason: "entry point gl" + name + " is not loaded"}
		f.Set(reflect.MakeFunc(f.Type(), func([]reflect.Value) []reflect.Value {
			panic(err)
		}))
	})
}

func (p *procs) each(fn func(name string, f reflect.Value)) {
	v := reflect.ValueOf(p).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if f := v.Field(i); f.Kind() == reflect.Func {
			fn(t.Field(i).Name, f)
		}
	}
}
