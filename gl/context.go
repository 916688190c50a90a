// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Context is the backend independent graphics API. Implementations are the
// native driver adapter and the two browser adapters.
//
// Enumerations are passed as the raw uint32 codes of the backend. Every
// method requires the wrapped backend context to be current on the calling
// goroutine's thread, and a Context must not be used from more than one
// goroutine at a time. Handles are only meaningful to the Context that
// created them.
//
// Object creation returns an error wrapping ErrAllocation when the backend
// refuses to allocate. Contract violations, such as calling an operation
// the backend does not support or passing a handle unknown to the Context,
// panic with a *UnsupportedError or *InvalidHandleError value. Deleting the
// zero handle or an already deleted handle does nothing.
type Context interface {
	Version() Version
	Extensions() ExtensionSet
	HasExtension(name string) bool
	// SupportsDebug reports whether the debug and label operations are
	// available. They panic when it returns false.
	SupportsDebug() bool
	// MaxLabelLength is the maximum object label length in bytes including
	// the terminating NUL, or 0 when labels are unsupported.
	MaxLabelLength() int32

	CreateShader(typ uint32) (Shader, error)
	DeleteShader(s Shader)
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderCompileStatus(s Shader) bool
	GetShaderInfoLog(s Shader) string
	GetShaderParameterI32(s Shader, pname uint32) int32
	CreateProgram() (Program, error)
	DeleteProgram(p Program)
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	ValidateProgram(p Program)
	GetProgramLinkStatus(p Program) bool
	GetProgramInfoLog(p Program) string
	GetProgramParameterI32(p Program, pname uint32) int32
	UseProgram(p Program)
	BindAttribLocation(p Program, index uint32, name string)
	GetAttribLocation(p Program, name string) (uint32, bool)
	GetUniformLocation(p Program, name string) (UniformLocation, bool)
	GetActiveUniforms(p Program) uint32
	GetActiveUniform(p Program, index uint32) (ActiveUniform, bool)
	GetActiveAttributes(p Program) uint32
	GetActiveAttribute(p Program, index uint32) (ActiveAttribute, bool)
	GetUniformBlockIndex(p Program, name string) (uint32, bool)
	UniformBlockBinding(p Program, index, binding uint32)
	TransformFeedbackVaryings(p Program, varyings []string, bufferMode uint32)

	CreateBuffer() (Buffer, error)
	DeleteBuffer(b Buffer)
	BindBuffer(target uint32, b Buffer)
	BindBufferBase(target, index uint32, b Buffer)
	BindBufferRange(target, index uint32, b Buffer, offset, size int)
	BufferDataSize(target uint32, size int, usage uint32)
	BufferData(target uint32, data []byte, usage uint32)
	BufferSubData(target uint32, offset int, data []byte)
	// BufferStorage allocates immutable storage of size bytes, initialized
	// from data if it is not nil.
	BufferStorage(target uint32, size int, data []byte, flags uint32)
	GetBufferSubData(target uint32, offset int, dst []byte)
	CopyBufferSubData(readTarget, writeTarget uint32, readOffset, writeOffset, size int)
	// MapBufferRange returns nil if the mapping failed. The slice is
	// invalid after UnmapBuffer.
	MapBufferRange(target uint32, offset, length int, access uint32) []byte
	UnmapBuffer(target uint32) bool
	GetBufferParameterI32(target, pname uint32) int32

	CreateVertexArray() (VertexArray, error)
	DeleteVertexArray(a VertexArray)
	BindVertexArray(a VertexArray)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointerF32(index uint32, size int32, typ uint32, normalized bool, stride, offset int32)
	VertexAttribPointerI32(index uint32, size int32, typ uint32, stride, offset int32)
	VertexAttribDivisor(index, divisor uint32)
	VertexAttrib1F32(index uint32, x float32)
	VertexAttrib2F32(index uint32, x, y float32)
	VertexAttrib3F32(index uint32, x, y, z float32)
	VertexAttrib4F32(index uint32, x, y, z, w float32)

	CreateTexture() (Texture, error)
	DeleteTexture(t Texture)
	BindTexture(target uint32, t Texture)
	ActiveTexture(unit uint32)
	TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, typ uint32, pixels []byte)
	TexSubImage2D(target uint32, level, x, y, width, height int32, format, typ uint32, pixels []byte)
	TexImage3D(target uint32, level, internalFormat, width, height, depth, border int32, format, typ uint32, pixels []byte)
	TexSubImage3D(target uint32, level, x, y, z, width, height, depth int32, format, typ uint32, pixels []byte)
	TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32)
	TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32)
	TexParameterI32(target, pname uint32, param int32)
	TexParameterF32(target, pname uint32, param float32)
	GenerateMipmap(target uint32)
	CopyTexSubImage2D(target uint32, level, xoffset, yoffset, x, y, width, height int32)
	PixelStoreI32(pname uint32, param int32)
	BindImageTexture(unit uint32, t Texture, level int32, layered bool, layer int32, access, format uint32)
	CreateSampler() (Sampler, error)
	DeleteSampler(s Sampler)
	BindSampler(unit uint32, s Sampler)
	SamplerParameterI32(s Sampler, pname uint32, param int32)
	SamplerParameterF32(s Sampler, pname uint32, param float32)

	CreateFramebuffer() (Framebuffer, error)
	DeleteFramebuffer(f Framebuffer)
	BindFramebuffer(target uint32, f Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget uint32, t Texture, level int32)
	FramebufferTextureLayer(target, attachment uint32, t Texture, level, layer int32)
	FramebufferRenderbuffer(target, attachment, rbTarget uint32, r Renderbuffer)
	CheckFramebufferStatus(target uint32) uint32
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32)
	InvalidateFramebuffer(target uint32, attachments []uint32)
	DrawBuffers(buffers []uint32)
	ReadBuffer(src uint32)
	ReadPixels(x, y, width, height int32, format, typ uint32, dst []byte)
	ClearBufferF32Slice(buffer uint32, drawBuffer int32, v []float32)
	ClearBufferI32Slice(buffer uint32, drawBuffer int32, v []int32)
	ClearBufferU32Slice(buffer uint32, drawBuffer int32, v []uint32)
	ClearBufferDepthStencil(buffer uint32, drawBuffer int32, depth float32, stencil int32)
	CreateRenderbuffer() (Renderbuffer, error)
	DeleteRenderbuffer(r Renderbuffer)
	BindRenderbuffer(target uint32, r Renderbuffer)
	RenderbufferStorage(target, internalFormat uint32, width, height int32)
	RenderbufferStorageMultisample(target uint32, samples int32, internalFormat uint32, width, height int32)
	GetFramebufferAttachmentParameterI32(target, attachment, pname uint32) int32
	GetRenderbufferParameterI32(target, pname uint32) int32

	Enable(cap uint32)
	Disable(cap uint32)
	IsEnabled(cap uint32) bool
	BlendFunc(src, dst uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	BlendEquation(mode uint32)
	BlendEquationSeparate(modeRGB, modeAlpha uint32)
	BlendColor(r, g, b, a float32)
	DepthFunc(fn uint32)
	DepthMask(flag bool)
	DepthRangeF32(near, far float32)
	ColorMask(r, g, b, a bool)
	CullFace(mode uint32)
	FrontFace(mode uint32)
	Scissor(x, y, width, height int32)
	Viewport(x, y, width, height int32)
	LineWidth(width float32)
	PolygonOffset(factor, units float32)
	PolygonMode(face, mode uint32)
	StencilFunc(fn uint32, ref int32, mask uint32)
	StencilFuncSeparate(face, fn uint32, ref int32, mask uint32)
	StencilOp(fail, zfail, zpass uint32)
	StencilOpSeparate(face, fail, zfail, zpass uint32)
	StencilMask(mask uint32)
	StencilMaskSeparate(face, mask uint32)
	Clear(mask uint32)
	ClearColor(r, g, b, a float32)
	ClearDepthF32(depth float32)
	ClearStencil(s int32)
	Hint(target, mode uint32)
	Flush()
	Finish()
	GetError() uint32
	MemoryBarrier(barriers uint32)
	DispatchCompute(x, y, z uint32)

	DrawArrays(mode uint32, first, count int32)
	DrawArraysInstanced(mode uint32, first, count, instanceCount int32)
	DrawArraysInstancedBaseInstance(mode uint32, first, count, instanceCount int32, baseInstance uint32)
	DrawArraysIndirectOffset(mode uint32, offset int)
	DrawElements(mode uint32, count int32, typ uint32, offset int)
	DrawElementsInstanced(mode uint32, count int32, typ uint32, offset int, instanceCount int32)
	DrawElementsBaseVertex(mode uint32, count int32, typ uint32, offset int, baseVertex int32)
	DrawElementsInstancedBaseVertex(mode uint32, count int32, typ uint32, offset int, instanceCount, baseVertex int32)
	DrawElementsInstancedBaseVertexBaseInstance(mode uint32, count int32, typ uint32, offset int, instanceCount, baseVertex int32, baseInstance uint32)
	DrawElementsIndirectOffset(mode, typ uint32, offset int)

	// Slice uploads panic unless the slice length is a multiple of the
	// component count.
	Uniform1I32(l UniformLocation, x int32)
	Uniform2I32(l UniformLocation, x, y int32)
	Uniform3I32(l UniformLocation, x, y, z int32)
	Uniform4I32(l UniformLocation, x, y, z, w int32)
	Uniform1U32(l UniformLocation, x uint32)
	Uniform2U32(l UniformLocation, x, y uint32)
	Uniform3U32(l UniformLocation, x, y, z uint32)
	Uniform4U32(l UniformLocation, x, y, z, w uint32)
	Uniform1F32(l UniformLocation, x float32)
	Uniform2F32(l UniformLocation, x, y float32)
	Uniform3F32(l UniformLocation, x, y, z float32)
	Uniform4F32(l UniformLocation, x, y, z, w float32)
	Uniform1I32Slice(l UniformLocation, v []int32)
	Uniform2I32Slice(l UniformLocation, v []int32)
	Uniform3I32Slice(l UniformLocation, v []int32)
	Uniform4I32Slice(l UniformLocation, v []int32)
	Uniform1U32Slice(l UniformLocation, v []uint32)
	Uniform2U32Slice(l UniformLocation, v []uint32)
	Uniform3U32Slice(l UniformLocation, v []uint32)
	Uniform4U32Slice(l UniformLocation, v []uint32)
	Uniform1F32Slice(l UniformLocation, v []float32)
	Uniform2F32Slice(l UniformLocation, v []float32)
	Uniform3F32Slice(l UniformLocation, v []float32)
	Uniform4F32Slice(l UniformLocation, v []float32)
	UniformMatrix2F32Slice(l UniformLocation, transpose bool, v []float32)
	UniformMatrix3F32Slice(l UniformLocation, transpose bool, v []float32)
	UniformMatrix4F32Slice(l UniformLocation, transpose bool, v []float32)

	// Parameter queries return the zero value for unset state.
	GetParameterI32(pname uint32) int32
	GetParameterF32(pname uint32) float32
	GetParameterBool(pname uint32) bool
	GetParameterString(pname uint32) string
	GetParameterI32Slice(pname uint32, dst []int32)
	GetParameterF32Slice(pname uint32, dst []float32)
	GetParameterIndexedI32(pname, index uint32) int32
	GetParameterIndexedString(pname, index uint32) string

	CreateQuery() (Query, error)
	DeleteQuery(q Query)
	BeginQuery(target uint32, q Query)
	EndQuery(target uint32)
	QueryCounter(q Query, target uint32)
	GetQueryParameterU32(q Query, pname uint32) uint32

	CreateTransformFeedback() (TransformFeedback, error)
	DeleteTransformFeedback(t TransformFeedback)
	BindTransformFeedback(target uint32, t TransformFeedback)
	BeginTransformFeedback(primitiveMode uint32)
	EndTransformFeedback()
	PauseTransformFeedback()
	ResumeTransformFeedback()

	FenceSync(condition, flags uint32) (Fence, error)
	DeleteSync(f Fence)
	// ClientWaitSync and WaitSync forward timeout, including
	// TIMEOUT_IGNORED, to the backend unchanged.
	ClientWaitSync(f Fence, flags uint32, timeout uint64) uint32
	WaitSync(f Fence, flags uint32, timeout uint64)
	GetSyncStatus(f Fence) uint32

	DebugMessageControl(source, typ, severity uint32, ids []uint32, enabled bool)
	DebugMessageInsert(source, typ, id, severity uint32, msg string)
	// DebugMessageCallback installs cb as the debug output callback,
	// replacing any previous one. A nil cb removes the callback.
	DebugMessageCallback(cb DebugCallback)
	GetDebugMessageLog(count uint32) []DebugMessage
	PushDebugGroup(source, id uint32, msg string)
	PopDebugGroup()
	// ObjectLabel labels the object of kind identifier (BUFFER, TEXTURE,
	// ...) with the backend name name. Labels longer than MaxLabelLength
	// are truncated.
	ObjectLabel(identifier, name uint32, label string)
	// GetObjectLabel returns "" for unlabeled objects.
	GetObjectLabel(identifier, name uint32) string
	ObjectPtrLabel(f Fence, label string)
	GetObjectPtrLabel(f Fence) string
}
