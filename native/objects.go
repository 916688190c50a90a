// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"gioui.org/glow/gl"
)

func (c *Context) CreateShader(typ uint32) (gl.Shader, error) {
	v, err := allocated(c.p.CreateShader(typ), "glCreateShader")
	return gl.Shader{V: v}, err
}

func (c *Context) DeleteShader(s gl.Shader) {
	c.p.DeleteShader(s.V)
}

func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.p.ShaderSource(s.V, src)
}

func (c *Context) CompileShader(s gl.Shader) {
	c.p.CompileShader(s.V)
}

func (c *Context) GetShaderCompileStatus(s gl.Shader) bool {
	return c.GetShaderParameterI32(s, gl.COMPILE_STATUS) == gl.TRUE
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	n := c.GetShaderParameterI32(s, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	c.p.GetShaderInfoLog(s.V, n, &length, &buf[0])
	return bufString(buf, length, "shader info log")
}

func (c *Context) GetShaderParameterI32(s gl.Shader, pname uint32) int32 {
	c.ints[0] = 0
	c.p.GetShaderiv(s.V, pname, &c.ints[0])
	return c.ints[0]
}

func (c *Context) CreateProgram() (gl.Program, error) {
	v, err := allocated(c.p.CreateProgram(), "glCreateProgram")
	return gl.Program{V: v}, err
}

func (c *Context) DeleteProgram(p gl.Program) {
	c.p.DeleteProgram(p.V)
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.p.AttachShader(p.V, s.V)
}

func (c *Context) DetachShader(p gl.Program, s gl.Shader) {
	c.p.DetachShader(p.V, s.V)
}

func (c *Context) LinkProgram(p gl.Program) {
	c.p.LinkProgram(p.V)
}

func (c *Context) ValidateProgram(p gl.Program) {
	c.p.ValidateProgram(p.V)
}

func (c *Context) GetProgramLinkStatus(p gl.Program) bool {
	return c.GetProgramParameterI32(p, gl.LINK_STATUS) == gl.TRUE
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	n := c.GetProgramParameterI32(p, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var length int32
	c.p.GetProgramInfoLog(p.V, n, &length, &buf[0])
	return bufString(buf, length, "program info log")
}

func (c *Context) GetProgramParameterI32(p gl.Program, pname uint32) int32 {
	c.ints[0] = 0
	c.p.GetProgramiv(p.V, pname, &c.ints[0])
	return c.ints[0]
}

func (c *Context) UseProgram(p gl.Program) {
	c.p.UseProgram(p.V)
}

func (c *Context) BindAttribLocation(p gl.Program, index uint32, name string) {
	cname := cBuf(name)
	c.p.BindAttribLocation(p.V, index, &cname[0])
}

func (c *Context) GetAttribLocation(p gl.Program, name string) (uint32, bool) {
	cname := cBuf(name)
	loc := c.p.GetAttribLocation(p.V, &cname[0])
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

func (c *Context) GetUniformLocation(p gl.Program, name string) (gl.UniformLocation, bool) {
	cname := cBuf(name)
	loc := c.p.GetUniformLocation(p.V, &cname[0])
	return gl.UniformLocation{V: loc}, loc >= 0
}

func (c *Context) GetActiveUniforms(p gl.Program) uint32 {
	return uint32(max(c.GetProgramParameterI32(p, gl.ACTIVE_UNIFORMS), 0))
}

func (c *Context) GetActiveUniform(p gl.Program, index uint32) (gl.ActiveUniform, bool) {
	if index >= c.GetActiveUniforms(p) {
		return gl.ActiveUniform{}, false
	}
	size, typ, name := c.active(p, index, gl.ACTIVE_UNIFORM_MAX_LENGTH, c.p.GetActiveUniform)
	return gl.ActiveUniform{Size: size, Type: typ, Name: name}, true
}

func (c *Context) GetActiveAttributes(p gl.Program) uint32 {
	return uint32(max(c.GetProgramParameterI32(p, gl.ACTIVE_ATTRIBUTES), 0))
}

func (c *Context) GetActiveAttribute(p gl.Program, index uint32) (gl.ActiveAttribute, bool) {
	if index >= c.GetActiveAttributes(p) {
		return gl.ActiveAttribute{}, false
	}
	size, typ, name := c.active(p, index, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, c.p.GetActiveAttrib)
	return gl.ActiveAttribute{Size: size, Type: typ, Name: name}, true
}

func (c *Context) active(p gl.Program, index, maxLen uint32, get func(program, index uint32, bufSize int32, length, size *int32, typ *uint32, name *byte)) (int32, uint32, string) {
	n := max(c.GetProgramParameterI32(p, maxLen), 1)
	buf := make([]byte, n)
	var length, size int32
	var typ uint32
	get(p.V, index, n, &length, &size, &typ, &buf[0])
	return size, typ, bufString(buf, length, "active variable name")
}

func (c *Context) GetUniformBlockIndex(p gl.Program, name string) (uint32, bool) {
	cname := cBuf(name)
	idx := c.p.GetUniformBlockIndex(p.V, &cname[0])
	return idx, idx != gl.INVALID_INDEX
}

func (c *Context) UniformBlockBinding(p gl.Program, index, binding uint32) {
	c.p.UniformBlockBinding(p.V, index, binding)
}

func (c *Context) TransformFeedbackVaryings(p gl.Program, varyings []string, bufferMode uint32) {
	c.p.TransformFeedbackVaryings(p.V, varyings, bufferMode)
}

func (c *Context) CreateBuffer() (gl.Buffer, error) {
	c.uints[0] = 0
	c.p.GenBuffers(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenBuffers")
	return gl.Buffer{V: v}, err
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	c.uints[0] = b.V
	c.p.DeleteBuffers(1, &c.uints[0])
}

func (c *Context) CreateVertexArray() (gl.VertexArray, error) {
	c.uints[0] = 0
	c.p.GenVertexArrays(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenVertexArrays")
	return gl.VertexArray{V: v}, err
}

func (c *Context) DeleteVertexArray(a gl.VertexArray) {
	c.uints[0] = a.V
	c.p.DeleteVertexArrays(1, &c.uints[0])
}

func (c *Context) CreateTexture() (gl.Texture, error) {
	c.uints[0] = 0
	c.p.GenTextures(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenTextures")
	return gl.Texture{V: v}, err
}

func (c *Context) DeleteTexture(t gl.Texture) {
	c.uints[0] = t.V
	c.p.DeleteTextures(1, &c.uints[0])
}

func (c *Context) CreateSampler() (gl.Sampler, error) {
	c.uints[0] = 0
	c.p.GenSamplers(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenSamplers")
	return gl.Sampler{V: v}, err
}

func (c *Context) DeleteSampler(s gl.Sampler) {
	c.uints[0] = s.V
	c.p.DeleteSamplers(1, &c.uints[0])
}

func (c *Context) CreateFramebuffer() (gl.Framebuffer, error) {
	c.uints[0] = 0
	c.p.GenFramebuffers(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenFramebuffers")
	return gl.Framebuffer{V: v}, err
}

func (c *Context) DeleteFramebuffer(f gl.Framebuffer) {
	c.uints[0] = f.V
	c.p.DeleteFramebuffers(1, &c.uints[0])
}

func (c *Context) CreateRenderbuffer() (gl.Renderbuffer, error) {
	c.uints[0] = 0
	c.p.GenRenderbuffers(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenRenderbuffers")
	return gl.Renderbuffer{V: v}, err
}

func (c *Context) DeleteRenderbuffer(r gl.Renderbuffer) {
	c.uints[0] = r.V
	c.p.DeleteRenderbuffers(1, &c.uints[0])
}

func (c *Context) CreateQuery() (gl.Query, error) {
	c.uints[0] = 0
	c.p.GenQueries(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenQueries")
	return gl.Query{V: v}, err
}

func (c *Context) DeleteQuery(q gl.Query) {
	c.uints[0] = q.V
	c.p.DeleteQueries(1, &c.uints[0])
}

func (c *Context) CreateTransformFeedback() (gl.TransformFeedback, error) {
	c.uints[0] = 0
	c.p.GenTransformFeedbacks(1, &c.uints[0])
	v, err := allocated(c.uints[0], "glGenTransformFeedbacks")
	return gl.TransformFeedback{V: v}, err
}

func (c *Context) DeleteTransformFeedback(t gl.TransformFeedback) {
	c.uints[0] = t.V
	c.p.DeleteTransformFeedbacks(1, &c.uints[0])
}
