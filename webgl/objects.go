// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"syscall/js"

	"gioui.org/glow/gl"
	"gioui.org/glow/internal/slotmap"
)

func (c *Context) CreateShader(typ uint32) (gl.Shader, error) {
	k, err := insert(&c.shaders, c.ctx.Call("createShader", typ), "createShader")
	return gl.Shader{K: k}, err
}

func (c *Context) DeleteShader(s gl.Shader) {
	if v, ok := remove(&c.shaders, s.K); ok {
		c.ctx.Call("deleteShader", v)
	}
}

func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.ctx.Call("shaderSource", c.shader(s), src)
}

func (c *Context) CompileShader(s gl.Shader) {
	c.ctx.Call("compileShader", c.shader(s))
}

func (c *Context) GetShaderCompileStatus(s gl.Shader) bool {
	return toBool("GetShaderCompileStatus", c.ctx.Call("getShaderParameter", c.shader(s), gl.COMPILE_STATUS))
}

func (c *Context) GetShaderInfoLog(s gl.Shader) string {
	return toString("GetShaderInfoLog", c.ctx.Call("getShaderInfoLog", c.shader(s)))
}

func (c *Context) GetShaderParameterI32(s gl.Shader, pname uint32) int32 {
	return toInt32("GetShaderParameterI32", c.ctx.Call("getShaderParameter", c.shader(s), pname))
}

func (c *Context) CreateProgram() (gl.Program, error) {
	k, err := insert(&c.programs, c.ctx.Call("createProgram"), "createProgram")
	return gl.Program{K: k}, err
}

// DeleteProgram also invalidates the uniform locations of p.
func (c *Context) DeleteProgram(p gl.Program) {
	v, ok := remove(&c.programs, p.K)
	if !ok {
		return
	}
	c.dropUniforms(p.K)
	c.ctx.Call("deleteProgram", v)
}

// dropUniforms invalidates the cached uniform locations of a program.
func (c *Context) dropUniforms(p slotmap.Key) {
	for _, l := range c.programUniforms[p] {
		c.uniforms.Remove(l)
	}
	delete(c.programUniforms, p)
}

func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.ctx.Call("attachShader", c.program(p), c.shader(s))
}

func (c *Context) DetachShader(p gl.Program, s gl.Shader) {
	c.ctx.Call("detachShader", c.program(p), c.shader(s))
}

// LinkProgram invalidates the uniform locations of p, because the browser
// does not carry them over to the new executable.
func (c *Context) LinkProgram(p gl.Program) {
	prog := c.program(p)
	c.dropUniforms(p.K)
	c.ctx.Call("linkProgram", prog)
}

func (c *Context) ValidateProgram(p gl.Program) {
	c.ctx.Call("validateProgram", c.program(p))
}

func (c *Context) GetProgramLinkStatus(p gl.Program) bool {
	return toBool("GetProgramLinkStatus", c.ctx.Call("getProgramParameter", c.program(p), gl.LINK_STATUS))
}

func (c *Context) GetProgramInfoLog(p gl.Program) string {
	return toString("GetProgramInfoLog", c.ctx.Call("getProgramInfoLog", c.program(p)))
}

func (c *Context) GetProgramParameterI32(p gl.Program, pname uint32) int32 {
	return toInt32("GetProgramParameterI32", c.ctx.Call("getProgramParameter", c.program(p), pname))
}

func (c *Context) UseProgram(p gl.Program) {
	c.ctx.Call("useProgram", c.program(p))
}

func (c *Context) BindAttribLocation(p gl.Program, index uint32, name string) {
	c.ctx.Call("bindAttribLocation", c.program(p), index, name)
}

func (c *Context) GetAttribLocation(p gl.Program, name string) (uint32, bool) {
	loc := toInt32("GetAttribLocation", c.ctx.Call("getAttribLocation", c.program(p), name))
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

// GetUniformLocation returns the same handle for repeated lookups of a
// name in a program.
func (c *Context) GetUniformLocation(p gl.Program, name string) (gl.UniformLocation, bool) {
	prog := c.program(p)
	if k, ok := c.programUniforms[p.K][name]; ok {
		return gl.UniformLocation{K: k}, true
	}
	loc := c.ctx.Call("getUniformLocation", prog, name)
	if !loc.Truthy() {
		return gl.UniformLocation{}, false
	}
	locs := c.programUniforms[p.K]
	if locs == nil {
		locs = make(map[string]slotmap.Key)
		c.programUniforms[p.K] = locs
	}
	k := c.uniforms.Insert(loc)
	locs[name] = k
	return gl.UniformLocation{K: k}, true
}

func (c *Context) GetActiveUniforms(p gl.Program) uint32 {
	return toUint32("GetActiveUniforms", c.ctx.Call("getProgramParameter", c.program(p), gl.ACTIVE_UNIFORMS))
}

func (c *Context) GetActiveUniform(p gl.Program, index uint32) (gl.ActiveUniform, bool) {
	info := c.ctx.Call("getActiveUniform", c.program(p), index)
	if !info.Truthy() {
		return gl.ActiveUniform{}, false
	}
	size, typ, name := activeInfo("GetActiveUniform", info)
	return gl.ActiveUniform{Size: size, Type: typ, Name: name}, true
}

func (c *Context) GetActiveAttributes(p gl.Program) uint32 {
	return toUint32("GetActiveAttributes", c.ctx.Call("getProgramParameter", c.program(p), gl.ACTIVE_ATTRIBUTES))
}

func (c *Context) GetActiveAttribute(p gl.Program, index uint32) (gl.ActiveAttribute, bool) {
	info := c.ctx.Call("getActiveAttrib", c.program(p), index)
	if !info.Truthy() {
		return gl.ActiveAttribute{}, false
	}
	size, typ, name := activeInfo("GetActiveAttribute", info)
	return gl.ActiveAttribute{Size: size, Type: typ, Name: name}, true
}

// activeInfo unpacks a WebGLActiveInfo.
func activeInfo(op string, info js.Value) (int32, uint32, string) {
	return toInt32(op, info.Get("size")), toUint32(op, info.Get("type")), toString(op, info.Get("name"))
}

func (c *Context) GetUniformBlockIndex(p gl.Program, name string) (uint32, bool) {
	c.requireWebGL2("GetUniformBlockIndex")
	idx := toUint32("GetUniformBlockIndex", c.ctx.Call("getUniformBlockIndex", c.program(p), name))
	return idx, idx != gl.INVALID_INDEX
}

func (c *Context) UniformBlockBinding(p gl.Program, index, binding uint32) {
	c.requireWebGL2("UniformBlockBinding")
	c.ctx.Call("uniformBlockBinding", c.program(p), index, binding)
}

func (c *Context) TransformFeedbackVaryings(p gl.Program, varyings []string, bufferMode uint32) {
	c.requireWebGL2("TransformFeedbackVaryings")
	c.ctx.Call("transformFeedbackVaryings", c.program(p), anys(varyings), bufferMode)
}

func (c *Context) CreateBuffer() (gl.Buffer, error) {
	k, err := insert(&c.buffers, c.ctx.Call("createBuffer"), "createBuffer")
	return gl.Buffer{K: k}, err
}

func (c *Context) DeleteBuffer(b gl.Buffer) {
	if v, ok := remove(&c.buffers, b.K); ok {
		c.ctx.Call("deleteBuffer", v)
	}
}

func (c *Context) CreateVertexArray() (gl.VertexArray, error) {
	var v js.Value
	if c.level >= WebGL2 {
		v = c.ctx.Call("createVertexArray")
	} else {
		v = extension("CreateVertexArray", c.ext.oesVertexArrayObject, "OES_vertex_array_object").Call("createVertexArrayOES")
	}
	k, err := insert(&c.vertexArrays, v, "createVertexArray")
	return gl.VertexArray{K: k}, err
}

func (c *Context) DeleteVertexArray(a gl.VertexArray) {
	if a.K.IsZero() {
		return
	}
	obj, method := c.ctx, "deleteVertexArray"
	if c.level < WebGL2 {
		obj = extension("DeleteVertexArray", c.ext.oesVertexArrayObject, "OES_vertex_array_object")
		method = "deleteVertexArrayOES"
	}
	if v, ok := remove(&c.vertexArrays, a.K); ok {
		obj.Call(method, v)
	}
}

func (c *Context) CreateTexture() (gl.Texture, error) {
	k, err := insert(&c.textures, c.ctx.Call("createTexture"), "createTexture")
	return gl.Texture{K: k}, err
}

func (c *Context) DeleteTexture(t gl.Texture) {
	if v, ok := remove(&c.textures, t.K); ok {
		c.ctx.Call("deleteTexture", v)
	}
}

func (c *Context) CreateSampler() (gl.Sampler, error) {
	c.requireWebGL2("CreateSampler")
	k, err := insert(&c.samplers, c.ctx.Call("createSampler"), "createSampler")
	return gl.Sampler{K: k}, err
}

func (c *Context) DeleteSampler(s gl.Sampler) {
	if s.K.IsZero() {
		return
	}
	c.requireWebGL2("DeleteSampler")
	if v, ok := remove(&c.samplers, s.K); ok {
		c.ctx.Call("deleteSampler", v)
	}
}

func (c *Context) CreateFramebuffer() (gl.Framebuffer, error) {
	k, err := insert(&c.framebuffers, c.ctx.Call("createFramebuffer"), "createFramebuffer")
	return gl.Framebuffer{K: k}, err
}

func (c *Context) DeleteFramebuffer(f gl.Framebuffer) {
	if v, ok := remove(&c.framebuffers, f.K); ok {
		c.ctx.Call("deleteFramebuffer", v)
	}
}

func (c *Context) CreateRenderbuffer() (gl.Renderbuffer, error) {
	k, err := insert(&c.renderbuffers, c.ctx.Call("createRenderbuffer"), "createRenderbuffer")
	return gl.Renderbuffer{K: k}, err
}

func (c *Context) DeleteRenderbuffer(r gl.Renderbuffer) {
	if v, ok := remove(&c.renderbuffers, r.K); ok {
		c.ctx.Call("deleteRenderbuffer", v)
	}
}

func (c *Context) CreateQuery() (gl.Query, error) {
	var v js.Value
	if c.level >= WebGL2 {
		v = c.ctx.Call("createQuery")
	} else {
		v = extension("CreateQuery", c.ext.extDisjointTimerQuery, "EXT_disjoint_timer_query").Call("createQueryEXT")
	}
	k, err := insert(&c.queries, v, "createQuery")
	return gl.Query{K: k}, err
}

func (c *Context) DeleteQuery(q gl.Query) {
	if q.K.IsZero() {
		return
	}
	obj, method := c.ctx, "deleteQuery"
	if c.level < WebGL2 {
		obj = extension("DeleteQuery", c.ext.extDisjointTimerQuery, "EXT_disjoint_timer_query")
		method = "deleteQueryEXT"
	}
	if v, ok := remove(&c.queries, q.K); ok {
		obj.Call(method, v)
	}
}

func (c *Context) CreateTransformFeedback() (gl.TransformFeedback, error) {
	c.requireWebGL2("CreateTransformFeedback")
	k, err := insert(&c.transformFeedbacks, c.ctx.Call("createTransformFeedback"), "createTransformFeedback")
	return gl.TransformFeedback{K: k}, err
}

func (c *Context) DeleteTransformFeedback(t gl.TransformFeedback) {
	if t.K.IsZero() {
		return
	}
	c.requireWebGL2("DeleteTransformFeedback")
	if v, ok := remove(&c.transformFeedbacks, t.K); ok {
		c.ctx.Call("deleteTransformFeedback", v)
	}
}
