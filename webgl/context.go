// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

// Package webgl implements gl.Context on top of a browser WebGL 1 or
// WebGL 2 rendering context.
//
// Browser objects are not integers, so the adapter keeps one table per
// object kind and hands out generational keys as handles. Using a handle
// unknown to the Context panics with a *gl.InvalidHandleError; deleting one
// does nothing. Operations that the context's API level cannot express
// panic with a *gl.UnsupportedError.
package webgl

import (
	"errors"
	"fmt"
	"syscall/js"

	"gioui.org/glow/gl"
	"gioui.org/glow/internal/slotmap"
)

// Level is the WebGL API level of a Context.
type Level int

const (
	WebGL1 Level = 1
	WebGL2 Level = 2
)

func (l Level) String() string {
	switch l {
	case WebGL1:
		return "WebGL 1"
	case WebGL2:
		return "WebGL 2"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Context is a gl.Context backed by a browser rendering context. Like the
// browser object it wraps, it must only be used from one goroutine.
type Context struct {
	ctx   js.Value
	level Level

	version    gl.Version
	extensions gl.ExtensionSet
	ext        extensions

	shaders            slotmap.Map[js.Value]
	programs           slotmap.Map[js.Value]
	buffers            slotmap.Map[js.Value]
	vertexArrays       slotmap.Map[js.Value]
	textures           slotmap.Map[js.Value]
	samplers           slotmap.Map[js.Value]
	fences             slotmap.Map[js.Value]
	framebuffers       slotmap.Map[js.Value]
	renderbuffers      slotmap.Map[js.Value]
	queries            slotmap.Map[js.Value]
	transformFeedbacks slotmap.Map[js.Value]
	uniforms           slotmap.Map[js.Value]
	// programUniforms maps a program to its uniform locations by name.
	programUniforms map[slotmap.Key]map[string]slotmap.Key

	arrays typedArrays
}

// extensions holds the extension objects fetched at construction. Absent
// extensions are null.
type extensions struct {
	angleInstancedArrays                     js.Value
	oesVertexArrayObject                     js.Value
	webglDrawBuffers                         js.Value
	extDisjointTimerQuery                    js.Value
	extDisjointTimerQueryWebGL2              js.Value
	webglDrawInstancedBaseVertexBaseInstance js.Value
	oesDrawBuffersIndexed                    js.Value
}

var _ gl.Context = (*Context)(nil)

// NewWebGL1 wraps a WebGLRenderingContext.
func NewWebGL1(ctx js.Value) (*Context, error) {
	return newContext(ctx, WebGL1)
}

// NewWebGL2 wraps a WebGL2RenderingContext.
func NewWebGL2(ctx js.Value) (*Context, error) {
	return newContext(ctx, WebGL2)
}

func newContext(ctx js.Value, level Level) (*Context, error) {
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, errors.New("webgl: nil rendering context")
	}
	c := &Context{
		ctx:             ctx,
		level:           level,
		programUniforms: make(map[slotmap.Key]map[string]slotmap.Key),
		arrays:          newTypedArrays(),
	}
	raw := ctx.Call("getParameter", gl.VERSION)
	if raw.Type() != js.TypeString || raw.String() == "" {
		return nil, fmt.Errorf("webgl: no version string, the context may be lost: %w", gl.ErrNoCurrentContext)
	}
	v, err := gl.ParseVersion(raw.String())
	if err != nil {
		gl.Logger().Debug("webgl: unrecognized version string", "version", raw.String(), "error", err)
		v = gl.NewEmbeddedVersion(uint32(level)+1, 0, raw.String())
	}
	c.version = v

	var names []string
	if exts := ctx.Call("getSupportedExtensions"); exts.Truthy() {
		for i := 0; i < exts.Length(); i++ {
			names = append(names, "GL_"+exts.Index(i).String())
		}
	}
	c.extensions = gl.ExtensionSetOf(names...)

	if level == WebGL1 {
		c.ext.angleInstancedArrays = c.getExtension("ANGLE_instanced_arrays")
		c.ext.oesVertexArrayObject = c.getExtension("OES_vertex_array_object")
		c.ext.webglDrawBuffers = c.getExtension("WEBGL_draw_buffers")
		c.ext.extDisjointTimerQuery = c.getExtension("EXT_disjoint_timer_query")
		c.ext.extDisjointTimerQueryWebGL2 = js.Null()
		c.ext.webglDrawInstancedBaseVertexBaseInstance = js.Null()
		c.ext.oesDrawBuffersIndexed = js.Null()
	} else {
		c.ext.angleInstancedArrays = js.Null()
		c.ext.oesVertexArrayObject = js.Null()
		c.ext.webglDrawBuffers = js.Null()
		c.ext.extDisjointTimerQuery = js.Null()
		c.ext.extDisjointTimerQueryWebGL2 = c.getExtension("EXT_disjoint_timer_query_webgl2")
		c.ext.webglDrawInstancedBaseVertexBaseInstance = c.getExtension("WEBGL_draw_instanced_base_vertex_base_instance")
		c.ext.oesDrawBuffersIndexed = c.getExtension("OES_draw_buffers_indexed")
	}
	gl.Logger().Info("webgl: context initialized",
		"level", level.String(),
		"version", v.String(),
		"extensions", len(c.extensions))
	return c, nil
}

func (c *Context) getExtension(name string) js.Value {
	ext := c.ctx.Call("getExtension", name)
	if !ext.Truthy() {
		return js.Null()
	}
	return ext
}

// Level reports the API level of the wrapped context.
func (c *Context) Level() Level { return c.level }

func (c *Context) Version() gl.Version { return c.version }

// Extensions returns the supported extensions, with the GL_ prefix native
// drivers use.
func (c *Context) Extensions() gl.ExtensionSet { return c.extensions }

// HasExtension accepts both the browser name and the GL_ prefixed name of
// an extension.
func (c *Context) HasExtension(name string) bool {
	return c.extensions.Has(name) || c.extensions.Has("GL_"+name)
}

func (c *Context) SupportsDebug() bool { return false }

func (c *Context) MaxLabelLength() int32 { return 0 }

func unsupported(op, reason string) {
	panic(&gl.UnsupportedError{Op: op, Reason: reason})
}

// requireWebGL2 panics unless the context is a WebGL 2 context.
func (c *Context) requireWebGL2(op string) {
	if c.level < WebGL2 {
		unsupported(op, "requires WebGL 2")
	}
}

// extension returns ext, panicking if the extension is absent.
func extension(op string, ext js.Value, name string) js.Value {
	if ext.IsNull() {
		unsupported(op, "requires "+name)
	}
	return ext
}

// insert stores a newly created browser object.
func insert(m *slotmap.Map[js.Value], v js.Value, what string) (slotmap.Key, error) {
	if !v.Truthy() {
		return slotmap.Key{}, fmt.Errorf("webgl: %s returned null: %w", what, gl.ErrAllocation)
	}
	return m.Insert(v), nil
}

// lookup returns the browser object for k, or null for the zero key.
func lookup(m *slotmap.Map[js.Value], kind string, k slotmap.Key, h fmt.Stringer) js.Value {
	if k.IsZero() {
		return js.Null()
	}
	v, ok := m.Get(k)
	if !ok {
		panic(&gl.InvalidHandleError{Kind: kind, Handle: h})
	}
	return v
}

// remove deletes k from m. Deleting the zero key or a key that is no
// longer live reports false.
func remove(m *slotmap.Map[js.Value], k slotmap.Key) (js.Value, bool) {
	if k.IsZero() {
		return js.Value{}, false
	}
	return m.Remove(k)
}

func (c *Context) shader(s gl.Shader) js.Value {
	return lookup(&c.shaders, "shader", s.K, s)
}

func (c *Context) program(p gl.Program) js.Value {
	return lookup(&c.programs, "program", p.K, p)
}

func (c *Context) buffer(b gl.Buffer) js.Value {
	return lookup(&c.buffers, "buffer", b.K, b)
}

func (c *Context) vertexArray(a gl.VertexArray) js.Value {
	return lookup(&c.vertexArrays, "vertex array", a.K, a)
}

func (c *Context) texture(t gl.Texture) js.Value {
	return lookup(&c.textures, "texture", t.K, t)
}

func (c *Context) sampler(s gl.Sampler) js.Value {
	return lookup(&c.samplers, "sampler", s.K, s)
}

func (c *Context) fence(f gl.Fence) js.Value {
	return lookup(&c.fences, "fence", f.K, f)
}

func (c *Context) framebuffer(f gl.Framebuffer) js.Value {
	return lookup(&c.framebuffers, "framebuffer", f.K, f)
}

func (c *Context) renderbuffer(r gl.Renderbuffer) js.Value {
	return lookup(&c.renderbuffers, "renderbuffer", r.K, r)
}

func (c *Context) query(q gl.Query) js.Value {
	return lookup(&c.queries, "query", q.K, q)
}

func (c *Context) transformFeedback(t gl.TransformFeedback) js.Value {
	return lookup(&c.transformFeedbacks, "transform feedback", t.K, t)
}

func (c *Context) uniform(l gl.UniformLocation) js.Value {
	return lookup(&c.uniforms, "uniform location", l.K, l)
}
