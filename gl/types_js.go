// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "gioui.org/glow/internal/slotmap"

// Handle types of the browser adapter are keys into the adapter's object
// tables. The zero value of every handle means no object, and bind calls
// accept it to unbind.
type (
	Object            struct{ K slotmap.Key }
	Shader            Object
	Program           Object
	Buffer            Object
	VertexArray       Object
	Texture           Object
	Sampler           Object
	Fence             Object
	Framebuffer       Object
	Renderbuffer      Object
	Query             Object
	TransformFeedback Object
	UniformLocation   Object
)

func (o Object) valid() bool { return !o.K.IsZero() }

func (o Object) compare(o2 Object) int { return o.K.Compare(o2.K) }

func (o Object) String() string { return o.K.String() }

func (s Shader) Valid() bool { return Object(s).valid() }

func (s Shader) Compare(o Shader) int { return Object(s).compare(Object(o)) }

func (s Shader) String() string { return Object(s).String() }

func (p Program) Valid() bool { return Object(p).valid() }

func (p Program) Compare(o Program) int { return Object(p).compare(Object(o)) }

func (p Program) String() string { return Object(p).String() }

func (b Buffer) Valid() bool { return Object(b).valid() }

func (b Buffer) Compare(o Buffer) int { return Object(b).compare(Object(o)) }

func (b Buffer) String() string { return Object(b).String() }

func (a VertexArray) Valid() bool { return Object(a).valid() }

func (a VertexArray) Compare(o VertexArray) int { return Object(a).compare(Object(o)) }

func (a VertexArray) String() string { return Object(a).String() }

func (t Texture) Valid() bool { return Object(t).valid() }

func (t Texture) Compare(o Texture) int { return Object(t).compare(Object(o)) }

func (t Texture) String() string { return Object(t).String() }

func (s Sampler) Valid() bool { return Object(s).valid() }

func (s Sampler) Compare(o Sampler) int { return Object(s).compare(Object(o)) }

func (s Sampler) String() string { return Object(s).String() }

func (f Fence) Valid() bool { return Object(f).valid() }

func (f Fence) Compare(o Fence) int { return Object(f).compare(Object(o)) }

func (f Fence) String() string { return Object(f).String() }

func (f Framebuffer) Valid() bool { return Object(f).valid() }

func (f Framebuffer) Compare(o Framebuffer) int { return Object(f).compare(Object(o)) }

func (f Framebuffer) String() string { return Object(f).String() }

func (r Renderbuffer) Valid() bool { return Object(r).valid() }

func (r Renderbuffer) Compare(o Renderbuffer) int { return Object(r).compare(Object(o)) }

func (r Renderbuffer) String() string { return Object(r).String() }

func (q Query) Valid() bool { return Object(q).valid() }

func (q Query) Compare(o Query) int { return Object(q).compare(Object(o)) }

func (q Query) String() string { return Object(q).String() }

func (t TransformFeedback) Valid() bool { return Object(t).valid() }

func (t TransformFeedback) Compare(o TransformFeedback) int { return Object(t).compare(Object(o)) }

func (t TransformFeedback) String() string { return Object(t).String() }

func (u UniformLocation) Valid() bool { return Object(u).valid() }

func (u UniformLocation) Compare(o UniformLocation) int { return Object(u).compare(Object(o)) }

func (u UniformLocation) String() string { return Object(u).String() }
