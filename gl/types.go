// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gl

import (
	"cmp"
	"fmt"
	"strconv"
)

// Handle types of the native adapter wrap the driver's integer names. The
// zero value of every handle except UniformLocation means no object, and
// bind calls accept it to unbind.
type (
	Object            struct{ V uint32 }
	Shader            Object
	Program           Object
	Buffer            Object
	VertexArray       Object
	Texture           Object
	Sampler           Object
	Framebuffer       Object
	Renderbuffer      Object
	Query             Object
	TransformFeedback Object
	// Fence wraps a driver sync object pointer.
	Fence             struct{ V uintptr }
	// UniformLocation is valid when V is not negative.
	UniformLocation   struct{ V int32 }
)

func (o Object) valid() bool { return o.V != 0 }

func (o Object) compare(o2 Object) int { return cmp.Compare(o.V, o2.V) }

func (o Object) String() string { return strconv.FormatUint(uint64(o.V), 10) }

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

func (f Fence) Valid() bool { return f.V != 0 }

func (f Fence) Compare(o Fence) int { return cmp.Compare(f.V, o.V) }

func (f Fence) String() string { return fmt.Sprintf("%#x", f.V) }

func (u UniformLocation) Valid() bool { return u.V >= 0 }

func (u UniformLocation) Compare(o UniformLocation) int { return cmp.Compare(u.V, o.V) }

func (u UniformLocation) String() string { return strconv.Itoa(int(u.V)) }
