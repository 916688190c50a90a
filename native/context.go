// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"errors"
	"fmt"
	"unsafe"

	"gioui.org/glow/gl"
	"golang.org/x/exp/slices"
)

// Loader resolves a driver entry point by name, returning nil when the
// entry point is unknown. A context must be current while NewContext calls
// it.
type Loader func(name string) unsafe.Pointer

// Context is a gl.Context backed by a native OpenGL or OpenGL ES driver.
//
// A Context is bound to the driver context that was current during
// NewContext and, like it, must only be used by one thread at a time with
// that driver context current.
type Context struct {
	p *procs

	version        gl.Version
	extensions     gl.ExtensionSet
	supportsDebug  bool
	maxLabelLength int32
	unresolved     []string

	debugToken uintptr

	// Scratch space for driver out parameters.
	ints   [16]int32
	uints  [16]uint32
	floats [16]float32
	bools  [16]uint8
}

var _ gl.Context = (*Context)(nil)

// NewContext loads the driver entry points through load and initializes
// the adapter for the current driver context. It returns an error wrapping
// gl.ErrNoCurrentContext if the driver reports no version.
func NewContext(load Loader) (*Context, error) {
	if load == nil {
		return nil, errors.New("native: nil Loader")
	}
	p, err := loadProcs(&resolver{load: load})
	if err != nil {
		return nil, err
	}
	return newContext(p)
}

func newContext(p *procs) (*Context, error) {
	c := &Context{p: p}
	c.unresolved = p.unresolved()
	log := gl.Logger()
	for _, name := range c.unresolved {
		log.Debug("native: unresolved entry point", "name", name)
	}
	p.fallback()
	if p.GetString == nil || p.GetIntegerv == nil {
		return nil, errors.New("native: glGetString and glGetIntegerv are required")
	}
	debugEntries := p.ObjectLabel != nil && p.GetObjectLabel != nil && p.DebugMessageCallback != nil &&
		p.DebugMessageControl != nil && p.PushDebugGroup != nil && p.PopDebugGroup != nil
	p.stubMissing()

	raw := p.GetString(gl.VERSION)
	if raw == nil {
		return nil, fmt.Errorf("native: glGetString(GL_VERSION) returned NULL: %w", gl.ErrNoCurrentContext)
	}
	vstr := driverString(raw, "GL_VERSION")
	if vstr == "" {
		return nil, fmt.Errorf("native: empty GL_VERSION: %w", gl.ErrNoCurrentContext)
	}
	v, err := gl.ParseVersion(vstr)
	if err != nil {
		return nil, err
	}
	c.version = v

	if (v.AtLeastGL(3, 0) || v.AtLeastES(3, 0)) && !c.missing("glGetStringi") {
		n := c.GetParameterI32(gl.NUM_EXTENSIONS)
		names := make([]string, 0, max(n, 0))
		for i := int32(0); i < n; i++ {
			names = append(names, driverString(p.GetStringi(gl.EXTENSIONS, uint32(i)), "GL_EXTENSIONS"))
		}
		c.extensions = gl.ExtensionSetOf(names...)
	} else {
		c.extensions = gl.ParseExtensionString(driverString(p.GetString(gl.EXTENSIONS), "GL_EXTENSIONS"))
	}

	c.supportsDebug = debugEntries &&
		(v.AtLeastGL(4, 3) || v.AtLeastES(3, 2) || c.extensions.Has("GL_KHR_debug"))
	if c.supportsDebug {
		c.maxLabelLength = c.GetParameterI32(gl.MAX_LABEL_LENGTH)
	}
	log.Info("native: context initialized",
		"version", v.String(),
		"extensions", len(c.extensions),
		"debug", c.supportsDebug,
		"unresolved", len(c.unresolved))
	return c, nil
}

// Unresolved returns the entry points the loader could not resolve, in
// lexical order. Extension variants covered by a core entry point are
// included.
func (c *Context) Unresolved() []string {
	return append([]string(nil), c.unresolved...)
}

func (c *Context) missing(name string) bool {
	_, found := slices.BinarySearch(c.unresolved, name)
	return found
}

func (c *Context) Version() gl.Version { return c.version }

func (c *Context) Extensions() gl.ExtensionSet { return c.extensions }

func (c *Context) HasExtension(name string) bool { return c.extensions.Has(name) }

func (c *Context) SupportsDebug() bool { return c.supportsDebug }

func (c *Context) MaxLabelLength() int32 { return c.maxLabelLength }

// allocated turns a driver name into a handle value, failing for the zero
// name drivers return when allocation fails.
func allocated(name uint32, entry string) (uint32, error) {
	if name == 0 {
		return 0, fmt.Errorf("native: %s returned no object: %w", entry, gl.ErrAllocation)
	}
	return name, nil
}

// ptr returns a pointer to the first element of b, or nil for an empty b.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
