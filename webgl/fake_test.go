// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"strings"
	"syscall/js"
	"testing"

	"gioui.org/glow/gl"
)

// fakeGL is a JavaScript object standing in for a browser rendering
// context. It records every call made through it.
type fakeGL struct {
	t   *testing.T
	ctx js.Value

	version    any
	params     map[uint32]any
	extensions []any
	extObjs    map[string]js.Value
	calls      []call
	next       int
}

type call struct {
	name string
	args []js.Value
}

// recorded lists the methods the fake accepts without a result.
var recorded = []string{
	"deleteShader", "deleteProgram", "deleteBuffer", "deleteTexture",
	"deleteFramebuffer", "deleteRenderbuffer", "deleteVertexArray", "deleteQuery",
	"deleteSampler", "deleteSync", "deleteTransformFeedback",
	"shaderSource", "compileShader", "attachShader", "linkProgram", "useProgram",
	"bindBuffer", "bindTexture", "bindVertexArray", "bufferData", "bufferSubData",
	"texImage2D", "uniform1i", "uniform2fv", "uniformMatrix2fv",
	"drawArrays", "drawArraysInstanced", "enable", "viewport",
}

// creators lists the methods that return a new browser object.
var creators = []string{
	"createShader", "createProgram", "createBuffer", "createTexture",
	"createFramebuffer", "createRenderbuffer", "createVertexArray",
	"createQuery", "createSampler", "createTransformFeedback", "fenceSync",
}

func newFakeGL(t *testing.T, version string) *fakeGL {
	f := &fakeGL{
		t:       t,
		ctx:     newObject(),
		version: version,
		params:  make(map[uint32]any),
		extObjs: make(map[string]js.Value),
	}
	f.on(f.ctx, "getParameter", func(args []js.Value) any {
		pname := uint32(args[0].Int())
		if pname == gl.VERSION {
			return f.version
		}
		return f.params[pname]
	})
	f.on(f.ctx, "getSupportedExtensions", func([]js.Value) any {
		return f.extensions
	})
	f.on(f.ctx, "getExtension", func(args []js.Value) any {
		if ext, ok := f.extObjs[args[0].String()]; ok {
			return ext
		}
		return nil
	})
	f.on(f.ctx, "getUniformLocation", func(args []js.Value) any {
		if args[1].String() == "missing" {
			return nil
		}
		return f.newObject()
	})
	f.on(f.ctx, "getShaderParameter", func([]js.Value) any {
		return true
	})
	f.on(f.ctx, "clientWaitSync", func(args []js.Value) any {
		if args[2].Float() == -1 {
			return gl.ALREADY_SIGNALED
		}
		return gl.TIMEOUT_EXPIRED
	})
	for _, name := range creators {
		f.on(f.ctx, name, func([]js.Value) any {
			return f.newObject()
		})
	}
	for _, name := range recorded {
		f.on(f.ctx, name, nil)
	}
	return f
}

func newObject() js.Value {
	return js.Global().Get("Object").New()
}

// newObject returns a distinct object standing in for a browser object.
func (f *fakeGL) newObject() js.Value {
	f.next++
	o := newObject()
	o.Set("id", f.next)
	return o
}

// on defines method name on obj. A nil fn returns undefined.
func (f *fakeGL) on(obj js.Value, name string, fn func(args []js.Value) any) {
	jf := js.FuncOf(func(this js.Value, args []js.Value) any {
		f.calls = append(f.calls, call{name: name, args: append([]js.Value(nil), args...)})
		if fn == nil {
			return nil
		}
		return fn(args)
	})
	f.t.Cleanup(jf.Release)
	obj.Set(name, jf)
}

// addExtension makes the extension available with the given methods.
// Methods starting with "create" return new objects.
func (f *fakeGL) addExtension(name string, methods ...string) {
	ext := newObject()
	for _, m := range methods {
		var fn func([]js.Value) any
		if strings.HasPrefix(m, "create") {
			fn = func([]js.Value) any { return f.newObject() }
		}
		f.on(ext, m, fn)
	}
	f.extObjs[name] = ext
	f.extensions = append(f.extensions, name)
}

// last returns the most recent call to name.
func (f *fakeGL) last(name string) (call, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i], true
		}
	}
	return call{}, false
}

// count returns the number of calls to name.
func (f *fakeGL) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (f *fakeGL) webgl1() *Context {
	c, err := NewWebGL1(f.ctx)
	if err != nil {
		f.t.Fatal(err)
	}
	return c
}

func (f *fakeGL) webgl2() *Context {
	c, err := NewWebGL2(f.ctx)
	if err != nil {
		f.t.Fatal(err)
	}
	return c
}
