// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"strings"
	"unsafe"

	"gioui.org/glow/gl"
)

// fakeDriver is an in-memory driver that implements just enough entry
// points to exercise the adapter.
type fakeDriver struct {
	version    string
	extensions []string
	// indexed exposes glGetStringi.
	indexed bool
	// debug exposes the GL_KHR_debug entry points with the KHR suffix.
	debug    bool
	maxLabel int32
	// failAlloc makes every object creation return the zero name.
	failAlloc bool
	// nullVersion makes glGetString(GL_VERSION) return NULL, as drivers
	// do without a current context.
	nullVersion bool
	// core exposes the core entry points next to their extension variants.
	core bool

	next     uint32
	strings  map[uint32][]byte
	labels   map[[2]uint32]string
	calls    []string
	uniforms map[int32]int32
	token    uintptr
	deleted  []uint32
	cleared  []float32
}

func newFakeDriver(version string, extensions ...string) *fakeDriver {
	return &fakeDriver{
		version:    version,
		extensions: extensions,
		strings:    make(map[uint32][]byte),
		labels:     make(map[[2]uint32]string),
		uniforms:   make(map[int32]int32),
		maxLabel:   16,
	}
}

// cstr returns a NUL terminated copy of s that stays reachable from d.
func (d *fakeDriver) cstr(key uint32, s string) *byte {
	b := append([]byte(s), 0)
	d.strings[key] = b
	return &b[0]
}

func (d *fakeDriver) name(n int32, names *uint32) {
	s := unsafe.Slice(names, n)
	for i := range s {
		if d.failAlloc {
			s[i] = 0
			continue
		}
		d.next++
		s[i] = d.next
	}
}

func (d *fakeDriver) release(n int32, names *uint32) {
	d.deleted = append(d.deleted, unsafe.Slice(names, n)...)
}

func (d *fakeDriver) procs() *procs {
	p := new(procs)
	p.GetString = func(name uint32) *byte {
		switch name {
		case gl.VERSION:
			if d.nullVersion {
				return nil
			}
			return d.cstr(name, d.version)
		case gl.EXTENSIONS:
			return d.cstr(name, strings.Join(d.extensions, " "))
		case gl.VENDOR:
			return d.cstr(name, "fake\xff")
		}
		return nil
	}
	p.GetIntegerv = func(pname uint32, data *int32) {
		switch pname {
		case gl.NUM_EXTENSIONS:
			*data = int32(len(d.extensions))
		case gl.MAX_LABEL_LENGTH:
			*data = d.maxLabel
		case gl.MAX_DEBUG_MESSAGE_LENGTH:
			*data = 32
		case gl.VIEWPORT:
			s := unsafe.Slice(data, 4)
			copy(s, []int32{0, 0, 640, 480})
		}
	}
	p.GetFloatv = func(pname uint32, data *float32) {
		if pname == gl.COLOR_CLEAR_VALUE {
			copy(unsafe.Slice(data, 4), []float32{0.25, 0.5, 0.75, 1})
		}
	}
	p.ClearBufferfv = func(buffer uint32, drawbuffer int32, value *float32) {
		n := 1
		if buffer == gl.COLOR {
			n = 4
		}
		d.cleared = append([]float32(nil), unsafe.Slice(value, n)...)
	}
	if d.indexed {
		p.GetStringi = func(name, index uint32) *byte {
			return d.cstr(0x10000+index, d.extensions[index])
		}
	}
	p.GenBuffers = d.name
	p.DeleteBuffers = d.release
	p.GenTextures = d.name
	p.DeleteTextures = d.release
	p.GenQueriesEXT = d.name
	p.CreateShader = func(typ uint32) uint32 {
		if d.failAlloc {
			return 0
		}
		d.next++
		return d.next
	}
	p.BufferStorageEXT = func(target uint32, size int, data unsafe.Pointer, flags uint32) {
		d.calls = append(d.calls, "glBufferStorageEXT")
	}
	p.DrawArraysInstancedANGLE = func(mode uint32, first, count, instancecount int32) {
		d.calls = append(d.calls, "glDrawArraysInstancedANGLE")
	}
	p.ClearDepth = func(depth float64) {
		d.calls = append(d.calls, "glClearDepth")
	}
	p.DepthRange = func(n, f float64) {
		d.calls = append(d.calls, "glDepthRange")
	}
	if d.core {
		p.BufferStorage = func(target uint32, size int, data unsafe.Pointer, flags uint32) {
			d.calls = append(d.calls, "glBufferStorage")
		}
		p.DrawArraysInstanced = func(mode uint32, first, count, instancecount int32) {
			d.calls = append(d.calls, "glDrawArraysInstanced")
		}
		p.ClearDepthf = func(depth float32) {
			d.calls = append(d.calls, "glClearDepthf")
		}
		p.DepthRangef = func(n, f float32) {
			d.calls = append(d.calls, "glDepthRangef")
		}
	}
	p.Uniform2fv = func(location, count int32, value *float32) {
		d.uniforms[location] = count
	}
	p.GetUniformLocation = func(program uint32, name *byte) int32 {
		if goString(name) == "missing" {
			return -1
		}
		return 0
	}
	p.GetUniformBlockIndex = func(program uint32, name *byte) uint32 {
		return gl.INVALID_INDEX
	}
	p.FenceSync = func(condition, flags uint32) uintptr {
		return 0xf00
	}
	p.GetSynciv = func(sync uintptr, pname uint32, count int32, length *int32, values *int32) {
		if sync == 0xf00 && pname == gl.SYNC_STATUS {
			*values = gl.SIGNALED
		}
	}
	p.ClientWaitSync = func(sync uintptr, flags uint32, timeout uint64) uint32 {
		if timeout == gl.TIMEOUT_IGNORED {
			return gl.ALREADY_SIGNALED
		}
		return gl.TIMEOUT_EXPIRED
	}
	if d.debug {
		p.ObjectLabelKHR = func(identifier, name uint32, length int32, label *byte) {
			d.labels[[2]uint32{identifier, name}] = string(unsafe.Slice(label, length))
		}
		p.GetObjectLabelKHR = func(identifier, name uint32, bufSize int32, length *int32, label *byte) {
			l := d.labels[[2]uint32{identifier, name}]
			n := copy(unsafe.Slice(label, bufSize-1), l)
			*length = int32(n)
		}
		p.DebugMessageCallbackKHR = func(token uintptr) {
			d.token = token
		}
		p.DebugMessageControlKHR = func(source, typ, severity uint32, count int32, ids *uint32, enabled bool) {}
		p.DebugMessageInsertKHR = func(source, typ, id, severity uint32, length int32, buf *byte) {
			if d.token != 0 {
				dispatchDebugMessage(d.token, source, typ, id, severity, string(unsafe.Slice(buf, length)))
			}
		}
		p.PushDebugGroupKHR = func(source, id uint32, length int32, message *byte) {}
		p.PopDebugGroupKHR = func() {}
	}
	return p
}

func (d *fakeDriver) context() (*Context, error) {
	return newContext(d.procs())
}
