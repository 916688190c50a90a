// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"sync"

	"gioui.org/glow/gl"
)

// debugCallbacks maps the tokens passed to the driver as the debug
// callback user parameter to the Go callbacks. Go pointers cannot be
// handed to the driver, so contexts are identified by token.
var debugCallbacks struct {
	mu    sync.Mutex
	next  uintptr
	funcs map[uintptr]gl.DebugCallback
}

func registerDebugCallback(token uintptr, cb gl.DebugCallback) uintptr {
	debugCallbacks.mu.Lock()
	defer debugCallbacks.mu.Unlock()
	if token == 0 {
		debugCallbacks.next++
		token = debugCallbacks.next
	}
	if debugCallbacks.funcs == nil {
		debugCallbacks.funcs = make(map[uintptr]gl.DebugCallback)
	}
	debugCallbacks.funcs[token] = cb
	return token
}

func unregisterDebugCallback(token uintptr) {
	debugCallbacks.mu.Lock()
	defer debugCallbacks.mu.Unlock()
	delete(debugCallbacks.funcs, token)
}

// dispatchDebugMessage delivers a driver message to the callback
// registered for token. It is called from driver threads.
func dispatchDebugMessage(token uintptr, source, typ, id, severity uint32, msg string) {
	debugCallbacks.mu.Lock()
	cb := debugCallbacks.funcs[token]
	debugCallbacks.mu.Unlock()
	if cb == nil {
		return
	}
	defer func() {
		if err := recover(); err != nil {
			gl.Logger().Warn("native: debug callback panicked", "error", err, "id", id)
		}
	}()
	cb(source, typ, id, severity, msg)
}

// Release drops the debug callback of c. It makes no driver calls, so it
// may be called after the driver context is destroyed. Messages the driver
// still delivers are discarded.
func (c *Context) Release() {
	if c.debugToken != 0 {
		unregisterDebugCallback(c.debugToken)
		c.debugToken = 0
	}
}

func (c *Context) requireDebug(op string) {
	if !c.supportsDebug {
		panic(&gl.UnsupportedError{Op: op, Reason: "the context has no debug output"})
	}
}

func (c *Context) DebugMessageControl(source, typ, severity uint32, ids []uint32, enabled bool) {
	c.requireDebug("DebugMessageControl")
	var p *uint32
	if len(ids) > 0 {
		p = &ids[0]
	}
	c.p.DebugMessageControl(source, typ, severity, int32(len(ids)), p, enabled)
}

func (c *Context) DebugMessageInsert(source, typ, id, severity uint32, msg string) {
	c.requireDebug("DebugMessageInsert")
	buf := cBuf(msg)
	c.p.DebugMessageInsert(source, typ, id, severity, int32(len(msg)), &buf[0])
}

// DebugMessageCallback keeps cb registered until it is replaced, removed
// with a nil cb, or the Context is released.
func (c *Context) DebugMessageCallback(cb gl.DebugCallback) {
	c.requireDebug("DebugMessageCallback")
	if cb == nil {
		c.p.DebugMessageCallback(0)
		c.Release()
		return
	}
	c.debugToken = registerDebugCallback(c.debugToken, cb)
	c.p.DebugMessageCallback(c.debugToken)
}

func (c *Context) GetDebugMessageLog(count uint32) []gl.DebugMessage {
	c.requireDebug("GetDebugMessageLog")
	if count == 0 {
		return nil
	}
	maxLen := max(c.GetParameterI32(gl.MAX_DEBUG_MESSAGE_LENGTH), 1)
	var (
		sources    = make([]uint32, count)
		types      = make([]uint32, count)
		ids        = make([]uint32, count)
		severities = make([]uint32, count)
		lengths    = make([]int32, count)
		text       = make([]byte, int(count)*int(maxLen))
	)
	n := c.p.GetDebugMessageLog(count, int32(len(text)), &sources[0], &types[0], &ids[0], &severities[0], &lengths[0], &text[0])
	msgs := make([]gl.DebugMessage, 0, n)
	off := 0
	for i := uint32(0); i < n && i < count; i++ {
		// Lengths include the terminating NUL.
		l := int(lengths[i])
		if l <= 0 || off+l > len(text) {
			break
		}
		msgs = append(msgs, gl.DebugMessage{
			Source:   sources[i],
			Type:     types[i],
			ID:       ids[i],
			Severity: severities[i],
			Message:  bufString(text[off:off+l], int32(l-1), "debug message"),
		})
		off += l
	}
	return msgs
}

func (c *Context) PushDebugGroup(source, id uint32, msg string) {
	c.requireDebug("PushDebugGroup")
	buf := cBuf(msg)
	c.p.PushDebugGroup(source, id, int32(len(msg)), &buf[0])
}

func (c *Context) PopDebugGroup() {
	c.requireDebug("PopDebugGroup")
	c.p.PopDebugGroup()
}

func (c *Context) ObjectLabel(identifier, name uint32, label string) {
	c.requireDebug("ObjectLabel")
	label = truncateLabel(label, c.maxLabelLength)
	buf := cBuf(label)
	c.p.ObjectLabel(identifier, name, int32(len(label)), &buf[0])
}

func (c *Context) GetObjectLabel(identifier, name uint32) string {
	c.requireDebug("GetObjectLabel")
	buf := make([]byte, max(c.maxLabelLength, 1))
	var length int32
	c.p.GetObjectLabel(identifier, name, int32(len(buf)), &length, &buf[0])
	return bufString(buf, length, "object label")
}

func (c *Context) ObjectPtrLabel(f gl.Fence, label string) {
	c.requireDebug("ObjectPtrLabel")
	label = truncateLabel(label, c.maxLabelLength)
	buf := cBuf(label)
	c.p.ObjectPtrLabel(f.V, int32(len(label)), &buf[0])
}

func (c *Context) GetObjectPtrLabel(f gl.Fence) string {
	c.requireDebug("GetObjectPtrLabel")
	buf := make([]byte, max(c.maxLabelLength, 1))
	var length int32
	c.p.GetObjectPtrLabel(f.V, int32(len(buf)), &length, &buf[0])
	return bufString(buf, length, "object label")
}
