// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"gioui.org/glow/gl"
)

const noDebug = "debug output is not available in WebGL"

func (c *Context) DebugMessageControl(source, typ, severity uint32, ids []uint32, enabled bool) {
	unsupported("DebugMessageControl", noDebug)
}

func (c *Context) DebugMessageInsert(source, typ, id, severity uint32, msg string) {
	unsupported("DebugMessageInsert", noDebug)
}

func (c *Context) DebugMessageCallback(cb gl.DebugCallback) {
	unsupported("DebugMessageCallback", noDebug)
}

func (c *Context) GetDebugMessageLog(count uint32) []gl.DebugMessage {
	unsupported("GetDebugMessageLog", noDebug)
	return nil
}

func (c *Context) PushDebugGroup(source, id uint32, msg string) {
	unsupported("PushDebugGroup", noDebug)
}

func (c *Context) PopDebugGroup() {
	unsupported("PopDebugGroup", noDebug)
}

func (c *Context) ObjectLabel(identifier, name uint32, label string) {
	unsupported("ObjectLabel", noDebug)
}

func (c *Context) GetObjectLabel(identifier, name uint32) string {
	unsupported("GetObjectLabel", noDebug)
	return ""
}

func (c *Context) ObjectPtrLabel(f gl.Fence, label string) {
	unsupported("ObjectPtrLabel", noDebug)
}

func (c *Context) GetObjectPtrLabel(f gl.Fence) string {
	unsupported("GetObjectPtrLabel", noDebug)
	return ""
}
