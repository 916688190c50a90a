// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"fmt"

	"gioui.org/glow/gl"
)

func (c *Context) BeginQuery(target uint32, q gl.Query) {
	if c.level >= WebGL2 {
		c.ctx.Call("beginQuery", target, c.query(q))
		return
	}
	ext := extension("BeginQuery", c.ext.extDisjointTimerQuery, "EXT_disjoint_timer_query")
	ext.Call("beginQueryEXT", target, c.query(q))
}

func (c *Context) EndQuery(target uint32) {
	if c.level >= WebGL2 {
		c.ctx.Call("endQuery", target)
		return
	}
	ext := extension("EndQuery", c.ext.extDisjointTimerQuery, "EXT_disjoint_timer_query")
	ext.Call("endQueryEXT", target)
}

func (c *Context) QueryCounter(q gl.Query, target uint32) {
	ext := c.ext.extDisjointTimerQuery
	name := "EXT_disjoint_timer_query"
	if c.level >= WebGL2 {
		ext = c.ext.extDisjointTimerQueryWebGL2
		name = "EXT_disjoint_timer_query_webgl2"
	}
	extension("QueryCounter", ext, name).Call("queryCounterEXT", c.query(q), target)
}

func (c *Context) GetQueryParameterU32(q gl.Query, pname uint32) uint32 {
	if c.level >= WebGL2 {
		return toUint32("GetQueryParameterU32", c.ctx.Call("getQueryParameter", c.query(q), pname))
	}
	ext := extension("GetQueryParameterU32", c.ext.extDisjointTimerQuery, "EXT_disjoint_timer_query")
	return toUint32("GetQueryParameterU32", ext.Call("getQueryObjectEXT", c.query(q), pname))
}

func (c *Context) BindTransformFeedback(target uint32, t gl.TransformFeedback) {
	c.requireWebGL2("BindTransformFeedback")
	c.ctx.Call("bindTransformFeedback", target, c.transformFeedback(t))
}

func (c *Context) BeginTransformFeedback(primitiveMode uint32) {
	c.requireWebGL2("BeginTransformFeedback")
	c.ctx.Call("beginTransformFeedback", primitiveMode)
}

func (c *Context) EndTransformFeedback() {
	c.requireWebGL2("EndTransformFeedback")
	c.ctx.Call("endTransformFeedback")
}

func (c *Context) PauseTransformFeedback() {
	c.requireWebGL2("PauseTransformFeedback")
	c.ctx.Call("pauseTransformFeedback")
}

func (c *Context) ResumeTransformFeedback() {
	c.requireWebGL2("ResumeTransformFeedback")
	c.ctx.Call("resumeTransformFeedback")
}

func (c *Context) FenceSync(condition, flags uint32) (gl.Fence, error) {
	c.requireWebGL2("FenceSync")
	v := c.ctx.Call("fenceSync", condition, flags)
	if !v.Truthy() {
		return gl.Fence{}, fmt.Errorf("webgl: fenceSync returned null: %w", gl.ErrAllocation)
	}
	return gl.Fence{K: c.fences.Insert(v)}, nil
}

func (c *Context) DeleteSync(f gl.Fence) {
	if f.K.IsZero() {
		return
	}
	c.requireWebGL2("DeleteSync")
	if v, ok := remove(&c.fences, f.K); ok {
		c.ctx.Call("deleteSync", v)
	}
}

// timeout converts a timeout in nanoseconds to the value WebGL expects,
// where TIMEOUT_IGNORED is -1.
func timeout(t uint64) float64 {
	if t == gl.TIMEOUT_IGNORED {
		return -1
	}
	return float64(t)
}

func (c *Context) ClientWaitSync(f gl.Fence, flags uint32, t uint64) uint32 {
	c.requireWebGL2("ClientWaitSync")
	return toUint32("ClientWaitSync", c.ctx.Call("clientWaitSync", c.fence(f), flags, timeout(t)))
}

func (c *Context) WaitSync(f gl.Fence, flags uint32, t uint64) {
	c.requireWebGL2("WaitSync")
	c.ctx.Call("waitSync", c.fence(f), flags, timeout(t))
}

func (c *Context) GetSyncStatus(f gl.Fence) uint32 {
	c.requireWebGL2("GetSyncStatus")
	return toUint32("GetSyncStatus", c.ctx.Call("getSyncParameter", c.fence(f), gl.SYNC_STATUS))
}
