// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"fmt"

	"gioui.org/glow/gl"
)

func (c *Context) BeginQuery(target uint32, q gl.Query) {
	c.p.BeginQuery(target, q.V)
}

func (c *Context) EndQuery(target uint32) {
	c.p.EndQuery(target)
}

func (c *Context) QueryCounter(q gl.Query, target uint32) {
	c.p.QueryCounter(q.V, target)
}

func (c *Context) GetQueryParameterU32(q gl.Query, pname uint32) uint32 {
	c.uints[0] = 0
	c.p.GetQueryObjectuiv(q.V, pname, &c.uints[0])
	return c.uints[0]
}

func (c *Context) BindTransformFeedback(target uint32, t gl.TransformFeedback) {
	c.p.BindTransformFeedback(target, t.V)
}

func (c *Context) BeginTransformFeedback(primitiveMode uint32) {
	c.p.BeginTransformFeedback(primitiveMode)
}

func (c *Context) EndTransformFeedback() {
	c.p.EndTransformFeedback()
}

func (c *Context) PauseTransformFeedback() {
	c.p.PauseTransformFeedback()
}

func (c *Context) ResumeTransformFeedback() {
	c.p.ResumeTransformFeedback()
}

func (c *Context) FenceSync(condition, flags uint32) (gl.Fence, error) {
	s := c.p.FenceSync(condition, flags)
	if s == 0 {
		return gl.Fence{}, fmt.Errorf("native: glFenceSync returned no object: %w", gl.ErrAllocation)
	}
	return gl.Fence{V: s}, nil
}

func (c *Context) DeleteSync(f gl.Fence) {
	c.p.DeleteSync(f.V)
}

func (c *Context) ClientWaitSync(f gl.Fence, flags uint32, timeout uint64) uint32 {
	return c.p.ClientWaitSync(f.V, flags, timeout)
}

func (c *Context) WaitSync(f gl.Fence, flags uint32, timeout uint64) {
	c.p.WaitSync(f.V, flags, timeout)
}

func (c *Context) GetSyncStatus(f gl.Fence) uint32 {
	c.ints[0] = 0
	c.p.GetSynciv(f.V, gl.SYNC_STATUS, 1, nil, &c.ints[0])
	return uint32(c.ints[0])
}
