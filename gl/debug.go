// SPDX-License-Identifier: Unlicense OR MIT

package gl

// DebugCallback receives debug output from the backend. The adapter
// recovers and drops any panic raised by the callback.
type DebugCallback func(source, typ, id, severity uint32, message string)

// DebugMessage is an entry of the backend's debug message log.
type DebugMessage struct {
	Source   uint32
	Type     uint32
	ID       uint32
	Severity uint32
	Message  string
}

// ActiveUniform describes an active uniform variable of a linked program.
type ActiveUniform struct {
	Size int32
	Type uint32
	Name string
}

// ActiveAttribute describes an active vertex attribute of a linked
// program.
type ActiveAttribute struct {
	Size int32
	Type uint32
	Name string
}
