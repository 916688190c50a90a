// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is wrapped by errors from object creation calls the
	// backend refused.
	ErrAllocation = errors.New("gl: object allocation failed")
	// ErrUnsupported is wrapped by every *UnsupportedError.
	ErrUnsupported = errors.New("gl: operation not supported")
	// ErrInvalidHandle is wrapped by every *InvalidHandleError.
	ErrInvalidHandle = errors.New("gl: invalid handle")
	// ErrNoCurrentContext is returned by adapter constructors when the
	// backend reports no version, meaning no context is current.
	ErrNoCurrentContext = errors.New("gl: no current context")
)

// UnsupportedError describes an operation the active backend cannot
// perform. Adapters panic with a *UnsupportedError value.
type UnsupportedError struct {
	// Op is the name of the operation, for example "BufferStorage".
	Op string
	// Reason names what is missing: an entry point, an extension or an
	// API level.
	Reason string
}

func (e *UnsupportedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("gl: %s is not supported", e.Op)
	}
	return fmt.Sprintf("gl: %s is not supported: %s", e.Op, e.Reason)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// InvalidHandleError describes a handle unknown to the adapter it was
// passed to, either stale or created by another adapter.
type InvalidHandleError struct {
	// Kind is the handle type, for example "Texture".
	Kind   string
	Handle fmt.Stringer
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("gl: invalid %s handle %v", e.Kind, e.Handle)
}

func (e *InvalidHandleError) Unwrap() error { return ErrInvalidHandle }

// VersionError reports a version string that could not be parsed.
type VersionError struct {
	Raw    string
	Reason string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("gl: invalid version string %q: %s", e.Raw, e.Reason)
}
