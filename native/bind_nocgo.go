// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js && ((!cgo && !windows) || (windows && !amd64 && !arm64))

package native

import (
	"fmt"
	"runtime"
)

func loadProcs(r *resolver) (*procs, error) {
	return nil, fmt.Errorf("native: calling the driver is not supported on %s/%s without cgo", runtime.GOOS, runtime.GOARCH)
}

// OpenLibrary always fails on platforms where the driver cannot be called.
func OpenLibrary(names ...string) (Loader, error) {
	return nil, fmt.Errorf("native: loading driver libraries is not supported on %s/%s without cgo", runtime.GOOS, runtime.GOARCH)
}
