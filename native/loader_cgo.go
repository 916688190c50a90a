// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js && !windows && cgo

package native

/*
#cgo linux freebsd LDFLAGS: -ldl

#include <stdlib.h>
#include <dlfcn.h>
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

func dlopen(lib string) unsafe.Pointer {
	clib := C.CString(lib)
	defer C.free(unsafe.Pointer(clib))
	return C.dlopen(clib, C.RTLD_NOW|C.RTLD_LOCAL)
}

func dlsym(handle unsafe.Pointer, s string) unsafe.Pointer {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.dlsym(handle, cs)
}

// defaultLibraries lists the driver libraries OpenLibrary tries when no
// names are given.
func defaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	case "ios":
		return []string{"/System/Library/Frameworks/OpenGLES.framework/OpenGLES"}
	case "android":
		return []string{"libGLESv2.so", "libGLESv3.so"}
	default:
		return []string{"libGLESv2.so.2"}
	}
}

// OpenLibrary opens the named driver libraries, or the platform default
// when names is empty, and returns a Loader resolving entry points from
// them in order.
func OpenLibrary(names ...string) (Loader, error) {
	if len(names) == 0 {
		names = defaultLibraries()
	}
	var handles []unsafe.Pointer
	for _, lib := range names {
		if h := dlopen(lib); h != nil {
			handles = append(handles, h)
		}
	}
	if len(handles) == 0 {
		return nil, fmt.Errorf("native: no OpenGL implementation could be loaded (tried %q)", names)
	}
	return func(name string) unsafe.Pointer {
		for _, h := range handles {
			if f := dlsym(h, name); f != nil {
				return f
			}
		}
		return nil
	}, nil
}
