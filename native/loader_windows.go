// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows && (amd64 || arm64)

package native

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// OpenLibrary loads the named driver DLLs, or libGLESv2.dll when names is
// empty, and returns a Loader resolving entry points from them in order.
// For opengl32.dll, entry points beyond OpenGL 1.1 are resolved through
// wglGetProcAddress, which requires a current context.
func OpenLibrary(names ...string) (Loader, error) {
	if len(names) == 0 {
		names = []string{"libGLESv2.dll"}
	}
	var (
		dlls    []*windows.DLL
		wglProc *windows.Proc
	)
	for _, lib := range names {
		dll, err := windows.LoadDLL(lib)
		if err != nil {
			continue
		}
		dlls = append(dlls, dll)
		if strings.EqualFold(lib, "opengl32.dll") && wglProc == nil {
			wglProc, _ = dll.FindProc("wglGetProcAddress")
		}
	}
	if len(dlls) == 0 {
		return nil, fmt.Errorf("native: no OpenGL implementation could be loaded (tried %q)", names)
	}
	return func(name string) unsafe.Pointer {
		for _, dll := range dlls {
			if p, err := dll.FindProc(name); err == nil {
				return procPointer(p.Addr())
			}
		}
		if wglProc == nil {
			return nil
		}
		cname, err := windows.BytePtrFromString(name)
		if err != nil {
			return nil
		}
		addr, _, _ := wglProc.Call(uintptr(unsafe.Pointer(cname)))
		// Some drivers return small sentinel values instead of NULL.
		switch int(addr) {
		case 0, 1, 2, 3, -1:
			return nil
		}
		return procPointer(addr)
	}, nil
}

func procPointer(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}
