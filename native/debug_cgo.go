// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js && !windows && cgo

package native

/*
#include <stdint.h>
*/
import "C"

//export gloDebugMessage
func gloDebugMessage(source, typ, id, severity C.uint, length C.int, message *C.char, token C.uintptr_t) {
	var msg string
	if message != nil {
		if length >= 0 {
			msg = C.GoStringN(message, length)
		} else {
			msg = C.GoString(message)
		}
	}
	dispatchDebugMessage(uintptr(token), uint32(source), uint32(typ), uint32(id), uint32(severity), msg)
}
