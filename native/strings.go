// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package native

import (
	"fmt"
	"unicode/utf8"
	"unsafe"
)

// goString converts a NUL terminated C string to a Go string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// driverString converts a string returned by the driver. Invalid UTF-8
// means the driver is in a state the adapter cannot reason about.
func driverString(p *byte, what string) string {
	s := goString(p)
	if !utf8.ValidString(s) {
		panic(fmt.Errorf("native: driver returned invalid UTF-8 for %s: %q", what, s))
	}
	return s
}

// bufString interprets the first n bytes of a buffer the driver filled.
func bufString(buf []byte, n int32, what string) string {
	if n <= 0 {
		return ""
	}
	if int(n) > len(buf) {
		n = int32(len(buf))
	}
	s := string(buf[:n])
	if !utf8.ValidString(s) {
		panic(fmt.Errorf("native: driver returned invalid UTF-8 for %s: %q", what, s))
	}
	return s
}

// cBuf returns a NUL terminated copy of s for passing to the driver.
func cBuf(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// truncateLabel shortens label to at most maxLen-1 bytes, the room left by
// the terminating NUL, without splitting a UTF-8 sequence.
func truncateLabel(label string, maxLen int32) string {
	limit := int(maxLen) - 1
	if maxLen <= 0 || len(label) <= limit {
		return label
	}
	for limit > 0 && !utf8.RuneStart(label[limit]) {
		limit--
	}
	return label[:limit]
}
