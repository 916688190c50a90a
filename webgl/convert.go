// SPDX-License-Identifier: Unlicense OR MIT

//go:build js

package webgl

import (
	"math"
	"syscall/js"

	"gioui.org/glow/gl"
)

// Pixel and vertex data types the browser requires a matching typed array
// view for.
const (
	typeByte                     = 0x1400
	typeUnsignedByte             = 0x1401
	typeShort                    = 0x1402
	typeUnsignedShort            = 0x1403
	typeInt                      = 0x1404
	typeUnsignedInt              = 0x1405
	typeFloat                    = 0x1406
	typeHalfFloat                = 0x140B
	typeUnsignedShort4444        = 0x8033
	typeUnsignedShort5551        = 0x8034
	typeUnsignedShort565         = 0x8363
	typeUnsignedInt2101010Rev    = 0x8368
	typeUnsignedInt248           = 0x84FA
	typeUnsignedInt10f11f11fRev  = 0x8C3B
	typeUnsignedInt5999Rev       = 0x8C3E
	typeHalfFloatOES             = 0x8D61
	typeFloat32UnsignedInt248Rev = 0x8DAD
)

// typedArrays caches the typed array constructors.
type typedArrays struct {
	uint8   js.Value
	int8    js.Value
	uint16  js.Value
	int16   js.Value
	uint32  js.Value
	int32   js.Value
	float32 js.Value
}

func newTypedArrays() typedArrays {
	g := js.Global()
	return typedArrays{
		uint8:   g.Get("Uint8Array"),
		int8:    g.Get("Int8Array"),
		uint16:  g.Get("Uint16Array"),
		int16:   g.Get("Int16Array"),
		uint32:  g.Get("Uint32Array"),
		int32:   g.Get("Int32Array"),
		float32: g.Get("Float32Array"),
	}
}

// bytes copies data to a new Uint8Array, or returns null for nil data.
func (a typedArrays) bytes(data []byte) js.Value {
	if data == nil {
		return js.Null()
	}
	arr := a.uint8.New(len(data))
	js.CopyBytesToJS(arr, data)
	return arr
}

// view returns a view of the Uint8Array u with the element type the browser
// expects for data of type typ.
func (a typedArrays) view(typ uint32, u js.Value) js.Value {
	var ctor js.Value
	var size int
	switch typ {
	case typeByte:
		ctor, size = a.int8, 1
	case typeShort:
		ctor, size = a.int16, 2
	case typeUnsignedShort, typeHalfFloat, typeHalfFloatOES,
		typeUnsignedShort4444, typeUnsignedShort5551, typeUnsignedShort565:
		ctor, size = a.uint16, 2
	case typeInt:
		ctor, size = a.int32, 4
	case typeUnsignedInt, typeUnsignedInt2101010Rev, typeUnsignedInt248,
		typeUnsignedInt10f11f11fRev, typeUnsignedInt5999Rev, typeFloat32UnsignedInt248Rev:
		ctor, size = a.uint32, 4
	case typeFloat:
		ctor, size = a.float32, 4
	default:
		return u
	}
	return ctor.New(u.Get("buffer"), u.Get("byteOffset"), u.Length()/size)
}

// pixels copies data to a typed array matching typ, or returns null for
// nil data.
func (a typedArrays) pixels(typ uint32, data []byte) js.Value {
	if data == nil {
		return js.Null()
	}
	return a.view(typ, a.bytes(data))
}

// readInto lets fill write into a typed array matching typ and copies the
// result to dst.
func (a typedArrays) readInto(typ uint32, dst []byte, fill func(view js.Value)) {
	u := a.uint8.New(len(dst))
	fill(a.view(typ, u))
	js.CopyBytesToGo(dst, u)
}

// anys converts v to a slice the browser accepts as a sequence.
func anys[T any](v []T) []any {
	s := make([]any, len(v))
	for i, x := range v {
		s[i] = x
	}
	return s
}

// The browser reports conversion problems through its error queue, so
// values of an unexpected type become the zero value. Null and undefined
// mean unset state and are converted silently.

func coerceFailed(op string, v js.Value, want string) {
	gl.Logger().Debug("webgl: unexpected result type, using default",
		"op", op,
		"type", v.Type().String(),
		"want", want)
}

// clamp limits f to [lo, hi]. NaN becomes 0.
func clamp(f, lo, hi float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f < lo:
		return lo
	case f > hi:
		return hi
	}
	return f
}

func toInt32(op string, v js.Value) int32 {
	switch v.Type() {
	case js.TypeNumber:
		return int32(clamp(v.Float(), math.MinInt32, math.MaxInt32))
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNull, js.TypeUndefined:
		return 0
	}
	coerceFailed(op, v, "number")
	return 0
}

func toUint32(op string, v js.Value) uint32 {
	switch v.Type() {
	case js.TypeNumber:
		return uint32(clamp(v.Float(), 0, math.MaxUint32))
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNull, js.TypeUndefined:
		return 0
	}
	coerceFailed(op, v, "number")
	return 0
}

func toFloat32(op string, v js.Value) float32 {
	switch v.Type() {
	case js.TypeNumber:
		return float32(v.Float())
	case js.TypeNull, js.TypeUndefined:
		return 0
	}
	coerceFailed(op, v, "number")
	return 0
}

func toBool(op string, v js.Value) bool {
	switch v.Type() {
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float() != 0
	case js.TypeNull, js.TypeUndefined:
		return false
	}
	coerceFailed(op, v, "boolean")
	return false
}

func toString(op string, v js.Value) string {
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNull, js.TypeUndefined:
		return ""
	}
	coerceFailed(op, v, "string")
	return ""
}

// toSlice copies the elements of an array or typed array into dst.
func toSlice[T int32 | float32](op string, v js.Value, dst []T) {
	if v.IsNull() || v.IsUndefined() {
		return
	}
	if v.Type() != js.TypeObject || v.Get("length").Type() != js.TypeNumber {
		coerceFailed(op, v, "array")
		return
	}
	n := min(len(dst), v.Length())
	for i := 0; i < n; i++ {
		switch e := v.Index(i); e.Type() {
		case js.TypeNumber:
			f := e.Float()
			if _, ok := any(dst[i]).(int32); ok {
				f = clamp(f, math.MinInt32, math.MaxInt32)
			}
			dst[i] = T(f)
		case js.TypeBoolean:
			if e.Bool() {
				dst[i] = 1
			} else {
				dst[i] = 0
			}
		}
	}
}
