package pnt

import (
	"fmt"
	"math/bits"
	"reflect"
	"unicode/utf8"
	"unsafe"

	"fortio.org/safecast"
)

// Category is the rendering category of an argument.
type Category int

const (
	Opaque Category = iota
	Boolean
	Character
	Text
	Signed
	Unsigned
	Pointer
	Floating
)

var categoryNames = [...]string{
	Opaque:    "opaque",
	Boolean:   "boolean",
	Character: "character",
	Text:      "text",
	Signed:    "signed",
	Unsigned:  "unsigned",
	Pointer:   "pointer",
	Floating:  "floating",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Rune marks a value as a character. Plain rune and byte values are
// integers in Go, so ArgOf only treats a value as a character when it has
// this type.
type Rune rune

// Arg is one boxed argument. The zero value is an opaque argument holding
// nil. Args are never mutated by formatting.
type Arg struct {
	cat Category
	u   uint64
	s   string
	v   any
	// size is the bit width of a signed integer or character; 0 means 64.
	size uint8
}

// Bool boxes a boolean.
func Bool(b bool) Arg {
	a := Arg{cat: Boolean}
	if b {
		a.u = 1
	}
	return a
}

// Char boxes a character.
func Char(r rune) Arg { return Arg{cat: Character, u: uint64(uint32(r)), size: 32} }

// Int boxes a signed integer.
func Int(i int64) Arg { return Arg{cat: Signed, u: uint64(i)} }

// Int8 boxes an 8-bit signed integer. Under b, o, x and X it prints at
// 8 bits.
func Int8(i int8) Arg { return sized(int64(i), 8) }

// Int16 boxes a 16-bit signed integer.
func Int16(i int16) Arg { return sized(int64(i), 16) }

// Int32 boxes a 32-bit signed integer.
func Int32(i int32) Arg { return sized(int64(i), 32) }

func sized(i int64, size int) Arg {
	a := Int(i)
	if size < 64 {
		a.size = uint8(size)
	}
	return a
}

// Uint boxes an unsigned integer.
func Uint(u uint64) Arg { return Arg{cat: Unsigned, u: u} }

// Ptr boxes an address.
func Ptr(p uintptr) Arg { return Arg{cat: Pointer, u: uint64(p)} }

// Float boxes a floating-point value. It can be passed around but never
// rendered.
func Float(f float64) Arg { return Arg{cat: Floating, v: f} }

// Str boxes text.
func Str(s string) Arg { return Arg{cat: Text, s: s} }

// OpaqueArg boxes a value no conversion accepts.
func OpaqueArg(v any) Arg { return Arg{cat: Opaque, v: v} }

// Category returns the argument's category.
func (a Arg) Category() Category { return a.cat }

// Value returns the boxed value as a native Go value.
func (a Arg) Value() any {
	switch a.cat {
	case Boolean:
		return a.u != 0
	case Character:
		return rune(int32(uint32(a.u)))
	case Text:
		return a.s
	case Signed:
		return int64(a.u)
	case Unsigned:
		return a.u
	case Pointer:
		return uintptr(a.u)
	default:
		return a.v
	}
}

func (a Arg) String() string {
	return fmt.Sprintf("%s(%v)", a.cat, a.Value())
}

// char returns the argument as a character, if it is convertible to one.
func (a Arg) char() (rune, bool) {
	switch a.cat {
	case Character:
		return rune(int32(uint32(a.u))), true
	case Signed:
		r, err := safecast.Conv[int32](int64(a.u))
		if err != nil || !utf8.ValidRune(r) {
			return 0, false
		}
		return r, true
	case Unsigned:
		r, err := safecast.Conv[int32](a.u)
		if err != nil || !utf8.ValidRune(r) {
			return 0, false
		}
		return r, true
	}
	return 0, false
}

// integral returns the magnitude bits of an integral argument and whether
// it is signed. Characters count as integral.
func (a Arg) integral() (bits uint64, signed, ok bool) {
	switch a.cat {
	case Signed:
		return a.u, true, true
	case Unsigned:
		return a.u, false, true
	case Character:
		return uint64(int64(int32(uint32(a.u)))), true, true
	}
	return 0, false, false
}

// twos cuts the two's complement bits of a signed argument to its own
// width. Unsigned and 64-bit values pass through.
func (a Arg) twos(u uint64) uint64 {
	if a.size == 0 || a.size >= 64 {
		return u
	}
	return u & (1<<a.size - 1)
}

// ArgOf boxes a native Go value, choosing its category from its type.
func ArgOf(v any) Arg {
	switch x := v.(type) {
	case Arg:
		return x
	case nil:
		return OpaqueArg(nil)
	case bool:
		return Bool(x)
	case Rune:
		return Char(rune(x))
	case int:
		return sized(int64(x), bits.UintSize)
	case int8:
		return Int8(x)
	case int16:
		return Int16(x)
	case int32:
		return Int32(x)
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case uintptr:
		return Ptr(x)
	case unsafe.Pointer:
		return Ptr(uintptr(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return Str(x)
	case []byte:
		return Str(string(x))
	case fmt.Stringer:
		return Str(x.String())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Pointer, reflect.UnsafePointer:
		return Ptr(uintptr(rv.UnsafePointer()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sized(rv.Int(), rv.Type().Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(rv.Uint())
	case reflect.Uintptr:
		return Ptr(uintptr(rv.Uint()))
	case reflect.String:
		return Str(rv.String())
	}
	return OpaqueArg(v)
}

// Args boxes every value with ArgOf.
func Args(vs ...any) []Arg {
	out := make([]Arg, len(vs))
	for i, v := range vs {
		out[i] = ArgOf(v)
	}
	return out
}
