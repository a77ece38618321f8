package pnt_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/pnt"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
	buf   bytes.Buffer
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return f.buf.Write(p)
}

var errWriteFailed = errors.New("write failed")

type stringer struct{ name string }

func (s stringer) String() string { return "<" + s.name + ">" }

// ============================================================
// Tests
// ============================================================

func TestSprintf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tmpl string
		args []any
		want string
	}{
		"decimal":          {tmpl: "%d", args: []any{42}, want: "42"},
		"width":            {tmpl: "%5d", args: []any{42}, want: "   42"},
		"left justify":     {tmpl: "%-5d|", args: []any{42}, want: "42   |"},
		"zero fill":        {tmpl: "%05d", args: []any{42}, want: "00042"},
		"show sign":        {tmpl: "%+d", args: []any{42}, want: "+42"},
		"hex prefix":       {tmpl: "%#x", args: []any{255}, want: "0xff"},
		"octal prefix":     {tmpl: "%#o", args: []any{8}, want: "010"},
		"positions":        {tmpl: "%2$s %1$s", args: []any{"world", "hello"}, want: "hello world"},
		"literal percent":  {tmpl: "%%", want: "%"},
		"min int64":        {tmpl: "%d", args: []any{int64(math.MinInt64)}, want: "-9223372036854775808"},
		"min int8":         {tmpl: "%d", args: []any{int8(math.MinInt8)}, want: "-128"},
		"max uint64":       {tmpl: "%d", args: []any{uint64(math.MaxUint64)}, want: "18446744073709551615"},
		"zero default":     {tmpl: "[%d]", args: []any{0}, want: "[0]"},
		"zero precision 0": {tmpl: "[%.0d]", args: []any{0}, want: "[]"},
		"zero bare dot":    {tmpl: "[%.d]", args: []any{0}, want: "[]"},
		"bool":             {tmpl: "%s %s", args: []any{true, false}, want: "true false"},
		"rune type":        {tmpl: "%c%c", args: []any{pnt.Rune('o'), pnt.Rune('k')}, want: "ok"},
		"plain rune is int": {
			tmpl: "%d", args: []any{'A'}, want: "65",
		},
		"byte slice":  {tmpl: "%s", args: []any{[]byte("raw")}, want: "raw"},
		"stringer":    {tmpl: "%s", args: []any{stringer{"x"}}, want: "<x>"},
		"upper hex":   {tmpl: "%X", args: []any{uint(0xbeef)}, want: "BEEF"},
		"binary":      {tmpl: "%b", args: []any{uint8(10)}, want: "1010"},
		"multibyte c": {tmpl: "[%3c]", args: []any{pnt.Rune('é')}, want: "[  é]"},
		"text counts bytes": {
			tmpl: "[%6s]", args: []any{"héllo"}, want: "[héllo]",
		},
		"named int": {tmpl: "%d", args: []any{myInt(-3)}, want: "-3"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pnt.Sprintf(tc.tmpl, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type myInt int

type myInt8 int8

func TestTwosComplementWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tmpl string
		arg  any
		want string
	}{
		"int8 hex":          {tmpl: "%x", arg: int8(-1), want: "ff"},
		"int16 hex":         {tmpl: "%x", arg: int16(-1), want: "ffff"},
		"int32 octal":       {tmpl: "%o", arg: int32(-1), want: "37777777777"},
		"int8 min binary":   {tmpl: "%b", arg: int8(math.MinInt8), want: "10000000"},
		"int64 hex":         {tmpl: "%x", arg: int64(-1), want: "ffffffffffffffff"},
		"int32 upper hex":   {tmpl: "%#X", arg: int32(-2), want: "0XFFFFFFFE"},
		"named int8":        {tmpl: "%x", arg: myInt8(-1), want: "ff"},
		"sized constructor": {tmpl: "%x", arg: pnt.Int16(-256), want: "ff00"},
		"character":         {tmpl: "%x", arg: pnt.Char(-1), want: "ffffffff"},
		"decimal keeps sign": {
			tmpl: "%d", arg: int8(-5), want: "-5",
		},
		"positive unchanged": {tmpl: "%x", arg: int8(0x7f), want: "7f"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pnt.Sprintf(tc.tmpl, tc.arg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tmpl    string
		args    []any
		want    error
		partial string
	}{
		"text to %d":        {tmpl: "%d", args: []any{"text"}, want: pnt.ErrIncompatibleType},
		"no arguments":      {tmpl: "%d", want: pnt.ErrTooFewArguments},
		"unknown verb":      {tmpl: "%q", args: []any{1}, want: pnt.ErrInvalidFormatter},
		"missing verb":      {tmpl: "tail %", want: pnt.ErrInvalidFormatter, partial: "tail "},
		"float verb":        {tmpl: "%f", args: []any{1.5}, want: pnt.ErrNotImplemented},
		"float through %s":  {tmpl: "%s", args: []any{1.5}, want: pnt.ErrNotImplemented},
		"group":             {tmpl: "x%(y%)", want: pnt.ErrNotImplemented, partial: "x"},
		"star width":        {tmpl: "%*d", args: []any{1}, want: pnt.ErrNotImplemented},
		"star precision":    {tmpl: "%.*x", args: []any{1}, want: pnt.ErrNotImplemented},
		"star text prec":    {tmpl: "[%.*s]", args: []any{"abc"}, want: pnt.ErrNotImplemented, partial: "["},
		"star char prec":    {tmpl: "[%.*c]", args: []any{pnt.Rune('a')}, want: pnt.ErrNotImplemented, partial: "["},
		"star bool prec":    {tmpl: "%.*s", args: []any{true}, want: pnt.ErrNotImplemented},
		"star pointer prec": {tmpl: "%.*p", args: []any{uintptr(1)}, want: pnt.ErrNotImplemented},
		"pointer verb":      {tmpl: "%p", args: []any{"nope"}, want: pnt.ErrIncompatibleType},
		"char of bool":      {tmpl: "%c", args: []any{true}, want: pnt.ErrIncompatibleType},
		"char out of range": {tmpl: "%c", args: []any{int64(1) << 40}, want: pnt.ErrIncompatibleType},
		"opaque":            {tmpl: "%s", args: []any{struct{}{}}, want: pnt.ErrIncompatibleType},
		"nil":               {tmpl: "%s", args: []any{nil}, want: pnt.ErrIncompatibleType},
		"partial output":    {tmpl: "a=%d b=%d", args: []any{1}, want: pnt.ErrTooFewArguments, partial: "a=1 b="},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pnt.Sprintf(tc.tmpl, tc.args...)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.partial, got)
		})
	}
}

func TestFormatErrorDetails(t *testing.T) {
	t.Parallel()
	_, err := pnt.Sprintf("ok %d %s", 1, 2.5)
	var fe *pnt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, pnt.NotImplemented, fe.Kind)
	assert.Equal(t, 6, fe.Offset)
	assert.Equal(t, byte('s'), fe.Verb)
	assert.Equal(t, 1, fe.Index)
	assert.Equal(t, "not implemented: %s at offset 6 (argument 1)", fe.Error())

	k, ok := pnt.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, pnt.NotImplemented, k)

	_, ok = pnt.KindOf(errWriteFailed)
	assert.False(t, ok)
}

func TestParseErrorHasNoArgument(t *testing.T) {
	t.Parallel()
	_, err := pnt.Sprintf("abc %q", 1)
	var fe *pnt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, pnt.InvalidFormatter, fe.Kind)
	assert.Equal(t, 4, fe.Offset)
	assert.Equal(t, -1, fe.Index)
	assert.Equal(t, "invalid formatter: %q at offset 4", fe.Error())
}

func TestFrozenCounter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tmpl string
		want string
	}{
		"sequential":               {tmpl: "%s %s %s", want: "a b c"},
		"explicit then sequential": {tmpl: "%2$s %s", want: "b b"},
		"sequential around":        {tmpl: "%s %3$s %s", want: "a c c"},
		"explicit resets counter":  {tmpl: "%s %s %1$s %s", want: "a b a a"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pnt.Sprintf(tc.tmpl, "a", "b", "c")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStrictArguments(t *testing.T) {
	t.Parallel()
	f := pnt.New(pnt.WithStrictArguments(true))

	got, err := f.Sprint("%s", pnt.Str("a"), pnt.Str("b"))
	require.ErrorIs(t, err, pnt.ErrTooManyArguments)
	assert.Equal(t, "a", got)
	var fe *pnt.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Index)
	assert.Equal(t, 2, fe.Offset)

	got, err = f.Sprint("%2$s%1$s", pnt.Str("a"), pnt.Str("b"))
	require.NoError(t, err)
	assert.Equal(t, "ba", got)

	got, err = pnt.New().Sprint("%s", pnt.Str("a"), pnt.Str("b"))
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestFailFast(t *testing.T) {
	t.Parallel()
	f := pnt.New(pnt.WithPolicy(pnt.FailFast))
	assert.Equal(t, pnt.FailFast, f.Policy())

	got, err := f.Sprint("%5d|%s", pnt.Int(7), pnt.Bool(true))
	require.NoError(t, err)
	want, err := pnt.New().Sprint("%5d|%s", pnt.Int(7), pnt.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var b strings.Builder
	defer func() {
		r := recover()
		require.NotNil(t, r)
		perr, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.HasAssertionFailure(perr))
		assert.ErrorIs(t, perr, pnt.ErrIncompatibleType)
		assert.Equal(t, "x=", b.String())
	}()
	_ = f.Fprint(&b, "x=%d", pnt.Str("text"))
	t.Fatal("unreachable")
}

func TestPointer(t *testing.T) {
	t.Parallel()
	v := 1
	addr := uintptr(unsafe.Pointer(&v))

	got, err := pnt.New(pnt.WithPointerSize(8)).Sprint("%p", pnt.Ptr(0xabc))
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000abc", got)

	got, err = pnt.New(pnt.WithPointerSize(4)).Sprint("%p", pnt.Ptr(0xabc))
	require.NoError(t, err)
	assert.Equal(t, "0x00000abc", got)

	got, err = pnt.Sprintf("%p", &v)
	require.NoError(t, err)
	assert.Len(t, got, 2+2*int(unsafe.Sizeof(uintptr(0))))
	assert.True(t, strings.HasPrefix(got, "0x"))

	want, err := pnt.Sprintf("%p", addr)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Written flags are ignored, '-' included.
	got, err = pnt.New(pnt.WithPointerSize(2)).Sprint("[%-8p|%+ 08p]", pnt.Ptr(0xab), pnt.Ptr(0xab))
	require.NoError(t, err)
	assert.Equal(t, "[  0x00ab|  0x00ab]", got)

	// Out of range sizes keep the platform default.
	got, err = pnt.New(pnt.WithPointerSize(16)).Sprint("%p", pnt.Ptr(1))
	require.NoError(t, err)
	assert.Len(t, got, 2+2*int(unsafe.Sizeof(uintptr(0))))
}

func TestSinkFailure(t *testing.T) {
	t.Parallel()
	err := pnt.Fprintf(pnt.WriterSink(&errWriter{}), "hello %d", 1)
	require.ErrorIs(t, err, errWriteFailed)
	_, isFormat := pnt.KindOf(err)
	assert.False(t, isFormat)

	w := &failAfterN{n: 2}
	err = pnt.Fprintf(pnt.WriterSink(w), "a%sb%sc", "1", "2")
	require.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, "a1", w.buf.String())
}

func TestSinkFailureUnderFailFast(t *testing.T) {
	t.Parallel()
	f := pnt.New(pnt.WithPolicy(pnt.FailFast))
	assert.NotPanics(t, func() {
		err := f.Fprint(pnt.WriterSink(&errWriter{}), "x")
		assert.ErrorIs(t, err, errWriteFailed)
	})
}

func TestWriteAndMarshal(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, pnt.Write(&buf, "%s=%d\n", "n", 3))
	assert.Equal(t, "n=3\n", buf.String())

	data, err := pnt.Marshal("[%-4s]", "ab")
	require.NoError(t, err)
	assert.Equal(t, "[ab  ]", string(data))

	data, err = pnt.Marshal("x=%d", "ab")
	assert.ErrorIs(t, err, pnt.ErrIncompatibleType)
	assert.Equal(t, "x=", string(data))

	err = pnt.Write(&errWriter{}, "text")
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestWriteFlushesPartialOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := pnt.Write(&buf, "before %d after", "x")
	require.ErrorIs(t, err, pnt.ErrIncompatibleType)
	assert.Equal(t, "before ", buf.String())

	buf.Reset()
	f := pnt.New(pnt.WithPolicy(pnt.FailFast))
	assert.Panics(t, func() {
		_ = f.Write(&buf, "ab%d", "x")
	})
	assert.Equal(t, "ab", buf.String())
}

func TestSinkTypes(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	require.NoError(t, pnt.Fprintf(&sb, "%s", "builder"))
	assert.Equal(t, "builder", sb.String())

	var bb bytes.Buffer
	require.NoError(t, pnt.Fprintf(&bb, "%c", pnt.Rune('b')))
	assert.Equal(t, "b", bb.String())

	// A writer that already is a Sink is used as is.
	assert.Same(t, &bb, pnt.WriterSink(&bb))
}

func TestLogger(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	f := pnt.New(pnt.WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))

	_, err := f.Sprint("%2$s", pnt.Str("a"), pnt.Str("b"))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"directive":"%2$s"`)
	assert.Contains(t, logs.String(), `"arg":1`)

	logs.Reset()
	_, err = f.Sprint("%d", pnt.Str("a"))
	require.Error(t, err)
	assert.Contains(t, logs.String(), `"kind":"incompatible type"`)
	assert.Contains(t, logs.String(), `"level":"info"`)
}

func TestConcurrentDistinctSinks(t *testing.T) {
	t.Parallel()
	f := pnt.New()
	done := make(chan string, 8)
	for i := range 8 {
		go func() {
			out, err := f.Sprint("%03d", pnt.Int(int64(i)))
			if err != nil {
				out = err.Error()
			}
			done <- out
		}()
	}
	seen := map[string]bool{}
	for range 8 {
		seen[<-done] = true
	}
	assert.Len(t, seen, 8)
	assert.True(t, seen["007"])
}
