package pnt

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unsafe"

	"github.com/rs/zerolog"
)

// Formatter formats templates. It holds no per-call state and is safe for
// concurrent use with distinct sinks.
type Formatter struct {
	policy  Policy
	strict  bool
	ptrSize int
	log     zerolog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithPolicy sets the failure policy. Default: ReturnErrors.
func WithPolicy(p Policy) Option {
	return func(f *Formatter) { f.policy = p }
}

// WithStrictArguments makes a call fail with TooManyArguments when an
// argument is never referenced. Default: unreferenced arguments are
// ignored.
func WithStrictArguments(strict bool) Option {
	return func(f *Formatter) { f.strict = strict }
}

// WithLogger sets the logger. Directives are logged at trace level and
// failures at debug level. Default: no logging.
func WithLogger(l zerolog.Logger) Option {
	return func(f *Formatter) { f.log = l }
}

// WithPointerSize sets the pointer width in bytes used by %p. Values
// outside 1..8 are ignored. Default: the platform pointer size.
func WithPointerSize(n int) Option {
	return func(f *Formatter) {
		if n >= 1 && n <= 8 {
			f.ptrSize = n
		}
	}
}

// New returns a Formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		policy:  ReturnErrors,
		ptrSize: int(unsafe.Sizeof(uintptr(0))),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Policy returns the failure policy.
func (f *Formatter) Policy() Policy { return f.policy }

// Fprint formats tmpl with args into s. Output written before a failure
// stays in s.
func (f *Formatter) Fprint(s Sink, tmpl string, args ...Arg) error {
	st := newState(f, s, args)
	err := scan(tmpl, st)
	if err == nil {
		err = st.finish(len(tmpl))
	}
	return st.settle(err)
}

// Print formats tmpl with args into the default sink.
func (f *Formatter) Print(tmpl string, args ...Arg) error {
	return f.Fprint(Stdout(), tmpl, args...)
}

// Sprint formats tmpl with args and returns the result. On failure the
// partial output is returned with the error.
func (f *Formatter) Sprint(tmpl string, args ...Arg) (string, error) {
	var b strings.Builder
	err := f.Fprint(&b, tmpl, args...)
	return b.String(), err
}

// Write formats tmpl with native Go values into w. Values are boxed with
// ArgOf. Whatever was rendered reaches w, even when FailFast panics.
func (f *Formatter) Write(w io.Writer, tmpl string, args ...any) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()
	return f.Fprint(bw, tmpl, Args(args...)...)
}

// Marshal formats tmpl with native Go values and returns the bytes. On
// failure the partial output is returned with the error.
func (f *Formatter) Marshal(tmpl string, args ...any) ([]byte, error) {
	var buf bytes.Buffer
	err := f.Fprint(&buf, tmpl, Args(args...)...)
	return buf.Bytes(), err
}

var std = New()

// Fprintf formats into s with the default Formatter.
func Fprintf(s Sink, tmpl string, args ...any) error {
	return std.Fprint(s, tmpl, Args(args...)...)
}

// Printf formats into the default sink with the default Formatter.
func Printf(tmpl string, args ...any) error {
	return std.Print(tmpl, Args(args...)...)
}

// Sprintf formats with the default Formatter and returns the result.
func Sprintf(tmpl string, args ...any) (string, error) {
	return std.Sprint(tmpl, Args(args...)...)
}

// Write formats into w with the default Formatter.
func Write(w io.Writer, tmpl string, args ...any) error {
	return std.Write(w, tmpl, args...)
}

// Marshal formats with the default Formatter and returns the bytes.
func Marshal(tmpl string, args ...any) ([]byte, error) {
	return std.Marshal(tmpl, args...)
}
