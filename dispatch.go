package pnt

import "github.com/cockroachdb/errors"

// state is the per-call formatting state. It is the visitor the scanner
// drives when formatting.
type state struct {
	f    *Formatter
	sink Sink
	args []Arg
	used []bool
	cur  Directive
}

func newState(f *Formatter, sink Sink, args []Arg) *state {
	s := &state{f: f, sink: sink, args: args}
	if f.strict {
		s.used = make([]bool, len(args))
	}
	return s
}

// sinkError marks failures reported by the sink itself.
type sinkError struct{ cause error }

func (e *sinkError) Error() string { return "sink write: " + e.cause.Error() }
func (e *sinkError) Unwrap() error { return e.cause }

func (s *state) write(str string) error {
	if _, err := s.sink.WriteString(str); err != nil {
		return &sinkError{cause: err}
	}
	return nil
}

func (s *state) writeByte(c byte) error {
	if err := s.sink.WriteByte(c); err != nil {
		return &sinkError{cause: err}
	}
	return nil
}

func (s *state) literal(str string) error { return s.write(str) }

// fail builds the error for the directive being rendered.
func (s *state) fail(k Kind) error {
	return &FormatError{Kind: k, Offset: s.cur.Offset, Verb: s.cur.Verb, Index: s.cur.Position}
}

func (s *state) directive(d Directive) error {
	s.cur = d
	if e := s.f.log.Debug(); e.Enabled() {
		e.Int("offset", d.Offset).
			Str("directive", d.Text).
			Int("arg", d.Position).
			Bool("explicit", d.Explicit).
			Msg("directive")
	}
	if d.Position >= len(s.args) {
		return s.fail(TooFewArguments)
	}
	if s.used != nil {
		s.used[d.Position] = true
	}
	return s.dispatch(d, s.args[d.Position])
}

// dispatch renders a by the directive's verb.
func (s *state) dispatch(d Directive, a Arg) error {
	switch d.Verb {
	case 's':
		return s.byCategory(d, a)
	case 'c':
		if a.cat == Floating {
			return s.fail(NotImplemented)
		}
		r, ok := a.char()
		if !ok {
			return s.fail(IncompatibleType)
		}
		return s.char(d, r)
	case 'b', 'd', 'o', 'x', 'X':
		bits, signed, ok := a.integral()
		if !ok {
			return s.fail(IncompatibleType)
		}
		base := uint64(10)
		switch d.Verb {
		case 'b':
			base = 2
		case 'o':
			base = 8
		case 'x', 'X':
			base = 16
		}
		if d.Verb != 'd' {
			signed = false
			bits = a.twos(bits)
		}
		return s.integral(d, bits, signed, base)
	case 'p':
		if a.cat != Pointer {
			return s.fail(IncompatibleType)
		}
		return s.pointer(d, a.u)
	}
	if isFloatVerb(d.Verb) {
		return s.fail(NotImplemented)
	}
	return s.fail(InvalidFormatter)
}

// finish runs after the last directive. In strict mode every argument
// must have been referenced.
func (s *state) finish(tmplLen int) error {
	for i, ok := range s.used {
		if !ok {
			return &FormatError{Kind: TooManyArguments, Offset: tmplLen, Index: i}
		}
	}
	return nil
}

// settle applies the formatter's policy to err. Sink failures are returned
// under every policy.
func (s *state) settle(err error) error {
	if err == nil {
		return nil
	}
	var se *sinkError
	if errors.As(err, &se) {
		return errors.Wrap(se.cause, "sink write")
	}
	fe, ok := err.(*FormatError)
	if !ok {
		return err
	}
	s.f.log.Info().
		Str("kind", fe.Kind.String()).
		Int("offset", fe.Offset).
		Int("arg", fe.Index).
		Msg("format failed")
	return s.f.policy.raise(fe)
}

var _ visitor = (*state)(nil)
