package pnt

import "unicode/utf8"

const (
	spaces = "                                "
	zeros  = "00000000000000000000000000000000"
)

// repeat writes n copies of c, which must be a space or a zero.
func (s *state) repeat(c byte, n int) error {
	run := spaces
	if c == '0' {
		run = zeros
	}
	for n > 0 {
		chunk := min(n, len(run))
		if err := s.write(run[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// padding returns the fill around content of the given size. Width that
// is too small for the content yields no fill.
func padding(d Directive, size int) (before, after int) {
	if d.Width < 0 {
		return 0, 0
	}
	fill := max(d.Width-size, 0)
	if d.Flags.Has(FlagLeft) {
		return 0, fill
	}
	return fill, 0
}

// padded writes content surrounded by its width fill. Zero fill never
// applies here. Precision is never applied to content, but '*' in either
// position still fails.
func (s *state) padded(d Directive, content string, size int) error {
	if d.Width == ArgValue || d.Precision == ArgValue {
		return s.fail(NotImplemented)
	}
	before, after := padding(d, size)
	if err := s.repeat(' ', before); err != nil {
		return err
	}
	if err := s.write(content); err != nil {
		return err
	}
	return s.repeat(' ', after)
}

func (s *state) boolean(d Directive, b bool) error {
	if b {
		return s.padded(d, "true", len("true"))
	}
	return s.padded(d, "false", len("false"))
}

func (s *state) text(d Directive, str string) error {
	return s.padded(d, str, len(str))
}

// char writes one character, UTF-8 encoded. It counts as one column of
// width regardless of its encoded length.
func (s *state) char(d Directive, r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return s.padded(d, string(buf[:n]), 1)
}

// pointer renders an address as zero padded hexadecimal covering the full
// pointer width. Every written flag is replaced by '#'.
func (s *state) pointer(d Directive, addr uint64) error {
	if d.Precision == ArgValue {
		return s.fail(NotImplemented)
	}
	d.Flags = FlagBase
	d.Precision = 2 * s.f.ptrSize
	d.Verb = 'x'
	return s.integral(d, addr, false, 16)
}

// byCategory renders an argument under %s, choosing the routine from the
// argument's category.
func (s *state) byCategory(d Directive, a Arg) error {
	switch a.cat {
	case Boolean:
		return s.boolean(d, a.u != 0)
	case Character:
		r, _ := a.char()
		return s.char(d, r)
	case Text:
		return s.text(d, a.s)
	case Signed, Unsigned:
		d.Verb = 'd'
		return s.integral(d, a.u, a.cat == Signed, 10)
	case Pointer:
		return s.pointer(d, a.u)
	case Floating:
		return s.fail(NotImplemented)
	}
	return s.fail(IncompatibleType)
}
