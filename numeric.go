package pnt

// digitsCap holds the longest digit run: a 64-bit value in base 2.
const digitsCap = 64

// digitBuf is filled back to front, so digits come out in order without a
// reversal pass.
type digitBuf struct {
	b [digitsCap]byte
	i int
}

// fill writes the digits of bits in base and returns them. When signed is
// set, bits holds a two's complement int64; a negative value is converted
// one remainder at a time so math.MinInt64 needs no positive counterpart.
// Zero yields no digits.
func (d *digitBuf) fill(bits uint64, signed bool, base uint64, upper bool) []byte {
	letter := byte('a')
	if upper {
		letter = 'A'
	}
	d.i = len(d.b)
	if signed {
		v, b := int64(bits), int64(base)
		for v != 0 {
			r := v % b
			v /= b
			if r < 0 {
				r = -r
			}
			d.i--
			d.b[d.i] = digit(byte(r), letter)
		}
		return d.b[d.i:]
	}
	for v := bits; v != 0; v /= base {
		d.i--
		d.b[d.i] = digit(byte(v%base), letter)
	}
	return d.b[d.i:]
}

func digit(r, letter byte) byte {
	if r >= 10 {
		return letter + r - 10
	}
	return '0' + r
}

// integral renders bits in base under d. signed reports whether bits holds
// an int64; unsigned conversions pass false.
func (s *state) integral(d Directive, bits uint64, signed bool, base uint64) error {
	var buf digitBuf
	digits := buf.fill(bits, signed, base, d.Verb == 'X')
	neg := signed && int64(bits) < 0
	size := len(digits)

	var zerofill int
	switch d.Precision {
	case ArgValue:
		return s.fail(NotImplemented)
	case NoValue:
		zerofill = 1
	default:
		zerofill = d.Precision
	}
	zerofill = max(zerofill-size, 0)

	switch {
	case neg && d.Verb == 'd', d.Flags.Has(FlagSign), d.Flags.Has(FlagSpace):
		size++
	case d.Flags.Has(FlagBase):
		switch d.Verb {
		case 'x', 'X':
			if bits != 0 {
				size += 2
			}
		case 'o':
			size++
		}
	}

	var fill int
	switch d.Width {
	case ArgValue:
		return s.fail(NotImplemented)
	case NoValue:
	default:
		fill = max(d.Width-size-zerofill, 0)
	}

	if !d.Flags.Has(FlagZero) && !d.Flags.Has(FlagLeft) {
		if err := s.repeat(' ', fill); err != nil {
			return err
		}
	}
	if err := s.prefix(d, bits, neg); err != nil {
		return err
	}
	if d.Flags.Has(FlagZero) {
		zerofill += fill
	}
	if err := s.repeat('0', zerofill); err != nil {
		return err
	}
	if err := s.write(string(digits)); err != nil {
		return err
	}
	if d.Flags.Has(FlagLeft) {
		return s.repeat(' ', fill)
	}
	return nil
}

// prefix writes the base prefix or the sign. The base prefix wins.
func (s *state) prefix(d Directive, bits uint64, neg bool) error {
	if d.Flags.Has(FlagBase) {
		switch d.Verb {
		case 'x':
			if bits != 0 {
				return s.write("0x")
			}
		case 'X':
			if bits != 0 {
				return s.write("0X")
			}
		case 'o':
			return s.writeByte('0')
		}
		return nil
	}
	switch {
	case neg:
		return s.writeByte('-')
	case d.Flags.Has(FlagSign):
		return s.writeByte('+')
	case d.Flags.Has(FlagSpace):
		return s.writeByte(' ')
	}
	return nil
}
