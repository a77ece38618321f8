package pnt

import (
	"strconv"
	"strings"
)

// Flags is the set of directive flags.
type Flags uint8

const (
	FlagLeft  Flags = 1 << iota // '-'
	FlagSign                    // '+'
	FlagBase                    // '#'
	FlagZero                    // '0'
	FlagSpace                   // ' '
)

// Has reports whether every flag in x is set.
func (f Flags) Has(x Flags) bool { return f&x == x }

// String returns the flags in canonical order.
func (f Flags) String() string {
	var b strings.Builder
	for _, fl := range [...]struct {
		flag Flags
		c    byte
	}{{FlagLeft, '-'}, {FlagSign, '+'}, {FlagSpace, ' '}, {FlagBase, '#'}, {FlagZero, '0'}} {
		if f.Has(fl.flag) {
			b.WriteByte(fl.c)
		}
	}
	return b.String()
}

// Sentinels for Directive.Width and Directive.Precision.
const (
	NoValue  = -1 // not given
	ArgValue = -2 // '*', supplied by an argument
)

// maxValue bounds positions, widths and precisions.
const maxValue = 1<<31 - 1

// Directive is one parsed '%' directive.
type Directive struct {
	Offset    int    // byte offset of the '%'
	Text      string // directive as written, including the '%'
	Position  int    // effective zero-based argument index
	Explicit  bool   // Position came from an N$ marker
	Flags     Flags
	Width     int // NoValue, ArgValue or a non-negative width
	Precision int // NoValue, ArgValue or a non-negative precision
	Verb      byte
}

// String renders the directive in canonical form.
func (d Directive) String() string {
	var b strings.Builder
	b.WriteByte('%')
	if d.Explicit {
		b.WriteString(strconv.Itoa(d.Position + 1))
		b.WriteByte('$')
	}
	b.WriteString(d.Flags.String())
	switch d.Width {
	case NoValue:
	case ArgValue:
		b.WriteByte('*')
	default:
		b.WriteString(strconv.Itoa(d.Width))
	}
	switch d.Precision {
	case NoValue:
	case ArgValue:
		b.WriteString(".*")
	default:
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(d.Precision))
	}
	b.WriteByte(d.Verb)
	return b.String()
}

func isVerb(c byte) bool {
	switch c {
	case 's', 'c', 'b', 'd', 'o', 'x', 'X', 'p',
		'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
		return true
	}
	return false
}

func isFloatVerb(c byte) bool {
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
		return true
	}
	return false
}

// parser reads one directive. The grammar is
//
//	'%' Position Flags Width Precision Verb
//
// and each part is optional except the verb.
type parser struct {
	tmpl string
	pos  int
}

func (p *parser) peek() byte {
	if p.pos < len(p.tmpl) {
		return p.tmpl[p.pos]
	}
	return 0
}

// integerEnd returns the offset just past the run of digits at from.
func (p *parser) integerEnd(from int) int {
	end := from
	for end < len(p.tmpl) && p.tmpl[end] >= '0' && p.tmpl[end] <= '9' {
		end++
	}
	return end
}

func (p *parser) integer(from, to int) (int, bool) {
	n := 0
	for i := from; i < to; i++ {
		n = n*10 + int(p.tmpl[i]-'0')
		if n > maxValue {
			return 0, false
		}
	}
	return n, true
}

// directive parses the directive whose '%' is at start. p.pos must point
// just past the '%'. On return p.pos is just past the verb.
func (p *parser) directive(start int) (Directive, *FormatError) {
	d := Directive{Offset: start, Position: NoValue}
	fail := func() (Directive, *FormatError) {
		return d, &FormatError{Kind: InvalidFormatter, Offset: start, Verb: d.Verb, Index: -1}
	}

	if end := p.integerEnd(p.pos); end > p.pos && end < len(p.tmpl) && p.tmpl[end] == '$' {
		n, ok := p.integer(p.pos, end)
		if !ok || n == 0 {
			return fail()
		}
		d.Position = n - 1
		d.Explicit = true
		p.pos = end + 1
	}

flags:
	for {
		switch p.peek() {
		case '-':
			d.Flags |= FlagLeft
		case '+':
			d.Flags |= FlagSign
		case '#':
			d.Flags |= FlagBase
		case '0':
			d.Flags |= FlagZero
		case ' ':
			d.Flags |= FlagSpace
		default:
			break flags
		}
		p.pos++
	}

	d.Width = NoValue
	if p.peek() == '*' {
		d.Width = ArgValue
		p.pos++
	} else if end := p.integerEnd(p.pos); end > p.pos {
		n, ok := p.integer(p.pos, end)
		if !ok {
			return fail()
		}
		d.Width = n
		p.pos = end
	}

	d.Precision = NoValue
	if p.peek() == '.' {
		p.pos++
		switch end := p.integerEnd(p.pos); {
		case p.peek() == '*':
			d.Precision = ArgValue
			p.pos++
		case end == p.pos:
			d.Precision = 0
		default:
			n, ok := p.integer(p.pos, end)
			if !ok {
				return fail()
			}
			d.Precision = n
			p.pos = end
		}
	}

	c := p.peek()
	if !isVerb(c) {
		if p.pos < len(p.tmpl) {
			d.Verb = c
			p.pos++
		}
		return fail()
	}
	d.Verb = c
	p.pos++
	d.Text = p.tmpl[start:p.pos]
	d.normalize()
	return d, nil
}

// normalize drops flags that have no meaning for the verb.
func (d *Directive) normalize() {
	switch d.Verb {
	case 'd', 'b', 's':
		d.Flags &^= FlagBase
	default:
		d.Flags &^= FlagSign | FlagSpace
	}
	if d.Flags.Has(FlagSign) {
		d.Flags &^= FlagSpace
	}
	if d.Flags.Has(FlagLeft) {
		d.Flags &^= FlagZero
	}
}
