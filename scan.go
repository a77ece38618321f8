package pnt

import "strings"

// visitor receives the pieces of a template in order.
type visitor interface {
	literal(s string) error
	directive(d Directive) error
}

// scan walks tmpl once, left to right. Literal runs and "%%" go to
// v.literal; every other directive is parsed, given its effective
// argument index and passed to v.directive. Parse failures come back as
// *FormatError.
//
// Arguments are taken in order until the first N$ directive. From then on
// the counter holds the last explicit index and no longer advances, so a
// later directive without N$ reuses that index.
func scan(tmpl string, v visitor) error {
	var (
		positional bool
		counter    int
		last       int
	)
	for i := 0; i < len(tmpl); {
		rel := strings.IndexByte(tmpl[i:], '%')
		if rel < 0 {
			break
		}
		start := i + rel
		if start > last {
			if err := v.literal(tmpl[last:start]); err != nil {
				return err
			}
		}
		i = start + 1

		switch {
		case i < len(tmpl) && tmpl[i] == '%':
			i++
			if err := v.literal("%"); err != nil {
				return err
			}
		case i < len(tmpl) && tmpl[i] == '(':
			return &FormatError{Kind: NotImplemented, Offset: start, Verb: '(', Index: -1}
		default:
			p := parser{tmpl: tmpl, pos: i}
			d, fe := p.directive(start)
			if fe != nil {
				return fe
			}
			i = p.pos
			if d.Explicit {
				positional = true
				counter = d.Position
			} else {
				d.Position = counter
			}
			if !positional {
				counter++
			}
			if err := v.directive(d); err != nil {
				return err
			}
		}
		last = i
	}
	if last < len(tmpl) {
		return v.literal(tmpl[last:])
	}
	return nil
}

// Explain parses every directive of tmpl without formatting anything.
// Each Directive carries the argument index formatting would use.
func Explain(tmpl string) ([]Directive, error) {
	var e explainer
	if err := scan(tmpl, &e); err != nil {
		return e.dirs, err
	}
	return e.dirs, nil
}

type explainer struct {
	dirs []Directive
}

func (e *explainer) literal(string) error { return nil }

func (e *explainer) directive(d Directive) error {
	e.dirs = append(e.dirs, d)
	return nil
}
