package pnt

import "iter"

// WriteIter formats tmpl once per row into s, in the order rows yields
// them. It stops at the first failure; rows already written stay in s.
func (f *Formatter) WriteIter(s Sink, tmpl string, rows iter.Seq[[]Arg]) error {
	var streamErr error
	rows(func(row []Arg) bool {
		if err := f.Fprint(s, tmpl, row...); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan formats tmpl once per row received from ch.
// It is a thin wrapper around [Formatter.WriteIter].
func (f *Formatter) WriteChan(s Sink, tmpl string, ch <-chan []Arg) error {
	return f.WriteIter(s, tmpl, chanToIter(ch))
}

// WriteIter formats rows with the default Formatter.
func WriteIter(s Sink, tmpl string, rows iter.Seq[[]Arg]) error {
	return std.WriteIter(s, tmpl, rows)
}

// WriteChan formats rows from ch with the default Formatter.
func WriteChan(s Sink, tmpl string, ch <-chan []Arg) error {
	return std.WriteChan(s, tmpl, ch)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
