package pnt

import (
	"io"
	"os"
	"sync"
)

// Sink is the append-only destination of formatted output.
// *bytes.Buffer, *strings.Builder and *bufio.Writer satisfy it.
//
// A Sink is not synchronized by the formatter. Calls sharing one Sink must
// be serialized by the caller.
type Sink interface {
	io.ByteWriter
	io.StringWriter
}

// WriterSink adapts w to a Sink without buffering. Each primitive is one
// Write call on w.
func WriterSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return &writerSink{w: w}
}

type writerSink struct {
	w   io.Writer
	one [1]byte
}

func (s *writerSink) WriteByte(c byte) error {
	s.one[0] = c
	_, err := s.w.Write(s.one[:])
	return err
}

func (s *writerSink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

var stdout = sync.OnceValue(func() Sink { return WriterSink(os.Stdout) })

// Stdout returns the process-wide default sink used by Print.
func Stdout() Sink { return stdout() }
