package pnt

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for programmatic error handling. Every failure returned
// by a Formatter wraps exactly one of them.
var (
	ErrInvalidFormatter = errors.New("invalid formatter")
	ErrTooFewArguments  = errors.New("too few arguments")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrIncompatibleType = errors.New("incompatible type")
	ErrNotImplemented   = errors.New("not implemented")
	ErrInvalidConfig    = errors.New("invalid config")
)

// Kind classifies a formatting failure.
type Kind int

const (
	InvalidFormatter Kind = iota
	TooFewArguments
	TooManyArguments
	IncompatibleType
	NotImplemented
)

var kindSentinels = [...]error{
	InvalidFormatter: ErrInvalidFormatter,
	TooFewArguments:  ErrTooFewArguments,
	TooManyArguments: ErrTooManyArguments,
	IncompatibleType: ErrIncompatibleType,
	NotImplemented:   ErrNotImplemented,
}

// Err returns the sentinel error for k.
func (k Kind) Err() error {
	if k < 0 || int(k) >= len(kindSentinels) {
		return errors.Newf("unknown error kind %d", int(k))
	}
	return kindSentinels[k]
}

// String returns the human readable name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindSentinels) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindSentinels[k].Error()
}

// FormatError describes a failure at one point of a template.
//
// Offset is the byte offset of the '%' that introduced the failing directive.
// Verb is the conversion character, or zero when parsing failed before it
// was read. Index is the resolved argument index, or -1 when the failure
// happened before an argument was selected.
type FormatError struct {
	Kind   Kind
	Offset int
	Verb   byte
	Index  int
}

func (e *FormatError) Error() string {
	switch {
	case e.Verb != 0 && e.Index >= 0:
		return fmt.Sprintf("%s: %%%c at offset %d (argument %d)", e.Kind, e.Verb, e.Offset, e.Index)
	case e.Verb != 0:
		return fmt.Sprintf("%s: %%%c at offset %d", e.Kind, e.Verb, e.Offset)
	default:
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
}

// Unwrap exposes the sentinel so errors.Is matches on the kind.
func (e *FormatError) Unwrap() error { return e.Kind.Err() }

// KindOf reports the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// Policy selects how a Formatter reacts to a formatting failure. It is
// chosen once, when the Formatter is built. Both policies produce identical
// output on success.
type Policy int

const (
	// ReturnErrors returns every failure as a *FormatError.
	ReturnErrors Policy = iota
	// FailFast panics with an assertion failure wrapping the *FormatError.
	FailFast
)

var policyNames = map[Policy]string{
	ReturnErrors: "return",
	FailFast:     "fail-fast",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses a policy name as written in configuration files.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "return", "errors":
		return ReturnErrors, nil
	case "fail-fast", "failfast", "assert":
		return FailFast, nil
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown policy %q", s)
}

// raise applies the policy to a formatting failure.
func (p Policy) raise(fe *FormatError) error {
	if p == FailFast {
		panic(errors.WithAssertionFailure(fe))
	}
	return fe
}
