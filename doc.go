// Package pnt is a printf-style formatting engine writing to an
// append-only [Sink].
//
// A template is literal text mixed with directives. Literal runs are
// copied verbatim, "%%" writes a single '%', and every other '%' starts a
// directive that renders one argument. The central entry points are
// [Formatter.Fprint] for boxed [Arg] values and [Write], [Marshal] and
// [Sprintf] for native Go values:
//
//	pnt.Sprintf("%-8s|%5d|%#x", "name", 42, 255) // "name    |   42|0xff"
//
// # Directive Grammar
//
//	Directive: '%' Position Flags Width Precision Verb
//	Position:  empty | Integer '$'
//	Flags:     { '-' | '+' | '#' | '0' | ' ' }
//	Width:     empty | Integer | '*'
//	Precision: empty | '.' | '.' Integer | '.*'
//	Verb:      's' 'c' 'b' 'd' 'o' 'x' 'X' 'p' 'e' 'E' 'f' 'F' 'g' 'G' 'a' 'A'
//
// Positions are one-based. Once a directive names a position, directives
// without one reuse the last named position instead of continuing the
// sequence:
//
//	pnt.Sprintf("%2$s %s", "a", "b") // "b b"
//
// Flags that mean nothing for a verb are dropped: '+' and ' ' only apply to
// s, b and d; '#' never applies to s, b and d; ' ' is dropped when '+' is
// set and '0' when '-' is set.
//
// # Arguments
//
// Each [Arg] has a [Category]. [ArgOf] picks it from a Go value's type;
// use [Rune] or [Char] for characters, since Go's rune and byte are
// integers.
//
//   - s: booleans as true/false, characters, text, integers in decimal,
//     pointers as with p
//   - c: characters and integers holding a valid code point
//   - b d o x X: integers and characters; negative values print in two's
//     complement at the value's own bit width under b, o, x and X
//   - p: pointers, zero padded to the full pointer width with a 0x prefix;
//     written flags are ignored
//
// Floating-point verbs and "%(" groups parse but always fail with
// [ErrNotImplemented]. So does '*' as a width or a precision. Precision
// never truncates text.
//
// # Errors
//
// Failures are *[FormatError] values wrapping one sentinel:
//
//   - [ErrInvalidFormatter]: missing or unknown verb
//   - [ErrTooFewArguments]: a directive selects a missing argument
//   - [ErrTooManyArguments]: an argument was never used (strict mode only)
//   - [ErrIncompatibleType]: the verb does not accept the argument
//   - [ErrNotImplemented]: floating point, groups, '*'
//
// A [Formatter] built with [WithPolicy]([FailFast]) panics with an
// assertion failure instead of returning. Output written before a failure
// is never retracted.
//
// # Configuration
//
// [LoadConfig] reads the policy, strict argument checking, pointer size
// and log level from a YAML or TOML file; [NewFromConfig] turns it into a
// Formatter.
//
// # Inspection
//
// [Explain] lists the directives of a template with the argument each one
// selects. [WriteReport] renders that list as a table, JSON, JSON lines,
// YAML, CSV, TSV, markdown, HTML, canonical forms or a Go template.
//
// [Formatter.WriteIter] and [Formatter.WriteChan] format one template once
// per row of arguments into a single sink.
package pnt
