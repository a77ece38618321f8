package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/cockroachdb/errors"

	"github.com/bjaus/pnt"
)

func parseArgs(raw []string) ([]pnt.Arg, error) {
	out := make([]pnt.Arg, len(raw))
	for i, s := range raw {
		a, err := parseArg(s)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		out[i] = a
	}
	return out, nil
}

// parseArg types one command line argument.
func parseArg(s string) (pnt.Arg, error) {
	if prefix, rest, ok := strings.Cut(s, ":"); ok && len(prefix) == 1 {
		switch prefix {
		case "s":
			return pnt.Str(rest), nil
		case "c":
			r, size := utf8.DecodeRuneInString(rest)
			if r == utf8.RuneError || size != len(rest) {
				return pnt.Arg{}, errors.Newf("c: wants exactly one character, got %q", rest)
			}
			return pnt.Char(r), nil
		case "i":
			n, err := strconv.ParseInt(rest, 0, 64)
			if err != nil {
				return pnt.Arg{}, errors.Wrap(err, "i:")
			}
			return pnt.Int(n), nil
		case "u":
			n, err := strconv.ParseUint(rest, 0, 64)
			if err != nil {
				return pnt.Arg{}, errors.Wrap(err, "u:")
			}
			return pnt.Uint(n), nil
		case "p":
			n, err := strconv.ParseUint(rest, 0, 64)
			if err != nil {
				return pnt.Arg{}, errors.Wrap(err, "p:")
			}
			p, err := safecast.Conv[uintptr](n)
			if err != nil {
				return pnt.Arg{}, errors.Wrap(err, "p:")
			}
			return pnt.Ptr(p), nil
		case "f":
			f, err := strconv.ParseFloat(rest, 64)
			if err != nil {
				return pnt.Arg{}, errors.Wrap(err, "f:")
			}
			return pnt.Float(f), nil
		}
	}

	switch s {
	case "true":
		return pnt.Bool(true), nil
	case "false":
		return pnt.Bool(false), nil
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if n, err := strconv.ParseUint(s, 0, 64); err == nil {
			return pnt.Uint(n), nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return pnt.Int(n), nil
	}
	return pnt.Str(s), nil
}

// unescape interprets \n, \t, \\ and \% in a template given on the
// command line. \% stays a literal "%%" for the formatter.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i == len(s) {
			return "", errors.New("template ends with a lone backslash")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '%':
			b.WriteString("%%")
		default:
			return "", errors.Newf("unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}
