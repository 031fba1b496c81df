package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golangsched/schedkw/sched"
)

// DefaultMarker is the token that takes a column's default value.
// A "n*" token is shorthand for n consecutive markers.
const DefaultMarker = "*"

// expandRepeats rewrites "n*" repeat tokens as n default markers so that
// column positions line up with the variant schema.
func expandRepeats(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n, ok := repeatCount(tok); ok {
			for i := 0; i < n; i++ {
				out = append(out, DefaultMarker)
			}
			continue
		}
		out = append(out, tok)
	}
	return out
}

func repeatCount(tok string) (int, bool) {
	if len(tok) < 2 || tok[len(tok)-1] != '*' {
		return 0, false
	}
	n, err := strconv.Atoi(tok[:len(tok)-1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// unquote strips one level of surrounding single or double quotes.
func unquote(tok string) string {
	if len(tok) >= 2 {
		if (tok[0] == '\'' && tok[len(tok)-1] == '\'') ||
			(tok[0] == '"' && tok[len(tok)-1] == '"') {
			return tok[1 : len(tok)-1]
		}
	}
	return tok
}

// line gives positional column access to one record's tokens, applying the
// variant's default rules.
type line struct {
	kw     sched.KeywordType
	toks   []string
	widths sched.WidthTable
}

func newLine(kw sched.KeywordType, tokens []string, widths sched.WidthTable) line {
	return line{kw: kw, toks: expandRepeats(tokens), widths: widths}
}

// defaulted reports whether the column was left to its default, either by a
// marker token or by the line ending before the column.
func (l line) defaulted(col int) bool {
	return col >= len(l.toks) || l.toks[col] == DefaultMarker
}

// str returns a string column, def when defaulted.
func (l line) str(col int, def string) string {
	if l.defaulted(col) {
		return def
	}
	return unquote(l.toks[col])
}

// name returns a required identifier column. Defaulting it is an error.
func (l line) name(col int, what string) (string, error) {
	if l.defaulted(col) {
		return "", fmt.Errorf("%w: %s column %d: %s may not be defaulted", sched.ErrInvalidField, l.kw, col, what)
	}
	return unquote(l.toks[col]), nil
}

// fixedStr returns a defaultable fixed-width string column. A marker token
// expands to the configured number of blanks when the width table has an
// entry for this column; without an entry the variant default applies.
func (l line) fixedStr(col int, def string) string {
	if l.defaulted(col) {
		if w, ok := l.widths.Width(l.kw, col); ok && col < len(l.toks) {
			return strings.Repeat(" ", w)
		}
		return def
	}
	return unquote(l.toks[col])
}

// float returns a numeric column, def when defaulted.
func (l line) float(col int, def float64) (float64, error) {
	if l.defaulted(col) {
		return def, nil
	}
	v, err := strconv.ParseFloat(l.toks[col], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s column %d: %q is not a number", sched.ErrInvalidField, l.kw, col, l.toks[col])
	}
	return v, nil
}

// integer returns an integer column, def when defaulted.
func (l line) integer(col int, def int) (int, error) {
	if l.defaulted(col) {
		return def, nil
	}
	v, err := strconv.Atoi(l.toks[col])
	if err != nil {
		return 0, fmt.Errorf("%w: %s column %d: %q is not an integer", sched.ErrInvalidField, l.kw, col, l.toks[col])
	}
	return v, nil
}

// status returns a well-status column, def when defaulted.
func (l line) status(col int, def sched.WellStatus) (sched.WellStatus, error) {
	if l.defaulted(col) {
		return def, nil
	}
	s, ok := sched.WellStatusFromString(unquote(l.toks[col]))
	if !ok {
		return 0, fmt.Errorf("%w: %s column %d: %q is not a well status", sched.ErrInvalidField, l.kw, col, l.toks[col])
	}
	return s, nil
}

// phase returns a required phase column. There is no default phase.
func (l line) phase(col int) (sched.Phase, error) {
	if l.defaulted(col) {
		return 0, fmt.Errorf("%w: %s column %d: phase may not be defaulted", sched.ErrInvalidField, l.kw, col)
	}
	p, ok := sched.PhaseFromString(unquote(l.toks[col]))
	if !ok {
		return 0, fmt.Errorf("%w: %s column %d: %q is not a phase", sched.ErrInvalidField, l.kw, col, l.toks[col])
	}
	return p, nil
}

// mode returns a control-mode column looked up through the given context
// vocabulary, def when defaulted.
func (l line) mode(col int, def sched.ControlMode, lookup func(string) (sched.ControlMode, bool)) (sched.ControlMode, error) {
	if l.defaulted(col) {
		return def, nil
	}
	m, ok := lookup(unquote(l.toks[col]))
	if !ok {
		return 0, fmt.Errorf("%w: %s column %d: %q is not a control mode in this context", sched.ErrInvalidField, l.kw, col, l.toks[col])
	}
	return m, nil
}
