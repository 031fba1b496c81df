package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golangsched/schedkw/internal/cursor"
	"github.com/golangsched/schedkw/sched"
)

// months maps deck month mnemonics to calendar months. JLY is an accepted
// alias for JUL.
var months = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"JLY": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// parseDates parses a DATES block: one record per date, each
// "day month year" with an optional "HH:MM:SS" clock column.
func parseDates(cur *cursor.Cursor, log Logger) (*sched.Dates, error) {
	payload := &sched.Dates{}
	err := records(cur, func(line []string) error {
		t, err := parseDateRecord(line)
		if err != nil {
			return err
		}
		log.Trace("date record", slog.Time("date", t))
		payload.Times = append(payload.Times, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseDateRecord(line []string) (time.Time, error) {
	if len(line) < 3 {
		return time.Time{}, fmt.Errorf("%w: DATES record needs day, month and year", sched.ErrInvalidField)
	}

	day, err := strconv.Atoi(line[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: DATES day %q is not an integer", sched.ErrInvalidField, line[0])
	}

	month, ok := months[unquote(line[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: DATES month %q is not a month mnemonic", sched.ErrInvalidField, line[1])
	}

	year, err := strconv.Atoi(line[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: DATES year %q is not an integer", sched.ErrInvalidField, line[2])
	}

	var hour, minute, second int
	if len(line) > 3 {
		hour, minute, second, err = parseClock(unquote(line[3]))
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), nil
}

func parseClock(tok string) (hour, minute, second int, err error) {
	parts := strings.Split(tok, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: DATES clock %q is not HH:MM:SS", sched.ErrInvalidField, tok)
	}
	fields := []*int{&hour, &minute, &second}
	for i, part := range parts {
		v, convErr := strconv.Atoi(part)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: DATES clock %q is not HH:MM:SS", sched.ErrInvalidField, tok)
		}
		*fields[i] = v
	}
	return hour, minute, second, nil
}

// parseTstep parses a TSTEP record: a single line of day deltas.
func parseTstep(cur *cursor.Cursor) (*sched.Tstep, error) {
	line, err := singleRecord(cur)
	if err != nil {
		return nil, err
	}
	payload := &sched.Tstep{Deltas: make([]float64, 0, len(line))}
	for _, tok := range line {
		d, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: TSTEP delta %q is not a number", sched.ErrInvalidField, tok)
		}
		payload.Deltas = append(payload.Deltas, d)
	}
	return payload, nil
}

// parseInclude parses an INCLUDE record: a single path token. The path is
// only captured; resolving it belongs to the deck reader.
func parseInclude(cur *cursor.Cursor) (*sched.Include, error) {
	line, err := singleRecord(cur)
	if err != nil {
		return nil, err
	}
	if len(line) != 1 {
		return nil, fmt.Errorf("%w: INCLUDE expects exactly one path token, got %d", sched.ErrInvalidField, len(line))
	}
	return &sched.Include{Path: unquote(line[0])}, nil
}
