// Package parser turns the token run of one keyword block into a typed
// sched.Keyword record.
//
// Each variant has its own positional column grammar and default rules; the
// cursor guarantees that a parser consumes exactly through the block's
// record terminator and never reads into the next keyword.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/golangsched/schedkw/internal/cursor"
	"github.com/golangsched/schedkw/sched"
)

// ParseKeyword classifies name, parses the keyword block starting at index,
// and returns the record plus the index of the first unconsumed token.
// Unknown names are captured verbatim as UNTYPED records; TIME is in the
// vocabulary but has no parser and fails explicitly.
func ParseKeyword(name string, tokens []string, index int, widths sched.WidthTable, log Logger) (*sched.Keyword, int, error) {
	typ := sched.KeywordTypeFromString(name)
	cur := cursor.New(tokens, index)

	log.Log(slog.LevelDebug, "parsing keyword",
		slog.String("keyword", name),
		slog.String("type", typ.String()),
		slog.Int("index", index))

	var payload sched.Payload
	var err error
	switch typ {
	case sched.KwTime:
		return nil, index, fmt.Errorf("%w: %s", sched.ErrUnsupportedKeyword, name)
	case sched.KwDates:
		payload, err = parseDates(cur, log)
	case sched.KwTstep:
		payload, err = parseTstep(cur)
	case sched.KwInclude:
		payload, err = parseInclude(cur)
	case sched.KwWelspecs:
		payload, err = parseWelspecs(cur, widths)
	case sched.KwCompdat:
		payload, err = parseCompdat(cur, widths)
	case sched.KwWconhist:
		payload, err = parseWconhist(cur, widths)
	case sched.KwWconinje:
		payload, err = parseWconinje(cur, widths)
	case sched.KwWconinjh:
		payload, err = parseWconinjh(cur, widths)
	case sched.KwWconprod:
		payload, err = parseWconprod(cur, widths)
	case sched.KwWconinj:
		payload, err = parseWconinj(cur, widths)
	case sched.KwGruptree:
		payload, err = parseGruptree(cur, widths)
	default:
		// KwUntyped and KwNone store the block verbatim.
		var raw []string
		raw, err = cur.Block()
		payload = &sched.Raw{Tokens: raw}
	}
	if err != nil {
		return nil, index, fmt.Errorf("%s: %w", name, err)
	}

	log.Log(slog.LevelDebug, "parsed keyword",
		slog.String("keyword", name),
		slog.Int("next", cur.Index()))

	return sched.NewKeyword(typ, name, payload), cur.Index(), nil
}

// records drives a multi-record keyword: it hands every line to row until
// the block's end marker.
func records(cur *cursor.Cursor, row func(line []string) error) error {
	for {
		line, done, err := cur.Line()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if err := row(line); err != nil {
			return err
		}
	}
}

// singleRecord consumes exactly one slash-terminated record; single-record
// keywords have no separate block end marker.
func singleRecord(cur *cursor.Cursor) ([]string, error) {
	line, done, err := cur.Line()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, nil
	}
	return line, nil
}
