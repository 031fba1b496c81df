// Package schedkw parses the SCHEDULE section of reservoir-simulation input
// decks: fixed-format keyword blocks (DATES, TSTEP, WELSPECS, COMPDAT, the
// WCON* well-control family, GRUPTREE, INCLUDE) describing how wells, groups
// and completions evolve over simulated time.
//
// The deck reader hands the parser a keyword name plus a flat token stream;
// the parser classifies the name, applies the variant's column grammar, and
// returns a typed record plus the index of the first unconsumed token. The
// records expose the queries downstream consumers need: time stepping, well
// enumeration, per-well status, and group parent/child extraction.
package schedkw

import (
	"log/slog"

	"github.com/golangsched/schedkw/internal/parser"
	"github.com/golangsched/schedkw/sched"
)

// LevelTrace is a custom log level more verbose than Debug, used for
// per-record and per-token logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = parser.LevelTrace

// Option configures ParseKeyword and ParseDeck.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// ParseKeyword parses one keyword block. name is the keyword name token;
// tokens is the deck's token stream with index pointing at the first token
// after the name. The width table may be nil. It returns the typed record
// and the index of the first token after the block's terminator.
//
// Unknown names never fail: they produce an UNTYPED record holding the
// block's tokens verbatim. TIME is recognized but unsupported and fails
// with sched.ErrUnsupportedKeyword.
func ParseKeyword(name string, tokens []string, index int, widths sched.WidthTable, opts ...Option) (*sched.Keyword, int, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return parser.ParseKeyword(name, tokens, index, widths, parser.Logger{L: cfg.logger})
}
