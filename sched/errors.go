package sched

import "errors"

// Sentinel errors for parsing and queries. All failures are synchronous and
// terminal for the call that produced them; callers decide whether a failure
// aborts the whole deck. Errors are wrapped with context, test with
// errors.Is.
var (
	// ErrUnsupportedKeyword is returned when parsing is requested for a
	// keyword that is in the vocabulary but has no parser (TIME).
	ErrUnsupportedKeyword = errors.New("unsupported keyword")

	// ErrMalformedRecord is returned when the token stream ends before the
	// record terminator of the current keyword block.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidField is returned when a column token fails its expected
	// numeric or vocabulary conversion.
	ErrInvalidField = errors.New("invalid field")

	// ErrTypeMismatch is returned when a query is invoked on a record whose
	// payload shape does not support it.
	ErrTypeMismatch = errors.New("keyword type mismatch")

	// ErrUnknownWell is returned by well-status queries for a well name
	// absent from the payload.
	ErrUnknownWell = errors.New("unknown well")
)
