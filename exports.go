package schedkw

import "github.com/golangsched/schedkw/sched"

// Type aliases for the public API - all types come from the sched subpackage.

// Keyword is one parsed SCHEDULE keyword record.
type Keyword = sched.Keyword

// KeywordType identifies a keyword variant.
type KeywordType = sched.KeywordType

// WellStatus is the declared open/closed state of a well.
type WellStatus = sched.WellStatus

// ControlMode is the operating constraint governing a well.
type ControlMode = sched.ControlMode

// Phase is an injected or produced phase.
type Phase = sched.Phase

// WellType distinguishes injectors from producers.
type WellType = sched.WellType

// TimeKind identifies the two time-stepping keyword families.
type TimeKind = sched.TimeKind

// Observation is the per-well state extracted from one well-control row.
type Observation = sched.Observation

// WidthTable maps (keyword type, column index) to expected string widths.
type WidthTable = sched.WidthTable

// WidthKey addresses one defaultable fixed-width string column.
type WidthKey = sched.WidthKey

// Keyword type constants.
const (
	KwNone     = sched.KwNone
	KwWconhist = sched.KwWconhist
	KwDates    = sched.KwDates
	KwCompdat  = sched.KwCompdat
	KwTstep    = sched.KwTstep
	KwTime     = sched.KwTime
	KwWelspecs = sched.KwWelspecs
	KwGruptree = sched.KwGruptree
	KwInclude  = sched.KwInclude
	KwUntyped  = sched.KwUntyped
	KwWconinj  = sched.KwWconinj
	KwWconinje = sched.KwWconinje
	KwWconinjh = sched.KwWconinjh
	KwWconprod = sched.KwWconprod
)

// Sentinel errors, re-exported for callers that only import the root
// package.
var (
	ErrUnsupportedKeyword = sched.ErrUnsupportedKeyword
	ErrMalformedRecord    = sched.ErrMalformedRecord
	ErrInvalidField       = sched.ErrInvalidField
	ErrTypeMismatch       = sched.ErrTypeMismatch
	ErrUnknownWell        = sched.ErrUnknownWell
)

// LoadWidths reads a width table from a YAML document.
var LoadWidths = sched.LoadWidths
