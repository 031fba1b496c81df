// Package sched provides the typed model for SCHEDULE-section keywords:
// keyword records, per-variant payloads, and the query operations used to
// build a well/group topology over simulated time.
package sched

import "fmt"

// KeywordType identifies a SCHEDULE keyword variant.
// The value order matches the historical on-disk enumeration and must not
// be reordered.
type KeywordType int

const (
	KwNone KeywordType = iota
	KwWconhist
	KwDates
	KwCompdat
	KwTstep
	KwTime // recognized but not supported
	KwWelspecs
	KwGruptree
	KwInclude
	KwUntyped
	KwWconinj
	KwWconinje
	KwWconinjh
	KwWconprod

	numKeywordTypes
)

func (t KeywordType) String() string {
	switch t {
	case KwNone:
		return "NONE"
	case KwWconhist:
		return "WCONHIST"
	case KwDates:
		return "DATES"
	case KwCompdat:
		return "COMPDAT"
	case KwTstep:
		return "TSTEP"
	case KwTime:
		return "TIME"
	case KwWelspecs:
		return "WELSPECS"
	case KwGruptree:
		return "GRUPTREE"
	case KwInclude:
		return "INCLUDE"
	case KwUntyped:
		return "UNTYPED"
	case KwWconinj:
		return "WCONINJ"
	case KwWconinje:
		return "WCONINJE"
	case KwWconinjh:
		return "WCONINJH"
	case KwWconprod:
		return "WCONPROD"
	default:
		return fmt.Sprintf("KeywordType(%d)", t)
	}
}

// KeywordTypeFromString classifies a keyword name. Matching is exact and
// case-sensitive; unrecognized names classify as KwUntyped, never an error,
// so vendor and unsupported keywords pass through gracefully.
func KeywordTypeFromString(name string) KeywordType {
	switch name {
	case "WCONHIST":
		return KwWconhist
	case "DATES":
		return KwDates
	case "COMPDAT":
		return KwCompdat
	case "TSTEP":
		return KwTstep
	case "TIME":
		return KwTime
	case "WELSPECS":
		return KwWelspecs
	case "GRUPTREE":
		return KwGruptree
	case "INCLUDE":
		return KwInclude
	case "WCONINJ":
		return KwWconinj
	case "WCONINJE":
		return KwWconinje
	case "WCONINJH":
		return KwWconinjh
	case "WCONPROD":
		return KwWconprod
	default:
		return KwUntyped
	}
}

// WellStatus is the declared open/closed state of a well.
// StatusAuto is only meaningful in injector context: the well's effective
// state is computed from its rate rather than stated directly.
type WellStatus int

const (
	StatusDefault WellStatus = iota
	StatusOpen
	StatusStop
	StatusShut
	StatusAuto
)

func (s WellStatus) String() string {
	switch s {
	case StatusDefault:
		return "DEFAULT"
	case StatusOpen:
		return "OPEN"
	case StatusStop:
		return "STOP"
	case StatusShut:
		return "SHUT"
	case StatusAuto:
		return "AUTO"
	default:
		return fmt.Sprintf("WellStatus(%d)", s)
	}
}

// WellStatusFromString looks up a status token. The boolean is false for
// unknown tokens.
func WellStatusFromString(s string) (WellStatus, bool) {
	switch s {
	case "DEFAULT":
		return StatusDefault, true
	case "OPEN":
		return StatusOpen, true
	case "STOP":
		return StatusStop, true
	case "SHUT":
		return StatusShut, true
	case "AUTO":
		return StatusAuto, true
	default:
		return StatusDefault, false
	}
}

// ControlMode is the operating constraint governing a well. The valid
// string set depends on context: history records, injector records, and
// producer records each accept a different subset.
type ControlMode int

const (
	ModeResv ControlMode = iota
	ModeRate
	ModeBHP
	ModeTHP
	ModeGrup
	ModeORat
	ModeWRat
	ModeGRat
	ModeLRat
)

// ModeUnset marks a control-mode column that was defaulted in the source.
// There is no default control mode; consumers must check for it.
const ModeUnset ControlMode = -1

func (m ControlMode) String() string {
	switch m {
	case ModeResv:
		return "RESV"
	case ModeRate:
		return "RATE"
	case ModeBHP:
		return "BHP"
	case ModeTHP:
		return "THP"
	case ModeGrup:
		return "GRUP"
	case ModeORat:
		return "ORAT"
	case ModeWRat:
		return "WRAT"
	case ModeGRat:
		return "GRAT"
	case ModeLRat:
		return "LRAT"
	case ModeUnset:
		return "UNSET"
	default:
		return fmt.Sprintf("ControlMode(%d)", m)
	}
}

// ControlModeFromHistoryString looks up a control mode in history context
// (WCONHIST, WCONINJH). Only the observed-rate modes and RESV are valid.
func ControlModeFromHistoryString(s string) (ControlMode, bool) {
	switch s {
	case "ORAT":
		return ModeORat, true
	case "WRAT":
		return ModeWRat, true
	case "GRAT":
		return ModeGRat, true
	case "LRAT":
		return ModeLRat, true
	case "RESV":
		return ModeResv, true
	default:
		return ModeUnset, false
	}
}

// ControlModeFromInjectorString looks up a control mode in injector context
// (WCONINJE, WCONINJ).
func ControlModeFromInjectorString(s string) (ControlMode, bool) {
	switch s {
	case "RATE":
		return ModeRate, true
	case "RESV":
		return ModeResv, true
	case "BHP":
		return ModeBHP, true
	case "THP":
		return ModeTHP, true
	case "GRUP":
		return ModeGrup, true
	default:
		return ModeUnset, false
	}
}

// ControlModeFromProducerString looks up a control mode in producer context
// (WCONPROD): the history rate modes plus pressure and group control.
func ControlModeFromProducerString(s string) (ControlMode, bool) {
	if m, ok := ControlModeFromHistoryString(s); ok {
		return m, true
	}
	switch s {
	case "BHP":
		return ModeBHP, true
	case "THP":
		return ModeTHP, true
	case "GRUP":
		return ModeGrup, true
	default:
		return ModeUnset, false
	}
}

// Phase is an injected or produced phase. There is no default phase.
type Phase int

const (
	PhaseWater Phase = iota
	PhaseGas
	PhaseOil
)

func (p Phase) String() string {
	switch p {
	case PhaseWater:
		return "WATER"
	case PhaseGas:
		return "GAS"
	case PhaseOil:
		return "OIL"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// PhaseFromString looks up a phase token.
func PhaseFromString(s string) (Phase, bool) {
	switch s {
	case "WATER":
		return PhaseWater, true
	case "GAS":
		return PhaseGas, true
	case "OIL":
		return PhaseOil, true
	default:
		return PhaseWater, false
	}
}

// WellType distinguishes injectors from producers, derived from which
// keyword variant a well row came from.
type WellType int

const (
	WellInjector WellType = iota + 1
	WellProducer
)

func (t WellType) String() string {
	switch t {
	case WellInjector:
		return "INJECTOR"
	case WellProducer:
		return "PRODUCER"
	default:
		return fmt.Sprintf("WellType(%d)", t)
	}
}

// TimeKind identifies the two time-stepping keyword families.
type TimeKind int

const (
	TimeDates TimeKind = iota + 1
	TimeTstep
)

func (k TimeKind) String() string {
	switch k {
	case TimeDates:
		return "DATES"
	case TimeTstep:
		return "TSTEP"
	default:
		return fmt.Sprintf("TimeKind(%d)", k)
	}
}

// TimeKindFromString looks up a time-step kind token.
func TimeKindFromString(s string) (TimeKind, bool) {
	switch s {
	case "DATES":
		return TimeDates, true
	case "TSTEP":
		return TimeTstep, true
	default:
		return 0, false
	}
}
