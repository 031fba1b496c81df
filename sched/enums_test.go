package sched

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywordTypeRoundTrip(t *testing.T) {
	for typ := KwNone; typ < numKeywordTypes; typ++ {
		name := typ.String()
		got := KeywordTypeFromString(name)
		switch typ {
		case KwNone, KwUntyped:
			// Not real deck keywords; their names classify as UNTYPED.
			require.Equal(t, KwUntyped, got, "name %q", name)
		default:
			require.Equal(t, typ, got, "name %q", name)
		}
	}
}

func TestKeywordTypeFromStringUnknown(t *testing.T) {
	require.Equal(t, KwUntyped, KeywordTypeFromString("FOOBAR"))
	require.Equal(t, KwUntyped, KeywordTypeFromString(""))
	// Classification is case-sensitive.
	require.Equal(t, KwUntyped, KeywordTypeFromString("dates"))
}

func TestWellStatusRoundTrip(t *testing.T) {
	for _, s := range []WellStatus{StatusDefault, StatusOpen, StatusStop, StatusShut, StatusAuto} {
		got, ok := WellStatusFromString(s.String())
		require.True(t, ok, "status %s", s)
		require.Equal(t, s, got)
	}
	_, ok := WellStatusFromString("CLOSED")
	require.False(t, ok)
}

func TestControlModeContexts(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(string) (ControlMode, bool)
		valid  map[string]ControlMode
		reject []string
	}{
		{
			name:   "history",
			lookup: ControlModeFromHistoryString,
			valid: map[string]ControlMode{
				"ORAT": ModeORat, "WRAT": ModeWRat, "GRAT": ModeGRat,
				"LRAT": ModeLRat, "RESV": ModeResv,
			},
			reject: []string{"RATE", "BHP", "THP", "GRUP", "orat"},
		},
		{
			name:   "injector",
			lookup: ControlModeFromInjectorString,
			valid: map[string]ControlMode{
				"RATE": ModeRate, "RESV": ModeResv, "BHP": ModeBHP,
				"THP": ModeTHP, "GRUP": ModeGrup,
			},
			reject: []string{"ORAT", "WRAT", "GRAT", "LRAT"},
		},
		{
			name:   "producer",
			lookup: ControlModeFromProducerString,
			valid: map[string]ControlMode{
				"ORAT": ModeORat, "WRAT": ModeWRat, "GRAT": ModeGRat,
				"LRAT": ModeLRat, "RESV": ModeResv, "BHP": ModeBHP,
				"THP": ModeTHP, "GRUP": ModeGrup,
			},
			reject: []string{"RATE"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for tok, want := range tt.valid {
				got, ok := tt.lookup(tok)
				require.True(t, ok, "token %q", tok)
				require.Equal(t, want, got, "token %q", tok)
				require.Equal(t, tok, got.String())
			}
			for _, tok := range tt.reject {
				_, ok := tt.lookup(tok)
				require.False(t, ok, "token %q", tok)
			}
		})
	}
}

func TestPhaseRoundTrip(t *testing.T) {
	for _, p := range []Phase{PhaseWater, PhaseGas, PhaseOil} {
		got, ok := PhaseFromString(p.String())
		require.True(t, ok)
		require.Equal(t, p, got)
	}
	_, ok := PhaseFromString("STEAM")
	require.False(t, ok)
}

func TestTimeKindRoundTrip(t *testing.T) {
	for _, k := range []TimeKind{TimeDates, TimeTstep} {
		got, ok := TimeKindFromString(k.String())
		require.True(t, ok)
		require.Equal(t, k, got)
	}
	_, ok := TimeKindFromString("TIME")
	require.False(t, ok)
}
