package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSplitDates(t *testing.T) {
	dates := []time.Time{
		day(2020, time.January, 1),
		day(2020, time.February, 1),
		day(2020, time.March, 1),
	}
	kw := NewKeyword(KwDates, "DATES", &Dates{Times: dates})
	kw.SetRestartIndex(4)

	singles, err := kw.SplitDates()
	require.NoError(t, err)
	require.Len(t, singles, len(dates))

	for i, single := range singles {
		require.Equal(t, KwDates, single.Type())
		require.Equal(t, 4, single.RestartIndex())
		got, err := single.AdvanceTime(day(1999, time.January, 1))
		require.NoError(t, err)
		require.Equal(t, dates[i], got)
	}

	// Splitting leaves the source untouched.
	p, err := kw.Dates()
	require.NoError(t, err)
	require.Len(t, p.Times, 3)
}

func TestSplitDatesTypeMismatch(t *testing.T) {
	kw := NewKeyword(KwTstep, "TSTEP", &Tstep{Deltas: []float64{1}})
	_, err := kw.SplitDates()
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestAdvanceTime(t *testing.T) {
	t0 := day(2020, time.June, 15)

	dates := NewKeyword(KwDates, "DATES", &Dates{Times: []time.Time{day(2021, time.January, 1)}})
	got, err := dates.AdvanceTime(t0)
	require.NoError(t, err)
	// DATES is absolute: the current time is irrelevant.
	require.Equal(t, day(2021, time.January, 1), got)

	tstep := NewKeyword(KwTstep, "TSTEP", &Tstep{Deltas: []float64{10, 5}})
	got, err = tstep.AdvanceTime(day(2020, time.January, 1).AddDate(0, 0, 99))
	require.NoError(t, err)
	require.Equal(t, day(2020, time.January, 1).AddDate(0, 0, 114), got)

	welspecs := NewKeyword(KwWelspecs, "WELSPECS", &Welspecs{})
	_, err = welspecs.AdvanceTime(t0)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestAdvanceTimeFractionalDays(t *testing.T) {
	tstep := NewKeyword(KwTstep, "TSTEP", &Tstep{Deltas: []float64{0.5}})
	got, err := tstep.AdvanceTime(day(2020, time.January, 1))
	require.NoError(t, err)
	require.Equal(t, time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC), got)
}

func TestTimeKind(t *testing.T) {
	kind, ok := NewKeyword(KwDates, "DATES", &Dates{}).TimeKind()
	require.True(t, ok)
	require.Equal(t, TimeDates, kind)

	kind, ok = NewKeyword(KwTstep, "TSTEP", &Tstep{}).TimeKind()
	require.True(t, ok)
	require.Equal(t, TimeTstep, kind)

	_, ok = wconhistFixture().TimeKind()
	require.False(t, ok)
}

func TestWellNamesDistinctOrdered(t *testing.T) {
	kw := NewKeyword(KwCompdat, "COMPDAT", &Compdat{
		Rows: []CompdatRow{
			{Well: "OP2"},
			{Well: "OP1"},
			{Well: "OP2"}, // duplicate rows are allowed
			{Well: "WI1"},
		},
	})
	require.Equal(t, []string{"OP2", "OP1", "WI1"}, kw.WellNames())
}

func TestWellNamesEmptyForNonWellTypes(t *testing.T) {
	kw := NewKeyword(KwDates, "DATES", &Dates{Times: []time.Time{day(2020, time.January, 1)}})
	require.Empty(t, kw.WellNames())

	raw := NewKeyword(KwUntyped, "FOOBAR", &Raw{Tokens: []string{"x"}})
	require.Empty(t, raw.WellNames())
}

func TestHasWellNeverFails(t *testing.T) {
	kw := wconhistFixture()
	require.True(t, kw.HasWell("OP1"))
	require.False(t, kw.HasWell("NOPE"))

	dates := NewKeyword(KwDates, "DATES", &Dates{})
	require.False(t, dates.HasWell("OP1"))
}

func TestWellObservationsLastRowWins(t *testing.T) {
	kw := NewKeyword(KwWconhist, "WCONHIST", &Wconhist{
		Rows: []WconhistRow{
			{Well: "W1", Status: StatusOpen, Mode: ModeORat, OilRate: 500},
			{Well: "W2", Status: StatusOpen, Mode: ModeORat, OilRate: 100},
			{Well: "W1", Status: StatusShut, Mode: ModeORat},
		},
	})

	obs, err := kw.WellObservations()
	require.NoError(t, err)
	require.Len(t, obs, 2)
	require.Equal(t, StatusShut, obs["W1"].Status)
	require.Equal(t, WellProducer, obs["W1"].Type)
	require.Equal(t, StatusOpen, obs["W2"].Status)
}

func TestWellObservationsTypeMismatch(t *testing.T) {
	kw := NewKeyword(KwWelspecs, "WELSPECS", &Welspecs{Rows: []WelspecsRow{{Well: "OP1"}}})
	_, err := kw.WellObservations()
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestWellObservationsInjectors(t *testing.T) {
	kw := NewKeyword(KwWconinje, "WCONINJE", &Wconinje{
		Rows: []WconinjeRow{
			{Well: "WI1", Phase: PhaseWater, Status: StatusAuto, Mode: ModeRate, SurfaceRate: 2500},
		},
	})
	obs, err := kw.WellObservations()
	require.NoError(t, err)
	require.Equal(t, WellInjector, obs["WI1"].Type)
	require.Equal(t, PhaseWater, obs["WI1"].Phase)
	require.Equal(t, 2500.0, obs["WI1"].Rate)
}

func TestWellIsOpen(t *testing.T) {
	kw := NewKeyword(KwWconhist, "WCONHIST", &Wconhist{
		Rows: []WconhistRow{
			{Well: "W1", Status: StatusOpen, Mode: ModeORat, OilRate: 500},
			{Well: "W1", Status: StatusShut, Mode: ModeORat}, // last row wins
			{Well: "W2", Status: StatusOpen, Mode: ModeORat},
			{Well: "W3", Status: StatusStop, Mode: ModeORat},
		},
	})

	open, err := kw.WellIsOpen("W1")
	require.NoError(t, err)
	require.False(t, open)

	open, err = kw.WellIsOpen("W2")
	require.NoError(t, err)
	require.True(t, open)

	open, err = kw.WellIsOpen("W3")
	require.NoError(t, err)
	require.False(t, open)

	_, err = kw.WellIsOpen("MISSING")
	require.ErrorIs(t, err, ErrUnknownWell)
}

func TestWellIsOpenAutoInjector(t *testing.T) {
	kw := NewKeyword(KwWconinje, "WCONINJE", &Wconinje{
		Rows: []WconinjeRow{
			{Well: "WI1", Phase: PhaseWater, Status: StatusAuto, Mode: ModeRate, SurfaceRate: 2500},
			{Well: "WI2", Phase: PhaseWater, Status: StatusAuto, Mode: ModeRate, SurfaceRate: 0},
		},
	})

	// AUTO on an injector resolves through the rate.
	open, err := kw.WellIsOpen("WI1")
	require.NoError(t, err)
	require.True(t, open)

	open, err = kw.WellIsOpen("WI2")
	require.NoError(t, err)
	require.False(t, open)
}

func TestWellIsOpenAutoProducerRejected(t *testing.T) {
	kw := NewKeyword(KwWconprod, "WCONPROD", &Wconprod{
		Rows: []WconprodRow{
			{Well: "OP1", Status: StatusAuto, Mode: ModeORat, OilRate: 100},
		},
	})
	_, err := kw.WellIsOpen("OP1")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestGroupTreeEdges(t *testing.T) {
	kw := NewKeyword(KwGruptree, "GRUPTREE", &Gruptree{
		Rows: []GruptreeRow{
			{Child: "G1", Parent: "FIELD"},
			{Child: "G2", Parent: "G1"},
		},
	})

	children, parents, err := kw.GroupTreeEdges()
	require.NoError(t, err)
	require.Equal(t, []string{"G1", "G2"}, children)
	require.Equal(t, []string{"FIELD", "G1"}, parents)

	_, _, err = wconhistFixture().GroupTreeEdges()
	require.ErrorIs(t, err, ErrTypeMismatch)
}
