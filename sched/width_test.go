package sched

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWidths(t *testing.T) {
	doc := `
WELSPECS:
  7: 4
  8: 3
COMPDAT:
  12: 1
`
	table, err := LoadWidths(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, table, 3)

	w, ok := table.Width(KwWelspecs, 7)
	require.True(t, ok)
	require.Equal(t, 4, w)

	w, ok = table.Width(KwCompdat, 12)
	require.True(t, ok)
	require.Equal(t, 1, w)

	_, ok = table.Width(KwWelspecs, 0)
	require.False(t, ok)
	_, ok = table.Width(KwWconhist, 7)
	require.False(t, ok)
}

func TestLoadWidthsEmpty(t *testing.T) {
	table, err := LoadWidths(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, table)
}

func TestLoadWidthsRejectsUnknownKeyword(t *testing.T) {
	_, err := LoadWidths(strings.NewReader("NOSUCHKW:\n  1: 2\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "NOSUCHKW")
}

func TestLoadWidthsRejectsBadValues(t *testing.T) {
	_, err := LoadWidths(strings.NewReader("WELSPECS:\n  7: 0\n"))
	require.Error(t, err)

	_, err = LoadWidths(strings.NewReader("WELSPECS:\n  -1: 4\n"))
	require.Error(t, err)
}

func TestNilWidthTable(t *testing.T) {
	var table WidthTable
	_, ok := table.Width(KwWelspecs, 7)
	require.False(t, ok)
}
