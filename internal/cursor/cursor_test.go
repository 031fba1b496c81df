package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golangsched/schedkw/sched"
)

func TestLineGrouping(t *testing.T) {
	tokens := []string{"A", "B", "/", "C", "/", "/"}
	cur := New(tokens, 0)

	line, done, err := cur.Line()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, []string{"A", "B"}, line)

	line, done, err = cur.Line()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, []string{"C"}, line)

	line, done, err = cur.Line()
	require.NoError(t, err)
	require.True(t, done)
	require.Nil(t, line)

	// The resume index points past the block's end marker.
	require.Equal(t, len(tokens), cur.Index())
}

func TestLineStartsMidStream(t *testing.T) {
	tokens := []string{"DATES", "1", "'JAN'", "2020", "/", "/", "NEXT"}
	cur := New(tokens, 1)

	line, done, err := cur.Line()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, []string{"1", "'JAN'", "2020"}, line)

	_, done, err = cur.Line()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, 6, cur.Index())
	require.Equal(t, "NEXT", tokens[cur.Index()])
}

func TestLineMalformed(t *testing.T) {
	cur := New([]string{"A", "B"}, 0)
	_, _, err := cur.Line()
	require.ErrorIs(t, err, sched.ErrMalformedRecord)

	// Exhausted immediately.
	cur = New([]string{"A", "/"}, 0)
	_, _, err = cur.Line()
	require.NoError(t, err)
	_, _, err = cur.Line()
	require.ErrorIs(t, err, sched.ErrMalformedRecord)
}

func TestBlockVerbatim(t *testing.T) {
	tokens := []string{"1", "2", "/", "3", "/", "/", "NEXT"}
	cur := New(tokens, 0)

	raw, err := cur.Block()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "/", "3", "/"}, raw)
	require.Equal(t, 6, cur.Index())
}

func TestBlockEmpty(t *testing.T) {
	cur := New([]string{"/", "NEXT"}, 0)
	raw, err := cur.Block()
	require.NoError(t, err)
	require.Empty(t, raw)
	require.Equal(t, 1, cur.Index())
}

func TestBlockMalformed(t *testing.T) {
	cur := New([]string{"1", "/", "2"}, 0)
	_, err := cur.Block()
	require.ErrorIs(t, err, sched.ErrMalformedRecord)
}
