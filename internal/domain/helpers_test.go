package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red    = NewDisc(Red)
	yellow = NewDisc(Yellow)
	green  = NewDisc(Green)
	blue   = NewDisc(Blue)
)

func newBoard(t *testing.T, rows, columns int) *GameBoard {
	t.Helper()
	b, err := NewGameBoard(rows, columns)
	require.NoError(t, err)
	return b
}

func place(t *testing.T, b *GameBoard, column int, disc Disc) Position {
	t.Helper()
	pos, err := b.PlaceDisc(Column(column), disc)
	require.NoError(t, err)
	return pos
}

// raise stacks n filler discs in column, alternating two colors that never
// take part in the runs under test
func raise(t *testing.T, b *GameBoard, column, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		filler := green
		if i%2 == 1 {
			filler = blue
		}
		place(t, b, column, filler)
	}
}

func newPlayers(t *testing.T, names ...string) []Player {
	t.Helper()
	players := make([]Player, 0, len(names))
	for i, name := range names {
		p, err := NewPlayer(name, NewDisc(Palette[i]))
		require.NoError(t, err)
		players = append(players, p)
	}
	return players
}

func assertViolation(t *testing.T, kind ContractKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a %s violation", kind)
		v, ok := r.(*ContractViolation)
		require.True(t, ok, "panic value %T is not a contract violation", r)
		require.Equal(t, kind, v.Kind)
	}()
	fn()
}
