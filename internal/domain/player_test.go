package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer("Ada", red)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name())
	assert.Equal(t, red, p.Disc())
	assert.Equal(t, "Ada (red)", p.String())

	_, err = NewPlayer("Ada", NoDisc)
	assert.True(t, errors.Is(err, ErrNoDisc))

	_, err = NewPlayer("  ", red)
	assert.Equal(t, ErrEmptyPlayerName, err)
}

func TestDiscEquality(t *testing.T) {
	assert.Equal(t, NewDisc(Red), red)
	assert.NotEqual(t, red, yellow)
	assert.True(t, NoDisc.IsEmpty())
	assert.True(t, NewDisc(NoColor).IsEmpty())
	assert.Equal(t, NoDisc, NewDisc(Color{}))
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("purple")
	assert.True(t, ok)
	assert.Equal(t, Purple, c)

	_, ok = ColorByName("mauve")
	assert.False(t, ok)

	assert.Equal(t, "none", NoColor.String())
	assert.Equal(t, "#0a0b0c", Color{R: 10, G: 11, B: 12}.String())
}

func TestPositionEquality(t *testing.T) {
	assert.Equal(t, NewPosition(2, 3), Position{Row: 2, Column: 3})
	assert.NotEqual(t, NewPosition(2, 3), NewPosition(3, 2))
	assert.Equal(t, "(row 2, column 3)", NewPosition(2, 3).String())
}
