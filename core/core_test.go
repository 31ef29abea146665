package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionStep(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{Direction(9), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Step()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"left", "right", "up", "down"} {
		d, err := ParseDirection(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.String())
	}

	d, err := ParseDirection(" Down ")
	require.NoError(t, err)
	assert.Equal(t, DirDown, d)

	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, DirRight, d)

	_, err = ParseDirection("diagonal")
	assert.Error(t, err)
}

func TestAlignmentOffset(t *testing.T) {
	tests := []struct {
		align TextAlignment
		n     int
		want  int
	}{
		{AlignLeft, 5, 0},
		{AlignCenter, 5, 2},
		{AlignCenter, 4, 2},
		{AlignCenter, 1, 0},
		{AlignRight, 5, 5},
		{AlignRight, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.align.Offset(tt.n), "%s offset of %d", tt.align, tt.n)
	}
}

func TestParseAlignment(t *testing.T) {
	a, err := ParseAlignment("centre")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)

	a, err = ParseAlignment("")
	require.NoError(t, err)
	assert.Equal(t, AlignLeft, a)

	_, err = ParseAlignment("justify")
	assert.Error(t, err)
}

func TestAreaIntersect(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 10, Height: 5}

	got := a.Intersect(Area{X: 8, Y: -2, Width: 5, Height: 4})
	assert.Equal(t, Area{X: 8, Y: 0, Width: 2, Height: 2}, got)

	assert.True(t, a.Intersect(Area{X: 10, Y: 0, Width: 3, Height: 3}).Empty())
	assert.True(t, a.Intersect(Area{X: -5, Y: -5, Width: 5, Height: 20}).Empty())
	assert.Equal(t, a, a.Intersect(Area{X: -1, Y: -1, Width: 20, Height: 20}))
}

func TestAreaContains(t *testing.T) {
	a := Area{X: 1, Y: 1, Width: 2, Height: 2}
	assert.True(t, a.Contains(1, 1))
	assert.True(t, a.Contains(2, 2))
	assert.False(t, a.Contains(3, 2))
	assert.False(t, a.Contains(0, 1))
	assert.False(t, Area{Width: 0, Height: 3}.Contains(0, 0))
}

func TestPointAndGlyph(t *testing.T) {
	assert.Equal(t, Point{X: 3, Y: -1}, Pt(3, -1))
	assert.Equal(t, Glyph{Rune: 'x'}, Plain('x'))
	assert.Equal(t, Glyph{Rune: 'x', Style: "\x1b[31m"}, Styled('x', "\x1b[31m"))
}
