package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termgl/core"
)

func TestBoxCorners(t *testing.T) {
	rec := newRecorder()
	New(rec).Box(1, 1, 4, 3, LineSingle, "")

	want := map[core.Point]rune{
		{X: 1, Y: 1}: '┌', {X: 2, Y: 1}: '─', {X: 3, Y: 1}: '─', {X: 4, Y: 1}: '┐',
		{X: 1, Y: 2}: '│', {X: 4, Y: 2}: '│',
		{X: 1, Y: 3}: '└', {X: 2, Y: 3}: '─', {X: 3, Y: 3}: '─', {X: 4, Y: 3}: '┘',
	}
	got := make(map[core.Point]rune)
	for p, g := range rec.cells {
		got[p] = g.Rune
	}
	assert.Equal(t, want, got)
}

func TestBoxFootprintMatchesRectangle(t *testing.T) {
	box, rect := newRecorder(), newRecorder()
	New(box).Box(-2, 3, 6, 5, LineHeavy, "")
	New(rect).Rectangle(-2, 3, 6, 5, core.Plain('#'), false)
	assert.Equal(t, rect.set(), box.set())
}

func TestBoxTooSmall(t *testing.T) {
	rec := newRecorder()
	r := New(rec)
	r.Box(0, 0, 1, 5, LineSingle, "")
	r.Box(0, 0, 5, 1, LineSingle, "")
	assert.Empty(t, rec.writes)
}

func TestParseLineType(t *testing.T) {
	lt, err := ParseLineType("")
	require.NoError(t, err)
	assert.Equal(t, LineSingle, lt)

	lt, err = ParseLineType("Rounded")
	require.NoError(t, err)
	assert.Equal(t, LineRounded, lt)

	_, err = ParseLineType("dotted")
	assert.Error(t, err)
}
