package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerm(mode ColorMode) (Terminal, *bytes.Buffer, *WriterBackend) {
	var out bytes.Buffer
	b := NewWriterBackend(&out, 20, 10)
	return New(b, mode), &out, b
}

func TestMoveCursorOneBased(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "\x1b[1;1H"},
		{1, 2, "\x1b[3;2H"},
		{9, 99, "\x1b[100;10H"},
		{1499, 0, "\x1b[1;1500H"},
	}
	for _, tt := range tests {
		term, out, _ := newTestTerm(ColorModeTrueColor)
		term.MoveCursor(tt.x, tt.y)
		require.NoError(t, term.Flush())
		assert.Equal(t, tt.want, out.String())
	}
}

func TestMoveCursorNegativeIgnored(t *testing.T) {
	term, out, _ := newTestTerm(ColorModeTrueColor)
	term.MoveCursor(-1, 3)
	term.MoveCursor(3, -1)
	require.NoError(t, term.Flush())
	assert.Empty(t, out.String())
}

func TestEmit(t *testing.T) {
	term, out, _ := newTestTerm(ColorModeTrueColor)
	term.Emit('a', "")
	term.Emit('é', "")
	term.Emit('#', Red)
	assert.Empty(t, out.String(), "output must stay buffered until Flush")

	require.NoError(t, term.Flush())
	assert.Equal(t, "aé\x1b[31m#\x1b[0m", out.String())
}

func TestEmitDowngradesIn256(t *testing.T) {
	term, out, _ := newTestTerm(ColorMode256)
	term.Emit('x', RGBCode(RGB{255, 0, 0}, Fg))
	term.Emit('y', Green)
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[0;38;5;196mx\x1b[0m\x1b[32my\x1b[0m", out.String())
}

func TestClearAndCursorVisibility(t *testing.T) {
	term, out, _ := newTestTerm(ColorModeTrueColor)
	term.ClearScreen()
	term.SetCursorVisible(false)
	term.SetCursorVisible(true)
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[2J\x1b[H\x1b[?25l\x1b[?25h", out.String())
}

func TestSizeFollowsBackend(t *testing.T) {
	term, _, b := newTestTerm(ColorModeTrueColor)
	w, h := term.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)

	b.SetSize(80, 24)
	w, h = term.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}

func TestParseColorMode(t *testing.T) {
	m, ok := ParseColorMode("256")
	assert.True(t, ok)
	assert.Equal(t, ColorMode256, m)

	m, ok = ParseColorMode("TrueColor")
	assert.True(t, ok)
	assert.Equal(t, ColorModeTrueColor, m)

	_, ok = ParseColorMode("16")
	assert.False(t, ok)
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"red", RGB{255, 0, 0}, 196},
		{"green", RGB{0, 255, 0}, 46},
		{"blue", RGB{0, 0, 255}, 21},
		{"mid gray uses ramp", RGB{128, 128, 128}, 244},
		{"orange", RGB{255, 135, 0}, 208},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBTo256(tt.c))
		})
	}
}

func TestDetectColorModeEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"empty", nil, ColorMode256},
		{"colorterm", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"kitty", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"direct term", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"256 term", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectColorModeEnv(func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmergencyReset(t *testing.T) {
	var out bytes.Buffer
	EmergencyReset(&out)
	assert.Equal(t, "\x1b[0m\x1b[?25h", out.String())
}
