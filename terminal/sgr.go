package terminal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ColorType tags how a parsed color is expressed
type ColorType uint8

const (
	ColorNone    ColorType = iota // not set, terminal default
	ColorPalette                  // 256-color index, 0-15 are the 4-bit colors
	ColorRGB                      // 24-bit
)

// Color is a parsed SGR color
type Color struct {
	Type  ColorType
	Index uint8
	RGB   RGB
}

// Style is the decoded form of one or more concatenated SGR tokens
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// ParseStyle decodes concatenated SGR sequences ("\x1b[...m")
// Returns false if token contains anything else
func ParseStyle(token string) (Style, bool) {
	var s Style
	if !IsStyle(token) {
		return s, false
	}

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	state := byte(ansi.NormalState)
	for len(token) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(token, state, p)
		if n == 0 || !isSGR(seq, p) {
			return Style{}, false
		}
		if !s.apply(p.Params()) {
			return Style{}, false
		}
		token = token[n:]
		state = newState
	}
	return s, true
}

// isSGR reports whether the last decoded sequence is a complete CSI ... m
// without private prefix or intermediate bytes
func isSGR(seq string, p *ansi.Parser) bool {
	if !ansi.HasCsiPrefix(seq) || !strings.HasSuffix(seq, "m") {
		return false
	}
	cmd := ansi.Cmd(p.Command())
	return cmd.Final() == 'm' && cmd.Prefix() == 0 && cmd.Intermediate() == 0
}

// apply folds one parameter list into the style
// Missing parameters read as 0, so "\x1b[m" and "\x1b[;1m" follow SGR reset rules
func (s *Style) apply(params ansi.Params) bool {
	if len(params) == 0 {
		*s = Style{}
		return true
	}
	nums := make([]int, len(params))
	for i, param := range params {
		nums[i] = param.Param(0)
	}

	for i := 0; i < len(nums); i++ {
		n := nums[i]
		switch {
		case n == 0:
			*s = Style{}
		case n == 1:
			s.Attrs |= AttrBold
		case n == 2:
			s.Attrs |= AttrDim
		case n == 3:
			s.Attrs |= AttrItalic
		case n == 4:
			s.Attrs |= AttrUnderline
		case n == 5:
			s.Attrs |= AttrBlink
		case n == 7:
			s.Attrs |= AttrReverse
		case n >= 30 && n <= 37:
			s.Fg = Color{Type: ColorPalette, Index: uint8(n - 30)}
		case n >= 90 && n <= 97:
			s.Fg = Color{Type: ColorPalette, Index: uint8(n - 90 + 8)}
		case n >= 40 && n <= 47:
			s.Bg = Color{Type: ColorPalette, Index: uint8(n - 40)}
		case n >= 100 && n <= 107:
			s.Bg = Color{Type: ColorPalette, Index: uint8(n - 100 + 8)}
		case n == 39:
			s.Fg = Color{}
		case n == 49:
			s.Bg = Color{}
		case n == 38 || n == 48:
			c, used, ok := extendedColor(nums[i+1:])
			if !ok {
				return false
			}
			if n == 38 {
				s.Fg = c
			} else {
				s.Bg = c
			}
			i += used
		}
		// Other parameters are valid SGR but carry nothing we render
	}
	return true
}

// extendedColor decodes the tail of a 38/48 parameter: 5;n or 2;r;g;b
func extendedColor(p []int) (Color, int, bool) {
	if len(p) >= 2 && p[0] == 5 && p[1] <= 255 {
		return Color{Type: ColorPalette, Index: uint8(p[1])}, 2, true
	}
	if len(p) >= 4 && p[0] == 2 && p[1] <= 255 && p[2] <= 255 && p[3] <= 255 {
		return Color{Type: ColorRGB, RGB: RGB{R: uint8(p[1]), G: uint8(p[2]), B: uint8(p[3])}}, 4, true
	}
	return Color{}, 0, false
}

// Encode renders the style as a single SGR token for the given color mode
// ColorMode256 maps 24-bit colors to the nearest palette index
func (s Style) Encode(mode ColorMode) string {
	params := make([]string, 0, 8)
	params = append(params, "0")
	for _, a := range [...]struct {
		bit  Attr
		code string
	}{
		{AttrBold, "1"}, {AttrDim, "2"}, {AttrItalic, "3"},
		{AttrUnderline, "4"}, {AttrBlink, "5"}, {AttrReverse, "7"},
	} {
		if s.Attrs&a.bit != 0 {
			params = append(params, a.code)
		}
	}
	params = appendColor(params, s.Fg, Fg, mode)
	params = appendColor(params, s.Bg, Bg, mode)
	return "\x1b[" + strings.Join(params, ";") + "m"
}

func appendColor(params []string, c Color, kind ColorKind, mode ColorMode) []string {
	base, ext := 30, "38"
	if kind == Bg {
		base, ext = 40, "48"
	}
	switch c.Type {
	case ColorPalette:
		if c.Index < 8 {
			return append(params, strconv.Itoa(base+int(c.Index)))
		}
		if c.Index < 16 {
			return append(params, strconv.Itoa(base+60+int(c.Index-8)))
		}
		return append(params, ext, "5", strconv.Itoa(int(c.Index)))
	case ColorRGB:
		if mode == ColorMode256 {
			return append(params, ext, "5", strconv.Itoa(int(RGBTo256(c.RGB))))
		}
		return append(params, ext, "2",
			strconv.Itoa(int(c.RGB.R)), strconv.Itoa(int(c.RGB.G)), strconv.Itoa(int(c.RGB.B)))
	}
	return params
}

// Downgrade rewrites 24-bit colors in token as 256-palette colors
// Tokens without 24-bit colors, or that do not parse, are returned unchanged
func Downgrade(token string) string {
	s, ok := ParseStyle(token)
	if !ok || (s.Fg.Type != ColorRGB && s.Bg.Type != ColorRGB) {
		return token
	}
	return s.Encode(ColorMode256)
}
