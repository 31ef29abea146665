package raster

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/termgl/core"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineASCII                   // +-+|++
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineASCII:   {'+', '-', '+', '|', '+', '+'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

var lineTypeNames = map[string]LineType{
	"single":  LineSingle,
	"double":  LineDouble,
	"rounded": LineRounded,
	"heavy":   LineHeavy,
	"ascii":   LineASCII,
}

// ParseLineType maps a config name to a LineType, "" is single
func ParseLineType(s string) (LineType, error) {
	if s == "" {
		return LineSingle, nil
	}
	if lt, ok := lineTypeNames[strings.ToLower(s)]; ok {
		return lt, nil
	}
	return 0, fmt.Errorf("unknown line type %q", s)
}

// Box draws a width x height frame with box drawing corners and edges
// Same footprint as an outlined Rectangle; frames smaller than 2x2 draw nothing
func (r Rasterizer) Box(x, y, width, height int, line LineType, style string) {
	if width < 2 || height < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	glyph := func(i int) core.Glyph { return core.Glyph{Rune: chars[i], Style: style} }

	right, bottom := x+width-1, y+height-1
	r.StraightLine(x+1, y, width-2, core.DirRight, glyph(boxH))
	r.StraightLine(x+1, bottom, width-2, core.DirRight, glyph(boxH))
	r.StraightLine(x, y+1, height-2, core.DirDown, glyph(boxV))
	r.StraightLine(right, y+1, height-2, core.DirDown, glyph(boxV))

	r.sink.Put(x, y, glyph(boxTL))
	r.sink.Put(right, y, glyph(boxTR))
	r.sink.Put(x, bottom, glyph(boxBL))
	r.sink.Put(right, bottom, glyph(boxBR))
}
