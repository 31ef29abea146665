package scene

import (
	"fmt"

	"github.com/lixenwraith/termgl/core"
	"github.com/lixenwraith/termgl/raster"
	"github.com/lixenwraith/termgl/terminal"
)

// Shape kinds
const (
	KindPixel        = "pixel"
	KindStraightLine = "straight_line"
	KindLine         = "line"
	KindRectangle    = "rectangle"
	KindEllipse      = "ellipse"
	KindPolygon      = "polygon"
	KindText         = "text"
	KindBox          = "box"
)

// DefaultChar is drawn when a shape sets no char
const DefaultChar = '#'

// Shape is one primitive; which fields apply depends on Kind
type Shape struct {
	Kind string `mapstructure:"kind"`

	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`

	X2 int `mapstructure:"x2"` // line
	Y2 int `mapstructure:"y2"`

	Width  int  `mapstructure:"width"` // rectangle, box
	Height int  `mapstructure:"height"`
	Fill   bool `mapstructure:"fill"` // rectangle, ellipse

	Length    int    `mapstructure:"length"` // straight_line
	Direction string `mapstructure:"direction"`

	A int `mapstructure:"a"` // ellipse radii, centered at (x, y)
	B int `mapstructure:"b"`

	Points [][]int `mapstructure:"points"` // polygon, [[x, y], ...]

	Text  string `mapstructure:"text"`
	Align string `mapstructure:"align"`

	Line string `mapstructure:"line"` // box: single, double, rounded, heavy, ascii

	Char  string `mapstructure:"char"`
	Color string `mapstructure:"color"`
}

// Render draws the shape through r; fallback styles shapes without a color
// Errors wrap ErrInvalidShape and nothing is drawn
func (sh Shape) Render(r raster.Rasterizer, fallback string) error {
	g, err := sh.glyph(fallback)
	if err != nil {
		return err
	}

	switch sh.Kind {
	case KindPixel:
		r.Pixel(sh.X, sh.Y, g)

	case KindStraightLine:
		dir, err := core.ParseDirection(sh.Direction)
		if err != nil {
			return invalid(sh, err)
		}
		r.StraightLine(sh.X, sh.Y, sh.Length, dir, g)

	case KindLine:
		r.Line(sh.X, sh.Y, sh.X2, sh.Y2, g)

	case KindRectangle:
		r.Rectangle(sh.X, sh.Y, sh.Width, sh.Height, g, sh.Fill)

	case KindEllipse:
		if sh.A < 0 || sh.B < 0 {
			return invalid(sh, fmt.Errorf("negative radius %d,%d", sh.A, sh.B))
		}
		r.Ellipse(sh.X, sh.Y, sh.A, sh.B, g, sh.Fill)

	case KindPolygon:
		points, err := sh.points()
		if err != nil {
			return invalid(sh, err)
		}
		r.Polygon(points, g)

	case KindText:
		align, err := core.ParseAlignment(sh.Align)
		if err != nil {
			return invalid(sh, err)
		}
		r.TextAligned(sh.X, sh.Y, sh.Text, align, g.Style)

	case KindBox:
		line, err := raster.ParseLineType(sh.Line)
		if err != nil {
			return invalid(sh, err)
		}
		r.Box(sh.X, sh.Y, sh.Width, sh.Height, line, g.Style)

	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidShape, sh.Kind)
	}
	return nil
}

func (sh Shape) glyph(fallback string) (core.Glyph, error) {
	c := rune(DefaultChar)
	if sh.Char != "" {
		var err error
		if c, err = cellRune(sh.Char); err != nil {
			return core.Glyph{}, invalid(sh, err)
		}
	}
	style, err := resolveColor(sh.Color)
	if err != nil {
		return core.Glyph{}, invalid(sh, err)
	}
	if style == "" {
		style = fallback
	}
	return core.Styled(c, style), nil
}

func (sh Shape) points() ([]core.Point, error) {
	if len(sh.Points) == 0 {
		return nil, fmt.Errorf("polygon needs at least one point")
	}
	out := make([]core.Point, len(sh.Points))
	for i, p := range sh.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: want [x, y], got %v", i, p)
		}
		out[i] = core.Pt(p[0], p[1])
	}
	return out, nil
}

func invalid(sh Shape, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidShape, sh.Kind, err)
}

// resolveColor maps a color field to a style token, empty stays empty
func resolveColor(value string) (string, error) {
	return terminal.LookupStyle(value)
}
