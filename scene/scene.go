// Package scene loads declarative scene files and rasterizes them
//
// A scene is a canvas with a background character and an ordered list of
// layers. Each layer is rasterized into its own surface and blitted onto the
// canvas at its offset, so spaces in later layers leave earlier ones visible.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/lixenwraith/termgl/core"
	"github.com/lixenwraith/termgl/raster"
	"github.com/lixenwraith/termgl/render"
)

var (
	// ErrInvalidScene reports bad canvas or layer settings
	ErrInvalidScene = errors.New("invalid scene")
	// ErrInvalidShape reports a shape that cannot be rasterized
	ErrInvalidShape = errors.New("invalid shape")
)

// Scene is the decoded form of a scene file
type Scene struct {
	Width           int     `mapstructure:"width"`
	Height          int     `mapstructure:"height"`
	Background      string  `mapstructure:"background"`
	BackgroundColor string  `mapstructure:"background_color"`
	Layers          []Layer `mapstructure:"layers"`
}

// Layer is a group of shapes drawn in local coordinates, offset by (X, Y)
// Zero Width or Height extends the layer to the canvas edge
type Layer struct {
	Name       string  `mapstructure:"name"`
	X          int     `mapstructure:"x"`
	Y          int     `mapstructure:"y"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Background string  `mapstructure:"background"`
	Shapes     []Shape `mapstructure:"shapes"`
}

// Load reads and validates a scene file, format follows the file extension
func Load(path string) (*Scene, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	return decode(v)
}

// Parse decodes and validates scene data in format ("yaml", "toml", "json")
func Parse(data []byte, format string) (*Scene, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Scene, error) {
	var s Scene
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks canvas settings and dry-runs every shape
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if _, err := cellRune(s.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidScene, err)
	}
	if _, err := resolveColor(s.BackgroundColor); err != nil {
		return fmt.Errorf("%w: background_color: %v", ErrInvalidScene, err)
	}

	discard := raster.New(raster.SinkFunc(func(int, int, core.Glyph) bool { return false }))
	for li, l := range s.Layers {
		if l.Width < 0 || l.Height < 0 {
			return fmt.Errorf("%w: layer %s: size %dx%d", ErrInvalidScene, l.label(li), l.Width, l.Height)
		}
		if _, err := cellRune(l.Background); err != nil {
			return fmt.Errorf("%w: layer %s: background: %v", ErrInvalidScene, l.label(li), err)
		}
		for si, sh := range l.Shapes {
			if err := sh.Render(discard, ""); err != nil {
				return fmt.Errorf("layer %s shape %d: %w", l.label(li), si, err)
			}
		}
	}
	return nil
}

// Bounds returns the canvas area
func (s *Scene) Bounds() core.Area {
	return core.Area{Width: s.Width, Height: s.Height}
}

// Surface composites all layers onto a canvas filled with the background
// Styles are dropped; use Draw to keep colors
// Shapes that fail to render are skipped. Load and Parse validate, a scene built
// in code should be checked with Validate first to surface those errors
func (s *Scene) Surface() *render.Surface {
	base := render.NewSurface(s.Width, s.Height)
	bg, _ := cellRune(s.Background)
	base.Fill(bg)

	for _, l := range s.Layers {
		area := l.area(s)
		ls := render.NewSurface(area.Width, area.Height)
		lbg, _ := cellRune(l.Background)
		ls.Fill(lbg)

		r := raster.New(ls)
		for _, sh := range l.Shapes {
			_ = sh.Render(r, "")
		}
		base.Blit(l.X, l.Y, ls)
	}
	return base
}

// Draw rasterizes the scene straight into sink, clipped to the canvas
// Shapes without a color use fallback; non-space backgrounds are drawn as filled areas
// Invalid shapes are skipped as in Surface
func (s *Scene) Draw(sink raster.Sink, fallback string) {
	canvas := s.Bounds()
	clipped := raster.Clip(sink, canvas)

	if bg, _ := cellRune(s.Background); bg != render.Transparent {
		style, _ := resolveColor(s.BackgroundColor)
		if style == "" {
			style = fallback
		}
		raster.New(clipped).Rectangle(0, 0, s.Width, s.Height, core.Styled(bg, style), true)
	}

	for _, l := range s.Layers {
		area := l.area(s)
		local := raster.New(raster.Offset(raster.Clip(sink, area.Intersect(canvas)), l.X, l.Y))

		if lbg, _ := cellRune(l.Background); lbg != render.Transparent {
			local.Rectangle(0, 0, area.Width, area.Height, core.Styled(lbg, fallback), true)
		}
		for _, sh := range l.Shapes {
			_ = sh.Render(local, fallback)
		}
	}
}

// area returns the layer rectangle in canvas coordinates
func (l Layer) area(s *Scene) core.Area {
	w, h := l.Width, l.Height
	if w == 0 {
		w = max(s.Width-l.X, 0)
	}
	if h == 0 {
		h = max(s.Height-l.Y, 0)
	}
	return core.Area{X: l.X, Y: l.Y, Width: w, Height: h}
}

func (l Layer) label(i int) string {
	if l.Name != "" {
		return fmt.Sprintf("%q", l.Name)
	}
	return fmt.Sprintf("#%d", i)
}

// cellRune converts a single-character field, empty is Transparent
func cellRune(s string) (rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return render.Transparent, nil
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	default:
		return 0, fmt.Errorf("%q is not a single character", s)
	}
}
