package core

// Glyph is a character with an optional style token
// Style is a pre-formatted escape sequence; the rasterizer forwards it untouched
type Glyph struct {
	Rune  rune
	Style string
}

// Plain returns an unstyled glyph
func Plain(r rune) Glyph {
	return Glyph{Rune: r}
}

// Styled returns a glyph carrying a style token
func Styled(r rune, style string) Glyph {
	return Glyph{Rune: r, Style: style}
}
