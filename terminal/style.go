package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind selects foreground or background for generated style tokens
type ColorKind uint8

const (
	Fg ColorKind = iota
	Bg
)

// Escape marker every valid style token starts with
const Escape = '\x1b'

// Named 4-bit style tokens
const (
	Reset = "\x1b[0m"

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	BrightBlack   = "\x1b[90m"
	BrightRed     = "\x1b[91m"
	BrightGreen   = "\x1b[92m"
	BrightYellow  = "\x1b[93m"
	BrightBlue    = "\x1b[94m"
	BrightMagenta = "\x1b[95m"
	BrightCyan    = "\x1b[96m"
	BrightWhite   = "\x1b[97m"

	BlackBg   = "\x1b[40m"
	RedBg     = "\x1b[41m"
	GreenBg   = "\x1b[42m"
	YellowBg  = "\x1b[43m"
	BlueBg    = "\x1b[44m"
	MagentaBg = "\x1b[45m"
	CyanBg    = "\x1b[46m"
	WhiteBg   = "\x1b[47m"

	BrightBlackBg   = "\x1b[100m"
	BrightRedBg     = "\x1b[101m"
	BrightGreenBg   = "\x1b[102m"
	BrightYellowBg  = "\x1b[103m"
	BrightBlueBg    = "\x1b[104m"
	BrightMagentaBg = "\x1b[105m"
	BrightCyanBg    = "\x1b[106m"
	BrightWhiteBg   = "\x1b[107m"
)

// namedStyles indexes the 4-bit tokens by snake_case name for config lookups
var namedStyles = map[string]string{
	"reset": Reset,

	"black": Black, "red": Red, "green": Green, "yellow": Yellow,
	"blue": Blue, "magenta": Magenta, "cyan": Cyan, "white": White,

	"bright_black": BrightBlack, "bright_red": BrightRed, "bright_green": BrightGreen,
	"bright_yellow": BrightYellow, "bright_blue": BrightBlue, "bright_magenta": BrightMagenta,
	"bright_cyan": BrightCyan, "bright_white": BrightWhite,

	"black_bg": BlackBg, "red_bg": RedBg, "green_bg": GreenBg, "yellow_bg": YellowBg,
	"blue_bg": BlueBg, "magenta_bg": MagentaBg, "cyan_bg": CyanBg, "white_bg": WhiteBg,

	"bright_black_bg": BrightBlackBg, "bright_red_bg": BrightRedBg,
	"bright_green_bg": BrightGreenBg, "bright_yellow_bg": BrightYellowBg,
	"bright_blue_bg": BrightBlueBg, "bright_magenta_bg": BrightMagentaBg,
	"bright_cyan_bg": BrightCyanBg, "bright_white_bg": BrightWhiteBg,
}

// IsStyle reports whether token looks like an escape-style token
func IsStyle(token string) bool {
	return len(token) > 0 && token[0] == Escape
}

// RGBCode returns the 24-bit SGR token for c
func RGBCode(c RGB, kind ColorKind) string {
	sel := 38
	if kind == Bg {
		sel = 48
	}
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", sel, c.R, c.G, c.B)
}

// PaletteCode returns the 8-bit SGR token for a 256-color palette index
func PaletteCode(index uint8, kind ColorKind) string {
	sel := 38
	if kind == Bg {
		sel = 48
	}
	return fmt.Sprintf("\x1b[%d;5;%dm", sel, index)
}

// HexCode parses "#rrggbb" (or "#rgb") into a 24-bit SGR token
func HexCode(hex string, kind ColorKind) (string, error) {
	c, err := colorful.Hex(normalizeHex(hex))
	if err != nil {
		return "", fmt.Errorf("hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBCode(RGB{R: r, G: g, B: b}, kind), nil
}

// normalizeHex expands shorthand so colorful.Hex accepts it
func normalizeHex(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 4 {
		return "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) + strings.Repeat(hex[3:4], 2)
	}
	return hex
}

// LookupStyle resolves a config color value into a style token
// Accepts named tokens ("red", "bright_blue_bg"), hex ("#ff8800"),
// palette indices ("208", "bg:208") and raw escape tokens
// Empty input yields an empty token
func LookupStyle(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	if IsStyle(v) {
		return v, nil
	}

	kind := Fg
	lower := strings.ToLower(v)
	if rest, ok := strings.CutPrefix(lower, "bg:"); ok {
		kind = Bg
		lower = rest
	}

	name := lower
	if kind == Bg {
		name += "_bg"
	}
	if token, ok := namedStyles[name]; ok {
		return token, nil
	}
	if strings.HasPrefix(lower, "#") {
		return HexCode(lower, kind)
	}
	if n, err := strconv.Atoi(lower); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("palette index %d out of range", n)
		}
		return PaletteCode(uint8(n), kind), nil
	}
	return "", fmt.Errorf("unknown color %q", value)
}
