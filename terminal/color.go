package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color is one of the 16 conventional terminal palette colors
type Color uint8

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// paletteSize is the number of valid Color values
const paletteSize = 16

var colorNames = [paletteSize]string{
	"Black", "DarkBlue", "DarkGreen", "DarkCyan",
	"DarkRed", "DarkMagenta", "DarkYellow", "Gray",
	"DarkGray", "Blue", "Green", "Cyan",
	"Red", "Magenta", "Yellow", "White",
}

// sgrFg maps a Color to its SGR foreground parameter
// Background parameters are the same values offset by 10
var sgrFg = [paletteSize]int{
	Black:       30,
	DarkRed:     31,
	DarkGreen:   32,
	DarkYellow:  33,
	DarkBlue:    34,
	DarkMagenta: 35,
	DarkCyan:    36,
	Gray:        37,
	DarkGray:    90,
	Red:         91,
	Green:       92,
	Yellow:      93,
	Blue:        94,
	Magenta:     95,
	Cyan:        96,
	White:       97,
}

// tcellColors maps a Color to the matching entry of the xterm base palette
var tcellColors = [paletteSize]tcell.Color{
	Black:       tcell.ColorBlack,
	DarkRed:     tcell.ColorMaroon,
	DarkGreen:   tcell.ColorGreen,
	DarkYellow:  tcell.ColorOlive,
	DarkBlue:    tcell.ColorNavy,
	DarkMagenta: tcell.ColorPurple,
	DarkCyan:    tcell.ColorTeal,
	Gray:        tcell.ColorSilver,
	DarkGray:    tcell.ColorGray,
	Red:         tcell.ColorRed,
	Green:       tcell.ColorLime,
	Yellow:      tcell.ColorYellow,
	Blue:        tcell.ColorBlue,
	Magenta:     tcell.ColorFuchsia,
	Cyan:        tcell.ColorAqua,
	White:       tcell.ColorWhite,
}

// Valid reports whether c is inside the 16-color palette
func (c Color) Valid() bool {
	return c < paletteSize
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// FgCode returns the SGR parameter selecting c as foreground
func (c Color) FgCode() int {
	return sgrFg[c%paletteSize]
}

// BgCode returns the SGR parameter selecting c as background
func (c Color) BgCode() int {
	return sgrFg[c%paletteSize] + 10
}

// Tcell returns the tcell palette color for c
func (c Color) Tcell() tcell.Color {
	return tcellColors[c%paletteSize]
}

// ParseColor resolves a palette color by name, ignoring case, '-' and '_'
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for i, n := range colorNames {
		if strings.ToLower(n) == key {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// Colors is an immutable foreground/background pair
type Colors struct {
	foreground Color
	background Color
}

// DefaultColors returns the default pair, white on black
func DefaultColors() Colors {
	return Colors{foreground: White, background: Black}
}

// NewColors returns a pair with the given foreground and background
func NewColors(foreground, background Color) Colors {
	return Colors{foreground: foreground, background: background}
}

// WhiteOnBlack is the light-on-dark preset (gray on black)
func WhiteOnBlack() Colors {
	return NewColors(Gray, Black)
}

// BlackOnWhite is the dark-on-light preset (black on gray)
func BlackOnWhite() Colors {
	return NewColors(Black, Gray)
}

func (p Colors) Foreground() Color { return p.foreground }
func (p Colors) Background() Color { return p.background }

func (p Colors) String() string {
	return p.foreground.String() + " on " + p.background.String()
}
