package styled

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// String returns the color in the #rrggbb form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colorful converts the color to a colorful.Color, for computing distances
// and blends.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts a colorful.Color to the nearest RGB.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Named colors.
var (
	Black     = RGB{0x00, 0x00, 0x00}
	Blue      = RGB{0x00, 0x00, 0xff}
	Cyan      = RGB{0x00, 0xff, 0xff}
	DarkGray  = RGB{0x40, 0x40, 0x40}
	Gray      = RGB{0x80, 0x80, 0x80}
	Green     = RGB{0x00, 0xff, 0x00}
	LightGray = RGB{0xc0, 0xc0, 0xc0}
	Magenta   = RGB{0xff, 0x00, 0xff}
	Orange    = RGB{0xff, 0xc8, 0x00}
	Pink      = RGB{0xff, 0xaf, 0xaf}
	Red       = RGB{0xff, 0x00, 0x00}
	White     = RGB{0xff, 0xff, 0xff}
	Yellow    = RGB{0xff, 0xff, 0x00}
)

var colorByName = map[string]RGB{
	"black":      Black,
	"blue":       Blue,
	"cyan":       Cyan,
	"dark-gray":  DarkGray,
	"gray":       Gray,
	"green":      Green,
	"light-gray": LightGray,
	"magenta":    Magenta,
	"orange":     Orange,
	"pink":       Pink,
	"red":        Red,
	"white":      White,
	"yellow":     Yellow,
}

// ParseColor parses a color name (such as "red" or "light-gray") or a hex
// color in the #rgb or #rrggbb form.
func ParseColor(s string) (RGB, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && (len(s) == 4 || len(s) == 7) {
		c, err := colorful.Hex(s)
		if err == nil {
			return FromColorful(c), nil
		}
	}
	return RGB{}, &InvalidArgument{What: "color", Reason: fmt.Sprintf("%q is not a color name or #rrggbb", s)}
}
