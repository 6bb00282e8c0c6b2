package vt

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/styledstring/styledstring/pkg/styled"
)

var xterm256 = buildXTerm256()

func buildXTerm256() [256]colorful.Color {
	var p [256]colorful.Color
	ansi := [16]styled.RGB{
		{R: 0x00, G: 0x00, B: 0x00}, {R: 0x80, G: 0x00, B: 0x00}, {R: 0x00, G: 0x80, B: 0x00}, {R: 0x80, G: 0x80, B: 0x00},
		{R: 0x00, G: 0x00, B: 0x80}, {R: 0x80, G: 0x00, B: 0x80}, {R: 0x00, G: 0x80, B: 0x80}, {R: 0xc0, G: 0xc0, B: 0xc0},
		{R: 0x80, G: 0x80, B: 0x80}, {R: 0xff, G: 0x00, B: 0x00}, {R: 0x00, G: 0xff, B: 0x00}, {R: 0xff, G: 0xff, B: 0x00},
		{R: 0x00, G: 0x00, B: 0xff}, {R: 0xff, G: 0x00, B: 0xff}, {R: 0x00, G: 0xff, B: 0xff}, {R: 0xff, G: 0xff, B: 0xff},
	}
	for i, c := range ansi {
		p[i] = c.Colorful()
	}
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	for i := 0; i < 216; i++ {
		p[16+i] = styled.RGB{R: levels[i/36], G: levels[i/6%6], B: levels[i%6]}.Colorful()
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p[232+i] = styled.RGB{R: v, G: v, B: v}.Colorful()
	}
	return p
}

// Nearest256 returns the index of the xterm 256-color palette entry closest to
// c in CIE L*a*b* space. Ties go to the lower index.
func Nearest256(c styled.RGB) int {
	target := c.Colorful()
	best, bestDist := 0, target.DistanceLab(xterm256[0])
	for i := 1; i < len(xterm256); i++ {
		if d := target.DistanceLab(xterm256[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
