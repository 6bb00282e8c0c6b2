// Package vt renders styled text for VT-compatible terminals, using SGR
// sequences for styles and OSC 8 sequences for links.
package vt

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/styledstring/styledstring/pkg/styled"
)

// Palette selects how colors are encoded.
type Palette int

const (
	// TrueColor encodes colors as 24-bit SGR sequences (38;2;r;g;b).
	TrueColor Palette = iota
	// XTerm256 encodes colors as the nearest entry of the xterm 256-color
	// palette (38;5;n).
	XTerm256
)

// Options controls rendering.
type Options struct {
	Palette Palette
	// NoColor drops foreground and background colors.
	NoColor bool
	// Hyperlinks wraps linked text in OSC 8 hyperlink sequences, using the
	// link ID as the URI.
	Hyperlinks bool
}

// SGR returns the SGR parameters for the style, without the leading CSI or
// the trailing "m". Attrs that are turned off, font families and font sizes
// produce no parameters.
func SGR(s styled.Style, opts Options) string {
	var sgr []string

	addIf := func(k styled.Kind, code string) {
		if a, ok := s.Get(k); ok && a.On() {
			sgr = append(sgr, code)
		}
	}
	addIf(styled.KindWeight, "1")
	addIf(styled.KindSlant, "3")
	addIf(styled.KindUnderline, "4")
	addIf(styled.KindStrikethrough, "9")
	if !opts.NoColor {
		if a, ok := s.Get(styled.KindForeground); ok {
			sgr = append(sgr, colorSGR("38", a.Color(), opts.Palette))
		}
		if a, ok := s.Get(styled.KindBackground); ok {
			sgr = append(sgr, colorSGR("48", a.Color(), opts.Palette))
		}
	}

	return strings.Join(sgr, ";")
}

func colorSGR(prefix string, c styled.RGB, p Palette) string {
	if p == XTerm256 {
		return prefix + ";5;" + strconv.Itoa(Nearest256(c))
	}
	return prefix + ";2;" + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
}

// Render renders the styled text. Each run is written with its own SGR
// sequence, clearing any existing SGR state, and followed by a reset.
func Render(t styled.Text, opts Options) string {
	var sb strings.Builder
	for _, r := range t.Runs() {
		sgr := SGR(r.Style, opts)
		if !opts.Hyperlinks {
			writeSegment(&sb, sgr, substring(t, r.From, r.To))
			continue
		}
		// Split the run further where the link changes.
		for from := r.From; from < r.To; {
			id, linked := t.LinkAt(from)
			to := from + 1
			for to < r.To {
				if id2, linked2 := t.LinkAt(to); id2 != id || linked2 != linked {
					break
				}
				to++
			}
			if linked {
				sb.WriteString("\033]8;;" + linkURI(id) + "\033\\")
			}
			writeSegment(&sb, sgr, substring(t, from, to))
			if linked {
				sb.WriteString("\033]8;;\033\\")
			}
			from = to
		}
	}
	return sb.String()
}

// Drops control characters, which could end the OSC 8 sequence early.
func linkURI(id styled.LinkID) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, string(id))
}

func writeSegment(sb *strings.Builder, sgr, text string) {
	if sgr == "" {
		sb.WriteString("\033[m" + text)
		return
	}
	sb.WriteString("\033[;" + sgr + "m" + text + "\033[m")
}

func substring(t styled.Text, from, to int) string {
	// Cannot fail: runs lie within the text.
	sub, _ := t.Substring(from, to)
	return sub.String()
}
