package styled

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the property an Attr sets. The set of kinds is closed.
type Kind uint8

// Attribute kinds.
const (
	KindWeight Kind = iota
	KindSlant
	KindStrikethrough
	KindUnderline
	KindForeground
	KindBackground
	KindFontFamily
	KindFontSize
)

// Kinds lists all kinds in declaration order.
var Kinds = [...]Kind{
	KindWeight, KindSlant, KindStrikethrough, KindUnderline,
	KindForeground, KindBackground, KindFontFamily, KindFontSize,
}

var kindNames = [...]string{
	KindWeight:        "weight",
	KindSlant:         "slant",
	KindStrikethrough: "strikethrough",
	KindUnderline:     "underline",
	KindForeground:    "foreground",
	KindBackground:    "background",
	KindFontFamily:    "font-family",
	KindFontSize:      "font-size",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Attr is a single formatting property together with its value. Attr values
// are comparable: two Attrs are equal iff they have the same kind and the
// same value.
//
// The zero Attr is Weight(false).
type Attr struct {
	kind   Kind
	flag   bool
	color  RGB
	family string
	size   int
}

// Weight returns an Attr setting the font weight to bold or normal.
func Weight(bold bool) Attr { return Attr{kind: KindWeight, flag: bold} }

// Slant returns an Attr setting the font style to italic or normal.
func Slant(italic bool) Attr { return Attr{kind: KindSlant, flag: italic} }

// Strikethrough returns an Attr turning a single-line strike-through on or off.
func Strikethrough(on bool) Attr { return Attr{kind: KindStrikethrough, flag: on} }

// Underline returns an Attr turning a single-line underline on or off.
func Underline(on bool) Attr { return Attr{kind: KindUnderline, flag: on} }

// Fg returns an Attr setting the foreground color.
func Fg(c RGB) Attr { return Attr{kind: KindForeground, color: c} }

// Bg returns an Attr setting the background color.
func Bg(c RGB) Attr { return Attr{kind: KindBackground, color: c} }

// FontFamily returns an Attr setting the font family.
func FontFamily(name string) Attr { return Attr{kind: KindFontFamily, family: name} }

// FontSize returns an Attr setting the font size in points.
func FontSize(pt int) Attr { return Attr{kind: KindFontSize, size: pt} }

// Common attributes.
var (
	Bold          = Weight(true)
	Italic        = Slant(true)
	Underlined    = Underline(true)
	StruckThrough = Strikethrough(true)

	NoBold          = Weight(false)
	NoItalic        = Slant(false)
	NoUnderlined    = Underline(false)
	NoStruckThrough = Strikethrough(false)
)

// Kind returns the kind of the Attr.
func (a Attr) Kind() Kind { return a.kind }

// On returns the value of a Weight, Slant, Strikethrough or Underline Attr. It
// returns false for other kinds.
func (a Attr) On() bool { return a.flag }

// Color returns the value of a Foreground or Background Attr. It returns the
// zero RGB for other kinds.
func (a Attr) Color() RGB { return a.color }

// Family returns the value of a FontFamily Attr.
func (a Attr) Family() string { return a.family }

// Size returns the value of a FontSize Attr.
func (a Attr) Size() int { return a.size }

// Equal reports whether two Attrs are equal.
func (a Attr) Equal(b Attr) bool { return a == b }

// String returns the textual form of the Attr, as accepted by ParseStyle.
func (a Attr) String() string {
	switch a.kind {
	case KindWeight:
		return flagName("bold", a.flag)
	case KindSlant:
		return flagName("italic", a.flag)
	case KindStrikethrough:
		return flagName("strikethrough", a.flag)
	case KindUnderline:
		return flagName("underline", a.flag)
	case KindForeground:
		return "fg-" + a.color.String()
	case KindBackground:
		return "bg-" + a.color.String()
	case KindFontFamily:
		if needsQuote(a.family) {
			return "family=" + strconv.Quote(a.family)
		}
		return "family=" + a.family
	case KindFontSize:
		return "size=" + strconv.Itoa(a.size)
	default:
		return fmt.Sprintf("!(%v)", a.kind)
	}
}

// Reports whether a family name must be quoted to survive ParseStyle.
func needsQuote(name string) bool {
	return name == "" || strings.ContainsAny(name, " \t\n'") ||
		strconv.Quote(name) != `"`+name+`"`
}

func flagName(name string, on bool) string {
	if on {
		return name
	}
	return "no-" + name
}
