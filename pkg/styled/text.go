package styled

import (
	"fmt"
	"slices"
	"unicode/utf16"
)

// Text is an immutable plain string overlaid with markup spans and link
// spans. The zero Text is the empty string with no spans.
//
// Indices are UTF-16 code units: Len, CharAt, Substring and all span ranges
// count code units, so a character outside the Basic Multilingual Plane takes
// two indices.
//
// Spans may overlap and need not be sorted. Where markup spans overlap, the
// ones later in the list override earlier ones kind by kind (see
// MergedStyleAt).
type Text struct {
	plain  string
	units  []uint16
	markup []Markup
	links  []Link
}

// New returns a Text with the given plain text, markup and links. The span
// lists are copied. It returns an error matching ErrIndexOutOfBounds if a span
// has a negative start or ends before it starts, and one matching
// ErrInvalidArgument if a link has an empty ID.
//
// Spans reaching past the end of text are accepted; the indices past the end
// are never looked up.
func New(text string, markup []Markup, links []Link) (Text, error) {
	for _, m := range markup {
		if err := checkSpanRange("markup", m.Ranging); err != nil {
			return Text{}, err
		}
	}
	for _, l := range links {
		if err := checkSpanRange("link", l.Ranging); err != nil {
			return Text{}, err
		}
		if l.Value == "" {
			return Text{}, &InvalidArgument{What: "link", Reason: "empty link ID"}
		}
	}
	return makeText(utf16.Encode([]rune(text)), slices.Clone(markup), slices.Clone(links)), nil
}

// Plain returns a Text with no spans.
func Plain(text string) Text {
	return makeText(utf16.Encode([]rune(text)), nil, nil)
}

// Takes ownership of all three slices.
func makeText(units []uint16, markup []Markup, links []Link) Text {
	if len(units) == 0 && len(markup) == 0 && len(links) == 0 {
		return Text{}
	}
	return Text{string(utf16.Decode(units)), units, markup, links}
}

// String returns the plain text.
func (t Text) String() string { return t.plain }

// Len returns the length of the text in UTF-16 code units.
func (t Text) Len() int { return len(t.units) }

// IsEmpty reports whether the text has zero length.
func (t Text) IsEmpty() bool { return len(t.units) == 0 }

// CharAt returns the UTF-16 code unit at index i. A surrogate is returned as
// is.
func (t Text) CharAt(i int) (uint16, error) {
	if i < 0 || i >= len(t.units) {
		return 0, &OutOfRange{What: "index", ValidLow: 0, ValidHigh: len(t.units) - 1, Actual: i}
	}
	return t.units[i], nil
}

// Markup returns a copy of the markup spans.
func (t Text) Markup() []Markup { return slices.Clone(t.markup) }

// Links returns a copy of the link spans.
func (t Text) Links() []Link { return slices.Clone(t.links) }

// Equal reports whether t and other have the same text, the same markup and
// the same links, in the same order.
func (t Text) Equal(other Text) bool {
	return slices.Equal(t.units, other.units) &&
		slices.EqualFunc(t.markup, other.markup, func(a, b Markup) bool {
			return a.Ranging == b.Ranging && a.Value.Equal(b.Value)
		}) &&
		slices.Equal(t.links, other.links)
}

// Compare compares the plain texts of t and other code unit by code unit,
// ignoring spans. The result is 0 if they are equal, -1 if t sorts first and
// +1 otherwise.
func (t Text) Compare(other Text) int {
	return slices.Compare(t.units, other.units)
}

// GoString returns a representation of t showing its spans, for debugging.
func (t Text) GoString() string {
	return fmt.Sprintf("styled.Text{%q, markup: %v, links: %v}", t.plain, t.markup, t.links)
}

// Substring returns the part of t in [from, to). Markup and links overlapping
// the range are clipped to it and rebased; spans that only touch the range at
// from or to are dropped. An empty range yields the empty Text.
func (t Text) Substring(from, to int) (Text, error) {
	n := len(t.units)
	switch {
	case from < 0 || from > n:
		return Text{}, &OutOfRange{What: "start index", ValidLow: 0, ValidHigh: n, Actual: from}
	case to < from || to > n:
		return Text{}, &OutOfRange{What: "end index", ValidLow: from, ValidHigh: n, Actual: to}
	case from == to:
		return Text{}, nil
	}
	return makeText(
		slices.Clone(t.units[from:to]),
		sliceSpans(t.markup, from, to),
		sliceSpans(t.links, from, to)), nil
}

// StylesAt returns the styles of all markup spans covering index i, in list
// order.
func (t Text) StylesAt(i int) []Style {
	var styles []Style
	for _, m := range t.markup {
		if m.Contains(i) {
			styles = append(styles, m.Value)
		}
	}
	return styles
}

// MergedStyleAt returns the style in effect at index i. Styles of the markup
// spans covering i are layered in list order, later ones overriding earlier
// ones kind by kind. Each kind keeps the position where it first appears.
func (t Text) MergedStyleAt(i int) Style {
	styles := t.StylesAt(i)
	switch len(styles) {
	case 0:
		return Style{}
	case 1:
		return styles[0]
	}
	var merged Style
	for _, s := range styles {
		merged = merged.MergedWith(s)
	}
	return merged
}

// LinkAt returns the ID of the first link covering index i.
func (t Text) LinkAt(i int) (LinkID, bool) {
	if l, ok := t.LinkSpanAt(i); ok {
		return l.Value, true
	}
	return "", false
}

// LinkSpanAt returns the first link covering index i.
func (t Text) LinkSpanAt(i int) (Link, bool) {
	for _, l := range t.links {
		if l.Contains(i) {
			return l, true
		}
	}
	return Link{}, false
}

// ToBuilder returns a Builder initialized with the contents of t.
func (t Text) ToBuilder() *Builder {
	b := NewBuilder()
	b.AppendText(t)
	return b
}

// Concat returns the concatenation of texts, with all spans shifted into
// place.
func Concat(texts ...Text) Text {
	b := NewBuilder()
	for _, t := range texts {
		b.AppendText(t)
	}
	return b.Build()
}
