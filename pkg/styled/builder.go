package styled

import (
	"slices"
	"strconv"
	"unicode/utf16"

	"github.com/styledstring/styledstring/pkg/diag"
)

// Builder accumulates text and spans for building a Text. The zero Builder is
// ready to use. A Builder must not be used from several goroutines at once.
//
// A failed call leaves the Builder unchanged.
type Builder struct {
	units  []uint16
	markup []Markup
	links  []Link
}

// Strings appended by AppendNewLine, AppendSpace and AppendTab.
const (
	NewLine = "\n"
	Space   = " "
	Tab     = "    "
)

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Mark returns the current length of the buffer, for recording the start or
// end of a range before or after appending to it.
func (b *Builder) Mark() int { return len(b.units) }

// Len returns the current length of the buffer.
func (b *Builder) Len() int { return len(b.units) }

// Append appends s without styling it.
func (b *Builder) Append(s string) {
	b.units = appendUnits(b.units, s)
}

// AppendInt appends the decimal form of n.
func (b *Builder) AppendInt(n int64) {
	b.Append(strconv.FormatInt(n, 10))
}

// AppendNumber appends the shortest decimal form of f that parses back to f,
// without an exponent.
func (b *Builder) AppendNumber(f float64) {
	b.Append(strconv.FormatFloat(f, 'f', -1, 64))
}

// AppendNewLine appends a line feed.
func (b *Builder) AppendNewLine() { b.Append(NewLine) }

// AppendSpace appends a space.
func (b *Builder) AppendSpace() { b.Append(Space) }

// AppendTab appends four spaces.
func (b *Builder) AppendTab() { b.Append(Tab) }

// AppendWithStyle appends s and records a markup span with the given style
// over it.
func (b *Builder) AppendWithStyle(s string, style Style) {
	from := b.Mark()
	b.Append(s)
	b.markup = append(b.markup, MarkupOf(from, b.Mark(), style))
}

// AppendWithAttrs appends s and records a markup span over it with a style
// built from attrs.
func (b *Builder) AppendWithAttrs(s string, attrs ...Attr) {
	b.AppendWithStyle(s, StyleOf(attrs...))
}

// AppendText appends the text of t and copies its markup and links, shifted
// to where t now starts.
func (b *Builder) AppendText(t Text) {
	offset := b.Mark()
	b.units = append(b.units, t.units...)
	b.markup = appendShifted(b.markup, t.markup, offset)
	b.links = appendShifted(b.links, t.links, offset)
}

// ApplyStyle records a markup span with the given style over [from, to), which
// must lie within the text appended so far. It does nothing if style is empty
// or nothing has been appended yet.
func (b *Builder) ApplyStyle(from, to int, style Style) error {
	if style.IsEmpty() || len(b.units) == 0 {
		return nil
	}
	n := len(b.units)
	switch {
	case from < 0 || from >= n:
		return &OutOfRange{What: "start index", ValidLow: 0, ValidHigh: n - 1, Actual: from}
	case to < from || to > n:
		return &OutOfRange{What: "end index", ValidLow: from, ValidHigh: n, Actual: to}
	}
	b.markup = append(b.markup, MarkupOf(from, to, style))
	return nil
}

// ApplyAttrs is like ApplyStyle, with a style built from attrs.
func (b *Builder) ApplyAttrs(from, to int, attrs ...Attr) error {
	return b.ApplyStyle(from, to, StyleOf(attrs...))
}

// ApplyAttrsToAll records a markup span with a style built from attrs over all
// of the text appended so far.
func (b *Builder) ApplyAttrsToAll(attrs ...Attr) {
	// Cannot fail: [0, Mark()) is always within the buffer.
	_ = b.ApplyAttrs(0, b.Mark(), attrs...)
}

// AddLink records a link to id over [from, to).
func (b *Builder) AddLink(from, to int, id LinkID) error {
	if id == "" {
		return &InvalidArgument{What: "link", Reason: "empty link ID"}
	}
	if err := checkSpanRange("link", diag.Ranging{From: from, To: to}); err != nil {
		return err
	}
	b.links = append(b.links, LinkOf(from, to, id))
	return nil
}

// Build returns a Text with the contents of the Builder. The Builder can still
// be used afterwards; further changes do not affect Texts already built.
func (b *Builder) Build() Text {
	return makeText(slices.Clone(b.units), slices.Clone(b.markup), slices.Clone(b.links))
}

func appendUnits(units []uint16, s string) []uint16 {
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return units
}
