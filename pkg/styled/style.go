package styled

import (
	"slices"
	"strings"
)

// Style is an ordered set of Attrs with at most one Attr of each Kind. Styles
// are immutable; the zero Style is the empty style.
//
// Two Styles are equal only when they hold the same Attrs in the same order.
type Style struct {
	attrs []Attr
}

// StyleOf builds a Style from attrs. When several attrs share a kind, the last
// one wins but takes the position of the first one.
func StyleOf(attrs ...Attr) Style {
	return Style{}.With(attrs...)
}

// With returns a new Style with attrs applied on top of s. An attr whose kind
// is already present replaces the old value in place; other attrs are added at
// the end.
func (s Style) With(attrs ...Attr) Style {
	if len(attrs) == 0 {
		return s
	}
	merged := make([]Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(merged, s.attrs)
	for _, a := range attrs {
		if i := indexOfKind(merged, a.kind); i >= 0 {
			merged[i] = a
		} else {
			merged = append(merged, a)
		}
	}
	return Style{merged}
}

// MergedWith returns a new Style where the attrs of other override those of s
// kind by kind.
func (s Style) MergedWith(other Style) Style {
	return s.With(other.attrs...)
}

func indexOfKind(attrs []Attr, k Kind) int {
	for i, a := range attrs {
		if a.kind == k {
			return i
		}
	}
	return -1
}

// Attrs returns a copy of the attrs of s, in order.
func (s Style) Attrs() []Attr { return slices.Clone(s.attrs) }

// Len returns the number of attrs in s.
func (s Style) Len() int { return len(s.attrs) }

// IsEmpty reports whether s has no attrs.
func (s Style) IsEmpty() bool { return len(s.attrs) == 0 }

// Get returns the attr of the given kind.
func (s Style) Get(k Kind) (Attr, bool) {
	if i := indexOfKind(s.attrs, k); i >= 0 {
		return s.attrs[i], true
	}
	return Attr{}, false
}

// Equal reports whether s and other have the same attrs in the same order.
func (s Style) Equal(other Style) bool {
	return slices.Equal(s.attrs, other.attrs)
}

// String returns the textual form of s, which can be parsed by ParseStyle.
func (s Style) String() string {
	var sb strings.Builder
	for i, a := range s.attrs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(p []byte) error {
	parsed, err := ParseStyle(string(p))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
