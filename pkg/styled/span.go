package styled

import "github.com/styledstring/styledstring/pkg/diag"

// Span is a payload attached to the half-open range [From, To) of a Text. A
// Span with From == To covers no index but is still a valid list member.
type Span[T any] struct {
	diag.Ranging
	Value T
}

// Markup is a Span carrying a Style.
type Markup = Span[Style]

// Link is a Span carrying a LinkID.
type Link = Span[LinkID]

// LinkID identifies the target of a link. It is opaque to this package; a
// renderer may treat it as a URL. The empty LinkID is not a valid link target.
type LinkID string

// MarkupOf returns a Markup over [from, to).
func MarkupOf(from, to int, s Style) Markup {
	return Markup{diag.Ranging{From: from, To: to}, s}
}

// LinkOf returns a Link over [from, to).
func LinkOf(from, to int, id LinkID) Link {
	return Link{diag.Ranging{From: from, To: to}, id}
}

func checkSpanRange(what string, r diag.Ranging) error {
	switch {
	case r.Valid():
		return nil
	case r.From < 0:
		return &OutOfRange{What: what + " start", ValidLow: 0, ValidHigh: r.To, Actual: r.From}
	default:
		return &OutOfRange{What: what + " end", ValidLow: r.From, ValidHigh: maxInt, Actual: r.To}
	}
}

const maxInt = int(^uint(0) >> 1)

// Returns the spans overlapping [from, to), clipped to the window and rebased
// to start at 0. Payloads and relative order are kept.
func sliceSpans[T any](spans []Span[T], from, to int) []Span[T] {
	var sliced []Span[T]
	for _, s := range spans {
		if s.Overlaps(from, to) {
			sliced = append(sliced, Span[T]{s.Clip(from, to), s.Value})
		}
	}
	return sliced
}

// Returns spans with every range moved by d, appended to dst.
func appendShifted[T any](dst []Span[T], spans []Span[T], d int) []Span[T] {
	for _, s := range spans {
		dst = append(dst, Span[T]{s.Shift(d), s.Value})
	}
	return dst
}
