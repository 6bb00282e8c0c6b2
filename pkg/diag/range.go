// Package diag contains the index ranges shared by span-carrying types.
package diag

// Ranging represents a range [From, To) within an indexable sequence. Span
// and run types embed it.
type Ranging struct {
	From int
	To   int
}

// Valid reports whether 0 <= From <= To.
func (r Ranging) Valid() bool { return 0 <= r.From && r.From <= r.To }

// IsEmpty reports whether the range is zero-width. An empty range contains no
// index.
func (r Ranging) IsEmpty() bool { return r.From == r.To }

// Contains reports whether From <= i < To.
func (r Ranging) Contains(i int) bool { return r.From <= i && i < r.To }

// Overlaps reports whether the range shares at least one index with the window
// [from, to). Ranges that only touch the window at one of its ends do not
// overlap it.
func (r Ranging) Overlaps(from, to int) bool { return from < r.To && to > r.From }

// Clip intersects the range with the window [from, to) and rebases the result
// so that from becomes 0. It should only be called when r overlaps the window.
func (r Ranging) Clip(from, to int) Ranging {
	return Ranging{max(r.From, from) - from, min(r.To, to) - from}
}

// Shift returns the range moved by d.
func (r Ranging) Shift(d int) Ranging { return Ranging{r.From + d, r.To + d} }
