package styled

import "github.com/styledstring/styledstring/pkg/diag"

// Run is a maximal range of a Text over which the same set of markup spans
// applies and which does not continue past a line feed.
type Run struct {
	diag.Ranging
	// Style is the merged style of the range. It may be empty.
	Style Style
}

// Runs splits t into runs covering [0, Len()) in order, with no gaps and no
// overlaps. A run ends where a markup span starts or ends, and right after
// each line feed. The empty Text has no runs.
//
// Boundaries follow span membership rather than the merged style, so two
// adjacent runs may have equal styles when they come from different spans.
func (t Text) Runs() []Run {
	n := len(t.units)
	if n == 0 {
		return nil
	}
	// starts[i] is true iff a run starts at i.
	starts := make([]bool, n)
	starts[0] = true
	markStart := func(i int) {
		if 0 < i && i < n {
			starts[i] = true
		}
	}
	for _, m := range t.markup {
		// A zero-width span covers no index, so it never changes membership.
		if !m.IsEmpty() {
			markStart(m.From)
			markStart(m.To)
		}
	}
	for i := 1; i < n; i++ {
		if t.units[i-1] == '\n' {
			starts[i] = true
		}
	}

	var runs []Run
	from := 0
	for i := 1; i <= n; i++ {
		if i == n || starts[i] {
			runs = append(runs, Run{diag.Ranging{From: from, To: i}, t.MergedStyleAt(from)})
			from = i
		}
	}
	return runs
}

// Lines splits t at line feeds, dropping them. A trailing line feed yields a
// trailing empty line. The empty Text has no lines.
func (t Text) Lines() []Text {
	if len(t.units) == 0 {
		return nil
	}
	var lines []Text
	from := 0
	for i, u := range t.units {
		if u == '\n' {
			// Substring cannot fail: 0 <= from <= i < Len().
			line, _ := t.Substring(from, i)
			lines = append(lines, line)
			from = i + 1
		}
	}
	last, _ := t.Substring(from, len(t.units))
	return append(lines, last)
}
