// Package styled implements styled text: an immutable plain string overlaid
// with formatting spans (markup) and link spans.
//
// A Text is usually assembled with a Builder:
//
//	var b styled.Builder
//	b.AppendWithAttrs("Error", styled.Bold, styled.Fg(styled.Red))
//	b.Append(": file not found")
//	t := b.Build()
//
// Renderers walk the result with Text.Runs, which splits the text into ranges
// of constant style that never cross a line feed, and resolve links with
// Text.LinkAt. This package does not know about any output format; package vt
// renders to terminals.
package styled
