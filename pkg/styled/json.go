package styled

import (
	"encoding/json"
	"fmt"
)

// Wire form of a Text. Styles use their textual form.
type jsonText struct {
	Text   string       `json:"text"`
	Markup []jsonMarkup `json:"markup,omitempty"`
	Links  []jsonLink   `json:"links,omitempty"`
}

type jsonMarkup struct {
	From  int   `json:"from"`
	To    int   `json:"to"`
	Style Style `json:"style"`
}

type jsonLink struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	ID   LinkID `json:"id"`
}

// MarshalJSON implements json.Marshaler.
//
// Unpaired surrogates cannot be represented in JSON strings and are written as
// U+FFFD.
func (t Text) MarshalJSON() ([]byte, error) {
	w := jsonText{Text: t.plain}
	for _, m := range t.markup {
		w.Markup = append(w.Markup, jsonMarkup{m.From, m.To, m.Value})
	}
	for _, l := range t.links {
		w.Links = append(w.Links, jsonLink{l.From, l.To, l.Value})
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded spans are validated as
// in New.
func (t *Text) UnmarshalJSON(p []byte) error {
	var w jsonText
	if err := json.Unmarshal(p, &w); err != nil {
		return err
	}
	markup := make([]Markup, len(w.Markup))
	for i, m := range w.Markup {
		markup[i] = MarkupOf(m.From, m.To, m.Style)
	}
	links := make([]Link, len(w.Links))
	for i, l := range w.Links {
		links[i] = LinkOf(l.From, l.To, l.ID)
	}
	parsed, err := New(w.Text, markup, links)
	if err != nil {
		return fmt.Errorf("decode styled text: %w", err)
	}
	*t = parsed
	return nil
}
