// Package sheet loads style sheets: YAML documents that define named styles
// and named styled texts.
//
// A sheet looks like this:
//
//	styles:
//	  keyword: bold fg-#0000ff
//	texts:
//	  greeting:
//	    text: "Hello, world"
//	    markup:
//	      - {from: 0, to: 5, style: keyword}
//	      - {from: 7, to: 12, style: "italic underline"}
//	    links:
//	      - {from: 7, to: 12, id: "https://example.org"}
//
// Offsets are in UTF-16 code units, like everywhere else in package styled. A
// markup style is first looked up among the named styles, and parsed with
// styled.ParseStyle if there is no such name.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/styledstring/styledstring/pkg/errutil"
	"github.com/styledstring/styledstring/pkg/styled"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by (*Sheet).Text when there is no text with the
// given name.
var ErrNotFound = errors.New("no such text")

// Sheet is a parsed style sheet.
type Sheet struct {
	styles map[string]styled.Style
	texts  map[string]styled.Text
}

type document struct {
	Styles map[string]string  `yaml:"styles"`
	Texts  map[string]textDoc `yaml:"texts"`
}

type textDoc struct {
	Text   string      `yaml:"text"`
	Markup []markupDoc `yaml:"markup"`
	Links  []linkDoc   `yaml:"links"`
}

type markupDoc struct {
	From  int    `yaml:"from"`
	To    int    `yaml:"to"`
	Style string `yaml:"style"`
}

type linkDoc struct {
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
	ID   string `yaml:"id"`
}

// Load reads and parses the sheet in the named file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sh, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sh, nil
}

// Parse parses a sheet. Unknown keys are rejected. If any style or text is
// invalid, the returned error describes all of them.
func Parse(data []byte) (*Sheet, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, err
	}

	sh := &Sheet{
		styles: make(map[string]styled.Style, len(doc.Styles)),
		texts:  make(map[string]styled.Text, len(doc.Texts)),
	}
	var errs []error
	for _, name := range sortedKeys(doc.Styles) {
		style, err := styled.ParseStyle(doc.Styles[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("style %s: %w", name, err))
			continue
		}
		sh.styles[name] = style
	}
	for _, name := range sortedKeys(doc.Texts) {
		text, err := sh.buildText(doc.Texts[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("text %s: %w", name, err))
			continue
		}
		sh.texts[name] = text
	}
	if err := errutil.Multi(errs...); err != nil {
		return nil, err
	}
	return sh, nil
}

func (sh *Sheet) buildText(td textDoc) (styled.Text, error) {
	var errs []error
	markup := make([]styled.Markup, 0, len(td.Markup))
	for i, md := range td.Markup {
		style, err := sh.resolveStyle(md.Style)
		if err != nil {
			errs = append(errs, fmt.Errorf("markup %d: %w", i, err))
			continue
		}
		markup = append(markup, styled.MarkupOf(md.From, md.To, style))
	}
	links := make([]styled.Link, 0, len(td.Links))
	for _, ld := range td.Links {
		links = append(links, styled.LinkOf(ld.From, ld.To, styled.LinkID(ld.ID)))
	}
	if err := errutil.Multi(errs...); err != nil {
		return styled.Text{}, err
	}
	return styled.New(td.Text, markup, links)
}

func (sh *Sheet) resolveStyle(s string) (styled.Style, error) {
	if style, ok := sh.styles[s]; ok {
		return style, nil
	}
	return styled.ParseStyle(s)
}

// Style returns the named style.
func (sh *Sheet) Style(name string) (styled.Style, bool) {
	style, ok := sh.styles[name]
	return style, ok
}

// Text returns the named text.
func (sh *Sheet) Text(name string) (styled.Text, error) {
	text, ok := sh.texts[name]
	if !ok {
		return styled.Text{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return text, nil
}

// Names returns the names of all texts, sorted.
func (sh *Sheet) Names() []string {
	return sortedKeys(sh.texts)
}

// StyleNames returns the names of all styles, sorted.
func (sh *Sheet) StyleNames() []string {
	return sortedKeys(sh.styles)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
