package styled

import (
	"fmt"
	"strconv"
	"strings"
)

var flagConstructor = map[string]func(bool) Attr{
	"bold":          Weight,
	"italic":        Slant,
	"strikethrough": Strikethrough,
	"underline":     Underline,
}

// ParseStyle parses the textual form of a Style: a space-separated list of
// attrs, each of which is one of
//
//   - bold, italic, underline, strikethrough, or one of those prefixed with
//     "no-" to turn it off;
//   - fg-COLOR or bg-COLOR, where COLOR is accepted by ParseColor; a bare
//     COLOR is the same as fg-COLOR;
//   - family=NAME, where NAME may be a double-quoted Go string;
//   - size=N.
//
// Attrs are combined as with StyleOf. The empty string parses to the empty
// Style.
func ParseStyle(s string) (Style, error) {
	words, err := splitStyleWords(s)
	if err != nil {
		return Style{}, err
	}
	attrs := make([]Attr, 0, len(words))
	for _, word := range words {
		a, err := parseAttr(word)
		if err != nil {
			return Style{}, err
		}
		attrs = append(attrs, a)
	}
	return StyleOf(attrs...), nil
}

// ParseAttr parses the textual form of a single Attr.
func ParseAttr(s string) (Attr, error) {
	return parseAttr(s)
}

func parseAttr(word string) (Attr, error) {
	switch {
	case strings.HasPrefix(word, "fg-"):
		c, err := ParseColor(word[len("fg-"):])
		if err != nil {
			return Attr{}, err
		}
		return Fg(c), nil
	case strings.HasPrefix(word, "bg-"):
		c, err := ParseColor(word[len("bg-"):])
		if err != nil {
			return Attr{}, err
		}
		return Bg(c), nil
	case strings.HasPrefix(word, "no-"):
		if f, ok := flagConstructor[word[len("no-"):]]; ok {
			return f(false), nil
		}
	case strings.HasPrefix(word, "family="):
		name := word[len("family="):]
		if strings.HasPrefix(name, `"`) {
			unquoted, err := strconv.Unquote(name)
			if err != nil {
				return Attr{}, &InvalidArgument{What: "font family", Reason: err.Error()}
			}
			name = unquoted
		}
		return FontFamily(name), nil
	case strings.HasPrefix(word, "size="):
		n, err := strconv.Atoi(word[len("size="):])
		if err != nil {
			return Attr{}, &InvalidArgument{What: "font size", Reason: fmt.Sprintf("%q is not an integer", word[len("size="):])}
		}
		return FontSize(n), nil
	default:
		if f, ok := flagConstructor[word]; ok {
			return f(true), nil
		}
		if c, err := ParseColor(word); err == nil {
			return Fg(c), nil
		}
	}
	return Attr{}, &InvalidArgument{What: "style attribute", Reason: fmt.Sprintf("unrecognized %q", word)}
}

// Splits s at spaces, keeping a quoted family name in one word.
func splitStyleWords(s string) ([]string, error) {
	var words []string
	for {
		s = strings.TrimLeft(s, " \t\n")
		if s == "" {
			return words, nil
		}
		if strings.HasPrefix(s, `family="`) {
			q, err := strconv.QuotedPrefix(s[len("family="):])
			if err != nil {
				return nil, &InvalidArgument{What: "font family", Reason: "unterminated quoted name"}
			}
			n := len("family=") + len(q)
			words = append(words, s[:n])
			s = s[n:]
			continue
		}
		n := strings.IndexAny(s, " \t\n")
		if n == -1 {
			n = len(s)
		}
		words = append(words, s[:n])
		s = s[n:]
	}
}
