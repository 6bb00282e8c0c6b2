package styled

import (
	"strconv"
	"strings"
)

var cssProperty = [...]string{
	KindWeight:        "font-weight",
	KindSlant:         "font-style",
	KindStrikethrough: "text-decoration",
	KindUnderline:     "text-decoration",
	KindForeground:    "color",
	KindBackground:    "background",
	KindFontFamily:    "font-family",
	KindFontSize:      "font-size",
}

// CSSProperty returns the name of the CSS property that corresponds to k.
// Strikethrough and Underline share text-decoration.
func (k Kind) CSSProperty() string {
	if int(k) < len(cssProperty) {
		return cssProperty[k]
	}
	return ""
}

// CSSValue returns the CSS value of the Attr.
func (a Attr) CSSValue() string {
	switch a.kind {
	case KindWeight:
		return ifElse(a.flag, "bold", "normal")
	case KindSlant:
		return ifElse(a.flag, "italic", "normal")
	case KindStrikethrough:
		return ifElse(a.flag, "line-through", "none")
	case KindUnderline:
		return ifElse(a.flag, "underline", "none")
	case KindForeground, KindBackground:
		return a.color.String()
	case KindFontFamily:
		return a.family
	case KindFontSize:
		return strconv.Itoa(a.size) + "pt"
	}
	return ""
}

func ifElse(b bool, t, f string) string {
	if b {
		return t
	}
	return f
}

// CSS returns the declarations of s as a CSS declaration list, such as
// "font-weight: bold; color: #ff0000". Strikethrough and Underline are
// combined into a single text-decoration declaration.
func (s Style) CSS() string {
	var decls []string
	var decorations []string
	decoIndex := -1
	for _, a := range s.attrs {
		if a.kind == KindStrikethrough || a.kind == KindUnderline {
			if a.flag {
				decorations = append(decorations, a.CSSValue())
			}
			if decoIndex == -1 {
				decoIndex = len(decls)
				decls = append(decls, "")
			}
			continue
		}
		decls = append(decls, a.kind.CSSProperty()+": "+a.CSSValue())
	}
	if decoIndex >= 0 {
		value := "none"
		if len(decorations) > 0 {
			value = strings.Join(decorations, " ")
		}
		decls[decoIndex] = "text-decoration: " + value
	}
	return strings.Join(decls, "; ")
}
