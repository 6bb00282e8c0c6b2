package styled

import (
	"testing"

	"github.com/styledstring/styledstring/pkg/tt"
)

var Args = tt.Args

func TestStyleOf(t *testing.T) {
	tt.Test(t, tt.Fn("StyleOf", StyleOf), tt.Table{
		Args().Rets(Style{}),
		Args(Bold).Rets(Style{[]Attr{Bold}}),
		Args(Bold, Fg(Red)).Rets(Style{[]Attr{Bold, Fg(Red)}}),
		// Later attrs of a kind win, at the position of the first.
		Args(Bold, Fg(Red), NoBold).Rets(Style{[]Attr{NoBold, Fg(Red)}}),
		Args(Fg(Red), Italic, Fg(Blue), Fg(Green)).Rets(Style{[]Attr{Fg(Green), Italic}}),
		// Foreground and Background are different kinds.
		Args(Fg(Red), Bg(Red)).Rets(Style{[]Attr{Fg(Red), Bg(Red)}}),
	})
}

func TestStyleEqual(t *testing.T) {
	tt.Test(t, tt.Fn("Style.Equal", Style.Equal), tt.Table{
		Args(Style{}, StyleOf()).Rets(true),
		Args(StyleOf(Bold, Italic), StyleOf(Bold, Italic)).Rets(true),
		// Same attrs in a different order are not equal.
		Args(StyleOf(Bold, Italic), StyleOf(Italic, Bold)).Rets(false),
		Args(StyleOf(Bold), StyleOf(NoBold)).Rets(false),
		Args(StyleOf(FontSize(10)), StyleOf(FontSize(12))).Rets(false),
		Args(StyleOf(FontFamily("Serif")), StyleOf(FontFamily("Serif"))).Rets(true),
	})
}

func TestStyleMergedWith(t *testing.T) {
	tt.Test(t, tt.Fn("Style.MergedWith", Style.MergedWith), tt.Table{
		Args(Style{}, Style{}).Rets(Style{}),
		Args(StyleOf(Bold), Style{}).Rets(StyleOf(Bold)),
		Args(Style{}, StyleOf(Bold)).Rets(StyleOf(Bold)),
		Args(StyleOf(Bold, Fg(Red)), StyleOf(Fg(Blue), Italic)).
			Rets(StyleOf(Bold, Fg(Blue), Italic)),
		Args(StyleOf(Fg(Red)), StyleOf(Bold, Fg(Blue))).
			Rets(StyleOf(Fg(Blue), Bold)),
	})
}

func TestStyleWith_DoesNotModifyReceiver(t *testing.T) {
	s := StyleOf(Bold, Fg(Red))
	_ = s.With(Fg(Blue), Italic)
	if want := StyleOf(Bold, Fg(Red)); !s.Equal(want) {
		t.Errorf("receiver changed to %v, want %v", s, want)
	}
}

func TestStyleAttrs_ReturnsCopy(t *testing.T) {
	s := StyleOf(Bold, Italic)
	attrs := s.Attrs()
	attrs[0] = Underlined
	if got, _ := s.Get(KindWeight); got != Bold {
		t.Errorf("style changed through Attrs: %v", s)
	}
}

func TestStyleGet(t *testing.T) {
	s := StyleOf(Bold, Fg(Red), FontSize(9))
	tt.Test(t, tt.Fn("Style.Get", s.Get), tt.Table{
		Args(KindWeight).Rets(Bold, true),
		Args(KindForeground).Rets(Fg(Red), true),
		Args(KindFontSize).Rets(FontSize(9), true),
		Args(KindBackground).Rets(Attr{}, false),
	})
	if s.Len() != 3 || s.IsEmpty() {
		t.Errorf("Len() = %d, IsEmpty() = %v", s.Len(), s.IsEmpty())
	}
	if !(Style{}).IsEmpty() {
		t.Errorf("zero Style is not empty")
	}
}

func TestAttrAccessors(t *testing.T) {
	tests := []struct {
		attr   Attr
		kind   Kind
		on     bool
		color  RGB
		family string
		size   int
	}{
		{Bold, KindWeight, true, RGB{}, "", 0},
		{NoItalic, KindSlant, false, RGB{}, "", 0},
		{StruckThrough, KindStrikethrough, true, RGB{}, "", 0},
		{Underlined, KindUnderline, true, RGB{}, "", 0},
		{Fg(Orange), KindForeground, false, Orange, "", 0},
		{Bg(Pink), KindBackground, false, Pink, "", 0},
		{FontFamily("Mono"), KindFontFamily, false, RGB{}, "Mono", 0},
		{FontSize(14), KindFontSize, false, RGB{}, "", 14},
	}
	for _, test := range tests {
		a := test.attr
		if a.Kind() != test.kind || a.On() != test.on || a.Color() != test.color ||
			a.Family() != test.family || a.Size() != test.size {
			t.Errorf("accessors of %v return (%v, %v, %v, %q, %v)",
				a, a.Kind(), a.On(), a.Color(), a.Family(), a.Size())
		}
	}
}

func TestKindString(t *testing.T) {
	tt.Test(t, tt.Fn("Kind.String", Kind.String), tt.Table{
		Args(KindWeight).Rets("weight"),
		Args(KindFontFamily).Rets("font-family"),
		Args(Kind(100)).Rets("kind(100)"),
	})
}

var styleStringTests = []struct {
	style Style
	str   string
}{
	{Style{}, ""},
	{StyleOf(Bold), "bold"},
	{StyleOf(NoBold, Italic), "no-bold italic"},
	{StyleOf(StruckThrough, NoUnderlined), "strikethrough no-underline"},
	{StyleOf(Fg(Red), Bg(RGB{1, 2, 3})), "fg-#ff0000 bg-#010203"},
	{StyleOf(FontFamily("Helvetica"), FontSize(12)), "family=Helvetica size=12"},
	{StyleOf(FontFamily("Times New Roman")), `family="Times New Roman"`},
	{StyleOf(FontFamily("")), `family=""`},
	{StyleOf(FontFamily("a\nb")), `family="a\nb"`},
	{StyleOf(FontFamily("a'b")), `family="a'b"`},
	{StyleOf(FontFamily(`C:\fonts`)), `family="C:\\fonts"`},
}

func TestStyleString(t *testing.T) {
	for _, test := range styleStringTests {
		if got := test.style.String(); got != test.str {
			t.Errorf("%#v.String() -> %q, want %q", test.style.attrs, got, test.str)
		}
	}
}

func TestParseStyle_RoundTrip(t *testing.T) {
	for _, test := range styleStringTests {
		got, err := ParseStyle(test.str)
		if err != nil {
			t.Errorf("ParseStyle(%q) -> error %v", test.str, err)
		} else if !got.Equal(test.style) {
			t.Errorf("ParseStyle(%q) -> %v, want %v", test.str, got, test.style)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tt.Test(t, tt.Fn("ParseStyle", ParseStyle), tt.Table{
		Args("  bold   italic ").Rets(StyleOf(Bold, Italic), nil),
		Args("red").Rets(StyleOf(Fg(Red)), nil),
		Args("#abc").Rets(StyleOf(Fg(RGB{0xaa, 0xbb, 0xcc})), nil),
		Args("fg-light-gray bg-#FF0000").Rets(StyleOf(Fg(LightGray), Bg(Red)), nil),
		Args("bold no-bold").Rets(StyleOf(NoBold), nil),
		Args(`family="A \"quoted\" face" bold`).
			Rets(StyleOf(FontFamily(`A "quoted" face`), Bold), nil),

		Args("blinking").Rets(Style{}, tt.ErrorIs(ErrInvalidArgument)),
		Args("no-fg").Rets(Style{}, tt.ErrorIs(ErrInvalidArgument)),
		Args("fg-nocolor").Rets(Style{}, tt.ErrorIs(ErrInvalidArgument)),
		Args("size=big").Rets(Style{}, tt.ErrorIs(ErrInvalidArgument)),
		Args(`family="unterminated`).Rets(Style{}, tt.ErrorIs(ErrInvalidArgument)),
	})
}

func TestParseColor(t *testing.T) {
	tt.Test(t, tt.Fn("ParseColor", ParseColor), tt.Table{
		Args("red").Rets(Red, nil),
		Args("dark-gray").Rets(DarkGray, nil),
		Args("#334455").Rets(RGB{0x33, 0x44, 0x55}, nil),
		Args("#f00").Rets(Red, nil),
		Args("#12345").Rets(RGB{}, tt.ErrorIs(ErrInvalidArgument)),
		Args("334455").Rets(RGB{}, tt.ErrorIs(ErrInvalidArgument)),
		Args("").Rets(RGB{}, tt.ErrorIs(ErrInvalidArgument)),
	})
}

func TestRGBString(t *testing.T) {
	tt.Test(t, tt.Fn("RGB.String", RGB.String), tt.Table{
		Args(Black).Rets("#000000"),
		Args(RGB{0x33, 0x44, 0x55}).Rets("#334455"),
		Args(Orange).Rets("#ffc800"),
	})
}

func TestRGBColorful(t *testing.T) {
	for _, c := range []RGB{Black, White, Orange, RGB{1, 128, 254}} {
		if got := FromColorful(c.Colorful()); got != c {
			t.Errorf("FromColorful(%v.Colorful()) -> %v", c, got)
		}
	}
}

func TestStyleCSS(t *testing.T) {
	tt.Test(t, tt.Fn("Style.CSS", Style.CSS), tt.Table{
		Args(Style{}).Rets(""),
		Args(StyleOf(Bold, Fg(Red))).Rets("font-weight: bold; color: #ff0000"),
		Args(StyleOf(NoBold, NoItalic)).Rets("font-weight: normal; font-style: normal"),
		Args(StyleOf(Underlined, Italic, StruckThrough)).
			Rets("text-decoration: underline line-through; font-style: italic"),
		Args(StyleOf(NoUnderlined)).Rets("text-decoration: none"),
		Args(StyleOf(NoUnderlined, StruckThrough)).Rets("text-decoration: line-through"),
		Args(StyleOf(Bg(Blue), FontFamily("Serif"), FontSize(12))).
			Rets("background: #0000ff; font-family: Serif; font-size: 12pt"),
	})
}

func TestKindCSSProperty(t *testing.T) {
	want := map[Kind]string{
		KindWeight:        "font-weight",
		KindSlant:         "font-style",
		KindStrikethrough: "text-decoration",
		KindUnderline:     "text-decoration",
		KindForeground:    "color",
		KindBackground:    "background",
		KindFontFamily:    "font-family",
		KindFontSize:      "font-size",
	}
	for _, k := range Kinds {
		if got := k.CSSProperty(); got != want[k] {
			t.Errorf("%v.CSSProperty() -> %q, want %q", k, got, want[k])
		}
	}
}

func TestStyleTextMarshaling(t *testing.T) {
	s := StyleOf(Bold, Fg(Red))
	p, err := s.MarshalText()
	if err != nil || string(p) != "bold fg-#ff0000" {
		t.Errorf("MarshalText -> (%q, %v)", p, err)
	}
	var got Style
	if err := got.UnmarshalText(p); err != nil || !got.Equal(s) {
		t.Errorf("UnmarshalText -> %v, %v", got, err)
	}
	if err := got.UnmarshalText([]byte("nope")); err == nil {
		t.Errorf("UnmarshalText accepted an invalid style")
	}
}
