package textbuf

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// TokenClass is the syntactic category a RuleHighlighter assigns to a range of text.
type TokenClass int

const (
	TokenText TokenClass = iota
	TokenKeyword
	TokenType
	TokenString
	TokenNumber
	TokenComment
	TokenPunctuation
)

// Theme maps token classes to colours.
type Theme struct {
	Name   string
	Colors map[TokenClass]color.NRGBA
}

// Color returns the colour of class, falling back to the text colour.
func (t *Theme) Color(class TokenClass) color.NRGBA {
	if c, ok := t.Colors[class]; ok {
		return c
	}
	return t.Colors[TokenText]
}

// SolarizedDark returns the Solarized (dark) palette.
func SolarizedDark() *Theme {
	return &Theme{
		Name: "solarized-dark",
		Colors: map[TokenClass]color.NRGBA{
			TokenText:        MustHex("#839496"),
			TokenKeyword:     MustHex("#859900"),
			TokenType:        MustHex("#b58900"),
			TokenString:      MustHex("#2aa198"),
			TokenNumber:      MustHex("#d33682"),
			TokenComment:     MustHex("#586e75"),
			TokenPunctuation: MustHex("#93a1a1"),
		},
	}
}

// SolarizedLight returns the Solarized (light) palette.
func SolarizedLight() *Theme {
	t := SolarizedDark()
	t.Name = "solarized-light"
	t.Colors[TokenText] = MustHex("#657b83")
	t.Colors[TokenComment] = MustHex("#93a1a1")
	t.Colors[TokenPunctuation] = MustHex("#586e75")
	return t
}

// ThemeByName returns a built-in theme, or nil if there is none with that name.
func ThemeByName(name string) *Theme {
	switch name {
	case "solarized-dark", "":
		return SolarizedDark()
	case "solarized-light":
		return SolarizedLight()
	}
	return nil
}

// ParseHex parses a colour in #rrggbb notation.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "colour %q", s)
	}
	return toNRGBA(c, 1), nil
}

// MustHex is like ParseHex but panics on malformed input. It is meant for
// colour literals.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA builds a colour from float components in [0, 1].
func RGBA(r, g, b, a float64) color.NRGBA {
	return toNRGBA(colorful.Color{R: r, G: g, B: b}, a)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
