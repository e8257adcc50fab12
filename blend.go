package textbuf

import (
	"image/color"

	"github.com/phrozen/blend"
)

// BlendMode selects how two overlapping translucent colours are combined.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendDarken
	BlendLighten
	BlendMultiply
	BlendOverlay
	BlendScreen
	BlendSoftLight
)

// BlendColors composites top over bottom. The result keeps the higher of
// the two alpha values, so a band blended into a selection is never more
// transparent than either of them. BlendNone returns top unchanged.
func BlendColors(mode BlendMode, top, bottom color.NRGBA) color.NRGBA {
	var c color.Color
	switch mode {
	case BlendDarken:
		c = blend.Darken(top, bottom)
	case BlendLighten:
		c = blend.Lighten(top, bottom)
	case BlendMultiply:
		c = blend.Multiply(top, bottom)
	case BlendOverlay:
		c = blend.Overlay(top, bottom)
	case BlendScreen:
		c = blend.Screen(top, bottom)
	case BlendSoftLight:
		c = blend.SoftLight(top, bottom)
	default:
		return top
	}
	out := color.NRGBAModel.Convert(c).(color.NRGBA)
	out.A = max(top.A, bottom.A)
	return out
}
