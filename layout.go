package textbuf

import (
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// GlyphLayout reports the horizontal advance of every character of text
// rendered at the given font size, one value per rune.
type GlyphLayout interface {
	Advances(text string, size float32) []float32
}

// FixedLayout gives every character the same advance.
type FixedLayout struct {
	Advance float32
}

func (l FixedLayout) Advances(text string, size float32) []float32 {
	adv := make([]float32, 0, len(text))
	for range text {
		adv = append(adv, l.Advance)
	}
	return adv
}

// FaceLayout measures glyphs of an OpenType font. Faces are created lazily
// for every font size that is asked for.
type FaceLayout struct {
	font  *opentype.Font
	faces map[float32]font.Face
}

// NewFaceLayout parses an OpenType or TrueType font.
func NewFaceLayout(ttf []byte) (*FaceLayout, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	return &FaceLayout{font: f, faces: make(map[float32]font.Face)}, nil
}

// NewMonoLayout returns a FaceLayout for Go Mono.
func NewMonoLayout() *FaceLayout {
	l, err := NewFaceLayout(gomono.TTF)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *FaceLayout) Advances(text string, size float32) []float32 {
	face, err := l.face(size)
	adv := make([]float32, 0, len(text))
	for _, r := range text {
		if err != nil {
			adv = append(adv, size/2)
			continue
		}
		a, ok := face.GlyphAdvance(r)
		if !ok {
			a, _ = face.GlyphAdvance('\ufffd')
		}
		adv = append(adv, float32(a)/64)
	}
	return adv
}

func (l *FaceLayout) face(size float32) (font.Face, error) {
	if f, ok := l.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(l.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "face at size %v", size)
	}
	l.faces[size] = f
	return f, nil
}

// prefixWidths returns the x offset of every column of text, including the
// offset after the last character, so widths[i] is where column i starts.
func prefixWidths(layout GlyphLayout, text string, size float32) []float32 {
	adv := layout.Advances(text, size)
	widths := make([]float32, len(adv)+1)
	for i, a := range adv {
		widths[i+1] = widths[i] + a
	}
	return widths
}
