package fyneview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/rasteric/textbuf"
)

// canvasSink turns queued primitives into canvas objects in queue order.
type canvasSink struct {
	layout  textbuf.GlyphLayout
	objects []fyne.CanvasObject
}

func (s *canvasSink) QueueRect(r textbuf.Rect, c color.NRGBA) {
	rect := canvas.NewRectangle(c)
	rect.Move(fyne.NewPos(r.X, r.Y))
	rect.Resize(fyne.NewSize(r.Width, r.Height))
	s.objects = append(s.objects, rect)
}

func (s *canvasSink) QueueText(at textbuf.Point, runs []textbuf.TextRun) {
	x := at.X
	for _, run := range runs {
		t := canvas.NewText(run.Text, run.Color)
		t.TextSize = run.Size
		t.TextStyle = textStyle
		t.Move(fyne.NewPos(x, at.Y))
		s.objects = append(s.objects, t)
		for _, a := range s.layout.Advances(run.Text, run.Size) {
			x += a
		}
	}
}

var textStyle = fyne.TextStyle{Monospace: true}

// MeasureLayout measures glyphs with the fonts of the current fyne theme.
// Advances are cached per character and size.
type MeasureLayout struct {
	cache map[measureKey]float32
}

type measureKey struct {
	r    rune
	size float32
}

func NewMeasureLayout() *MeasureLayout {
	return &MeasureLayout{cache: make(map[measureKey]float32)}
}

func (l *MeasureLayout) Advances(text string, size float32) []float32 {
	adv := make([]float32, 0, len(text))
	for _, r := range text {
		k := measureKey{r: r, size: size}
		a, ok := l.cache[k]
		if !ok {
			a = fyne.MeasureText(string(r), size, textStyle).Width
			l.cache[k] = a
		}
		adv = append(adv, a)
	}
	return adv
}
