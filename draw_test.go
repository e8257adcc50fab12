package textbuf

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawOp struct {
	rect  Rect
	at    Point
	runs  []TextRun
	color color.NRGBA
}

// recordingSink remembers every queued primitive in order.
type recordingSink struct {
	ops []drawOp
}

func (s *recordingSink) QueueRect(r Rect, c color.NRGBA) {
	s.ops = append(s.ops, drawOp{rect: r, color: c})
}

func (s *recordingSink) QueueText(at Point, runs []TextRun) {
	s.ops = append(s.ops, drawOp{at: at, runs: runs})
}

func (s *recordingSink) rects() []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.runs == nil && op.rect != (Rect{}) {
			out = append(out, op)
		}
	}
	return out
}

func (s *recordingSink) texts() []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.runs != nil {
			out = append(out, op)
		}
	}
	return out
}

func drawBuffer(lines ...string) *TextBuffer {
	b := newTestBuffer(lines...)
	b.Resize(Size{Width: 400, Height: 200})
	return b
}

func TestDraw_Frame(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	b := drawBuffer("abc", "de", "f")
	cfg := b.Config()
	b.SetCursor(Location{1, 1})
	sink := &recordingSink{}
	b.Draw(FixedLayout{Advance: 10}, sink)

	rects := sink.rects()
	require.Len(rects, 3)
	assert.Equal(Rect{Width: 40, Height: 200}, rects[0].rect)
	assert.Equal(cfg.GutterColor, rects[0].color)
	assert.Equal(Rect{Y: 45, Width: 400, Height: 40}, rects[1].rect)
	assert.Equal(cfg.ActiveLineColor, rects[1].color)
	assert.Equal(Rect{X: 68, Y: 45, Width: 4, Height: 40}, rects[2].rect)
	assert.Equal(cfg.CursorColor, rects[2].color)

	texts := sink.texts()
	require.Len(texts, 6)
	assert.Equal(Point{X: 10, Y: 5}, texts[0].at)
	assert.Equal("1", texts[0].runs[0].Text)
	assert.Equal(cfg.LineNumberColor, texts[0].runs[0].Color)
	assert.Equal(Point{X: 60, Y: 5}, texts[1].at)
	assert.Equal([]TextRun{{Text: "abc", Color: cfg.Theme.Color(TokenText), Size: 40}}, texts[1].runs)
	assert.Equal("2", texts[2].runs[0].Text)
	assert.Equal(cfg.ActiveLineNumberColor, texts[2].runs[0].Color)
	assert.Equal(Point{X: 60, Y: 85}, texts[5].at)
}

func TestDraw_HiddenCaret(t *testing.T) {
	assert := assert.New(t)

	b := drawBuffer("abc")
	b.SetCaretVisible(false)
	sink := &recordingSink{}
	b.Draw(FixedLayout{Advance: 10}, sink)

	rects := sink.rects()
	assert.Len(rects, 2)
	assert.Equal(b.Config().ActiveLineColor, rects[1].color)

	b.SetCaretVisible(true)
	sink = &recordingSink{}
	b.Draw(FixedLayout{Advance: 10}, sink)
	assert.Len(sink.rects(), 3)
}

func TestDraw_SelectionAndMarks(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	b := drawBuffer("abc", "de", "f")
	cfg := b.Config()
	b.Select(NewSpan(Location{0, 1}, Location{1, 1}))
	require.NoError(b.Marks().Add("m", Span{Location{2, 0}, Location{2, 1}}, red))
	sink := &recordingSink{}
	b.Draw(FixedLayout{Advance: 10}, sink)

	rects := sink.rects()
	require.Len(rects, 6)
	assert.Equal(Rect{X: 70, Y: 5, Width: 20, Height: 40}, rects[1].rect)
	assert.Equal(cfg.SelectionColor, rects[1].color)
	assert.Equal(Rect{X: 60, Y: 45, Width: 10, Height: 40}, rects[2].rect)
	assert.Equal(BlendColors(cfg.SelectionBlend, cfg.SelectionColor, cfg.ActiveLineColor), rects[2].color)
	assert.Equal(Rect{Y: 45, Width: 400, Height: 40}, rects[3].rect)
	assert.Equal(Rect{X: 68, Y: 45, Width: 4, Height: 40}, rects[4].rect)
	assert.Equal(Rect{X: 60, Y: 85, Width: 10, Height: 40}, rects[5].rect)
	assert.Equal(red, rects[5].color)
}

func TestDraw_OnlyVisibleRows(t *testing.T) {
	assert := assert.New(t)

	b := drawBuffer(manyLines(100)...)
	b.ScrollBy(405)
	sink := &recordingSink{}
	b.Draw(FixedLayout{Advance: 10}, sink)

	texts := sink.texts()
	assert.Len(texts, 2*7)
	assert.Equal("10", texts[0].runs[0].Text)
	assert.Equal(float32(-40), texts[0].at.Y)
	assert.Equal("16", texts[len(texts)-2].runs[0].Text)
	assert.Equal(float32(200), texts[len(texts)-1].at.Y)
}

func TestDraw_SkipsSelectionOutsideViewport(t *testing.T) {
	assert := assert.New(t)

	b := drawBuffer(manyLines(100)...)
	b.Select(NewSpan(Location{0, 1}, Location{1, 2}))
	b.ScrollBy(2000)
	sink := &recordingSink{}
	b.Draw(FixedLayout{Advance: 10}, sink)

	for _, op := range sink.rects() {
		assert.NotEqual(b.Config().SelectionColor, op.color)
	}
}

func TestDraw_StaleMarksAreClamped(t *testing.T) {
	assert := assert.New(t)

	b := drawBuffer("abcdef")
	assert.NoError(b.Marks().Add("m", Span{Location{0, 4}, Location{0, 6}}, red))
	b.SetCursor(Location{0, 6})
	for i := 0; i < 4; i++ {
		b.HandleChar(RuneBackspace)
	}
	assert.NotPanics(func() { b.Draw(nil, &recordingSink{}) })
}
