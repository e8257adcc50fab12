package textbuf

import (
	"image/color"
	"strconv"
)

// Point is a position in viewport pixels.
type Point struct {
	X, Y float32
}

// Size is the size of the viewport in pixels.
type Size struct {
	Width, Height float32
}

// Rect is a filled rectangle in viewport pixels.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// TextRun is a piece of text drawn in one colour at one font size.
type TextRun struct {
	Text  string
	Color color.NRGBA
	Size  float32
}

// RenderSink receives the primitives of one frame. Rectangles and text are
// drawn in the order they are queued.
type RenderSink interface {
	QueueRect(r Rect, c color.NRGBA)
	QueueText(at Point, runs []TextRun)
}

// Draw queues one frame for the current viewport: the gutter background,
// then for every visible row its marks, the selection, the active line band
// and caret on the caret's row (the caret only while visible), the line number and the highlighted text.
// Column positions are measured with layout.
func (b *TextBuffer) Draw(layout GlyphLayout, sink RenderSink) {
	if layout == nil {
		layout = FixedLayout{Advance: b.cfg.FixedAdvance}
	}
	if b.highlights.Len() != b.doc.Len() {
		b.highlights.violation("highlight index out of date")
		b.highlights.Rebuild(b.doc)
	}
	cfg := b.cfg
	lh := cfg.LineHeight
	offset := b.TextOffset()
	sink.QueueRect(Rect{Width: b.GutterWidth(), Height: b.size.Height}, cfg.GutterColor)

	selection, hasSelection := b.cursor.Selection()
	first, last := b.VisibleRows()
	var marks []Mark
	if first < last {
		visible := Span{
			Start: Location{Row: first},
			End:   Location{Row: last - 1, Column: b.doc.LineLen(last - 1)},
		}
		marks = b.marks.Intersecting(visible)
		hasSelection = hasSelection && !selection.IsEmpty() && !selection.OutsideOf(visible)
	}
	docEnd := b.doc.LastLocation()

	for row := first; row < last; row++ {
		y := cfg.TopPadding + float32(row)*lh - b.scroll
		text := b.doc.LineText(row)
		n := b.doc.LineLen(row)
		var widths []float32
		columnX := func(col int) float32 {
			if widths == nil {
				widths = prefixWidths(layout, text, cfg.FontSize)
			}
			return widths[min(max(col, 0), len(widths)-1)]
		}
		active := row == b.cursor.Location.Row

		for _, m := range marks {
			if s, e, ok := m.Span.Clamp(docEnd).ColumnsForRow(row, n); ok && s < e {
				x0, x1 := columnX(s), columnX(e)
				sink.QueueRect(Rect{X: offset + x0, Y: y, Width: x1 - x0, Height: lh}, m.Color)
			}
		}
		if hasSelection {
			if s, e, ok := selection.ColumnsForRow(row, n); ok && s < e {
				c := cfg.SelectionColor
				if active {
					c = BlendColors(cfg.SelectionBlend, c, cfg.ActiveLineColor)
				}
				x0, x1 := columnX(s), columnX(e)
				sink.QueueRect(Rect{X: offset + x0, Y: y, Width: x1 - x0, Height: lh}, c)
			}
		}

		numberColor := cfg.LineNumberColor
		if active {
			numberColor = cfg.ActiveLineNumberColor
			sink.QueueRect(Rect{Y: y, Width: b.size.Width, Height: lh}, cfg.ActiveLineColor)
			if !b.caretHidden {
				x := offset + columnX(b.cursor.Location.Column)
				sink.QueueRect(Rect{X: x - cfg.CursorWidth/2, Y: y, Width: cfg.CursorWidth, Height: lh}, cfg.CursorColor)
			}
		}

		sink.QueueText(Point{X: cfg.GutterPadding, Y: y}, []TextRun{{
			Text:  strconv.Itoa(row + 1),
			Color: numberColor,
			Size:  cfg.FontSize,
		}})
		sink.QueueText(Point{X: offset, Y: y}, b.textRuns(row))
	}
}

// textRuns cuts a row into its highlight runs.
func (b *TextBuffer) textRuns(row int) []TextRun {
	line := b.doc.Line(row)
	runs := b.highlights.Line(row)
	out := make([]TextRun, 0, len(runs))
	for _, r := range runs {
		start := min(r.Start, len(line))
		end := min(r.End, len(line))
		if start >= end {
			continue
		}
		out = append(out, TextRun{Text: string(line[start:end]), Color: r.Color, Size: b.cfg.FontSize})
	}
	return out
}
