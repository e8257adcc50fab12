package textbuf

import (
	"strconv"

	"github.com/chewxy/math32"
)

// digits returns the number of decimal digits of the largest line number.
func (b *TextBuffer) digits() int {
	return len(strconv.Itoa(b.doc.Len()))
}

// GutterWidth returns the width of the line number background.
func (b *TextBuffer) GutterWidth() float32 {
	return float32(b.digits())*b.cfg.DigitWidth + 2*b.cfg.GutterPadding
}

// TextOffset returns the x position where column 0 of every line is drawn.
// It grows with the number of digits of the line count.
func (b *TextBuffer) TextOffset() float32 {
	return b.cfg.GutterPadding + b.cfg.GutterGap + float32(b.digits())*b.cfg.DigitWidth
}

// HitTest maps a pointer position in viewport pixels to a location. Points
// left of the text map to column 0, points below the last line map to the
// end of the document, and columns are clamped to the line length.
func (b *TextBuffer) HitTest(p Point) Location {
	x := math32.Max(p.X-b.TextOffset(), 0)
	y := p.Y + b.scroll
	row := max(int(math32.Floor(y/b.cfg.LineHeight)), 0)
	if row >= b.doc.Len() {
		return b.doc.LastLocation()
	}
	col := b.columnAt(row, x)
	return Location{Row: row, Column: min(col, b.doc.LineLen(row))}
}

// columnAt resolves a text relative x position on row to the nearest column
// boundary.
func (b *TextBuffer) columnAt(row int, x float32) int {
	layout := b.HitTestLayout()
	if !b.cfg.PreciseHitTest || layout == nil {
		return int(math32.Round(x / b.cfg.FixedAdvance))
	}
	adv := layout.Advances(b.doc.LineText(row), b.cfg.FontSize)
	var at float32
	for i, a := range adv {
		if x < at+a/2 {
			return i
		}
		at += a
	}
	return len(adv)
}

// HandleMouseDown puts the caret at the clicked location, clears the
// selection and starts a drag.
func (b *TextBuffer) HandleMouseDown(p Point) {
	b.cursor.ClearSelection()
	b.moveCaretTo(b.HitTest(p))
	b.dragging = true
}

// HandleMouseMove extends a drag: the first move anchors the selection at
// the caret's location from before the move, later moves only move the
// caret. Moves without a drag are ignored.
func (b *TextBuffer) HandleMouseMove(p Point) {
	if !b.dragging {
		return
	}
	if _, ok := b.cursor.Anchor(); !ok {
		b.cursor.SetAnchor(b.cursor.Location)
	}
	b.moveCaretTo(b.HitTest(p))
}

// HandleMouseUp ends a drag and keeps the selection.
func (b *TextBuffer) HandleMouseUp() {
	b.dragging = false
}

// Dragging returns true between HandleMouseDown and HandleMouseUp.
func (b *TextBuffer) Dragging() bool {
	return b.dragging
}

func (b *TextBuffer) moveCaretTo(loc Location) {
	b.cursor.SetRow(loc.Row)
	b.cursor.SetColumnWithAffinity(loc.Column)
}
