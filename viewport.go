package textbuf

import "github.com/chewxy/math32"

// Scroll returns the pixel offset of the top of the viewport.
func (b *TextBuffer) Scroll() float32 {
	return b.scroll
}

// MaxScroll returns the largest scroll offset: the last line at the top of
// the viewport plus the scroll margin.
func (b *TextBuffer) MaxScroll() float32 {
	n := b.doc.Len()
	if n == 0 {
		return 0
	}
	return float32(n-1)*b.cfg.LineHeight + b.cfg.ScrollMargin
}

// ScrollBy moves the viewport by delta pixels, clamped to [0, MaxScroll].
func (b *TextBuffer) ScrollBy(delta float32) {
	b.scroll = math32.Min(math32.Max(b.scroll+delta, 0), b.MaxScroll())
}

// EnsureCursorVisible scrolls the caret's row into view. A row above the
// viewport is aligned with its top; a row below is brought in with the
// scroll margin underneath. Calling it again without moving the caret does
// not scroll.
func (b *TextBuffer) EnsureCursorVisible() {
	lh := b.cfg.LineHeight
	y := float32(b.cursor.Location.Row) * lh
	switch {
	case y < b.scroll:
		b.scroll = y
	case y+lh > b.scroll+b.size.Height:
		// never scroll past the row itself, or a viewport lower than a
		// row would move on every call
		b.scroll = math32.Min(y-b.size.Height+lh+b.cfg.ScrollMargin, y)
	}
}

// VisibleRows returns the first row and one past the last row the draw pass
// visits: rows whose top edge lies between one line above the viewport and
// its bottom edge.
func (b *TextBuffer) VisibleRows() (int, int) {
	lh := b.cfg.LineHeight
	top := b.scroll - b.cfg.TopPadding
	first := int(math32.Ceil((top - lh) / lh))
	last := int(math32.Floor((top+b.size.Height)/lh)) + 1
	first = min(max(first, 0), b.doc.Len())
	last = min(max(last, first), b.doc.Len())
	return first, last
}
