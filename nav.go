package textbuf

type CaretMovement int

const (
	CaretUp CaretMovement = iota + 1
	CaretDown
	CaretLeft
	CaretRight
)

// MoveCaret moves the caret one step in the given direction and clears the
// selection. Vertical moves are clamped to the document and return to the
// column affinity where the target line is long enough. Horizontal moves wrap
// to the neighbouring line and set the affinity. Moves at the document
// boundaries only clear the selection. Unknown directions are ignored.
func (b *TextBuffer) MoveCaret(dir CaretMovement) {
	if dir < CaretUp || dir > CaretRight {
		return
	}
	b.cursor.ClearSelection()
	loc := b.clamp(b.cursor.Location)
	last := b.doc.Len() - 1
	switch dir {
	case CaretUp:
		b.moveToRow(max(loc.Row-1, 0))
	case CaretDown:
		b.moveToRow(min(loc.Row+1, last))
	case CaretLeft:
		if loc.Column > 0 {
			b.cursor.SetColumnWithAffinity(loc.Column - 1)
		} else if loc.Row > 0 {
			b.cursor.SetRow(loc.Row - 1)
			b.cursor.SetColumnWithAffinity(b.doc.LineLen(loc.Row - 1))
		}
	case CaretRight:
		if loc.Column < b.doc.LineLen(loc.Row) {
			b.cursor.SetColumnWithAffinity(loc.Column + 1)
		} else if loc.Row < last {
			b.cursor.SetRow(loc.Row + 1)
			b.cursor.SetColumnWithAffinity(0)
		}
	}
	b.EnsureCursorVisible()
}

func (b *TextBuffer) moveToRow(row int) {
	b.cursor.SetRow(row)
	b.cursor.SetColumn(min(b.doc.LineLen(row), b.cursor.ColumnAffinity))
}
