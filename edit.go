package textbuf

// Control characters understood by HandleChar.
const (
	RuneBackspace = '\b'
	RuneDelete    = '\x7f'
)

// HandleChar applies one character of keyboard input at the caret. '\n' and
// '\r' split the line, RuneBackspace and RuneDelete remove a character and
// '\t' is ignored. Any other character is inserted.
//
// Every input, ignored ones included, is followed by a visibility correction
// of the viewport. Edits also update the highlight index.
func (b *TextBuffer) HandleChar(r rune) {
	switch r {
	case '\n', '\r':
		b.Return()
	case RuneBackspace:
		b.Backspace()
	case RuneDelete:
		b.DeleteForward()
	case '\t':
		b.EnsureCursorVisible()
	default:
		b.InsertRune(r)
	}
}

// InsertRune inserts r at the caret and moves the caret behind it. The
// column affinity is left alone.
func (b *TextBuffer) InsertRune(r rune) {
	loc := b.clamp(b.cursor.Location)
	b.doc.InsertRune(loc, r)
	b.cursor.SetRow(loc.Row)
	b.cursor.SetColumn(loc.Column + 1)
	b.EnsureCursorVisible()
	b.rehighlight(loc.Row, 0)
}

// Return splits the line at the caret. The caret moves to the start of the
// new line.
func (b *TextBuffer) Return() {
	loc := b.clamp(b.cursor.Location)
	b.doc.Split(loc)
	b.cursor.SetRow(loc.Row + 1)
	b.cursor.SetColumnWithAffinity(0)
	b.EnsureCursorVisible()
	b.rehighlight(loc.Row, 1)
}

// Backspace removes the character before the caret. At the start of a line
// the line is joined to the previous one; at the start of the document only
// the viewport is corrected.
func (b *TextBuffer) Backspace() {
	loc := b.clamp(b.cursor.Location)
	switch {
	case loc.Column > 0:
		b.doc.DeleteRune(Location{Row: loc.Row, Column: loc.Column - 1})
		b.cursor.SetColumnWithAffinity(loc.Column - 1)
		b.EnsureCursorVisible()
		b.rehighlight(loc.Row, 0)
	case loc.Row > 0:
		prev := b.doc.JoinWithPrevious(loc.Row)
		b.cursor.SetRow(loc.Row - 1)
		b.cursor.SetColumnWithAffinity(prev)
		b.EnsureCursorVisible()
		b.rehighlight(loc.Row-1, -1)
	default:
		b.EnsureCursorVisible()
	}
}

// DeleteForward removes the character under the caret, if there is one. The
// caret does not move.
func (b *TextBuffer) DeleteForward() {
	loc := b.clamp(b.cursor.Location)
	deleted := b.doc.DeleteRune(loc)
	b.EnsureCursorVisible()
	if deleted {
		b.rehighlight(loc.Row, 0)
	}
}
