package textbuf

// Cursor is the caret of a TextBuffer.
//
// ColumnAffinity is the column the caret tries to return to when it moves
// vertically, so passing through a shorter line and back restores the
// original column. The selection anchor is unset when nothing is selected.
type Cursor struct {
	Location       Location
	ColumnAffinity int

	anchor    Location
	hasAnchor bool
}

func (c *Cursor) SetRow(row int) {
	c.Location.Row = row
}

// SetColumn moves the caret within its row without changing the affinity.
func (c *Cursor) SetColumn(col int) {
	c.Location.Column = col
}

// SetColumnWithAffinity moves the caret within its row and remembers col as
// the preferred column for vertical movement.
func (c *Cursor) SetColumnWithAffinity(col int) {
	c.Location.Column = col
	c.ColumnAffinity = col
}

// Anchor returns the selection anchor and true, or false if nothing is selected.
func (c *Cursor) Anchor() (Location, bool) {
	return c.anchor, c.hasAnchor
}

// SetAnchor sets the selection anchor.
func (c *Cursor) SetAnchor(loc Location) {
	c.anchor = loc
	c.hasAnchor = true
}

// ClearSelection removes the selection anchor.
func (c *Cursor) ClearSelection() {
	c.anchor = Location{}
	c.hasAnchor = false
}

// Selection returns the span between the anchor and the caret, or false if
// nothing is selected.
func (c *Cursor) Selection() (Span, bool) {
	if !c.hasAnchor {
		return Span{}, false
	}
	return NewSpan(c.anchor, c.Location), true
}
