package textbuf

// Location is a caret position in the document. Column is a raw index into
// the rune sequence of the line, not a byte offset and not a grapheme index.
type Location struct {
	Row    int
	Column int
}

// CmpLocation lexicographically compares two locations and returns -1 if a is
// before b, 0 if they are equal, and 1 if a is after b. Rows are compared
// first, then columns.
func CmpLocation(a, b Location) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Column < b.Column {
		return -1
	}
	if a.Column > b.Column {
		return 1
	}
	return 0
}

// Before returns true if a is strictly before b.
func (a Location) Before(b Location) bool {
	return CmpLocation(a, b) < 0
}

func MinLocation(a, b Location) Location {
	if CmpLocation(a, b) <= 0 {
		return a
	}
	return b
}

func MaxLocation(a, b Location) Location {
	if CmpLocation(a, b) < 0 {
		return b
	}
	return a
}

// Span is an ordered range between two locations. A Span obtained by NewSpan
// always satisfies Start <= End.
type Span struct {
	Start Location
	End   Location
}

// NewSpan creates a span from two locations in any order, so a selection
// dragged upwards yields the same span as one dragged downwards.
func NewSpan(a, b Location) Span {
	return Span{Start: MinLocation(a, b), End: MaxLocation(a, b)}
}

// IsEmpty returns true if the span starts where it ends.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// ContainsRow returns true if the span touches the given row.
func (s Span) ContainsRow(row int) bool {
	return s.Start.Row <= row && s.End.Row >= row
}

// ColumnsForRow returns the inclusive start and exclusive end column the span
// covers on the given row, whose length is lineLen. The last return value is
// false if the span does not touch the row.
//
// There are four cases: the span starts and ends on the row, it starts on the
// row and continues below, it ends on the row after starting above, or it
// covers the whole row.
func (s Span) ColumnsForRow(row, lineLen int) (int, int, bool) {
	if !s.ContainsRow(row) {
		return 0, 0, false
	}
	switch {
	case s.Start.Row == s.End.Row:
		return s.Start.Column, s.End.Column, true
	case s.Start.Row == row:
		return s.Start.Column, lineLen, true
	case s.End.Row == row:
		return 0, s.End.Column, true
	default:
		return 0, lineLen, true
	}
}

// OutsideOf returns true if s and o share no location.
func (s Span) OutsideOf(o Span) bool {
	return CmpLocation(s.End, o.Start) < 0 || CmpLocation(s.Start, o.End) > 0
}

// Clamp computes a span that lies within [(0,0), last]. It can be used when a
// span was recorded against an older version of the document.
func (s Span) Clamp(last Location) Span {
	r := NewSpan(s.Start, s.End)
	if r.Start.Row < 0 {
		r.Start = Location{}
	}
	if r.Start.Column < 0 {
		r.Start.Column = 0
	}
	r.Start = MinLocation(r.Start, last)
	r.End = MinLocation(r.End, last)
	return r
}
