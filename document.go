package textbuf

import (
	"strings"

	"golang.org/x/exp/slices"
)

// LineSource gives read access to an ordered sequence of lines. It is what
// highlighters consume.
type LineSource interface {
	Len() int
	LineText(n int) string
}

// Document is the ordered sequence of lines of a TextBuffer. It always holds
// at least one line. Lines are stored as runes so that columns are character
// positions.
type Document struct {
	rows [][]rune
}

// NewDocument splits text on '\n'. A trailing newline produces a trailing
// empty line, so joining the lines again reproduces text exactly.
func NewDocument(text string) *Document {
	parts := strings.Split(text, "\n")
	rows := make([][]rune, len(parts))
	for i, p := range parts {
		rows[i] = []rune(p)
	}
	if len(rows) == 0 {
		rows = append(rows, []rune{})
	}
	return &Document{rows: rows}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.rows)
}

// Line returns the runes of line n. The slice must not be modified.
func (d *Document) Line(n int) []rune {
	return d.rows[n]
}

// LineText returns line n as a string, or the empty string if n is out of bounds.
func (d *Document) LineText(n int) string {
	if n < 0 || n >= len(d.rows) {
		return ""
	}
	return string(d.rows[n])
}

// LineLen returns the number of characters of line n.
func (d *Document) LineLen(n int) int {
	return len(d.rows[n])
}

// LastLocation returns the location after the last character of the document.
func (d *Document) LastLocation() Location {
	last := len(d.rows) - 1
	return Location{Row: last, Column: len(d.rows[last])}
}

// Lines returns a copy of all lines as strings.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.rows))
	for i := range d.rows {
		lines[i] = string(d.rows[i])
	}
	return lines
}

// Text joins all lines with a single '\n'.
func (d *Document) Text() string {
	var sb strings.Builder
	for i := range d.rows {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(d.rows[i]))
	}
	return sb.String()
}

// InsertRune inserts r before the character at loc. Columns past the end of
// the line append.
func (d *Document) InsertRune(loc Location, r rune) {
	line := d.rows[loc.Row]
	col := min(max(loc.Column, 0), len(line))
	d.rows[loc.Row] = slices.Insert(line, col, r)
}

// DeleteRune removes the character at loc and returns true, or returns false
// if there is no character at loc.
func (d *Document) DeleteRune(loc Location) bool {
	line := d.rows[loc.Row]
	if loc.Column < 0 || loc.Column >= len(line) {
		return false
	}
	d.rows[loc.Row] = slices.Delete(line, loc.Column, loc.Column+1)
	return true
}

// Split breaks the line at loc in two. The tail becomes a new line below.
func (d *Document) Split(loc Location) {
	line := d.rows[loc.Row]
	col := min(max(loc.Column, 0), len(line))
	tail := slices.Clone(line[col:])
	d.rows[loc.Row] = line[:col:col]
	d.rows = slices.Insert(d.rows, loc.Row+1, tail)
}

// JoinWithPrevious appends line row to the end of line row-1 and removes it.
// It returns the former length of the previous line, or -1 if row has no
// previous line.
func (d *Document) JoinWithPrevious(row int) int {
	if row <= 0 || row >= len(d.rows) {
		return -1
	}
	prev := len(d.rows[row-1])
	d.rows[row-1] = append(d.rows[row-1], d.rows[row]...)
	d.rows = slices.Delete(d.rows, row, row+1)
	return prev
}
