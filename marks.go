package textbuf

import (
	"image/color"
	"sort"

	"github.com/rdleal/intervalst/interval"
)

// Mark is a named span drawn with a background colour, for example a search
// match.
type Mark struct {
	Name  string
	Span  Span
	Color color.NRGBA
}

// MarkSet holds marks in an interval tree keyed by location, so the draw pass
// only visits marks on visible rows. Marks are not moved by edits; they are
// clamped to the document when drawn.
type MarkSet struct {
	marks  map[string]Mark
	lookup *interval.MultiValueSearchTree[string, Location]
}

func NewMarkSet() *MarkSet {
	return &MarkSet{
		marks:  make(map[string]Mark),
		lookup: interval.NewMultiValueSearchTreeWithOptions[string, Location](CmpLocation, interval.TreeWithIntervalPoint()),
	}
}

// Add adds or replaces the mark with the given name.
func (m *MarkSet) Add(name string, span Span, c color.NRGBA) error {
	m.Remove(name)
	span = NewSpan(span.Start, span.End)
	if err := m.lookup.Insert(span.Start, span.End, name); err != nil {
		return err
	}
	m.marks[name] = Mark{Name: name, Span: span, Color: c}
	return nil
}

// Remove deletes the mark with the given name and returns true if there was one.
func (m *MarkSet) Remove(name string) bool {
	mark, ok := m.marks[name]
	if !ok {
		return false
	}
	delete(m.marks, name)
	// the tree stores all names of one interval together
	_ = m.lookup.Delete(mark.Span.Start, mark.Span.End)
	var rest []string
	for n, other := range m.marks {
		if other.Span == mark.Span {
			rest = append(rest, n)
		}
	}
	if len(rest) > 0 {
		_ = m.lookup.Insert(mark.Span.Start, mark.Span.End, rest...)
	}
	return true
}

// Lookup returns the mark with the given name.
func (m *MarkSet) Lookup(name string) (Mark, bool) {
	mark, ok := m.marks[name]
	return mark, ok
}

// Len returns the number of marks.
func (m *MarkSet) Len() int {
	return len(m.marks)
}

// Clear removes all marks.
func (m *MarkSet) Clear() {
	for name := range m.marks {
		m.Remove(name)
	}
}

// Intersecting returns the marks that share a location with span, ordered by
// start location and then name.
func (m *MarkSet) Intersecting(span Span) []Mark {
	names, ok := m.lookup.AllIntersections(span.Start, span.End)
	if !ok {
		return nil
	}
	out := make([]Mark, 0, len(names))
	for _, n := range names {
		if mark, ok := m.marks[n]; ok {
			out = append(out, mark)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := CmpLocation(out[i].Span.Start, out[j].Span.Start); c != 0 {
			return c < 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}
