package textbuf

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TextBuffer is a single open document together with its caret, highlight
// index and viewport. It is not safe for concurrent use; every event is
// handled to completion before the next one.
type TextBuffer struct {
	doc        *Document
	cursor     Cursor
	highlights *HighlightIndex
	marks      *MarkSet

	scroll      float32
	size        Size
	dragging    bool
	caretHidden bool
	layout      GlyphLayout

	path string
	cfg  *Config
	log  *zap.Logger
}

// New returns a buffer holding text that is not backed by a file. Save fails
// on such a buffer.
func New(text string, size Size, cfg *Config) *TextBuffer {
	return newBuffer(text, "", size, cfg)
}

// Load reads the file at path with the configured store and returns a buffer
// with the caret at the start and a full highlight index. A returned error
// wraps ErrLoad; callers are expected to give up on the document.
func Load(path string, size Size, cfg *Config) (*TextBuffer, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	store := cfg.Store
	if store == nil {
		store = NewFileStore()
	}
	text, err := store.ReadAll(path)
	if err != nil {
		cfg.logger().Error("load failed", zap.String("path", path), zap.Error(err))
		return nil, wrapError(ErrLoad, err, path)
	}
	b := newBuffer(text, path, size, cfg)
	b.log.Info("loaded", zap.String("path", path), zap.Int("lines", b.doc.Len()))
	return b, nil
}

func newBuffer(text, path string, size Size, cfg *Config) *TextBuffer {
	if cfg == nil {
		cfg = NewConfig()
	}
	b := &TextBuffer{
		doc:   NewDocument(text),
		marks: NewMarkSet(),
		size:  size,
		path:  path,
		cfg:   cfg,
		log:   cfg.logger(),
	}
	b.highlights = NewHighlightIndex(b.pickHighlighter(), b.textColor(), cfg)
	b.highlights.Rebuild(b.doc)
	return b
}

func (b *TextBuffer) pickHighlighter() Highlighter {
	if b.cfg.Highlighter != nil {
		return b.cfg.Highlighter
	}
	if b.path != "" && b.cfg.Languages != nil {
		return b.cfg.Languages.HighlighterFor(b.path, b.cfg)
	}
	return PlainHighlighter{Color: b.textColor()}
}

func (b *TextBuffer) textColor() color.NRGBA {
	if b.cfg.Theme == nil {
		return SolarizedDark().Color(TokenText)
	}
	return b.cfg.Theme.Color(TokenText)
}

// Save joins all lines with '\n' and writes them to the buffer's file. A
// returned error wraps ErrSave.
func (b *TextBuffer) Save() error {
	if b.path == "" {
		return wrapError(ErrSave, errors.New("buffer has no file"), b.path)
	}
	store := b.cfg.Store
	if store == nil {
		store = NewFileStore()
	}
	if err := store.WriteAll(b.path, b.doc.Text()); err != nil {
		b.log.Error("save failed", zap.String("path", b.path), zap.Error(err))
		return wrapError(ErrSave, err, b.path)
	}
	b.log.Info("saved", zap.String("path", b.path), zap.Int("lines", b.doc.Len()))
	return nil
}

// Resize sets the viewport size in pixels.
func (b *TextBuffer) Resize(size Size) {
	b.size = size
}

// Size returns the viewport size.
func (b *TextBuffer) Size() Size {
	return b.size
}

// SetLayout sets the glyph layout this buffer hit-tests with, overriding
// Config.Layout. A nil layout restores the configured one.
func (b *TextBuffer) SetLayout(l GlyphLayout) {
	b.layout = l
}

// HitTestLayout returns the layout used to resolve clicked columns, nil if
// columns are approximated with FixedAdvance.
func (b *TextBuffer) HitTestLayout() GlyphLayout {
	if b.layout != nil {
		return b.layout
	}
	return b.cfg.Layout
}

// SetCaretVisible shows or hides the caret in the draw pass. The active
// line band is drawn either way.
func (b *TextBuffer) SetCaretVisible(visible bool) {
	b.caretHidden = !visible
}

func (b *TextBuffer) CaretVisible() bool {
	return !b.caretHidden
}

// Path returns the file the buffer was loaded from, empty for buffers made by New.
func (b *TextBuffer) Path() string {
	return b.path
}

// Config returns the configuration the buffer was created with.
func (b *TextBuffer) Config() *Config {
	return b.cfg
}

// Document returns the buffer's lines. Modify them only through the buffer.
func (b *TextBuffer) Document() *Document {
	return b.doc
}

func (b *TextBuffer) LineCount() int {
	return b.doc.Len()
}

// Lines returns a copy of all lines.
func (b *TextBuffer) Lines() []string {
	return b.doc.Lines()
}

// Text returns the whole document as it would be saved.
func (b *TextBuffer) Text() string {
	return b.doc.Text()
}

// Cursor returns a copy of the caret.
func (b *TextBuffer) Cursor() Cursor {
	return b.cursor
}

// SetCursor moves the caret to loc, clamped to the document, and sets the
// column affinity to the new column. The selection is kept.
func (b *TextBuffer) SetCursor(loc Location) {
	loc = b.clamp(loc)
	b.cursor.SetRow(loc.Row)
	b.cursor.SetColumnWithAffinity(loc.Column)
}

// Selection returns the selected span, or false if nothing is selected.
func (b *TextBuffer) Selection() (Span, bool) {
	return b.cursor.Selection()
}

// Select selects span and puts the caret at its end.
func (b *TextBuffer) Select(span Span) {
	b.cursor.SetAnchor(b.clamp(span.Start))
	b.SetCursor(span.End)
}

// SelectedText returns the text of the selection, lines joined with '\n'.
func (b *TextBuffer) SelectedText() string {
	span, ok := b.cursor.Selection()
	if !ok || span.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for row := span.Start.Row; row <= span.End.Row && row < b.doc.Len(); row++ {
		line := b.doc.Line(row)
		start, end, _ := span.ColumnsForRow(row, len(line))
		if row > span.Start.Row {
			sb.WriteByte('\n')
		}
		// the anchor is not moved by edits and may lie past the line end
		end = min(end, len(line))
		if start < end {
			sb.WriteString(string(line[start:end]))
		}
	}
	return sb.String()
}

func (b *TextBuffer) Highlights() *HighlightIndex {
	return b.highlights
}

func (b *TextBuffer) Marks() *MarkSet {
	return b.marks
}

// FindAll returns the spans of all non-overlapping occurrences of query, in
// document order. Matches do not cross line breaks.
func (b *TextBuffer) FindAll(query string) []Span {
	q := []rune(query)
	if len(q) == 0 {
		return nil
	}
	var out []Span
	for row := 0; row < b.doc.Len(); row++ {
		line := b.doc.Line(row)
		for col := 0; col+len(q) <= len(line); {
			if runesEqual(line[col:col+len(q)], q) {
				out = append(out, Span{
					Start: Location{Row: row, Column: col},
					End:   Location{Row: row, Column: col + len(q)},
				})
				col += len(q)
				continue
			}
			col++
		}
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clamp limits loc to an existing row and a column within that row.
func (b *TextBuffer) clamp(loc Location) Location {
	row := min(max(loc.Row, 0), b.doc.Len()-1)
	col := min(max(loc.Column, 0), b.doc.LineLen(row))
	return Location{Row: row, Column: col}
}

// rehighlight updates the highlight index after an edit that started at row
// first and changed the line count by delta.
func (b *TextBuffer) rehighlight(first, delta int) {
	b.highlights.Update(b.doc, first, delta)
	if !b.cfg.Debug {
		return
	}
	if row := b.highlights.CheckCoverage(b.doc); row >= 0 {
		b.highlights.violation("highlight runs do not cover line", zap.Int("row", row))
	}
}
