package textbuf

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pkg/errors"
)

// ChromaHighlighter highlights with a chroma lexer and style. Chroma lexers
// work on whole texts, so the index asks for all lines at once through
// HighlightLines. A per-line session is available too; it lexes each line
// on its own and therefore misses constructs that span lines.
type ChromaHighlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewChromaHighlighter picks a lexer by file name and a style by name. An
// unknown style falls back to chroma's default.
func NewChromaHighlighter(path, style string) (*ChromaHighlighter, error) {
	l := lexers.Match(filepath.Base(path))
	if l == nil {
		return nil, wrapError(ErrNoLexer, nil, path)
	}
	return NewChromaHighlighterFor(l, style), nil
}

// NewChromaHighlighterFor wraps an explicit lexer.
func NewChromaHighlighterFor(l chroma.Lexer, style string) *ChromaHighlighter {
	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}
	return &ChromaHighlighter{lexer: chroma.Coalesce(l), style: s}
}

func (h *ChromaHighlighter) Begin() HighlightSession {
	return chromaSession{h: h}
}

type chromaSession struct {
	h *ChromaHighlighter
}

func (s chromaSession) AdvanceLine(line string) []Run {
	runs, err := s.h.highlight(line, 1)
	if err != nil || len(runs) == 0 {
		return nil
	}
	return runs[0]
}

// HighlightLines lexes the whole document and splits the tokens into rows.
func (h *ChromaHighlighter) HighlightLines(src LineSource) [][]Run {
	lines := make([]string, src.Len())
	for i := range lines {
		lines[i] = src.LineText(i)
	}
	runs, err := h.highlight(strings.Join(lines, "\n"), len(lines))
	if err != nil {
		return nil
	}
	return runs
}

// highlight tokenises text and returns the runs of the first rows lines.
func (h *ChromaHighlighter) highlight(text string, rows int) ([][]Run, error) {
	tokens, err := chroma.Tokenise(h.lexer, &chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return nil, errors.Wrap(err, "tokenise")
	}
	out := make([][]Run, rows)
	row, col := 0, 0
	for _, tok := range tokens {
		c := h.color(tok.Type)
		start := col
		for _, r := range tok.Value {
			if r == '\n' {
				if col > start && row < rows {
					out[row] = appendRun(out[row], Run{Start: start, End: col, Color: c})
				}
				row++
				col, start = 0, 0
				continue
			}
			col++
		}
		if col > start && row < rows {
			out[row] = appendRun(out[row], Run{Start: start, End: col, Color: c})
		}
	}
	return out, nil
}

func (h *ChromaHighlighter) color(t chroma.TokenType) color.NRGBA {
	e := h.style.Get(t)
	if !e.Colour.IsSet() {
		e = h.style.Get(chroma.Text)
	}
	if !e.Colour.IsSet() {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.NRGBA{R: e.Colour.Red(), G: e.Colour.Green(), B: e.Colour.Blue(), A: 0xff}
}
