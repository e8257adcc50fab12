package textbuf

import (
	"fmt"
	"image/color"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"
)

// Run is a contiguous column range [Start, End) of one line drawn in a single colour.
type Run struct {
	Start int
	End   int
	Color color.NRGBA
}

// Highlighter produces colour runs for lines of text. A session carries the
// parse state of a multi-line construct from one line to the next, so a full
// rebuild always begins a new session at line 0.
type Highlighter interface {
	Begin() HighlightSession
}

// HighlightSession highlights consecutive lines. AdvanceLine returns runs in
// increasing, non-overlapping column order that cover the whole line.
type HighlightSession interface {
	AdvanceLine(line string) []Run
}

// Checkpointer is implemented by sessions that can report their state after
// the last line. States must be comparable with ==.
type Checkpointer interface {
	Checkpoint() any
}

// Resumer is implemented by highlighters that can start a session from a
// state previously reported by Checkpoint.
type Resumer interface {
	Resume(state any) HighlightSession
}

// BatchHighlighter is implemented by highlighters that need the whole
// document at once. HighlightLines returns one run list per line.
type BatchHighlighter interface {
	HighlightLines(src LineSource) [][]Run
}

// PlainHighlighter draws every line in a single colour.
type PlainHighlighter struct {
	Color color.NRGBA
}

func (p PlainHighlighter) Begin() HighlightSession {
	return plainSession{color: p.Color}
}

type plainSession struct {
	color color.NRGBA
}

func (s plainSession) AdvanceLine(line string) []Run {
	n := len([]rune(line))
	if n == 0 {
		return nil
	}
	return []Run{{Start: 0, End: n, Color: s.color}}
}

// HighlightIndex holds one run list per document line. It is rebuilt after
// every edit; new slices are computed completely before they replace the old
// ones, so readers never see a partial rebuild.
type HighlightIndex struct {
	highlighter Highlighter
	fallback    color.NRGBA
	incremental bool
	debug       bool
	log         *zap.Logger

	runs       [][]Run
	states     []any
	recomputed bitset.BitSet
}

// NewHighlightIndex creates an empty index. Gaps in highlighter output are
// filled with fallback.
func NewHighlightIndex(h Highlighter, fallback color.NRGBA, cfg *Config) *HighlightIndex {
	if h == nil {
		h = PlainHighlighter{Color: fallback}
	}
	return &HighlightIndex{
		highlighter: h,
		fallback:    fallback,
		incremental: cfg.IncrementalHighlight,
		debug:       cfg.Debug,
		log:         cfg.logger(),
	}
}

// Len returns the number of lines in the index.
func (x *HighlightIndex) Len() int {
	return len(x.runs)
}

// Line returns the runs of a row, nil if the row is out of range.
func (x *HighlightIndex) Line(row int) []Run {
	if row < 0 || row >= len(x.runs) {
		return nil
	}
	return x.runs[row]
}

// RunAt returns the run covering the given location.
func (x *HighlightIndex) RunAt(loc Location) (Run, bool) {
	for _, r := range x.Line(loc.Row) {
		if loc.Column >= r.Start && loc.Column < r.End {
			return r, true
		}
	}
	return Run{}, false
}

// Recomputed returns the rows whose runs were produced by the highlighter in
// the last rebuild. Rows copied from the previous index are not set.
func (x *HighlightIndex) Recomputed() *bitset.BitSet {
	return &x.recomputed
}

// Rebuild discards the index and highlights every line of src from line 0.
func (x *HighlightIndex) Rebuild(src LineSource) {
	n := src.Len()
	x.recomputed.ClearAll()
	if bh, ok := x.highlighter.(BatchHighlighter); ok {
		out := bh.HighlightLines(src)
		runs := make([][]Run, n)
		for i := 0; i < n; i++ {
			var line []Run
			if i < len(out) {
				line = out[i]
			}
			runs[i] = normalizeRuns(line, runeCount(src.LineText(i)), x.fallback)
			x.recomputed.Set(uint(i))
		}
		x.swap(runs, nil, n)
		return
	}
	runs := make([][]Run, n)
	states := make([]any, n)
	x.highlightFrom(x.highlighter.Begin(), src, 0, runs, states)
	x.swap(runs, states, n)
}

// Update recomputes the index after an edit. first is the first row that
// changed and delta the change in line count. Rows before first keep their
// runs; highlighting restarts from the state checkpointed at first-1 and
// stops early once the carried state matches the old state of an unchanged
// row. Highlighters without checkpoints get a full rebuild.
func (x *HighlightIndex) Update(src LineSource, first, delta int) {
	resumer, canResume := x.highlighter.(Resumer)
	_, batch := x.highlighter.(BatchHighlighter)
	if !x.incremental || !canResume || batch || x.states == nil || len(x.runs) != src.Len()-delta {
		x.Rebuild(src)
		return
	}
	first = max(0, min(first, src.Len()-1))
	if first > 0 && x.states[first-1] == nil {
		x.Rebuild(src)
		return
	}

	n := src.Len()
	runs := make([][]Run, n)
	states := make([]any, n)
	copy(runs[:first], x.runs[:first])
	copy(states[:first], x.states[:first])

	var session HighlightSession
	if first == 0 {
		session = x.highlighter.Begin()
	} else {
		session = resumer.Resume(x.states[first-1])
	}
	cp, _ := session.(Checkpointer)
	lastEdited := first + max(delta, 0)

	x.recomputed.ClearAll()
	for i := first; i < n; i++ {
		line := src.LineText(i)
		runs[i] = normalizeRuns(session.AdvanceLine(line), runeCount(line), x.fallback)
		x.recomputed.Set(uint(i))
		if cp == nil {
			continue
		}
		states[i] = cp.Checkpoint()
		old := i - delta
		if i > lastEdited && old >= 0 && old < len(x.states) && states[i] == x.states[old] {
			for k := i + 1; k < n; k++ {
				runs[k] = x.runs[k-delta]
				states[k] = x.states[k-delta]
			}
			break
		}
	}
	x.swap(runs, states, n)
}

func (x *HighlightIndex) highlightFrom(session HighlightSession, src LineSource, first int, runs [][]Run, states []any) {
	cp, _ := session.(Checkpointer)
	for i := first; i < len(runs); i++ {
		line := src.LineText(i)
		runs[i] = normalizeRuns(session.AdvanceLine(line), runeCount(line), x.fallback)
		if cp != nil {
			states[i] = cp.Checkpoint()
		}
		x.recomputed.Set(uint(i))
	}
}

func (x *HighlightIndex) swap(runs [][]Run, states []any, want int) {
	x.runs = runs
	x.states = states
	if len(x.runs) != want {
		x.violation("highlight index length mismatch",
			zap.Int("lines", want), zap.Int("highlighted", len(x.runs)))
	}
	x.log.Debug("highlight rebuild",
		zap.Int("lines", want), zap.Uint("recomputed", x.recomputed.Count()))
}

func (x *HighlightIndex) violation(msg string, fields ...zap.Field) {
	x.log.Error(msg, fields...)
	if x.debug {
		panic(fmt.Sprintf("textbuf: %s", msg))
	}
}

// CheckCoverage verifies that the runs of every row cover exactly the row.
// It returns the first row that violates the invariant, or -1.
func (x *HighlightIndex) CheckCoverage(src LineSource) int {
	if x.Len() != src.Len() {
		return 0
	}
	for i := range x.runs {
		want := runeCount(src.LineText(i))
		at := 0
		for _, r := range x.runs[i] {
			if r.Start != at || r.End <= r.Start {
				return i
			}
			at = r.End
		}
		if at != want {
			return i
		}
	}
	return -1
}

// normalizeRuns makes runs cover [0, n) without overlaps: runs are clipped to
// the line, overlaps are cut off at the end of the previous run, and gaps get
// the fallback colour.
func normalizeRuns(runs []Run, n int, fallback color.NRGBA) []Run {
	if n == 0 {
		return nil
	}
	out := make([]Run, 0, len(runs)+1)
	at := 0
	for _, r := range runs {
		start := max(r.Start, at)
		end := min(r.End, n)
		if end <= start {
			continue
		}
		if start > at {
			out = appendRun(out, Run{Start: at, End: start, Color: fallback})
		}
		out = appendRun(out, Run{Start: start, End: end, Color: r.Color})
		at = end
	}
	if at < n {
		out = appendRun(out, Run{Start: at, End: n, Color: fallback})
	}
	return out
}

// appendRun merges r into the last run if both have the same colour.
func appendRun(runs []Run, r Run) []Run {
	if k := len(runs) - 1; k >= 0 && runs[k].End == r.Start && runs[k].Color == r.Color {
		runs[k].End = r.End
		return runs
	}
	return append(runs, r)
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
