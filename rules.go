package textbuf

import (
	"image/color"
	"strings"
	"unicode"
)

// lexState is the state a RuleHighlighter carries from one line to the next.
type lexState int

const (
	lexNormal lexState = iota
	lexBlockComment
	lexRawString
)

// RuleHighlighter is a small lexer driven by a Language: comments, quoted
// strings, numbers, keywords and type names. Block comments and raw strings
// may span lines; the lexer state at the end of each line is exposed as a
// checkpoint, so the HighlightIndex can resume in the middle of a document.
type RuleHighlighter struct {
	lang  *Language
	theme *Theme
}

// NewRuleHighlighter creates a highlighter for lang using theme colours.
func NewRuleHighlighter(lang *Language, theme *Theme) *RuleHighlighter {
	if theme == nil {
		theme = SolarizedDark()
	}
	return &RuleHighlighter{lang: lang, theme: theme}
}

func (h *RuleHighlighter) Begin() HighlightSession {
	return &ruleSession{h: h, state: lexNormal}
}

// Resume starts a session in a state obtained from Checkpoint.
func (h *RuleHighlighter) Resume(state any) HighlightSession {
	s, ok := state.(lexState)
	if !ok {
		s = lexNormal
	}
	return &ruleSession{h: h, state: s}
}

type ruleSession struct {
	h     *RuleHighlighter
	state lexState
	runs  []Run
}

func (s *ruleSession) Checkpoint() any {
	return s.state
}

func (s *ruleSession) AdvanceLine(line string) []Run {
	lang := s.h.lang
	r := []rune(line)
	s.runs = nil
	i := 0

	switch s.state {
	case lexBlockComment:
		end := indexFrom(r, 0, lang.BlockCommentEnd)
		if end < 0 {
			s.emit(0, len(r), TokenComment)
			return s.runs
		}
		i = end + runeCount(lang.BlockCommentEnd)
		s.emit(0, i, TokenComment)
		s.state = lexNormal
	case lexRawString:
		end := indexRune(r, 0, lang.RawQuote)
		if end < 0 {
			s.emit(0, len(r), TokenString)
			return s.runs
		}
		i = end + 1
		s.emit(0, i, TokenString)
		s.state = lexNormal
	}

	for i < len(r) {
		c := r[i]
		switch {
		case lang.LineComment != "" && hasPrefixAt(r, i, lang.LineComment):
			s.emit(i, len(r), TokenComment)
			return s.runs
		case lang.BlockCommentStart != "" && hasPrefixAt(r, i, lang.BlockCommentStart):
			from := i + runeCount(lang.BlockCommentStart)
			end := indexFrom(r, from, lang.BlockCommentEnd)
			if end < 0 {
				s.emit(i, len(r), TokenComment)
				s.state = lexBlockComment
				return s.runs
			}
			next := end + runeCount(lang.BlockCommentEnd)
			s.emit(i, next, TokenComment)
			i = next
		case lang.RawQuote != 0 && c == lang.RawQuote:
			end := indexRune(r, i+1, lang.RawQuote)
			if end < 0 {
				s.emit(i, len(r), TokenString)
				s.state = lexRawString
				return s.runs
			}
			s.emit(i, end+1, TokenString)
			i = end + 1
		case strings.ContainsRune(lang.Quotes, c):
			end := scanQuoted(r, i)
			s.emit(i, end, TokenString)
			i = end
		case unicode.IsDigit(c):
			end := i + 1
			for end < len(r) && (unicode.IsDigit(r[end]) || unicode.IsLetter(r[end]) || r[end] == '.' || r[end] == '_') {
				end++
			}
			s.emit(i, end, TokenNumber)
			i = end
		case isIdentStart(c):
			end := i + 1
			for end < len(r) && isIdentPart(r[end]) {
				end++
			}
			word := string(r[i:end])
			class := TokenText
			if lang.isKeyword(word) {
				class = TokenKeyword
			} else if lang.isType(word) {
				class = TokenType
			}
			s.emit(i, end, class)
			i = end
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			s.emit(i, i+1, TokenPunctuation)
			i++
		default:
			s.emit(i, i+1, TokenText)
			i++
		}
	}
	return s.runs
}

func (s *ruleSession) emit(start, end int, class TokenClass) {
	if end <= start {
		return
	}
	s.runs = appendRun(s.runs, Run{Start: start, End: end, Color: s.h.color(class)})
}

func (h *RuleHighlighter) color(class TokenClass) color.NRGBA {
	return h.theme.Color(class)
}

// scanQuoted returns the index after the closing quote of the string
// starting at i, or the line length if the string is unterminated.
func scanQuoted(r []rune, i int) int {
	q := r[i]
	for j := i + 1; j < len(r); j++ {
		switch r[j] {
		case '\\':
			j++
		case q:
			return j + 1
		}
	}
	return len(r)
}

func hasPrefixAt(r []rune, i int, prefix string) bool {
	for _, p := range prefix {
		if i >= len(r) || r[i] != p {
			return false
		}
		i++
	}
	return true
}

func indexFrom(r []rune, from int, sub string) int {
	for i := from; i < len(r); i++ {
		if hasPrefixAt(r, i, sub) {
			return i
		}
	}
	return -1
}

func indexRune(r []rune, from int, c rune) int {
	for i := from; i < len(r); i++ {
		if r[i] == c {
			return i
		}
	}
	return -1
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
