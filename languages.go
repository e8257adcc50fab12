package textbuf

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/lindell/go-ordered-set/orderedset"
)

// Language describes the lexical rules a RuleHighlighter applies.
type Language struct {
	Name              string
	Extensions        []string
	LineComment       string
	BlockCommentStart string
	BlockCommentEnd   string
	Quotes            string // single-line string delimiters
	RawQuote          rune   // delimiter of strings that may span lines, 0 if none
	Keywords          []string
	Types             []string

	keywords map[string]bool
	types    map[string]bool
}

func (l *Language) isKeyword(w string) bool {
	if l.keywords == nil {
		l.keywords = wordSet(l.Keywords)
	}
	return l.keywords[w]
}

func (l *Language) isType(w string) bool {
	if l.types == nil {
		l.types = wordSet(l.Types)
	}
	return l.types[w]
}

func wordSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var GoLanguage = &Language{
	Name:              "Go",
	Extensions:        []string{".go"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Quotes:            `"'`,
	RawQuote:          '`',
	Keywords: []string{"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface", "map", "package",
		"range", "return", "select", "struct", "switch", "type", "var", "nil", "true", "false", "iota"},
	Types: []string{"any", "bool", "byte", "complex64", "complex128", "error", "float32", "float64",
		"int", "int8", "int16", "int32", "int64", "rune", "string", "uint", "uint8", "uint16",
		"uint32", "uint64", "uintptr"},
}

var RustLanguage = &Language{
	Name:              "Rust",
	Extensions:        []string{".rs"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Quotes:            `"`,
	Keywords: []string{"as", "break", "const", "continue", "crate", "else", "enum", "extern", "false",
		"fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move", "mut", "pub", "ref",
		"return", "self", "Self", "static", "struct", "super", "trait", "true", "type", "unsafe",
		"use", "where", "while"},
	Types: []string{"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128", "isize", "str",
		"u8", "u16", "u32", "u64", "u128", "usize", "String", "Vec", "Option", "Result", "Box"},
}

var CLanguage = &Language{
	Name:              "C",
	Extensions:        []string{".c", ".h"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Quotes:            `"'`,
	Keywords: []string{"break", "case", "const", "continue", "default", "do", "else", "enum", "extern",
		"for", "goto", "if", "inline", "register", "return", "sizeof", "static", "struct", "switch",
		"typedef", "union", "volatile", "while", "NULL"},
	Types: []string{"char", "double", "float", "int", "long", "short", "signed", "unsigned", "void",
		"size_t"},
}

// LanguageRegistry maps file extensions to languages. Extensions keep the
// order in which they were registered.
type LanguageRegistry struct {
	byExt      map[string]*Language
	extensions *orderedset.OrderedSet[string]
}

// NewLanguageRegistry returns a registry holding the given languages.
func NewLanguageRegistry(langs ...*Language) *LanguageRegistry {
	r := &LanguageRegistry{
		byExt:      make(map[string]*Language),
		extensions: orderedset.New[string](),
	}
	for _, l := range langs {
		r.Register(l)
	}
	return r
}

// DefaultLanguages returns a registry with the built-in languages.
func DefaultLanguages() *LanguageRegistry {
	return NewLanguageRegistry(GoLanguage, RustLanguage, CLanguage)
}

// Register adds lang for all of its extensions, replacing earlier registrations.
func (r *LanguageRegistry) Register(lang *Language) {
	for _, ext := range lang.Extensions {
		ext = strings.ToLower(ext)
		r.byExt[ext] = lang
		r.extensions.Add(ext)
	}
}

// Lookup returns the language registered for the extension of path.
func (r *LanguageRegistry) Lookup(path string) (*Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if !r.extensions.Contains(ext) {
		return nil, false
	}
	return r.byExt[ext], true
}

// Extensions returns all registered extensions in registration order.
func (r *LanguageRegistry) Extensions() []string {
	return r.extensions.Values()
}

// HighlighterFor picks a highlighter for path: a registered rule language
// first, then a chroma lexer matching the file name, then plain text.
func (r *LanguageRegistry) HighlighterFor(path string, cfg *Config) Highlighter {
	theme := cfg.Theme
	if theme == nil {
		theme = SolarizedDark()
	}
	if lang, ok := r.Lookup(path); ok {
		return NewRuleHighlighter(lang, theme)
	}
	if lexers.Match(filepath.Base(path)) != nil {
		if h, err := NewChromaHighlighter(path, cfg.ChromaStyle); err == nil {
			return h
		}
	}
	return PlainHighlighter{Color: theme.Color(TokenText)}
}
