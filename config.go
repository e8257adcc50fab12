package textbuf

import (
	"image/color"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config stores configuration information for a text buffer. Geometry is in
// pixels.
type Config struct {
	LineHeight    float32 // height of a row
	FontSize      float32 // font size passed to the glyph layout
	TopPadding    float32 // space above the first row
	ScrollMargin  float32 // extra space kept below the caret and past the last row
	GutterPadding float32 // space left of the line numbers
	GutterGap     float32 // space between the gutter and the text
	DigitWidth    float32 // width reserved per line number digit
	FixedAdvance  float32 // per-character advance for approximate hit-testing
	CursorWidth   float32 // width of the caret rectangle

	GutterColor           color.NRGBA
	LineNumberColor       color.NRGBA
	ActiveLineNumberColor color.NRGBA
	ActiveLineColor       color.NRGBA // band behind the caret's row
	SelectionColor        color.NRGBA
	CursorColor           color.NRGBA
	SelectionBlend        BlendMode // how selection is composited over the active line band

	Theme       *Theme // colours for rule based highlighting
	ChromaStyle string // chroma style used when a chroma lexer is picked

	PreciseHitTest       bool // resolve clicked columns with the glyph layout instead of FixedAdvance
	IncrementalHighlight bool // rehighlight from the edited row instead of the whole document
	Debug                bool // panic on internal invariant violations

	Logger      *zap.Logger
	Store       SourceStore
	Highlighter Highlighter // nil picks one by file name
	Languages   *LanguageRegistry
	Layout      GlyphLayout // used for hit-testing; nil uses FixedAdvance
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	c := &Config{}
	c.LineHeight = 40
	c.FontSize = 40
	c.TopPadding = 5
	c.ScrollMargin = 5
	c.GutterPadding = 10
	c.GutterGap = 30
	c.DigitWidth = c.FontSize / 2
	c.FixedAdvance = 19.065777
	c.CursorWidth = 4
	c.GutterColor = RGBA(0.06, 0.06, 0.06, 1)
	c.LineNumberColor = RGBA(0.4, 0.4, 0.4, 1)
	c.ActiveLineNumberColor = RGBA(1, 1, 1, 1)
	c.ActiveLineColor = RGBA(1, 1, 1, 0.05)
	c.SelectionColor = RGBA(0, 0, 1, 0.1)
	c.CursorColor = RGBA(1, 1, 1, 1)
	c.SelectionBlend = BlendScreen
	c.Theme = SolarizedDark()
	c.ChromaStyle = "solarized-dark"
	c.PreciseHitTest = true
	c.IncrementalHighlight = true
	c.Logger = zap.NewNop()
	c.Store = NewFileStore()
	c.Languages = DefaultLanguages()
	return c
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// fileConfig is the TOML representation of the settings that make sense in a
// file. Unset keys keep their defaults.
type fileConfig struct {
	FontSize       *float32          `toml:"font_size"`
	LineHeight     *float32          `toml:"line_height"`
	Theme          string            `toml:"theme"`
	ChromaStyle    string            `toml:"chroma_style"`
	PreciseHitTest *bool             `toml:"precise_hit_test"`
	Incremental    *bool             `toml:"incremental_highlight"`
	Debug          *bool             `toml:"debug"`
	Colors         map[string]string `toml:"colors"`
}

// LoadConfig reads a TOML file and applies it on top of NewConfig.
func LoadConfig(path string) (*Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, wrapError(ErrInvalidConfig, err, path)
	}
	c := NewConfig()
	if err := fc.apply(c); err != nil {
		return nil, wrapError(ErrInvalidConfig, err, path)
	}
	return c, nil
}

func (fc *fileConfig) apply(c *Config) error {
	if fc.FontSize != nil {
		c.FontSize = *fc.FontSize
		c.DigitWidth = c.FontSize / 2
	}
	if fc.LineHeight != nil {
		c.LineHeight = *fc.LineHeight
	}
	if fc.Theme != "" {
		t := ThemeByName(fc.Theme)
		if t == nil {
			return errors.Errorf("unknown theme %q", fc.Theme)
		}
		c.Theme = t
	}
	if fc.ChromaStyle != "" {
		c.ChromaStyle = fc.ChromaStyle
	}
	if fc.PreciseHitTest != nil {
		c.PreciseHitTest = *fc.PreciseHitTest
	}
	if fc.Incremental != nil {
		c.IncrementalHighlight = *fc.Incremental
	}
	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}
	targets := map[string]*color.NRGBA{
		"gutter":             &c.GutterColor,
		"line_number":        &c.LineNumberColor,
		"active_line_number": &c.ActiveLineNumberColor,
		"active_line":        &c.ActiveLineColor,
		"selection":          &c.SelectionColor,
		"cursor":             &c.CursorColor,
	}
	for name, hex := range fc.Colors {
		dst, ok := targets[name]
		if !ok {
			return errors.Errorf("unknown colour setting %q", name)
		}
		col, err := ParseHex(hex)
		if err != nil {
			return err
		}
		// keep the default alpha, so translucent bands stay translucent
		col.A = dst.A
		*dst = col
	}
	return nil
}
