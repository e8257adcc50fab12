package textbuf

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textbuf.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestConfig_Defaults(t *testing.T) {
	assert := assert.New(t)

	c := NewConfig()
	assert.Equal(float32(40), c.LineHeight)
	assert.Equal(float32(20), c.DigitWidth)
	assert.Equal(RGBA(1, 1, 1, 0.05), c.ActiveLineColor)
	assert.Equal(uint8(255), c.CursorColor.A)
	assert.True(c.PreciseHitTest)
	assert.True(c.IncrementalHighlight)
	assert.NotNil(c.Store)
	assert.NotNil(c.logger())
	assert.NotNil((&Config{}).logger())
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := writeConfig(t, `
font_size = 20.0
line_height = 24.0
theme = "solarized-light"
chroma_style = "monokai"
precise_hit_test = false
debug = true

[colors]
cursor = "#ff0000"
active_line = "#00ff00"
`)
	c, err := LoadConfig(path)
	require.NoError(err)
	assert.Equal(float32(20), c.FontSize)
	assert.Equal(float32(10), c.DigitWidth)
	assert.Equal(float32(24), c.LineHeight)
	assert.Equal("solarized-light", c.Theme.Name)
	assert.Equal("monokai", c.ChromaStyle)
	assert.False(c.PreciseHitTest)
	assert.True(c.IncrementalHighlight)
	assert.True(c.Debug)
	assert.Equal(MustHex("#ff0000"), c.CursorColor)
	active := c.ActiveLineColor
	assert.Equal(uint8(0xff), active.G)
	assert.Equal(NewConfig().ActiveLineColor.A, active.A)
}

func TestLoadConfig_Errors(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		`font_size = "big"`,
		`theme = "neon"`,
		"[colors]\ncursor = \"red\"",
		"[colors]\nborder = \"#ffffff\"",
	} {
		_, err := LoadConfig(writeConfig(t, text))
		assert.ErrorIs(err, ErrInvalidConfig, text)
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, ErrInvalidConfig)
}

func TestTheme(t *testing.T) {
	assert := assert.New(t)

	dark := SolarizedDark()
	assert.Equal(MustHex("#859900"), dark.Color(TokenKeyword))
	empty := &Theme{Colors: map[TokenClass]color.NRGBA{TokenText: MustHex("#010203")}}
	assert.Equal(MustHex("#010203"), empty.Color(TokenComment))

	assert.NotEqual(SolarizedLight().Color(TokenText), dark.Color(TokenText))
	assert.Nil(ThemeByName("neon"))

	c, err := ParseHex("#102030")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)
	_, err = ParseHex("nope")
	assert.Error(err)
	assert.Panics(func() { MustHex("#12") })
}
