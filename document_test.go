package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Split(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{""}, NewDocument("").Lines())
	assert.Equal([]string{"a", "b"}, NewDocument("a\nb").Lines())
	assert.Equal([]string{"a", "b", ""}, NewDocument("a\nb\n").Lines())
	assert.Equal([]string{"", ""}, NewDocument("\n").Lines())

	for _, text := range []string{"", "x", "a\nb\n", "\n\n", "héllo\nwörld"} {
		assert.Equal(text, NewDocument(text).Text())
	}
}

func TestDocument_Edits(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument("héllo\nwörld")
	assert.Equal(5, d.LineLen(0))
	assert.Equal(Location{1, 5}, d.LastLocation())

	d.InsertRune(Location{0, 1}, 'X')
	assert.Equal("hXéllo", d.LineText(0))
	d.InsertRune(Location{0, 99}, '!')
	assert.Equal("hXéllo!", d.LineText(0))

	assert.True(d.DeleteRune(Location{0, 2}))
	assert.Equal("hXllo!", d.LineText(0))
	assert.False(d.DeleteRune(Location{0, 6}))
	assert.False(d.DeleteRune(Location{0, -1}))

	d.Split(Location{0, 2})
	assert.Equal([]string{"hX", "llo!", "wörld"}, d.Lines())

	assert.Equal(2, d.JoinWithPrevious(1))
	assert.Equal([]string{"hXllo!", "wörld"}, d.Lines())
	assert.Equal(-1, d.JoinWithPrevious(0))
	assert.Equal(-1, d.JoinWithPrevious(2))
	assert.Equal("", d.LineText(7))
}

func TestDocument_SplitDoesNotAlias(t *testing.T) {
	assert := assert.New(t)

	d := NewDocument("abcdef")
	d.Split(Location{0, 3})
	d.InsertRune(Location{0, 3}, 'X')
	assert.Equal([]string{"abcX", "def"}, d.Lines())
}
