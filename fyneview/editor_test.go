package fyneview

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/rasteric/textbuf"
)

func newTestEditor(t *testing.T, text string) (*Editor, fyne.Window) {
	t.Helper()
	test.NewApp()
	buf := textbuf.New(text, textbuf.Size{}, textbuf.NewConfig())
	ed := NewEditor(buf)
	w := test.NewWindow(ed)
	w.Resize(fyne.NewSize(600, 400))
	t.Cleanup(w.Close)
	return ed, w
}

func TestEditor_TypingAndKeys(t *testing.T) {
	assert := assert.New(t)

	ed, _ := newTestEditor(t, "ab")
	test.Type(ed, "xy")
	assert.Equal("xyab", ed.Buffer.Text())

	ed.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal([]string{"xy", "ab"}, ed.Buffer.Lines())

	ed.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal([]string{"xyab"}, ed.Buffer.Lines())

	ed.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	ed.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	assert.Equal("xya", ed.Buffer.Text())

	ed.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	assert.Equal("xya", ed.Buffer.Text())
}

func TestEditor_ResizeAndScroll(t *testing.T) {
	assert := assert.New(t)

	ed, _ := newTestEditor(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n13\n14\n15")
	ed.Resize(fyne.NewSize(300, 120))
	assert.Equal(textbuf.Size{Width: 300, Height: 120}, ed.Buffer.Size())

	ed.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -100}})
	assert.Equal(float32(100), ed.Buffer.Scroll())
	ed.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 500}})
	assert.Equal(float32(0), ed.Buffer.Scroll())
}

func TestEditor_MouseSelection(t *testing.T) {
	assert := assert.New(t)

	ed, _ := newTestEditor(t, "hello world\nsecond")
	left := ed.Buffer.TextOffset()
	primary := func(x, y float32) *desktop.MouseEvent {
		return &desktop.MouseEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
			Button:     desktop.MouseButtonPrimary,
		}
	}

	ed.MouseDown(primary(left-5, 10))
	assert.Equal(textbuf.Location{}, ed.Buffer.Cursor().Location)
	assert.True(ed.Buffer.Dragging())

	ed.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(left+1000, 50)}})
	ed.DragEnd()
	assert.False(ed.Buffer.Dragging())
	span, ok := ed.Buffer.Selection()
	assert.True(ok)
	assert.Equal(textbuf.Location{Row: 1, Column: 6}, span.End)
	assert.Equal("hello world\nsecond", ed.Buffer.SelectedText())
}

func TestEditor_SaveShortcutReportsErrors(t *testing.T) {
	assert := assert.New(t)

	ed, _ := newTestEditor(t, "unsaved")
	var got error
	ed.OnError = func(err error) { got = err }
	ed.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl})
	assert.True(errors.Is(got, textbuf.ErrSave))
}

func TestEditor_CaretFollowsFocus(t *testing.T) {
	assert := assert.New(t)

	ed, _ := newTestEditor(t, "abc")
	assert.False(ed.Buffer.CaretVisible())
	ed.FocusGained()
	assert.True(ed.Focused())
	assert.True(ed.Buffer.CaretVisible())
	ed.FocusLost()
	assert.False(ed.Focused())
	assert.False(ed.Buffer.CaretVisible())
}

func TestEditor_LayoutStaysOnBuffer(t *testing.T) {
	assert := assert.New(t)

	test.NewApp()
	cfg := textbuf.NewConfig()
	shown := textbuf.New("abc", textbuf.Size{}, cfg)
	other := textbuf.New("abc", textbuf.Size{}, cfg)
	ed := NewEditor(shown)

	assert.Nil(cfg.Layout)
	assert.Nil(other.HitTestLayout())
	assert.Equal(ed.Layout(), shown.HitTestLayout())
}

func TestMeasureLayout(t *testing.T) {
	assert := assert.New(t)

	test.NewApp()
	l := NewMeasureLayout()
	adv := l.Advances("ab", 14)
	assert.Len(adv, 2)
	assert.Greater(adv[0], float32(0))
	assert.Equal(adv, l.Advances("ab", 14))
}
