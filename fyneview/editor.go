// Package fyneview shows a textbuf.TextBuffer in a fyne widget.
package fyneview

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/rasteric/textbuf"
)

// Editor is a widget that forwards pointer, keyboard and scroll events to a
// TextBuffer and draws it with canvas rectangles and texts.
type Editor struct {
	widget.BaseWidget
	Buffer *textbuf.TextBuffer

	// OnError is called when a shortcut handler fails, for example on a
	// failed save. It may be nil.
	OnError func(err error)

	layout      *MeasureLayout
	handlers    map[string]func(z *Editor)
	keyHandlers map[fyne.KeyName]func(z *Editor)
	hasFocus    bool
	log         *zap.Logger
}

// NewEditor returns an editor widget showing buf. Ctrl+S saves the buffer.
// Unless the buffer's config names a layout, buf hit-tests with the editor's
// measuring layout. The caret is drawn while the editor has focus.
func NewEditor(buf *textbuf.TextBuffer) *Editor {
	z := &Editor{
		Buffer:      buf,
		layout:      NewMeasureLayout(),
		handlers:    make(map[string]func(z *Editor)),
		keyHandlers: make(map[fyne.KeyName]func(z *Editor)),
		log:         buf.Config().Logger,
	}
	if z.log == nil {
		z.log = zap.NewNop()
	}
	// hit-test with the same advances the text is drawn with
	if buf.Config().Layout == nil {
		buf.SetLayout(z.layout)
	}
	buf.SetCaretVisible(false)
	z.addDefaultKeys()
	z.AddShortcutHandler(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl},
		func(z *Editor) {
			z.report(z.Buffer.Save())
		})
	z.ExtendBaseWidget(z)
	return z
}

// Layout returns the glyph layout used for drawing and hit-testing.
func (z *Editor) Layout() textbuf.GlyphLayout {
	return z.layout
}

func (z *Editor) report(err error) {
	if err == nil {
		return
	}
	z.log.Warn("editor command failed", zap.Error(err))
	if z.OnError != nil {
		z.OnError(err)
	}
}

// KEY HANDLING

// AddShortcutHandler adds a keyboard shortcut to the editor.
func (z *Editor) AddShortcutHandler(s fyne.KeyboardShortcut, handler func(z *Editor)) {
	z.handlers[shortcutKey(s)] = handler
}

// AddKeyHandler adds a handler for the given key, called whenever the key
// is pressed without a shortcut modifier.
func (z *Editor) AddKeyHandler(key fyne.KeyName, handler func(z *Editor)) {
	z.keyHandlers[key] = handler
}

func (z *Editor) addDefaultKeys() {
	moves := map[fyne.KeyName]textbuf.CaretMovement{
		fyne.KeyUp:    textbuf.CaretUp,
		fyne.KeyDown:  textbuf.CaretDown,
		fyne.KeyLeft:  textbuf.CaretLeft,
		fyne.KeyRight: textbuf.CaretRight,
	}
	for key, dir := range moves {
		dir := dir
		z.AddKeyHandler(key, func(z *Editor) { z.Buffer.MoveCaret(dir) })
	}
	chars := map[fyne.KeyName]rune{
		fyne.KeyReturn:    '\n',
		fyne.KeyEnter:     '\n',
		fyne.KeyBackspace: textbuf.RuneBackspace,
		fyne.KeyDelete:    textbuf.RuneDelete,
		fyne.KeyTab:       '\t',
	}
	for key, r := range chars {
		r := r
		z.AddKeyHandler(key, func(z *Editor) { z.Buffer.HandleChar(r) })
	}
}

func (z *Editor) TypedRune(r rune) {
	z.Buffer.HandleChar(r)
	z.Refresh()
}

func (z *Editor) TypedKey(evt *fyne.KeyEvent) {
	if handler, ok := z.keyHandlers[evt.Name]; ok {
		handler(z)
		z.Refresh()
	}
}

func (z *Editor) TypedShortcut(s fyne.Shortcut) {
	ks, ok := s.(fyne.KeyboardShortcut)
	if !ok {
		return
	}
	if handler, ok := z.handlers[shortcutKey(ks)]; ok {
		handler(z)
		z.Refresh()
	}
}

// shortcutKey is equal for any two shortcuts with the same key and
// modifier, unlike the shortcut name.
func shortcutKey(s fyne.KeyboardShortcut) string {
	return fmt.Sprintf("%v:%v", s.Key(), s.Mod())
}

// FOCUS AND POINTER

func (z *Editor) FocusGained() {
	z.hasFocus = true
	z.Buffer.SetCaretVisible(true)
	z.Refresh()
}

func (z *Editor) FocusLost() {
	z.hasFocus = false
	z.Buffer.SetCaretVisible(false)
	z.Refresh()
}

// Focused returns true while the editor has keyboard focus.
func (z *Editor) Focused() bool {
	return z.hasFocus
}

func (z *Editor) Tapped(evt *fyne.PointEvent) {
	z.focus()
}

func (z *Editor) MouseDown(evt *desktop.MouseEvent) {
	if evt.Button != desktop.MouseButtonPrimary {
		return
	}
	z.Buffer.HandleMouseDown(toPoint(evt.Position))
	z.Refresh()
}

func (z *Editor) MouseUp(evt *desktop.MouseEvent) {
	if evt.Button != desktop.MouseButtonPrimary {
		return
	}
	z.Buffer.HandleMouseUp()
}

func (z *Editor) Dragged(evt *fyne.DragEvent) {
	z.Buffer.HandleMouseMove(toPoint(evt.Position))
	z.Refresh()
}

func (z *Editor) DragEnd() {
	z.Buffer.HandleMouseUp()
}

func (z *Editor) Scrolled(evt *fyne.ScrollEvent) {
	z.Buffer.ScrollBy(-evt.Scrolled.DY)
	z.Refresh()
}

func (z *Editor) Cursor() desktop.Cursor {
	return desktop.TextCursor
}

func (z *Editor) focus() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(z); c != nil {
		c.Focus(z)
	}
}

func toPoint(p fyne.Position) textbuf.Point {
	return textbuf.Point{X: p.X, Y: p.Y}
}

// LAYOUT UPDATING

func (z *Editor) MinSize() fyne.Size {
	z.ExtendBaseWidget(z)
	cfg := z.Buffer.Config()
	return fyne.NewSize(z.Buffer.TextOffset()+cfg.FixedAdvance*10, cfg.LineHeight+cfg.TopPadding)
}

func (z *Editor) CreateRenderer() fyne.WidgetRenderer {
	z.ExtendBaseWidget(z)
	r := &editorRenderer{editor: z, background: canvas.NewRectangle(color.Black)}
	r.Refresh()
	return r
}

type editorRenderer struct {
	editor     *Editor
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *editorRenderer) Destroy() {}

func (r *editorRenderer) Layout(size fyne.Size) {
	r.editor.Buffer.Resize(textbuf.Size{Width: size.Width, Height: size.Height})
	r.Refresh()
}

func (r *editorRenderer) MinSize() fyne.Size {
	return r.editor.MinSize()
}

func (r *editorRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Refresh redraws the whole frame. Objects are recreated every time, which
// is fine for the number of visible rows.
func (r *editorRenderer) Refresh() {
	buf := r.editor.Buffer
	size := buf.Size()
	r.background.Resize(fyne.NewSize(size.Width, size.Height))
	sink := &canvasSink{layout: r.editor.layout, objects: []fyne.CanvasObject{r.background}}
	buf.Draw(r.editor.layout, sink)
	r.objects = sink.objects
	canvas.Refresh(r.editor)
}
