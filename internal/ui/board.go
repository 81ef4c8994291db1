package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"aboard/internal/geom"
	"aboard/internal/state"
)

// BoardWidget is the drawing surface. It translates fyne's desktop
// events into machine calls and paints whatever the document holds.
type BoardWidget struct {
	widget.BaseWidget

	doc     *state.Document
	pal     *state.Palette
	machine *Machine
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget creates a board over the given document and palette.
func NewBoardWidget(doc *state.Document, pal *state.Palette) *BoardWidget {
	b := &BoardWidget{
		doc: doc,
		pal: pal,
	}
	b.machine = NewMachine(doc, pal)
	b.machine.OnInvalidate = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

// Machine exposes the tool state machine to the toolbar and app.
func (b *BoardWidget) Machine() *Machine { return b.machine }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if btn, ok := mapButton(e.Button); ok {
		b.machine.PointerDown(btn, eventPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if btn, ok := mapButton(e.Button); ok {
		b.machine.PointerUp(btn, eventPoint(e.Position))
	}
}

// Dragged carries pointer motion while a button is held, for both
// drawing and panning.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.machine.PointerMove(eventPoint(e.Position))
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.machine.Scroll(float64(e.Scrolled.DY), eventPoint(e.Position))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b}
}

func mapButton(btn desktop.MouseButton) (Button, bool) {
	switch btn {
	case desktop.MouseButtonPrimary:
		return ButtonPrimary, true
	case desktop.MouseButtonSecondary:
		return ButtonSecondary, true
	}
	return 0, false
}

func eventPoint(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

type boardRenderer struct {
	board *BoardWidget
}

// Objects rebuilds the full paint list from the document. The host
// coalesces Refresh calls, so one frame covers any number of
// mutations.
func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return BuildObjects(r.board.doc, r.board.pal, r.board.Size())
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(fyne.Size) {}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
