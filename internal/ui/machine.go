package ui

import (
	"aboard/internal/geom"
	"aboard/internal/state"
)

// Machine interprets pointer and scroll events against the selected
// tool and mutates the document accordingly. All positions it receives
// are screen-space; it converts to world space through the document's
// viewport. It runs on the single interaction loop and holds no locks.
type Machine struct {
	doc *state.Document
	pal *state.Palette

	tool      Tool
	shapeKind state.ShapeKind

	phase     Phase
	panAnchor geom.Point

	// OnTextInput is the text-input collaborator: called with the world
	// coordinates of a text-tool click. On confirmation the collaborator
	// calls Document.AddText; on cancellation it does nothing.
	OnTextInput func(wx, wy float64)

	// OnInvalidate asks the host to schedule a repaint. Hosts coalesce
	// repeated requests into one frame.
	OnInvalidate func()
}

// NewMachine returns an idle machine with the brush tool active.
func NewMachine(doc *state.Document, pal *state.Palette) *Machine {
	return &Machine{
		doc:       doc,
		pal:       pal,
		tool:      ToolBrush,
		shapeKind: state.ShapeRectangle,
	}
}

// Phase reports the current gesture state.
func (m *Machine) Phase() Phase { return m.phase }

// Tool reports the active tool. Hosts may project this into an
// "active button" indicator; the machine is the source of truth.
func (m *Machine) Tool() Tool { return m.tool }

// ShapeKind reports the active shape type.
func (m *Machine) ShapeKind() state.ShapeKind { return m.shapeKind }

// SetTool switches tools. A draft in progress is discarded first so
// the switch never observes a half-built entity.
func (m *Machine) SetTool(t Tool) {
	if t == m.tool {
		return
	}
	m.abortDraft()
	m.tool = t
}

// SetShapeKind selects the shape type drawn by the shape tool.
func (m *Machine) SetShapeKind(k state.ShapeKind) {
	if k == m.shapeKind {
		return
	}
	m.abortDraft()
	m.shapeKind = k
}

func (m *Machine) abortDraft() {
	if m.phase == PhaseDrawing {
		m.doc.DiscardStroke()
	}
	if m.phase == PhaseShapeDragging {
		m.doc.DiscardShape()
	}
	if m.phase != PhasePanning {
		m.phase = PhaseIdle
	}
	m.invalidate()
}

// PointerDown handles a button press at a screen position. The
// secondary button starts panning; the primary button starts the
// gesture the active tool defines. Primary presses are ignored while
// panning.
func (m *Machine) PointerDown(b Button, screen geom.Point) {
	if b == ButtonSecondary {
		if m.phase == PhaseIdle {
			m.phase = PhasePanning
			m.panAnchor = screen
		}
		return
	}

	if m.phase != PhaseIdle {
		return
	}
	world := m.doc.View.ScreenToWorld(screen)

	switch m.tool {
	case ToolText:
		// Stays idle: the collaborator drives the rest of the flow.
		if m.OnTextInput != nil {
			m.OnTextInput(world.X, world.Y)
		}
	case ToolShape:
		m.doc.BeginShape(m.shapeKind, world, m.pal.Brush)
		m.phase = PhaseShapeDragging
		m.invalidate()
	case ToolBrush, ToolEraser:
		color := m.pal.Brush
		eraser := m.tool == ToolEraser
		if eraser {
			color = m.pal.Background
		}
		m.doc.BeginStroke(world, color, eraser)
		m.phase = PhaseDrawing
		m.invalidate()
	}
}

// PointerMove handles pointer motion at a screen position.
func (m *Machine) PointerMove(screen geom.Point) {
	switch m.phase {
	case PhasePanning:
		d := screen.Sub(m.panAnchor)
		m.doc.View.Pan(d.X, d.Y)
		m.panAnchor = screen
		m.invalidate()
	case PhaseDrawing:
		m.doc.ExtendStroke(m.doc.View.ScreenToWorld(screen))
		m.invalidate()
	case PhaseShapeDragging:
		m.doc.ResizeShape(m.doc.View.ScreenToWorld(screen))
		m.invalidate()
	}
}

// PointerUp handles a button release, completing the active gesture.
func (m *Machine) PointerUp(b Button, screen geom.Point) {
	switch {
	case b == ButtonSecondary && m.phase == PhasePanning:
		m.phase = PhaseIdle
	case b == ButtonPrimary && m.phase == PhaseDrawing:
		m.doc.CommitStroke()
		m.phase = PhaseIdle
		m.invalidate()
	case b == ButtonPrimary && m.phase == PhaseShapeDragging:
		m.doc.CommitShape()
		m.phase = PhaseIdle
		m.invalidate()
	}
}

// Scroll zooms around the cursor. Zoom is orthogonal to the gesture
// state and applies in any phase; a positive vertical delta (wheel up)
// zooms in, negative out.
func (m *Machine) Scroll(dy float64, screen geom.Point) {
	if dy == 0 {
		return
	}
	factor := geom.ZoomStepOut
	if dy > 0 {
		factor = geom.ZoomStepIn
	}
	m.doc.View.ZoomAt(screen, factor)
	m.invalidate()
}

// ClearAll empties the document, draft included.
func (m *Machine) ClearAll() {
	m.doc.Clear()
	if m.phase != PhasePanning {
		m.phase = PhaseIdle
	}
	m.invalidate()
}

func (m *Machine) invalidate() {
	if m.OnInvalidate != nil {
		m.OnInvalidate()
	}
}
