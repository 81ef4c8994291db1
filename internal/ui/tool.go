package ui

// Tool selects what a primary-button gesture means.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolShape
	ToolText
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	case ToolShape:
		return "shape"
	case ToolText:
		return "text"
	}
	return "unknown"
}

// Phase is the gesture state of the board.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDrawing
	PhaseShapeDragging
	PhasePanning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrawing:
		return "drawing"
	case PhaseShapeDragging:
		return "shape-dragging"
	case PhasePanning:
		return "panning"
	}
	return "unknown"
}

// Button abstracts the two pointer buttons the machine cares about.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)
