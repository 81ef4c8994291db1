package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"aboard/internal/state"
)

// --- Custom Widget for Color Swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    state.RGB
	OnTapped func(state.RGB)
}

func newColorSwatch(c state.RGB, tapped func(state.RGB)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.NRGBA())
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---

// NewToolbar builds the tool strip: tool actions, shape picker, color
// palette, brush-size slider, and the dark-mode switch. It only talks
// to the board through its machine and palette.
func NewToolbar(board *BoardWidget, pal *state.Palette, onDarkMode func(bool)) fyne.CanvasObject {
	m := board.Machine()

	shapeSelect := widget.NewSelect(
		[]string{
			string(state.ShapeRectangle),
			string(state.ShapeCircle),
			string(state.ShapeTriangle),
			string(state.ShapeArrow),
		},
		func(kind string) {
			m.SetShapeKind(state.ShapeKind(kind))
			m.SetTool(ToolShape)
		},
	)
	shapeSelect.PlaceHolder = "Shape"

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			m.SetTool(ToolBrush)
		}), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			m.SetTool(ToolEraser)
		}), // Eraser
		widget.NewToolbarAction(theme.DocumentIcon(), func() {
			m.SetTool(ToolText)
		}), // Text
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			m.ClearAll()
		}), // Clear board
	)

	// --- Color Palette ---
	onColorTapped := func(c state.RGB) {
		pal.Brush = c
	}
	colorBox := container.NewHBox(
		newColorSwatch(state.Black, onColorTapped),
		newColorSwatch(state.RGB{1, 0, 0}, onColorTapped), // Red
		newColorSwatch(state.RGB{0, 1, 0}, onColorTapped), // Green
		newColorSwatch(state.RGB{0, 0, 1}, onColorTapped), // Blue
		newColorSwatch(state.RGB{1, 1, 0}, onColorTapped), // Yellow
	)

	// --- Brush Size Slider ---
	sizeSlider := widget.NewSlider(state.MinBrushSize, state.MaxBrushSize)
	sizeSlider.Step = 1
	sizeSlider.SetValue(float64(state.DefaultBrushSize))
	sizeSlider.OnChanged = func(val float64) {
		board.doc.SetBrushSize(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), sizeSlider)

	darkCheck := widget.NewCheck("Dark", func(on bool) {
		if onDarkMode != nil {
			onDarkMode(on)
		}
	})
	darkCheck.Checked = pal.DarkMode

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		shapeSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		darkCheck,
		layout.NewSpacer(),
	)
}
