package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aboard/internal/geom"
	"aboard/internal/state"
)

var testSize = fyne.NewSize(800, 600)

func TestBuildObjectsEmptyDocument(t *testing.T) {
	doc := state.NewDocument()
	pal := state.NewPalette()

	objects := BuildObjects(doc, pal, testSize)

	require.Len(t, objects, 1)
	bg, ok := objects[0].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, pal.Background.NRGBA(), bg.FillColor)
	assert.Equal(t, testSize, bg.Size())
}

func TestBuildObjectsSinglePointStrokeIsDisc(t *testing.T) {
	doc := state.NewDocument()
	doc.Strokes = []state.Stroke{{Points: []geom.Point{{X: 10, Y: 10}}, Color: state.Black, Size: 8}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	require.Len(t, objects, 2)
	disc, ok := objects[1].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, state.Black.NRGBA(), disc.FillColor)
	assert.Equal(t, float32(6), disc.Position1.X) // 10 - 8/2
	assert.Equal(t, float32(14), disc.Position2.X)
}

func TestBuildObjectsShortStrokeIsRawPolyline(t *testing.T) {
	doc := state.NewDocument()
	doc.Strokes = []state.Stroke{{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		Color:  state.Black, Size: 3,
	}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	// Background plus one line per consecutive pair, no interpolation
	// below four points.
	assert.Len(t, objects, 1+2)
}

func TestBuildObjectsLongStrokeIsSmoothed(t *testing.T) {
	doc := state.NewDocument()
	doc.Strokes = []state.Stroke{{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 0}, {X: 30, Y: 5}, {X: 40, Y: 0}},
		Color:  state.Black, Size: 3,
	}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	// 5 raw points smooth to 1 + 2*segmentsPerSpan + 2 = 13 points,
	// hence 12 segments.
	assert.Len(t, objects, 1+12)
}

func TestBuildObjectsStrokeWidthScalesWithZoom(t *testing.T) {
	doc := state.NewDocument()
	doc.View.Zoom = 2
	doc.Strokes = []state.Stroke{{
		Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		Color:  state.Black, Size: 3,
	}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	line, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, float32(6), line.StrokeWidth)
	assert.Equal(t, float32(20), line.Position2.X)
}

func TestBuildObjectsRectangle(t *testing.T) {
	doc := state.NewDocument()
	doc.Shapes = []state.Shape{{Kind: state.ShapeRectangle, X: 10, Y: 20, W: -100, H: 50, Color: state.Black, Size: 2}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	require.Len(t, objects, 2)
	r, ok := objects[1].(*canvas.Rectangle)
	require.True(t, ok)
	// Negative width normalizes leftward from the anchor.
	assert.Equal(t, float32(-90), r.Position().X)
	assert.Equal(t, float32(20), r.Position().Y)
	assert.Equal(t, float32(100), r.Size().Width)
	assert.Equal(t, float32(50), r.Size().Height)
	assert.Equal(t, float32(5), r.CornerRadius) // 10% of min(100,50)
}

func TestBuildObjectsRectangleCornerRadiusCap(t *testing.T) {
	doc := state.NewDocument()
	doc.Shapes = []state.Shape{{Kind: state.ShapeRectangle, X: 0, Y: 0, W: 400, H: 300, Color: state.Black, Size: 2}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	r := objects[1].(*canvas.Rectangle)
	assert.Equal(t, float32(20), r.CornerRadius)
}

func TestBuildObjectsZeroExtentRectangleSkipped(t *testing.T) {
	doc := state.NewDocument()
	doc.Shapes = []state.Shape{{Kind: state.ShapeRectangle, X: 0, Y: 0, W: 40, H: 0, Color: state.Black, Size: 2}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)
	assert.Len(t, objects, 1)
}

func TestBuildObjectsCircleInscribed(t *testing.T) {
	doc := state.NewDocument()
	doc.Shapes = []state.Shape{{Kind: state.ShapeCircle, X: 100, Y: 100, W: 50, H: 40, Color: state.Black, Size: 2}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	c, ok := objects[1].(*canvas.Circle)
	require.True(t, ok)
	// Center (125, 120), radius min(50,40)/2 = 20.
	assert.Equal(t, float32(105), c.Position1.X)
	assert.Equal(t, float32(100), c.Position1.Y)
	assert.Equal(t, float32(145), c.Position2.X)
	assert.Equal(t, float32(140), c.Position2.Y)
}

func TestBuildObjectsTriangleAndArrow(t *testing.T) {
	doc := state.NewDocument()
	doc.Shapes = []state.Shape{
		{Kind: state.ShapeTriangle, X: 0, Y: 0, W: 40, H: 30, Color: state.Black, Size: 2},
		{Kind: state.ShapeArrow, X: 0, Y: 0, W: 100, H: 0, Color: state.Black, Size: 2},
	}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	// Background + 3 triangle edges + shaft and two head strokes.
	require.Len(t, objects, 1+3+3)
	for _, o := range objects[1:] {
		_, ok := o.(*canvas.Line)
		assert.True(t, ok)
	}
}

func TestBuildObjectsArrowHeads(t *testing.T) {
	doc := state.NewDocument()
	doc.Shapes = []state.Shape{{Kind: state.ShapeArrow, X: 0, Y: 0, W: 100, H: 0, Color: state.Black, Size: 2}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)
	require.Len(t, objects, 4)

	shaft := objects[1].(*canvas.Line)
	assert.Equal(t, float32(100), shaft.Position2.X)

	// Head strokes start at the tip and sweep back 15 units at 30
	// degrees either side of the shaft.
	headA := objects[2].(*canvas.Line)
	headB := objects[3].(*canvas.Line)
	assert.Equal(t, float32(100), headA.Position1.X)
	assert.Equal(t, float32(100), headB.Position1.X)
	assert.InDelta(t, 100-15*0.8660254, headA.Position2.X, 1e-3)
	assert.InDelta(t, 7.5, headA.Position2.Y, 1e-3)
	assert.InDelta(t, -7.5, headB.Position2.Y, 1e-3)
}

func TestBuildObjectsText(t *testing.T) {
	doc := state.NewDocument()
	doc.View.Zoom = 2
	doc.Texts = []state.TextItem{{Text: "hi", X: 10, Y: 10, Color: state.Black, FontSize: 16}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	txt, ok := objects[1].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "hi", txt.Text)
	assert.Equal(t, float32(32), txt.TextSize)
	assert.Equal(t, float32(20), txt.Position().X)
}

func TestBuildObjectsImageScaledByZoom(t *testing.T) {
	doc := state.NewDocument()
	doc.View.Zoom = 0.5
	doc.AddImage(image.NewRGBA(image.Rect(0, 0, 100, 60)), 40, 40)

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	img, ok := objects[1].(*canvas.Image)
	require.True(t, ok)
	assert.Equal(t, float32(50), img.Size().Width)
	assert.Equal(t, float32(30), img.Size().Height)
	assert.Equal(t, float32(20), img.Position().X)
}

func TestBuildObjectsDraftPaintedLast(t *testing.T) {
	doc := state.NewDocument()
	doc.Strokes = []state.Stroke{{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, Color: state.Black, Size: 3}}
	doc.BeginShape(state.ShapeCircle, geom.Pt(10, 10), state.Black)
	doc.ResizeShape(geom.Pt(60, 60))

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	// Background, committed stroke segment, then the draft on top.
	require.Len(t, objects, 3)
	_, ok := objects[2].(*canvas.Circle)
	assert.True(t, ok)
}

func TestBuildObjectsPaintOrder(t *testing.T) {
	doc := state.NewDocument()
	doc.AddImage(image.NewRGBA(image.Rect(0, 0, 10, 10)), 0, 0)
	doc.Strokes = []state.Stroke{{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, Color: state.Black, Size: 3}}
	doc.Shapes = []state.Shape{{Kind: state.ShapeCircle, X: 0, Y: 0, W: 50, H: 50, Color: state.Black, Size: 2}}
	doc.Texts = []state.TextItem{{Text: "t", X: 0, Y: 0, Color: state.Black, FontSize: 12}}

	objects := BuildObjects(doc, state.NewPalette(), testSize)

	require.Len(t, objects, 5)
	assert.IsType(t, &canvas.Rectangle{}, objects[0])
	assert.IsType(t, &canvas.Image{}, objects[1])
	assert.IsType(t, &canvas.Line{}, objects[2])
	assert.IsType(t, &canvas.Circle{}, objects[3])
	assert.IsType(t, &canvas.Text{}, objects[4])
}
