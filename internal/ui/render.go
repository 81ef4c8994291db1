package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"aboard/internal/geom"
	"aboard/internal/state"
)

const (
	// segmentsPerSpan is the fixed Catmull-Rom subdivision used for
	// stroke display. Raw stroke points are never replaced; smoothing
	// is recomputed every paint.
	segmentsPerSpan = 5

	cornerRadiusMax = 20.0
	arrowHeadLength = 15.0
	arrowHeadAngle  = math.Pi / 6 // 30 degrees
)

// BuildObjects turns the document into the ordered fyne paint list:
// background, images, strokes, shapes, text, then the in-progress
// draft on top.
func BuildObjects(doc *state.Document, pal *state.Palette, size fyne.Size) []fyne.CanvasObject {
	v := doc.View

	bg := canvas.NewRectangle(pal.Background.NRGBA())
	bg.Resize(size)
	objects := []fyne.CanvasObject{bg}

	for _, it := range doc.Images {
		objects = append(objects, imageObject(it, v))
	}
	for i := range doc.Strokes {
		objects = append(objects, strokeObjects(&doc.Strokes[i], v)...)
	}
	for i := range doc.Shapes {
		objects = append(objects, shapeObjects(&doc.Shapes[i], v)...)
	}
	for i := range doc.Texts {
		objects = append(objects, textObject(&doc.Texts[i], v))
	}

	if doc.CurrentStroke != nil {
		objects = append(objects, strokeObjects(doc.CurrentStroke, v)...)
	}
	if doc.CurrentShape != nil {
		objects = append(objects, shapeObjects(doc.CurrentShape, v)...)
	}
	return objects
}

func imageObject(it state.ImageItem, v *geom.Viewport) fyne.CanvasObject {
	img := canvas.NewImageFromImage(it.Raster)
	img.FillMode = canvas.ImageFillStretch
	pos := v.WorldToScreen(geom.Pt(it.X, it.Y))
	img.Move(fyne.NewPos(float32(pos.X), float32(pos.Y)))
	img.Resize(fyne.NewSize(float32(it.W*v.Zoom), float32(it.H*v.Zoom)))
	return img
}

func strokeObjects(s *state.Stroke, v *geom.Viewport) []fyne.CanvasObject {
	if len(s.Points) == 0 {
		return nil
	}
	col := s.Color.NRGBA()
	width := float32(s.Size * v.Zoom)

	if len(s.Points) == 1 {
		return []fyne.CanvasObject{dot(v.WorldToScreen(s.Points[0]), s.Size*v.Zoom, col)}
	}

	pts := s.Points
	if len(pts) >= 4 {
		pts = geom.Smooth(pts, segmentsPerSpan)
	}

	objects := make([]fyne.CanvasObject, 0, len(pts)-1)
	prev := v.WorldToScreen(pts[0])
	for _, p := range pts[1:] {
		cur := v.WorldToScreen(p)
		objects = append(objects, segment(prev, cur, col, width))
		prev = cur
	}
	return objects
}

func shapeObjects(s *state.Shape, v *geom.Viewport) []fyne.CanvasObject {
	col := s.Color.NRGBA()
	width := float32(s.Size * v.Zoom)

	// Screen-space anchor and extent; the extent keeps its drag sign.
	a := v.WorldToScreen(geom.Pt(s.X, s.Y))
	ext := geom.Pt(s.W*v.Zoom, s.H*v.Zoom)

	// Normalized non-negative rectangle for everything but arrows.
	x, y, w, h := a.X, a.Y, ext.X, ext.Y
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}

	switch s.Kind {
	case state.ShapeRectangle:
		if w == 0 || h == 0 {
			return nil
		}
		r := canvas.NewRectangle(color.Transparent)
		r.StrokeColor = col
		r.StrokeWidth = width
		r.CornerRadius = float32(math.Min(0.1*math.Min(w, h), cornerRadiusMax))
		r.Move(fyne.NewPos(float32(x), float32(y)))
		r.Resize(fyne.NewSize(float32(w), float32(h)))
		return []fyne.CanvasObject{r}

	case state.ShapeCircle:
		radius := math.Min(w, h) / 2
		cx, cy := x+w/2, y+h/2
		c := &canvas.Circle{StrokeColor: col, StrokeWidth: width, FillColor: color.Transparent}
		c.Position1 = fyne.NewPos(float32(cx-radius), float32(cy-radius))
		c.Position2 = fyne.NewPos(float32(cx+radius), float32(cy+radius))
		return []fyne.CanvasObject{c}

	case state.ShapeTriangle:
		apex := geom.Pt(x+w/2, y)
		left := geom.Pt(x, y+h)
		right := geom.Pt(x+w, y+h)
		return []fyne.CanvasObject{
			segment(apex, left, col, width),
			segment(left, right, col, width),
			segment(right, apex, col, width),
		}

	case state.ShapeArrow:
		tip := a.Add(ext)
		angle := math.Atan2(tip.Y-a.Y, tip.X-a.X)
		hl := arrowHeadLength * v.Zoom
		headA := geom.Pt(tip.X-hl*math.Cos(angle-arrowHeadAngle), tip.Y-hl*math.Sin(angle-arrowHeadAngle))
		headB := geom.Pt(tip.X-hl*math.Cos(angle+arrowHeadAngle), tip.Y-hl*math.Sin(angle+arrowHeadAngle))
		return []fyne.CanvasObject{
			segment(a, tip, col, width),
			segment(tip, headA, col, width),
			segment(tip, headB, col, width),
		}
	}
	return nil
}

func textObject(t *state.TextItem, v *geom.Viewport) fyne.CanvasObject {
	obj := canvas.NewText(t.Text, t.Color.NRGBA())
	obj.TextSize = float32(t.FontSize * v.Zoom)
	pos := v.WorldToScreen(geom.Pt(t.X, t.Y))
	obj.Move(fyne.NewPos(float32(pos.X), float32(pos.Y)))
	return obj
}

func segment(from, to geom.Point, col color.Color, width float32) fyne.CanvasObject {
	l := canvas.NewLine(col)
	l.StrokeWidth = width
	l.Position1 = fyne.NewPos(float32(from.X), float32(from.Y))
	l.Position2 = fyne.NewPos(float32(to.X), float32(to.Y))
	return l
}

func dot(center geom.Point, diameter float64, col color.Color) fyne.CanvasObject {
	r := diameter / 2
	c := &canvas.Circle{FillColor: col}
	c.Position1 = fyne.NewPos(float32(center.X-r), float32(center.Y-r))
	c.Position2 = fyne.NewPos(float32(center.X+r), float32(center.Y+r))
	return c
}
