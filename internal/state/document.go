package state

import (
	"image"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"

	"aboard/internal/geom"
)

const (
	// ShapeDragThreshold is the minimum drag extent, in world units,
	// below which a shape draft is discarded instead of committed.
	ShapeDragThreshold = 5.0

	// MaxImageExtent is the largest side of a placed image; bigger
	// rasters are uniformly downscaled on insertion.
	MaxImageExtent = 500.0

	MinBrushSize = 1
	MaxBrushSize = 50

	DefaultBrushSize = 3
)

// Document is one editing session's worth of drawable entities plus
// the view state. Paint order is insertion order within a collection,
// collections composited as images, strokes, shapes, text. It is
// mutated only from the single interaction loop and does no locking.
type Document struct {
	Strokes []Stroke
	Shapes  []Shape
	Texts   []TextItem
	Images  []ImageItem

	View      *geom.Viewport
	BrushSize int

	// In-progress drafts. A draft is promoted on gesture completion or
	// dropped whole; it is never partially committed.
	CurrentStroke *Stroke
	CurrentShape  *Shape
}

// NewDocument returns an empty document with default view state.
func NewDocument() *Document {
	return &Document{
		View:      geom.NewViewport(),
		BrushSize: DefaultBrushSize,
	}
}

// SetBrushSize clamps to the allowed brush range.
func (d *Document) SetBrushSize(size int) {
	if size < MinBrushSize {
		size = MinBrushSize
	}
	if size > MaxBrushSize {
		size = MaxBrushSize
	}
	d.BrushSize = size
}

// BeginStroke starts a draft stroke with a single point.
func (d *Document) BeginStroke(p geom.Point, color RGB, eraser bool) {
	d.CurrentStroke = &Stroke{
		Points: []geom.Point{p},
		Color:  color,
		Size:   float64(d.BrushSize),
		Eraser: eraser,
	}
}

// ExtendStroke appends a point to the draft stroke. Every delivered
// move event contributes a point; there is no distance filtering.
func (d *Document) ExtendStroke(p geom.Point) {
	if d.CurrentStroke == nil {
		return
	}
	d.CurrentStroke.Points = append(d.CurrentStroke.Points, p)
}

// CommitStroke promotes the draft stroke. A draft always holds at
// least its initial point, so commit never produces an empty stroke.
func (d *Document) CommitStroke() {
	if d.CurrentStroke == nil || len(d.CurrentStroke.Points) == 0 {
		d.CurrentStroke = nil
		return
	}
	d.Strokes = append(d.Strokes, *d.CurrentStroke)
	d.CurrentStroke = nil
}

// DiscardStroke drops the draft stroke without committing.
func (d *Document) DiscardStroke() {
	d.CurrentStroke = nil
}

// BeginShape starts a zero-extent draft shape anchored at p.
func (d *Document) BeginShape(kind ShapeKind, p geom.Point, color RGB) {
	d.CurrentShape = &Shape{
		Kind:  kind,
		X:     p.X,
		Y:     p.Y,
		Color: color,
		Size:  float64(d.BrushSize),
	}
}

// ResizeShape sets the draft's signed extent from the current drag
// position: extent = current - anchor.
func (d *Document) ResizeShape(p geom.Point) {
	if d.CurrentShape == nil {
		return
	}
	d.CurrentShape.W = p.X - d.CurrentShape.X
	d.CurrentShape.H = p.Y - d.CurrentShape.Y
}

// CommitShape promotes the draft shape if the drag moved far enough on
// either axis; sub-threshold drags are discarded silently. The extent
// is compared in raw world units. Reports whether a shape was added.
func (d *Document) CommitShape() bool {
	s := d.CurrentShape
	d.CurrentShape = nil
	if s == nil {
		return false
	}
	if math.Abs(s.W) <= ShapeDragThreshold && math.Abs(s.H) <= ShapeDragThreshold {
		return false
	}
	d.Shapes = append(d.Shapes, *s)
	return true
}

// DiscardShape drops the draft shape without committing.
func (d *Document) DiscardShape() {
	d.CurrentShape = nil
}

// AddText adds a text label at a world anchor. Empty or whitespace-only
// text is ignored. The font size derives from the active brush size.
func (d *Document) AddText(text string, x, y float64, color RGB) {
	if strings.TrimSpace(text) == "" {
		return
	}
	fontSize := float64(d.BrushSize) * 4
	if fontSize < 12 {
		fontSize = 12
	}
	d.Texts = append(d.Texts, TextItem{
		Text:     text,
		X:        x,
		Y:        y,
		Color:    color,
		FontSize: fontSize,
	})
}

// AddImage places a decoded raster at a world anchor. Rasters larger
// than MaxImageExtent on either side are uniformly downscaled so both
// sides fit, preserving aspect ratio.
func (d *Document) AddImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	if w > MaxImageExtent || h > MaxImageExtent {
		scale := math.Min(MaxImageExtent/w, MaxImageExtent/h)
		w = math.Floor(w * scale)
		h = math.Floor(h * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		img = dst
	}

	d.Images = append(d.Images, ImageItem{Raster: img, X: x, Y: y, W: w, H: h})
}

// Clear empties every collection and any in-progress draft at once.
func (d *Document) Clear() {
	d.Strokes = nil
	d.Shapes = nil
	d.Texts = nil
	d.Images = nil
	d.CurrentStroke = nil
	d.CurrentShape = nil
}

// RecolorEraserStrokes repaints committed eraser strokes with the
// given background color, leaving other strokes alone. Called when
// the background changes so erased areas stay invisible.
func (d *Document) RecolorEraserStrokes(bg RGB) {
	for i := range d.Strokes {
		if d.Strokes[i].Eraser {
			d.Strokes[i].Color = bg
		}
	}
}
