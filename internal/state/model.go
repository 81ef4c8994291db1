package state

import (
	"image"
	"image/color"

	"aboard/internal/geom"
)

// RGB is a color as three normalized channels. It marshals to the
// persisted [r, g, b] array form directly.
type RGB [3]float64

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
)

// NRGBA converts to the 8-bit color fyne paints with.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 255,
	}
}

// Stroke is a committed freehand polyline. Points are world-space and
// their order is the drawing order. A committed stroke always has at
// least one point; a single point renders as a filled dot.
type Stroke struct {
	Points []geom.Point
	Color  RGB
	Size   float64
	Eraser bool
}

// ShapeKind tags the geometry rule a shape is rendered with.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeTriangle  ShapeKind = "triangle"
	ShapeArrow     ShapeKind = "arrow"
)

// Shape is a committed geometric shape: a world anchor plus a signed
// extent. The sign of W/H records the drag direction; renderers
// normalize it, except for arrows which use the raw extent.
type Shape struct {
	Kind ShapeKind
	X, Y float64
	W, H float64

	Color RGB
	Size  float64
}

// TextItem is a committed text label anchored in world space.
type TextItem struct {
	Text     string
	X, Y     float64
	Color    RGB
	FontSize float64
}

// ImageItem is a placed raster. It lives only in memory: images are
// excluded from the persisted format and do not survive a save/reload.
type ImageItem struct {
	Raster image.Image
	X, Y   float64
	W, H   float64
}
