package geom

// Zoom factor bounds and the multiplicative step applied per scroll tick.
const (
	MinZoom = 0.1
	MaxZoom = 5.0

	ZoomStepIn  = 1.1
	ZoomStepOut = 0.9
)

// Viewport maps between screen and world coordinates with a uniform
// affine transform: screen = world*zoom + offset. Both axes scale
// identically; there is no rotation.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// NewViewport returns a viewport with no pan and zoom 1.
func NewViewport() *Viewport {
	return &Viewport{Zoom: 1.0}
}

// WorldToScreen converts a world-space point to screen space.
func (v *Viewport) WorldToScreen(p Point) Point {
	return Point{
		X: p.X*v.Zoom + v.OffsetX,
		Y: p.Y*v.Zoom + v.OffsetY,
	}
}

// ScreenToWorld converts a screen-space point to world space.
func (v *Viewport) ScreenToWorld(p Point) Point {
	return Point{
		X: (p.X - v.OffsetX) / v.Zoom,
		Y: (p.Y - v.OffsetY) / v.Zoom,
	}
}

// Pan shifts the view by a screen-space delta. The shift is independent
// of the current zoom factor.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt multiplies the zoom factor by the given factor, keeping the
// world point under the screen focus pixel fixed (zoom-to-cursor). The
// result is clamped to [MinZoom, MaxZoom]; if the clamped value equals
// the current zoom the call is a no-op, so repeated zooming at a bound
// cannot drift the offset.
func (v *Viewport) ZoomAt(focus Point, factor float64) {
	world := v.ScreenToWorld(focus)

	zoom := clampZoom(v.Zoom * factor)
	if zoom == v.Zoom {
		return
	}
	v.Zoom = zoom

	// Re-anchor so that the same world point still lands on focus.
	v.OffsetX = focus.X - world.X*v.Zoom
	v.OffsetY = focus.Y - world.Y*v.Zoom
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
