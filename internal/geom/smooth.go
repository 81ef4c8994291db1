package geom

// Smooth interpolates a polyline with Catmull-Rom splines for display.
// It is pure: the input slice is never modified, and the raw points a
// stroke stores are never replaced by the smoothed output.
//
// Fewer than four input points are returned unchanged; the spline needs
// four control points per span and very short gestures look better
// un-interpolated. Otherwise every consecutive 4-tuple forms a span and
// contributes segmentsPerSpan points, evaluated for t from 1/segments
// through 1. The result is the first input point, the interpolated
// spans in order, then the last two input points.
func Smooth(points []Point, segmentsPerSpan int) []Point {
	if len(points) < 4 || segmentsPerSpan < 1 {
		return points
	}

	out := make([]Point, 0, 1+(len(points)-3)*segmentsPerSpan+2)
	out = append(out, points[0])

	for i := 0; i+3 < len(points); i++ {
		p0, p1, p2, p3 := points[i], points[i+1], points[i+2], points[i+3]
		for s := 1; s <= segmentsPerSpan; s++ {
			t := float64(s) / float64(segmentsPerSpan)
			out = append(out, Point{
				X: catmullRom(p0.X, p1.X, p2.X, p3.X, t),
				Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
			})
		}
	}

	out = append(out, points[len(points)-2], points[len(points)-1])
	return out
}

// catmullRom evaluates the standard cubic Catmull-Rom basis for one axis.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}
