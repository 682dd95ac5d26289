package geom

import "math"

// Edge is a directed line segment.
type Edge struct {
	From Vec2
	To   Vec2
}

// Dir returns To − From.
func (e Edge) Dir() Vec2 {
	return e.To.Sub(e.From)
}

// Length2 returns the squared length of the segment.
func (e Edge) Length2() float64 {
	return e.Dir().Length2()
}

// Project returns the unnormalized projection parameter of p onto the edge:
// (p − From)·Dir. Dividing by Length2 gives the 0..1 position along the
// segment; callers keep the raw value so they can range-check against
// Length2 before dividing.
func (e Edge) Project(p Vec2) float64 {
	return p.Sub(e.From).Dot(e.Dir())
}

// Distance2 returns the squared distance from p to the nearest point on the
// segment (endpoints included).
func (e Edge) Distance2(p Vec2) float64 {
	dir := e.Dir()
	len2 := dir.Length2()
	if len2 == 0 {
		return p.Sub(e.From).Length2()
	}
	u := p.Sub(e.From).Dot(dir) / len2
	switch {
	case u <= 0:
		return p.Sub(e.From).Length2()
	case u >= 1:
		return p.Sub(e.To).Length2()
	default:
		return p.Sub(e.From.Add(dir.Scale(u))).Length2()
	}
}

// Bounds returns the corners of the segment's bounding box.
func (e Edge) Bounds() (min, max Vec2) {
	min = Vec(math.Min(e.From.X, e.To.X), math.Min(e.From.Y, e.To.Y))
	max = Vec(math.Max(e.From.X, e.To.X), math.Max(e.From.Y, e.To.Y))
	return min, max
}
