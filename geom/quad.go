package geom

import "math"

// Quad is a quadrilateral interpolation cell. Callers must supply the
// vertices in a consistent (ideally anticlockwise, convex) winding order;
// nothing here normalizes it, and containment results are undefined if they
// don't.
type Quad struct {
	Points [4]Vec2
	Edges  [4]Edge
}

// NewQuad derives the four boundary edges in vertex order.
func NewQuad(points [4]Vec2) Quad {
	return Quad{
		Points: points,
		Edges: [4]Edge{
			{points[0], points[1]},
			{points[1], points[2]},
			{points[2], points[3]},
			{points[3], points[0]},
		},
	}
}

// Bounds returns the corners of the quad's bounding box.
func (q Quad) Bounds() (min, max Vec2) {
	min = q.Points[0]
	max = q.Points[0]
	for _, p := range q.Points[1:] {
		min = Vec(math.Min(min.X, p.X), math.Min(min.Y, p.Y))
		max = Vec(math.Max(max.X, p.X), math.Max(max.Y, p.Y))
	}
	return min, max
}

// Distance2 returns the squared distance from p to the quad boundary, signed:
// negative when p is inside (nonzero winding number), positive outside. A
// radius-0 index query against this is an exact point-in-polygon test; the
// sign convention is load-bearing there.
func (q Quad) Distance2(p Vec2) float64 {
	min := math.NaN()
	for _, e := range q.Edges {
		d := e.Distance2(p)
		if math.IsNaN(d) {
			continue
		}
		if math.IsNaN(min) || d < min {
			min = d
		}
	}
	if q.windingNumber(p) == 0 {
		return min
	}
	return -min
}

// windingNumber counts signed edge crossings of the horizontal ray from p,
// after http://geomalgorithms.com/a03-_inclusion.html.
func (q Quad) windingNumber(p Vec2) int {
	// displ is the signed displacement of p from the line through a and b:
	// positive when p lies to the left of the direction a→b.
	displ := func(a, b Vec2) float64 {
		return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
	}

	wn := 0
	for i := range q.Points {
		a, b := q.Points[i], q.Points[(i+1)%4]
		switch {
		case a.Y <= p.Y && b.Y > p.Y && displ(a, b) > 0:
			wn++
		case a.Y > p.Y && b.Y <= p.Y && displ(a, b) < 0:
			wn--
		}
	}
	return wn
}
