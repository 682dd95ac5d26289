package geom

import "math"

// View describes the region being displayed: the canvas size in pixels, the
// cartesian point at its center, and a zoom factor in powers of two.
type View struct {
	Width  int
	Height int
	Origin Vec2
	Scale  float64
}

// Size returns the width and height of the region in cartesian distances.
// Scale = 0 is a 1:1 aspect with the pixel grid; each increment doubles it.
func (v View) Size() Vec2 {
	return Vec(float64(v.Width), float64(v.Height)).MulEach(Diag(math.Pow(2, v.Scale)))
}

// Project maps a cartesian point onto a cols × rows grid covering the view.
// It reports ok = false for NaN points and points outside the view's extent.
// Coordinates are truncated, not rounded.
func (v View) Project(p Vec2, cols, rows int) (col, row int, ok bool) {
	if p.IsNaN() {
		return 0, 0, false
	}
	size := v.Size()
	q := p.Sub(v.Origin.Sub(size.Scale(0.5)))
	if !q.AllAtLeast(Vec2{}) || !q.AllLess(size) {
		return 0, 0, false
	}
	cell := q.MulEach(Vec(float64(cols), float64(rows))).DivEach(size)
	return int(cell.X), int(cell.Y), true
}
