package reflector

import "github.com/mglyde/catoptric/geom"

// RasterisationApproximator splits the view into a pixel grid, buckets the
// reflected image of every sampled normal point into the cell its source
// falls in, and reads back the buckets under the figure curve. This is the
// baseline method: accuracy is bounded by the cell resolution, and cost by
// the |t| × |s| sampling grid.
type RasterisationApproximator struct {
	// CellSize is the edge length of a rasterisation cell in pixels.
	CellSize int
}

func (ap RasterisationApproximator) ApproximateReflection(mirror, figure Curve, transform Surface, interval geom.Interval, view geom.View) []geom.Vec2 {
	cell := ap.CellSize
	if cell < 1 {
		cell = 1
	}
	cols := (view.Width + cell - 1) / cell
	rows := (view.Height + cell - 1) / cell

	// Each cell holds the images of the normal points that project into it.
	grid := make([][]geom.Vec2, cols*rows)
	for t := range interval.Seq() {
		normal := mirror.Normal(t)
		for s := range interval.Seq() {
			point := normal(s)
			col, row, ok := view.Project(point, cols, rows)
			if !ok {
				continue
			}
			image := reflectThrough(mirror, normal, point, s, t, transform)
			if image.IsNaN() {
				continue
			}
			grid[col+row*cols] = append(grid[col+row*cols], image)
		}
	}

	// Intersect the grid with the figure. Cells are deduplicated so each
	// bucket contributes once however many figure samples land in it.
	cells := make(map[int]struct{})
	for _, p := range figure.Sample(interval) {
		if col, row, ok := view.Project(p, cols, rows); ok {
			cells[col+row*cols] = struct{}{}
		}
	}

	var reflection []geom.Vec2
	for i := range cells {
		reflection = append(reflection, grid[i]...)
	}
	return reflection
}
