package reflector

import "github.com/mglyde/catoptric/geom"

// QuadraticApproximator joins adjacent normal samples into quadrilateral
// interpolation cells, each tagged with the reflected images at its corners.
// Figure points are matched to cells by exact containment and their images
// interpolated from the corner images.
type QuadraticApproximator struct {
	// TStep is the spacing between adjacent normals; 0 means 1.
	TStep float64
	// SStep is the spacing of samples along each normal; 0 means a single
	// span, so each cell stretches across the normal's full sampled extent.
	SStep float64
}

// cornerImages carries the reflected images at a quad's four vertices, in
// vertex order.
type cornerImages [4]geom.Vec2

func (ap QuadraticApproximator) ApproximateReflection(mirror, figure Curve, transform Surface, _ geom.Interval, _ geom.View) []geom.Vec2 {
	tStep := ap.TStep
	if tStep <= 0 {
		tStep = 1
	}
	sStep := ap.SStep
	if sStep <= 0 {
		sStep = outerEnd - outerStart
	}

	type sample struct {
		point geom.Vec2
		image geom.Vec2
	}

	// One row of (point, image) samples per normal; samples with NaN in
	// either member contribute nothing and are dropped here.
	var rows [][]sample
	tInterval := geom.Interval{Start: outerStart, End: outerEnd, Step: tStep}
	sInterval := geom.Interval{Start: outerStart, End: outerEnd, Step: sStep}
	for t := range tInterval.Seq() {
		normal := mirror.Normal(t)
		var row []sample
		for s := range sInterval.Seq() {
			point := normal(s)
			image := reflectThrough(mirror, normal, point, s, t, transform)
			if point.IsNaN() || image.IsNaN() {
				continue
			}
			row = append(row, sample{point: point, image: image})
		}
		rows = append(rows, row)
	}

	// Stitch neighboring rows and columns into anticlockwise quads.
	var items []geom.Item[geom.Quad, cornerImages]
	for i := 0; i+1 < len(rows); i++ {
		lo, hi := rows[i], rows[i+1]
		n := min(len(lo), len(hi))
		for j := 0; j+1 < n; j++ {
			quad := geom.NewQuad([4]geom.Vec2{
				lo[j].point, lo[j+1].point, hi[j+1].point, hi[j].point,
			})
			items = append(items, geom.Item[geom.Quad, cornerImages]{
				Object: quad,
				Data:   cornerImages{lo[j].image, lo[j+1].image, hi[j+1].image, hi[j].image},
			})
		}
	}

	index := geom.BulkLoad(items)
	reflection := make(pointSet)

	figInterval := geom.Interval{Start: outerStart, End: outerEnd, Step: 0.5}
	for _, p := range figure.Sample(figInterval) {
		if p.IsNaN() {
			continue
		}
		// Radius 0 plus the quad's signed distance makes this an exact
		// point-in-polygon query. A point may land in several cells near
		// seams; the bit-pattern set absorbs duplicates.
		index.LookupInCircle(p, 0, func(quad geom.Quad, images cornerImages) {
			if image := interpolateQuad(quad, images, p); !image.IsNaN() {
				reflection.add(image)
			}
		})
	}

	return reflection.points()
}

// interpolateQuad blends the corner images by p's projection fractions along
// edges 0 and 2, each weighted by its distance to the opposite edge so that
// the nearer edge dominates. This is not a true bilinear isoparametric map;
// the formula is kept exactly as historically defined, asymmetries near
// corners included.
func interpolateQuad(quad geom.Quad, images cornerImages, p geom.Vec2) geom.Vec2 {
	a := quad.Edges[0].Project(p) / quad.Edges[0].Length2()
	aDis := quad.Edges[0].Distance2(p)
	b := 1 - quad.Edges[2].Project(p)/quad.Edges[2].Length2()
	bDis := quad.Edges[2].Distance2(p)

	totalDis := aDis + bDis
	aFactor := 1 - aDis/totalDis
	bFactor := 1 - bDis/totalDis

	onA := images[0].Lerp(images[1], a)
	onB := images[3].Lerp(images[2], b)
	return onA.Scale(aFactor).Add(onB.Scale(bFactor))
}
