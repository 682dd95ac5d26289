package reflector

import (
	"math"

	"github.com/mglyde/catoptric/geom"
)

// LinearApproximator models each normal's behavior as the single line
// segment between its two extreme sample points, tagged with the images at
// those endpoints. Valid only when the normal's image is near-linear over
// the sampled range; in exchange it is far cheaper than rasterisation.
type LinearApproximator struct {
	// Threshold controls how close a figure point must be to a segment to
	// count as lying on it; the index is queried with squared radius
	// √Threshold.
	Threshold float64
}

// endpointImages carries the reflected images at a segment's two endpoints.
type endpointImages struct {
	from geom.Vec2
	to   geom.Vec2
}

func (ap LinearApproximator) ApproximateReflection(mirror, figure Curve, transform Surface, _ geom.Interval, _ geom.View) []geom.Vec2 {
	var items []geom.Item[geom.Edge, endpointImages]

	tInterval := geom.Interval{Start: outerStart, End: outerEnd, Step: 1}
	for t := range tInterval.Seq() {
		normal := mirror.Normal(t)

		type sample struct {
			point geom.Vec2
			image geom.Vec2
		}
		var samples []sample
		for s := range geom.Endpoints(outerStart, outerEnd).Seq() {
			point := normal(s)
			samples = append(samples, sample{
				point: point,
				image: reflectThrough(mirror, normal, point, s, t, transform),
			})
		}

		for i := 0; i+1 < len(samples); i++ {
			items = append(items, geom.Item[geom.Edge, endpointImages]{
				Object: geom.Edge{From: samples[i].point, To: samples[i+1].point},
				Data:   endpointImages{from: samples[i].image, to: samples[i+1].image},
			})
		}
	}

	index := geom.BulkLoad(items)
	reflection := make(pointSet)

	figInterval := geom.Interval{Start: outerStart, End: outerEnd, Step: 1}
	for _, p := range figure.Sample(figInterval) {
		if p.IsNaN() {
			continue
		}
		index.LookupInCircle(p, math.Sqrt(ap.Threshold), func(edge geom.Edge, images endpointImages) {
			// Position of p along the segment, left unnormalized so the
			// range check happens before any division.
			u := edge.Project(p)
			len2 := edge.Length2()
			if u < 0 || u > len2 {
				// No extrapolation beyond the segment.
				return
			}
			image := images.from.Lerp(images.to, u/len2)
			if !image.IsNaN() {
				reflection.add(image)
			}
		})
	}

	return reflection.points()
}
