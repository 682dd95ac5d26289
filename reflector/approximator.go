// Package reflector approximates generalized reflections: the set of points
// that are images of a figure curve under reflection across the normal lines
// of a mirror curve.
package reflector

import (
	"math"

	"github.com/mglyde/catoptric/geom"
)

// Approximator is a strategy for approximating the reflection of figure in
// mirror. The interval governs the resolution of the displayed curves; the
// strategies pre-sample the mirror's normals on their own fixed outer range.
// transform may be nil, meaning pure reflection; see reflectThrough.
type Approximator interface {
	ApproximateReflection(mirror, figure Curve, transform Surface, interval geom.Interval, view geom.View) []geom.Vec2
}

// The fixed outer range over which mirror normals are pre-sampled,
// independent of the caller's display interval.
const (
	outerStart = -256
	outerEnd   = 256
)

// reflectThrough computes the image of the sample at parameter s on the
// mirror's normal at t, where point is the already-evaluated normal(s). The
// transform yields (σ, τ) = transform(s, t); the cases where σ or τ equal
// the sampling coordinates skip re-evaluating equations whose result is
// already in hand. A nil transform is the pure reflection (σ, τ) = (−s, t).
func reflectThrough(mirror, normal Curve, point geom.Vec2, s, t float64, transform Surface) geom.Vec2 {
	sigma, tau := -s, t
	if transform != nil {
		st := transform(s, t)
		sigma, tau = st.X, st.Y
	}
	switch {
	case sigma == s && tau == t:
		return point
	case tau == t:
		return normal(sigma)
	default:
		return mirror.Normal(tau)(sigma)
	}
}

// pointSet accumulates points deduplicated by the exact bit patterns of
// their coordinates. Epsilon-tolerant equality would change reported point
// counts; exactness is deliberate.
type pointSet map[[2]uint64]struct{}

func (ps pointSet) add(p geom.Vec2) {
	ps[p.Bits()] = struct{}{}
}

func (ps pointSet) points() []geom.Vec2 {
	out := make([]geom.Vec2, 0, len(ps))
	for bits := range ps {
		out = append(out, geom.Vec(math.Float64frombits(bits[0]), math.Float64frombits(bits[1])))
	}
	return out
}
