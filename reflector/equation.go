package reflector

import "github.com/mglyde/catoptric/geom"

// Curve is a parametric plane curve t ↦ (x, y). Derived curves are new
// closures; nothing here mutates.
type Curve func(t float64) geom.Vec2

// Surface is a parametric equation of two variables. It is used for the
// sigma/tau transform, mapping sampling coordinates (s, t) to the
// coordinates (σ, τ) whose normal point is the image.
type Surface func(s, t float64) geom.Vec2

// Sample evaluates the curve at each value the interval yields, in order.
func (c Curve) Sample(iv geom.Interval) []geom.Vec2 {
	var points []geom.Vec2
	for t := range iv.Seq() {
		points = append(points, c(t))
	}
	return points
}

// derivStep is the half-width of the central difference window.
const derivStep = 0.1

// Derivative approximates the gradient at t as
// (c(t+h) − c(t−h)) / 2h with fixed h. Callers must tolerate the error of a
// numerical derivative; there is no analytic path.
func (c Curve) Derivative(t float64) geom.Vec2 {
	return c(t + derivStep).Sub(c(t - derivStep)).Scale(1 / (2 * derivStep))
}

// Normal returns the line through c(t) perpendicular to the tangent there,
// parameterized so that Normal(t)(0) == c(t) exactly and ±s move
// symmetrically along the normal.
func (c Curve) Normal(t float64) Curve {
	m := c(t)
	d := c.Derivative(t).Normalize()
	return func(s float64) geom.Vec2 {
		return geom.Vec(m.X-s*d.Y, m.Y+s*d.X)
	}
}
