package reflector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mglyde/catoptric/geom"
)

func parabola(t float64) geom.Vec2 {
	return geom.Vec(t, (t/10)*(t/10))
}

func TestCurveSample(t *testing.T) {
	c := Curve(parabola)
	points := c.Sample(geom.Interval{Start: 0, End: 20, Step: 10})
	assert.Equal(t, []geom.Vec2{
		geom.Vec(0, 0),
		geom.Vec(10, 1),
		geom.Vec(20, 4),
	}, points)
}

func TestCurveDerivative(t *testing.T) {
	line := Curve(func(t float64) geom.Vec2 { return geom.Vec(2*t, -3*t) })
	// Central difference is exact on a straight line.
	d := line.Derivative(5)
	assert.InDelta(t, 2, d.X, 1e-12)
	assert.InDelta(t, -3, d.Y, 1e-12)

	circle := Curve(func(t float64) geom.Vec2 { return geom.Vec(math.Cos(t), math.Sin(t)) })
	d = circle.Derivative(0)
	// h = 0.1 is a coarse window; tolerate its error magnitude.
	assert.InDelta(t, 0, d.X, 1e-2)
	assert.InDelta(t, 1, d.Y, 1e-2)
}

func TestNormalIdentityAtOrigin(t *testing.T) {
	c := Curve(parabola)
	for _, tt := range []float64{-17, -2, 0, 0.5, 33} {
		normal := c.Normal(tt)
		assert.Equal(t, c(tt), normal(0), "Normal(%g)(0) must equal the curve point exactly", tt)
	}
}

func TestNormalIsPerpendicular(t *testing.T) {
	c := Curve(parabola)
	tt := 20.0
	normal := c.Normal(tt)
	along := normal(1).Sub(normal(0))
	assert.InDelta(t, 0, along.Dot(c.Derivative(tt)), 1e-12)
	// Unit parameterization: one step of s moves one unit of distance.
	assert.InDelta(t, 1, along.Length2(), 1e-12)
}
