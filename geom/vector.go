package geom

import (
	"fmt"
	"math"
)

// Vec2 is a point or displacement in the cartesian plane. All arithmetic is
// componentwise, so the same type serves for positions, directions, and
// coordinate pairs.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Diag returns the vector ⟨d, d⟩.
func Diag(d float64) Vec2 {
	return Vec2{X: d, Y: d}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// MulEach multiplies componentwise.
func (v Vec2) MulEach(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// DivEach divides componentwise.
func (v Vec2) DivEach(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length2 returns the squared magnitude of the vector.
func (v Vec2) Length2() float64 {
	return v.Dot(v)
}

// Normalize returns a vector of magnitude 1 with the same direction.
// A zero vector normalizes to NaN components.
func (v Vec2) Normalize() Vec2 {
	return v.Scale(1 / math.Hypot(v.X, v.Y))
}

// Lerp linearly interpolates from v to o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Scale(t))
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// AllLess reports whether both components of v are strictly less than those
// of o. This is a partial order: NaN components make it false.
func (v Vec2) AllLess(o Vec2) bool {
	return v.X < o.X && v.Y < o.Y
}

// AllAtLeast reports whether both components of v are at least those of o.
func (v Vec2) AllAtLeast(o Vec2) bool {
	return v.X >= o.X && v.Y >= o.Y
}

// Bits returns the exact bit patterns of the two components. Point sets are
// deduplicated on this key, so two points are "the same" only when they are
// bit-identical; distinct NaN payloads stay distinct.
func (v Vec2) Bits() [2]uint64 {
	return [2]uint64{math.Float64bits(v.X), math.Float64bits(v.Y)}
}
