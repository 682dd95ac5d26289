package geom

import "iter"

// Interval is a closed range [Start, End] walked with a fixed Step. It is the
// sampling primitive for every curve in the package: deterministic, finite,
// and inclusive of any term ≤ End.
type Interval struct {
	Start float64
	End   float64
	Step  float64
}

// Endpoints returns the interval whose single step spans exactly [a, b], so
// iterating it yields a and then b.
func Endpoints(a, b float64) Interval {
	return Interval{Start: a, End: b, Step: b - a}
}

// Seq returns the progression Start, Start+Step, … up to and including the
// last term ≤ End. Each range over the sequence restarts from Start.
func (iv Interval) Seq() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for t := iv.Start; t <= iv.End; t += iv.Step {
			if !yield(t) {
				return
			}
		}
	}
}

// Values collects the progression into a slice.
func (iv Interval) Values() []float64 {
	var vs []float64
	for t := range iv.Seq() {
		vs = append(vs, t)
	}
	return vs
}

// Count returns the number of terms the interval yields.
func (iv Interval) Count() int {
	n := 0
	for range iv.Seq() {
		n++
	}
	return n
}
