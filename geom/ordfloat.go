package geom

import "math"

// OrdFloat is a float64 with a total order: NaNs compare equal to each other
// and below every other value. It exists to be a sort or priority key; do
// arithmetic on the underlying float64, not on this.
type OrdFloat float64

// Compare returns -1, 0, or 1 as x sorts before, equal to, or after y.
func (x OrdFloat) Compare(y OrdFloat) int {
	xn, yn := math.IsNaN(float64(x)), math.IsNaN(float64(y))
	switch {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	case float64(x) < float64(y):
		return -1
	case float64(x) > float64(y):
		return 1
	default:
		return 0
	}
}

// Less reports whether x sorts strictly before y.
func (x OrdFloat) Less(y OrdFloat) bool {
	return x.Compare(y) < 0
}

// Equal reports whether x and y are equal under the total order. Unlike
// float64 ==, OrdFloat(NaN).Equal(OrdFloat(NaN)) is true.
func (x OrdFloat) Equal(y OrdFloat) bool {
	return x.Compare(y) == 0
}
