package geom

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdFloatNaNsAreEqual(t *testing.T) {
	quiet := math.NaN()
	// A NaN with a different payload is still NaN.
	payload := math.Float64frombits(math.Float64bits(quiet) ^ 1)
	assert.True(t, math.IsNaN(payload))

	assert.True(t, OrdFloat(quiet).Equal(OrdFloat(payload)))
	assert.Equal(t, 0, OrdFloat(quiet).Compare(OrdFloat(quiet)))
}

func TestOrdFloatNaNIsMinimal(t *testing.T) {
	nan := OrdFloat(math.NaN())
	for _, x := range []float64{math.Inf(-1), -1e300, 0, 1e300, math.Inf(1)} {
		assert.True(t, nan.Less(OrdFloat(x)), "NaN should sort before %g", x)
		assert.False(t, OrdFloat(x).Less(nan))
	}
}

func TestOrdFloatOrdersAsIEEE(t *testing.T) {
	assert.True(t, OrdFloat(1).Less(OrdFloat(2)))
	assert.False(t, OrdFloat(2).Less(OrdFloat(2)))
	assert.True(t, OrdFloat(math.Inf(-1)).Less(OrdFloat(0)))
}

func TestOrdFloatSort(t *testing.T) {
	xs := []OrdFloat{3, OrdFloat(math.NaN()), -1, 2}
	sort.Slice(xs, func(i, j int) bool { return xs[i].Less(xs[j]) })
	assert.True(t, math.IsNaN(float64(xs[0])))
	assert.Equal(t, []OrdFloat{-1, 2, 3}, xs[1:])
}
