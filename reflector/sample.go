package reflector

import (
	"container/heap"
	"math"

	"github.com/mglyde/catoptric/geom"
)

// AdaptiveSample samples f over [lo, hi] non-uniformly: it repeatedly
// bisects whichever segment currently has the greatest key distance under
// dist, spending evaluations where the sampled object changes fastest. Both
// endpoints are always included and n must be at least 2; exactly n values
// are returned, in insertion order (endpoints first, then midpoints from
// coarsest to finest). Ties between segments break toward the
// earliest-inserted one, so the result is deterministic.
//
// f maps a parameter to a distance key and the value to collect; dist
// measures the perceptual gap between two keys.
func AdaptiveSample[K, V any](f func(t float64) (K, V), lo, hi float64, n int, dist func(K, K) float64) []V {
	if n < 2 {
		panic("reflector: adaptive sampling needs at least two samples")
	}

	type endpoint struct {
		t   float64
		key K
	}

	eval := func(t float64) (endpoint, V) {
		key, value := f(t)
		return endpoint{t: t, key: key}, value
	}

	var pq segmentHeap[endpoint]
	inserted := 0
	push := func(a, b endpoint, d float64) {
		heap.Push(&pq, segment[endpoint]{
			dist: geom.OrdFloat(d),
			seq:  inserted,
			lo:   a,
			hi:   b,
		})
		inserted++
	}

	first, firstValue := eval(lo)
	last, lastValue := eval(hi)
	values := []V{firstValue, lastValue}
	push(first, last, dist(first.key, last.key))

	for len(values) < n {
		seg := heap.Pop(&pq).(segment[endpoint])
		mid, midValue := eval(seg.lo.t/2 + seg.hi.t/2)
		values = append(values, midValue)
		push(seg.lo, mid, dist(seg.lo.key, mid.key))
		push(mid, seg.hi, dist(mid.key, seg.hi.key))
	}

	return values
}

// SquaredDistance is a sampling metric: the squared euclidean distance
// between two curve points.
func SquaredDistance(a, b geom.Vec2) float64 {
	return a.Sub(b).Length2()
}

// AngularDistance is a sampling metric: the absolute difference between two
// angles in radians, reduced mod 2π into [0, π].
func AngularDistance(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return math.Abs(d - math.Pi)
}

// segment is a heap entry: a sampled sub-range keyed by its distance, with
// insertion order as tiebreak.
type segment[E any] struct {
	dist geom.OrdFloat
	seq  int
	lo   E
	hi   E
}

// segmentHeap is a max-heap over (dist, earliest insertion).
type segmentHeap[E any] []segment[E]

func (h segmentHeap[E]) Len() int { return len(h) }

func (h segmentHeap[E]) Less(i, j int) bool {
	if c := h[i].dist.Compare(h[j].dist); c != 0 {
		return c > 0
	}
	return h[i].seq < h[j].seq
}

func (h segmentHeap[E]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *segmentHeap[E]) Push(x any) {
	*h = append(*h, x.(segment[E]))
}

func (h *segmentHeap[E]) Pop() any {
	old := *h
	n := len(old)
	seg := old[n-1]
	*h = old[:n-1]
	return seg
}
