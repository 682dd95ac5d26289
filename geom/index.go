package geom

import (
	"math"

	"github.com/tidwall/rtree"
)

// Object is a spatial object the index can hold: it reports its bounding box
// and its squared distance to a query point. Distance2 may be signed (see
// Quad); a negative result always satisfies any radius.
type Object interface {
	Bounds() (min, max Vec2)
	Distance2(p Vec2) float64
}

// Item pairs a spatial object with an opaque payload, so a single index
// lookup returns both the matched geometry and its associated data.
type Item[S Object, T any] struct {
	Object S
	Data   T
}

// Index is an R-tree of payload-carrying spatial objects. The tree prunes by
// bounding box; exact distances are the objects' own business.
type Index[S Object, T any] struct {
	tree rtree.RTreeG[Item[S, T]]
}

// BulkLoad builds an index over the given items.
func BulkLoad[S Object, T any](items []Item[S, T]) *Index[S, T] {
	ix := &Index[S, T]{}
	for _, it := range items {
		min, max := it.Object.Bounds()
		ix.tree.Insert([2]float64{min.X, min.Y}, [2]float64{max.X, max.Y}, it)
	}
	return ix
}

// Len returns the number of indexed items.
func (ix *Index[S, T]) Len() int {
	return ix.tree.Len()
}

// LookupInCircle visits every item whose object lies within squared distance
// radius2 of p. With radius2 = 0 and objects whose distance is negative
// inside (Quad), this is an exact containment query.
func (ix *Index[S, T]) LookupInCircle(p Vec2, radius2 float64, visit func(object S, data T)) {
	r := 0.0
	if radius2 > 0 {
		r = math.Sqrt(radius2)
	}
	lo := p.Sub(Diag(r))
	hi := p.Add(Diag(r))
	ix.tree.Search([2]float64{lo.X, lo.Y}, [2]float64{hi.X, hi.Y}, func(_, _ [2]float64, it Item[S, T]) bool {
		if it.Object.Distance2(p) <= radius2 {
			visit(it.Object, it.Data)
		}
		return true
	})
}
