package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func unitSquare() Quad {
	return NewQuad([4]Vec2{Vec(0, 0), Vec(1, 0), Vec(1, 1), Vec(0, 1)})
}

func TestQuadEdges(t *testing.T) {
	q := unitSquare()
	assert.Equal(t, Edge{Vec(0, 0), Vec(1, 0)}, q.Edges[0])
	assert.Equal(t, Edge{Vec(3, 0), Vec(0, 0)}, NewQuad([4]Vec2{
		Vec(0, 0), Vec(1, 0), Vec(2, 0), Vec(3, 0),
	}).Edges[3])
}

func TestQuadDistance2Inside(t *testing.T) {
	q := unitSquare()
	// Negative inside; magnitude is the squared distance to the nearest edge.
	assert.Equal(t, -0.25, q.Distance2(Vec(0.5, 0.5)))
	assert.Equal(t, -0.0625, q.Distance2(Vec(0.5, 0.75)))
}

func TestQuadDistance2Outside(t *testing.T) {
	q := unitSquare()
	// Positive outside; (2,2) is nearest the corner (1,1).
	assert.Equal(t, float64(2), q.Distance2(Vec(2, 2)))
	assert.Equal(t, float64(1), q.Distance2(Vec(0.5, 2)))
}

func TestQuadDistance2Concave(t *testing.T) {
	// An hourglass winding; the winding test still classifies cleanly
	// wherever the winding number is nonzero.
	q := NewQuad([4]Vec2{Vec(0, 0), Vec(2, 2), Vec(2, 0), Vec(0, 2)})
	assert.Greater(t, q.Distance2(Vec(3, 1)), float64(0))
}

func TestQuadBounds(t *testing.T) {
	q := NewQuad([4]Vec2{Vec(1, 5), Vec(-2, 3), Vec(0, -4), Vec(7, 0)})
	min, max := q.Bounds()
	assert.Equal(t, Vec(-2, -4), min)
	assert.Equal(t, Vec(7, 5), max)
}
