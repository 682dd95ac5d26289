package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeProject(t *testing.T) {
	e := Edge{From: Vec(0, 0), To: Vec(4, 0)}
	// Unnormalized: (p − From)·Dir.
	assert.Equal(t, float64(8), e.Project(Vec(2, 5)))
	assert.Equal(t, float64(0), e.Project(Vec(0, 3)))
	assert.Equal(t, float64(16), e.Project(Vec(4, -1)))
	assert.Equal(t, float64(16), e.Length2())
}

func TestEdgeDistance2(t *testing.T) {
	e := Edge{From: Vec(0, 0), To: Vec(4, 0)}
	assert.Equal(t, float64(9), e.Distance2(Vec(2, 3)))
	// Beyond the endpoints the nearest point is the endpoint itself.
	assert.Equal(t, float64(1), e.Distance2(Vec(-1, 0)))
	assert.Equal(t, float64(2), e.Distance2(Vec(5, 1)))
	assert.Equal(t, float64(0), e.Distance2(Vec(3, 0)))
}

func TestEdgeDistance2Degenerate(t *testing.T) {
	e := Edge{From: Vec(1, 1), To: Vec(1, 1)}
	assert.Equal(t, float64(8), e.Distance2(Vec(3, 3)))
}

func TestEdgeBounds(t *testing.T) {
	e := Edge{From: Vec(3, -1), To: Vec(-2, 4)}
	min, max := e.Bounds()
	assert.Equal(t, Vec(-2, -1), min)
	assert.Equal(t, Vec(3, 4), max)
}
