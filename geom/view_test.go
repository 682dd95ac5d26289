package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testView() View {
	// Extent [-128, 128) × [-128, 128).
	return View{Width: 256, Height: 256, Origin: Vec(0, 0), Scale: 0}
}

func TestViewSize(t *testing.T) {
	assert.Equal(t, Vec(256, 256), testView().Size())

	zoomed := View{Width: 100, Height: 50, Origin: Vec(0, 0), Scale: 1}
	assert.Equal(t, Vec(200, 100), zoomed.Size())
}

func TestViewProject(t *testing.T) {
	v := testView()

	col, row, ok := v.Project(Vec(0, 0), 256, 256)
	assert.True(t, ok)
	assert.Equal(t, 128, col)
	assert.Equal(t, 128, row)

	col, row, ok = v.Project(Vec(-128, -128), 256, 256)
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestViewProjectCoarseGrid(t *testing.T) {
	v := testView()
	// A 2×2 grid splits the extent at the origin.
	col, row, ok := v.Project(Vec(-1, 1), 2, 2)
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, row)
}

func TestViewProjectRejects(t *testing.T) {
	v := testView()

	_, _, ok := v.Project(Vec(math.NaN(), 0), 256, 256)
	assert.False(t, ok)

	_, _, ok = v.Project(Vec(128, 0), 256, 256) // extent is half-open
	assert.False(t, ok)

	_, _, ok = v.Project(Vec(0, -129), 256, 256)
	assert.False(t, ok)
}
