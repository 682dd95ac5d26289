package catoptric

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mglyde/catoptric/geom"
)

func exampleRequest(method string) Request {
	return Request{
		Mirror: [2]string{"t", "(t/10)^2"},
		Figure: [2]string{"t", "60"},
		Bindings: map[string]Binding{
			"t": {Min: -100, Max: 100, Step: 1},
		},
		View:      geom.View{Width: 256, Height: 256, Origin: geom.Vec(0, 0), Scale: 0},
		Method:    method,
		Threshold: 2,
	}
}

func TestRenderQuadratic(t *testing.T) {
	result, err := Render(exampleRequest("quadratic"))
	require.NoError(t, err)

	assert.Len(t, result.Mirror, 201)
	assert.Len(t, result.Figure, 201)
	require.NotEmpty(t, result.Reflection)
	for _, p := range result.Reflection {
		assert.False(t, p.IsNaN())
	}
}

func TestRenderRasterisation(t *testing.T) {
	result, err := Render(exampleRequest("rasterisation"))
	require.NoError(t, err)
	require.NotEmpty(t, result.Reflection)
	for _, p := range result.Reflection {
		assert.False(t, p.IsNaN())
	}
}

func TestRenderLinear(t *testing.T) {
	result, err := Render(exampleRequest("linear"))
	require.NoError(t, err)
	for _, p := range result.Reflection {
		assert.False(t, p.IsNaN())
	}
}

func TestRenderWithSigmaTau(t *testing.T) {
	req := exampleRequest("rasterisation")
	// The identity glide: plain reflection expressed as a transform.
	req.SigmaTau = [2]string{"-s", "t"}
	req.Bindings["s"] = Binding{}

	result, err := Render(req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Reflection)
}

func TestRenderStaticBindings(t *testing.T) {
	req := exampleRequest("quadratic")
	req.Mirror = [2]string{"t", "a*(t/10)^2"}
	req.Bindings["a"] = Binding{Value: 1}

	result, err := Render(req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Reflection)
}

func TestRenderParseFailure(t *testing.T) {
	req := exampleRequest("quadratic")
	req.Mirror[1] = "(t"

	result, err := Render(req)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRenderUnknownMethod(t *testing.T) {
	result, err := Render(exampleRequest("cubist"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "cubist")
}

func TestRenderUnboundVariable(t *testing.T) {
	req := exampleRequest("quadratic")
	req.Figure = [2]string{"q", "60"}

	result, err := Render(req)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "q")
}

func TestRenderCurvesUnboundVariable(t *testing.T) {
	// An unbound variable surfaces only when a compiled curve is evaluated,
	// which happens inside RenderCurves; the panic must not escape it.
	mirror, err := CompileCurve([2]string{"q", "0"}, nil)
	require.NoError(t, err)
	figure, err := CompileCurve([2]string{"t", "60"}, nil)
	require.NoError(t, err)

	interval := geom.Interval{Start: -10, End: 10, Step: 1}
	view := geom.View{Width: 64, Height: 64, Origin: geom.Vec(0, 0), Scale: 0}
	result, err := RenderCurves(mirror, figure, nil, interval, view, "quadratic", 0)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "q")
}

func TestRasterisationApproximatesQuadratic(t *testing.T) {
	quadratic, err := Render(exampleRequest("quadratic"))
	require.NoError(t, err)
	require.NotEmpty(t, quadratic.Reflection)

	req := exampleRequest("rasterisation")
	req.Threshold = 8 // coarse cells
	raster, err := Render(req)
	require.NoError(t, err)
	require.NotEmpty(t, raster.Reflection)

	// Coarse rasterisation stays a bounded-distance approximation of the
	// quadratic result: every bucketed image lies within a handful of cell
	// widths of some interpolated image.
	const bound = 64.0
	for _, p := range raster.Reflection {
		nearest := math.Inf(1)
		for _, q := range quadratic.Reflection {
			if d := p.Sub(q).Length2(); d < nearest {
				nearest = d
			}
		}
		assert.LessOrEqual(t, nearest, bound*bound,
			"rasterised point %v is %g away from the quadratic set", p, math.Sqrt(nearest))
	}
}

func TestRenderMissingT(t *testing.T) {
	req := exampleRequest("quadratic")
	delete(req.Bindings, "t")

	_, err := Render(req)
	assert.Error(t, err)
}

func TestResultDraw(t *testing.T) {
	result, err := Render(exampleRequest("quadratic"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reflection.png")
	require.NoError(t, result.Draw(exampleRequest("quadratic").View, path))
	assert.FileExists(t, path)
}

func TestCompileCurve(t *testing.T) {
	curve, err := CompileCurve([2]string{"t*2", "a"}, map[string]Binding{
		"a": {Value: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, geom.Vec(6, 7), curve(3))

	_, err = CompileCurve([2]string{"t*", "0"}, nil)
	assert.Error(t, err)
}
