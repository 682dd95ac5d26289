// Package catoptric approximates the reflection of a parametric figure
// curve in a parametric mirror curve: given equations for the two curves, it
// computes the set of points that are images of the figure under reflection
// across the mirror's normal lines.
package catoptric

import (
	"github.com/pkg/errors"

	"github.com/mglyde/catoptric/geom"
	"github.com/mglyde/catoptric/parser"
	"github.com/mglyde/catoptric/reflector"
)

// Binding is a named slider value along with the range of values it may
// take. The bindings named "s" and "t" are special: their values act as
// offsets inside the sigma/tau transform, and the "t" range defines the
// sampling interval.
type Binding struct {
	Value float64
	Min   float64
	Max   float64
	Step  float64
}

// Request describes one reflection computation. Mirror and Figure hold the
// x(t) and y(t) equation strings; SigmaTau optionally holds x(s,t) and
// y(s,t) for the transform, with empty strings meaning pure reflection.
type Request struct {
	Mirror   [2]string
	Figure   [2]string
	SigmaTau [2]string
	Bindings map[string]Binding
	View     geom.View
	// Method selects the approximation strategy: "rasterisation",
	// "linear", or "quadratic".
	Method string
	// Threshold is the method-specific accuracy parameter: the cell size in
	// pixels for rasterisation, the match threshold for linear.
	Threshold float64
}

// Result carries the reflection along with the sampled source curves, which
// front ends display for reference.
type Result struct {
	Mirror     []geom.Vec2
	Figure     []geom.Vec2
	Reflection []geom.Vec2
}

// Render parses the request's equations and runs the selected approximator.
// Parse failures and unknown methods are reported as errors with no partial
// result, as is an equation referring to a variable with no binding.
func Render(req Request) (result *Result, err error) {
	// Evaluation aborts by panicking on unbound variables; this is the one
	// boundary where that is translated back into an error.
	defer func() {
		if e := parser.RecoverError(recover()); e != nil {
			result, err = nil, e
		}
	}()

	tb, ok := req.Bindings["t"]
	if !ok {
		return nil, errors.New(`missing required binding "t"`)
	}

	static := staticBindings(req.Bindings)

	mirror, err := compileCurve(req.Mirror, static)
	if err != nil {
		return nil, err
	}
	figure, err := compileCurve(req.Figure, static)
	if err != nil {
		return nil, err
	}
	var transform reflector.Surface
	if req.SigmaTau[0] != "" || req.SigmaTau[1] != "" {
		sOffset := req.Bindings["s"].Value
		transform, err = compileSurface(req.SigmaTau, static, sOffset, tb.Value)
		if err != nil {
			return nil, err
		}
	}

	interval := geom.Interval{Start: tb.Min, End: tb.Max, Step: tb.Step}
	return RenderCurves(mirror, figure, transform, interval, req.View, req.Method, req.Threshold)
}

// RenderCurves runs the selected approximator over already-constructed
// curves. It is the entry point for callers whose curves don't come from
// equation strings, such as piecewise-linear figures loaded from a file.
// Like Render, it converts evaluation panics from compiled equation curves
// back into errors.
func RenderCurves(mirror, figure reflector.Curve, transform reflector.Surface, interval geom.Interval, view geom.View, method string, threshold float64) (result *Result, err error) {
	defer func() {
		if e := parser.RecoverError(recover()); e != nil {
			result, err = nil, e
		}
	}()

	var ap reflector.Approximator
	switch method {
	case "rasterisation":
		cell := int(threshold)
		if cell < 1 {
			cell = 1
		}
		ap = reflector.RasterisationApproximator{CellSize: cell}
	case "linear":
		ap = reflector.LinearApproximator{Threshold: threshold}
	case "quadratic":
		ap = reflector.QuadraticApproximator{}
	default:
		return nil, errors.Errorf("unknown rendering method %q", method)
	}

	return &Result{
		Mirror:     mirror.Sample(interval),
		Figure:     figure.Sample(interval),
		Reflection: ap.ApproximateReflection(mirror, figure, transform, interval, view),
	}, nil
}

// CompileCurve builds a curve from x(t) and y(t) equation strings. The
// bindings provide values for any free variables other than t.
func CompileCurve(xy [2]string, bindings map[string]Binding) (reflector.Curve, error) {
	return compileCurve(xy, staticBindings(bindings))
}

// staticBindings extracts the single-letter bindings that stay fixed during
// sampling. "s" and "t" are the moving variables and are excluded here.
func staticBindings(bindings map[string]Binding) parser.Bindings {
	static := make(parser.Bindings)
	for name, b := range bindings {
		if name == "s" || name == "t" {
			continue
		}
		if rs := []rune(name); len(rs) == 1 {
			static[rs[0]] = b.Value
		}
	}
	return static
}

func compileCurve(xy [2]string, static parser.Bindings) (reflector.Curve, error) {
	x, err := parser.Parse(xy[0])
	if err != nil {
		return nil, err
	}
	y, err := parser.Parse(xy[1])
	if err != nil {
		return nil, err
	}
	return func(t float64) geom.Vec2 {
		local := parser.Bindings{'t': t}
		return geom.Vec(x.Eval(local, static), y.Eval(local, static))
	}, nil
}

func compileSurface(xy [2]string, static parser.Bindings, sOffset, tOffset float64) (reflector.Surface, error) {
	x, err := parser.Parse(xy[0])
	if err != nil {
		return nil, err
	}
	y, err := parser.Parse(xy[1])
	if err != nil {
		return nil, err
	}
	return func(s, t float64) geom.Vec2 {
		local := parser.Bindings{'s': s - sOffset, 't': t - tOffset}
		return geom.Vec(x.Eval(local, static), y.Eval(local, static))
	}, nil
}
