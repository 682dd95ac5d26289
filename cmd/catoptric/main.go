// Command catoptric renders the approximate reflection of a figure curve in
// a mirror curve to a PNG.
package main

import (
	"fmt"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mglyde/catoptric"
	"github.com/mglyde/catoptric/geom"
)

var (
	app = kingpin.New("catoptric", "Approximate the reflection of a figure curve in a mirror curve.")

	mirrorX = app.Flag("mirror-x", "Mirror equation x(t).").Default("t").String()
	mirrorY = app.Flag("mirror-y", "Mirror equation y(t).").Default("(t/10)^2").String()
	figureX = app.Flag("figure-x", "Figure equation x(t).").Default("t").String()
	figureY = app.Flag("figure-y", "Figure equation y(t).").Default("60").String()
	sigma   = app.Flag("sigma", "Transform equation sigma(s,t); empty for pure reflection.").String()
	tau     = app.Flag("tau", "Transform equation tau(s,t); empty for pure reflection.").String()

	figureSVG = app.Flag("figure-svg", "Load the figure curve from the first <polygon> of an SVG file instead of equations.").String()

	method    = app.Flag("method", "Approximation method.").Default("quadratic").Enum("rasterisation", "linear", "quadratic")
	threshold = app.Flag("threshold", "Cell size (rasterisation) or match threshold (linear).").Default("2").Float64()

	tMin  = app.Flag("t-min", "Start of the sampling interval.").Default("-128").Float64()
	tMax  = app.Flag("t-max", "End of the sampling interval.").Default("128").Float64()
	tStep = app.Flag("t-step", "Step of the sampling interval.").Default("0.5").Float64()

	width     = app.Flag("width", "Canvas width in pixels.").Default("640").Int()
	height    = app.Flag("height", "Canvas height in pixels.").Default("480").Int()
	originX   = app.Flag("origin-x", "Cartesian x of the view center.").Default("0").Float64()
	originY   = app.Flag("origin-y", "Cartesian y of the view center.").Default("0").Float64()
	viewScale = app.Flag("view-scale", "Zoom factor in powers of two.").Default("0").Float64()

	out  = app.Flag("out", "Output PNG path; a readable random name is generated if omitted.").String()
	show = app.Flag("show", "Preview the PNG in the terminal with imgcat.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	view := geom.View{
		Width:  *width,
		Height: *height,
		Origin: geom.Vec(*originX, *originY),
		Scale:  *viewScale,
	}
	bindings := map[string]catoptric.Binding{
		"s": {},
		"t": {Min: *tMin, Max: *tMax, Step: *tStep},
	}

	var result *catoptric.Result
	var err error
	if *figureSVG != "" {
		result, err = renderWithSVGFigure(view, bindings)
	} else {
		result, err = catoptric.Render(catoptric.Request{
			Mirror:    [2]string{*mirrorX, *mirrorY},
			Figure:    [2]string{*figureX, *figureY},
			SigmaTau:  [2]string{*sigma, *tau},
			Bindings:  bindings,
			View:      view,
			Method:    *method,
			Threshold: *threshold,
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	fmt.Printf("%s %d reflection points (%s)\n",
		aurora.Bold("computed"), len(result.Reflection), *method)

	path := *out
	if path == "" {
		path = fmt.Sprintf("reflection-%s-%s.png", petname.Adjective(), petname.Name())
	}
	if err := result.Draw(view, path); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	fmt.Printf("%s %s\n", aurora.Green("wrote"), path)

	if *show {
		imgcat.CatFile(path, os.Stdout)
	}
}

// renderWithSVGFigure compiles the mirror and transform equations as usual
// but takes the figure from an SVG polygon.
func renderWithSVGFigure(view geom.View, bindings map[string]catoptric.Binding) (*catoptric.Result, error) {
	mirror, err := catoptric.CompileCurve([2]string{*mirrorX, *mirrorY}, bindings)
	if err != nil {
		return nil, err
	}
	figure, err := loadSVGFigure(*figureSVG)
	if err != nil {
		return nil, err
	}
	tb := bindings["t"]
	interval := geom.Interval{Start: tb.Min, End: tb.Max, Step: tb.Step}
	return catoptric.RenderCurves(mirror, figure, nil, interval, view, *method, *threshold)
}
