package main

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/mglyde/catoptric/geom"
	"github.com/mglyde/catoptric/reflector"
)

// loadSVGFigure reads the first <polygon> of an SVG file and turns its
// points into a closed piecewise-linear curve. The curve is parameterized
// by vertex index, clamped at the ends so over-wide sampling intervals stay
// on the outline.
func loadSVGFigure(path string) (reflector.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := svgparser.Parse(f, true)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", path)
	}
	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.Errorf("no <polygon> in %q", path)
	}

	points, err := parsePolygonPoints(polygons[0].Attributes["points"])
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", path)
	}
	if len(points) < 2 {
		return nil, errors.Errorf("polygon in %q has fewer than two points", path)
	}

	// Close the outline.
	points = append(points, points[0])

	return func(t float64) geom.Vec2 {
		if math.IsNaN(t) {
			return geom.Vec(t, t)
		}
		t = math.Max(0, math.Min(t, float64(len(points)-1)))
		i := int(t)
		if i == len(points)-1 {
			return points[i]
		}
		return points[i].Lerp(points[i+1], t-float64(i))
	}, nil
}

func parsePolygonPoints(attr string) ([]geom.Vec2, error) {
	var points []geom.Vec2
	for _, pair := range strings.Fields(attr) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x in %q", pair)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y in %q", pair)
		}
		points = append(points, geom.Vec(x, y))
	}
	return points, nil
}
