package catoptric

import (
	"github.com/fogleman/gg"

	"github.com/mglyde/catoptric/geom"
)

// Draw renders the result to a PNG file: the mirror and figure curves as
// paths, the reflection as dots, all projected through the view.
func (r *Result) Draw(view geom.View, path string) error {
	c := gg.NewContext(view.Width, view.Height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(view.Width), float64(view.Height))
	c.Fill()

	// Flip the context so cartesian up is screen up.
	c.Translate(0, float64(view.Height))
	c.Scale(1, -1)

	c.SetLineWidth(2)
	c.SetRGB(0.3, 0.6, 1)
	strokeCurve(c, view, r.Mirror)
	c.SetRGB(0.3, 1, 0.5)
	strokeCurve(c, view, r.Figure)

	c.SetRGB(1, 0.4, 0.3)
	for _, p := range r.Reflection {
		if col, row, ok := view.Project(p, view.Width, view.Height); ok {
			c.DrawCircle(float64(col), float64(row), 1.5)
			c.Fill()
		}
	}

	return c.SavePNG(path)
}

// strokeCurve draws the projectable stretches of a sampled curve, breaking
// the path wherever samples leave the view or go NaN.
func strokeCurve(c *gg.Context, view geom.View, points []geom.Vec2) {
	pen := false
	for _, p := range points {
		col, row, ok := view.Project(p, view.Width, view.Height)
		if !ok {
			if pen {
				c.Stroke()
			}
			pen = false
			continue
		}
		if pen {
			c.LineTo(float64(col), float64(row))
		} else {
			c.MoveTo(float64(col), float64(row))
			pen = true
		}
	}
	if pen {
		c.Stroke()
	}
}
