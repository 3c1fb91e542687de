// This file is part of mpltweaker.
//
// mpltweaker is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mpltweaker is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mpltweaker.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// set colour of the context. the alpha of the colour is multiplied by alpha
func setColor(dc *gg.Context, c rcparams.RGBA, alpha float64) {
	dc.SetRGBA(c[0], c[1], c[2], c[3]*alpha)
}

// dash patterns in multiples of the line width
var dashPatterns = map[string][]float64{
	"--":      {3.7, 1.6},
	"dashed":  {3.7, 1.6},
	"-.":      {6.4, 1.6, 1.0, 1.6},
	"dashdot": {6.4, 1.6, 1.0, 1.6},
	":":       {1.0, 1.65},
	"dotted":  {1.0, 1.65},
}

// returns false if the line style means that no line should be drawn
func setLineStyle(dc *gg.Context, style string, width float64) bool {
	switch style {
	case "None", "none", " ", "":
		return false
	}

	dc.SetLineWidth(width)
	if d, ok := dashPatterns[style]; ok {
		dashes := make([]float64, len(d))
		for i := range d {
			dashes[i] = d[i] * width
		}
		dc.SetDash(dashes...)
		dc.SetLineCapButt()
	} else {
		dc.SetDash()
		dc.SetLineCapSquare()
	}

	return true
}

// stroke a line through the points
func polyline(dc *gg.Context, xs []float64, ys []float64) {
	dc.NewSubPath()
	for i := range xs {
		dc.LineTo(xs[i], ys[i])
	}
	dc.Stroke()
}

// polygon markers. the radius is relative to half the marker size
var polygonMarkers = map[string]struct {
	n        int
	rotation float64
	radius   float64
	squash   float64
}{
	"^": {3, 0, 1, 1},
	"v": {3, math.Pi, 1, 1},
	"<": {3, -math.Pi / 2, 1, 1},
	">": {3, math.Pi / 2, 1, 1},
	"s": {4, 0, math.Sqrt2 * 0.85, 1},
	"D": {4, math.Pi / 4, 1, 1},
	"d": {4, math.Pi / 4, 1, 0.6},
	"p": {5, 0, 1, 1},
	"h": {6, -math.Pi / 6, 1, 1},
	"H": {6, 0, 1, 1},
	"8": {8, 0, 1, 1},
}

// marker describes how a marker should be drawn. size is the diameter in
// pixels and width is the width of the edge in pixels
type marker struct {
	shape string
	size  float64
	width float64
	face  rcparams.RGBA
	edge  rcparams.RGBA
	fill  bool
}

// visible returns false if the marker shape draws nothing
func (m marker) visible() bool {
	switch m.shape {
	case "None", "none", " ", "":
		return false
	}
	return m.size > 0
}

func (m marker) draw(dc *gg.Context, x float64, y float64) {
	if !m.visible() {
		return
	}

	r := m.size / 2

	// line markers have no face
	switch m.shape {
	case "+", "x", "|", "_":
		dc.SetDash()
		dc.SetLineCapButt()
		dc.SetLineWidth(m.width)
		setColor(dc, m.edge, 1)
		switch m.shape {
		case "+":
			dc.DrawLine(x-r, y, x+r, y)
			dc.DrawLine(x, y-r, x, y+r)
		case "x":
			d := r * math.Sqrt2 / 2
			dc.DrawLine(x-d, y-d, x+d, y+d)
			dc.DrawLine(x-d, y+d, x+d, y-d)
		case "|":
			dc.DrawLine(x, y-r, x, y+r)
		case "_":
			dc.DrawLine(x-r, y, x+r, y)
		}
		dc.Stroke()
		return
	}

	switch m.shape {
	case ".":
		dc.DrawCircle(x, y, r/2)
	case ",":
		dc.DrawRectangle(x-0.5, y-0.5, 1, 1)
	case "*":
		star(dc, x, y, r)
	default:
		p, ok := polygonMarkers[m.shape]
		if !ok {
			dc.DrawCircle(x, y, r)
			break
		}
		dc.Push()
		dc.ScaleAbout(p.squash, 1, x, y)
		dc.DrawRegularPolygon(p.n, x, y, r*p.radius, p.rotation)
		dc.Pop()
	}

	if m.fill {
		setColor(dc, m.face, 1)
		dc.FillPreserve()
	}
	if m.width > 0 {
		dc.SetDash()
		dc.SetLineWidth(m.width)
		setColor(dc, m.edge, 1)
		dc.Stroke()
	}
	dc.ClearPath()
}

// five pointed star
func star(dc *gg.Context, x float64, y float64, r float64) {
	dc.NewSubPath()
	for i := range 10 {
		a := -math.Pi/2 + float64(i)*math.Pi/5
		d := r
		if i%2 == 1 {
			d = r * 0.38
		}
		dc.LineTo(x+d*math.Cos(a), y+d*math.Sin(a))
	}
	dc.ClosePath()
}

// clipLine clips the line to the rectangle. returns false if no part of the
// line is inside the rectangle
func clipLine(x0, y0, x1, y1 float64, r rect) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx := x1 - x0
	dy := y1 - y0

	for _, e := range [4][2]float64{
		{-dx, x0 - r.x0},
		{dx, r.x1 - x0},
		{-dy, y0 - r.y0},
		{dy, r.y1 - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}

	if t0 > t1 {
		return 0, 0, 0, 0, false
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// hatch fills the rectangle with a pattern. repeating a character in the
// pattern increases the density of that part of the pattern
func hatch(dc *gg.Context, pattern string, r rect, spacing float64, width float64, c rcparams.RGBA) {
	var forward, backward, horizontal, vertical int
	for _, p := range pattern {
		switch p {
		case '/':
			forward++
		case '\\':
			backward++
		case '-':
			horizontal++
		case '|':
			vertical++
		case '+':
			horizontal++
			vertical++
		case 'x', 'X':
			forward++
			backward++
		}
	}

	line := func(x0, y0, x1, y1 float64) {
		if x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, r); ok {
			dc.DrawLine(x0, y0, x1, y1)
		}
	}

	w := r.w()
	h := r.h()

	if forward > 0 {
		step := spacing / float64(forward)
		for o := -h; o < w; o += step {
			line(r.x0+o, r.y1, r.x0+o+h, r.y0)
		}
	}
	if backward > 0 {
		step := spacing / float64(backward)
		for o := -h; o < w; o += step {
			line(r.x0+o, r.y0, r.x0+o+h, r.y1)
		}
	}
	if horizontal > 0 {
		step := spacing / float64(horizontal)
		for o := step / 2; o < h; o += step {
			line(r.x0, r.y0+o, r.x1, r.y0+o)
		}
	}
	if vertical > 0 {
		step := spacing / float64(vertical)
		for o := step / 2; o < w; o += step {
			line(r.x0+o, r.y0, r.x0+o, r.y1)
		}
	}

	dc.SetDash()
	dc.SetLineWidth(width)
	dc.SetLineCapButt()
	setColor(dc, c, 1)
	dc.Stroke()
}
