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
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// legendEntry is a single line in the legend. the data is used to choose the
// location of the legend when the location is "best"
type legendEntry struct {
	label string
	color rcparams.RGBA
	style string
	width float64
	mk    marker
	xs    []float64
	ys    []float64
}

type legend struct {
	title   string
	entries []legendEntry
}

// legend locations as fractions of the axes. the order is the order in which
// locations are tried when the location is "best"
var legendLocations = []struct {
	name string
	x, y float64
}{
	{"upper right", 1, 0},
	{"upper left", 0, 0},
	{"lower left", 0, 1},
	{"lower right", 1, 1},
	{"right", 1, 0.5},
	{"center left", 0, 0.5},
	{"center right", 1, 0.5},
	{"lower center", 0.5, 1},
	{"upper center", 0.5, 0},
	{"center", 0.5, 0.5},
}

// position the legend box within the axes
func (a *axes) legendBox(loc string, w float64, h float64, pad float64) rect {
	place := func(fx, fy float64) rect {
		x := a.box.x0 + pad + fx*(a.box.w()-w-2*pad)
		y := a.box.y0 + pad + fy*(a.box.h()-h-2*pad)
		return rect{x0: x, y0: y, x1: x + w, y1: y + h}
	}

	for _, l := range legendLocations {
		if l.name == loc {
			return place(l.x, l.y)
		}
	}

	// best location has the fewest data points underneath it
	var best rect
	bestCount := -1
	for _, l := range legendLocations {
		r := place(l.x, l.y)
		var count int
		for _, e := range a.sp.legend.entries {
			for i := range e.xs {
				if r.contains(a.px(e.xs[i]), a.py(e.ys[i])) {
					count++
				}
			}
		}
		if bestCount == -1 || count < bestCount {
			best = r
			bestCount = count
		}
	}
	return best
}

func (a *axes) drawLegend(lg *legend) {
	ls := a.st.legend
	face := a.ts.face(ls.fontSize, false, false)
	_, fontH := textExtent(face, "0")
	fs := a.pts(ls.fontSize)

	pad := ls.borderPad * fs
	handleLen := ls.handleLength * fs
	textPad := ls.handleTextPad * fs
	spacing := ls.labelSpacing * fs

	var labelW float64
	for _, e := range lg.entries {
		w, _ := textExtent(face, e.label)
		labelW = max(labelW, w)
	}
	w := handleLen + textPad + labelW

	var titleH float64
	if lg.title != "" {
		tw, th := textExtent(face, lg.title)
		w = max(w, tw)
		titleH = th + spacing
	}

	n := float64(len(lg.entries))
	h := titleH + n*fontH + max(0, n-1)*spacing

	box := a.legendBox(ls.loc, w+2*pad, h+2*pad, ls.borderAxesPad*fs)

	if ls.frameOn {
		radius := 0.0
		if ls.fancyBox {
			radius = 0.2 * fs
		}
		frame := func(r rect) {
			if radius > 0 {
				a.dc.DrawRoundedRectangle(r.x0, r.y0, r.w(), r.h(), radius)
			} else {
				a.dc.DrawRectangle(r.x0, r.y0, r.w(), r.h())
			}
		}

		if ls.shadow {
			d := a.pts(2)
			frame(rect{x0: box.x0 + d, y0: box.y0 + d, x1: box.x1 + d, y1: box.y1 + d})
			a.dc.SetRGBA(0, 0, 0, 0.5)
			a.dc.Fill()
		}

		frame(box)
		setColor(a.dc, ls.face, ls.frameAlpha)
		a.dc.FillPreserve()
		a.dc.SetDash()
		a.dc.SetLineWidth(a.pts(a.st.patchLineWidth))
		setColor(a.dc, ls.edge, ls.frameAlpha)
		a.dc.Stroke()
	}

	a.dc.SetFontFace(face)
	x := box.x0 + pad
	y := box.y0 + pad

	if lg.title != "" {
		setColor(a.dc, ls.labelColor, 1)
		a.dc.DrawStringAnchored(lg.title, box.x0+box.w()/2, y, 0.5, 0.8)
		y += titleH
	}

	for _, e := range lg.entries {
		cy := y + fontH/2

		if setLineStyle(a.dc, e.style, e.width) {
			setColor(a.dc, e.color, 1)
			a.dc.DrawLine(x, cy, x+handleLen, cy)
			a.dc.Stroke()
		}

		mk := e.mk
		mk.size *= ls.markerScale
		if ls.numPoints == 1 {
			mk.draw(a.dc, x+handleLen/2, cy)
		} else {
			for i := range ls.numPoints {
				mk.draw(a.dc, x+handleLen*float64(i)/float64(ls.numPoints-1), cy)
			}
		}

		setColor(a.dc, ls.labelColor, 1)
		a.dc.DrawStringAnchored(e.label, x+handleLen+textPad, cy, 0, 0.35)

		y += fontH + spacing
	}

	a.dc.SetDash()
}
