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
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/jetsetilly/mpltweaker/random"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// seed for the sample data of the demo figure. each subplot uses its own
// generator seeded from this value
const seed = 96917002

// the builders of the demo figure in the order they appear in the figure
var builders = []func(*style, *random.Random) *subplot{
	scatter,
	imageAndPatch,
	barGraphs,
	coloredLines,
	histograms,
	coloredCircles,
}

func linspace(lo float64, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return vs
}

// marker for a line of the given colour
func (st *style) lineMarker(shape string, c rcparams.RGBA) marker {
	mk := marker{
		shape: shape,
		size:  st.markerSize * st.dpi / 72,
		width: st.markerEdgeWidth * st.dpi / 72,
		face:  c,
		edge:  c,
		fill:  st.markerFill != "none",
	}
	if st.markerFace != nil {
		mk.face = *st.markerFace
	}
	if st.markerEdge != nil {
		mk.edge = *st.markerEdge
	}
	return mk
}

func scatter(st *style, rnd *random.Random) *subplot {
	type set struct {
		xs, ys []float64
		mk     marker
	}

	var sets []set
	for i, p := range []struct {
		mu, sigma float64
		shape     string
	}{
		{-0.5, 0.75, "o"},
		{0.75, 1.0, "s"},
	} {
		s := set{
			xs: make([]float64, 100),
			ys: make([]float64, 100),
			mk: st.lineMarker(p.shape, st.cycleColor(i)),
		}
		for j := range s.xs {
			s.xs[j] = rnd.Normal(p.mu, p.sigma)
		}
		for j := range s.ys {
			s.ys[j] = rnd.Normal(p.mu, p.sigma)
		}
		sets = append(sets, s)
	}

	sp := &subplot{
		title:  "Axes title",
		xlabel: "X-label",
		ylabel: "Y-label",
		xlim:   limits(st, st.xmargin, false, sets[0].xs, sets[1].xs),
		ylim:   limits(st, st.ymargin, false, sets[0].ys, sets[1].ys),
	}

	sp.data = func(a *axes) {
		for _, s := range sets {
			for i := range s.xs {
				s.mk.draw(a.dc, a.px(s.xs[i]), a.py(s.ys[i]))
			}
		}
	}

	return sp
}

// resampling filters for the image interpolation styles
var interpolation = map[string]imaging.ResampleFilter{
	"none":        imaging.NearestNeighbor,
	"nearest":     imaging.NearestNeighbor,
	"antialiased": imaging.NearestNeighbor,
	"auto":        imaging.NearestNeighbor,
	"bilinear":    imaging.Linear,
	"bicubic":     imaging.CatmullRom,
	"catrom":      imaging.CatmullRom,
	"spline16":    imaging.BSpline,
	"spline36":    imaging.BSpline,
	"hanning":     imaging.Hann,
	"hamming":     imaging.Hamming,
	"hermite":     imaging.Hermite,
	"kaiser":      imaging.Welch,
	"quadric":     imaging.Bartlett,
	"gaussian":    imaging.Gaussian,
	"bessel":      imaging.Cosine,
	"mitchell":    imaging.MitchellNetravali,
	"sinc":        imaging.Lanczos,
	"lanczos":     imaging.Lanczos,
	"blackman":    imaging.Blackman,
}

func imageAndPatch(st *style, rnd *random.Random) *subplot {
	const size = 20

	values := make([]float64, size*size)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range values {
		values[i] = rnd.Float64()
		lo = min(lo, values[i])
		hi = max(hi, values[i])
	}

	cm := newColormap(st.cmap, st.lut)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i, v := range values {
		r, g, b, a := cm.at((v - lo) / (hi - lo)).RGBA8()
		img.SetNRGBA(i%size, i/size, color.NRGBA{R: r, G: g, B: b, A: a})
	}

	sp := &subplot{
		xlim:        [2]float64{-0.5, size - 0.5},
		ylim:        [2]float64{size - 0.5, -0.5},
		xticks:      []tick{},
		yticks:      []tick{},
		equalAspect: st.imageAspect != "auto",
	}

	var src image.Image = img
	if st.origin == "lower" {
		src = imaging.FlipV(img)
		sp.ylim = [2]float64{-0.5, size - 0.5}
	}

	filter, ok := interpolation[st.interp]
	if !ok {
		filter = imaging.NearestNeighbor
	}

	sp.data = func(a *axes) {
		w := int(math.Round(a.box.w()))
		h := int(math.Round(a.box.h()))
		if w > 0 && h > 0 {
			a.dc.DrawImage(imaging.Resize(src, w, h, filter), int(math.Round(a.box.x0)), int(math.Round(a.box.y0)))
		}

		cx, cy := a.px(5), a.py(5)
		r := 5 * a.box.w() / size
		a.dc.DrawCircle(cx, cy, r)
		setColor(a.dc, st.patchFace, 1)
		a.dc.Fill()
		a.patchEdge(func() {
			a.dc.DrawCircle(cx, cy, r)
		}, 2)
	}

	return sp
}

func barGraphs(st *style, rnd *random.Random) *subplot {
	const n = 4
	const width = 0.35

	var ya, yb [n]float64
	for i := range ya {
		ya[i] = float64(rnd.Intn(20) + 5)
	}
	for i := range yb {
		yb[i] = float64(rnd.Intn(20) + 5)
	}

	sp := &subplot{
		xlim: limits(st, st.xmargin, false, []float64{0, n - 1 + 2*width}),
		ylim: limits(st, st.ymargin, true, []float64{0}, ya[:], yb[:]),
	}
	for i, l := range []string{"a", "b", "c", "d"} {
		sp.xticks = append(sp.xticks, tick{v: float64(i) + width, label: l})
	}

	bars := []struct {
		ys     []float64
		offset float64
		color  rcparams.RGBA
		hatch  string
	}{
		{ya[:], 0, st.cycleColor(0), "//"},
		{yb[:], width, st.cycleColor(2), `\\`},
	}

	sp.data = func(a *axes) {
		for _, b := range bars {
			for i, y := range b.ys {
				r := a.patchRect(float64(i)+b.offset, 0, width, y, b.color, 1)
				hatch(a.dc, b.hatch, r, st.dpi/6, a.pts(st.hatchWidth), st.hatchColor)
			}
		}
	}

	return sp
}

func sigmoid(t float64, t0 float64) float64 {
	return 1 / (1 + math.Exp(-(t - t0)))
}

func coloredLines(st *style, _ *random.Random) *subplot {
	n := min(len(st.cycle), 4)
	t := linspace(-10, 10, 100)
	shifts := linspace(-5, 5, n)
	amplitudes := linspace(1, 1.5, n)

	lg := &legend{title: "Legend title"}
	var all [][]float64

	for i := range n {
		ys := make([]float64, len(t))
		for j := range t {
			ys[j] = amplitudes[i] * sigmoid(t[j], shifts[i])
		}
		all = append(all, ys)

		c := st.cycleColor(i)
		lg.entries = append(lg.entries, legendEntry{
			label: fmt.Sprintf("t0 = %.1f", shifts[i]),
			color: c,
			style: st.lineStyle,
			width: st.lineWidth * st.dpi / 72,
			mk:    st.lineMarker(st.marker, c),
			xs:    t,
			ys:    ys,
		})
	}

	sp := &subplot{
		xlim:   [2]float64{-10, 10},
		ylim:   limits(st, st.ymargin, false, all...),
		legend: lg,
	}

	sp.data = func(a *axes) {
		for _, e := range lg.entries {
			px := make([]float64, len(e.xs))
			py := make([]float64, len(e.ys))
			for i := range e.xs {
				px[i] = a.px(e.xs[i])
				py[i] = a.py(e.ys[i])
			}

			if setLineStyle(a.dc, e.style, e.width) {
				a.dc.SetLineJoinRound()
				setColor(a.dc, e.color, 1)
				polyline(a.dc, px, py)
			}

			// a marker every ten points
			for i := 0; i < len(px); i += 10 {
				e.mk.draw(a.dc, px[i], py[i])
			}
		}
		a.dc.SetDash()
	}

	return sp
}

func histograms(st *style, rnd *random.Random) *subplot {
	const samples = 10000
	const bins = 30

	type hist struct {
		edges   []float64
		density []float64
	}

	var hists []hist
	var xs, ys [][]float64

	for _, p := range [][2]float64{{10, 10}, {4, 12}, {50, 12}, {6, 55}} {
		values := make([]float64, samples)
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range values {
			values[i] = rnd.Beta(p[0], p[1])
			lo = min(lo, values[i])
			hi = max(hi, values[i])
		}

		h := hist{
			edges:   linspace(lo, hi, bins+1),
			density: make([]float64, bins),
		}
		binWidth := (hi - lo) / bins
		for _, v := range values {
			b := min(bins-1, int((v-lo)/binWidth))
			h.density[b]++
		}
		for i := range h.density {
			h.density[i] /= samples * binWidth
		}

		hists = append(hists, h)
		xs = append(xs, h.edges)
		ys = append(ys, h.density)
	}

	sp := &subplot{
		xlim: limits(st, st.xmargin, false, xs...),
		ylim: limits(st, st.ymargin, true, append(ys, []float64{0})...),
	}

	sp.data = func(a *axes) {
		for i, h := range hists {
			base := a.py(0)
			a.dc.NewSubPath()
			a.dc.MoveTo(a.px(h.edges[0]), base)
			for j, d := range h.density {
				a.dc.LineTo(a.px(h.edges[j]), a.py(d))
				a.dc.LineTo(a.px(h.edges[j+1]), a.py(d))
			}
			a.dc.LineTo(a.px(h.edges[len(h.edges)-1]), base)
			a.dc.ClosePath()

			setColor(a.dc, st.cycleColor(i), 0.8)
			a.dc.Fill()
		}
	}

	sp.extra = func(a *axes) {
		annotation(a, st)

		// divider above the axes
		a.dc.DrawRectangle(a.px(0.025), a.py(13.5), a.px(0.925)-a.px(0.025), a.py(12.5)-a.py(13.5))
		setColor(a.dc, st.patchFace, 1)
		a.dc.Fill()
		a.patchEdge(func() {
			a.dc.DrawRectangle(a.px(0.025), a.py(13.5), a.px(0.925)-a.px(0.025), a.py(12.5)-a.py(13.5))
		}, 2)
	}

	return sp
}

// text annotation in a rounded box with an arrow pointing to a data point
func annotation(a *axes, st *style) {
	const text = "Annotation"

	face := a.ts.face(st.fontSize, st.fontBold, false)
	w, h := textExtent(face, text)
	pad := a.pts(st.fontSize) * 0.3

	x1 := a.fx(0.9)
	y0 := a.fy(0.9)
	box := rect{x0: x1 - w - 2*pad, y0: y0, x1: x1, y1: y0 + h + 2*pad}

	// arrow from the bottom of the box to the data point
	tx, ty := a.px(0.25), a.py(4.25)
	sx, sy := box.x0+box.w()/2, box.y1
	a.dc.SetDash()
	a.dc.SetLineWidth(a.pts(st.patchLineWidth))
	setColor(a.dc, st.textColor, 1)
	a.dc.DrawLine(sx, sy, tx, ty)
	a.dc.Stroke()

	angle := math.Atan2(ty-sy, tx-sx)
	head := a.pts(st.fontSize) * 0.4
	for _, d := range []float64{-0.4, 0.4} {
		a.dc.DrawLine(tx, ty, tx-head*math.Cos(angle+d), ty-head*math.Sin(angle+d))
	}
	a.dc.Stroke()

	a.dc.DrawRoundedRectangle(box.x0, box.y0, box.w(), box.h(), pad)
	setColor(a.dc, st.patchFace, 0.2)
	a.dc.Fill()
	a.patchEdge(func() {
		a.dc.DrawRoundedRectangle(box.x0, box.y0, box.w(), box.h(), pad)
	}, st.patchLineWidth)

	a.dc.SetFontFace(face)
	setColor(a.dc, st.textColor, 1)
	a.dc.DrawStringAnchored(text, box.x1-pad, box.y0+pad, 1, 0.8)
}

func coloredCircles(st *style, rnd *random.Random) *subplot {
	n := min(len(st.cycle), 15)

	type circle struct {
		x, y float64
		c    rcparams.RGBA
	}
	circles := make([]circle, n)
	for i := range circles {
		circles[i] = circle{
			x: rnd.Normal(0, 3),
			y: rnd.Normal(0, 3),
			c: st.cycleColor(i),
		}
	}

	sp := &subplot{
		title:       "ax.grid(True)",
		titleMono:   true,
		titleSize:   st.fontSize * fontScale["small"],
		xlim:        [2]float64{-4, 8},
		ylim:        [2]float64{-5, 6},
		equalAspect: true,
		grid:        true,
	}

	sp.data = func(a *axes) {
		for _, c := range circles {
			r := a.px(1) - a.px(0)
			a.dc.DrawCircle(a.px(c.x), a.py(c.y), r)
			setColor(a.dc, c.c, 1)
			a.dc.FillPreserve()
			a.dc.SetDash()
			a.dc.SetLineWidth(a.pts(st.patchLineWidth))
			a.dc.Stroke()
		}
	}

	return sp
}
