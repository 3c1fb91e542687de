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
	"golang.org/x/image/font"
)

// rectangle in pixels. y0 is the top edge
type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) w() float64 {
	return r.x1 - r.x0
}

func (r rect) h() float64 {
	return r.y1 - r.y0
}

func (r rect) inset(left, top, right, bottom float64) rect {
	return rect{x0: r.x0 + left, y0: r.y0 + top, x1: r.x1 - right, y1: r.y1 - bottom}
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

// subplot describes the content of a single axes in data coordinates
type subplot struct {
	title     string
	titleMono bool

	// zero means that the title size of the style is used
	titleSize float64

	xlabel string
	ylabel string

	xlim [2]float64
	ylim [2]float64

	// nil tick lists are filled automatically. an empty list means that there
	// are no ticks on that axis
	xticks []tick
	yticks []tick
	autoX  bool
	autoY  bool

	// the box is adjusted so that a unit in x is the same length as a unit in y
	equalAspect bool

	// draw grid even if the style says otherwise
	grid bool

	legend *legend

	// data is clipped to the axes. extra is drawn afterwards and is not clipped
	data  func(a *axes)
	extra func(a *axes)
}

// limits returns the range of the values expanded by the margin. if sticky is
// true then the lower limit is not expanded below zero
func limits(st *style, margin float64, sticky bool, values ...[]float64) [2]float64 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if math.IsInf(lo, 0) {
		return [2]float64{0, 1}
	}
	if hi == lo {
		return [2]float64{lo - 1, hi + 1}
	}

	d := (hi - lo) * margin
	l := [2]float64{lo - d, hi + d}
	if sticky && lo >= 0 {
		l[0] = max(0, l[0])
	}

	if st.autolimit == "round_numbers" {
		l[0], l[1] = roundLimits(l[0], l[1], 6)
	}

	return l
}

// the number of ticks that can be fitted on an axis of the given length
func tickSpace(length float64, labelSize float64, dpi float64, factor float64) int {
	pts := length * 72 / dpi
	return min(9, max(1, int(math.Floor(pts/(labelSize*factor)))))
}

// resolve automatic ticks for the size of the box
func (sp *subplot) resolveTicks(st *style, box rect) {
	if sp.xticks == nil || sp.autoX {
		sp.autoX = true
		sp.xticks = niceTicks(sp.xlim[0], sp.xlim[1], tickSpace(box.w(), st.xtick.labelSize, st.dpi, 3), st.unicodeMinus)
	}
	if sp.yticks == nil || sp.autoY {
		sp.autoY = true
		sp.yticks = niceTicks(sp.ylim[0], sp.ylim[1], tickSpace(box.h(), st.ytick.labelSize, st.dpi, 2), st.unicodeMinus)
	}
}

// text dimensions in pixels
func textExtent(face font.Face, s string) (float64, float64) {
	w := font.MeasureString(face, s)
	return float64(w) / 64, float64(face.Metrics().Height) / 64
}

func (sp *subplot) titleFace(st *style, ts *typesetter) font.Face {
	size := st.titleSize
	if sp.titleSize > 0 {
		size = sp.titleSize
	}
	return ts.face(size, st.titleBold, sp.titleMono)
}

// decorations returns the space in pixels that the axes decorations need
// outside of the axes box
func (sp *subplot) decorations(st *style, ts *typesetter) (left, top, right, bottom float64) {
	pt := st.dpi / 72

	xface := ts.face(st.xtick.labelSize, false, false)
	yface := ts.face(st.ytick.labelSize, false, false)
	lface := ts.face(st.labelSize, st.labelBold, false)

	var xh float64
	if len(sp.xticks) > 0 {
		_, xh = textExtent(xface, "0")
	}
	var yw float64
	for _, t := range sp.yticks {
		w, _ := textExtent(yface, t.label)
		yw = max(yw, w)
	}

	side := func(t tickStyle, i int, labelSize float64, hasTicks bool) float64 {
		if !hasTicks {
			return 0
		}
		var d float64
		if t.show[i] && !t.inward {
			d += t.majorSize * pt
		}
		if t.labels[i] {
			d += t.majorPad*pt + labelSize
		}
		return d
	}

	bottom = side(st.xtick, 0, xh, len(sp.xticks) > 0)
	top = side(st.xtick, 1, xh, len(sp.xticks) > 0)
	left = side(st.ytick, 0, yw, len(sp.yticks) > 0)
	right = side(st.ytick, 1, yw, len(sp.yticks) > 0)

	if sp.xlabel != "" {
		_, h := textExtent(lface, sp.xlabel)
		bottom += st.labelPad*pt + h
	}
	if sp.ylabel != "" {
		_, h := textExtent(lface, sp.ylabel)
		left += st.labelPad*pt + h
	}
	if sp.title != "" {
		_, h := textExtent(sp.titleFace(st, ts), sp.title)
		top += st.titlePad*pt + h
	}

	return left, top, right, bottom
}

// adjust the box so that the data has an equal aspect. the box shrinks
// around its centre
func (sp *subplot) applyAspect(box rect) rect {
	if !sp.equalAspect {
		return box
	}

	dx := math.Abs(sp.xlim[1] - sp.xlim[0])
	dy := math.Abs(sp.ylim[1] - sp.ylim[0])
	if dx == 0 || dy == 0 {
		return box
	}

	want := dy / dx
	if box.h()/box.w() > want {
		h := box.w() * want
		d := (box.h() - h) / 2
		return rect{x0: box.x0, y0: box.y0 + d, x1: box.x1, y1: box.y1 - d}
	}
	w := box.h() / want
	d := (box.w() - w) / 2
	return rect{x0: box.x0 + d, y0: box.y0, x1: box.x1 - d, y1: box.y1}
}

// axes draws a subplot onto a canvas
type axes struct {
	dc  *gg.Context
	st  *style
	ts  *typesetter
	sp  *subplot
	box rect
}

// convert points to pixels
func (a *axes) pts(v float64) float64 {
	return v * a.st.dpi / 72
}

// convert data coordinates to pixels
func (a *axes) px(x float64) float64 {
	return a.box.x0 + (x-a.sp.xlim[0])/(a.sp.xlim[1]-a.sp.xlim[0])*a.box.w()
}

func (a *axes) py(y float64) float64 {
	return a.box.y1 - (y-a.sp.ylim[0])/(a.sp.ylim[1]-a.sp.ylim[0])*a.box.h()
}

// convert axes fractions to pixels
func (a *axes) fx(f float64) float64 {
	return a.box.x0 + f*a.box.w()
}

func (a *axes) fy(f float64) float64 {
	return a.box.y1 - f*a.box.h()
}

func (a *axes) draw() {
	a.face()
	a.gridLines()

	if a.sp.data != nil {
		a.dc.DrawRectangle(a.box.x0, a.box.y0, a.box.w(), a.box.h())
		a.dc.Clip()
		a.sp.data(a)
		a.dc.ResetClip()
	}

	if a.sp.extra != nil {
		a.sp.extra(a)
	}

	a.spines()
	a.ticks()
	a.labels()
	a.title()

	if a.sp.legend != nil {
		a.drawLegend(a.sp.legend)
	}
}

func (a *axes) face() {
	if a.st.axFace[3] == 0 {
		return
	}
	setColor(a.dc, a.st.axFace, 1)
	a.dc.DrawRectangle(a.box.x0, a.box.y0, a.box.w(), a.box.h())
	a.dc.Fill()
}

func (a *axes) gridLines() {
	if !a.st.grid && !a.sp.grid {
		return
	}
	if !setLineStyle(a.dc, a.st.gridStyle, a.pts(a.st.gridWidth)) {
		return
	}
	a.dc.SetLineCapButt()
	setColor(a.dc, a.st.gridColor, a.st.gridAlpha)

	major := a.st.gridWhich == "major" || a.st.gridWhich == "both"
	minor := a.st.gridWhich == "minor" || a.st.gridWhich == "both"

	vertical := func(x float64) {
		a.dc.DrawLine(x, a.box.y0, x, a.box.y1)
	}
	horizontal := func(y float64) {
		a.dc.DrawLine(a.box.x0, y, a.box.x1, y)
	}

	if a.st.gridAxis == "x" || a.st.gridAxis == "both" {
		if major {
			for _, t := range a.sp.xticks {
				vertical(a.px(t.v))
			}
		}
		if minor && a.st.xtick.minorVisible {
			for _, v := range minorTicks(a.sp.xticks, a.sp.xlim[0], a.sp.xlim[1]) {
				vertical(a.px(v))
			}
		}
	}
	if a.st.gridAxis == "y" || a.st.gridAxis == "both" {
		if major {
			for _, t := range a.sp.yticks {
				horizontal(a.py(t.v))
			}
		}
		if minor && a.st.ytick.minorVisible {
			for _, v := range minorTicks(a.sp.yticks, a.sp.ylim[0], a.sp.ylim[1]) {
				horizontal(a.py(v))
			}
		}
	}

	a.dc.Stroke()
	a.dc.SetDash()
}

func (a *axes) spines() {
	if a.st.axLineWidth <= 0 {
		return
	}
	a.dc.SetDash()
	a.dc.SetLineCapSquare()
	a.dc.SetLineWidth(a.pts(a.st.axLineWidth))
	setColor(a.dc, a.st.axEdge, 1)

	b := a.box
	if a.st.spines[0] {
		a.dc.DrawLine(b.x0, b.y0, b.x0, b.y1)
	}
	if a.st.spines[1] {
		a.dc.DrawLine(b.x1, b.y0, b.x1, b.y1)
	}
	if a.st.spines[2] {
		a.dc.DrawLine(b.x0, b.y1, b.x1, b.y1)
	}
	if a.st.spines[3] {
		a.dc.DrawLine(b.x0, b.y0, b.x1, b.y0)
	}
	a.dc.Stroke()
}

// tick marks and tick labels for both axes
func (a *axes) ticks() {
	a.dc.SetDash()
	a.dc.SetLineCapButt()

	xt := a.st.xtick
	yt := a.st.ytick

	// edge positions and the direction that points away from the box
	xedges := [2][2]float64{{a.box.y1, 1}, {a.box.y0, -1}}
	yedges := [2][2]float64{{a.box.x0, -1}, {a.box.x1, 1}}

	for i, e := range xedges {
		if !xt.show[i] {
			continue
		}
		if xt.minorVisible {
			for _, v := range minorTicks(a.sp.xticks, a.sp.xlim[0], a.sp.xlim[1]) {
				a.tickMark(a.px(v), e[0], 0, e[1], xt.minorSize, xt.minorWidth, xt)
			}
		}
		for _, t := range a.sp.xticks {
			a.tickMark(a.px(t.v), e[0], 0, e[1], xt.majorSize, xt.majorWidth, xt)
		}
	}
	for i, e := range yedges {
		if !yt.show[i] {
			continue
		}
		if yt.minorVisible {
			for _, v := range minorTicks(a.sp.yticks, a.sp.ylim[0], a.sp.ylim[1]) {
				a.tickMark(e[0], a.py(v), e[1], 0, yt.minorSize, yt.minorWidth, yt)
			}
		}
		for _, t := range a.sp.yticks {
			a.tickMark(e[0], a.py(t.v), e[1], 0, yt.majorSize, yt.majorWidth, yt)
		}
	}

	// labels
	xface := a.ts.face(xt.labelSize, false, false)
	a.dc.SetFontFace(xface)
	setColor(a.dc, xt.labelColor, 1)
	for i, e := range xedges {
		if !xt.labels[i] {
			continue
		}
		d := a.pts(xt.majorPad)
		if xt.show[i] && !xt.inward {
			d += a.pts(xt.majorSize)
		}
		for _, t := range a.sp.xticks {
			if i == 0 {
				a.dc.DrawStringAnchored(t.label, a.px(t.v), e[0]+d, 0.5, 0.8)
			} else {
				a.dc.DrawStringAnchored(t.label, a.px(t.v), e[0]-d, 0.5, 0)
			}
		}
	}

	yface := a.ts.face(yt.labelSize, false, false)
	a.dc.SetFontFace(yface)
	setColor(a.dc, yt.labelColor, 1)
	for i, e := range yedges {
		if !yt.labels[i] {
			continue
		}
		d := a.pts(yt.majorPad)
		if yt.show[i] && !yt.inward {
			d += a.pts(yt.majorSize)
		}
		for _, t := range a.sp.yticks {
			if i == 0 {
				a.dc.DrawStringAnchored(t.label, e[0]-d, a.py(t.v), 1, 0.35)
			} else {
				a.dc.DrawStringAnchored(t.label, e[0]+d, a.py(t.v), 0, 0.35)
			}
		}
	}
}

// draw a single tick mark. dx and dy point away from the box
func (a *axes) tickMark(x, y, dx, dy float64, size float64, width float64, ts tickStyle) {
	if size <= 0 || width <= 0 {
		return
	}
	l := a.pts(size)
	if ts.inward {
		l = -l
	}
	a.dc.SetLineWidth(a.pts(width))
	setColor(a.dc, ts.color, 1)
	a.dc.DrawLine(x, y, x+dx*l, y+dy*l)
	a.dc.Stroke()
}

// extent of the tick decorations on the bottom and left of the axes
func (a *axes) tickExtent() (float64, float64) {
	var bottom, left float64

	xt := a.st.xtick
	if len(a.sp.xticks) > 0 {
		if xt.show[0] && !xt.inward {
			bottom += a.pts(xt.majorSize)
		}
		if xt.labels[0] {
			_, h := textExtent(a.ts.face(xt.labelSize, false, false), "0")
			bottom += a.pts(xt.majorPad) + h
		}
	}

	yt := a.st.ytick
	if len(a.sp.yticks) > 0 {
		if yt.show[0] && !yt.inward {
			left += a.pts(yt.majorSize)
		}
		if yt.labels[0] {
			face := a.ts.face(yt.labelSize, false, false)
			var w float64
			for _, t := range a.sp.yticks {
				tw, _ := textExtent(face, t.label)
				w = max(w, tw)
			}
			left += a.pts(yt.majorPad) + w
		}
	}

	return bottom, left
}

// axis labels
func (a *axes) labels() {
	if a.sp.xlabel == "" && a.sp.ylabel == "" {
		return
	}

	a.dc.SetFontFace(a.ts.face(a.st.labelSize, a.st.labelBold, false))
	setColor(a.dc, a.st.labelColor, 1)

	bottom, left := a.tickExtent()

	if a.sp.xlabel != "" {
		y := a.box.y1 + bottom + a.pts(a.st.labelPad)
		a.dc.DrawStringAnchored(a.sp.xlabel, a.box.x0+a.box.w()/2, y, 0.5, 0.8)
	}

	if a.sp.ylabel != "" {
		x := a.box.x0 - left - a.pts(a.st.labelPad)
		y := a.box.y0 + a.box.h()/2
		a.dc.Push()
		a.dc.RotateAbout(-math.Pi/2, x, y)
		a.dc.DrawStringAnchored(a.sp.ylabel, x, y, 0.5, 0)
		a.dc.Pop()
	}
}

func (a *axes) title() {
	if a.sp.title == "" {
		return
	}

	a.dc.SetFontFace(a.sp.titleFace(a.st, a.ts))
	setColor(a.dc, a.st.titleColor, 1)

	y := a.box.y0 - a.pts(a.st.titlePad) - (a.st.titleY-1)*a.box.h()
	if a.st.xtick.show[1] && a.st.xtick.labels[1] && len(a.sp.xticks) > 0 {
		_, h := textExtent(a.ts.face(a.st.xtick.labelSize, false, false), "0")
		y -= a.pts(a.st.xtick.majorPad) + h
	}

	switch a.st.titleLoc {
	case "left":
		a.dc.DrawStringAnchored(a.sp.title, a.box.x0, y, 0, 0)
	case "right":
		a.dc.DrawStringAnchored(a.sp.title, a.box.x1, y, 1, 0)
	default:
		a.dc.DrawStringAnchored(a.sp.title, a.box.x0+a.box.w()/2, y, 0.5, 0)
	}
}

// fill and stroke a rectangle in data coordinates as a patch
func (a *axes) patchRect(x, y, w, h float64, face rcparams.RGBA, alpha float64) rect {
	x0, x1 := a.px(x), a.px(x+w)
	y0, y1 := a.py(y+h), a.py(y)
	r := rect{x0: min(x0, x1), y0: min(y0, y1), x1: max(x0, x1), y1: max(y0, y1)}

	a.dc.DrawRectangle(r.x0, r.y0, r.w(), r.h())
	setColor(a.dc, face, alpha)
	a.dc.Fill()
	a.patchEdge(func() {
		a.dc.DrawRectangle(r.x0, r.y0, r.w(), r.h())
	}, a.st.patchLineWidth)

	return r
}

// stroke the outline of a patch if the style requires it
func (a *axes) patchEdge(path func(), width float64) {
	if !a.st.patchEdgeForce || width <= 0 {
		return
	}
	path()
	a.dc.SetDash()
	a.dc.SetLineWidth(a.pts(width))
	setColor(a.dc, a.st.patchEdge, 1)
	a.dc.Stroke()
}
