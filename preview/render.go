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
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/fonts"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/random"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"golang.org/x/sync/errgroup"
)

// size of the demo figure in inches
const (
	figureWidth  = 7.4
	figureHeight = 5.8
)

// maximum size of the figure in pixels in either dimension. every subplot is
// drawn on a canvas of the full figure size
const maxPixels = 4096

const suptitle = "Figure Title"

// number of rows and columns of subplots in the demo figure
const (
	rows = 2
	cols = 3
)

// Options for the Render() function.
type Options struct {
	// look for the fonts named by the style on the system. the Go fonts are
	// used if this is false or if none of the named fonts can be found
	UseSystemFonts bool
}

// Results of a successful call to Render().
type Results struct {
	Image   *image.NRGBA
	Elapsed time.Duration
}

// size of the figure in pixels at the dpi
func figureSize(dpi float64) (int, int) {
	return int(math.Round(figureWidth * dpi)), int(math.Round(figureHeight * dpi))
}

// Render draws the demo figure using the parameters in the store. The
// subplots of the figure are drawn concurrently.
//
// Parameters that cannot be used are logged and a fallback value is used in
// their place. An error is only returned if the figure cannot be drawn at all
// or if the context is cancelled.
func Render(ctx context.Context, store rcparams.Store, opts Options) (*Results, error) {
	start := time.Now()

	st := readStyle(store)

	w, h := figureSize(st.dpi)
	if w <= 0 || h <= 0 {
		return nil, curated.Errorf(RenderError, fmt.Sprintf("figure of %dx%d pixels at %v dpi", w, h, st.dpi))
	}

	// a figure that is too large is drawn at the highest dpi that fits
	if w > maxPixels || h > maxPixels {
		dpi := math.Floor(st.dpi * maxPixels / float64(max(w, h)))
		logger.Logf(logger.Allow, "preview", "figure drawn at %v dpi instead of %v dpi", dpi, st.dpi)
		st.dpi = dpi
		w, h = figureSize(st.dpi)
	}

	text, mono := goFonts, goMonoFonts
	if opts.UseSystemFonts {
		idx := fonts.System()
		text = findFonts(idx, st.fonts, goFonts)
		mono = findFonts(idx, st.monoFonts, goMonoFonts)
	}

	ts := newTypesetter(text, mono, st.dpi, st.hinting)
	defer ts.close()

	subplots := make([]*subplot, len(builders))
	for i, b := range builders {
		subplots[i] = b(st, random.NewRandom(seed+int64(i)))
	}

	boxes := layout(st, ts, w, h, subplots)

	canvases := make([]*gg.Context, len(subplots))

	g, gctx := errgroup.WithContext(ctx)
	for i := range subplots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			// font faces can not be shared between goroutines
			ts := newTypesetter(text, mono, st.dpi, st.hinting)
			defer ts.close()

			a := &axes{
				dc:  gg.NewContext(w, h),
				st:  st,
				ts:  ts,
				sp:  subplots[i],
				box: boxes[i],
			}
			a.draw()
			canvases[i] = a.dc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, curated.Errorf(RenderError, err)
	}

	img := background(st, w, h)
	for _, c := range canvases {
		img = imaging.Overlay(img, c.Image(), image.Point{}, 1.0)
	}
	img = imaging.Overlay(img, decorations(st, ts, w, h).Image(), image.Point{}, 1.0)

	return &Results{
		Image:   img,
		Elapsed: time.Since(start),
	}, nil
}

// the figure face. transparent if the figure has no frame
func background(st *style, w int, h int) *image.NRGBA {
	if !st.frame {
		return imaging.New(w, h, color.NRGBA{})
	}
	r, g, b, a := st.figFace.RGBA8()
	return imaging.New(w, h, color.NRGBA{R: r, G: g, B: b, A: a})
}

// the figure edge and the figure title
func decorations(st *style, ts *typesetter, w int, h int) *gg.Context {
	dc := gg.NewContext(w, h)
	pt := st.dpi / 72

	if st.frame && st.figEdge[3] > 0 {
		lw := 2 * pt
		dc.DrawRectangle(lw/2, lw/2, float64(w)-lw, float64(h)-lw)
		dc.SetLineWidth(lw)
		setColor(dc, st.figEdge, 1)
		dc.Stroke()
	}

	dc.SetFontFace(ts.face(st.suptitleSize, st.suptitleBold, false))
	setColor(dc, st.textColor, 1)
	dc.DrawStringAnchored(suptitle, float64(w)/2, 3*pt, 0.5, 0.8)

	return dc
}

// layout places the axes of the subplots in a grid. the space around each
// axes is large enough for its decorations. axes in the same column share the
// left and right edges and axes in the same row share the top and bottom edges
func layout(st *style, ts *typesetter, w int, h int, subplots []*subplot) []rect {
	pad := 3.0 / 72 * st.dpi

	_, th := textExtent(ts.face(st.suptitleSize, st.suptitleBold, false), suptitle)
	area := rect{x0: pad, y0: th + 2*pad, x1: float64(w) - pad, y1: float64(h) - pad}

	gap := 2 * pad
	cw := (area.w() - gap*(cols-1)) / cols
	ch := (area.h() - gap*(rows-1)) / rows

	cells := make([]rect, len(subplots))
	var left, right [cols]float64
	var top, bottom [rows]float64

	for i, sp := range subplots {
		r, c := i/cols, i%cols
		x := area.x0 + float64(c)*(cw+gap)
		y := area.y0 + float64(r)*(ch+gap)
		cells[i] = rect{x0: x, y0: y, x1: x + cw, y1: y + ch}

		sp.resolveTicks(st, cells[i])
		l, t, rt, b := sp.decorations(st, ts)
		left[c] = max(left[c], l)
		right[c] = max(right[c], rt)
		top[r] = max(top[r], t)
		bottom[r] = max(bottom[r], b)
	}

	boxes := make([]rect, len(subplots))
	for i, sp := range subplots {
		r, c := i/cols, i%cols
		b := cells[i].inset(left[c], top[r], right[c], bottom[r])

		// very small figures leave no room for the axes
		if b.w() < 1 {
			b.x1 = b.x0 + 1
		}
		if b.h() < 1 {
			b.y1 = b.y0 + 1
		}

		boxes[i] = sp.applyAspect(b)
		sp.resolveTicks(st, boxes[i])
	}

	return boxes
}

// Fit scales the image so that it fits inside the width and height. The aspect
// ratio of the image is preserved.
func Fit(img image.Image, w int, h int) *image.NRGBA {
	return imaging.Fit(img, w, h, imaging.Lanczos)
}

// Save writes the image to a file. The image format is decided by the file
// extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return curated.Errorf(SaveError, err)
	}
	return nil
}
