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

package preview_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/preview"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/jetsetilly/mpltweaker/test"
)

func render(t *testing.T, p *rcparams.Params) *image.NRGBA {
	t.Helper()
	res, err := preview.Render(context.Background(), p, preview.Options{})
	test.DemandSuccess(t, err)
	return res.Image
}

func TestRender(t *testing.T) {
	p := rcparams.NewParams()
	img := render(t, p)

	// figure is 7.4 by 5.8 inches at 100 dpi
	test.ExpectEquality(t, img.Bounds().Dx(), 740)
	test.ExpectEquality(t, img.Bounds().Dy(), 580)

	// the figure edge is white by default
	test.ExpectEquality(t, img.NRGBAAt(0, 290), rgba(255, 255, 255, 255))
}

func TestDeterministic(t *testing.T) {
	p := rcparams.NewParams()
	a := render(t, p)
	b := render(t, p)
	test.ExpectSuccess(t, bytes.Equal(a.Pix, b.Pix))

	// changing a parameter changes the figure
	p.Set("axes.facecolor", rcparams.String("black"))
	c := render(t, p)
	test.ExpectFailure(t, bytes.Equal(a.Pix, c.Pix))
}

func TestFigureColors(t *testing.T) {
	p := rcparams.NewParams()
	p.Set("figure.facecolor", rcparams.String("red"))
	p.Set("figure.edgecolor", rcparams.String("none"))
	img := render(t, p)

	// right hand side of the figure is outside of every axes
	test.ExpectEquality(t, img.NRGBAAt(img.Bounds().Dx()-1, 290), rgba(255, 0, 0, 255))

	p.Set("figure.frameon", rcparams.Bool(false))
	img = render(t, p)
	test.ExpectEquality(t, img.NRGBAAt(img.Bounds().Dx()-1, 290).A, uint8(0))
}

func TestDPI(t *testing.T) {
	p := rcparams.NewParams()
	p.Set("figure.dpi", rcparams.Float(50))
	img := render(t, p)
	test.ExpectEquality(t, img.Bounds().Dx(), 370)
	test.ExpectEquality(t, img.Bounds().Dy(), 290)

	// the largest dpi allowed by the figure section is reduced so that the
	// figure fits in the maximum canvas size
	p.Set("figure.dpi", rcparams.Float(1200))
	img = render(t, p)
	test.ExpectSuccess(t, img.Bounds().Dx() <= 4096)
	test.ExpectSuccess(t, img.Bounds().Dy() <= 4096)
	test.ExpectSuccess(t, img.Bounds().Dx() > 4000)

	p.Set("figure.dpi", rcparams.Float(0))
	_, err := preview.Render(context.Background(), p, preview.Options{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, preview.RenderError))
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := preview.Render(ctx, rcparams.NewParams(), preview.Options{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
}

func TestStyles(t *testing.T) {
	p := rcparams.NewParams()
	for _, s := range p.Styles() {
		p.Reset()
		test.DemandSuccess(t, p.Use(s), s)
		render(t, p)
	}
}

func TestFitAndSave(t *testing.T) {
	img := render(t, rcparams.NewParams())

	fit := preview.Fit(img, 370, 370)
	test.ExpectEquality(t, fit.Bounds().Dx(), 370)
	test.ExpectEquality(t, fit.Bounds().Dy(), 290)

	pth := filepath.Join(t.TempDir(), "figure.png")
	test.DemandSuccess(t, preview.Save(fit, pth))

	saved, err := imaging.Open(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, saved.Bounds().Dx(), 370)

	err = preview.Save(fit, filepath.Join(t.TempDir(), "figure.unknown"))
	test.ExpectSuccess(t, curated.Is(err, preview.SaveError))
}

func rgba(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
