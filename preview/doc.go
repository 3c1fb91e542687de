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

// Package preview draws the demo figure for a set of style parameters. The
// figure has six subplots (scatter plot, image with a patch, bar graphs,
// coloured lines with a legend, histograms and coloured circles) which
// between them show most of the parameters that a style can change.
//
// The figure is regenerated every time the parameters change and so the
// sample data is drawn from seeded random number generators. The same style
// always produces the same figure.
//
// Render() returns the figure as an image. The figure is always 7.4 by 5.8
// inches and the figure.dpi parameter decides the size in pixels. Fit() and
// Save() are convenience functions for scaling the image and writing it to
// a file.
//
// Text is drawn with the Go fonts unless Options.UseSystemFonts is set, in
// which case the fonts named by the font.family parameter are looked for
// first.
package preview
