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

// Package rcparams is the store of style parameters that the parameter
// panel edits and the preview renders.
//
// Values in the store are of type Value, a tagged union of the kinds of value
// that can appear in a style file. A colour can be held either as a Value of
// KindColor or as a string to be decoded by ParseColor().
//
// The Params type is the concrete store. It starts in the library default
// state and can have named styles applied to it. Named styles are partial
// overlays and so the normal sequence is:
//
//	p.Reset()
//	err := p.Use("ggplot")
//
// Named styles are TOML files with a single params table:
//
//	[params]
//	"axes.facecolor" = "#E5E5E5"
//	"axes.grid" = true
package rcparams
