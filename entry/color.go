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

package entry

import (
	"fmt"

	"github.com/jetsetilly/mpltweaker/rcparams"
)

// ColorEpsilon is the amount by which at least one channel must change before
// a new colour is committed. Colour picking widgets produce small changes in
// value that would otherwise cause a commit on every frame.
const ColorEpsilon = 0.0005

// aliases for colour values that refer to another key. the outer key is the
// special value, the inner key is the entry's key
var colorAliases = map[string]map[string]string{
	"auto": {
		"lines.markerfacecolor": "lines.color",
		"axes.edgecolor":        "lines.color",
		"axes.titlecolor":       "text.color",
	},
	"inherit": {
		"xtick.labelcolor": "xtick.color",
		"ytick.labelcolor": "ytick.color",
		"legend.facecolor": "axes.facecolor",
	},
}

// Color is an entry for an RGBA colour.
type Color struct {
	base
	value rcparams.RGBA
}

// NewColor is the preferred method of initialisation for the Color type.
// Colours are initialised as opaque white.
func NewColor(store rcparams.Store, label string, key string, opts ...Option) *Color {
	return &Color{
		base:  newBase(store, label, key, opts),
		value: rcparams.White,
	}
}

// Value returns the current value of the entry.
func (e *Color) Value() rcparams.RGBA {
	return e.value
}

// Commit the colour to the store. Returns false if no channel differs from
// the current colour by more than ColorEpsilon.
func (e *Color) Commit(c rcparams.RGBA) bool {
	if !c.Differs(e.value, ColorEpsilon) {
		return false
	}
	e.value = c
	e.commit(rcparams.Color(c))
	return true
}

// Render implements the Entry interface.
func (e *Color) Render(w Widgets) {
	e.layout(w)
	c := e.value
	if w.ColorEdit(e.label, &c) {
		e.Commit(c)
	}
}

// ResetFromStore implements the Entry interface.
//
// The values "auto" and "inherit" are resolved for some keys by using the
// value of another key. A value that cannot be resolved leaves the colour
// unchanged.
func (e *Color) ResetFromStore() {
	v, ok := e.lookup()
	if !ok {
		return
	}

	if s, ok := v.AsString(); ok {
		if alias, ok := colorAliases[s]; ok {
			target, ok := alias[e.key]
			if !ok {
				e.conversionFailed(fmt.Sprintf("%q cannot be resolved", s))
				return
			}
			v, ok = e.store.Get(target)
			if !ok {
				e.conversionFailed(fmt.Sprintf("%q resolves to missing key %s", s, target))
				return
			}
		}
	}

	c, err := rcparams.ParseColor(v)
	if err != nil {
		e.conversionFailed(err)
		return
	}

	e.value = c
}

// Describe implements the Entry interface.
func (e *Color) Describe() string {
	return fmt.Sprintf("%s: %q", e.key, e.value.Hex())
}
