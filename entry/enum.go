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

// Enum is an entry for a string value chosen from a fixed list of options.
// The store receives the label of the selected option.
type Enum struct {
	base
	selected int
	options  []string
}

// NewEnum is the preferred method of initialisation for the Enum type. The
// selected index will be forced into the range of the options list.
func NewEnum(store rcparams.Store, label string, key string, selected int, options []string, opts ...Option) *Enum {
	if len(options) == 0 {
		panic(fmt.Sprintf("entry: enum %s has no options", key))
	}
	return &Enum{
		base:     newBase(store, label, key, opts),
		selected: max(0, min(selected, len(options)-1)),
		options:  options,
	}
}

// Selected returns the index of the selected option.
func (e *Enum) Selected() int {
	return e.selected
}

// Value returns the label of the selected option.
func (e *Enum) Value() string {
	return e.options[e.selected]
}

// Options returns the list of options.
func (e *Enum) Options() []string {
	return e.options
}

// Commit the option to the store. Returns false if the index is out of range
// or if it is already selected.
func (e *Enum) Commit(idx int) bool {
	if idx < 0 || idx >= len(e.options) || idx == e.selected {
		return false
	}
	e.selected = idx
	e.commit(rcparams.String(e.options[idx]))
	return true
}

// Render implements the Entry interface.
func (e *Enum) Render(w Widgets) {
	e.layout(w)
	idx := e.selected
	if w.Combo(e.label, &idx, e.options) {
		e.Commit(idx)
	}
}

// ResetFromStore implements the Entry interface. If the store value is a
// list then the first element is used. This is the case for font.family.
func (e *Enum) ResetFromStore() {
	v, ok := e.lookup()
	if !ok {
		return
	}

	if l, ok := v.AsList(); ok && len(l) > 0 {
		v = l[0]
	}

	s, ok := v.AsString()
	if !ok {
		e.conversionFailed(fmt.Sprintf("not a string: %v", v))
		return
	}

	for i, o := range e.options {
		if o == s {
			e.selected = i
			return
		}
	}

	e.conversionFailed(fmt.Sprintf("%q is not an option", s))
}

// Describe implements the Entry interface.
func (e *Enum) Describe() string {
	return fmt.Sprintf("%s: %q", e.key, e.options[e.selected])
}

// MarkerStyles is the list of marker styles available to a Marker entry. The
// first entry means no marker.
var MarkerStyles = []string{
	"None", "o", ".", ",", "v", "^", "<", ">", "1", "2", "3", "4",
	"8", "s", "p", "P", "*", "h", "H", "+", "x", "X", "D", "d", "|", "_",
}

// NewMarker creates an Enum entry for a marker style.
func NewMarker(store rcparams.Store, label string, key string, opts ...Option) *Enum {
	return NewEnum(store, label, key, 0, MarkerStyles, opts...)
}
