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
	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// Widgets is the part of the immediate mode toolkit needed by an Entry. Each
// function that takes a pointer returns true if the user edited the value
// during the frame. The pointed to value will have been updated.
type Widgets interface {
	SameLine()
	Checkbox(label string, v *bool) bool
	InputInt(label string, v *int, step int, stepFast int) bool
	InputFloat(label string, v *float64, step float64, stepFast float64, format string) bool
	InputFloat2(label string, v *[2]float64, format string) bool
	Combo(label string, selected *int, options []string) bool
	ColorEdit(label string, c *rcparams.RGBA) bool
	SeparatorText(label string)
}

// Entry is a single configurable value bound to one key in the style store.
type Entry interface {
	// Label is the display name of the entry
	Label() string

	// Key is the key in the store. Empty for entries that are not bound to
	// the store
	Key() string

	// SameLine is true if the entry should be drawn on the same row as the
	// preceding entry
	SameLine() bool

	// Render draws the widget for the entry and commits any edit made by the
	// user
	Render(w Widgets)

	// IsDirty is true if the value was changed by the user since the last
	// call to ClearDirty()
	IsDirty() bool
	ClearDirty()

	// ResetFromStore updates the entry's value from the store. The dirty flag
	// is never set by a reset. If the store value cannot be converted the
	// entry's value is left unchanged and the problem is logged
	ResetFromStore()

	// Describe returns the entry as a "key: value" line for a style file
	Describe() string
}

// Option changes how an Entry is created.
type Option func(*base)

// OnSameLine causes the entry to be drawn on the same row as the entry
// before it.
var OnSameLine Option = func(b *base) {
	b.sameLine = true
}

// base contains the fields and functions common to all bound entries
type base struct {
	store    rcparams.Store
	label    string
	key      string
	sameLine bool
	dirty    bool
}

func newBase(store rcparams.Store, label string, key string, opts []Option) base {
	b := base{
		store: store,
		label: label,
		key:   key,
	}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Label implements the Entry interface.
func (b *base) Label() string {
	return b.label
}

// Key implements the Entry interface.
func (b *base) Key() string {
	return b.key
}

// SameLine implements the Entry interface.
func (b *base) SameLine() bool {
	return b.sameLine
}

// IsDirty implements the Entry interface.
func (b *base) IsDirty() bool {
	return b.dirty
}

// ClearDirty implements the Entry interface.
func (b *base) ClearDirty() {
	b.dirty = false
}

// write value to the store and mark the entry as dirty
func (b *base) commit(v rcparams.Value) {
	b.store.Set(b.key, v)
	b.dirty = true
}

// prepare the widget row for the entry
func (b *base) layout(w Widgets) {
	if b.sameLine {
		w.SameLine()
	}
}

// lookup the entry's key in the store. a missing key is logged and false is
// returned
func (b *base) lookup() (rcparams.Value, bool) {
	v, ok := b.store.Get(b.key)
	if !ok {
		b.conversionFailed("key not in store")
	}
	return v, ok
}

// log a conversion error for the entry
func (b *base) conversionFailed(detail any) {
	logger.Log(logger.Allow, "entry", curated.Errorf(rcparams.ConversionError, b.key, detail))
}
