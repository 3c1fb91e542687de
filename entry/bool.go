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
	"strings"

	"github.com/jetsetilly/mpltweaker/rcparams"
)

// Bool is an entry for a boolean value.
type Bool struct {
	base
	value bool
}

// NewBool is the preferred method of initialisation for the Bool type.
func NewBool(store rcparams.Store, label string, key string, value bool, opts ...Option) *Bool {
	return &Bool{
		base:  newBase(store, label, key, opts),
		value: value,
	}
}

// Value returns the current value of the entry.
func (e *Bool) Value() bool {
	return e.value
}

// Commit the value to the store. Returns false if the value is unchanged.
func (e *Bool) Commit(v bool) bool {
	if v == e.value {
		return false
	}
	e.value = v
	e.commit(rcparams.Bool(v))
	return true
}

// Render implements the Entry interface.
func (e *Bool) Render(w Widgets) {
	e.layout(w)
	v := e.value
	if w.Checkbox(e.label, &v) {
		e.Commit(v)
	}
}

// ResetFromStore implements the Entry interface. The strings "true" and
// "false" are accepted in any case.
func (e *Bool) ResetFromStore() {
	v, ok := e.lookup()
	if !ok {
		return
	}

	if b, ok := v.AsBool(); ok {
		e.value = b
		return
	}

	if s, ok := v.AsString(); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			e.value = true
			return
		case "false":
			e.value = false
			return
		}
	}

	e.conversionFailed(fmt.Sprintf("not a bool: %v", v))
}

// Describe implements the Entry interface.
func (e *Bool) Describe() string {
	if e.value {
		return fmt.Sprintf("%s: True", e.key)
	}
	return fmt.Sprintf("%s: False", e.key)
}
