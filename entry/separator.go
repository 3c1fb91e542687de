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

// Separator is a label drawn between groups of entries. It is not bound to
// the store and is never dirty.
type Separator struct {
	label string
}

// NewSeparator is the preferred method of initialisation for the Separator
// type.
func NewSeparator(label string) *Separator {
	return &Separator{label: label}
}

// Label implements the Entry interface.
func (e *Separator) Label() string {
	return e.label
}

// Key implements the Entry interface. It is always the empty string.
func (e *Separator) Key() string {
	return ""
}

// SameLine implements the Entry interface.
func (e *Separator) SameLine() bool {
	return false
}

// Render implements the Entry interface.
func (e *Separator) Render(w Widgets) {
	w.SeparatorText(e.label)
}

// IsDirty implements the Entry interface.
func (e *Separator) IsDirty() bool {
	return false
}

// ClearDirty implements the Entry interface.
func (e *Separator) ClearDirty() {
}

// ResetFromStore implements the Entry interface.
func (e *Separator) ResetFromStore() {
}

// Describe implements the Entry interface. It is always the empty string.
func (e *Separator) Describe() string {
	return ""
}
