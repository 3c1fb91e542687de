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

package entry_test

import (
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// scriptedWidgets implements the entry.Widgets interface. Edits are keyed by
// widget label and are consumed when the widget is drawn
type scriptedWidgets struct {
	edits map[string]any

	// labels of widgets in the order they were drawn. SameLine() adds a "+"
	drawn []string
}

func newScriptedWidgets() *scriptedWidgets {
	return &scriptedWidgets{
		edits: make(map[string]any),
	}
}

func (w *scriptedWidgets) edit(label string, v any) {
	w.edits[label] = v
}

func apply[T any](w *scriptedWidgets, label string, v *T) bool {
	w.drawn = append(w.drawn, label)
	e, ok := w.edits[label]
	if !ok {
		return false
	}
	delete(w.edits, label)
	*v = e.(T)
	return true
}

func (w *scriptedWidgets) SameLine() {
	w.drawn = append(w.drawn, "+")
}

func (w *scriptedWidgets) Checkbox(label string, v *bool) bool {
	return apply(w, label, v)
}

func (w *scriptedWidgets) InputInt(label string, v *int, _ int, _ int) bool {
	return apply(w, label, v)
}

func (w *scriptedWidgets) InputFloat(label string, v *float64, _ float64, _ float64, _ string) bool {
	return apply(w, label, v)
}

func (w *scriptedWidgets) InputFloat2(label string, v *[2]float64, _ string) bool {
	return apply(w, label, v)
}

func (w *scriptedWidgets) Combo(label string, selected *int, _ []string) bool {
	return apply(w, label, selected)
}

func (w *scriptedWidgets) ColorEdit(label string, c *rcparams.RGBA) bool {
	return apply(w, label, c)
}

func (w *scriptedWidgets) SeparatorText(label string) {
	w.drawn = append(w.drawn, label)
}
