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

package panel_test

import (
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// scriptedUI implements the panel.UI interface. The tab with the label in
// openTab is the only tab that is drawn. Edits are keyed by widget label and
// consumed when the widget is drawn. Buttons in the pressed map are pressed
// once
type scriptedUI struct {
	openTab string
	edits   map[string]any
	pressed map[string]bool

	// labels of every widget drawn
	drawn []string
}

func newScriptedUI(openTab string) *scriptedUI {
	return &scriptedUI{
		openTab: openTab,
		edits:   make(map[string]any),
		pressed: make(map[string]bool),
	}
}

func edit[T any](ui *scriptedUI, label string, v *T) bool {
	ui.drawn = append(ui.drawn, label)
	e, ok := ui.edits[label]
	if !ok {
		return false
	}
	delete(ui.edits, label)
	*v = e.(T)
	return true
}

func (ui *scriptedUI) SameLine() {}

func (ui *scriptedUI) Checkbox(label string, v *bool) bool {
	return edit(ui, label, v)
}

func (ui *scriptedUI) InputInt(label string, v *int, _ int, _ int) bool {
	return edit(ui, label, v)
}

func (ui *scriptedUI) InputFloat(label string, v *float64, _ float64, _ float64, _ string) bool {
	return edit(ui, label, v)
}

func (ui *scriptedUI) InputFloat2(label string, v *[2]float64, _ string) bool {
	return edit(ui, label, v)
}

func (ui *scriptedUI) Combo(label string, selected *int, _ []string) bool {
	return edit(ui, label, selected)
}

func (ui *scriptedUI) ColorEdit(label string, c *rcparams.RGBA) bool {
	return edit(ui, label, c)
}

func (ui *scriptedUI) SeparatorText(label string) {
	ui.drawn = append(ui.drawn, label)
}

func (ui *scriptedUI) BeginTabBar(_ string) bool {
	return true
}

func (ui *scriptedUI) EndTabBar() {}

func (ui *scriptedUI) BeginTabItem(label string) bool {
	return label == ui.openTab
}

func (ui *scriptedUI) EndTabItem() {}

func (ui *scriptedUI) BeginTable(_ string, _ int) bool {
	return true
}

func (ui *scriptedUI) TableHeaders(_ []string) {}

func (ui *scriptedUI) TableNextRow() {}

func (ui *scriptedUI) TableNextColumn() {}

func (ui *scriptedUI) EndTable() {}

func (ui *scriptedUI) Button(label string) bool {
	ui.drawn = append(ui.drawn, label)
	if ui.pressed[label] {
		delete(ui.pressed, label)
		return true
	}
	return false
}

func (ui *scriptedUI) InputTextWithHint(label string, _ string, v *string) bool {
	return edit(ui, label, v)
}

func (ui *scriptedUI) RadioButton(label string, _ bool) bool {
	return ui.Button(label)
}
