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

package sdlimgui

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// widgets is the imgui implementation of panel.UI. values are converted to and
// from the 32bit types used by imgui.
type widgets struct {
	// width of the numeric input widgets
	inputWidth float32
}

func newWidgets() *widgets {
	return &widgets{
		inputWidth: 120,
	}
}

func (w *widgets) SameLine() {
	imgui.SameLine()
}

func (w *widgets) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

func (w *widgets) InputInt(label string, v *int, step int, stepFast int) bool {
	i := int32(*v)
	imgui.PushItemWidth(w.inputWidth)
	defer imgui.PopItemWidth()
	if imgui.InputIntV(label, &i, step, stepFast, imgui.InputTextFlagsEnterReturnsTrue) {
		*v = int(i)
		return true
	}
	return false
}

func (w *widgets) InputFloat(label string, v *float64, step float64, stepFast float64, format string) bool {
	f := float32(*v)
	imgui.PushItemWidth(w.inputWidth)
	defer imgui.PopItemWidth()
	if imgui.InputFloatV(label, &f, float32(step), float32(stepFast), format, imgui.InputTextFlagsEnterReturnsTrue) {
		*v = float64(f)
		return true
	}
	return false
}

// InputFloat2 is drawn as two inputs followed by the label. the ID of each
// input is derived from the label.
func (w *widgets) InputFloat2(label string, v *[2]float64, format string) bool {
	f := [2]float32{float32(v[0]), float32(v[1])}

	imgui.PushID(label)
	defer imgui.PopID()

	imgui.PushItemWidth(w.inputWidth * 0.6)
	a := imgui.InputFloatV("##0", &f[0], 0, 0, format, imgui.InputTextFlagsEnterReturnsTrue)
	imgui.SameLine()
	b := imgui.InputFloatV("##1", &f[1], 0, 0, format, imgui.InputTextFlagsEnterReturnsTrue)
	imgui.PopItemWidth()

	imgui.SameLine()
	imgui.Text(visibleLabel(label))

	if a || b {
		v[0] = float64(f[0])
		v[1] = float64(f[1])
		return true
	}
	return false
}

func (w *widgets) Combo(label string, selected *int, options []string) bool {
	var preview string
	if *selected >= 0 && *selected < len(options) {
		preview = options[*selected]
	}

	changed := false
	imgui.PushItemWidth(w.inputWidth * 1.5)
	if imgui.BeginCombo(label, preview) {
		for i, o := range options {
			if imgui.Selectable(o) && i != *selected {
				*selected = i
				changed = true
			}
		}
		imgui.EndCombo()
	}
	imgui.PopItemWidth()

	return changed
}

func (w *widgets) ColorEdit(label string, c *rcparams.RGBA) bool {
	f := [4]float32{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}
	imgui.PushItemWidth(w.inputWidth * 2)
	defer imgui.PopItemWidth()
	if imgui.ColorEdit4(label, &f) {
		for i := range f {
			c[i] = float64(f[i])
		}
		return true
	}
	return false
}

func (w *widgets) SeparatorText(label string) {
	imgui.Spacing()
	imgui.Text(label)
	imgui.Separator()
}

func (w *widgets) BeginTabBar(id string) bool {
	return imgui.BeginTabBar(id)
}

func (w *widgets) EndTabBar() {
	imgui.EndTabBar()
}

func (w *widgets) BeginTabItem(label string) bool {
	return imgui.BeginTabItem(label)
}

func (w *widgets) EndTabItem() {
	imgui.EndTabItem()
}

func (w *widgets) BeginTable(id string, columns int) bool {
	return imgui.BeginTableV(id, columns, imgui.TableFlagsSizingFixedFit|imgui.TableFlagsBordersInnerV, imgui.Vec2{}, 0.0)
}

func (w *widgets) TableHeaders(labels []string) {
	for i, l := range labels {
		imgui.TableSetupColumnV(l, imgui.TableColumnFlagsNone, 0, imgui.ID(i))
	}
	imgui.TableHeadersRow()
}

func (w *widgets) TableNextRow() {
	imgui.TableNextRow()
}

func (w *widgets) TableNextColumn() {
	imgui.TableNextColumn()
}

func (w *widgets) EndTable() {
	imgui.EndTable()
}

func (w *widgets) Button(label string) bool {
	return imgui.Button(label)
}

// InputTextWithHint shows the hint as a tooltip when the value is empty.
func (w *widgets) InputTextWithHint(label string, hint string, value *string) bool {
	changed := imgui.InputTextV(label, value, imgui.InputTextFlagsEnterReturnsTrue, nil)
	if *value == "" && imgui.IsItemHovered() {
		imgui.SetTooltip(hint)
	}
	return changed
}

func (w *widgets) RadioButton(label string, active bool) bool {
	return imgui.RadioButton(label, active)
}

// visibleLabel returns the part of an imgui label before the "##" ID marker.
func visibleLabel(label string) string {
	for i := 0; i+1 < len(label); i++ {
		if label[i] == '#' && label[i+1] == '#' {
			return label[:i]
		}
	}
	return label
}
