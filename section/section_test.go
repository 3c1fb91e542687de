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

package section_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/mpltweaker/entry"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/jetsetilly/mpltweaker/section"
	"github.com/jetsetilly/mpltweaker/test"
)

// editingWidgets implements entry.Widgets. Every float input with a label
// found in the floats map is edited, all other widgets are left alone
type editingWidgets struct {
	floats map[string]float64
	drawn  strings.Builder
}

func (w *editingWidgets) SameLine() {
	w.drawn.WriteString("+")
}

func (w *editingWidgets) Checkbox(label string, _ *bool) bool {
	return w.draw(label)
}

func (w *editingWidgets) InputInt(label string, _ *int, _ int, _ int) bool {
	return w.draw(label)
}

func (w *editingWidgets) InputFloat2(label string, _ *[2]float64, _ string) bool {
	return w.draw(label)
}

func (w *editingWidgets) Combo(label string, _ *int, _ []string) bool {
	return w.draw(label)
}

func (w *editingWidgets) ColorEdit(label string, _ *rcparams.RGBA) bool {
	return w.draw(label)
}

func (w *editingWidgets) SeparatorText(label string) {
	w.draw(label)
}

func (w *editingWidgets) InputFloat(label string, v *float64, _ float64, _ float64, _ string) bool {
	w.draw(label)
	if f, ok := w.floats[label]; ok {
		*v = f
		return true
	}
	return false
}

func (w *editingWidgets) draw(label string) bool {
	w.drawn.WriteString("[")
	w.drawn.WriteString(label)
	w.drawn.WriteString("]")
	return false
}

func TestExport(t *testing.T) {
	store := rcparams.NewParams()

	sec := section.NewSection("Figure",
		entry.NewFloat(store, "DPI", "figure.dpi", 72, entry.Between(50, 1200), 2, 50, "%.1f"),
		entry.NewSeparator("Colours"),
		entry.NewColor(store, "face color", "figure.facecolor"),
	)
	sec.ResetAll()

	stars := strings.Repeat("*", 71)
	expected := fmt.Sprintf("## %s\n## * %-68s*\n## %s\n", stars, "Figure", stars) +
		"figure.dpi: 100.0000\n" +
		"\n" +
		"figure.facecolor: \"#ffffffff\""
	test.ExpectEquality(t, sec.Export(), expected)

	// header lines are all the same width
	lines := strings.Split(sec.Export(), "\n")
	test.ExpectEquality(t, len(lines[0]), 74)
	test.ExpectEquality(t, len(lines[1]), 74)
	test.ExpectEquality(t, len(lines[2]), 74)
}

func TestPendingChange(t *testing.T) {
	store := rcparams.NewParams()
	sec := section.Axes(store)
	sec.ResetAll()

	w := &editingWidgets{}
	sec.Render(w)
	test.ExpectFailure(t, sec.HasPendingChange())

	w.floats = map[string]float64{
		"spines width": 2.5,
		"alpha":        0.25,
	}
	sec.Render(w)
	test.ExpectSuccess(t, sec.HasPendingChange())

	v, _ := store.Get("axes.linewidth")
	f, _ := v.AsFloat()
	test.ExpectEquality(t, f, 2.5)

	sec.Acknowledge()
	test.ExpectFailure(t, sec.HasPendingChange())

	// the same edit a second time is not a change
	sec.Render(w)
	test.ExpectFailure(t, sec.HasPendingChange())
}

func TestRenderOrder(t *testing.T) {
	store := rcparams.NewParams()
	sec := section.Image(store)

	w := &editingWidgets{}
	sec.Render(w)
	test.ExpectEquality(t, w.drawn.String(),
		"[aspect][interpolation][colormap][lut][origin][resample]+[composite]")
}

func TestAll(t *testing.T) {
	store := rcparams.NewParams()

	var names []string
	for _, s := range section.All(store) {
		names = append(names, s.Name())
		test.ExpectSuccess(t, len(s.Entries()) > 0, s.Name())
	}
	test.ExpectEquality(t, strings.Join(names, ","), "Figure,Axes,Ticks,Lines,Legend,Text,Boxplot,Image")
}

func TestResetIdempotence(t *testing.T) {
	store := rcparams.NewParams()
	test.DemandSuccess(t, store.Use("ggplot"))

	for _, s := range section.All(store) {
		s.ResetAll()
		first := s.Export()
		s.ResetAll()
		test.ExpectEquality(t, s.Export(), first, s.Name())
		test.ExpectFailure(t, s.HasPendingChange(), s.Name())
	}
}

func TestSharedKeys(t *testing.T) {
	store := rcparams.NewParams()

	// figure.dpi in two sections
	a := section.NewSection("A", entry.NewFloat(store, "dpi", "figure.dpi", 100, entry.NoLimits, 1, 1, "%.1f"))
	b := section.NewSection("B", entry.NewFloat(store, "dpi", "figure.dpi", 100, entry.NoLimits, 1, 1, "%.1f"))

	w := &editingWidgets{floats: map[string]float64{"dpi": 150}}
	a.Render(w)
	test.ExpectSuccess(t, a.HasPendingChange())
	test.ExpectFailure(t, b.HasPendingChange())

	// the second section only sees the change after a reset
	test.ExpectSuccess(t, strings.HasSuffix(b.Export(), "figure.dpi: 100.0000"))
	b.ResetAll()
	test.ExpectSuccess(t, strings.HasSuffix(b.Export(), "figure.dpi: 150.0000"))
}
