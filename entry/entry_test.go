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
	"strings"
	"testing"

	"github.com/jetsetilly/mpltweaker/entry"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/jetsetilly/mpltweaker/test"
)

func getFloat(t *testing.T, store rcparams.Store, key string) float64 {
	t.Helper()
	v, ok := store.Get(key)
	test.DemandSuccess(t, ok, key)
	f, ok := v.AsFloat()
	test.DemandSuccess(t, ok, key)
	return f
}

func TestImplementations(t *testing.T) {
	store := rcparams.NewParams()
	test.DemandImplements[entry.Entry](t, entry.NewBool(store, "b", "axes.grid", false))
	test.DemandImplements[entry.Entry](t, entry.NewInt(store, "i", "image.lut", 256, entry.NoLimits, 1, 10))
	test.DemandImplements[entry.Entry](t, entry.NewFloat(store, "f", "figure.dpi", 100, entry.NoLimits, 1, 10, "%.1f"))
	test.DemandImplements[entry.Entry](t, entry.NewFloatPair(store, "p", "figure.figsize", [2]float64{6.4, 4.8}, entry.NoLimits, "%.3f"))
	test.DemandImplements[entry.Entry](t, entry.NewEnum(store, "e", "figure.titleweight", 0, []string{"normal", "bold"}))
	test.DemandImplements[entry.Entry](t, entry.NewColor(store, "c", "figure.facecolor"))
	test.DemandImplements[entry.Entry](t, entry.NewSeparator("s"))
}

func TestFloatClamp(t *testing.T) {
	store := rcparams.NewParams()

	e := entry.NewFloat(store, "alpha", "grid.alpha", 0.5, entry.Between(0.0, 1.0), 0.05, 0.1, "%.2f")
	test.ExpectSuccess(t, e.Commit(1.7))
	test.ExpectEquality(t, e.Value(), 1.0)
	test.ExpectEquality(t, getFloat(t, store, "grid.alpha"), 1.0)
	test.ExpectSuccess(t, e.IsDirty())

	test.ExpectSuccess(t, e.Commit(-0.3))
	test.ExpectEquality(t, e.Value(), 0.0)
	test.ExpectEquality(t, getFloat(t, store, "grid.alpha"), 0.0)

	// clamped value is the same as the current value so no commit
	e.ClearDirty()
	test.ExpectFailure(t, e.Commit(-5))
	test.ExpectFailure(t, e.IsDirty())

	// only one bound means no clamping
	e = entry.NewFloat(store, "alpha", "grid.alpha", 0.5, entry.AtLeast(0.0), 0.05, 0.1, "%.2f")
	test.ExpectSuccess(t, e.Commit(1.7))
	test.ExpectEquality(t, getFloat(t, store, "grid.alpha"), 1.7)

	e = entry.NewFloat(store, "alpha", "grid.alpha", 0.5, entry.AtMost(1.0), 0.05, 0.1, "%.2f")
	test.ExpectSuccess(t, e.Commit(-0.3))
	test.ExpectEquality(t, getFloat(t, store, "grid.alpha"), -0.3)
}

func TestIntClamp(t *testing.T) {
	store := rcparams.NewParams()

	e := entry.NewInt(store, "points", "legend.numpoints", 1, entry.Between(1, 5), 1, 1)
	test.ExpectSuccess(t, e.Commit(10))
	test.ExpectEquality(t, e.Value(), 5)
	v, _ := store.Get("legend.numpoints")
	i, ok := v.AsInt()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 5)

	test.ExpectSuccess(t, e.Commit(0))
	test.ExpectEquality(t, e.Value(), 1)

	e = entry.NewInt(store, "points", "legend.numpoints", 1, entry.NoLimits, 1, 1)
	test.ExpectSuccess(t, e.Commit(10))
	test.ExpectEquality(t, e.Value(), 10)
}

func TestFloatPair(t *testing.T) {
	store := rcparams.NewParams()

	e := entry.NewFloatPair(store, "figsize", "figure.figsize", [2]float64{6.4, 4.8}, entry.Between(0, 100), "%.3f")
	test.ExpectSuccess(t, e.Commit([2]float64{150, -1}))
	test.ExpectEquality(t, e.Value(), [2]float64{100, 0})

	v, _ := store.Get("figure.figsize")
	p, ok := v.AsPair()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, [2]float64{100, 0})
	test.ExpectEquality(t, e.Describe(), "figure.figsize: 100.0000, 0.0000")

	// a list of two numbers is accepted on reset
	store.Set("figure.figsize", rcparams.List(rcparams.Float(2), rcparams.Int(3)))
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value(), [2]float64{2, 3})
}

func TestColorEpsilon(t *testing.T) {
	store := rcparams.NewParams()

	e := entry.NewColor(store, "face color", "figure.facecolor")
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value(), rcparams.White)

	// every channel within the epsilon
	test.ExpectFailure(t, e.Commit(rcparams.RGBA{0.9997, 0.9998, 1, 0.9999}))
	test.ExpectFailure(t, e.IsDirty())
	v, _ := store.Get("figure.facecolor")
	s, ok := v.AsString()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "white")

	// one channel outside of the epsilon
	c := rcparams.RGBA{1, 1, 0.999, 1}
	test.ExpectSuccess(t, e.Commit(c))
	test.ExpectSuccess(t, e.IsDirty())
	v, _ = store.Get("figure.facecolor")
	sc, ok := v.AsColor()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sc, c)
}

func TestColorAliases(t *testing.T) {
	store := rcparams.NewParams()

	// axes.titlecolor is "auto" by default which resolves to text.color
	store.Set("text.color", rcparams.String("red"))
	e := entry.NewColor(store, "title color", "axes.titlecolor")
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value().Hex(), "#ff0000ff")

	// legend.facecolor is "inherit" by default which resolves to axes.facecolor
	store.Set("axes.facecolor", rcparams.String("#E5E5E5"))
	e = entry.NewColor(store, "face color", "legend.facecolor")
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value().Hex(), "#e5e5e5ff")

	// xtick.labelcolor is "inherit" and resolves to xtick.color
	store.Set("xtick.color", rcparams.String("b"))
	e = entry.NewColor(store, "x label color", "xtick.labelcolor")
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value().Hex(), "#0000ffff")

	// lines.markeredgecolor is "auto" but has no alias. the value is unchanged
	e = entry.NewColor(store, "edge color", "lines.markeredgecolor")
	test.ExpectSuccess(t, e.Commit(rcparams.RGBA{0, 0, 0, 1}))
	store.Set("lines.markeredgecolor", rcparams.String("auto"))
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value(), rcparams.RGBA{0, 0, 0, 1})
}

func TestEnumSelection(t *testing.T) {
	store := rcparams.NewParams()

	e := entry.NewEnum(store, "title weight", "figure.titleweight", 0, []string{"normal", "bold"})
	test.ExpectSuccess(t, e.Commit(1))

	v, _ := store.Get("figure.titleweight")
	s, ok := v.AsString()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "bold")
	test.ExpectSuccess(t, e.IsDirty())

	e.ClearDirty()
	test.ExpectFailure(t, e.IsDirty())

	// out of range indexes are never committed
	test.ExpectFailure(t, e.Commit(2))
	test.ExpectFailure(t, e.Commit(-1))
	test.ExpectEquality(t, e.Selected(), 1)
	test.ExpectEquality(t, e.Describe(), `figure.titleweight: "bold"`)

	// initial index is forced into range
	e = entry.NewEnum(store, "title weight", "figure.titleweight", 5, []string{"normal", "bold"})
	test.ExpectEquality(t, e.Selected(), 1)
}

func TestEnumFromList(t *testing.T) {
	store := rcparams.NewParams()

	e := entry.NewEnum(store, "font family", "font.family", 0,
		[]string{"serif", "sans-serif", "cursive", "fantasy", "monospace"})
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value(), "sans-serif")

	store.Set("font.family", rcparams.StringList("monospace", "serif"))
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value(), "monospace")
}

func TestConversionFailures(t *testing.T) {
	logger.Clear()
	store := rcparams.NewParams()

	f := entry.NewFloat(store, "dpi", "figure.dpi", 100, entry.NoLimits, 1, 10, "%.1f")
	store.Set("figure.dpi", rcparams.String("high"))
	f.ResetFromStore()
	test.ExpectEquality(t, f.Value(), 100.0)

	i := entry.NewInt(store, "lut", "image.lut", 256, entry.NoLimits, 1, 10)
	store.Set("image.lut", rcparams.Float(2.5))
	i.ResetFromStore()
	test.ExpectEquality(t, i.Value(), 256)

	// integral floats are accepted
	store.Set("image.lut", rcparams.Float(128))
	i.ResetFromStore()
	test.ExpectEquality(t, i.Value(), 128)

	e := entry.NewEnum(store, "weight", "figure.titleweight", 1, []string{"normal", "bold"})
	store.Set("figure.titleweight", rcparams.String("heavy"))
	e.ResetFromStore()
	test.ExpectEquality(t, e.Value(), "bold")

	b := entry.NewBool(store, "grid", "axes.grid", true)
	store.Set("axes.grid", rcparams.String("FALSE"))
	b.ResetFromStore()
	test.ExpectFailure(t, b.Value())
	store.Set("axes.grid", rcparams.Int(1))
	b.ResetFromStore()
	test.ExpectFailure(t, b.Value())

	c := entry.NewColor(store, "face", "figure.facecolor")
	store.Set("figure.facecolor", rcparams.String("not a colour"))
	c.ResetFromStore()
	test.ExpectEquality(t, c.Value(), rcparams.White)

	// missing keys are a conversion error too
	m := entry.NewFloat(store, "missing", "no.such.key", 1, entry.NoLimits, 1, 1, "%.1f")
	m.ResetFromStore()
	test.ExpectEquality(t, m.Value(), 1.0)

	// a reset is never a user edit
	for _, d := range []entry.Entry{f, i, e, b, c, m} {
		test.ExpectFailure(t, d.IsDirty(), d.Key())
	}

	// every failure has been logged
	w := &strings.Builder{}
	logger.Write(w)
	log := w.String()
	test.ExpectEquality(t, strings.Count(log, "entry: conversion: "), 6)
	test.ExpectSuccess(t, strings.Contains(log, "figure.dpi"))
	test.ExpectSuccess(t, strings.Contains(log, "no.such.key"))
}

func TestRender(t *testing.T) {
	store := rcparams.NewParams()
	w := newScriptedWidgets()

	entries := []entry.Entry{
		entry.NewSeparator("Spines"),
		entry.NewBool(store, "left", "axes.spines.left", true),
		entry.NewBool(store, "right", "axes.spines.right", true, entry.OnSameLine),
		entry.NewFloat(store, "spines width", "axes.linewidth", 1.5, entry.Between(0, 10), 0.1, 1, "%.3f"),
		entry.NewColor(store, "face", "axes.facecolor"),
	}

	w.edit("right", false)
	w.edit("spines width", 20.0)
	w.edit("face", rcparams.RGBA{0, 0, 0, 1})

	for _, e := range entries {
		e.Render(w)
	}

	test.ExpectEquality(t, strings.Join(w.drawn, ","), "Spines,left,+,right,spines width,face")
	test.ExpectEquality(t, len(w.edits), 0)

	test.ExpectFailure(t, entries[0].IsDirty())
	test.ExpectFailure(t, entries[1].IsDirty())
	test.ExpectSuccess(t, entries[2].IsDirty())
	test.ExpectSuccess(t, entries[3].IsDirty())
	test.ExpectSuccess(t, entries[4].IsDirty())
	test.ExpectEquality(t, getFloat(t, store, "axes.linewidth"), 10.0)

	// an edit that doesn't change the value is not a commit
	entries[1].ClearDirty()
	w.edit("left", true)
	entries[1].Render(w)
	test.ExpectFailure(t, entries[1].IsDirty())
}

func TestDescribe(t *testing.T) {
	store := rcparams.NewParams()

	test.ExpectEquality(t, entry.NewBool(store, "grid", "axes.grid", true).Describe(), "axes.grid: True")
	test.ExpectEquality(t, entry.NewBool(store, "grid", "axes.grid", false).Describe(), "axes.grid: False")
	test.ExpectEquality(t, entry.NewInt(store, "lut", "image.lut", 12, entry.NoLimits, 1, 1).Describe(), "image.lut: 12")
	test.ExpectEquality(t, entry.NewFloat(store, "dpi", "figure.dpi", 100, entry.NoLimits, 1, 1, "%.1f").Describe(), "figure.dpi: 100.0000")
	test.ExpectEquality(t, entry.NewColor(store, "face", "figure.facecolor").Describe(), `figure.facecolor: "#ffffffff"`)
	test.ExpectEquality(t, entry.NewMarker(store, "marker", "lines.marker").Describe(), `lines.marker: "None"`)
	test.ExpectEquality(t, entry.NewSeparator("Misc").Describe(), "")
	test.ExpectEquality(t, entry.NewSeparator("Misc").Key(), "")
}
