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

package rcparams_test

import (
	"testing"
	"testing/fstest"

	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/jetsetilly/mpltweaker/test"
)

// snapshot of every value in the store
func snapshot(p *rcparams.Params) map[string]rcparams.Value {
	s := make(map[string]rcparams.Value)
	for _, k := range p.Keys() {
		s[k], _ = p.Get(k)
	}
	return s
}

func sameSnapshot(t *testing.T, a, b map[string]rcparams.Value) {
	t.Helper()
	test.ExpectEquality(t, len(a), len(b))
	for k, v := range a {
		test.ExpectSuccess(t, v.Equal(b[k]), k)
	}
}

func TestDefaults(t *testing.T) {
	p := rcparams.NewParams()

	v, ok := p.Get("figure.dpi")
	test.ExpectSuccess(t, ok)
	f, ok := v.AsFloat()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, 100.0)

	_, ok = p.Get("no.such.key")
	test.ExpectFailure(t, ok)

	p.Set("figure.dpi", rcparams.Float(200))
	p.Reset()
	v, _ = p.Get("figure.dpi")
	f, _ = v.AsFloat()
	test.ExpectEquality(t, f, 100.0)

	// font families are lists
	v, _ = p.Get("font.family")
	test.ExpectEquality(t, v.Kind(), rcparams.KindList)
}

func TestStyles(t *testing.T) {
	p := rcparams.NewParams()
	styles := p.Styles()

	test.ExpectEquality(t, len(styles), 6)
	test.ExpectEquality(t, styles[0], "Solarize_Light2")

	// hidden styles are not listed
	for _, s := range styles {
		test.ExpectInequality(t, s[0], '_')
	}
}

func TestUse(t *testing.T) {
	p := rcparams.NewParams()

	test.DemandSuccess(t, p.Use("ggplot"))
	v, _ := p.Get("axes.facecolor")
	s, _ := v.AsString()
	test.ExpectEquality(t, s, "#E5E5E5")

	v, _ = p.Get("axes.grid")
	b, _ := v.AsBool()
	test.ExpectSuccess(t, b)

	// key not in ggplot is left at default
	v, _ = p.Get("figure.dpi")
	f, _ := v.AsFloat()
	test.ExpectEquality(t, f, 100.0)

	// hidden style can still be used
	test.DemandSuccess(t, p.Use("_mpl-gallery"))
	v, _ = p.Get("figure.figsize")
	l, ok := v.AsList()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(l), 2)

	// the default style is the same as a reset
	test.DemandSuccess(t, p.Use(rcparams.DefaultStyle))
	sameSnapshot(t, snapshot(p), snapshot(rcparams.NewParams()))
}

func TestUseFailure(t *testing.T) {
	styles := fstest.MapFS{
		"good.toml":       {Data: []byte("[params]\n\"axes.grid\" = true\n")},
		"malformed.toml":  {Data: []byte("[params]\n\"axes.grid\" = \n")},
		"unknownkey.toml": {Data: []byte("[params]\n\"axes.grid\" = true\n\"no.such.key\" = 1\n")},
		"nested.toml":     {Data: []byte("[params]\n\"axes.grid\" = true\n\"font.family\" = [[\"a\"]]\n")},
	}

	p := rcparams.NewParamsWithStyles(styles)
	test.ExpectEquality(t, len(p.Styles()), 4)

	before := snapshot(p)

	for _, name := range []string{"nonexistent", "malformed", "unknownkey", "nested"} {
		err := p.Use(name)
		test.ExpectFailure(t, err, name)
		test.ExpectSuccess(t, curated.Is(err, rcparams.StyleApplyError), name)

		// the store is unchanged by the failure
		sameSnapshot(t, snapshot(p), before)
	}

	test.ExpectSuccess(t, p.Use("good"))
	v, _ := p.Get("axes.grid")
	b, _ := v.AsBool()
	test.ExpectSuccess(t, b)
}

func TestNamedStylesDecode(t *testing.T) {
	p := rcparams.NewParams()
	for _, name := range p.Styles() {
		p.Reset()
		test.ExpectSuccess(t, p.Use(name), name)
	}
}
