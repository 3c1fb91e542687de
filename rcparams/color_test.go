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

	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/jetsetilly/mpltweaker/test"
)

func TestHex(t *testing.T) {
	test.ExpectEquality(t, rcparams.White.Hex(), "#ffffffff")
	test.ExpectEquality(t, rcparams.RGBA{0, 0, 0, 0}.Hex(), "#00000000")
	test.ExpectEquality(t, rcparams.RGBA{0.5, 0.25, 1, 1}.Hex(), "#8040ffff")

	// channels outside of the range are clamped
	test.ExpectEquality(t, rcparams.RGBA{2, -1, 0, 1}.Hex(), "#ff0000ff")
}

func TestDiffers(t *testing.T) {
	c := rcparams.RGBA{0.5, 0.5, 0.5, 1}
	test.ExpectFailure(t, c.Differs(rcparams.RGBA{0.5004, 0.4996, 0.5, 1}, 0.0005))
	test.ExpectSuccess(t, c.Differs(rcparams.RGBA{0.5, 0.5, 0.5006, 1}, 0.0005))
}

func TestParseColor(t *testing.T) {
	parse := func(s string) rcparams.RGBA {
		t.Helper()
		c, err := rcparams.ParseColor(rcparams.String(s))
		test.ExpectSuccess(t, err, s)
		return c
	}

	test.ExpectEquality(t, parse("white"), rcparams.White)
	test.ExpectEquality(t, parse("White"), rcparams.White)
	test.ExpectEquality(t, parse("#ffffff"), rcparams.White)
	test.ExpectEquality(t, parse("ffffff"), rcparams.White)
	test.ExpectEquality(t, parse("#fff"), rcparams.White)
	test.ExpectEquality(t, parse("w"), rcparams.White)
	test.ExpectEquality(t, parse("1.0"), rcparams.White)
	test.ExpectEquality(t, parse("none"), rcparams.RGBA{})
	test.ExpectEquality(t, parse("#ff000080").Hex(), "#ff000080")
	test.ExpectEquality(t, parse("0.5").Hex(), "#808080ff")
	test.ExpectEquality(t, parse("C0").Hex(), "#1f77b4ff")
	test.ExpectEquality(t, parse("C1").Hex(), "#ff7f0eff")
	test.ExpectEquality(t, parse("tab:red").Hex(), "#d62728ff")
	test.ExpectEquality(t, parse("tab:grey").Hex(), "#7f7f7fff")
	test.ExpectEquality(t, parse("g").Hex(), "#008000ff")

	// a colour value is returned unchanged
	c, err := rcparams.ParseColor(rcparams.Color(rcparams.RGBA{0.1, 0.2, 0.3, 0.4}))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, rcparams.RGBA{0.1, 0.2, 0.3, 0.4})

	// lists of channels
	c, err = rcparams.ParseColor(rcparams.List(rcparams.Float(1), rcparams.Int(0), rcparams.Float(0)))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, rcparams.RGBA{1, 0, 0, 1})

	for _, bad := range []rcparams.Value{
		rcparams.String("auto"),
		rcparams.String("inherit"),
		rcparams.String("tab:black"),
		rcparams.String("1.5"),
		rcparams.String("#12345"),
		rcparams.Float(0.5),
		rcparams.List(rcparams.Float(2), rcparams.Float(0), rcparams.Float(0)),
		{},
	} {
		_, err := rcparams.ParseColor(bad)
		test.ExpectFailure(t, err, bad.String())
		test.ExpectSuccess(t, curated.Is(err, rcparams.ConversionError), bad.String())
	}
}

func TestDefaultCycle(t *testing.T) {
	cycle := rcparams.DefaultCycle()
	test.ExpectEquality(t, len(cycle), 10)
	test.ExpectEquality(t, cycle[9].Hex(), "#17becfff")
}
