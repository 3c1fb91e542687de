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

package preview

import (
	"testing"

	"github.com/jetsetilly/mpltweaker/test"
)

func labels(ticks []tick) []string {
	var l []string
	for _, t := range ticks {
		l = append(l, t.label)
	}
	return l
}

func TestNiceTicks(t *testing.T) {
	l := labels(niceTicks(0, 1, 5, false))
	test.ExpectEquality(t, len(l), 6)
	test.ExpectEquality(t, l[0], "0.0")
	test.ExpectEquality(t, l[5], "1.0")

	l = labels(niceTicks(-10, 10, 4, true))
	test.ExpectEquality(t, len(l), 5)
	test.ExpectEquality(t, l[0], "−10")
	test.ExpectEquality(t, l[2], "0")

	l = labels(niceTicks(-10, 10, 4, false))
	test.ExpectEquality(t, l[0], "-10")

	// step of 2.5 needs one decimal place
	l = labels(niceTicks(0, 10, 4, false))
	test.ExpectEquality(t, l[1], "2.5")

	// reversed limits give the same ticks
	test.ExpectEquality(t, len(niceTicks(1, 0, 5, false)), 6)
}

func TestMinorTicks(t *testing.T) {
	major := niceTicks(0, 1, 5, false)
	minor := minorTicks(major, 0, 1)

	// step of 0.2 has four subdivisions
	test.ExpectEquality(t, len(minor), 15)
	test.ExpectApproximate(t, minor[0], 0.05, 1e-9)
}

func TestRoundLimits(t *testing.T) {
	lo, hi := roundLimits(0.13, 0.92, 5)
	test.ExpectApproximate(t, lo, 0.0, 1e-9)
	test.ExpectApproximate(t, hi, 1.0, 1e-9)
}

func TestColormap(t *testing.T) {
	cm := newColormap("gray", 256)
	test.ExpectEquality(t, cm.at(0).Hex(), "#000000ff")
	test.ExpectEquality(t, cm.at(1).Hex(), "#ffffffff")

	// values are clamped
	test.ExpectEquality(t, cm.at(2).Hex(), "#ffffffff")

	// two levels only
	cm = newColormap("gray", 2)
	test.ExpectEquality(t, cm.at(0.4).Hex(), "#000000ff")
	test.ExpectEquality(t, cm.at(0.6).Hex(), "#ffffffff")

	// unknown maps fall back to viridis
	test.ExpectEquality(t, newColormap("unknown", 256).at(0).Hex(), newColormap("viridis", 256).at(0).Hex())
}

func TestClipLine(t *testing.T) {
	r := rect{x0: 0, y0: 0, x1: 10, y1: 10}

	x0, y0, x1, y1, ok := clipLine(-5, 5, 15, 5, r)
	test.DemandSuccess(t, ok)
	test.ExpectApproximate(t, x0, 0.0, 1e-9)
	test.ExpectApproximate(t, x1, 10.0, 1e-9)
	test.ExpectApproximate(t, y0, 5.0, 1e-9)
	test.ExpectApproximate(t, y1, 5.0, 1e-9)

	_, _, _, _, ok = clipLine(-5, -5, -1, 20, r)
	test.ExpectFailure(t, ok)
}
