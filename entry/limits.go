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

// Limits are the bounds applied to the value of a numeric entry. A value is
// clamped only if both the minimum and the maximum are set.
type Limits struct {
	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

// NoLimits means that a value is never clamped.
var NoLimits = Limits{}

// Between returns Limits with both bounds set.
func Between(min float64, max float64) Limits {
	return Limits{min: min, max: max, hasMin: true, hasMax: true}
}

// AtLeast returns Limits with only the minimum bound set. Values will not be
// clamped.
func AtLeast(min float64) Limits {
	return Limits{min: min, hasMin: true}
}

// AtMost returns Limits with only the maximum bound set. Values will not be
// clamped.
func AtMost(max float64) Limits {
	return Limits{max: max, hasMax: true}
}

func (l Limits) clamp(v float64) float64 {
	if !l.hasMin || !l.hasMax {
		return v
	}
	return max(l.min, min(v, l.max))
}

func (l Limits) clampInt(v int) int {
	if !l.hasMin || !l.hasMax {
		return v
	}
	return max(int(l.min), min(v, int(l.max)))
}
