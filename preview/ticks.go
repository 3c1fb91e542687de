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
	"math"
	"strconv"
	"strings"
)

// tick is a position on an axis and its label
type tick struct {
	v     float64
	label string
}

// tick steps are chosen from these multiples of a power of ten
var tickSteps = []float64{1, 2, 2.5, 5, 10}

// tickStep returns the step between ticks so that there are no more than
// maxTicks intervals between lo and hi
func tickStep(lo float64, hi float64, maxTicks int) float64 {
	raw := (hi - lo) / float64(max(1, maxTicks))
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range tickSteps {
		if m*mag >= raw*(1-1e-9) {
			return m * mag
		}
	}
	return 10 * mag
}

// niceTicks returns evenly spaced ticks between lo and hi inclusive
func niceTicks(lo float64, hi float64, maxTicks int, unicodeMinus bool) []tick {
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo <= 0 || math.IsInf(hi-lo, 0) || math.IsNaN(hi-lo) {
		return []tick{{v: lo, label: formatTick(lo, 1, unicodeMinus)}}
	}

	step := tickStep(lo, hi, maxTicks)
	eps := step * 1e-9

	var ticks []tick
	start := math.Ceil(lo/step-1e-9) * step
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+eps {
			break
		}

		// snap values that are very nearly zero
		if math.Abs(v) < eps {
			v = 0
		}
		ticks = append(ticks, tick{v: v, label: formatTick(v, step, unicodeMinus)})
	}
	return ticks
}

// minorTicks returns the minor tick positions between the major ticks. the
// positions either side of the major ticks are included if they are between
// lo and hi
func minorTicks(major []tick, lo float64, hi float64) []float64 {
	if len(major) < 2 {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	step := major[1].v - major[0].v
	mantissa := step / math.Pow(10, math.Floor(math.Log10(step)))

	divs := 5
	if math.Abs(mantissa-2) < 1e-6 || math.Abs(mantissa-2.5) < 1e-6 {
		divs = 4
	}
	minor := step / float64(divs)

	var ticks []float64
	start := major[0].v - step
	for i := 0; ; i++ {
		v := start + float64(i)*minor
		if v > hi+minor*1e-9 {
			break
		}
		if i%divs == 0 || v < lo-minor*1e-9 {
			continue
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// formatTick formats the value with as many decimal places as the step
// requires
func formatTick(v float64, step float64, unicodeMinus bool) string {
	decimals := 0
	for decimals < 8 {
		s := step * math.Pow(10, float64(decimals))
		if math.Abs(s-math.Round(s)) < 1e-6*math.Max(1, s) {
			break
		}
		decimals++
	}

	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if unicodeMinus {
		s = strings.Replace(s, "-", "−", 1)
	}
	return s
}

// expand limits outwards to the nearest ticks
func roundLimits(lo float64, hi float64, maxTicks int) (float64, float64) {
	if hi-lo <= 0 {
		return lo, hi
	}
	step := tickStep(lo, hi, maxTicks)
	return math.Floor(lo/step+1e-9) * step, math.Ceil(hi/step-1e-9) * step
}
