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

package random

import (
	"math"
	"math/rand"
)

// Random is a source of random numbers. Instances created with the same seed
// produce the same sequence of numbers. Required so that the demo figure looks
// the same every time it is drawn.
//
// Random is not safe for concurrent use. Concurrent users should create
// their own instance with a different seed.
type Random struct {
	rnd *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n)
}

// Float64 returns a number in the range [0.0, 1.0).
func (rnd *Random) Float64() float64 {
	return rnd.rnd.Float64()
}

// Normal returns a normally distributed number.
func (rnd *Random) Normal(mu float64, sigma float64) float64 {
	return rnd.rnd.NormFloat64()*sigma + mu
}

// Gamma returns a number from the gamma distribution with a scale of one.
// Uses the method of Marsaglia and Tsang.
func (rnd *Random) Gamma(shape float64) float64 {
	if shape < 1 {
		return rnd.Gamma(shape+1) * math.Pow(rnd.rnd.Float64(), 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := rnd.rnd.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rnd.rnd.Float64()
		if math.Log(u) < 0.5*x*x+d-d*v+d*math.Log(v) {
			return d * v
		}
	}
}

// Beta returns a number from the beta distribution. The number is in the
// range [0.0, 1.0].
func (rnd *Random) Beta(a float64, b float64) float64 {
	x := rnd.Gamma(a)
	y := rnd.Gamma(b)
	return x / (x + y)
}
