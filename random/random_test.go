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

package random_test

import (
	"testing"

	"github.com/jetsetilly/mpltweaker/random"
	"github.com/jetsetilly/mpltweaker/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom(96917002)
	b := random.NewRandom(96917002)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
		test.ExpectEquality(t, a.Normal(0, 1), b.Normal(0, 1))
	}

	c := random.NewRandom(19680801)
	same := true
	for i := 1; i < 256; i++ {
		if a.Float64() != c.Float64() {
			same = false
		}
	}
	test.ExpectFailure(t, same)
}

func TestBeta(t *testing.T) {
	rnd := random.NewRandom(96917002)

	const n = 20000
	var sum float64
	for range n {
		v := rnd.Beta(4, 12)
		if v < 0 || v > 1 {
			t.Fatalf("beta value out of range: %f", v)
		}
		sum += v
	}

	// mean of the beta distribution is a/(a+b)
	test.ExpectApproximate(t, sum/n, 0.25, 0.01)
}

func TestGamma(t *testing.T) {
	rnd := random.NewRandom(96917002)

	// mean of the gamma distribution is the shape
	for _, shape := range []float64{0.5, 1, 10} {
		const n = 20000
		var sum float64
		for range n {
			sum += rnd.Gamma(shape)
		}
		test.ExpectApproximate(t, sum/n, shape, shape*0.05, shape)
	}
}
