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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/mpltweaker/assert"
	"github.com/jetsetilly/mpltweaker/test"
)

func TestGoroutineID(t *testing.T) {
	id := assert.GoroutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectSuccess(t, assert.SameGoroutine(id))

	other := make(chan uint64)
	go func() {
		other <- assert.GoroutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}
