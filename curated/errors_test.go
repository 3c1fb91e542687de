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

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	// duplicates further down the chain are also removed
	g := curated.Errorf("export: %v", curated.Errorf("export: %v", "permission denied"))
	test.ExpectEquality(t, g.Error(), "export: permission denied")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing testError into testErrorB. Is() should fail because the outer
	// pattern is testErrorB
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))

	// Has() should find testError somewhere in the chain
	test.ExpectSuccess(t, curated.Has(f, testError))
}

func TestIsAny(t *testing.T) {
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf(testError, "foo")))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("write: %v", os.ErrPermission)
	test.ExpectSuccess(t, errors.Is(e, os.ErrPermission))

	f := curated.Errorf(testError, "no error value")
	test.ExpectFailure(t, errors.Unwrap(f) != nil)
}
