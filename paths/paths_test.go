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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/mpltweaker/paths"
	"github.com/jetsetilly/mpltweaker/test"
)

func TestPaths(t *testing.T) {
	// run the test from a temporary directory containing the base path
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Mkdir(".mpltweaker", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mpltweaker", "foo", "bar", "baz"))

	// sub-directory has been created
	_, err = os.Stat(filepath.Join(".mpltweaker", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mpltweaker", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mpltweaker", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".mpltweaker")
}

func TestUniqueFilename(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	test.ExpectEquality(t, paths.UniqueFilename("preview", "ggplot", ts), "preview_ggplot_20240309_140507")
	test.ExpectEquality(t, paths.UniqueFilename("preview", " ", ts), "preview_20240309_140507")
}
