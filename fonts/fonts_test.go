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

package fonts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mpltweaker/fonts"
	"github.com/jetsetilly/mpltweaker/test"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	pth := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))
	return pth
}

func TestIndex(t *testing.T) {
	dir := t.TempDir()

	paths := []string{
		writeFont(t, dir, "Go-Regular.ttf", goregular.TTF),
		writeFont(t, dir, "Go-Bold.ttf", gobold.TTF),
		writeFont(t, dir, "Go-Italic.ttf", goitalic.TTF),
		writeFont(t, dir, "Go-Mono.ttf", gomono.TTF),
		writeFont(t, dir, "broken.ttf", []byte("not a font")),
		writeFont(t, dir, "ignored.txt", goregular.TTF),
	}

	idx := fonts.NewIndex(paths)

	// family names from the name table and not the file names. the styles
	// of a family are not listed separately
	names := idx.Names()
	test.DemandEquality(t, len(names), 2)
	test.ExpectEquality(t, names[0], "Go")
	test.ExpectEquality(t, names[1], "Go Mono")

	f, ok := idx.Lookup("go")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, f.Name, "Go")
	test.ExpectEquality(t, f.Regular, paths[0])
	test.ExpectEquality(t, f.Bold, paths[1])

	f, ok = idx.Lookup("Go Mono")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, f.Regular, paths[3])
	test.ExpectEquality(t, f.Bold, "")

	_, ok = idx.Lookup("Go-Regular")
	test.ExpectFailure(t, ok)
}
