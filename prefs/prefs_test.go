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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mpltweaker/prefs"
	"github.com/jetsetilly/mpltweaker/test"
)

const tempFile = "mpltweaker_prefs_test"

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), tempFile)
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if !test.ExpectSuccess(t, err) {
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// a type that cannot be converted to a bool
	test.ExpectFailure(t, v.Set(1))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestFloat(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	test.ExpectSuccess(t, dsk.Add("float", &v))
	test.ExpectSuccess(t, v.Set("0.25"))
	test.ExpectEquality(t, v.Get().(float64), 0.25)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "float :: 0.250\n")

	test.ExpectFailure(t, v.Set("abc"))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(float64), 0.0)
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0

	// reload them from disk and check that the values have been restored
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. the
// second write should not clobber the results of the first write
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in the cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestLoadMissingFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("style", &s))
	test.ExpectSuccess(t, s.Set("ggplot"))

	// loading without saving leaves the file missing
	test.ExpectSuccess(t, dsk.Load(false))
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	// loading with saveOnFail creates the file
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "style :: ggplot\n")
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectFailure(t, dsk.Add("foo::bar", &s))
	test.ExpectFailure(t, dsk.Add("foo\nbar", &s))
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectFailure(t, dsk.Add("foo", &s))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestCommandLineOverride(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("style", &s))
	test.ExpectSuccess(t, s.Set("bmh"))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("style::ggplot")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, s.String(), "ggplot")
}

func TestLoadRejectedValue(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var name, style prefs.String
	test.ExpectSuccess(t, dsk.Add("name", &name))
	test.ExpectSuccess(t, dsk.Add("style", &style))
	test.ExpectSuccess(t, name.Set("a/b"))
	test.ExpectSuccess(t, style.Set("ggplot"))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var checkedName, checkedStyle prefs.String
	test.ExpectSuccess(t, checkedName.Set("default"))
	checkedName.SetHookPre(func(v prefs.Value) error {
		if strings.Contains(v.(string), "/") {
			return fmt.Errorf("invalid name")
		}
		return nil
	})
	test.ExpectSuccess(t, dsk.Add("name", &checkedName))
	test.ExpectSuccess(t, dsk.Add("style", &checkedStyle))

	// the rejected value doesn't stop the other values from loading
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, checkedName.String(), "default")
	test.ExpectEquality(t, checkedStyle.String(), "ggplot")

	// a rejected value from the command line is an error
	prefs.PushCommandLineStack("name::c/d")
	defer prefs.PopCommandLineStack()
	test.ExpectFailure(t, dsk.Load(false))
}

func TestHooks(t *testing.T) {
	var b prefs.Bool
	var seen []prefs.Value

	b.SetHookPre(func(v prefs.Value) error {
		if b.Get().(bool) == v.(bool) {
			return fmt.Errorf("no change")
		}
		return nil
	})
	b.SetHookPost(func(v prefs.Value) error {
		seen = append(seen, v)
		return nil
	})

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectFailure(t, b.Set(true))
	test.ExpectSuccess(t, b.Set(false))
	test.ExpectEquality(t, len(seen), 2)
}
