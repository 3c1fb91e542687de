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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "entry", "bad value")
	log.Log(logger.Allow, "entry", "bad value")
	log.Log(logger.Allow, "entry", "bad value")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "entry: bad value (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for i := range 5 {
		log.Logf(logger.Allow, "tag", "%d", i)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\ntag: 4\n")
}

type prohibitLogging struct{}

func (prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	// "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

type stringerTest struct{}

func (stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\ntag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}

	log.Log(logger.Allow, "before", "echo")
	log.SetEcho(echo, true)
	test.ExpectEquality(t, echo.String(), "before: echo\n")

	log.Log(logger.Allow, "after", "echo")
	test.ExpectEquality(t, echo.String(), "before: echo\nafter: echo\n")

	// nothing new since the most recent echo
	w := &strings.Builder{}
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "silent", "entry")
	test.ExpectEquality(t, echo.String(), "before: echo\nafter: echo\n")

	log.BorrowLog(func(e []logger.Entry) {
		test.ExpectEquality(t, len(e), 3)
		test.ExpectEquality(t, e[2].Tag, "silent")
	})

}
