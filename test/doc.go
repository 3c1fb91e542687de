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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error and return false when the
// expectation is not met. The Demand functions are the same but stop the test
// immediately. Use a Demand function when the rest of the test depends on the
// value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. The nil value is considered a success. This is because of how errors
// usually work: nil indicates that there is no error.
//
// The writer types implement the io.Writer interface and should be used to
// capture output. CompareWriter keeps everything, RingWriter keeps only the
// most recent output and CappedWriter keeps only the earliest output.
package test
