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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a formatting
// pattern, placeholder values and returns an error. The pattern is what
// identifies the error. Patterns that the rest of the program needs to test
// for should be stored as exported string constants. For example, the rcparams
// package declares:
//
//	const ConversionError = "conversion: %s: %v"
//
// and a caller can then test for it:
//
//	if curated.Is(err, rcparams.ConversionError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(rcparams.ConversionError, "figure.dpi", "not a float")
//	f := curated.Errorf("reset: %v", e)
//
//	curated.Has(f, rcparams.ConversionError) // true
//	curated.Is(f, rcparams.ConversionError)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of curated errors as 'expected' errors and
// other errors as 'unexpected'.
//
// Error() normalises the chain so that it does not contain duplicate
// adjacent parts. A chain is made up of parts separated by the sub-string
// ": ". This means a function can wrap an error with a context it shares with
// the function that created the error without the message stuttering:
//
//	export: export: permission denied
//
// is printed as:
//
//	export: permission denied
package curated
