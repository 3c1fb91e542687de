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

package rcparams

// Error patterns for the rcparams package and the entries that use
// it. Use with curated.Is() and curated.Has().
const (
	// ConversionError is used when a style value cannot be decoded into the
	// type required. Values: the key (or type name) and a description.
	ConversionError = "conversion: %s: %v"

	// StyleApplyError is used when a named style is unknown or malformed.
	// Values: the style name and the cause.
	StyleApplyError = "style: %s: %v"
)
