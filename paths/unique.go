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

package paths

import (
	"fmt"
	"strings"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The function does not check
// this. The timestamp argument should usually be time.Now().
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// If name is empty the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string, timestamp interface{ Format(string) string }) string {
	ts := timestamp.Format("20060102_150405")
	if n := strings.TrimSpace(name); n != "" {
		return fmt.Sprintf("%s_%s_%s", prepend, n, ts)
	}
	return fmt.Sprintf("%s_%s", prepend, ts)
}
