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

// Package paths contains functions to prepare paths to mpltweaker resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the preferences file.
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The policy of ResourcePath() is simple: if the base resource path,
// ".mpltweaker", is present in the current directory then that is the base
// path that is used. Otherwise the user's config directory is used, as
// reported by os.UserConfigDir().
//
// In the example above, on a modern Linux system, the path returned will be:
//
//	/home/user/.config/mpltweaker/preferences
package paths
