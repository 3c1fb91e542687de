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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application. It
// is written into the header of every exported style.
const ApplicationName = "mpl-theme-tweaker"

// Number is the version number of the application.
const Number = "0.1.0"

// revision contains the vcs revision. If the source has been modified but
// has not been committed then the revision string will be suffixed with
// "+dirty"
var revision string

// Version returns the version number and the revision string.
func Version() (string, string) {
	return Number, revision
}

func init() {
	revision = "no revision information"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision string
	var vcsModified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}
}
