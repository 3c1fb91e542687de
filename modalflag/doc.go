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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "export", "preview")
//	_, _ = md.Parse()
//
// Parse() processes the flags in the normal way but then checks to see if the
// first argument after the flags is one of the sub-modes. If it isn't then
// the first sub-mode is selected. Mode() returns the selected mode, always in
// upper case.
//
// Once a mode is selected NewMode() is called and the flags for that mode are
// added before parsing again:
//
//	switch md.Mode() {
//	case "EXPORT":
//		md.NewMode()
//		style := md.AddString("style", "default", "named style to export")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		export(*style, md.RemainingArgs())
//	}
//
// Modes can be nested as deeply as required. Path() returns every mode
// selected so far, separated by a forward slash.
package modalflag
