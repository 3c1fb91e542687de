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

// Package section groups entries into the named sections of the parameter
// panel. Each section corresponds to a part of the style parameter namespace
// and is shown as a tab.
//
// The schema functions (Figure, Axes, etc.) construct the sections used by
// the application. All() returns every section in the order they appear in
// the panel.
//
// The same store key can appear in more than one section. Each entry keeps
// its own copy of the value and so every section must be reset from the store
// when the store changes.
package section
