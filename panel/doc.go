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

// Package panel is the parameter panel. It presents the sections as tabs,
// along with a preferences tab and a font table tab.
//
// The GUI should call AdvanceFrame() once per frame. Each frame has four
// phases which always happen in the same order:
//
//  1. the tab bar is drawn along with the contents of the open tab
//  2. every section and the font table is checked for changes
//  3. the replot function is called if there were any changes
//  4. the change flags of every section and of the font table are cleared
//
// No matter how many entries are changed in a frame the replot function is
// called at most once. Changes can only come from the open tab.
//
// The store can also be reset with ResetToDefault() and ResetToNamedStyle().
// These functions always call the replot function.
package panel
