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

package panel

import "github.com/jetsetilly/mpltweaker/entry"

// UI is the immediate-mode toolkit used by the panel. It extends the widgets
// needed by the entries with tab bars, tables and the simple controls used by
// the preferences and font sub-panels.
//
// The Begin*() functions return true if the contents of the tab bar, tab or
// table should be drawn. The matching End*() function is only called if the
// Begin*() function returned true.
type UI interface {
	entry.Widgets

	BeginTabBar(id string) bool
	EndTabBar()
	BeginTabItem(label string) bool
	EndTabItem()

	BeginTable(id string, columns int) bool
	TableHeaders(labels []string)
	TableNextRow()
	TableNextColumn()
	EndTable()

	Button(label string) bool
	InputTextWithHint(label string, hint string, value *string) bool
	RadioButton(label string, active bool) bool
}
