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

package section

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mpltweaker/entry"
)

// Section is an ordered and named collection of entries. The list of entries
// is fixed at construction.
type Section struct {
	name    string
	entries []entry.Entry
}

// NewSection is the preferred method of initialisation for the Section type.
// The order of the entries is the order in which they are rendered and
// exported.
func NewSection(name string, entries ...entry.Entry) *Section {
	return &Section{
		name:    name,
		entries: entries,
	}
}

// Name of section. Used as the tab label.
func (s *Section) Name() string {
	return s.name
}

// Entries returns the entries in the section. The returned slice should not
// be modified.
func (s *Section) Entries() []entry.Entry {
	return s.entries
}

// Render every entry in order.
func (s *Section) Render(w entry.Widgets) {
	for _, e := range s.entries {
		e.Render(w)
	}
}

// HasPendingChange returns true if any entry is dirty.
func (s *Section) HasPendingChange() bool {
	for _, e := range s.entries {
		if e.IsDirty() {
			return true
		}
	}
	return false
}

// Acknowledge clears the dirty flag of every entry.
func (s *Section) Acknowledge() {
	for _, e := range s.entries {
		e.ClearDirty()
	}
}

// ResetAll resets every entry from the store, in order.
func (s *Section) ResetAll() {
	for _, e := range s.entries {
		e.ResetFromStore()
	}
}

// Export returns the style text for the section. Separators produce an empty
// line.
func (s *Section) Export() string {
	var b strings.Builder

	b.WriteString("## ")
	b.WriteString(strings.Repeat("*", 71))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("## * %-68s*\n", s.name))
	b.WriteString("## ")
	b.WriteString(strings.Repeat("*", 71))
	b.WriteString("\n")

	body := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		body = append(body, e.Describe())
	}
	b.WriteString(strings.Join(body, "\n"))

	return b.String()
}
