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

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/mpltweaker/entry"
	"github.com/jetsetilly/mpltweaker/fonts"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// FontFamilies are the generic font families that can be given a list of
// font names.
var FontFamilies = []string{"serif", "sans-serif", "cursive", "fantasy", "monospace"}

// FontRows is the number of font names that can be given to each family.
const FontRows = 5

// NoFont is the first choice in every cell of the font table.
const NoFont = "None"

// SystemFonts returns the family names of the fonts installed on the system.
func SystemFonts() []string {
	return fonts.System().Names()
}

// the cells of the font table are enum entries bound to this store rather
// than to the style parameters. the table writes to the style parameters only
// when Apply() is called
type cellStore map[string]rcparams.Value

func (c cellStore) Get(key string) (rcparams.Value, bool) {
	v, ok := c[key]
	return v, ok
}

func (c cellStore) Set(key string, v rcparams.Value) {
	c[key] = v
}

// FontTable is a grid of font choices. There is one column for each of the
// FontFamilies and FontRows rows.
type FontTable struct {
	store   rcparams.Store
	choices []string

	cells cellStore

	// cells in column order
	columns [][]*entry.Enum

	// set by Apply()
	dirty bool
}

// NewFontTable is the preferred method of initialisation for the FontTable
// type. Duplicate names are removed and the names are sorted.
func NewFontTable(store rcparams.Store, names []string) *FontTable {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	sorted = slices.DeleteFunc(sorted, func(n string) bool {
		return n == NoFont || n == ""
	})

	t := &FontTable{
		store:   store,
		choices: append([]string{NoFont}, sorted...),
		cells:   make(cellStore),
	}

	for col, family := range FontFamilies {
		var cells []*entry.Enum
		for row := range FontRows {
			cells = append(cells, entry.NewEnum(t.cells,
				fmt.Sprintf("##font_%d_%d", row, col),
				cellKey(family, row),
				0, t.choices))
		}
		t.columns = append(t.columns, cells)
	}

	return t
}

func cellKey(family string, row int) string {
	return fmt.Sprintf("%s.%d", family, row)
}

// Choices returns the list of choices for each cell. The first choice is
// always NoFont.
func (t *FontTable) Choices() []string {
	return t.choices
}

// Family returns the font names currently selected for the family. Empty
// cells are not included.
func (t *FontTable) Family(family string) []string {
	idx := slices.Index(FontFamilies, family)
	if idx < 0 {
		return nil
	}

	var names []string
	for _, c := range t.columns[idx] {
		if c.Value() != NoFont {
			names = append(names, c.Value())
		}
	}
	return names
}

// Select sets the font name for a cell in the table. Returns false if the
// family, row or name is not valid.
func (t *FontTable) Select(family string, row int, name string) bool {
	col := slices.Index(FontFamilies, family)
	if col < 0 || row < 0 || row >= FontRows {
		return false
	}
	idx := slices.Index(t.choices, name)
	if idx < 0 {
		return false
	}
	t.columns[col][row].Commit(idx)
	return true
}

// Render the table and the apply button.
func (t *FontTable) Render(ui UI) {
	if ui.BeginTable("Font", len(FontFamilies)) {
		ui.TableHeaders(FontFamilies)
		for row := range FontRows {
			ui.TableNextRow()
			for col := range FontFamilies {
				ui.TableNextColumn()
				t.columns[col][row].Render(ui)
			}
		}
		ui.EndTable()
	}

	if ui.Button("Apply") {
		t.Apply()
	}
}

// Apply writes the font names of every family to the store.
func (t *FontTable) Apply() {
	for _, family := range FontFamilies {
		t.store.Set("font."+family, rcparams.StringList(t.Family(family)...))
	}
	t.dirty = true
}

// IsDirty returns true if Apply() has been called since the last call to
// ClearDirty().
func (t *FontTable) IsDirty() bool {
	return t.dirty
}

// ClearDirty clears the dirty flag of the table and of every cell.
func (t *FontTable) ClearDirty() {
	t.dirty = false
	for _, cells := range t.columns {
		for _, c := range cells {
			c.ClearDirty()
		}
	}
}

// ResetFromStore fills each column with the font names in the store. Names
// that are not in the list of choices are skipped. Unused cells are set to
// NoFont.
func (t *FontTable) ResetFromStore() {
	for col, family := range FontFamilies {
		var names []string

		if v, ok := t.store.Get("font." + family); ok {
			if l, ok := v.AsList(); ok {
				for _, n := range l {
					if s, ok := n.AsString(); ok {
						names = append(names, s)
					}
				}
			} else if s, ok := v.AsString(); ok {
				names = append(names, s)
			}
		}

		row := 0
		for _, n := range names {
			if row >= FontRows {
				break
			}
			if n == NoFont || !slices.Contains(t.choices, n) {
				continue
			}
			t.cells.Set(cellKey(family, row), rcparams.String(n))
			row++
		}
		for ; row < FontRows; row++ {
			t.cells.Set(cellKey(family, row), rcparams.String(NoFont))
		}

		for _, c := range t.columns[col] {
			c.ResetFromStore()
		}
	}
}
