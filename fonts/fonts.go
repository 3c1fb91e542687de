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

// Package fonts indexes the font files installed on the system by family
// name. The family name is read from the name table of each font file, which
// is the name used by the font lists in the style parameters.
//
// Only truetype outlines are indexed. Font files that can't be parsed are
// skipped.
package fonts

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"github.com/jetsetilly/mpltweaker/logger"
)

// Family is a font family and the files for its regular and bold styles.
// Either path may be empty but not both.
type Family struct {
	Name    string
	Regular string
	Bold    string
}

// Index of font families. Family names are matched without regard to case.
type Index struct {
	families map[string]*Family
}

// NewIndex parses each font file and creates an index of the families found.
// The first file found for a family style is used.
func NewIndex(paths []string) *Index {
	idx := &Index{
		families: make(map[string]*Family),
	}

	for _, pth := range paths {
		if strings.ToLower(filepath.Ext(pth)) != ".ttf" {
			continue
		}

		data, err := os.ReadFile(pth)
		if err != nil {
			logger.Logf(logger.Allow, "fonts", "%s: %v", pth, err)
			continue
		}

		f, err := truetype.Parse(data)
		if err != nil {
			logger.Logf(logger.Allow, "fonts", "%s: %v", pth, err)
			continue
		}

		idx.add(f.Name(truetype.NameIDFontFamily), f.Name(truetype.NameIDFontSubfamily), pth)
	}

	return idx
}

func (idx *Index) add(family string, subfamily string, pth string) {
	family = strings.TrimSpace(family)
	if family == "" {
		return
	}

	key := strings.ToLower(family)
	fam, ok := idx.families[key]
	if !ok {
		fam = &Family{Name: family}
		idx.families[key] = fam
	}

	switch strings.ToLower(strings.TrimSpace(subfamily)) {
	case "regular", "normal", "book", "roman", "":
		if fam.Regular == "" {
			fam.Regular = pth
		}
	case "bold":
		if fam.Bold == "" {
			fam.Bold = pth
		}
	}

	// families with only italic or other styles are not useful
	if fam.Regular == "" && fam.Bold == "" {
		delete(idx.families, key)
	}
}

// Names returns the sorted list of family names in the index.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.families))
	for _, f := range idx.families {
		names = append(names, f.Name)
	}
	slices.Sort(names)
	return names
}

// Lookup the named family.
func (idx *Index) Lookup(family string) (Family, bool) {
	f, ok := idx.families[strings.ToLower(strings.TrimSpace(family))]
	if !ok {
		return Family{}, false
	}
	return *f, true
}

var system struct {
	once sync.Once
	idx  *Index
}

// System returns the index of fonts installed on the system. The index is
// created on first use.
func System() *Index {
	system.once.Do(func() {
		system.idx = NewIndex(findfont.List())
		logger.Logf(logger.Allow, "fonts", "%d font families found", len(system.idx.families))
	})
	return system.idx
}
