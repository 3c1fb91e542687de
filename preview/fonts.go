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

package preview

import (
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/jetsetilly/mpltweaker/fonts"
	"github.com/jetsetilly/mpltweaker/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// a regular and bold font
type fontPair struct {
	regular *truetype.Font
	bold    *truetype.Font
}

var goFonts fontPair
var goMonoFonts fontPair

func init() {
	goFonts.regular, _ = truetype.Parse(goregular.TTF)
	goFonts.bold, _ = truetype.Parse(gobold.TTF)
	goMonoFonts.regular, _ = truetype.Parse(gomono.TTF)
	goMonoFonts.bold, _ = truetype.Parse(gomonobold.TTF)
}

// parsed system fonts are kept for the lifetime of the program. the key is the
// path of the font file. a nil entry means that the file could not be used
var fontCache = struct {
	crit  sync.Mutex
	fonts map[string]*truetype.Font
}{
	fonts: make(map[string]*truetype.Font),
}

// loadFont returns the parsed font for the font file
func loadFont(pth string) *truetype.Font {
	fontCache.crit.Lock()
	defer fontCache.crit.Unlock()

	if f, ok := fontCache.fonts[pth]; ok {
		return f
	}

	data, err := os.ReadFile(pth)
	if err != nil {
		logger.Log(logger.Allow, "preview", err)
		fontCache.fonts[pth] = nil
		return nil
	}

	f, err := truetype.Parse(data)
	if err != nil {
		logger.Logf(logger.Allow, "preview", "%s: %v", pth, err)
		fontCache.fonts[pth] = nil
		return nil
	}

	fontCache.fonts[pth] = f
	return f
}

// findFonts returns the first family in the list that is in the index. the
// regular style is used for bold text if the family has no bold style, and
// the other way around. the fallback is used if none of the families can be
// found
func findFonts(idx *fonts.Index, families []string, fallback fontPair) fontPair {
	for _, n := range families {
		fam, ok := idx.Lookup(n)
		if !ok {
			continue
		}

		var p fontPair
		if fam.Regular != "" {
			p.regular = loadFont(fam.Regular)
		}
		if fam.Bold != "" {
			p.bold = loadFont(fam.Bold)
		}
		if p.regular == nil {
			p.regular = p.bold
		}
		if p.bold == nil {
			p.bold = p.regular
		}
		if p.regular != nil {
			return p
		}
	}
	return fallback
}

// typesetter creates font faces for a single canvas. font faces are not safe
// for concurrent use and so each canvas must have its own typesetter
type typesetter struct {
	text    fontPair
	mono    fontPair
	dpi     float64
	hinting font.Hinting
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
	mono bool
}

func newTypesetter(text fontPair, mono fontPair, dpi float64, hinting string) *typesetter {
	ts := &typesetter{
		text:  text,
		mono:  mono,
		dpi:   dpi,
		faces: make(map[faceKey]font.Face),
	}

	switch hinting {
	case "no_hinting", "none":
		ts.hinting = font.HintingNone
	case "no_autohint":
		ts.hinting = font.HintingVertical
	default:
		ts.hinting = font.HintingFull
	}

	return ts
}

// face returns a face for the size in points
func (ts *typesetter) face(size float64, bold bool, mono bool) font.Face {
	k := faceKey{size: size, bold: bold, mono: mono}
	if f, ok := ts.faces[k]; ok {
		return f
	}

	p := ts.text
	if mono {
		p = ts.mono
	}
	f := p.regular
	if bold {
		f = p.bold
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     ts.dpi,
		Hinting: ts.hinting,
	})
	ts.faces[k] = face

	return face
}

// close every face created by the typesetter
func (ts *typesetter) close() {
	for _, f := range ts.faces {
		f.Close()
	}
	clear(ts.faces)
}
