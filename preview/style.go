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
	"fmt"

	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// relative font sizes. the scale is applied to font.size
var fontScale = map[string]float64{
	"xx-small": 0.579,
	"x-small":  0.694,
	"small":    0.833,
	"medium":   1.0,
	"large":    1.2,
	"x-large":  1.44,
	"xx-large": 1.728,
	"smaller":  0.833,
	"larger":   1.2,
}

// colour keys that take their colour from another key
var colorAliases = map[string]map[string]string{
	"auto": {
		"lines.markerfacecolor": "lines.color",
		"lines.markeredgecolor": "lines.color",
		"axes.edgecolor":        "lines.color",
		"axes.titlecolor":       "text.color",
	},
	"inherit": {
		"xtick.labelcolor": "xtick.color",
		"ytick.labelcolor": "ytick.color",
		"legend.facecolor": "axes.facecolor",
		"legend.edgecolor": "axes.edgecolor",
	},
}

type tickStyle struct {
	// ticks and labels. the first side is bottom or left, the second side is
	// top or right
	show   [2]bool
	labels [2]bool

	color      rcparams.RGBA
	labelColor rcparams.RGBA
	labelSize  float64
	inward     bool

	majorSize  float64
	majorWidth float64
	majorPad   float64

	minorVisible bool
	minorSize    float64
	minorWidth   float64
}

type legendStyle struct {
	loc        string
	frameOn    bool
	fancyBox   bool
	shadow     bool
	frameAlpha float64
	face       rcparams.RGBA
	edge       rcparams.RGBA
	labelColor rcparams.RGBA
	fontSize   float64

	borderPad     float64
	borderAxesPad float64
	labelSpacing  float64
	handleLength  float64
	handleTextPad float64
	markerScale   float64
	numPoints     int
}

// style is a snapshot of every parameter used by the renderer. sizes are in
// points unless noted otherwise
type style struct {
	dpi     float64
	figFace rcparams.RGBA
	figEdge rcparams.RGBA
	frame   bool

	suptitleSize float64
	suptitleBold bool

	left   float64
	right  float64
	bottom float64
	top    float64
	wspace float64
	hspace float64

	axFace      rcparams.RGBA
	axEdge      rcparams.RGBA
	axLineWidth float64

	// left, right, bottom, top
	spines [4]bool

	grid      bool
	gridColor rcparams.RGBA
	gridStyle string
	gridWidth float64
	gridAlpha float64
	gridAxis  string
	gridWhich string

	titleColor rcparams.RGBA
	titleSize  float64
	titleBold  bool
	titleLoc   string
	titlePad   float64
	titleY     float64

	labelColor rcparams.RGBA
	labelSize  float64
	labelBold  bool
	labelPad   float64

	xmargin      float64
	ymargin      float64
	autolimit    string
	unicodeMinus bool

	xtick tickStyle
	ytick tickStyle

	lineWidth       float64
	lineStyle       string
	marker          string
	markerSize      float64
	markerEdgeWidth float64
	markerFill      string

	// nil if the colour is taken from the line
	markerFace *rcparams.RGBA
	markerEdge *rcparams.RGBA

	cycle []rcparams.RGBA

	patchFace      rcparams.RGBA
	patchEdge      rcparams.RGBA
	patchLineWidth float64
	patchEdgeForce bool

	hatchColor rcparams.RGBA
	hatchWidth float64

	legend legendStyle

	cmap        string
	lut         int
	imageAspect string
	interp      string
	origin      string

	fontSize  float64
	fontBold  bool
	textColor rcparams.RGBA
	hinting   string

	// font names to try, in order of preference
	fonts     []string
	monoFonts []string
}

// reader decodes values from the store. values that cannot be decoded are
// logged and replaced with a fallback value
type reader struct {
	store rcparams.Store
}

func (r reader) fail(key string, detail any) {
	logger.Log(logger.Allow, "preview", curated.Errorf(rcparams.ConversionError, key, detail))
}

func (r reader) value(key string) (rcparams.Value, bool) {
	v, ok := r.store.Get(key)
	if !ok {
		r.fail(key, "key not in store")
	}
	return v, ok
}

func (r reader) float(key string, fallback float64) float64 {
	v, ok := r.value(key)
	if !ok {
		return fallback
	}
	if f, ok := v.AsFloat(); ok {
		return f
	}
	if i, ok := v.AsInt(); ok {
		return float64(i)
	}
	r.fail(key, fmt.Sprintf("not a float: %v", v))
	return fallback
}

func (r reader) int(key string, fallback int) int {
	v, ok := r.value(key)
	if !ok {
		return fallback
	}
	if i, ok := v.AsInt(); ok {
		return i
	}
	if f, ok := v.AsFloat(); ok {
		return int(f)
	}
	r.fail(key, fmt.Sprintf("not an integer: %v", v))
	return fallback
}

func (r reader) bool(key string, fallback bool) bool {
	v, ok := r.value(key)
	if !ok {
		return fallback
	}
	if b, ok := v.AsBool(); ok {
		return b
	}
	r.fail(key, fmt.Sprintf("not a bool: %v", v))
	return fallback
}

func (r reader) string(key string, fallback string) string {
	v, ok := r.value(key)
	if !ok {
		return fallback
	}
	if l, ok := v.AsList(); ok && len(l) > 0 {
		v = l[0]
	}
	if s, ok := v.AsString(); ok {
		return s
	}
	r.fail(key, fmt.Sprintf("not a string: %v", v))
	return fallback
}

func (r reader) strings(key string) []string {
	v, ok := r.value(key)
	if !ok {
		return nil
	}
	if s, ok := v.AsString(); ok {
		return []string{s}
	}
	var l []string
	if vs, ok := v.AsList(); ok {
		for _, e := range vs {
			if s, ok := e.AsString(); ok {
				l = append(l, s)
			}
		}
	}
	return l
}

// resolve colour aliases. returns false if the alias cannot be resolved
func (r reader) resolve(key string) (rcparams.Value, bool) {
	v, ok := r.value(key)
	if !ok {
		return v, false
	}
	for range 4 {
		s, ok := v.AsString()
		if !ok {
			return v, true
		}
		alias, ok := colorAliases[s]
		if !ok {
			return v, true
		}
		key, ok = alias[key]
		if !ok {
			return v, false
		}
		v, ok = r.value(key)
		if !ok {
			return v, false
		}
	}
	return v, true
}

func (r reader) color(key string, fallback rcparams.RGBA) rcparams.RGBA {
	v, ok := r.resolve(key)
	if !ok {
		return fallback
	}
	c, err := rcparams.ParseColor(v)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return c
}

// optional colour. returns nil if the value is "auto"
func (r reader) optColor(key string) *rcparams.RGBA {
	v, ok := r.value(key)
	if !ok {
		return nil
	}
	if s, ok := v.AsString(); ok && s == "auto" {
		return nil
	}
	c, err := rcparams.ParseColor(v)
	if err != nil {
		r.fail(key, err)
		return nil
	}
	return &c
}

// font size in points. the value can be a number or a relative size
func (r reader) fontSize(key string, base float64) float64 {
	v, ok := r.value(key)
	if !ok {
		return base
	}
	if f, ok := v.AsFloat(); ok {
		return f
	}
	if i, ok := v.AsInt(); ok {
		return float64(i)
	}
	if s, ok := v.AsString(); ok {
		if sc, ok := fontScale[s]; ok {
			return base * sc
		}
	}
	r.fail(key, fmt.Sprintf("not a font size: %v", v))
	return base
}

func (r reader) bold(key string) bool {
	switch r.string(key, "normal") {
	case "bold", "heavy", "semibold", "demibold", "demi", "black", "extra bold":
		return true
	}
	return false
}

func (r reader) cycle() []rcparams.RGBA {
	var cycle []rcparams.RGBA

	v, ok := r.value("axes.prop_cycle")
	if ok {
		l, _ := v.AsList()
		for _, e := range l {
			c, err := rcparams.ParseColor(e)
			if err != nil {
				r.fail("axes.prop_cycle", err)
				continue
			}
			cycle = append(cycle, c)
		}
	}

	if len(cycle) == 0 {
		return rcparams.DefaultCycle()
	}
	return cycle
}

// the font names for a family. generic family names are expanded using the
// font lists in the store
func (r reader) fontNames(family []string) []string {
	var names []string
	for _, f := range family {
		switch f {
		case "serif", "sans-serif", "cursive", "fantasy", "monospace":
			for _, n := range r.strings("font." + f) {
				if n != f {
					names = append(names, n)
				}
			}
		default:
			names = append(names, f)
		}
	}
	return names
}

func (r reader) ticks(axis string, first string, second string) tickStyle {
	return tickStyle{
		show:         [2]bool{r.bool(axis+"."+first, true), r.bool(axis+"."+second, false)},
		labels:       [2]bool{r.bool(axis+".label"+first, true), r.bool(axis+".label"+second, false)},
		color:        r.color(axis+".color", rcparams.RGBA{0, 0, 0, 1}),
		labelColor:   r.color(axis+".labelcolor", rcparams.RGBA{0, 0, 0, 1}),
		inward:       r.string(axis+".direction", "out") == "in",
		majorSize:    r.float(axis+".major.size", 3.5),
		majorWidth:   r.float(axis+".major.width", 0.8),
		majorPad:     r.float(axis+".major.pad", 3.5),
		minorVisible: r.bool(axis+".minor.visible", false),
		minorSize:    r.float(axis+".minor.size", 2.0),
		minorWidth:   r.float(axis+".minor.width", 0.6),
	}
}

// readStyle takes a snapshot of the store. the snapshot is never changed and
// can be shared by concurrent renderers
func readStyle(store rcparams.Store) *style {
	r := reader{store: store}
	black := rcparams.RGBA{0, 0, 0, 1}

	st := &style{}

	st.fontSize = r.float("font.size", 10.0)
	st.fontBold = r.bold("font.weight")
	st.textColor = r.color("text.color", black)
	st.hinting = r.string("text.hinting", "default")
	st.fonts = r.fontNames(r.strings("font.family"))
	st.monoFonts = r.fontNames([]string{"monospace"})

	st.dpi = r.float("figure.dpi", 100)
	st.figFace = r.color("figure.facecolor", rcparams.White)
	st.figEdge = r.color("figure.edgecolor", rcparams.White)
	st.frame = r.bool("figure.frameon", true)
	st.suptitleSize = r.fontSize("figure.titlesize", st.fontSize)
	st.suptitleBold = r.bold("figure.titleweight")

	st.left = r.float("figure.subplot.left", 0.125)
	st.right = r.float("figure.subplot.right", 0.9)
	st.bottom = r.float("figure.subplot.bottom", 0.11)
	st.top = r.float("figure.subplot.top", 0.88)
	st.wspace = r.float("figure.subplot.wspace", 0.2)
	st.hspace = r.float("figure.subplot.hspace", 0.2)

	st.axFace = r.color("axes.facecolor", rcparams.White)
	st.axEdge = r.color("axes.edgecolor", black)
	st.axLineWidth = r.float("axes.linewidth", 0.8)
	st.spines = [4]bool{
		r.bool("axes.spines.left", true),
		r.bool("axes.spines.right", true),
		r.bool("axes.spines.bottom", true),
		r.bool("axes.spines.top", true),
	}

	st.grid = r.bool("axes.grid", false)
	st.gridColor = r.color("grid.color", rcparams.RGBA{0.69, 0.69, 0.69, 1})
	st.gridStyle = r.string("grid.linestyle", "-")
	st.gridWidth = r.float("grid.linewidth", 0.8)
	st.gridAlpha = r.float("grid.alpha", 1.0)
	st.gridAxis = r.string("axes.grid.axis", "both")
	st.gridWhich = r.string("axes.grid.which", "major")

	st.titleColor = r.color("axes.titlecolor", st.textColor)
	st.titleSize = r.fontSize("axes.titlesize", st.fontSize)
	st.titleBold = r.bold("axes.titleweight")
	st.titleLoc = r.string("axes.titlelocation", "center")
	st.titlePad = r.float("axes.titlepad", 6.0)
	st.titleY = r.float("axes.titley", 1.0)

	st.labelColor = r.color("axes.labelcolor", black)
	st.labelSize = r.fontSize("axes.labelsize", st.fontSize)
	st.labelBold = r.bold("axes.labelweight")
	st.labelPad = r.float("axes.labelpad", 4.0)

	st.xmargin = r.float("axes.xmargin", 0.05)
	st.ymargin = r.float("axes.ymargin", 0.05)
	st.autolimit = r.string("axes.autolimit_mode", "data")
	st.unicodeMinus = r.bool("axes.unicode_minus", true)

	st.xtick = r.ticks("xtick", "bottom", "top")
	st.xtick.labelSize = r.fontSize("xtick.labelsize", st.fontSize)
	st.ytick = r.ticks("ytick", "left", "right")
	st.ytick.labelSize = r.fontSize("ytick.labelsize", st.fontSize)

	st.cycle = r.cycle()

	st.lineWidth = r.float("lines.linewidth", 1.5)
	st.lineStyle = r.string("lines.linestyle", "-")
	st.marker = r.string("lines.marker", "None")
	st.markerSize = r.float("lines.markersize", 6.0)
	st.markerEdgeWidth = r.float("lines.markeredgewidth", 1.0)
	st.markerFill = r.string("markers.fillstyle", "full")
	st.markerFace = r.optColor("lines.markerfacecolor")
	st.markerEdge = r.optColor("lines.markeredgecolor")

	st.patchFace = r.color("patch.facecolor", st.cycle[0])
	st.patchEdge = r.color("patch.edgecolor", black)
	st.patchLineWidth = r.float("patch.linewidth", 1.0)
	st.patchEdgeForce = r.bool("patch.force_edgecolor", false)

	st.hatchColor = r.color("hatch.color", black)
	st.hatchWidth = r.float("hatch.linewidth", 1.0)

	st.legend = legendStyle{
		loc:           r.string("legend.loc", "best"),
		frameOn:       r.bool("legend.frameon", true),
		fancyBox:      r.bool("legend.fancybox", true),
		shadow:        r.bool("legend.shadow", false),
		frameAlpha:    r.float("legend.framealpha", 0.8),
		face:          r.color("legend.facecolor", st.axFace),
		edge:          r.color("legend.edgecolor", rcparams.RGBA{0.8, 0.8, 0.8, 1}),
		labelColor:    r.color("legend.labelcolor", st.textColor),
		fontSize:      r.fontSize("legend.fontsize", st.fontSize),
		borderPad:     r.float("legend.borderpad", 0.4),
		borderAxesPad: r.float("legend.borderaxespad", 0.5),
		labelSpacing:  r.float("legend.labelspacing", 0.5),
		handleLength:  r.float("legend.handlelength", 2.0),
		handleTextPad: r.float("legend.handletextpad", 0.8),
		markerScale:   r.float("legend.markerscale", 1.0),
		numPoints:     max(1, r.int("legend.numpoints", 1)),
	}

	st.cmap = r.string("image.cmap", "viridis")
	st.lut = max(2, r.int("image.lut", 256))
	st.imageAspect = r.string("image.aspect", "equal")
	st.interp = r.string("image.interpolation", "nearest")
	st.origin = r.string("image.origin", "upper")

	return st
}

// colour from the colour cycle
func (st *style) cycleColor(i int) rcparams.RGBA {
	return st.cycle[i%len(st.cycle)]
}
