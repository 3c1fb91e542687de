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
	"math"

	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

type colorStop struct {
	pos float64
	hex string
}

// colour maps are approximated by linear interpolation between stops
var colormaps = map[string][]colorStop{
	"viridis":  evenStops("#440154", "#482777", "#3f4a8a", "#31678e", "#26838f", "#1f9d8a", "#6cce5a", "#b6de2b", "#fee825"),
	"plasma":   evenStops("#0d0887", "#5b02a3", "#9a179b", "#cb4678", "#eb7852", "#fbb32f", "#f0f921"),
	"inferno":  evenStops("#000004", "#320a5e", "#781b6c", "#bb3654", "#ec6824", "#fbb41a", "#fcffa4"),
	"magma":    evenStops("#000004", "#2c115f", "#721f81", "#b73779", "#f1605d", "#feb078", "#fcfdbf"),
	"cividis":  evenStops("#00224e", "#35456c", "#666970", "#948e77", "#c8b866", "#fee838"),
	"cool":     evenStops("#00ffff", "#ff00ff"),
	"coolwarm": evenStops("#3b4cc0", "#7b9ff9", "#c0d4f5", "#dddddd", "#f2cbb7", "#ee8468", "#b40426"),
	"binary":   evenStops("#ffffff", "#000000"),
	"gray":     evenStops("#000000", "#ffffff"),
	"hot": {
		{0.0, "#0b0000"},
		{0.365, "#ff0000"},
		{0.746, "#ffff00"},
		{1.0, "#ffffff"},
	},
	"jet": {
		{0.0, "#00007f"},
		{0.125, "#0000ff"},
		{0.375, "#00ffff"},
		{0.625, "#ffff00"},
		{0.875, "#ff0000"},
		{1.0, "#7f0000"},
	},
	"rainbow": {
		{0.0, "#8000ff"},
		{0.25, "#00b5eb"},
		{0.5, "#80ffb4"},
		{0.75, "#ffb360"},
		{1.0, "#ff0000"},
	},
}

func evenStops(hex ...string) []colorStop {
	stops := make([]colorStop, len(hex))
	for i, h := range hex {
		stops[i] = colorStop{pos: float64(i) / float64(len(hex)-1), hex: h}
	}
	return stops
}

type colormap struct {
	stops []rcparams.RGBA
	pos   []float64
	lut   int
}

// newColormap returns the named colour map quantised to lut levels. an
// unknown name is logged and viridis is used instead
func newColormap(name string, lut int) colormap {
	stops, ok := colormaps[name]
	if !ok {
		logger.Logf(logger.Allow, "preview", "unknown colour map: %s", name)
		stops = colormaps["viridis"]
	}

	cm := colormap{lut: lut}
	for _, s := range stops {
		c, err := rcparams.ParseColor(rcparams.String(s.hex))
		if err != nil {
			panic(err)
		}
		cm.stops = append(cm.stops, c)
		cm.pos = append(cm.pos, s.pos)
	}
	return cm
}

// at returns the colour for a value between 0 and 1
func (cm colormap) at(v float64) rcparams.RGBA {
	v = math.Max(0, math.Min(1, v))
	if cm.lut > 1 {
		v = math.Floor(v*float64(cm.lut-1)+0.5) / float64(cm.lut-1)
	}

	for i := 1; i < len(cm.pos); i++ {
		if v <= cm.pos[i] {
			t := (v - cm.pos[i-1]) / (cm.pos[i] - cm.pos[i-1])
			a := cm.stops[i-1]
			b := cm.stops[i]
			return rcparams.RGBA{
				a[0] + (b[0]-a[0])*t,
				a[1] + (b[1]-a[1])*t,
				a[2] + (b[2]-a[2])*t,
				1,
			}
		}
	}

	return cm.stops[len(cm.stops)-1]
}
