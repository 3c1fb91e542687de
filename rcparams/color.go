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

package rcparams

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/mpltweaker/curated"
	"golang.org/x/image/colornames"
)

// RGBA is a colour with each channel in the range 0.0 to 1.0.
type RGBA [4]float64

// White is opaque white.
var White = RGBA{1, 1, 1, 1}

func channelByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Hex returns the colour in the form #rrggbbaa.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		channelByte(c[0]), channelByte(c[1]), channelByte(c[2]), channelByte(c[3]))
}

// RGBA8 returns the colour as four bytes.
func (c RGBA) RGBA8() (r, g, b, a uint8) {
	return channelByte(c[0]), channelByte(c[1]), channelByte(c[2]), channelByte(c[3])
}

// Differs returns true if any channel of the two colours differs by more than
// eps.
func (c RGBA) Differs(o RGBA, eps float64) bool {
	for i := range c {
		if math.Abs(c[i]-o[i]) > eps {
			return true
		}
	}
	return false
}

// WithAlpha returns a copy of the colour with the alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c[3] = a
	return c
}

// the tableau palette. this is also the default colour cycle
var tableau = []struct {
	name string
	hex  string
}{
	{"blue", "1f77b4"},
	{"orange", "ff7f0e"},
	{"green", "2ca02c"},
	{"red", "d62728"},
	{"purple", "9467bd"},
	{"brown", "8c564b"},
	{"pink", "e377c2"},
	{"gray", "7f7f7f"},
	{"olive", "bcbd22"},
	{"cyan", "17becf"},
}

// the single letter base colours
var baseColors = map[string]RGBA{
	"b": {0, 0, 1, 1},
	"g": {0, 0.5, 0, 1},
	"r": {1, 0, 0, 1},
	"c": {0, 0.75, 0.75, 1},
	"m": {0.75, 0, 0.75, 1},
	"y": {0.75, 0.75, 0, 1},
	"k": {0, 0, 0, 1},
	"w": {1, 1, 1, 1},
}

// DefaultCycle returns the colours of the default colour cycle.
func DefaultCycle() []RGBA {
	cycle := make([]RGBA, len(tableau))
	for i, t := range tableau {
		cycle[i], _ = parseHex(t.hex)
	}
	return cycle
}

func parseHex(s string) (RGBA, bool) {
	s = strings.TrimPrefix(s, "#")

	// expand short forms
	switch len(s) {
	case 3, 4:
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		s = b.String()
	case 6, 8:
	default:
		return RGBA{}, false
	}

	if len(s) == 6 {
		s += "ff"
	}

	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBA{}, false
	}

	return RGBA{
		float64((n>>24)&0xff) / 255,
		float64((n>>16)&0xff) / 255,
		float64((n>>8)&0xff) / 255,
		float64(n&0xff) / 255,
	}, true
}

// ParseColor decodes a Value into a colour. A Value of KindColor is returned
// as is. A Value of KindString can be:
//
//	a hex string with or without the leading #, with or without alpha
//	a CSS colour name
//	a single letter base colour (b, g, r, c, m, y, k, w)
//	a tableau colour (tab:blue, tab:orange, etc.)
//	a reference to the default colour cycle (C0 to C9)
//	a grey level between 0.0 and 1.0 (eg. "0.8")
//	the string "none" which is fully transparent
//
// A Value of KindList with three or four numeric elements is also accepted.
func ParseColor(v Value) (RGBA, error) {
	switch v.Kind() {
	case KindColor:
		c, _ := v.AsColor()
		return c, nil
	case KindString:
		s, _ := v.AsString()
		if c, ok := parseColorString(s); ok {
			return c, nil
		}
		return RGBA{}, curated.Errorf(ConversionError, "color", fmt.Sprintf("unrecognised colour %q", s))
	case KindList:
		l, _ := v.AsList()
		if len(l) == 3 || len(l) == 4 {
			c := RGBA{0, 0, 0, 1}
			for i, e := range l {
				f, ok := asNumber(e)
				if !ok || f < 0 || f > 1 {
					return RGBA{}, curated.Errorf(ConversionError, "color", fmt.Sprintf("bad channel %v", e))
				}
				c[i] = f
			}
			return c, nil
		}
	}
	return RGBA{}, curated.Errorf(ConversionError, "color", fmt.Sprintf("cannot use %s value", v.Kind()))
}

func parseColorString(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	l := strings.ToLower(s)

	if l == "none" {
		return RGBA{}, true
	}

	if c, ok := baseColors[l]; ok {
		return c, true
	}

	if name, ok := strings.CutPrefix(l, "tab:"); ok {
		if name == "grey" {
			name = "gray"
		}
		for _, t := range tableau {
			if t.name == name {
				return parseHex(t.hex)
			}
		}
		return RGBA{}, false
	}

	if len(s) == 2 && s[0] == 'C' && s[1] >= '0' && s[1] <= '9' {
		return parseHex(tableau[s[1]-'0'].hex)
	}

	if c, ok := colornames.Map[l]; ok {
		return RGBA{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}, true
	}

	if c, ok := parseHex(s); ok {
		return c, true
	}

	// grey level
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 && f <= 1 {
		return RGBA{f, f, f, 1}, true
	}

	return RGBA{}, false
}

// asNumber returns the value of a KindInt or KindFloat value as a float
func asNumber(v Value) (float64, bool) {
	if f, ok := v.AsFloat(); ok {
		return f, true
	}
	if i, ok := v.AsInt(); ok {
		return float64(i), true
	}
	if s, ok := v.AsString(); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return 0, false
}
