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
	"strconv"
	"strings"
)

// Kind of value held by a Value.
type Kind int

// List of valid Kind values.
const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindPair
	KindString
	KindList
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindPair:
		return "pair"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindColor:
		return "color"
	}
	return "unknown"
}

// Value is a single style parameter. The zero value is of KindNone.
//
// Values are created with one of the constructor functions and decoded with
// the accessor of the same name. Accessors return false if the Value is not
// of the matching Kind. No coercion between kinds is performed by a Value.
type Value struct {
	kind  Kind
	b     bool
	i     int
	f     float64
	pair  [2]float64
	s     string
	list  []Value
	color RGBA
}

// Bool creates a new Value of KindBool.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int creates a new Value of KindInt.
func Int(i int) Value {
	return Value{kind: KindInt, i: i}
}

// Float creates a new Value of KindFloat.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Pair creates a new Value of KindPair.
func Pair(a, b float64) Value {
	return Value{kind: KindPair, pair: [2]float64{a, b}}
}

// String creates a new Value of KindString.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List creates a new Value of KindList. The list is copied.
func List(l ...Value) Value {
	return Value{kind: KindList, list: append([]Value{}, l...)}
}

// StringList creates a new Value of KindList where every element is of
// KindString.
func StringList(l ...string) Value {
	v := Value{kind: KindList, list: make([]Value, len(l))}
	for i, s := range l {
		v.list[i] = String(s)
	}
	return v
}

// Color creates a new Value of KindColor.
func Color(c RGBA) Value {
	return Value{kind: KindColor, color: c}
}

// Kind returns the kind of the Value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNone returns true if the Value is of KindNone.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// AsBool returns the boolean held by a Value of KindBool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by a Value of KindInt.
func (v Value) AsInt() (int, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float held by a Value of KindFloat.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsPair returns the two floats held by a Value of KindPair.
func (v Value) AsPair() ([2]float64, bool) {
	return v.pair, v.kind == KindPair
}

// AsString returns the string held by a Value of KindString.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsList returns a copy of the elements of a Value of KindList.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]Value{}, v.list...), true
}

// AsColor returns the colour held by a Value of KindColor.
func (v Value) AsColor() (RGBA, bool) {
	return v.color, v.kind == KindColor
}

// Equal returns true if both values are of the same kind and hold the same
// value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindPair:
		return v.pair == o.pair
	case KindString:
		return v.s == o.s
	case KindColor:
		return v.color == o.color
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value using the syntax of a style file.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindPair:
		return fmt.Sprintf("%s, %s", strconv.FormatFloat(v.pair[0], 'g', -1, 64),
			strconv.FormatFloat(v.pair[1], 'g', -1, 64))
	case KindString:
		return v.s
	case KindList:
		s := make([]string, len(v.list))
		for i := range v.list {
			s[i] = v.list[i].String()
		}
		return strings.Join(s, ", ")
	case KindColor:
		return v.color.Hex()
	}
	return "None"
}
