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

package entry

import (
	"fmt"
	"math"

	"github.com/jetsetilly/mpltweaker/rcparams"
)

// Int is an entry for an integer value.
type Int struct {
	base
	value    int
	limits   Limits
	step     int
	stepFast int
}

// NewInt is the preferred method of initialisation for the Int type.
func NewInt(store rcparams.Store, label string, key string, value int, limits Limits, step int, stepFast int, opts ...Option) *Int {
	return &Int{
		base:     newBase(store, label, key, opts),
		value:    value,
		limits:   limits,
		step:     step,
		stepFast: stepFast,
	}
}

// Value returns the current value of the entry.
func (e *Int) Value() int {
	return e.value
}

// Commit the value to the store after clamping. Returns false if the clamped
// value is unchanged.
func (e *Int) Commit(v int) bool {
	v = e.limits.clampInt(v)
	if v == e.value {
		return false
	}
	e.value = v
	e.commit(rcparams.Int(v))
	return true
}

// Render implements the Entry interface.
func (e *Int) Render(w Widgets) {
	e.layout(w)
	v := e.value
	if w.InputInt(e.label, &v, e.step, e.stepFast) {
		e.Commit(v)
	}
}

// ResetFromStore implements the Entry interface. Integral floats are
// accepted.
func (e *Int) ResetFromStore() {
	v, ok := e.lookup()
	if !ok {
		return
	}

	if i, ok := v.AsInt(); ok {
		e.value = i
		return
	}

	if f, ok := v.AsFloat(); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
		e.value = int(f)
		return
	}

	e.conversionFailed(fmt.Sprintf("not an integer: %v", v))
}

// Describe implements the Entry interface.
func (e *Int) Describe() string {
	return fmt.Sprintf("%s: %d", e.key, e.value)
}

// Float is an entry for a floating point value.
type Float struct {
	base
	value    float64
	limits   Limits
	step     float64
	stepFast float64
	format   string
}

// NewFloat is the preferred method of initialisation for the Float type. The
// format string is used by the widget only.
func NewFloat(store rcparams.Store, label string, key string, value float64, limits Limits, step float64, stepFast float64, format string, opts ...Option) *Float {
	return &Float{
		base:     newBase(store, label, key, opts),
		value:    value,
		limits:   limits,
		step:     step,
		stepFast: stepFast,
		format:   format,
	}
}

// Value returns the current value of the entry.
func (e *Float) Value() float64 {
	return e.value
}

// Commit the value to the store after clamping. Returns false if the clamped
// value is unchanged.
func (e *Float) Commit(v float64) bool {
	v = e.limits.clamp(v)
	if v == e.value {
		return false
	}
	e.value = v
	e.commit(rcparams.Float(v))
	return true
}

// Render implements the Entry interface.
func (e *Float) Render(w Widgets) {
	e.layout(w)
	v := e.value
	if w.InputFloat(e.label, &v, e.step, e.stepFast, e.format) {
		e.Commit(v)
	}
}

// ResetFromStore implements the Entry interface. Integers are accepted.
func (e *Float) ResetFromStore() {
	v, ok := e.lookup()
	if !ok {
		return
	}

	if f, ok := v.AsFloat(); ok {
		e.value = f
		return
	}

	if i, ok := v.AsInt(); ok {
		e.value = float64(i)
		return
	}

	e.conversionFailed(fmt.Sprintf("not a float: %v", v))
}

// Describe implements the Entry interface.
func (e *Float) Describe() string {
	return fmt.Sprintf("%s: %.4f", e.key, e.value)
}

// FloatPair is an entry for a pair of floating point values. The same limits
// are applied to both values.
type FloatPair struct {
	base
	value  [2]float64
	limits Limits
	format string
}

// NewFloatPair is the preferred method of initialisation for the FloatPair
// type.
func NewFloatPair(store rcparams.Store, label string, key string, value [2]float64, limits Limits, format string, opts ...Option) *FloatPair {
	return &FloatPair{
		base:   newBase(store, label, key, opts),
		value:  value,
		limits: limits,
		format: format,
	}
}

// Value returns the current value of the entry.
func (e *FloatPair) Value() [2]float64 {
	return e.value
}

// Commit the value to the store after clamping each component. Returns false
// if the clamped value is unchanged.
func (e *FloatPair) Commit(v [2]float64) bool {
	v[0] = e.limits.clamp(v[0])
	v[1] = e.limits.clamp(v[1])
	if v == e.value {
		return false
	}
	e.value = v
	e.commit(rcparams.Pair(v[0], v[1]))
	return true
}

// Render implements the Entry interface.
func (e *FloatPair) Render(w Widgets) {
	e.layout(w)
	v := e.value
	if w.InputFloat2(e.label, &v, e.format) {
		e.Commit(v)
	}
}

// ResetFromStore implements the Entry interface. Lists of two numbers are
// accepted.
func (e *FloatPair) ResetFromStore() {
	v, ok := e.lookup()
	if !ok {
		return
	}

	if p, ok := v.AsPair(); ok {
		e.value = p
		return
	}

	if l, ok := v.AsList(); ok && len(l) == 2 {
		var p [2]float64
		for i := range l {
			if f, ok := l[i].AsFloat(); ok {
				p[i] = f
			} else if n, ok := l[i].AsInt(); ok {
				p[i] = float64(n)
			} else {
				e.conversionFailed(fmt.Sprintf("not a number: %v", l[i]))
				return
			}
		}
		e.value = p
		return
	}

	e.conversionFailed(fmt.Sprintf("not a pair: %v", v))
}

// Describe implements the Entry interface.
func (e *FloatPair) Describe() string {
	return fmt.Sprintf("%s: %.4f, %.4f", e.key, e.value[0], e.value[1])
}
