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
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/mpltweaker/curated"
)

// Store is the interface to the style parameters used by entries and the
// preview renderer.
type Store interface {
	Get(key string) (Value, bool)
	Set(key string, v Value)
}

// Styler is a Store that also knows about the library defaults and the named
// styles.
type Styler interface {
	Store

	// Reset the store to the library defaults
	Reset()

	// Use overlays the named style onto the store. The name "default" is the
	// same as a call to Reset()
	Use(name string) error

	// Styles returns the list of named styles that can be used with Use()
	Styles() []string
}

// DefaultStyle is the name that can be used with Use() to reset the store.
const DefaultStyle = "default"

//go:embed styles/*.toml
var embeddedStyles embed.FS

// Params is the concrete implementation of the Styler interface. It is safe
// to use from more than one goroutine.
type Params struct {
	crit   sync.RWMutex
	values map[string]Value

	// named styles are read from this filesystem. each style is a TOML file
	// with the .toml extension in the root of the filesystem
	styles fs.FS
}

// NewParams is the preferred method of initialisation for the Params type.
// The new instance will be in the library default state.
func NewParams() *Params {
	sub, err := fs.Sub(embeddedStyles, "styles")
	if err != nil {
		panic(err)
	}
	return NewParamsWithStyles(sub)
}

// NewParamsWithStyles creates a new Params instance using a different source
// of named styles.
func NewParamsWithStyles(styles fs.FS) *Params {
	p := &Params{
		styles: styles,
	}
	p.Reset()
	return p
}

// Get implements the Store interface.
func (p *Params) Get(key string) (Value, bool) {
	p.crit.RLock()
	defer p.crit.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

// Set implements the Store interface.
func (p *Params) Set(key string, v Value) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.values[key] = v
}

// Reset implements the Styler interface.
func (p *Params) Reset() {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.values = defaults()
}

// Keys returns all the keys in the store in sorted order.
func (p *Params) Keys() []string {
	p.crit.RLock()
	defer p.crit.RUnlock()

	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Styles implements the Styler interface. Styles with names beginning with an
// underscore are not listed but can still be used.
func (p *Params) Styles() []string {
	files, err := fs.Glob(p.styles, "*.toml")
	if err != nil {
		return nil
	}

	var names []string
	for _, f := range files {
		n := strings.TrimSuffix(path.Base(f), ".toml")
		if strings.HasPrefix(n, "_") {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// style is the structure of a named style file
type style struct {
	Params map[string]any `toml:"params"`
}

// Use implements the Styler interface.
//
// The style is decoded completely before any change is made to the store. If
// the style is unknown or malformed then the store is left as it was.
func (p *Params) Use(name string) error {
	if name == DefaultStyle {
		p.Reset()
		return nil
	}

	data, err := fs.ReadFile(p.styles, name+".toml")
	if err != nil {
		return curated.Errorf(StyleApplyError, name, "unknown style")
	}

	var st style
	if _, err := toml.Decode(string(data), &st); err != nil {
		return curated.Errorf(StyleApplyError, name, err)
	}

	// the keys of the library defaults are the only keys allowed in a style
	known := defaults()

	staged := make(map[string]Value, len(st.Params))
	for k, v := range st.Params {
		if _, ok := known[k]; !ok {
			return curated.Errorf(StyleApplyError, name, fmt.Sprintf("unknown key %q", k))
		}
		sv, err := fromTOML(v)
		if err != nil {
			return curated.Errorf(StyleApplyError, name, fmt.Errorf("%s: %w", k, err))
		}
		staged[k] = sv
	}

	p.crit.Lock()
	defer p.crit.Unlock()
	for k, v := range staged {
		p.values[k] = v
	}

	return nil
}

// fromTOML converts a value decoded by the toml package into a Value
func fromTOML(v any) (Value, error) {
	switch v := v.(type) {
	case bool:
		return Bool(v), nil
	case int64:
		return Int(int(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []any:
		l := make([]Value, 0, len(v))
		for _, e := range v {
			ev, err := fromTOML(e)
			if err != nil {
				return Value{}, err
			}
			if ev.Kind() == KindList {
				return Value{}, fmt.Errorf("nested lists are not allowed")
			}
			l = append(l, ev)
		}
		return List(l...), nil
	}
	return Value{}, fmt.Errorf("unsupported type %T", v)
}
