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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/mpltweaker/logger"
)

// DefaultPrefsFile is the name of the preferences file used by the
// application. It should be used with paths.ResourcePath().
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value on every line of the prefs file.
const KeySep = " :: "

// NoPrefsFile is returned by Load() when the prefs file does not exist.
var NoPrefsFile = errors.New("prefs: no prefs file")

// Disk represents preference values as stored on disk. Entries are added to
// the Disk with the Add() function. Values stored in the file that have not
// been added to the Disk instance are preserved when the file is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the filename used by the Disk.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. The key
// must not contain the key separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(KeySep)) || strings.ContainsAny(key, "\n\r") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values added to the Disk.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the prefs file into a map of key/value strings. returns NoPrefsFile
// if the file does not exist
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NoPrefsFile
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line == WarningBoilerPlate {
				continue
			}
		}
		kv := strings.SplitN(line, KeySep, 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return data, nil
}

// Save current preference values to disk. Values in the existing file that
// are unknown to this Disk instance are written back unchanged.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil && !errors.Is(err, NoPrefsFile) {
		return err
	}
	if data == nil {
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(KeySep)
		s.WriteString(data[k])
		s.WriteString("\n")
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If the prefs file does not exist and
// saveOnFail is true then the file is created with the current values.
//
// Values on the top of the command line stack (see PushCommandLineStack())
// take priority over the values in the file. A value from the command line
// that can't be set is an error. A value from the file that can't be set is
// logged and the preference keeps its current value.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := dsk.read()
	if err != nil {
		if !errors.Is(err, NoPrefsFile) {
			return err
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
			continue
		}
		if v, ok := data[k]; ok {
			// a bad value in the file keeps the current value
			if err := p.Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
			}
		}
	}

	return nil
}
