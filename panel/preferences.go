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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/prefs"
)

// StyleFileExtension is added to the style name to create the name of the
// exported file.
const StyleFileExtension = ".mplstyle"

// Preferences for the export of style files. The custom style directory is
// stored but is not used.
type Preferences struct {
	dsk *prefs.Disk

	StyleName        prefs.String
	NumericSuffix    prefs.Bool
	DownloadDir      prefs.String
	CustomStyleDir   prefs.String
	TargetDir        prefs.String
	DownloadToTarget prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the file at the path. The file
// is created if it doesn't exist.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.StyleName.SetHookPre(func(v prefs.Value) error {
		s := v.(string)
		if strings.ContainsAny(s, `/\`) || s == "." || s == ".." {
			return fmt.Errorf("invalid style name: %s", s)
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("export.stylename", &p.StyleName)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.numericsuffix", &p.NumericSuffix)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.downloaddir", &p.DownloadDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.customstyledir", &p.CustomStyleDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.targetdir", &p.TargetDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("export.downloadtotarget", &p.DownloadToTarget)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values. The download
// directory defaults to the Downloads directory in the user's home directory,
// or to the current directory if that doesn't exist.
func (p *Preferences) SetDefaults() {
	p.StyleName.Set("mytheme")
	p.NumericSuffix.Set(true)
	p.CustomStyleDir.Set("")
	p.TargetDir.Set("")
	p.DownloadToTarget.Set(false)

	p.DownloadDir.Set(".")
	if home, err := os.UserHomeDir(); err == nil {
		dl := filepath.Join(home, "Downloads")
		if fi, err := os.Stat(dl); err == nil && fi.IsDir() {
			p.DownloadDir.Set(dl)
		}
	}
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// ExportPath returns the path of the file to export the style to.
//
// The file is in the target directory if DownloadToTarget is true, otherwise
// it is in the download directory. If NumericSuffix is true and the file
// already exists then a number is added to the style name.
func (p *Preferences) ExportPath() (string, error) {
	name := p.StyleName.String()
	if name == "" {
		return "", errors.New("no style name")
	}

	dir := p.DownloadDir.String()
	if p.DownloadToTarget.Get().(bool) {
		dir = p.TargetDir.String()
	}
	if dir == "" {
		return "", errors.New("no export directory")
	}

	fi, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}

	pth := filepath.Join(dir, name+StyleFileExtension)
	if !p.NumericSuffix.Get().(bool) {
		return pth, nil
	}

	for i := 1; exists(pth); i++ {
		pth = filepath.Join(dir, fmt.Sprintf("%s_%d%s", name, i, StyleFileExtension))
	}

	return pth, nil
}

func exists(pth string) bool {
	_, err := os.Stat(pth)
	return !errors.Is(err, os.ErrNotExist)
}

// Render the preferences sub-panel.
func (p *Preferences) Render(ui UI) {
	ui.SeparatorText("Style Name")
	p.inputText(ui, "Style Name", "Style name", &p.StyleName)

	ui.SeparatorText("Duplicate name policy")
	suffix := p.NumericSuffix.Get().(bool)
	if ui.RadioButton("Overwrite", !suffix) {
		p.NumericSuffix.Set(false)
	}
	ui.SameLine()
	if ui.RadioButton("Numeric suffix", suffix) {
		p.NumericSuffix.Set(true)
	}

	ui.SeparatorText("Default Directory")
	p.inputText(ui, "Download", "download directory", &p.DownloadDir)
	p.inputText(ui, "Custom Style", "custom style directory", &p.CustomStyleDir)
	p.inputText(ui, "Target", "target directory", &p.TargetDir)

	toTarget := p.DownloadToTarget.Get().(bool)
	if ui.Checkbox("Download to Target", &toTarget) {
		p.DownloadToTarget.Set(toTarget)
	}

	if ui.Button("Save") {
		if err := p.Save(); err != nil {
			logger.Log(logger.Allow, "preferences", err)
		}
	}
}

func (p *Preferences) inputText(ui UI, label string, hint string, v *prefs.String) {
	s := v.String()
	if ui.InputTextWithHint(label, hint, &s) {
		if err := v.Set(s); err != nil {
			logger.Log(logger.Allow, "preferences", err)
		}
	}
}
