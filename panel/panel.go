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
	"os"
	"strings"

	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/jetsetilly/mpltweaker/section"
	"github.com/jetsetilly/mpltweaker/version"
)

// the tab labels of the sub-panels. the section tabs are between these two
const (
	PreferencesTab = "Preferences"
	FontTab        = "Font"
)

// Panel is the parameter panel. It owns the sections and the sub-panels and
// calls the replot function at most once per frame.
type Panel struct {
	store  rcparams.Styler
	replot func()

	sections []*section.Section
	fonts    *FontTable
	prefs    *Preferences
}

// NewPanel is the preferred method of initialisation for the Panel type.
//
// The replot function is called whenever the store has changed. The font
// names are the choices offered by the font table. The store is reset to the
// default state and the entries are synchronised, but the replot function is
// not called.
func NewPanel(store rcparams.Styler, prefs *Preferences, fontNames []string, replot func()) *Panel {
	p := &Panel{
		store:    store,
		replot:   replot,
		sections: section.All(store),
		fonts:    NewFontTable(store, fontNames),
		prefs:    prefs,
	}

	p.store.Reset()
	p.ResetFromStore(false)

	return p
}

// Sections returns the sections in tab order.
func (p *Panel) Sections() []*section.Section {
	return p.sections
}

// Fonts returns the font table sub-panel.
func (p *Panel) Fonts() *FontTable {
	return p.fonts
}

// Preferences returns the preferences sub-panel.
func (p *Panel) Preferences() *Preferences {
	return p.prefs
}

// AdvanceFrame should be called once per frame by the GUI. Only the open tab is
// drawn and so only entries in the open tab can change. If any entry or the
// font table has changed then the replot function is called exactly once.
func (p *Panel) AdvanceFrame(ui UI) {
	// render
	if ui.BeginTabBar("RcParams") {
		if ui.BeginTabItem(PreferencesTab) {
			p.prefs.Render(ui)
			ui.EndTabItem()
		}
		for _, s := range p.sections {
			if ui.BeginTabItem(s.Name()) {
				s.Render(ui)
				ui.EndTabItem()
			}
		}
		if ui.BeginTabItem(FontTab) {
			p.fonts.Render(ui)
			ui.EndTabItem()
		}
		ui.EndTabBar()
	}

	// aggregate
	dirty := p.fonts.IsDirty()
	for _, s := range p.sections {
		if s.HasPendingChange() {
			dirty = true
		}
	}

	// notify
	if dirty {
		p.replot()
	}

	// acknowledge. every section is acknowledged, not just the open one
	for _, s := range p.sections {
		s.Acknowledge()
	}
	p.fonts.ClearDirty()
}

// ResetFromStore synchronises every entry and the font table with the store.
// The replot function is called if notify is true.
func (p *Panel) ResetFromStore(notify bool) {
	for _, s := range p.sections {
		s.ResetAll()
	}
	p.fonts.ResetFromStore()

	if notify {
		p.replot()
	}
}

// ResetToDefault resets the store to the default state.
func (p *Panel) ResetToDefault() {
	p.store.Reset()
	p.ResetFromStore(true)
}

// ResetToNamedStyle resets the store to the default state and then applies
// the named style. If the style cannot be applied the store is left in the
// default state and the error is logged. The entries are synchronised and
// the replot function is called in either case.
func (p *Panel) ResetToNamedStyle(name string) {
	p.store.Reset()
	if err := p.store.Use(name); err != nil {
		logger.Log(logger.Allow, "panel", err)
	}
	p.ResetFromStore(true)
}

// Header is the first line of the exported style text.
var Header = "## written by " + version.ApplicationName + ", version " + version.Number + "\n"

// ExportStyleText returns the style text for every section.
func (p *Panel) ExportStyleText() string {
	var b strings.Builder
	b.WriteString(Header)
	for _, s := range p.sections {
		b.WriteString(s.Export())
		b.WriteString("\n\n")
	}
	return b.String()
}

// ExportToFile writes the style text to the path given by the preferences.
// The text is returned even if the file could not be written.
func (p *Panel) ExportToFile() (string, string, error) {
	text := p.ExportStyleText()

	pth, err := p.prefs.ExportPath()
	if err != nil {
		return text, "", curated.Errorf(ExportWriteError, err)
	}

	err = os.WriteFile(pth, []byte(text), 0o644)
	if err != nil {
		return text, pth, curated.Errorf(ExportWriteError, err)
	}

	logger.Logf(logger.Allow, "panel", "style exported to %s", pth)

	return text, pth, nil
}
