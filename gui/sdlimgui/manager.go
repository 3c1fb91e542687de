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

package sdlimgui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/mpltweaker/logger"
)

// managedWindow conceptualises the functions required by a window such that
// it can be managed by the window manager.
type managedWindow interface {
	id() string
	draw()
	isOpen() bool
	setOpen(bool)
}

// windowManagement implements the open/close part of the managedWindow
// interface.
type windowManagement struct {
	open bool
}

func (wm *windowManagement) isOpen() bool {
	return wm.open
}

func (wm *windowManagement) setOpen(open bool) {
	wm.open = open
}

// the main menus
const (
	menuFile    = "File"
	menuStyle   = "Style"
	menuWindows = "Windows"
)

type manager struct {
	img *SdlImgui

	// the collection of managed windows in the system, indexed by window title
	windows map[string]managedWindow

	// the order in which the windows appear in the windows menu
	order []string
}

func newManager(img *SdlImgui) *manager {
	wm := &manager{
		img:     img,
		windows: make(map[string]managedWindow),
	}

	for _, w := range []managedWindow{
		newWinParams(img),
		newWinFigure(img),
		newWinLog(img),
	} {
		wm.windows[w.id()] = w
		wm.order = append(wm.order, w.id())
		w.setOpen(true)
	}

	return wm
}

func (wm *manager) draw() {
	wm.drawMenu()
	for _, id := range wm.order {
		wm.windows[id].draw()
	}
}

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu(menuFile) {
		if imgui.Selectable("  Export") {
			wm.img.export()
		}
		if imgui.Selectable("  Copy to clipboard") {
			wm.img.copyToClipboard()
		}
		if imgui.Selectable("  Save figure") {
			wm.img.saveFigure()
		}
		imgui.Separator()
		if imgui.Selectable("  Quit") {
			wm.img.quit()
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuStyle) {
		if imgui.Selectable("  Default") {
			wm.img.applyStyle("")
		}
		imgui.Separator()
		for _, s := range wm.img.store.Styles() {
			if imgui.Selectable(fmt.Sprintf("  %s", s)) {
				logger.Logf(logger.Allow, "sdlimgui", "applying style %s", s)
				wm.img.applyStyle(s)
			}
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuWindows) {
		for _, id := range wm.order {
			drawMenuEntry(wm.windows[id], id)
		}
		imgui.EndMenu()
	}

	imgui.EndMainMenuBar()
}

func drawMenuEntry(w managedWindow, id string) {
	// decorate the menu entry with an "window open" indicator
	if w.isOpen() {
		// checkmark is unicode middle dot - code 00b7
		id = fmt.Sprintf("· %s", id)
	} else {
		id = fmt.Sprintf("  %s", id)
	}

	// window menu entries are toggleable
	if imgui.Selectable(id) {
		w.setOpen(!w.isOpen())
	}
}
