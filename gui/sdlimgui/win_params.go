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
	"github.com/inkyblackness/imgui-go/v4"
)

const winParamsID = "Parameters"

// the parameter window contains the panel. the panel is advanced once per
// frame even when the window is collapsed so that pending changes are
// acknowledged.
type winParams struct {
	windowManagement
	img *SdlImgui
}

func newWinParams(img *SdlImgui) managedWindow {
	return &winParams{
		img: img,
	}
}

func (win *winParams) id() string {
	return winParamsID
}

func (win *winParams) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 30}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 620, Y: 700}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(winParamsID, &win.open, imgui.WindowFlagsNone) {
		win.img.panel.AdvanceFrame(win.img.ui)
	}
	imgui.End()
}
