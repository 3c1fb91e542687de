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
	"github.com/jetsetilly/mpltweaker/logger"
)

const winLogID = "Log"

type winLog struct {
	windowManagement
	img *SdlImgui

	// number of entries at the previous frame. the window scrolls to the end
	// when the number changes
	numEntries int
}

func newWinLog(img *SdlImgui) managedWindow {
	return &winLog{
		img: img,
	}
}

func (win *winLog) id() string {
	return winLogID
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 640, Y: 680}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 760, Y: 200}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(winLogID, &win.open, imgui.WindowFlagsNone) {
		logger.BorrowLog(func(entries []logger.Entry) {
			var clipper imgui.ListClipper
			clipper.Begin(len(entries))
			for clipper.Step() {
				for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
					imgui.Text(entries[i].String())
				}
			}

			// scroll to end if there is a new entry
			if len(entries) != win.numEntries {
				imgui.SetScrollHereY(1.0)
				win.numEntries = len(entries)
			}
		})
	}
	imgui.End()
}
