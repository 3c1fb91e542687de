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
)

const winFigureID = "Figure"

type winFigure struct {
	windowManagement
	img *SdlImgui
}

func newWinFigure(img *SdlImgui) managedWindow {
	return &winFigure{
		img: img,
	}
}

func (win *winFigure) id() string {
	return winFigureID
}

func (win *winFigure) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 640, Y: 30}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 760, Y: 640}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(winFigureID, &win.open, imgui.WindowFlagsNone) {
		win.drawStatus()
		win.drawImage()
	}
	imgui.End()
}

func (win *winFigure) drawStatus() {
	fig := win.img.fig

	imgui.Text(fmt.Sprintf("replots: %d", fig.requested))
	if fig.results != nil {
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("render time: %.0fms", float64(fig.results.Elapsed.Microseconds())/1000))
	}
	if fig.busy() {
		imgui.SameLine()
		imgui.Text("rendering...")
	}
	if fig.err != nil {
		imgui.Text(fig.err.Error())
	}
	imgui.Separator()
}

// the figure is scaled to fit the available space. the aspect ratio is
// preserved
func (win *winFigure) drawImage() {
	tex := win.img.glsl.figureTexture
	if win.img.fig.results == nil || tex.width == 0 || tex.height == 0 {
		return
	}

	avail := imgui.ContentRegionAvail()
	scale := avail.X / float32(tex.width)
	if s := avail.Y / float32(tex.height); s < scale {
		scale = s
	}
	if scale <= 0 {
		return
	}

	imgui.Image(imgui.TextureID(tex.id), imgui.Vec2{X: float32(tex.width) * scale, Y: float32(tex.height) * scale})
}
