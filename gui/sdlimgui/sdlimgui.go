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
	"io"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/mpltweaker/assert"
	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/panel"
	"github.com/jetsetilly/mpltweaker/paths"
	"github.com/jetsetilly/mpltweaker/prefs"
	"github.com/jetsetilly/mpltweaker/preview"
	"github.com/jetsetilly/mpltweaker/rcparams"
	"github.com/veandco/go-sdl2/sdl"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "imgui.ini"

// SdlImgui is an sdl based host for the parameter panel using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	glsl    *glsl

	// the style being edited and the panel editing it
	store rcparams.Styler
	panel *panel.Panel

	// the implementation of panel.UI given to the panel every frame
	ui *widgets

	// the most recent render of the preview figure
	fig *figure

	// imgui window management
	wm *manager

	// polling encapsulates the programmatic communication to the service loop
	polling *polling

	// window geometry preferences
	prefs *prefs.Disk

	// closed when the user has asked to quit
	done chan struct{}

	// the goroutine that created the gui and which calls Service()
	guiRoutine uint64
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
// The panel is created by this function and the first replot is requested
// before returning.
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui(store rcparams.Styler, pnlPrefs *panel.Preferences, opts preview.Options) (*SdlImgui, error) {
	img := &SdlImgui{
		context:    imgui.CreateContext(nil),
		io:         imgui.CurrentIO(),
		store:      store,
		done:       make(chan struct{}),
		guiRoutine: assert.GoroutineID(),
	}

	// path to dear imgui ini file
	iniPath, err := paths.ResourcePath("", imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.glsl, err = newGlsl(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.polling = newPolling(img)
	img.ui = newWidgets()
	img.fig = newFigure(img, opts)
	img.panel = panel.NewPanel(store, pnlPrefs, panel.SystemFonts(), img.fig.replot)

	img.wm = newManager(img)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	err = img.initPrefs(pth)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.fig.replot()
	img.plt.window.Show()

	return img, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.fig.stop()
	img.glsl.destroy()

	err := img.plt.destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	img.context.Destroy()
}

// Done returns a channel that is closed when the user has asked to quit.
func (img *SdlImgui) Done() <-chan struct{} {
	return img.done
}

// Service implements GuiCreator interface.
func (img *SdlImgui) Service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()
	for ; ev != nil; ev = sdl.PollEvent() {
		if !img.plt.processEvent(ev) {
			img.quit()
		}
	}

	img.renderFrame()
}

func (img *SdlImgui) renderFrame() {
	img.plt.newFrame()
	imgui.NewFrame()
	img.wm.draw()
	imgui.Render()

	img.glsl.preRender()
	img.glsl.render()
	img.plt.postRender()
}

// quit saves the preferences and signals the launching goroutine. it is safe
// to call more than once.
func (img *SdlImgui) quit() {
	select {
	case <-img.done:
		return
	default:
	}
	img.savePrefs()
	close(img.done)
}

// applyStyle resets the store to the default state and applies the named
// style. the empty string or "default" applies no style.
func (img *SdlImgui) applyStyle(name string) {
	if name == "" || name == "default" {
		img.panel.ResetToDefault()
	} else {
		img.panel.ResetToNamedStyle(name)
	}
	img.polling.alert()
}

// export the style file. if the file can't be written the text is put on the
// clipboard instead
func (img *SdlImgui) export() {
	text, _, err := img.panel.ExportToFile()
	if err != nil {
		img.log(err)
		img.copyText(text)
	}
}

func (img *SdlImgui) copyToClipboard() {
	img.copyText(img.panel.ExportStyleText())
}

func (img *SdlImgui) copyText(text string) {
	err := sdl.SetClipboardText(text)
	if err != nil {
		img.log(err)
		return
	}
	logger.Log(logger.Allow, "sdlimgui", "style copied to clipboard")
}

// save the most recent render of the figure as a PNG file in the current
// directory
func (img *SdlImgui) saveFigure() {
	if img.fig.results == nil {
		return
	}
	pth := paths.UniqueFilename("figure", "", time.Now()) + ".png"
	err := preview.Save(img.fig.results.Image, pth)
	if err != nil {
		img.log(err)
		return
	}
	logger.Logf(logger.Allow, "sdlimgui", "figure saved to %s", pth)
}

func (img *SdlImgui) log(err error) {
	logger.Log(logger.Allow, "sdlimgui", err)
}
