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
	"github.com/jetsetilly/mpltweaker/assert"
	"github.com/jetsetilly/mpltweaker/curated"
	"github.com/jetsetilly/mpltweaker/gui"
	"github.com/jetsetilly/mpltweaker/logger"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface. It must not be called from the
// gui thread.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if assert.SameGoroutine(img.guiRoutine) {
		return curated.Errorf("sdlimgui: feature request %v from the gui thread", request)
	}
	img.polling.featureSet <- featureRequest{request: request, args: args}
	return <-img.polling.featureSetErr
}

// SetFeatureNoError implements gui.GUI interface.
func (img *SdlImgui) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	go func() {
		err := img.SetFeature(request, args...)
		if err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
	}()
}

// featureRequests have been handed over to the featureSet channel. we service
// any requests on that channel here.
func (img *SdlImgui) serviceSetFeature(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			img.polling.featureSetErr <- curated.Errorf("sdlimgui: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqApplyStyle:
		img.applyStyle(request.args[0].(string))

	case gui.ReqExport:
		img.export()

	case gui.ReqQuit:
		img.quit()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	img.polling.featureSetErr <- err
}
