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
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an event. the
// busy period is used while a preview render is in progress so that the
// result is displayed promptly.
const (
	busySleepPeriod = 20
	idleSleepPeriod = 500
)

type polling struct {
	img *SdlImgui

	// wake is used to preempt the timeout when we want the next frame to be
	// drawn immediately. for example, after a menu selection
	wake bool

	// functions that need to be performed in the main thread are queued for
	// serving by the service() function
	service chan func()

	// SetFeature() hands off requests to the featureSet channel for
	// servicing. think of these as special instances of the service chan
	featureSet    chan featureRequest
	featureSetErr chan error
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img:           img,
		service:       make(chan func(), 1),
		featureSet:    make(chan featureRequest, 1),
		featureSetErr: make(chan error, 1),
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

func (pol *polling) wait() sdl.Event {
	select {
	case f := <-pol.service:
		f()
		pol.wake = true
	case r := <-pol.featureSet:
		pol.img.serviceSetFeature(r)
		pol.wake = true
	default:
	}

	var timeout int

	if pol.wake {
		pol.wake = false
	} else if pol.img.fig.busy() {
		timeout = busySleepPeriod
	} else {
		timeout = idleSleepPeriod
	}

	// wait for new SDL event or until the selected timeout period has elapsed
	return sdl.WaitEventTimeout(timeout)
}
