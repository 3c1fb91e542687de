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
	"strconv"
	"strings"

	"github.com/jetsetilly/mpltweaker/prefs"
)

const prefsGroup = "sdlimgui"

// window geometry and the open state of the managed windows are saved in the
// same file as the panel preferences. prefs.Disk preserves the entries it
// doesn't know about.
func (img *SdlImgui) initPrefs(pth string) error {
	var err error

	img.prefs, err = prefs.NewDisk(pth)
	if err != nil {
		return err
	}

	err = img.prefs.Add(fmt.Sprintf("%s.windowsize", prefsGroup), prefs.NewGeneric(
		func(s string) error {
			var w, h int32
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			if err != nil {
				return err
			}
			img.plt.window.SetSize(w, h)
			return nil
		},
		func() string {
			w, h := img.plt.window.GetSize()
			return fmt.Sprintf("%d,%d", w, h)
		},
	))
	if err != nil {
		return err
	}

	err = img.prefs.Add(fmt.Sprintf("%s.windowpos", prefsGroup), prefs.NewGeneric(
		func(s string) error {
			var x, y int32
			_, err := fmt.Sscanf(s, "%d,%d", &x, &y)
			if err != nil {
				return err
			}
			img.plt.window.SetPosition(x, y)
			return nil
		},
		func() string {
			x, y := img.plt.window.GetPosition()
			return fmt.Sprintf("%d,%d", x, y)
		},
	))
	if err != nil {
		return err
	}

	for _, id := range img.wm.order {
		w := img.wm.windows[id]
		key := fmt.Sprintf("%s.open.%s", prefsGroup, strings.ToLower(id))
		err = img.prefs.Add(key, prefs.NewGeneric(
			func(s string) error {
				open, err := strconv.ParseBool(s)
				if err != nil {
					return err
				}
				w.setOpen(open)
				return nil
			},
			func() string {
				return strconv.FormatBool(w.isOpen())
			},
		))
		if err != nil {
			return err
		}
	}

	// load preferences from disk. the file is created if it doesn't exist
	return img.prefs.Load(true)
}

func (img *SdlImgui) savePrefs() {
	err := img.prefs.Save()
	if err != nil {
		img.log(err)
	}
}
