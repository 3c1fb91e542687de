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
	"context"

	"github.com/jetsetilly/mpltweaker/preview"
)

// figure manages the rendering of the preview. renders happen in a separate
// goroutine and the result is handed back to the gui thread through the
// polling service channel.
type figure struct {
	img  *SdlImgui
	opts preview.Options

	// the number of replots requested and the sequence number of the most
	// recent render to complete
	requested int
	completed int

	// cancels the render in progress
	cancel context.CancelFunc

	// the most recent successful render and the error from the most recent
	// render attempt
	results *preview.Results
	err     error
}

func newFigure(img *SdlImgui, opts preview.Options) *figure {
	return &figure{
		img:  img,
		opts: opts,
	}
}

// replot is the callback given to the panel. a render already in progress is
// cancelled because its result would be out of date.
//
// MUST ONLY be called from the gui thread.
func (fig *figure) replot() {
	fig.requested++
	seq := fig.requested

	if fig.cancel != nil {
		fig.cancel()
	}

	var ctx context.Context
	ctx, fig.cancel = context.WithCancel(context.Background())

	go func() {
		res, err := preview.Render(ctx, fig.img.store, fig.opts)
		if ctx.Err() != nil {
			return
		}
		select {
		case fig.img.polling.service <- func() {
			fig.update(seq, res, err)
		}:
		case <-ctx.Done():
		}
	}()
}

// update is called on the gui thread with the result of a render.
func (fig *figure) update(seq int, res *preview.Results, err error) {
	if seq < fig.completed {
		return
	}
	fig.completed = seq
	fig.err = err
	if err != nil {
		fig.img.log(err)
		return
	}
	fig.results = res
	fig.img.glsl.figureTexture.upload(res.Image)
}

// busy is true if a render has been requested and not yet completed.
func (fig *figure) busy() bool {
	return fig.completed < fig.requested
}

// stop any render in progress.
func (fig *figure) stop() {
	if fig.cancel != nil {
		fig.cancel()
		fig.cancel = nil
	}
}
