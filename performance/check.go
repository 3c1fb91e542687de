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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mpltweaker/logger"
	"github.com/jetsetilly/mpltweaker/preview"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// Results of a performance check.
type Results struct {
	Renders  int
	Duration time.Duration

	// the fastest and slowest individual render
	Fastest time.Duration
	Slowest time.Duration
}

// Average time taken for a single render.
func (r Results) Average() time.Duration {
	if r.Renders == 0 {
		return 0
	}
	return r.Duration / time.Duration(r.Renders)
}

func (r Results) String() string {
	return fmt.Sprintf("%d renders in %.2f seconds (avg %v, min %v, max %v)", r.Renders,
		r.Duration.Seconds(), r.Average().Round(time.Microsecond),
		r.Fastest.Round(time.Microsecond), r.Slowest.Round(time.Microsecond))
}

// Check the performance of the preview renderer. The figure is rendered
// repeatedly until the duration has elapsed. At least one render is always
// completed.
//
// A cpu or memory profile, a trace (or a combination of those) is created as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, store rcparams.Store, opts preview.Options, duration string) (Results, error) {
	var res Results

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dur)
	defer cancel()

	runner := func() error {
		start := time.Now()
		for {
			r, err := preview.Render(context.Background(), store, opts)
			if err != nil {
				return err
			}

			if res.Renders == 0 || r.Elapsed < res.Fastest {
				res.Fastest = r.Elapsed
			}
			if r.Elapsed > res.Slowest {
				res.Slowest = r.Elapsed
			}
			res.Renders++
			res.Duration = time.Since(start)

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return res, fmt.Errorf("performance: %w", err)
	}

	logger.Logf(logger.Allow, "performance", "%d renders", res.Renders)
	if output != nil {
		fmt.Fprintln(output, res.String())
	}

	return res, nil
}
