package halfblock

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RenderParallel renders the source into a frame using up to workers
// goroutines, one line per job. Rows are stored in order, so the result is
// identical to Render. If workers <= 0, runtime.NumCPU() is used. The only
// error returned is from ctx being done.
func RenderParallel(ctx context.Context, src PixelSource, color bool,
	workers int) (*Frame, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	frame := newFrame(src)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range frame.Rows {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			frame.Rows[i] = Line(src, i*2, color)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("halfblock: RenderParallel: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("halfblock: RenderParallel: %w", err)
	}

	return frame, nil
}
