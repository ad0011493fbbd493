// Package batch pulls a range of frames from a clip with bounded
// concurrency and hands them to a sink in frame order.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-fixfades/video/clip"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

// Sink receives frame n. Returning an error stops the run.
type Sink func(n int, f *frame.Frame) error

// Run requests frames first..first+count-1 from c with at most workers
// frames in flight (GOMAXPROCS when workers < 1) and calls sink for each
// in order. The first error from c or sink cancels the remaining work and
// is returned.
func Run(ctx context.Context, c clip.Clip, first, count, workers int, sink Sink) error {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	total := c.VideoInfo().NumFrames
	if first < 0 || count < 0 || first+count > total {
		return fmt.Errorf("batch: %w: range [%d, %d) exceeds %d frames", clip.ErrFrameRange, first, first+count, total)
	}

	g, ctx := errgroup.WithContext(ctx)

	// pending queues one result channel per requested frame, in order; its
	// capacity bounds the frames in flight.
	pending := make(chan chan *frame.Frame, workers)

	g.Go(func() error {
		defer close(pending)

		for i := 0; i < count; i++ {
			res := make(chan *frame.Frame, 1)
			select {
			case pending <- res:
			case <-ctx.Done():
				return ctx.Err()
			}

			n := first + i
			g.Go(func() error {
				f, err := c.Frame(ctx, n)
				if err != nil {
					return err
				}
				res <- f
				return nil
			})
		}
		return nil
	})

	g.Go(func() error {
		n := first
		for res := range pending {
			select {
			case f := <-res:
				if err := sink(n, f); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
			n++
		}
		return nil
	})

	return g.Wait()
}
