package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fixfades/video/clip"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

// slowClip serves frames whose single sample is the frame index, with
// earlier frames taking longer so completion order is reversed.
type slowClip struct {
	n        int
	failAt   int
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (c *slowClip) VideoInfo() frame.VideoInfo {
	return frame.VideoInfo{Format: frame.GrayS, Width: 1, Height: 1, NumFrames: c.n}
}

func (c *slowClip) Frame(ctx context.Context, n int) (*frame.Frame, error) {
	cur := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		seen := c.maxSeen.Load()
		if cur <= seen || c.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}

	if n == c.failAt {
		return nil, errors.New("decode failed")
	}

	select {
	case <-time.After(time.Duration(c.n-n) * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	f := frame.NewFrame(frame.GrayS, 1, 1)
	f.Planes[0].Set(0, 0, float32(n))
	return f, nil
}

func TestRunOrdered(t *testing.T) {
	c := &slowClip{n: 20, failAt: -1}

	var got []int
	err := Run(context.Background(), c, 2, 15, 4, func(n int, f *frame.Frame) error {
		assert.Equal(t, float32(n), f.Planes[0].At(0, 0))
		got = append(got, n)
		return nil
	})
	require.NoError(t, err)

	want := make([]int, 15)
	for i := range want {
		want[i] = 2 + i
	}
	assert.Equal(t, want, got)
	assert.LessOrEqual(t, int(c.maxSeen.Load()), 5)
}

func TestRunSourceError(t *testing.T) {
	c := &slowClip{n: 10, failAt: 4}

	var delivered []int
	err := Run(context.Background(), c, 0, 10, 2, func(n int, _ *frame.Frame) error {
		delivered = append(delivered, n)
		return nil
	})
	require.EqualError(t, err, "decode failed")
	for _, n := range delivered {
		assert.Less(t, n, 4)
	}
}

func TestRunSinkError(t *testing.T) {
	c := &slowClip{n: 10, failAt: -1}
	stop := errors.New("stop")

	err := Run(context.Background(), c, 0, 10, 3, func(n int, _ *frame.Frame) error {
		if n == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
}

func TestRunRange(t *testing.T) {
	c := clip.NewSlice(frame.NewFrame(frame.GrayS, 1, 1))
	noop := func(int, *frame.Frame) error { return nil }

	require.ErrorIs(t, Run(context.Background(), c, 0, 2, 1, noop), clip.ErrFrameRange)
	require.ErrorIs(t, Run(context.Background(), c, -1, 1, 1, noop), clip.ErrFrameRange)
	require.NoError(t, Run(context.Background(), c, 0, 0, 1, noop))
	require.NoError(t, Run(context.Background(), c, 0, 1, 0, noop))
}

func TestRunCanceled(t *testing.T) {
	c := &slowClip{n: 50, failAt: -1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, c, 0, 50, 2, func(int, *frame.Frame) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
