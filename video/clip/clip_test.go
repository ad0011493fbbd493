package clip

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

func rampFrame(format *frame.Format, w, h int, offset float32) *frame.Frame {
	f := frame.NewFrame(format, w, h)
	for pi, p := range f.Planes {
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				p.Set(x, y, offset+float32(pi*1000+y*p.Width+x)/64)
			}
		}
	}
	return f
}

func TestSliceFrame(t *testing.T) {
	a := rampFrame(frame.GrayS, 4, 2, 0)
	b := rampFrame(frame.GrayS, 4, 2, 1)
	s := NewSlice(a, b)

	info := s.VideoInfo()
	assert.Equal(t, frame.GrayS, info.Format)
	assert.Equal(t, 4, info.Width)
	assert.Equal(t, 2, info.Height)
	assert.Equal(t, 2, info.NumFrames)

	got, err := s.Frame(context.Background(), 1)
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = s.Frame(context.Background(), 2)
	require.ErrorIs(t, err, ErrFrameRange)
	_, err = s.Frame(context.Background(), -1)
	require.ErrorIs(t, err, ErrFrameRange)
}

func TestSliceCanceledContext(t *testing.T) {
	s := NewSlice(rampFrame(frame.GrayS, 2, 2, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Frame(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewSliceWithInfoKeepsInfo(t *testing.T) {
	s := NewSliceWithInfo(frame.VideoInfo{Format: frame.Gray8, Width: 8, Height: 8})
	assert.Equal(t, frame.Gray8, s.VideoInfo().Format)
	assert.Equal(t, 0, s.VideoInfo().NumFrames)
}

func TestRawRoundTrip(t *testing.T) {
	frames := []*frame.Frame{
		rampFrame(frame.YUV420PS, 6, 4, 0),
		rampFrame(frame.YUV420PS, 6, 4, 0.25),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, f := range frames {
		require.NoError(t, w.WriteFrame(f))
	}
	require.EqualValues(t, 2*FrameBytes(frame.YUV420PS, 6, 4), buf.Len())

	// A trailing partial frame is ignored.
	buf.Write([]byte{1, 2, 3})

	r, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), frame.YUV420PS, 6, 4)
	require.NoError(t, err)
	require.Equal(t, 2, r.VideoInfo().NumFrames)

	for i, want := range frames {
		got, err := r.Frame(context.Background(), i)
		require.NoError(t, err)
		require.True(t, got.SameShape(want))
		for pi := range want.Planes {
			assert.Truef(t, got.Planes[pi].Equal(want.Planes[pi]), "frame %d plane %d differs", i, pi)
		}
	}

	_, err = r.Frame(context.Background(), 2)
	require.ErrorIs(t, err, ErrFrameRange)
}

func TestRawShortFrame(t *testing.T) {
	data := make([]byte, FrameBytes(frame.GrayS, 4, 4))
	// Claim more bytes than the reader holds.
	r, err := NewReader(bytes.NewReader(data[:10]), int64(len(data)), frame.GrayS, 4, 4)
	require.NoError(t, err)

	_, err = r.Frame(context.Background(), 0)
	require.ErrorIs(t, err, ErrShortFrame)
}

func TestRawRejectsNonFloat(t *testing.T) {
	_, err := NewReader(bytes.NewReader(nil), 0, frame.Gray8, 4, 4)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewReader(bytes.NewReader(nil), 0, frame.GrayH, 4, 4)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewReader(bytes.NewReader(nil), 0, frame.GrayS, 0, 4)
	require.Error(t, err)

	err = NewWriter(&bytes.Buffer{}).WriteFrame(&frame.Frame{Format: frame.Gray8})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
