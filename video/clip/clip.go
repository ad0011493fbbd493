// Package clip defines the boundary between a video host and the filters
// that consume and produce frame sequences, along with two concrete hosts:
// an in-memory Slice and a raw planar float32 file Reader.
package clip

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

var (
	// ErrFrameRange is returned for a frame index outside the clip.
	ErrFrameRange = errors.New("clip: frame index out of range")
	// ErrShortFrame is returned when raw input ends inside a frame.
	ErrShortFrame = errors.New("clip: short frame")
	// ErrUnsupportedFormat is returned for formats raw I/O cannot carry.
	ErrUnsupportedFormat = errors.New("clip: unsupported format")
)

// Clip is a random-access frame sequence. Implementations must be safe for
// concurrent Frame calls. Returned frames must not be mutated by callers.
type Clip interface {
	VideoInfo() frame.VideoInfo
	Frame(ctx context.Context, n int) (*frame.Frame, error)
}

// Slice is an in-memory clip backed by a slice of frames.
type Slice struct {
	info   frame.VideoInfo
	frames []*frame.Frame
}

// NewSlice returns a clip serving frames. The video info is taken from the
// first frame; an empty slice yields a clip with a nil format.
func NewSlice(frames ...*frame.Frame) *Slice {
	s := &Slice{frames: frames}
	s.info.NumFrames = len(frames)
	if len(frames) > 0 {
		s.info.Format = frames[0].Format
		s.info.Width = frames[0].Width()
		s.info.Height = frames[0].Height()
	}
	return s
}

// NewSliceWithInfo returns a clip that reports info verbatim, which lets
// tests describe variable-format or non-float clips.
func NewSliceWithInfo(info frame.VideoInfo, frames ...*frame.Frame) *Slice {
	info.NumFrames = len(frames)
	return &Slice{info: info, frames: frames}
}

// VideoInfo implements Clip.
func (s *Slice) VideoInfo() frame.VideoInfo {
	return s.info
}

// Frame implements Clip.
func (s *Slice) Frame(ctx context.Context, n int) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 0 || n >= len(s.frames) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameRange, n, len(s.frames))
	}
	return s.frames[n], nil
}
