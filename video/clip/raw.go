package clip

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

// Raw planar layout: frames are stored back to back, each frame as its
// planes in order, each plane as Height rows of Width little-endian float32
// samples with no padding.

// FrameBytes returns the size of one raw frame of format at w×h.
func FrameBytes(format *frame.Format, w, h int) int64 {
	var n int64
	for i := 0; i < format.NumPlanes; i++ {
		pw, ph := format.PlaneSize(i, w, h)
		n += int64(pw) * int64(ph) * 4
	}
	return n
}

func checkRawFormat(format *frame.Format) error {
	if format == nil || format.SampleType != frame.Float || format.BitsPerSample != 32 {
		return fmt.Errorf("%w: raw I/O needs 32-bit float samples, got %v", ErrUnsupportedFormat, format)
	}
	return nil
}

// Reader is a clip decoding raw planar float32 frames from an io.ReaderAt.
type Reader struct {
	r          io.ReaderAt
	info       frame.VideoInfo
	frameBytes int64
}

// NewReader returns a clip over size bytes of raw frames. A trailing partial
// frame is ignored.
func NewReader(r io.ReaderAt, size int64, format *frame.Format, w, h int) (*Reader, error) {
	if err := checkRawFormat(format); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("clip: invalid frame size %dx%d", w, h)
	}
	fb := FrameBytes(format, w, h)
	return &Reader{
		r:          r,
		frameBytes: fb,
		info: frame.VideoInfo{
			Format:    format,
			Width:     w,
			Height:    h,
			NumFrames: int(size / fb),
		},
	}, nil
}

// VideoInfo implements Clip.
func (r *Reader) VideoInfo() frame.VideoInfo {
	return r.info
}

// Frame implements Clip.
func (r *Reader) Frame(ctx context.Context, n int) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 0 || n >= r.info.NumFrames {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameRange, n, r.info.NumFrames)
	}

	buf := make([]byte, r.frameBytes)
	nr, err := r.r.ReadAt(buf, int64(n)*r.frameBytes)
	if nr < len(buf) {
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: frame %d", ErrShortFrame, n)
		}
		return nil, fmt.Errorf("clip: read frame %d: %w", n, err)
	}

	f := frame.NewFrame(r.info.Format, r.info.Width, r.info.Height)
	off := 0
	for _, p := range f.Planes {
		for y := 0; y < p.Height; y++ {
			row := p.Row(y)
			for x := range row {
				row[x] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
				off += 4
			}
		}
	}
	return f, nil
}

// Writer encodes frames in the raw planar float32 layout.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame writes the visible samples of f.
func (w *Writer) WriteFrame(f *frame.Frame) error {
	if err := checkRawFormat(f.Format); err != nil {
		return err
	}
	n := FrameBytes(f.Format, f.Width(), f.Height())
	if int64(cap(w.buf)) < n {
		w.buf = make([]byte, n)
	}
	buf := w.buf[:n]

	off := 0
	for _, p := range f.Planes {
		for y := 0; y < p.Height; y++ {
			for _, v := range p.Row(y) {
				binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
				off += 4
			}
		}
	}

	if _, err := w.w.Write(buf[:off]); err != nil {
		return fmt.Errorf("clip: write frame: %w", err)
	}
	return nil
}
