package fixfades

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/registry"
	"github.com/cwbudde/algo-fixfades/internal/cpu"
	"github.com/cwbudde/algo-fixfades/video/clip"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

// Filter is a fade corrector bound to a source clip. It implements
// [clip.Clip] so filters can be chained.
type Filter struct {
	src   clip.Clip
	info  frame.VideoInfo
	color []float64
	pl    pipeline

	parallelPlanes bool
	pool           *frame.Pool
}

var _ clip.Clip = (*Filter)(nil)

// New validates the clip and options and binds the field kernels.
//
// The clip must be constant-format with 32-bit float samples ([ErrFormat]).
// Mode and threshold are checked by their options ([ErrRange]); a color
// list must have one value per plane ([ErrColorArity]).
func New(c clip.Clip, opts ...Option) (*Filter, error) {
	if c == nil {
		return nil, ErrNilClip
	}

	info := c.VideoInfo()
	if !info.IsConstantFormat() || info.Format.SampleType != frame.Float || info.Format.BitsPerSample < 32 {
		return nil, fmt.Errorf("%w (got %v, %dx%d)", ErrFormat, info.Format, info.Width, info.Height)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	numPlanes := info.Format.NumPlanes
	color := make([]float64, numPlanes)
	if cfg.color != nil {
		if len(cfg.color) != numPlanes {
			return nil, fmt.Errorf("%w: %d values for %d planes", ErrColorArity, len(cfg.color), numPlanes)
		}
		copy(color, cfg.color)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	kernel, err := selectKernel(cfg.opt, logger)
	if err != nil {
		return nil, err
	}

	return &Filter{
		src:   c,
		info:  info,
		color: color,
		pl: pipeline{
			kernel:    kernel,
			mode:      cfg.mode,
			threshold: cfg.threshold,
		},
		parallelPlanes: cfg.parallelPlanes,
		pool:           cfg.pool,
	}, nil
}

// selectKernel picks the highest-priority kernel set the CPU supports,
// restricted to the generic kernels when opt is false.
func selectKernel(opt bool, logger *slog.Logger) (*registry.OpEntry, error) {
	features := cpu.DetectFeatures()
	if !opt {
		features.ForceGeneric = true
	}

	entry := registry.Global.Lookup(features)
	if entry == nil {
		return nil, errors.New("fixfades: no field kernel registered")
	}

	logger.Debug("fixfades kernel selected",
		"kernel", entry.Name,
		"simd", entry.SIMDLevel.String(),
		"opt", opt,
		"arch", features.Architecture)

	return entry, nil
}

// VideoInfo implements [clip.Clip]; the output matches the source.
func (f *Filter) VideoInfo() frame.VideoInfo {
	return f.info
}

// Frame fetches source frame n and returns a corrected copy. Errors come
// only from the source clip or ctx.
func (f *Filter) Frame(ctx context.Context, n int) (*frame.Frame, error) {
	src, err := f.src.Frame(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("fixfades: frame %d: %w", n, err)
	}

	dst := f.newFrame(src)
	f.Process(dst, src)

	return dst, nil
}

func (f *Filter) newFrame(src *frame.Frame) *frame.Frame {
	if f.pool != nil {
		dst := f.pool.Get()
		if dst.SameShape(src) {
			return dst
		}
		f.pool.Put(dst)
	}
	return frame.NewLike(src)
}

// Process writes the corrected src into dst, plane by plane. src is only
// read. It panics if the frames differ in plane count or dimensions.
func (f *Filter) Process(dst, src *frame.Frame) {
	if !dst.SameShape(src) {
		panic("fixfades: destination frame shape differs from source")
	}
	if len(src.Planes) > len(f.color) {
		panic("fixfades: frame has more planes than the clip format")
	}

	if !f.parallelPlanes || len(src.Planes) < 2 {
		for i := range src.Planes {
			f.pl.processPlane(dst.Planes[i], src.Planes[i], f.color[i])
		}
		return
	}

	var wg sync.WaitGroup
	for i := range src.Planes {
		wg.Go(func() {
			f.pl.processPlane(dst.Planes[i], src.Planes[i], f.color[i])
		})
	}
	wg.Wait()
}

// Analyze returns the field statistics of every plane of src as measured
// by the bound kernels, without producing output.
func (f *Filter) Analyze(src *frame.Frame) []FieldStats {
	stats := make([]FieldStats, len(src.Planes))
	for i, p := range src.Planes {
		stats[i] = f.pl.measure(p, f.color[i])
	}
	return stats
}

// Kernel returns the name of the bound kernel set ("generic" or "avx-fma").
func (f *Filter) Kernel() string {
	return f.pl.kernel.Name
}

// Mode returns the configured mode.
func (f *Filter) Mode() Mode {
	return f.pl.mode
}

// Threshold returns the configured threshold.
func (f *Filter) Threshold() float64 {
	return f.pl.threshold
}

// Color returns a copy of the per-plane baseline values.
func (f *Filter) Color() []float64 {
	return append([]float64(nil), f.color...)
}
