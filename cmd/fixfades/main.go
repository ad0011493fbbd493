// Command fixfades corrects telecined fades in a raw planar float32 clip.
//
// Usage:
//
//	fixfades -width W -height H [flags] -in in.raw -out out.raw
//
// The raw layout is frames back to back, each frame its planes in order,
// each plane packed rows of little-endian float32 samples.
//
// Examples:
//
//	fixfades -width 720 -height 480 -format YUV420PS -in in.raw -out out.raw
//	fixfades -width 720 -height 480 -mode 1 -color 0.0625,0.5,0.5 -in in.raw -out -
//	fixfades -width 720 -height 480 -opt=false -workers 1 -in in.raw -out out.raw
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cwbudde/algo-fixfades/filter/fixfades"
	"github.com/cwbudde/algo-fixfades/filter/fixfades/batch"
	"github.com/cwbudde/algo-fixfades/internal/cliflag"
	"github.com/cwbudde/algo-fixfades/video/clip"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

type options struct {
	width, height  int
	format         cliflag.Format
	mode           int
	threshold      float64
	color          cliflag.FloatList
	opt            bool
	workers        int
	parallelPlanes bool
	in, out        string
	verbose        bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{format: cliflag.Format{Format: frame.YUV420PS}}

	fs.IntVar(&o.width, "width", 0, "frame width in luma samples (required)")
	fs.IntVar(&o.height, "height", 0, "frame height in luma samples (required)")
	fs.Var(&o.format, "format", "sample format: GrayS, YUV444PS, YUV422PS, YUV420PS, RGBS")
	fs.IntVar(&o.mode, "mode", int(fixfades.DefaultMode), "0 = mean of both fields, 1 = match weaker field, 2 = match stronger field")
	fs.Float64Var(&o.threshold, "threshold", fixfades.DefaultThreshold, "normalized field difference needed to correct a plane")
	fs.Var(&o.color, "color", "comma-separated baseline value per plane (default 0 for every plane)")
	fs.BoolVar(&o.opt, "opt", true, "use the AVX+FMA kernels when the CPU supports them")
	fs.IntVar(&o.workers, "workers", 0, "frames processed concurrently (0 = GOMAXPROCS)")
	fs.BoolVar(&o.parallelPlanes, "parallel-planes", false, "process the planes of a frame concurrently")
	fs.StringVar(&o.in, "in", "", "input raw file (required)")
	fs.StringVar(&o.out, "out", "-", "output raw file, - for stdout")
	fs.BoolVar(&o.verbose, "v", false, "log debug information to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, errors.New("-width and -height are required")
	}
	if o.in == "" {
		return nil, errors.New("-in is required")
	}
	return o, nil
}

func (o *options) filterOptions(logger *slog.Logger) []fixfades.Option {
	opts := []fixfades.Option{
		fixfades.WithMode(fixfades.Mode(o.mode)),
		fixfades.WithThreshold(o.threshold),
		fixfades.WithOptimization(o.opt),
		fixfades.WithPlaneParallelism(o.parallelPlanes),
		fixfades.WithLogger(logger),
	}
	if o.color.IsSet {
		opts = append(opts, fixfades.WithColor(o.color.Values...))
	}
	return opts
}

func run(ctx context.Context, o *options, stdout io.Writer, logger *slog.Logger) error {
	in, err := os.Open(o.in)
	if err != nil {
		return err
	}
	defer in.Close()

	st, err := in.Stat()
	if err != nil {
		return err
	}

	src, err := clip.NewReader(in, st.Size(), o.format.Format, o.width, o.height)
	if err != nil {
		return err
	}

	f, err := fixfades.New(src, o.filterOptions(logger)...)
	if err != nil {
		return err
	}

	out := stdout
	if o.out != "-" {
		file, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	w := clip.NewWriter(out)
	n := src.VideoInfo().NumFrames
	logger.Info("processing", "frames", n, "format", o.format.String(), "kernel", f.Kernel(), "mode", f.Mode().String())

	err = batch.Run(ctx, f, 0, n, o.workers, func(_ int, fr *frame.Frame) error {
		return w.WriteFrame(fr)
	})
	if err != nil {
		return err
	}

	if file, ok := out.(*os.File); ok && file != os.Stdout {
		return file.Sync()
	}
	return nil
}

func main() {
	fs := flag.NewFlagSet("fixfades", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fixfades -width W -height H [flags] -in in.raw -out out.raw\n\n")
		fmt.Fprintf(os.Stderr, "Balances the per-field brightness of fades applied before telecine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	o, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fs.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, os.Stdout, logger); err != nil {
		logger.Error("fixfades failed", "err", err)
		stop()
		os.Exit(1)
	}
}
