// Command fieldstat prints the per-field statistics the fixfades filter
// decides on, for every frame and plane of a raw planar float32 clip.
//
// Usage:
//
//	fieldstat -width W -height H [flags] in.raw
//
// Examples:
//
//	fieldstat -width 720 -height 480 in.raw
//	fieldstat -width 720 -height 480 -format GrayS -threshold 0.01 -frames 100 in.raw
//	fieldstat -cpu
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixfades/filter/fixfades"
	"github.com/cwbudde/algo-fixfades/internal/cliflag"
	"github.com/cwbudde/algo-fixfades/internal/cpu"
	"github.com/cwbudde/algo-fixfades/video/clip"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

type options struct {
	width, height int
	format        cliflag.Format
	threshold     float64
	color         cliflag.FloatList
	frames        int
	cpuOnly       bool
	input         string
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{format: cliflag.Format{Format: frame.YUV420PS}}

	fs.IntVar(&o.width, "width", 0, "frame width in luma samples")
	fs.IntVar(&o.height, "height", 0, "frame height in luma samples")
	fs.Var(&o.format, "format", "sample format: GrayS, YUV444PS, YUV422PS, YUV420PS, RGBS")
	fs.Float64Var(&o.threshold, "threshold", fixfades.DefaultThreshold, "threshold used for the decision column")
	fs.Var(&o.color, "color", "comma-separated baseline value per plane")
	fs.IntVar(&o.frames, "frames", 0, "limit the number of frames (0 = all)")
	fs.BoolVar(&o.cpuOnly, "cpu", false, "only print CPU features and the selected kernel")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.cpuOnly {
		return o, nil
	}
	if fs.NArg() != 1 {
		return nil, errors.New("exactly one input file is required")
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, errors.New("-width and -height are required")
	}
	o.input = fs.Arg(0)
	return o, nil
}

func printCPU(w io.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "arch:   %s\n", f.Architecture)
	fmt.Fprintf(w, "avx:    %v\n", f.HasAVX)
	fmt.Fprintf(w, "fma:    %v\n", f.HasFMA)
	fmt.Fprintf(w, "forced: %v\n", f.ForceGeneric)
}

func run(ctx context.Context, o *options, w io.Writer) error {
	if o.cpuOnly {
		printCPU(w)
		src := clip.NewSlice(frame.NewFrame(frame.GrayS, 2, 2))
		f, err := fixfades.New(src)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "kernel: %s\n", f.Kernel())
		return nil
	}

	in, err := os.Open(o.input)
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

	opts := []fixfades.Option{fixfades.WithThreshold(o.threshold)}
	if o.color.IsSet {
		opts = append(opts, fixfades.WithColor(o.color.Values...))
	}
	f, err := fixfades.New(src, opts...)
	if err != nil {
		return err
	}

	n := src.VideoInfo().NumFrames
	if o.frames > 0 && o.frames < n {
		n = o.frames
	}

	numPlanes := o.format.Format.NumPlanes
	diffs := make([][]float64, numPlanes)
	corrected := make([]int, numPlanes)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "frame\tplane\ttop\tbottom\tnorm diff\tdecision\t")
	for i := 0; i < n; i++ {
		fr, err := src.Frame(ctx, i)
		if err != nil {
			return err
		}
		for p, s := range f.Analyze(fr) {
			nd := s.NormalizedDifference()
			decision := "copy"
			if fixfades.Decide(s, o.threshold) {
				decision = "rescale"
				corrected[p]++
			}
			diffs[p] = append(diffs[p], nd)
			fmt.Fprintf(tw, "%d\t%d\t%.6g\t%.6g\t%.6g\t%s\t\n", i, p, s.Top, s.Bottom, nd, decision)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nkernel: %s, mode: %s, threshold: %g\n", f.Kernel(), f.Mode(), o.threshold)
	fmt.Fprintln(w, strings.Repeat("-", 48))
	for p, d := range diffs {
		if len(d) == 0 {
			continue
		}
		mean := vecmath.Sum(d) / float64(len(d))
		fmt.Fprintf(w, "plane %d: mean diff %.6g, max diff %.6g, rescaled %d/%d\n",
			p, mean, vecmath.MaxAbs(d), corrected[p], len(d))
	}
	return nil
}

func main() {
	fs := flag.NewFlagSet("fieldstat", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fieldstat [flags] in.raw\n\n")
		fmt.Fprintf(os.Stderr, "Prints the top/bottom field sums and the correction decision per plane.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	o, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fs.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), o, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
