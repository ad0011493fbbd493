package fixfades_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-fixfades/filter/fixfades"
	"github.com/cwbudde/algo-fixfades/video/clip"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

func Example() {
	src := frame.NewFrame(frame.GrayS, 4, 2)
	src.Planes[0].Fill(1)
	for x := 0; x < 4; x++ {
		src.Planes[0].Set(x, 1, 3)
	}

	f, err := fixfades.New(clip.NewSlice(src),
		fixfades.WithMode(fixfades.ModeMean),
		fixfades.WithThreshold(0),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, err := f.Frame(context.Background(), 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out.Planes[0].Row(0))
	fmt.Println(out.Planes[0].Row(1))

	// Output:
	// [2 2 2 2]
	// [2 2 2 2]
}

func ExampleMeasure() {
	p := frame.NewPlane(4, 2)
	p.Fill(1)
	for x := 0; x < 4; x++ {
		p.Set(x, 1, 3)
	}

	st := fixfades.Measure(p, 0)
	fmt.Println(st.Top, st.Bottom, st.NormalizedDifference())
	fmt.Println(fixfades.Decide(st, fixfades.DefaultThreshold))

	// Output:
	// 4 12 2
	// true
}

func ExampleNew_invalidMode() {
	src := frame.NewFrame(frame.GrayS, 4, 2)
	_, err := fixfades.New(clip.NewSlice(src), fixfades.WithMode(3))
	fmt.Println(err)

	// Output:
	// fixfades: parameter out of range: mode must be 0, 1, or 2: 3
}
