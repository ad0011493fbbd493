package frame_test

import (
	"fmt"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

func ExampleNewFrame() {
	f := frame.NewFrame(frame.YUV420PS, 10, 4)
	for i, p := range f.Planes {
		fmt.Println(i, p.Width, p.Height, p.Stride)
	}

	// Output:
	// 0 10 4 16
	// 1 5 2 8
	// 2 5 2 8
}
