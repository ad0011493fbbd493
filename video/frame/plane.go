package frame

// StrideAlign is the row alignment, in samples, used by NewFrame.
const StrideAlign = 8

// Plane is a strided 2D array of float32 samples. Row y occupies
// Data[y*Stride : y*Stride+Width]; samples past Width are padding.
type Plane struct {
	Data   []float32
	Width  int
	Height int
	Stride int
}

// NewPlane returns a zero-filled plane with stride rounded up to StrideAlign.
func NewPlane(width, height int) Plane {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := alignStride(width)
	return Plane{
		Data:   make([]float32, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// PlaneFromSlice wraps data as a plane without copying. It panics if the
// stride is smaller than the width or data is too short.
func PlaneFromSlice(data []float32, width, height, stride int) Plane {
	if stride < width {
		panic("frame: stride smaller than width")
	}
	if height > 0 && len(data) < (height-1)*stride+width {
		panic("frame: plane data too short")
	}
	return Plane{Data: data, Width: width, Height: height, Stride: stride}
}

// Row returns the Width samples of row y.
func (p Plane) Row(y int) []float32 {
	off := y * p.Stride
	return p.Data[off : off+p.Width : off+p.Width]
}

// At returns the sample at (x, y).
func (p Plane) At(x, y int) float32 {
	return p.Data[y*p.Stride+x]
}

// Set stores v at (x, y).
func (p Plane) Set(x, y int, v float32) {
	p.Data[y*p.Stride+x] = v
}

// Fill sets every visible sample to v.
func (p Plane) Fill(v float32) {
	for y := 0; y < p.Height; y++ {
		row := p.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// CopyFrom copies the visible samples of src row by row. Padding in p is
// left untouched. Both planes must have the same dimensions.
func (p Plane) CopyFrom(src Plane) {
	if p.Width != src.Width || p.Height != src.Height {
		panic("frame: plane dimension mismatch")
	}
	for y := 0; y < p.Height; y++ {
		copy(p.Row(y), src.Row(y))
	}
}

// Equal reports whether the visible samples of p and q are bit-identical
// in value (NaN never compares equal).
func (p Plane) Equal(q Plane) bool {
	if p.Width != q.Width || p.Height != q.Height {
		return false
	}
	for y := 0; y < p.Height; y++ {
		a, b := p.Row(y), q.Row(y)
		for x := range a {
			if a[x] != b[x] {
				return false
			}
		}
	}
	return true
}

func alignStride(width int) int {
	return (width + StrideAlign - 1) / StrideAlign * StrideAlign
}
