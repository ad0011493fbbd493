package frame

// Frame is an ordered set of planes sharing one format.
type Frame struct {
	Format *Format
	Planes []Plane
}

// NewFrame allocates a zero-filled frame of w×h luma samples, sizing the
// other planes from the format's subsampling.
func NewFrame(format *Format, w, h int) *Frame {
	f := &Frame{
		Format: format,
		Planes: make([]Plane, format.NumPlanes),
	}
	for i := range f.Planes {
		pw, ph := format.PlaneSize(i, w, h)
		f.Planes[i] = NewPlane(pw, ph)
	}
	return f
}

// NewLike allocates a zero-filled frame with the format and plane
// dimensions of src.
func NewLike(src *Frame) *Frame {
	f := &Frame{
		Format: src.Format,
		Planes: make([]Plane, len(src.Planes)),
	}
	for i, p := range src.Planes {
		f.Planes[i] = NewPlane(p.Width, p.Height)
	}
	return f
}

// Width returns the width of plane 0.
func (f *Frame) Width() int {
	if len(f.Planes) == 0 {
		return 0
	}
	return f.Planes[0].Width
}

// Height returns the height of plane 0.
func (f *Frame) Height() int {
	if len(f.Planes) == 0 {
		return 0
	}
	return f.Planes[0].Height
}

// Clone returns a deep copy of the visible samples of f.
func (f *Frame) Clone() *Frame {
	c := NewLike(f)
	for i := range f.Planes {
		c.Planes[i].CopyFrom(f.Planes[i])
	}
	return c
}

// SameShape reports whether f and g have the same plane count and plane
// dimensions.
func (f *Frame) SameShape(g *Frame) bool {
	if len(f.Planes) != len(g.Planes) {
		return false
	}
	for i := range f.Planes {
		if f.Planes[i].Width != g.Planes[i].Width || f.Planes[i].Height != g.Planes[i].Height {
			return false
		}
	}
	return true
}
