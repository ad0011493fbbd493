package frame

import "sync"

// Pool recycles frames of one format and size to reduce GC pressure when a
// host allocates a destination frame for every processed frame.
type Pool struct {
	format *Format
	width  int
	height int
	pool   sync.Pool
}

// NewPool returns a Pool producing w×h frames of format.
func NewPool(format *Format, w, h int) *Pool {
	p := &Pool{format: format, width: w, height: h}
	p.pool.New = func() any {
		return NewFrame(format, w, h)
	}
	return p
}

// Get returns a frame from the pool. Its contents are unspecified; filters
// overwrite every visible sample. Callers must return it via Put when done.
func (p *Pool) Get() *Frame {
	return p.pool.Get().(*Frame)
}

// Put returns f to the pool. Frames of a different shape are dropped.
// The caller must not use f after calling Put.
func (p *Pool) Put(f *Frame) {
	if f == nil || f.Format != p.format || f.Width() != p.width || f.Height() != p.height {
		return
	}
	p.pool.Put(f)
}
