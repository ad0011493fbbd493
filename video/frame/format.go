package frame

import "fmt"

// SampleType distinguishes integer from floating-point samples.
type SampleType int

const (
	// Integer samples.
	Integer SampleType = iota
	// Float samples.
	Float
)

// String returns the sample type name.
func (s SampleType) String() string {
	switch s {
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("SampleType(%d)", int(s))
	}
}

// Format describes the sample layout of a frame.
type Format struct {
	Name          string
	SampleType    SampleType
	BitsPerSample int
	NumPlanes     int

	// SubSamplingW and SubSamplingH are log2 chroma subsampling factors
	// applied to planes 1 and 2.
	SubSamplingW int
	SubSamplingH int
}

// Predefined formats.
var (
	GrayS    = &Format{Name: "GrayS", SampleType: Float, BitsPerSample: 32, NumPlanes: 1}
	YUV444PS = &Format{Name: "YUV444PS", SampleType: Float, BitsPerSample: 32, NumPlanes: 3}
	YUV422PS = &Format{Name: "YUV422PS", SampleType: Float, BitsPerSample: 32, NumPlanes: 3, SubSamplingW: 1}
	YUV420PS = &Format{Name: "YUV420PS", SampleType: Float, BitsPerSample: 32, NumPlanes: 3, SubSamplingW: 1, SubSamplingH: 1}
	RGBS     = &Format{Name: "RGBS", SampleType: Float, BitsPerSample: 32, NumPlanes: 3}

	// GrayH is half precision; listed so hosts can describe it.
	GrayH    = &Format{Name: "GrayH", SampleType: Float, BitsPerSample: 16, NumPlanes: 1}
	Gray8    = &Format{Name: "Gray8", SampleType: Integer, BitsPerSample: 8, NumPlanes: 1}
	YUV420P8 = &Format{Name: "YUV420P8", SampleType: Integer, BitsPerSample: 8, NumPlanes: 3, SubSamplingW: 1, SubSamplingH: 1}
)

var formatsByName = map[string]*Format{}

func init() {
	for _, f := range []*Format{GrayS, YUV444PS, YUV422PS, YUV420PS, RGBS, GrayH, Gray8, YUV420P8} {
		formatsByName[f.Name] = f
	}
}

// FormatByName looks up a predefined format, case-sensitive.
func FormatByName(name string) (*Format, bool) {
	f, ok := formatsByName[name]
	return f, ok
}

// PlaneSize returns the dimensions of plane i for a frame of w×h.
func (f *Format) PlaneSize(i, w, h int) (int, int) {
	if i == 0 {
		return w, h
	}
	return w >> f.SubSamplingW, h >> f.SubSamplingH
}

// String returns the format name.
func (f *Format) String() string {
	if f == nil {
		return "<variable>"
	}
	return f.Name
}

// VideoInfo describes a clip. A nil Format or a zero Width/Height means the
// property varies from frame to frame.
type VideoInfo struct {
	Format    *Format
	Width     int
	Height    int
	NumFrames int
}

// IsConstantFormat reports whether every frame shares one format and size.
func (vi VideoInfo) IsConstantFormat() bool {
	return vi.Format != nil && vi.Width > 0 && vi.Height > 0
}
