package fixfades

import (
	"github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/registry"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

// pipeline runs measurement, decision and rescaling for one plane with a
// bound kernel set.
type pipeline struct {
	kernel    *registry.OpEntry
	mode      Mode
	threshold float64
}

func (pl pipeline) measure(src frame.Plane, baseline float64) FieldStats {
	top, bottom := pl.kernel.FieldSums(src, baseline)
	return FieldStats{Top: top, Bottom: bottom, FieldPixels: fieldPixels(src)}
}

// processPlane writes the corrected src into dst and returns the field
// statistics it decided on. dst and src must have equal dimensions.
func (pl pipeline) processPlane(dst, src frame.Plane, baseline float64) FieldStats {
	st := pl.measure(src, baseline)

	if !Decide(st, pl.threshold) {
		dst.CopyFrom(src)
		return st
	}

	switch pl.mode {
	case ModeMean:
		mean := (st.Top + st.Bottom) / 2
		for y := 0; y < src.Height; y++ {
			field := st.Top
			if y%2 != 0 {
				field = st.Bottom
			}
			pl.kernel.ScaleRow(dst.Row(y), src.Row(y), baseline, mean, field)
		}
	case ModeMin:
		ref := st.Top
		if st.Bottom < st.Top {
			ref = st.Bottom
		}
		pl.matchField(dst, src, baseline, ref, st)
	case ModeMax:
		ref := st.Top
		if st.Top < st.Bottom {
			ref = st.Bottom
		}
		pl.matchField(dst, src, baseline, ref, st)
	}

	return st
}

// matchField copies the field whose sum equals ref and rescales the other
// field to ref. The top field is the reference whenever ref == st.Top,
// which makes it win exact ties.
func (pl pipeline) matchField(dst, src frame.Plane, baseline, ref float64, st FieldStats) {
	keepTop := ref == st.Top
	for y := 0; y < src.Height; y++ {
		even := y%2 == 0
		if even == keepTop {
			copy(dst.Row(y), src.Row(y))
			continue
		}
		field := st.Top
		if !even {
			field = st.Bottom
		}
		pl.kernel.ScaleRow(dst.Row(y), src.Row(y), baseline, ref, field)
	}
}
