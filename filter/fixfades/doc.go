// Package fixfades corrects fades that were applied before telecine and
// therefore land unevenly on the two fields of an interlaced frame.
//
// For every plane of every frame the filter measures the sum of
// (sample − baseline) over the even rows (top field) and the odd rows
// (bottom field). When the per-pixel imbalance
//
//	|top − bottom| / floor(width·height/2)
//
// is at least the configured threshold, one or both fields are rescaled
// around the baseline so that their sums match:
//
//   - [ModeMean] scales both fields to the mean of the two sums.
//   - [ModeMin] keeps the weaker field and scales the other down to it.
//   - [ModeMax] keeps the stronger field and scales the other up to it.
//
// On an exact tie in [ModeMin] and [ModeMax] the top field is kept.
// Below the threshold the plane is copied unchanged.
//
// Two kernel sets implement the measurement and the rescaling: a portable
// scalar one and an 8-lane float32 FMA one. [New] binds one of them for
// the lifetime of the filter, using the FMA kernels only when
// [WithOptimization] is left enabled and the CPU reports AVX and FMA3.
// Both produce results equal within floating-point reassociation.
//
// A [Filter] is immutable once built and safe for concurrent use.
package fixfades
