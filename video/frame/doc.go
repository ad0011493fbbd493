// Package frame defines the video data model shared by the host and the
// filters: sample formats, clip-level video info, strided float32 planes,
// multi-plane frames, and a pool for recycling destination frames.
//
// Planes only ever carry single-precision samples. Integer formats exist so
// that a host can describe clips a float-only filter must reject.
package frame
