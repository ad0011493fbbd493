package fixfades

import "errors"

// Construction errors. Errors returned by New wrap exactly one of these.
var (
	// ErrNilClip reports a missing source clip.
	ErrNilClip = errors.New("fixfades: clip is required")

	// ErrFormat reports a clip that is not constant-format 32-bit float.
	ErrFormat = errors.New("fixfades: input clip must be single precision fp, with constant dimensions")

	// ErrRange reports a mode outside {0,1,2} or a negative threshold.
	ErrRange = errors.New("fixfades: parameter out of range")

	// ErrColorArity reports a color list whose length differs from the
	// clip's plane count.
	ErrColorArity = errors.New("fixfades: invalid color value for the input colorspace")
)
