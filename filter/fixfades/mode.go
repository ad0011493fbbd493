package fixfades

import "fmt"

// Mode selects how the two fields are brought to a common sum.
type Mode int

const (
	// ModeMean rescales both fields to the mean of the two field sums.
	ModeMean Mode = iota
	// ModeMin keeps the field with the smaller sum and rescales the other.
	ModeMin
	// ModeMax keeps the field with the larger sum and rescales the other.
	ModeMax

	modeCount
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMean:
		return "mean"
	case ModeMin:
		return "min"
	case ModeMax:
		return "max"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
