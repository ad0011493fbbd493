// Package cliflag holds flag.Value types shared by the commands.
package cliflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

// FloatList is a comma-separated list of floats. Set marks it as given so
// an explicit empty list can be told apart from an absent flag.
type FloatList struct {
	Values []float64
	IsSet  bool
}

// String implements flag.Value.
func (l *FloatList) String() string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (l *FloatList) Set(s string) error {
	l.IsSet = true
	l.Values = l.Values[:0]
	if strings.TrimSpace(s) == "" {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", part, err)
		}
		l.Values = append(l.Values, v)
	}
	return nil
}

// Format is a frame format selected by name.
type Format struct {
	Format *frame.Format
}

// String implements flag.Value.
func (f *Format) String() string {
	if f.Format == nil {
		return ""
	}
	return f.Format.Name
}

// Set implements flag.Value.
func (f *Format) Set(s string) error {
	format, ok := frame.FormatByName(s)
	if !ok {
		return fmt.Errorf("unknown format %q", s)
	}
	f.Format = format
	return nil
}
