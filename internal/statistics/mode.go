// internal/statistics/mode.go
package statistics

import (
	"slices"
	"strconv"
	"strings"
)

// ModeKind tells which variant a Mode holds.
type ModeKind int

const (
	ModeNone     ModeKind = iota // ModeNone is the zero Mode of an empty sequence.
	ModeSingle                   // ModeSingle holds exactly one most frequent value.
	ModeMultiple                 // ModeMultiple holds two or more values tied for the highest frequency.
)

// Mode is the most frequent value of a sequence, or the set of values tied
// for the highest frequency. Multiple values are kept sorted ascending.
type Mode struct {
	values []float64
}

// SingleMode returns a Mode holding v.
func SingleMode(v float64) Mode {
	return Mode{values: []float64{v}}
}

// MultipleMode returns a Mode holding vs; a single value yields a single Mode.
func MultipleMode(vs ...float64) Mode {
	return newMode(slices.Clone(vs))
}

func newMode(vs []float64) Mode {
	slices.Sort(vs)
	return Mode{values: vs}
}

// Kind reports the variant held by m.
func (m Mode) Kind() ModeKind {
	switch len(m.values) {
	case 0:
		return ModeNone
	case 1:
		return ModeSingle
	default:
		return ModeMultiple
	}
}

// Single returns the value of a single Mode. ok is false for other variants.
func (m Mode) Single() (v float64, ok bool) {
	if m.Kind() != ModeSingle {
		return 0, false
	}
	return m.values[0], true
}

// Multiple returns a copy of the tied values of a multiple Mode. ok is false
// for other variants.
func (m Mode) Multiple() (vs []float64, ok bool) {
	if m.Kind() != ModeMultiple {
		return nil, false
	}
	return slices.Clone(m.values), true
}

// String renders a single mode as a number and a multiple mode as a
// bracketed, comma separated list.
func (m Mode) String() string {
	switch m.Kind() {
	case ModeSingle:
		return FormatFloat(m.values[0])
	case ModeMultiple:
		parts := make([]string, len(m.values))
		for i, v := range m.values {
			parts[i] = FormatFloat(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// FormatFloat renders v with the fewest digits that round-trip.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
