// internal/statistics/statistics.go

// Package statistics computes descriptive statistics over a fully loaded
// sequence of observations.
//
// Every function is pure: inputs are never modified and the same sequence
// always yields the same Record. Variance uses the sample convention
// (divides by n-1) and is defined as 0 for fewer than two observations.
package statistics

import (
	"math"
	"slices"

	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/gonum/stat"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

// Record holds the statistics of one run.
type Record struct {
	Mean     float64
	Median   float64
	Mode     Mode
	Variance float64
	StdDev   float64
}

// Compute returns the Record for data. It fails only when data is empty.
func Compute(data []float64) (Record, error) {
	if len(data) == 0 {
		return Record{}, ewrap.Wrap(sentinel.ErrEmptyInput, "compute statistics")
	}

	variance := Variance(data)
	return Record{
		Mean:     Mean(data),
		Median:   Median(data),
		Mode:     ModeOf(data),
		Variance: variance,
		StdDev:   StdDev(variance),
	}, nil
}

// Mean returns the arithmetic average of data, or 0 for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// Median returns the middle value of data once sorted ascending; for an even
// count it is the average of the two central values.
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// ModeOf returns every value that occurs with the highest frequency.
// Values are tallied by exact equality.
func ModeOf(data []float64) Mode {
	if len(data) == 0 {
		return Mode{}
	}

	freq := make(map[float64]int, len(data))
	maxCount := 0
	for _, v := range data {
		freq[v]++
		if freq[v] > maxCount {
			maxCount = freq[v]
		}
	}

	var modes []float64
	for v, count := range freq {
		if count == maxCount {
			modes = append(modes, v)
		}
	}
	return newMode(modes)
}

// Variance returns the sample variance of data, or 0 for fewer than two values.
func Variance(data []float64) float64 {
	if len(data) <= 1 {
		return 0
	}
	// Rounding in the compensated sum can leave a tiny negative for
	// constant input.
	return math.Max(0, stat.Variance(data, nil))
}

// StdDev returns the square root of variance.
func StdDev(variance float64) float64 {
	return math.Sqrt(variance)
}
