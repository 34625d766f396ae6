// internal/report/report.go

// Package report renders result lines once and writes them to the console
// and to a result file.
package report

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/statistics"
)

// Line is one "label: value" entry. A Line with an empty Label and Value
// renders as a blank line.
type Line struct {
	Label string
	Value string
}

// String renders l without the trailing newline.
func (l Line) String() string {
	if l.Label == "" && l.Value == "" {
		return ""
	}
	return l.Label + ": " + l.Value
}

// Blank is a separator line.
var Blank = Line{}

// Labels used by the statistics report, in output order.
const (
	LabelMean     = "Mean"
	LabelMedian   = "Median"
	LabelMode     = "Mode"
	LabelStdDev   = "Standard Deviation"
	LabelVariance = "Variance"
	LabelElapsed  = "Elapsed Time (seconds)"
)

// StatisticsLines returns the statistics report in its fixed order: mean,
// median, mode, standard deviation, variance, elapsed time.
func StatisticsLines(rec statistics.Record, elapsed time.Duration) []Line {
	return []Line{
		{LabelMean, statistics.FormatFloat(rec.Mean)},
		{LabelMedian, statistics.FormatFloat(rec.Median)},
		{LabelMode, rec.Mode.String()},
		{LabelStdDev, statistics.FormatFloat(rec.StdDev)},
		{LabelVariance, statistics.FormatFloat(rec.Variance)},
		{LabelElapsed, statistics.FormatFloat(elapsed.Seconds())},
	}
}

// Render joins lines into newline-terminated text.
func Render(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Write renders lines once and writes the same text to console and to the
// file at path, replacing any existing file. The file is closed before Write
// returns, whatever the outcome.
func Write(console io.Writer, path string, lines []Line) (err error) {
	text := Render(lines)

	f, err := os.Create(path)
	if err != nil {
		return ewrap.Wrap(sentinel.ErrWriteArtifact, err.Error())
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ewrap.Wrap(sentinel.ErrWriteArtifact, cerr.Error())
		}
	}()

	if console != nil {
		if _, err := io.WriteString(console, text); err != nil {
			return ewrap.Wrap(err, "write console")
		}
	}
	if _, err := io.WriteString(f, text); err != nil {
		return ewrap.Wrap(sentinel.ErrWriteArtifact, err.Error())
	}
	return nil
}
