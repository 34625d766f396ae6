// internal/ingest/ingest.go

// Package ingest reads numeric observations from line-oriented text sources.
package ingest

import (
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/logger"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

var (
	// ErrNotDecimal is the parse failure of a line written in hexadecimal notation.
	ErrNotDecimal = ewrap.New("not a decimal number")

	// ErrNonFinite is the parse failure of a NaN or infinite value.
	ErrNonFinite = ewrap.New("non-finite value")
)

// InvalidLine describes a source line that could not be used as an observation.
type InvalidLine struct {
	Number int    // 1-based line number in the source.
	Raw    string // Line text after trimming.
	Err    error  // Parse failure.
}

// Result is the outcome of reading one source.
type Result struct {
	Observations []float64     // Valid values, in input order.
	Invalid      []InvalidLine // Rejected lines, in input order.
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, log logger.Warner) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, ewrap.Wrap(sentinel.ErrOpenSource, err.Error())
	}
	defer f.Close()

	return Read(f, log)
}

// Read parses every line of r as a decimal floating-point number. Lines that
// fail to parse are logged through log, recorded in Result.Invalid and
// skipped. Only a failure of r itself is returned as an error.
func Read(r io.Reader, log logger.Warner) (Result, error) {
	var res Result

	err := EachLine(r, func(lineNo int, line string) {
		raw := strings.TrimSpace(line)

		v, err := ParseObservation(raw)
		if err != nil {
			if log != nil {
				log.Warningf("invalid value %q on line %d: %v", abbreviate(raw), lineNo, err)
			}
			res.Invalid = append(res.Invalid, InvalidLine{Number: lineNo, Raw: raw, Err: err})
			return
		}
		res.Observations = append(res.Observations, v)
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// ParseObservation parses one trimmed line as a decimal number. Hexadecimal
// notation is rejected, and so are NaN and infinities so every accepted value
// compares equal to itself.
func ParseObservation(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, ErrNotDecimal
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Drop the input from the message; the caller already has the line.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	return v, nil
}

// maxLogged bounds how much of an invalid line is echoed into a diagnostic.
const maxLogged = 80

func abbreviate(s string) string {
	if len(s) <= maxLogged {
		return s
	}
	return s[:maxLogged] + "..."
}
