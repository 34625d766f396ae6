// internal/convert/convert.go

// Package convert renders integers in base 2 and base 16 by repeated
// remainder extraction.
package convert

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/ingest"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/logger"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

const hexDigits = "0123456789ABCDEF"

// Conversion is the binary and hexadecimal form of one input integer.
type Conversion struct {
	Value       int64
	Binary      string
	Hexadecimal string
}

// String renders c as "<n>: binary = <b>, hexadecimal = <h>".
func (c Conversion) String() string {
	return fmt.Sprintf("%d: binary = %s, hexadecimal = %s", c.Value, c.Binary, c.Hexadecimal)
}

// ToBinary returns n in base 2.
func ToBinary(n int64) string {
	return toBase(n, 2)
}

// ToHex returns n in base 16 with upper-case digits.
func ToHex(n int64) string {
	return toBase(n, 16)
}

// toBase builds the digits of n least significant first. Negative values get
// a leading minus sign on the magnitude.
func toBase(n int64, base uint64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	// Negating through uint64 keeps math.MinInt64 representable.
	u := uint64(n)
	if neg {
		u = -u
	}

	var buf [65]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = hexDigits[u%base]
		u /= base
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ReadFile opens path and converts it with Read.
func ReadFile(path string, log logger.Warner) ([]Conversion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ewrap.Wrap(sentinel.ErrOpenSource, err.Error())
	}
	defer f.Close()

	return Read(f, log)
}

// Read converts every line of r that holds a base-10 integer. Other lines
// are logged and skipped.
func Read(r io.Reader, log logger.Warner) ([]Conversion, error) {
	var out []Conversion

	err := ingest.EachLine(r, func(lineNo int, line string) {
		raw := strings.TrimSpace(line)
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			if log != nil {
				log.Warningf("invalid value on line %d: not an integer", lineNo)
			}
			return
		}
		out = append(out, Conversion{Value: n, Binary: ToBinary(n), Hexadecimal: ToHex(n)})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
