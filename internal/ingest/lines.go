// internal/ingest/lines.go
package ingest

import (
	"bufio"
	"io"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

// EachLine calls fn with every line of r and its 1-based number, without the
// line terminator. Lines may be of any length; only a failure of r itself is
// returned.
func EachLine(r io.Reader, fn func(lineNo int, line string)) error {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			fn(lineNo, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return ewrap.Wrap(sentinel.ErrOpenSource, err.Error())
		}
	}
}
