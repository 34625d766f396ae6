// internal/wordcount/wordcount.go

// Package wordcount tallies whitespace-separated words.
package wordcount

import (
	"io"
	"os"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/ingest"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

// Count is the number of occurrences of one word.
type Count struct {
	Word  string
	Count int
}

// ReadFile opens path and tallies it with Read.
func ReadFile(path string) ([]Count, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ewrap.Wrap(sentinel.ErrOpenSource, err.Error())
	}
	defer f.Close()

	return Read(f)
}

// Read splits r on whitespace and counts each distinct word. Words are
// compared exactly (case and punctuation included) and returned in order of
// first appearance.
func Read(r io.Reader) ([]Count, error) {
	index := make(map[string]int)
	var counts []Count

	err := ingest.EachLine(r, func(_ int, line string) {
		for _, word := range strings.Fields(line) {
			if i, ok := index[word]; ok {
				counts[i].Count++
				continue
			}
			index[word] = len(counts)
			counts = append(counts, Count{Word: word, Count: 1})
		}
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
