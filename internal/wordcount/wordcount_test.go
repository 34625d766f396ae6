package wordcount

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

func TestRead_FirstAppearanceOrder(t *testing.T) {
	got, err := Read(strings.NewReader("the cat\n  saw the\tdog\n\nThe cat\n"))

	assert.NoError(t, err)
	assert.Equal(t, []Count{
		{Word: "the", Count: 2},
		{Word: "cat", Count: 2},
		{Word: "saw", Count: 1},
		{Word: "dog", Count: 1},
		{Word: "The", Count: 1},
	}, got)
}

func TestRead_Empty(t *testing.T) {
	got, err := Read(strings.NewReader(" \n\n"))

	assert.NoError(t, err)
	assert.Equal(t, 0, len(got))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("a b a\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(got) != 2 || got[0].Count != 2 {
		t.Fatalf("unexpected counts: %+v", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, sentinel.ErrOpenSource) {
		t.Fatalf("expected ErrOpenSource, got %v", err)
	}
}

func TestRead_LongLine(t *testing.T) {
	long := strings.Repeat("w", 70000)
	got, err := Read(strings.NewReader("a\n" + long + " a\nb\n"))

	assert.NoError(t, err)
	assert.Equal(t, []Count{
		{Word: "a", Count: 2},
		{Word: long, Count: 1},
		{Word: "b", Count: 1},
	}, got)
}
