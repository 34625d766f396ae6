package sales

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

type recorder struct {
	messages []string
}

func (r *recorder) Warningf(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTotal_MatchedAndUnmatched(t *testing.T) {
	catalog := []Product{{Title: "Apple", Price: 1.5}, {Title: "Bread", Price: 2.25}}
	record := []Sale{
		{Product: "Apple", Quantity: 4},
		{Product: "Milk", Quantity: 1},
		{Product: "Bread", Quantity: 2},
	}
	log := &recorder{}

	s := Total(catalog, record, log)

	assert.True(t, math.Abs(s.Total-10.5) < 1e-9)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, []string{"Milk"}, s.Unmatched)
	assert.Equal(t, 1, len(log.messages))
}

func TestTotal_NegativeQuantityIsReturn(t *testing.T) {
	s := Total([]Product{{Title: "A", Price: 10}}, []Sale{{Product: "A", Quantity: 3}, {Product: "A", Quantity: -1}}, nil)
	assert.Equal(t, 20.0, s.Total)
	assert.Equal(t, 0, s.Errors)
}

func TestLoadCatalogAndSales(t *testing.T) {
	catalogPath := writeFile(t, "catalog.json", `[{"title":"Apple","price":1.5,"type":"fruit"}]`)
	salesPath := writeFile(t, "sales.json", `[{"SALE_ID":1,"Product":"Apple","Quantity":2}]`)

	catalog, err := LoadCatalog(catalogPath)
	assert.NoError(t, err)
	assert.Equal(t, []Product{{Title: "Apple", Price: 1.5}}, catalog)

	record, err := LoadSales(salesPath)
	assert.NoError(t, err)
	assert.Equal(t, []Sale{{Product: "Apple", Quantity: 2}}, record)
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, sentinel.ErrOpenSource) {
		t.Fatalf("expected ErrOpenSource, got %v", err)
	}

	bad := writeFile(t, "bad.json", `{not json`)
	_, err = LoadCatalog(bad)
	if !errors.Is(err, sentinel.ErrDecodeJSON) {
		t.Fatalf("expected ErrDecodeJSON, got %v", err)
	}
}
