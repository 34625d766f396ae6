// internal/sales/sales.go

// Package sales totals a sales record against a product price catalog.
package sales

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/logger"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/sentinel"
)

// Product is one catalog entry.
type Product struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// Sale is one line of the sales record.
type Sale struct {
	Product  string  `json:"Product"`
	Quantity float64 `json:"Quantity"`
}

// Summary is the outcome of totaling a sales record.
type Summary struct {
	Total     float64  // Sum of price*quantity over matched sales.
	Errors    int      // Number of sales whose product is not in the catalog.
	Unmatched []string // Product names of the unmatched sales, in record order.
}

// LoadCatalog decodes a JSON array of products from path.
func LoadCatalog(path string) ([]Product, error) {
	var catalog []Product
	if err := loadJSON(path, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// LoadSales decodes a JSON array of sales from path.
func LoadSales(path string) ([]Sale, error) {
	var record []Sale
	if err := loadJSON(path, &record); err != nil {
		return nil, err
	}
	return record, nil
}

func loadJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return ewrap.Wrap(sentinel.ErrOpenSource, err.Error())
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return ewrap.Wrapf(sentinel.ErrDecodeJSON, "%s: %v", path, err)
	}
	return nil
}

// Total sums price*quantity for every sale whose product appears in catalog.
// Later catalog entries win when a title repeats. Each unmatched sale is
// logged and counted.
func Total(catalog []Product, record []Sale, log logger.Warner) Summary {
	prices := make(map[string]float64, len(catalog))
	for _, p := range catalog {
		prices[p.Title] = p.Price
	}

	var s Summary
	for _, sale := range record {
		price, ok := prices[sale.Product]
		if !ok {
			if log != nil {
				log.Warningf("product %q not found in the catalog", sale.Product)
			}
			s.Errors++
			s.Unmatched = append(s.Unmatched, sale.Product)
			continue
		}
		s.Total += price * sale.Quantity
	}
	return s
}
