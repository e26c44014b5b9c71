package catalog

import (
	_ "embed"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

//go:embed seed/products.json
var seedProducts []byte

type productJSON struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
}

// Seed returns the embedded initial inventory.
func Seed() ([]Product, error) {
	var rows []productJSON
	if err := json.Unmarshal(seedProducts, &rows); err != nil {
		return nil, errors.Wrap(err, "decode seed products")
	}

	products := make([]Product, len(rows))
	for i, r := range rows {
		products[i] = Product{
			ID:          r.ID,
			Name:        r.Name,
			Image:       r.Image,
			Price:       r.Price,
			Stock:       r.Stock,
			Category:    r.Category,
			Description: r.Description,
		}
	}
	return products, nil
}
