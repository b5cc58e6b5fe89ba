// Package catalog holds the static product catalog and its filter/search
// logic. The catalog is reference data: the cart snapshots what it needs at
// add time and never reads back into it.
package catalog

import (
	"fmt"

	"github.com/lapescados/storefront/internal/domain"
)

// CategoryAll is the filter value matching every category.
const CategoryAll = "todos"

var categoryNames = map[string]string{
	"mariscos": "Mariscos e Frutos do Mar",
	"peixes":   "Peixes Frescos",
	"filetes":  "Filetes de Peixe",
	"lombos":   "Lombos de Peixe",
}

// All returns the full catalog in display order. Callers get a fresh slice,
// the backing data is never exposed for mutation.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// BySKU looks a product up by its SKU.
func BySKU(sku string) (domain.Product, bool) {
	for _, p := range products {
		if p.SKU == sku {
			return p, true
		}
	}
	return domain.Product{}, false
}

// CategoryName maps a category tag to its display name.
func CategoryName(tag string) string {
	if name, ok := categoryNames[tag]; ok {
		return name
	}
	return "Produtos do Mar"
}

// ResultsLabel renders the results counter shown under the filters.
func ResultsLabel(n int) string {
	if n == 1 {
		return "1 produto encontrado"
	}
	return fmt.Sprintf("%d produtos encontrados", n)
}
