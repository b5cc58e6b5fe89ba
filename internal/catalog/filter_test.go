package catalog_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lapescados/storefront/internal/catalog"
	"github.com/lapescados/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestFilter(t *testing.T) {
	all := catalog.All()

	tests := []struct {
		name     string
		category string
		search   string
		check    func(t *testing.T, got []domain.Product)
	}{
		{
			name:     "todos with empty search returns everything in order",
			category: catalog.CategoryAll,
			search:   "",
			check: func(t *testing.T, got []domain.Product) {
				assertProductsEqual(t, all, got)
			},
		},
		{
			name:     "empty category behaves like todos",
			category: "",
			search:   "",
			check: func(t *testing.T, got []domain.Product) {
				assertProductsEqual(t, all, got)
			},
		},
		{
			name:     "category and search are ANDed",
			category: "peixes",
			search:   "atum",
			check: func(t *testing.T, got []domain.Product) {
				require.NotEmpty(t, got)
				for _, p := range got {
					assert.Equal(t, "peixes", p.Category)
					assert.Contains(t, normalized(p), "atum")
				}
				// "Filetes de atum" is categoria filetes, must not appear
				for _, p := range got {
					assert.NotEqual(t, "SKU0061", p.SKU)
				}
			},
		},
		{
			name:     "search is case insensitive over name and description",
			category: catalog.CategoryAll,
			search:   "ATUM",
			check: func(t *testing.T, got []domain.Product) {
				require.NotEmpty(t, got)
				lower := catalog.Filter(all, catalog.CategoryAll, "atum")
				assertProductsEqual(t, lower, got)
			},
		},
		{
			name:     "description-only match is found",
			category: catalog.CategoryAll,
			search:   "rissóis",
			check: func(t *testing.T, got []domain.Product) {
				require.NotEmpty(t, got)
				assert.Equal(t, "SKU0007", got[0].SKU)
			},
		},
		{
			name:     "no match yields empty result",
			category: "peixes",
			search:   "lagosta azul do atlântico norte",
			check: func(t *testing.T, got []domain.Product) {
				assert.Empty(t, got)
			},
		},
		{
			name:     "unknown category yields empty result",
			category: "congelados",
			search:   "",
			check: func(t *testing.T, got []domain.Product) {
				assert.Empty(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(all, tt.category, tt.search)
			tt.check(t, got)
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := catalog.Filter(catalog.All(), "mariscos", "")

	require.NotEmpty(t, got)
	prev := ""
	for _, p := range got {
		assert.Greater(t, p.SKU, prev, "catalog order must be preserved")
		prev = p.SKU
	}
}

func TestBySKU(t *testing.T) {
	p, ok := catalog.BySKU("SKU0052")
	require.True(t, ok)
	assert.Equal(t, "Atum", p.Name)

	_, ok = catalog.BySKU("SKU9999")
	assert.False(t, ok)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Peixes Frescos", catalog.CategoryName("peixes"))
	assert.Equal(t, "Mariscos e Frutos do Mar", catalog.CategoryName("mariscos"))
	assert.Equal(t, "Produtos do Mar", catalog.CategoryName("desconhecida"))
}

func TestResultsLabel(t *testing.T) {
	assert.Equal(t, "1 produto encontrado", catalog.ResultsLabel(1))
	assert.Equal(t, "0 produtos encontrados", catalog.ResultsLabel(0))
	assert.Equal(t, "79 produtos encontrados", catalog.ResultsLabel(79))
}

func TestAllReturnsCopy(t *testing.T) {
	first := catalog.All()
	first[0].Name = "tampered"

	again := catalog.All()
	assert.NotEqual(t, "tampered", again[0].Name)
}

func normalized(p domain.Product) string {
	return strings.ToLower(p.Name + " " + p.Description)
}

func assertProductsEqual(t *testing.T, expected, actual []domain.Product) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	diff := cmp.Diff(expected, actual, cmp.Options{currencyComparer, decimalComparer})
	assert.Empty(t, diff)
}
