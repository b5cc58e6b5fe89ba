package ui_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lapescados/storefront/internal/catalog"
	"github.com/lapescados/storefront/internal/schema"
	"github.com/lapescados/storefront/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubMembership marks a fixed set of SKUs as in-cart.
type stubMembership struct {
	skus map[string]bool
}

func (s *stubMembership) IsPresent(sku string) bool {
	return s.skus[sku]
}

func newGrid(t *testing.T, inCart ...string) (*ui.Grid, *schema.Head) {
	t.Helper()

	skus := make(map[string]bool, len(inCart))
	for _, sku := range inCart {
		skus[sku] = true
	}

	head := schema.NewHead()
	grid, err := ui.NewGrid(catalog.All(), &stubMembership{skus: skus}, newFormatter(t),
		head, 10*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	return grid, head
}

func TestGridRenderAll(t *testing.T) {
	grid, head := newGrid(t)
	defer grid.Stop()

	view := grid.Render()

	assert.Contains(t, view, "SKU0052  Atum")
	assert.Contains(t, view, "[Adicionar]")
	assert.Contains(t, view, catalog.ResultsLabel(len(catalog.All())))
	assert.Len(t, grid.Visible(), len(catalog.All()))
	assert.NotEmpty(t, head.Get("product-list"))
}

func TestGridInCartMarker(t *testing.T) {
	grid, _ := newGrid(t, "SKU0052")
	defer grid.Stop()

	grid.SetSearch("atum")
	view := grid.Render()

	atum, ok := catalog.BySKU("SKU0052")
	require.True(t, ok)
	price := newFormatter(t).PerUnit(atum.Price, atum.Unit)

	assert.Contains(t, view, "SKU0052  Atum — "+price+"  [No Carrinho]")
	assert.Contains(t, view, "[Adicionar]", "other matches stay addable")
}

func TestGridFilters(t *testing.T) {
	grid, _ := newGrid(t)
	defer grid.Stop()

	grid.SetCategory("lombos")
	grid.Render()

	visible := grid.Visible()
	require.NotEmpty(t, visible)
	for _, p := range visible {
		assert.Equal(t, "lombos", p.Category)
	}
	assert.Equal(t, catalog.ResultsLabel(len(visible)), grid.ResultsCounter())
}

func TestGridNoResults(t *testing.T) {
	grid, head := newGrid(t)
	defer grid.Stop()

	grid.SetCategory("peixes")
	grid.SetSearch("lagosta azul")
	view := grid.Render()

	assert.Contains(t, view, "Nenhum produto encontrado")
	assert.Empty(t, grid.Visible())
	assert.Equal(t, "0 produtos encontrados", grid.ResultsCounter())

	// the markup is replaced with the empty list, not left stale
	assert.Contains(t, string(head.Get("product-list")), `"itemListElement":[]`)
}

func TestGridSchemaReplacedOnRerender(t *testing.T) {
	grid, head := newGrid(t)
	defer grid.Stop()

	grid.Render()
	full := string(head.Get("product-list"))

	grid.SetCategory("lombos")
	grid.Render()
	narrowed := string(head.Get("product-list"))

	assert.NotEqual(t, full, narrowed)
	assert.NotContains(t, narrowed, "Mariscos e Frutos do Mar")
}

func TestGridQueueSearchDebounces(t *testing.T) {
	grid, _ := newGrid(t)
	defer grid.Stop()

	var mu sync.Mutex
	var renders []string

	// a typing burst: only the final term renders
	for _, text := range []string{"a", "at", "atu", "atum"} {
		grid.QueueSearch(text, func(view string) {
			mu.Lock()
			renders = append(renders, view)
			mu.Unlock()
		})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(renders) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, renders[0], "Atum")
	for _, p := range grid.Visible() {
		assert.Contains(t, strings.ToLower(p.Name+" "+p.Description), "atum")
	}
}
