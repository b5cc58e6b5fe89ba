package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lapescados/storefront/internal/catalog"
	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/format"
	"github.com/lapescados/storefront/internal/schema"
	"github.com/lapescados/storefront/internal/timing"
	"go.uber.org/zap"
)

const productSchemaSlot = "product-list"

// CartMembership answers whether a product is currently in the cart.
type CartMembership interface {
	IsPresent(sku string) bool
}

// Grid is the product grid controller: it filters the catalog, reflects
// in-cart status per product, keeps the results counter and replaces the
// product-list markup on every render.
type Grid struct {
	mu        sync.Mutex
	products  []domain.Product
	cart      CartMembership
	formatter *format.Formatter
	head      *schema.Head
	logger    *zap.Logger
	now       func() time.Time

	category string
	search   string
	visible  []domain.Product

	searchDebounce *timing.Debouncer
}

func NewGrid(products []domain.Product, cart CartMembership, formatter *format.Formatter,
	head *schema.Head, searchDelay time.Duration, logger *zap.Logger) (*Grid, error) {
	if cart == nil {
		return nil, fmt.Errorf("cart membership is nil")
	}
	if formatter == nil {
		return nil, fmt.Errorf("formatter is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if head == nil {
		logger.Warn("schema head not attached, product markup disabled")
	}

	g := &Grid{
		products:       products,
		cart:           cart,
		formatter:      formatter,
		head:           head,
		logger:         logger,
		now:            time.Now,
		category:       catalog.CategoryAll,
		searchDebounce: timing.NewDebouncer(searchDelay),
	}
	g.visible = products

	return g, nil
}

// SetCategory applies the category filter immediately.
func (g *Grid) SetCategory(category string) {
	g.mu.Lock()
	g.category = category
	g.mu.Unlock()
}

// SetSearch applies a search term immediately, the Enter-key path.
func (g *Grid) SetSearch(text string) {
	g.mu.Lock()
	g.search = text
	g.mu.Unlock()
}

// QueueSearch applies a search term after the debounce window, coalescing a
// typing burst into a single re-render.
func (g *Grid) QueueSearch(text string, rendered func(view string)) {
	g.searchDebounce.Trigger(func() {
		g.SetSearch(text)
		rendered(g.Render())
	})
}

// Stop cancels any pending debounced search.
func (g *Grid) Stop() {
	g.searchDebounce.Stop()
}

// Visible returns the products of the last render, in catalog order.
func (g *Grid) Visible() []domain.Product {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.Product, len(g.visible))
	copy(out, g.visible)
	return out
}

// ResultsCounter renders the label under the filters for the last render.
func (g *Grid) ResultsCounter() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return catalog.ResultsLabel(len(g.visible))
}

// Render applies the current filters and returns the grid text. The
// product-list markup in the head is fully replaced, never appended.
func (g *Grid) Render() string {
	g.mu.Lock()
	filtered := catalog.Filter(g.products, g.category, g.search)
	g.visible = filtered
	g.mu.Unlock()

	g.updateSchema(filtered)

	if len(filtered) == 0 {
		return "Nenhum produto encontrado\nTente ajustar os filtros ou termos de busca\n"
	}

	var sb strings.Builder
	for _, p := range filtered {
		marker := "[Adicionar]"
		if g.cart.IsPresent(p.SKU) {
			marker = "[No Carrinho]"
		}

		sb.WriteString(fmt.Sprintf("%s  %s — %s  %s\n",
			p.SKU, p.Name, g.formatter.PerUnit(p.Price, p.Unit), marker))
		sb.WriteString("  " + catalog.CategoryName(p.Category) + " · " + p.Description + "\n")
	}
	sb.WriteString(catalog.ResultsLabel(len(filtered)) + "\n")

	return sb.String()
}

func (g *Grid) updateSchema(products []domain.Product) {
	if g.head == nil {
		return
	}

	if err := g.head.Set(productSchemaSlot, schema.ProductList(products, g.now())); err != nil {
		g.logger.Warn("product markup update failed", zap.Error(err))
	}
}
