// Package ui holds the widget state machines and renderers: cart panel,
// header badge, scroll-driven header style, banner rotator, mobile menu and
// the product grid. Widgets never reference each other; they coordinate
// through the cart store, the broadcaster and state-change listeners.
package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/format"
	"github.com/lapescados/storefront/internal/schema"
	"go.uber.org/zap"
)

const cartSchemaSlot = "cart-schema"

// Panel renders the cart drawer: one block per line with quantity controls
// context, a grand total, and the empty-cart message. It re-renders from the
// full snapshot on every notification and on open.
type Panel struct {
	mu          sync.Mutex
	formatter   *format.Formatter
	placeholder string
	head        *schema.Head
	logger      *zap.Logger
	view        string
}

func NewPanel(formatter *format.Formatter, placeholder string, head *schema.Head, logger *zap.Logger) (*Panel, error) {
	if formatter == nil {
		return nil, fmt.Errorf("formatter is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if head == nil {
		logger.Warn("schema head not attached, cart markup disabled")
	}

	return &Panel{
		formatter:   formatter,
		placeholder: placeholder,
		head:        head,
		logger:      logger,
	}, nil
}

// HandleCartChange is the broadcast handler; it re-renders the panel view.
func (p *Panel) HandleCartChange(cart domain.Cart) {
	p.render(cart)
}

// Open renders and returns the current view, the open-drawer path.
func (p *Panel) Open(cart domain.Cart) string {
	return p.render(cart)
}

// View returns the last rendered text.
func (p *Panel) View() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.view
}

func (p *Panel) render(cart domain.Cart) string {
	var sb strings.Builder

	if cart.IsEmpty() {
		sb.WriteString("Seu carrinho está vazio\n")
		sb.WriteString(p.formatter.Total(domain.NewKz(0)) + "\n")
	} else {
		for _, line := range cart.Lines {
			img := line.ImageRef
			if img == "" {
				img = p.placeholder
			}

			sb.WriteString(line.Name + "\n")
			sb.WriteString("  " + p.formatter.PerUnit(line.UnitPrice, line.Unit) + "\n")
			sb.WriteString(fmt.Sprintf("  Quantidade: %d\n", line.Quantity))
			sb.WriteString("  Subtotal: " + p.formatter.Price(line.LineTotal()) + "\n")
			sb.WriteString("  [img: " + img + "]\n")
		}
		sb.WriteString(p.formatter.Total(cart.GrandTotal()) + "\n")
	}

	view := sb.String()

	p.mu.Lock()
	p.view = view
	p.mu.Unlock()

	p.updateSchema(cart)

	return view
}

// updateSchema replaces the cart order markup; an empty cart detaches it.
func (p *Panel) updateSchema(cart domain.Cart) {
	if p.head == nil {
		return
	}

	if cart.IsEmpty() {
		p.head.Remove(cartSchemaSlot)
		return
	}

	if err := p.head.Set(cartSchemaSlot, schema.CartOrder(cart)); err != nil {
		p.logger.Warn("cart markup update failed", zap.Error(err))
	}
}
