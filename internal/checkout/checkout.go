// Package checkout turns a cart into a WhatsApp order message and deep link.
// There is no payment flow: checkout is formatting the cart into a pre-filled
// message the customer sends themselves.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/format"
)

var (
	// ErrEmptyCart rejects checkout attempts on an empty cart before any
	// message is built.
	ErrEmptyCart = errors.New("carrinho vazio")

	// ErrLocationMissing signals the caller to confirm with the customer
	// before proceeding without a delivery location.
	ErrLocationMissing = errors.New("localização não informada")
)

type Builder struct {
	formatter *format.Formatter
	phone     string
	now       func() time.Time
}

func NewBuilder(formatter *format.Formatter, phone string, now func() time.Time) (*Builder, error) {
	if formatter == nil {
		return nil, fmt.Errorf("formatter is nil")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is empty")
	}
	if now == nil {
		now = time.Now
	}

	return &Builder{
		formatter: formatter,
		phone:     phone,
		now:       now,
	}, nil
}

// Greeting picks the salutation by hour of day: before 12 "Bom dia", before
// 18 "Boa tarde", otherwise "Boa noite".
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Bom dia"
	case hour < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}

// BuildMessage renders the plain-text order message. The caller must have
// rejected empty carts already; Checkout does that.
func (b *Builder) BuildMessage(cart domain.Cart, customerName, customerLocation string) string {
	var sb strings.Builder

	sb.WriteString(Greeting(b.now()) + ",\n\n")

	if customerName != "" {
		sb.WriteString("Meu nome é " + customerName + ".\n")
	} else {
		sb.WriteString("Meu nome é (não informado).\n")
	}
	sb.WriteString("Gostaria de fazer a seguinte encomenda:\n\n")

	for _, line := range cart.Lines {
		sb.WriteString("• " + line.Name + "\n")
		sb.WriteString(fmt.Sprintf("  Quantidade: %d %s\n", line.Quantity, line.Unit))
		sb.WriteString("  Preço: " + b.formatter.Price(line.LineTotal()) + "\n\n")
	}

	location := customerLocation
	if location == "" {
		location = "Não informada"
	}
	sb.WriteString("📍 *Localização:* " + location + "\n")
	sb.WriteString("💰 *Total:* " + b.formatter.Price(cart.GrandTotal()) + "\n\n")
	sb.WriteString("Por favor, confirmar disponibilidade e condições de entrega.\n")
	sb.WriteString("Obrigado! 🐟")

	return sb.String()
}

// Link builds the wa.me deep link with the message percent-encoded.
func (b *Builder) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.phone, encodeText(message))
}

// Checkout validates and builds the deep link. An empty location is rejected
// with ErrLocationMissing unless the customer confirmed proceeding without
// one; that is a user decision, not a hard failure.
func (b *Builder) Checkout(cart domain.Cart, customerName, customerLocation string, confirmedWithoutLocation bool) (string, error) {
	if cart.IsEmpty() {
		return "", ErrEmptyCart
	}

	customerName = strings.TrimSpace(customerName)
	customerLocation = strings.TrimSpace(customerLocation)

	if customerLocation == "" && !confirmedWithoutLocation {
		return "", ErrLocationMissing
	}

	return b.Link(b.BuildMessage(cart, customerName, customerLocation)), nil
}

// encodeText matches encodeURIComponent: spaces become %20, not "+".
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
