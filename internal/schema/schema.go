// Package schema builds the JSON-LD payloads attached to the page for search
// engines: an ItemList for the rendered product grid and an Order for the
// cart. Payloads are replaced wholesale on every render, stale entries never
// accumulate.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lapescados/storefront/internal/catalog"
	"github.com/lapescados/storefront/internal/domain"
)

const (
	context      = "https://schema.org"
	currencyCode = "AOA"
	inStock      = "https://schema.org/InStock"

	// priceValidity is how far ahead the advertised price stays valid.
	priceValidity = 30 * 24 * time.Hour
)

type Product struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SKU         string `json:"sku"`
	Category    string `json:"category,omitempty"`
	Offers      *Offer `json:"offers,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Offer struct {
	Type            string             `json:"@type"`
	ItemOffered     *Product           `json:"itemOffered,omitempty"`
	Price           json.Number        `json:"price"`
	PriceCurrency   string             `json:"priceCurrency"`
	Availability    string             `json:"availability,omitempty"`
	PriceValidUntil string             `json:"priceValidUntil,omitempty"`
	Quantity        *QuantitativeValue `json:"eligibleQuantity,omitempty"`
}

type QuantitativeValue struct {
	Type  string `json:"@type"`
	Value int    `json:"value"`
}

type ListItem struct {
	Type     string  `json:"@type"`
	Position int     `json:"position"`
	Item     Product `json:"item"`
}

type ItemList struct {
	Context  string     `json:"@context"`
	Type     string     `json:"@type"`
	Elements []ListItem `json:"itemListElement"`
}

type Order struct {
	Context        string  `json:"@context"`
	Type           string  `json:"@type"`
	AcceptedOffers []Offer `json:"acceptedOffer"`
}

// ProductList describes the currently displayed products, position following
// display order.
func ProductList(products []domain.Product, now time.Time) ItemList {
	validUntil := now.Add(priceValidity).Format(time.DateOnly)

	elements := make([]ListItem, 0, len(products))
	for i, p := range products {
		elements = append(elements, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Item: Product{
				Type:        "Product",
				Name:        p.Name,
				Description: p.Description,
				SKU:         p.SKU,
				Category:    catalog.CategoryName(p.Category),
				Offers: &Offer{
					Type:            "Offer",
					Price:           amount(p.Price),
					PriceCurrency:   currencyCode,
					Availability:    inStock,
					PriceValidUntil: validUntil,
				},
				Image: p.ImageRef,
			},
		})
	}

	return ItemList{
		Context:  context,
		Type:     "ItemList",
		Elements: elements,
	}
}

// CartOrder describes the cart contents as an order with accepted offers.
func CartOrder(cart domain.Cart) Order {
	offers := make([]Offer, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		offers = append(offers, Offer{
			Type: "Offer",
			ItemOffered: &Product{
				Type:  "Product",
				Name:  line.Name,
				SKU:   line.SKU,
				Image: line.ImageRef,
			},
			Price:         amount(line.UnitPrice),
			PriceCurrency: currencyCode,
			Quantity: &QuantitativeValue{
				Type:  "QuantitativeValue",
				Value: line.Quantity,
			},
		})
	}

	return Order{
		Context:        context,
		Type:           "Order",
		AcceptedOffers: offers,
	}
}

// Head holds the injected payloads by slot name, the analog of the
// data-type-keyed script tags in the page head. Set replaces the previous
// payload for its slot.
type Head struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewHead() *Head {
	return &Head{slots: make(map[string][]byte)}
}

func (h *Head) Set(slot string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.slots[slot] = data

	return nil
}

func (h *Head) Remove(slot string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.slots, slot)
}

// Get returns the current payload for a slot, nil if none is attached.
func (h *Head) Get(slot string) []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.slots[slot]
}

func amount(m domain.Money) json.Number {
	return json.Number(m.Amount.String())
}
