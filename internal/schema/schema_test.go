package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{SKU: "SKU0052", Name: "Atum", Price: domain.NewKz(2950), Unit: "kg", Category: "peixes", ImageRef: "atum.jpg", Description: "Atum fresco."},
		{SKU: "SKU0005", Name: "Polvo", Price: domain.NewKz(6500), Unit: "kg", Category: "mariscos", ImageRef: "polvo.jpg", Description: "Polvo fresco."},
	}
}

func TestProductList(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	list := schema.ProductList(sampleProducts(), now)

	require.Len(t, list.Elements, 2)
	assert.Equal(t, "https://schema.org", list.Context)
	assert.Equal(t, "ItemList", list.Type)

	first := list.Elements[0]
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, "Atum", first.Item.Name)
	assert.Equal(t, "Peixes Frescos", first.Item.Category)
	require.NotNil(t, first.Item.Offers)
	assert.Equal(t, json.Number("2950"), first.Item.Offers.Price)
	assert.Equal(t, "AOA", first.Item.Offers.PriceCurrency)
	assert.Equal(t, "https://schema.org/InStock", first.Item.Offers.Availability)
	assert.Equal(t, "2026-03-31", first.Item.Offers.PriceValidUntil)

	assert.Equal(t, 2, list.Elements[1].Position)
}

func TestProductListJSONShape(t *testing.T) {
	list := schema.ProductList(sampleProducts(), time.Now())

	data, err := json.Marshal(list)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "https://schema.org", decoded["@context"])
	assert.Equal(t, "ItemList", decoded["@type"])

	elements, ok := decoded["itemListElement"].([]any)
	require.True(t, ok)
	require.Len(t, elements, 2)

	item := elements[0].(map[string]any)["item"].(map[string]any)
	offers := item["offers"].(map[string]any)
	// price must serialize as a JSON number, not a string
	assert.Equal(t, float64(2950), offers["price"])
}

func TestCartOrder(t *testing.T) {
	cart := domain.Cart{Lines: []domain.CartLine{
		{SKU: "SKU0052", Name: "Atum", UnitPrice: domain.NewKz(2950), Unit: "kg", Quantity: 3, ImageRef: "atum.jpg"},
	}}

	order := schema.CartOrder(cart)

	assert.Equal(t, "Order", order.Type)
	require.Len(t, order.AcceptedOffers, 1)

	offer := order.AcceptedOffers[0]
	require.NotNil(t, offer.ItemOffered)
	assert.Equal(t, "Atum", offer.ItemOffered.Name)
	assert.Equal(t, "SKU0052", offer.ItemOffered.SKU)
	require.NotNil(t, offer.Quantity)
	assert.Equal(t, "QuantitativeValue", offer.Quantity.Type)
	assert.Equal(t, 3, offer.Quantity.Value)
}

func TestHeadReplacesPayload(t *testing.T) {
	head := schema.NewHead()

	require.NoError(t, head.Set("product-list", schema.ProductList(sampleProducts(), time.Now())))
	first := head.Get("product-list")
	require.NotEmpty(t, first)

	// a re-render with fewer products fully replaces the slot
	require.NoError(t, head.Set("product-list", schema.ProductList(sampleProducts()[:1], time.Now())))
	second := head.Get("product-list")

	var list map[string]any
	require.NoError(t, json.Unmarshal(second, &list))
	assert.Len(t, list["itemListElement"], 1)

	head.Remove("product-list")
	assert.Nil(t, head.Get("product-list"))
}
