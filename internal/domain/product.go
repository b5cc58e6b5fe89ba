package domain

// Product is a static catalog entry, read-only reference data.
type Product struct {
	SKU         string
	Name        string
	Price       Money
	Unit        string
	ImageRef    string
	Category    string
	Description string
}

// Snapshot copies the product fields into a new cart line with quantity 1.
func (p Product) Snapshot() CartLine {
	return CartLine{
		SKU:       p.SKU,
		Name:      p.Name,
		UnitPrice: p.Price,
		Unit:      p.Unit,
		Quantity:  1,
		ImageRef:  p.ImageRef,
		Category:  p.Category,
	}
}
