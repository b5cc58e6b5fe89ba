package domain

// CartLine is one product's presence in the cart. Product fields are frozen
// at the moment the line is created, later catalog edits do not reach it.
type CartLine struct {
	SKU       string
	Name      string
	UnitPrice Money
	Unit      string
	Quantity  int
	ImageRef  string
	Category  string
}

func (l CartLine) LineTotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Cart is an ordered sequence of lines, SKU unique. Insertion order is the
// display order.
type Cart struct {
	Lines []CartLine
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Find returns the index of the line with the given SKU, or -1.
func (c Cart) Find(sku string) int {
	for i, line := range c.Lines {
		if line.SKU == sku {
			return i
		}
	}
	return -1
}

func (c Cart) Contains(sku string) bool {
	return c.Find(sku) >= 0
}

// TotalQuantity sums quantities over all lines, the badge counter value.
func (c Cart) TotalQuantity() int {
	var total int
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// GrandTotal sums unit price times quantity over all lines.
func (c Cart) GrandTotal() Money {
	total := NewKz(0)
	for _, line := range c.Lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Clone returns a deep copy. Mutating the copy never affects the original,
// subscribers and callers always receive their own snapshot.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
