package domain

// CartLine combines a product snapshot with a quantity. The cart holds
// at most one line per product id.
type CartLine struct {
	Product
	Quantity int
}

// LineTotal is the line's contribution to the cart subtotal.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
