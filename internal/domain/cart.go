package domain

// VariantKey identifies a cart line by product and selected variant.
// Two adds with the same key merge into one line.
type VariantKey struct {
	ProductID     string
	SelectedColor string
	SelectedSize  string
}

// CartLine is one entry in the cart. The product display fields are a
// snapshot taken at add time; CartID addresses the line independently of
// the variant key. The JSON layout matches the persisted slot format.
type CartLine struct {
	CartID        string  `json:"cartId"`
	ProductID     string  `json:"id"`
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	PriceCents    int64   `json:"priceCents,omitempty"`
	ImgURL        string  `json:"imgURL"`
	SelectedColor string  `json:"selectedColor,omitempty"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	Quantity      int     `json:"quantity"`
	Rating        float64 `json:"rating,omitempty"`
}

// Key returns the variant key of the line.
func (l CartLine) Key() VariantKey {
	return VariantKey{
		ProductID:     l.ProductID,
		SelectedColor: l.SelectedColor,
		SelectedSize:  l.SelectedSize,
	}
}

// TotalCents is the line subtotal.
func (l CartLine) TotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}
