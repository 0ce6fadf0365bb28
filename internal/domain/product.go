package domain

// premiumThreshold is the price above which a product is badged as premium
const premiumThreshold = 100

// Product Model
type Product struct {
	ID          string        `json:"id"`          // Unique catalog identifier
	Name        string        `json:"name"`        // Display name
	Price       float64       `json:"price"`       // Positive unit price
	Category    SportCategory `json:"category"`    // Sport the gear belongs to
	Image       string        `json:"image"`       // Product photo
	Description string        `json:"description"` // Marketing copy
}

// Premium reports whether the product is priced above the premium threshold
func (p Product) Premium() bool {
	return p.Price > premiumThreshold
}

// CartItem is a product together with how many units the visitor added
type CartItem struct {
	Product      // Embedded product fields
	Quantity int `json:"quantity"` // Always at least 1
}

// Subtotal returns price times quantity
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
