package domain

// OrderStatus is the closed set of fulfilment states
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
)

// Order Model. Nothing in the site places orders yet; the type is kept as plain data.
type Order struct {
	ID     string      `json:"id"`      // Opaque identifier
	UserID string      `json:"user_id"` // References User.ID
	Items  []CartItem  `json:"items"`   // Snapshot of the cart at checkout
	Total  float64     `json:"total"`   // Sum of item subtotals
	Status OrderStatus `json:"status"`  // Pending, Shipped or Delivered
	Date   string      `json:"date"`    // YYYY-MM-DD
}
