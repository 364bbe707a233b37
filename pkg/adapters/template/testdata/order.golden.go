// Order represents a customer order with items and shipping information
type Order struct {
	Id float64 `json:"id"`
	CustomerId float64 `json:"customerId"`
	OrderDate time.Time `json:"orderDate"`
	Status string `json:"status"`
	Items []any `json:"items,omitempty"`
	ShippingAddress map[string]any `json:"shippingAddress"`
	TotalAmount float64 `json:"totalAmount"`
	Notes string `json:"notes,omitempty"`
}