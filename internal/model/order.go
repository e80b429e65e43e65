package model

// Order statuses used by the orders board.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
)

// OrderStatuses lists the board columns in display order.
var OrderStatuses = []string{OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered}

// ValidOrderStatus reports whether status is one of the board columns.
func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a sample customer order shown on the orders board. Orders are
// not persisted.
type Order struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Items    string `json:"items"`
	Amount   string `json:"amount"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// OrdersBoard groups sample orders by status.
type OrdersBoard struct {
	Pending   []Order `json:"pending"`
	Preparing []Order `json:"preparing"`
	Delivered []Order `json:"delivered"`
}

// ByStatus returns the column for status, or nil for an unknown status.
func (b OrdersBoard) ByStatus(status string) []Order {
	switch status {
	case OrderStatusPending:
		return b.Pending
	case OrderStatusPreparing:
		return b.Preparing
	case OrderStatusDelivered:
		return b.Delivered
	default:
		return nil
	}
}

// Counts returns the number of orders per status.
func (b OrdersBoard) Counts() map[string]int {
	return map[string]int{
		OrderStatusPending:   len(b.Pending),
		OrderStatusPreparing: len(b.Preparing),
		OrderStatusDelivered: len(b.Delivered),
	}
}

// OrdersResponse is returned by GET /api/orders.
type OrdersResponse struct {
	Status string         `json:"status,omitempty"`
	Counts map[string]int `json:"counts"`
	Orders []Order        `json:"orders"`
}
