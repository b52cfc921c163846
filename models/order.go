package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the recognised order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an order in state s may move to next.
// DELIVERED and CANCELLED are terminal; every other state may either
// advance one step or be cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderProcessing || next == OrderCancelled
	case OrderProcessing:
		return next == OrderShipped || next == OrderCancelled
	case OrderShipped:
		return next == OrderDelivered || next == OrderCancelled
	}
	return false
}

// Order is a client purchase request against a warehouse. Items are
// created atomically with the order row.
type Order struct {
	OrderID     int64       `json:"id"`
	ClientID    int64       `json:"clientId"`
	WarehouseID int64       `json:"warehouseId"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (o Order) TableName() string {
	return "orders"
}

// OrderFilter holds the optional criteria of an order list query.
// ClientID restricts the result to one client's orders; CLIENT callers are
// always constrained to their own.
type OrderFilter struct {
	ClientID    int64
	WarehouseID int64
	Status      OrderStatus
	Limit       uint64
	Offset      uint64
}

// OrderItem is a single product line of an order. UnitPrice is captured at
// order time so later price changes do not rewrite order history.
type OrderItem struct {
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (i OrderItem) TableName() string {
	return "order_items"
}
