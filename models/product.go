package models

import "time"

// Product is a stocked item. SKU is unique within a warehouse; Quantity is
// mutated only through inventory transactions so that every stock change
// leaves an audit record.
type Product struct {
	ProductID   int64     `json:"id"`
	WarehouseID int64     `json:"warehouseId"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UnitPrice   float64   `json:"unitPrice"`
	Quantity    int64     `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p Product) TableName() string {
	return "products"
}

// ProductFilter holds the optional criteria of a product list query.
// Zero values mean "no constraint"; the repository builds the WHERE clause
// dynamically from the non-zero fields.
type ProductFilter struct {
	WarehouseID int64
	SKUPrefix   string
	NameLike    string
	MinPrice    float64
	MaxPrice    float64
	Limit       uint64
	Offset      uint64
}
