package models

import "time"

// Warehouse is a physical storage site owned by a company. Products,
// inventory transactions and orders all reference a warehouse; deleting a
// warehouse cascades over those records inside one database transaction.
type Warehouse struct {
	WarehouseID int64     `json:"id"`
	CompanyID   int64     `json:"companyId"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Capacity    int64     `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (w Warehouse) TableName() string {
	return "warehouses"
}
