package models

import "time"

// Company is the top-level organisational entity. Warehouses belong to
// exactly one company.
type Company struct {
	CompanyID   int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c Company) TableName() string {
	return "companies"
}
