// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package models

import "time"

// TransactionType classifies an inventory movement.
type TransactionType string

const (
	// TransactionIn increases the product quantity (goods received).
	TransactionIn TransactionType = "IN"

	// TransactionOut decreases the product quantity (goods shipped).
	TransactionOut TransactionType = "OUT"

	// TransactionAdjustment sets an explicit correction delta, positive
	// or negative (stocktake results, damage write-offs).
	TransactionAdjustment TransactionType = "ADJUSTMENT"
)

// Valid reports whether t is one of the recognised transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionAdjustment:
		return true
	}
	return false
}

// InventoryTransaction is the immutable audit record of a single stock
// movement. The quantity delta is applied to the product row in the same
// database transaction that inserts this record.
type InventoryTransaction struct {
	TransactionID int64           `json:"id"`
	ProductID     int64           `json:"productId"`
	WarehouseID   int64           `json:"warehouseId"`
	Quantity      int64           `json:"quantity"`
	Type          TransactionType `json:"type"`
	Note          string          `json:"note,omitempty"`
	CreatedBy     int64           `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (t InventoryTransaction) TableName() string {
	return "inventory_transactions"
}

// InventoryFilter holds the optional criteria of a transaction list query.
type InventoryFilter struct {
	WarehouseID int64
	ProductID   int64
	Limit       uint64
	Offset      uint64
}
