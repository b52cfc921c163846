// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package models

// Role is the closed set of actor roles recognised by the system.
// Role values are stored in the users table and embedded in JWT claims.
type Role string

const (
	// RoleAdmin grants unrestricted access. Admin satisfies every role gate.
	RoleAdmin Role = "ADMIN"

	// RoleStaff marks warehouse personnel allowed to manage stock.
	RoleStaff Role = "STAFF"

	// RoleClient is the default role assigned at signup.
	RoleClient Role = "CLIENT"

	// RoleSupplier marks external suppliers.
	RoleSupplier Role = "SUPPLIER"

	// RoleVendor marks external vendors.
	RoleVendor Role = "VENDOR"
)

// Valid reports whether r is one of the recognised role values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleClient, RoleSupplier, RoleVendor:
		return true
	}
	return false
}

// Satisfies reports whether r is allowed through a gate requiring one of
// allowed. Admin satisfies every gate regardless of the required set.
func (r Role) Satisfies(allowed ...Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
