// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package store

// Static SQL text shared by both backends. Placeholders use the $N ordinal
// form. pgx binds them by number, but go-sqlite3 numbers $N parameters by
// order of first occurrence, so every statement must keep its placeholders
// in ascending order or the two backends would bind arguments differently.
const (
	userColumns = `user_id, username, password_hash, email, is_active, role, last_login, created_at`

	createUser = `INSERT INTO users (username, password_hash, email, role)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	createProfile = `INSERT INTO profiles (user_id, language, timezone)
    VALUES ($1, $2, $3);`

	createClientProfile = `INSERT INTO client_profiles (user_id, account_status)
    VALUES ($1, $2);`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	updateLastLogin = `UPDATE users
    SET last_login = CURRENT_TIMESTAMP
    WHERE user_id = $1;`

	updateUserRole = `UPDATE users
    SET role = $1
    WHERE user_id = $2
    RETURNING ` + userColumns + `;`

	setUserActive = `UPDATE users
    SET is_active = $1
    WHERE user_id = $2
    RETURNING ` + userColumns + `;`
)

const (
	companyColumns = `company_id, name, description, created_at`

	createCompany = `INSERT INTO companies (name, description)
    VALUES ($1, $2)
    RETURNING ` + companyColumns + `;`

	findCompanyByID = `SELECT ` + companyColumns + `
    FROM companies
    WHERE company_id = $1;`

	listCompanies = `SELECT ` + companyColumns + `
    FROM companies
    ORDER BY company_id;`

	updateCompany = `UPDATE companies
    SET name = $1, description = $2
    WHERE company_id = $3
    RETURNING ` + companyColumns + `;`

	deleteCompany = `DELETE FROM companies
    WHERE company_id = $1;`
)

const (
	warehouseColumns = `warehouse_id, company_id, name, location, capacity, created_at`

	createWarehouse = `INSERT INTO warehouses (company_id, name, location, capacity)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + warehouseColumns + `;`

	findWarehouseByID = `SELECT ` + warehouseColumns + `
    FROM warehouses
    WHERE warehouse_id = $1;`

	listWarehouses = `SELECT ` + warehouseColumns + `
    FROM warehouses
    ORDER BY warehouse_id;`

	updateWarehouse = `UPDATE warehouses
    SET name = $1, location = $2, capacity = $3
    WHERE warehouse_id = $4
    RETURNING ` + warehouseColumns + `;`

	// Cascade steps of DeleteWarehouse, executed in child-first order
	// inside one transaction.
	deleteWarehouseOrderItems = `DELETE FROM order_items
    WHERE order_id IN (SELECT order_id FROM orders WHERE warehouse_id = $1);`

	deleteWarehouseOrders = `DELETE FROM orders
    WHERE warehouse_id = $1;`

	deleteWarehouseTransactions = `DELETE FROM inventory_transactions
    WHERE warehouse_id = $1;`

	deleteWarehouseProducts = `DELETE FROM products
    WHERE warehouse_id = $1;`

	deleteWarehouse = `DELETE FROM warehouses
    WHERE warehouse_id = $1;`
)

const (
	productColumns = `product_id, warehouse_id, sku, name, description, unit_price, quantity, created_at`

	createProduct = `INSERT INTO products (warehouse_id, sku, name, description, unit_price, quantity)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + productColumns + `;`

	findProductByID = `SELECT ` + productColumns + `
    FROM products
    WHERE product_id = $1;`

	updateProduct = `UPDATE products
    SET sku = $1, name = $2, description = $3, unit_price = $4
    WHERE product_id = $5
    RETURNING ` + productColumns + `;`

	deleteProduct = `DELETE FROM products
    WHERE product_id = $1;`

	// applyQuantityDelta is guarded so that an outbound movement can never
	// drive stock negative; zero rows affected means either a missing
	// product or insufficient stock, disambiguated by a follow-up lookup.
	applyQuantityDelta = `UPDATE products
    SET quantity = quantity + $1
    WHERE product_id = $2 AND quantity + $1 >= 0
    RETURNING warehouse_id, quantity;`
)

const (
	transactionColumns = `transaction_id, product_id, warehouse_id, quantity, transaction_type, note, created_by, created_at`

	createTransaction = `INSERT INTO inventory_transactions (product_id, warehouse_id, quantity, transaction_type, note, created_by)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + transactionColumns + `;`
)

const (
	orderColumns = `order_id, client_id, warehouse_id, status, created_at`

	createOrder = `INSERT INTO orders (client_id, warehouse_id, status)
    VALUES ($1, $2, $3)
    RETURNING ` + orderColumns + `;`

	createOrderItem = `INSERT INTO order_items (order_id, product_id, quantity, unit_price)
    VALUES ($1, $2, $3, $4);`

	findOrderByID = `SELECT ` + orderColumns + `
    FROM orders
    WHERE order_id = $1;`

	findOrderItems = `SELECT order_id, product_id, quantity, unit_price
    FROM order_items
    WHERE order_id = $1
    ORDER BY product_id;`

	// updateOrderStatus is compare-and-set on the current status so that
	// two concurrent transitions cannot both succeed.
	updateOrderStatus = `UPDATE orders
    SET status = $1
    WHERE order_id = $2 AND status = $3
    RETURNING ` + orderColumns + `;`
)
