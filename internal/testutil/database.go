package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'ordersvc_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/ordersvc_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the order tables. Order ids come from the order
// placement collaborator, so Orders.id is plain, not auto increment.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL PRIMARY KEY,
		userId INT NOT NULL,
		totalAmount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		orderDate DATETIME NOT NULL,
		street VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		state VARCHAR(100) NOT NULL DEFAULT '',
		zipCode VARCHAR(20) NOT NULL DEFAULT '',
		country VARCHAR(100) NOT NULL DEFAULT '',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_user (userId),
		INDEX idx_status (status),
		INDEX idx_order_date (orderDate)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		productId INT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

func InsertOrder(t *testing.T, db *sql.DB, id uint, userID int, totalAmount, status string) {
	query := `
		INSERT INTO Orders (id, userId, totalAmount, status, orderDate, street, city, state, zipCode, country)
		VALUES (?, ?, ?, ?, NOW(), '123 Main St', 'New York', 'NY', '10001', 'USA')
	`
	if _, err := db.Exec(query, id, userID, totalAmount, status); err != nil {
		t.Fatalf("failed to insert order %d: %v", id, err)
	}
}

func InsertOrderItem(t *testing.T, db *sql.DB, orderID uint, productID, quantity int, price string) {
	query := `INSERT INTO OrderItems (orderId, productId, quantity, price) VALUES (?, ?, ?, ?)`
	if _, err := db.Exec(query, orderID, productID, quantity, price); err != nil {
		t.Fatalf("failed to insert item for order %d: %v", orderID, err)
	}
}
