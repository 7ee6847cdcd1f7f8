package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ordersvc/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// FindByOrderID returns the items of one order in insertion order. Item
// position is significant, the enriched view keeps it.
func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	query := `SELECT productId, quantity, price FROM OrderItems WHERE orderId = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}

// FindAllGrouped returns every order's items keyed by order id, each slice in
// insertion order.
func (r *MySQLOrderItemRepository) FindAllGrouped(ctx context.Context) (map[uint][]domain.OrderItem, error) {
	query := `SELECT orderId, productId, quantity, price FROM OrderItems ORDER BY orderId, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	itemsByOrder := make(map[uint][]domain.OrderItem)
	for rows.Next() {
		var orderID uint
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return itemsByOrder, nil
}
