package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

const orderColumns = `id, customer_id, order_date, total_price, status, created_at`

type OrderRepository struct {
	db *Connection
}

func NewOrderRepository(db *Connection) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var o model.Order
	var status string
	err := row.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalPrice, &status, &o.CreatedAt)
	o.Status = model.OrderStatus(status)
	return o, err
}

func (r *OrderRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	query := `INSERT INTO orders (customer_id, order_date, total_price, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + orderColumns

	saved, err := scanOrder(r.db.QueryRow(ctx, query,
		order.CustomerID, order.OrderDate, order.TotalPrice, string(order.Status),
	))
	if err != nil {
		if constraint, ok := isForeignKeyViolation(err); ok && constraint == constraintOrderCustomer {
			return model.Order{}, &model.CustomerNotFoundError{CustomerID: order.CustomerID}
		}
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return saved, nil
}

func (r *OrderRepository) ListByCustomerAndStatus(ctx context.Context, customerID int64, status model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
			  WHERE customer_id = $1 AND status = $2
			  ORDER BY id`

	rows, err := r.db.Query(ctx, query, customerID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by customer: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) List(ctx context.Context, page model.Page) ([]model.Order, error) {
	page = clampPage(page)
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}
