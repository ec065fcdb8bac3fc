package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

var _ model.CustomerStore = (*CustomerRepository)(nil)

const customerColumns = `id, name, username, email, hashed_password, billing_address, shipping_address, phone_number, created_at`

type CustomerRepository struct {
	db *Connection
}

func NewCustomerRepository(db *Connection) *CustomerRepository {
	return &CustomerRepository{
		db: db,
	}
}

func scanCustomer(row pgx.Row) (model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Username, &c.Email, &c.PasswordHash,
		&c.BillingAddress, &c.ShippingAddress, &c.PhoneNumber, &c.CreatedAt,
	)
	return c, err
}

func (r *CustomerRepository) Create(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query := `INSERT INTO customers (name, username, email, hashed_password, billing_address, shipping_address, phone_number)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + customerColumns

	saved, err := scanCustomer(r.db.QueryRow(ctx, query,
		customer.Name, customer.Username, customer.Email, customer.PasswordHash,
		customer.BillingAddress, customer.ShippingAddress, customer.PhoneNumber,
	))
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok {
			switch constraint {
			case constraintCustomerEmail:
				return model.Customer{}, model.ErrDuplicateEmail
			case constraintCustomerUsername:
				return model.Customer{}, model.ErrDuplicateUsername
			}
		}
		if vErr := valueTooLongError(err); vErr != nil {
			return model.Customer{}, vErr
		}
		return model.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return saved, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, model.ErrNotFound
		}
		return model.Customer{}, fmt.Errorf("failed to get customer by id: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE lower(email) = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, model.NormalizeIdentity(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, model.ErrNotFound
		}
		return model.Customer{}, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) GetByUsername(ctx context.Context, username string) (model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE lower(username) = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, model.NormalizeIdentity(username)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, model.ErrNotFound
		}
		return model.Customer{}, fmt.Errorf("failed to get customer by username: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) List(ctx context.Context, page model.Page) ([]model.Customer, error) {
	page = clampPage(page)
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}
