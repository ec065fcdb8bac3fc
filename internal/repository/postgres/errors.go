package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	valueTooLong        = "22001"
)

// Constraint names declared in database/migrations.
const (
	constraintCustomerEmail    = "customers_email_key"
	constraintCustomerUsername = "customers_username_key"
	constraintProductName      = "products_name_key"
	constraintOrderCustomer    = "orders_customer_id_fkey"
)

func pgErrorConstraint(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func isUniqueViolation(err error) (string, bool) {
	return pgErrorConstraint(err, uniqueViolation)
}

func isForeignKeyViolation(err error) (string, bool) {
	return pgErrorConstraint(err, foreignKeyViolation)
}

// valueTooLongError converts a column length overflow into a validation
// error. It returns nil for any other error.
func valueTooLongError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == valueTooLong {
		return model.NewValidationError(pgErr.ColumnName, "value is too long")
	}
	return nil
}

func clampPage(page model.Page) model.Page {
	if page.Offset < 0 {
		page.Offset = 0
	}
	if page.Limit <= 0 {
		page.Limit = model.DefaultPageLimit
	}
	if page.Limit > model.MaxPageLimit {
		page.Limit = model.MaxPageLimit
	}
	return page
}
