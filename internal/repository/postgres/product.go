package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shopkeep/shopkeep-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

const productColumns = `id, name, description, tags, price, image_key, image_content_type, created_at`

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Tags, &p.Price,
		&p.ImageKey, &p.ImageContentType, &p.CreatedAt,
	)
	return p, err
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `INSERT INTO products (name, description, tags, price)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + productColumns

	saved, err := scanProduct(r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Tags, product.Price,
	))
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok && constraint == constraintProductName {
			return model.Product{}, model.ErrDuplicateProductName
		}
		if vErr := valueTooLongError(err); vErr != nil {
			return model.Product{}, vErr
		}
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return saved, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

// GetByName matches on the trimmed, case-folded name, the same expression
// the products_name_key index is built on.
func (r *ProductRepository) GetByName(ctx context.Context, name string) (model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE lower(btrim(name)) = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, model.NormalizeProductName(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by name: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context, page model.Page) ([]model.Product, error) {
	page = clampPage(page)
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, page.Offset, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) SetImage(ctx context.Context, id int64, key, contentType string) error {
	query := `UPDATE products SET image_key = $2, image_content_type = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, key, contentType)
	if err != nil {
		return fmt.Errorf("failed to set product image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
