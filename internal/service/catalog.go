package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// Catalog manages products and their images.
type Catalog struct {
	productStore  model.ProductStore
	storage       model.Storage
	maxImageBytes int64
	logger        *logger.Logger
}

// NewCatalog creates a Catalog. storage may be nil, in which case image
// operations return model.ErrStorageUnavailable.
func NewCatalog(
	productStore model.ProductStore,
	storage model.Storage,
	maxImageBytes int64,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		productStore:  productStore,
		storage:       storage,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

func (s *Catalog) CreateProduct(ctx context.Context, params model.CreateProductParams) (model.Product, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Description = strings.TrimSpace(params.Description)
	params.Tags = trimOptional(params.Tags)

	s.logger.Debug("Catalog service: creating product",
		"name", params.Name)

	if params.Name == "" {
		return model.Product{}, model.NewValidationError("name", "is required")
	}
	if err := checkMaxLength("name", params.Name, model.MaxNameLength); err != nil {
		return model.Product{}, err
	}
	if params.Price < 0 || math.IsNaN(params.Price) || math.IsInf(params.Price, 0) {
		return model.Product{}, model.NewValidationError("price", "must be a non-negative number")
	}

	product, err := s.productStore.Create(ctx, model.Product{
		Name:        params.Name,
		Description: params.Description,
		Tags:        params.Tags,
		Price:       params.Price,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateProductName) {
			s.logger.Info("Catalog service: product name taken",
				"name", params.Name)
			return model.Product{}, err
		}
		s.logger.Error("Catalog service: failed to create product",
			"name", params.Name,
			"error", err.Error())
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Catalog service: product created",
		"product_id", product.ID,
		"name", product.Name)

	return product, nil
}

// GetProductByName looks a product up ignoring case and surrounding whitespace.
func (s *Catalog) GetProductByName(ctx context.Context, name string) (model.Product, error) {
	product, err := s.productStore.GetByName(ctx, model.NormalizeProductName(name))
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product by name: %w", err)
	}
	return product, nil
}

func (s *Catalog) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}
	return product, nil
}

func (s *Catalog) ListProducts(ctx context.Context, page model.Page) ([]model.Product, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	products, err := s.productStore.List(ctx, page)
	if err != nil {
		s.logger.Error("Catalog service: failed to list products",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// AttachImage stores size bytes read from r as the product's image,
// replacing any previous one.
func (s *Catalog) AttachImage(ctx context.Context, productID int64, contentType string, size int64, r io.Reader) (model.Product, error) {
	if s.storage == nil {
		return model.Product{}, model.ErrStorageUnavailable
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !strings.HasPrefix(contentType, "image/") {
		return model.Product{}, model.NewValidationError("content_type", "must be an image type")
	}
	if size <= 0 {
		return model.Product{}, model.NewValidationError("image", "is empty")
	}
	if s.maxImageBytes > 0 && size > s.maxImageBytes {
		return model.Product{}, model.NewValidationError("image",
			fmt.Sprintf("must not exceed %d bytes", s.maxImageBytes))
	}

	if _, err := s.productStore.GetByID(ctx, productID); err != nil {
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	key := productImageKey(productID)
	if err := s.storage.Upload(ctx, key, r, size, contentType); err != nil {
		s.logger.Error("Catalog service: failed to upload image",
			"product_id", productID,
			"error", err.Error())
		return model.Product{}, fmt.Errorf("failed to upload to storage: %w", err)
	}

	if err := s.productStore.SetImage(ctx, productID, key, contentType); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Catalog service: failed to delete image from storage",
				"product_id", productID,
				"error", delErr.Error())
		}
		return model.Product{}, fmt.Errorf("failed to set product image: %w", err)
	}

	product, err := s.productStore.GetByID(ctx, productID)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	s.logger.Info("Catalog service: product image stored",
		"product_id", productID,
		"content_type", contentType,
		"size", size)

	return product, nil
}

// GetImage opens the product's image. The caller closes the reader.
func (s *Catalog) GetImage(ctx context.Context, productID int64) (io.ReadCloser, model.ProductImage, error) {
	if s.storage == nil {
		return nil, model.ProductImage{}, model.ErrStorageUnavailable
	}

	product, err := s.productStore.GetByID(ctx, productID)
	if err != nil {
		return nil, model.ProductImage{}, fmt.Errorf("failed to get product by id: %w", err)
	}
	if product.ImageKey == nil {
		return nil, model.ProductImage{}, model.ErrNotFound
	}

	image := model.ProductImage{Key: *product.ImageKey}
	if product.ImageContentType != nil {
		image.ContentType = *product.ImageContentType
	}

	reader, err := s.storage.Download(ctx, image.Key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Catalog service: image missing from storage",
				"product_id", productID,
				"key", image.Key)
			return nil, model.ProductImage{}, model.ErrNotFound
		}
		return nil, model.ProductImage{}, fmt.Errorf("failed to download from storage: %w", err)
	}

	return reader, image, nil
}

func productImageKey(productID int64) string {
	return fmt.Sprintf("products/%d/image", productID)
}
