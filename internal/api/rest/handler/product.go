package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/shopkeep-server/internal/logger"
	"github.com/shopkeep/shopkeep-server/internal/model"
)

// CatalogService defines product catalog operations.
type CatalogService interface {
	CreateProduct(ctx context.Context, params model.CreateProductParams) (model.Product, error)
	GetProductByName(ctx context.Context, name string) (model.Product, error)
	ListProducts(ctx context.Context, page model.Page) ([]model.Product, error)
	AttachImage(ctx context.Context, productID int64, contentType string, size int64, r io.Reader) (model.Product, error)
	GetImage(ctx context.Context, productID int64) (io.ReadCloser, model.ProductImage, error)
}

// Product handles catalog endpoints.
type Product struct {
	catalogService CatalogService
	maxImageBytes  int64
	logger         *logger.Logger
}

// NewProduct creates a new Product handler. Image uploads larger than
// maxImageBytes are rejected.
func NewProduct(catalogService CatalogService, maxImageBytes int64, logger *logger.Logger) *Product {
	return &Product{
		catalogService: catalogService,
		maxImageBytes:  maxImageBytes,
		logger:         logger,
	}
}

func (h *Product) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogService.CreateProduct(c.Request().Context(), req.Data[0].toParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProductOutput(product))
}

func (h *Product) GetByName(c echo.Context) error {
	product, err := h.catalogService.GetProductByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProductOutput(product))
}

func (h *Product) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	products, err := h.catalogService.ListProducts(c.Request().Context(), page)
	if err != nil {
		return err
	}

	out := make([]ProductOutput, 0, len(products))
	for _, product := range products {
		out = append(out, newProductOutput(product))
	}
	return c.JSON(http.StatusOK, out)
}

// UploadImage stores the raw request body as the product image.
func (h *Product) UploadImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	// One byte past the limit is enough to tell an oversized body apart.
	data, err := io.ReadAll(io.LimitReader(req.Body, h.maxImageBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read image body: %w", err)
	}

	h.logger.Debug("Product handler: uploading image",
		"product_id", id,
		"content_type", contentType,
		"size", len(data))

	product, err := h.catalogService.AttachImage(req.Context(), id, contentType, int64(len(data)), bytes.NewReader(data))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProductOutput(product))
}

// DownloadImage streams the product image back with its content type.
func (h *Product) DownloadImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	reader, image, err := h.catalogService.GetImage(c.Request().Context(), id)
	if err != nil {
		return err
	}
	defer reader.Close()

	contentType := image.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "private, max-age=60")

	return c.Stream(http.StatusOK, contentType, reader)
}
