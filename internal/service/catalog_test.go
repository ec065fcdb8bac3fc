package service

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopkeep/shopkeep-server/internal/mocks"
	"github.com/shopkeep/shopkeep-server/internal/model"
	"github.com/shopkeep/shopkeep-server/internal/testutil"
)

const testMaxImageBytes = 1024

func TestCatalog_CreateProduct(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewProductStore(t)
	svc := NewCatalog(store, nil, testMaxImageBytes, testutil.MakeNoopLogger())

	store.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Google Chromecast" && p.Price == 68000 && p.Tags == nil
	})).Return(model.Product{ID: 1, Name: "Google Chromecast", Price: 68000}, nil).Once()

	empty := ""
	product, err := svc.CreateProduct(ctx, model.CreateProductParams{
		Name:        "  Google Chromecast ",
		Description: "streaming",
		Tags:        &empty,
		Price:       68000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}

func TestCatalog_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params model.CreateProductParams
		field  string
	}{
		{name: "empty name", params: model.CreateProductParams{Name: " ", Price: 1}, field: "name"},
		{name: "name longer than column", params: model.CreateProductParams{Name: strings.Repeat("m", 256), Price: 1}, field: "name"},
		{name: "negative price", params: model.CreateProductParams{Name: "Mug", Price: -0.01}, field: "price"},
		{name: "NaN price", params: model.CreateProductParams{Name: "Mug", Price: math.NaN()}, field: "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalog(mocks.NewProductStore(t), nil, testMaxImageBytes, testutil.MakeNoopLogger())

			_, err := svc.CreateProduct(context.Background(), tt.params)
			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCatalog_CreateProduct_Duplicate(t *testing.T) {
	store := mocks.NewProductStore(t)
	svc := NewCatalog(store, nil, testMaxImageBytes, testutil.MakeNoopLogger())

	store.On("Create", mock.Anything, mock.Anything).Return(model.Product{}, model.ErrDuplicateProductName).Once()

	_, err := svc.CreateProduct(context.Background(), model.CreateProductParams{Name: "Mug", Price: 1})
	require.ErrorIs(t, err, model.ErrDuplicateProductName)
}

func TestCatalog_GetProductByName_Normalizes(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewProductStore(t)
	svc := NewCatalog(store, nil, testMaxImageBytes, testutil.MakeNoopLogger())

	widget := model.Product{ID: 5, Name: "Widget"}
	store.On("GetByName", mock.Anything, "widget").Return(widget, nil).Twice()

	a, err := svc.GetProductByName(ctx, "  Widget ")
	require.NoError(t, err)
	b, err := svc.GetProductByName(ctx, "widget")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCatalog_GetProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewProductStore(t)
	svc := NewCatalog(store, nil, testMaxImageBytes, testutil.MakeNoopLogger())

	store.On("GetByName", mock.Anything, "ghost").Return(model.Product{}, model.ErrNotFound).Once()
	store.On("GetByID", mock.Anything, int64(9)).Return(model.Product{}, model.ErrNotFound).Once()

	_, err := svc.GetProductByName(ctx, "ghost")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.GetProductByID(ctx, 9)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCatalog_ListProducts(t *testing.T) {
	store := mocks.NewProductStore(t)
	svc := NewCatalog(store, nil, testMaxImageBytes, testutil.MakeNoopLogger())

	page := model.Page{Offset: 10, Limit: 5}
	store.On("List", mock.Anything, page).Return([]model.Product{}, nil).Once()

	list, err := svc.ListProducts(context.Background(), page)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalog_AttachImage(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewProductStore(t)
	storage := mocks.NewStorage(t)
	svc := NewCatalog(store, storage, testMaxImageBytes, testutil.MakeNoopLogger())

	key := "products/3/image"
	body := strings.NewReader("png-bytes")

	store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{ID: 3}, nil).Once()
	storage.On("Upload", mock.Anything, key, body, int64(9), "image/png").Return(nil).Once()
	store.On("SetImage", mock.Anything, int64(3), key, "image/png").Return(nil).Once()
	store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, ImageKey: &key}, nil).Once()

	product, err := svc.AttachImage(ctx, 3, "Image/PNG", 9, body)
	require.NoError(t, err)
	require.NotNil(t, product.ImageKey)
	assert.Equal(t, key, *product.ImageKey)
}

func TestCatalog_AttachImage_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		field       string
	}{
		{name: "not an image", contentType: "text/plain", size: 10, field: "content_type"},
		{name: "empty body", contentType: "image/png", size: 0, field: "image"},
		{name: "too large", contentType: "image/png", size: testMaxImageBytes + 1, field: "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalog(mocks.NewProductStore(t), mocks.NewStorage(t), testMaxImageBytes, testutil.MakeNoopLogger())

			_, err := svc.AttachImage(context.Background(), 1, tt.contentType, tt.size, strings.NewReader(""))
			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCatalog_AttachImage_SetImageFailsCleansUp(t *testing.T) {
	store := mocks.NewProductStore(t)
	storage := mocks.NewStorage(t)
	svc := NewCatalog(store, storage, testMaxImageBytes, testutil.MakeNoopLogger())

	store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{ID: 3}, nil).Once()
	storage.On("Upload", mock.Anything, "products/3/image", mock.Anything, int64(4), "image/jpeg").Return(nil).Once()
	store.On("SetImage", mock.Anything, int64(3), "products/3/image", "image/jpeg").Return(assert.AnError).Once()
	storage.On("Delete", mock.Anything, "products/3/image").Return(nil).Once()

	_, err := svc.AttachImage(context.Background(), 3, "image/jpeg", 4, strings.NewReader("jpeg"))
	require.ErrorIs(t, err, assert.AnError)
}

func TestCatalog_AttachImage_UnknownProduct(t *testing.T) {
	store := mocks.NewProductStore(t)
	svc := NewCatalog(store, mocks.NewStorage(t), testMaxImageBytes, testutil.MakeNoopLogger())

	store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{}, model.ErrNotFound).Once()

	_, err := svc.AttachImage(context.Background(), 3, "image/png", 4, strings.NewReader("data"))
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCatalog_ImagesWithoutStorage(t *testing.T) {
	svc := NewCatalog(mocks.NewProductStore(t), nil, testMaxImageBytes, testutil.MakeNoopLogger())

	_, err := svc.AttachImage(context.Background(), 1, "image/png", 1, strings.NewReader("x"))
	require.ErrorIs(t, err, model.ErrStorageUnavailable)

	_, _, err = svc.GetImage(context.Background(), 1)
	require.ErrorIs(t, err, model.ErrStorageUnavailable)
}

func TestCatalog_GetImage(t *testing.T) {
	ctx := context.Background()
	key := "products/3/image"
	contentType := "image/png"

	t.Run("stored image", func(t *testing.T) {
		store := mocks.NewProductStore(t)
		storage := mocks.NewStorage(t)
		svc := NewCatalog(store, storage, testMaxImageBytes, testutil.MakeNoopLogger())

		store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, ImageKey: &key, ImageContentType: &contentType}, nil).Once()
		storage.On("Download", mock.Anything, key).Return(io.NopCloser(strings.NewReader("png")), nil).Once()

		rc, image, err := svc.GetImage(ctx, 3)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
		assert.Equal(t, model.ProductImage{Key: key, ContentType: contentType}, image)
	})

	t.Run("product without image", func(t *testing.T) {
		store := mocks.NewProductStore(t)
		svc := NewCatalog(store, mocks.NewStorage(t), testMaxImageBytes, testutil.MakeNoopLogger())

		store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{ID: 3}, nil).Once()

		_, _, err := svc.GetImage(ctx, 3)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("object missing from storage", func(t *testing.T) {
		store := mocks.NewProductStore(t)
		storage := mocks.NewStorage(t)
		svc := NewCatalog(store, storage, testMaxImageBytes, testutil.MakeNoopLogger())

		store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, ImageKey: &key}, nil).Once()
		storage.On("Download", mock.Anything, key).Return(nil, model.ErrNotFound).Once()

		_, _, err := svc.GetImage(ctx, 3)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		store := mocks.NewProductStore(t)
		storage := mocks.NewStorage(t)
		svc := NewCatalog(store, storage, testMaxImageBytes, testutil.MakeNoopLogger())

		store.On("GetByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, ImageKey: &key}, nil).Once()
		storage.On("Download", mock.Anything, key).Return(nil, errors.New("connection reset")).Once()

		_, _, err := svc.GetImage(ctx, 3)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}
