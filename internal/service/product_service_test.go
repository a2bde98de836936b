package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Returns products", func(t *testing.T) {
		products := []model.Product{
			{ID: "p1", Name: "Mug", Price: 10.00},
			{ID: "p2", Name: "Plate", Price: 20.00},
		}

		catalogRepo := new(MockCatalogRepository)
		images := new(MockImageStore)
		catalogRepo.On("FindAll", ctx).Return(products, nil)

		svc := NewCatalogService(catalogRepo, images, logger)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, products, got)
	})

	t.Run("Empty catalogue yields empty slice", func(t *testing.T) {
		catalogRepo := new(MockCatalogRepository)
		images := new(MockImageStore)
		catalogRepo.On("FindAll", ctx).Return([]model.Product(nil), nil)

		svc := NewCatalogService(catalogRepo, images, logger)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Propagates repository error", func(t *testing.T) {
		catalogRepo := new(MockCatalogRepository)
		images := new(MockImageStore)
		catalogRepo.On("FindAll", ctx).Return(nil, errors.New("connection refused"))

		svc := NewCatalogService(catalogRepo, images, logger)

		got, err := svc.List(ctx)
		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCatalogService_Create_WithImageUpload(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	catalogRepo := new(MockCatalogRepository)
	images := new(MockImageStore)

	images.On("Save", ctx, "mug.png", mock.Anything).Return("assets/mug.png", nil)
	catalogRepo.On("Insert", ctx, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == "p1" && p.Name == "Mug" && p.Price == 10.00 &&
			p.Image != nil && *p.Image == "assets/mug.png"
	})).Return(nil)

	svc := NewCatalogService(catalogRepo, images, logger)

	product, err := svc.Create(ctx, &CreateProductRequest{
		ID:        "p1",
		Name:      "Mug",
		Price:     10.00,
		ImageName: "mug.png",
		ImageData: strings.NewReader("image-bytes"),
	})

	require.NoError(t, err)
	require.NotNil(t, product)
	require.NotNil(t, product.Image)
	assert.Equal(t, "assets/mug.png", *product.Image)
	catalogRepo.AssertExpectations(t)
	images.AssertExpectations(t)
}

func TestCatalogService_Create_WithImageURL(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	catalogRepo := new(MockCatalogRepository)
	images := new(MockImageStore)

	catalogRepo.On("Insert", ctx, mock.MatchedBy(func(p model.Product) bool {
		return p.Image != nil && *p.Image == "https://cdn.example.com/mug.png"
	})).Return(nil)

	svc := NewCatalogService(catalogRepo, images, logger)

	_, err := svc.Create(ctx, &CreateProductRequest{
		ID:       "p1",
		Name:     "Mug",
		Price:    10.00,
		ImageURL: "https://cdn.example.com/mug.png",
	})

	require.NoError(t, err)
	images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_Create_WithoutImage(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	catalogRepo := new(MockCatalogRepository)
	images := new(MockImageStore)

	catalogRepo.On("Insert", ctx, mock.MatchedBy(func(p model.Product) bool {
		return p.Image == nil
	})).Return(nil)

	svc := NewCatalogService(catalogRepo, images, logger)

	_, err := svc.Create(ctx, &CreateProductRequest{ID: "p1", Name: "Mug", Price: 10.00})
	require.NoError(t, err)
}

func TestCatalogService_Create_Validation(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *CreateProductRequest
	}{
		{
			name: "Nil request",
			req:  nil,
		},
		{
			name: "Missing id",
			req:  &CreateProductRequest{Name: "Mug", Price: 10.00},
		},
		{
			name: "Missing name",
			req:  &CreateProductRequest{ID: "p1", Price: 10.00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogRepo := new(MockCatalogRepository)
			images := new(MockImageStore)

			svc := NewCatalogService(catalogRepo, images, logger)

			product, err := svc.Create(ctx, tt.req)

			assert.Equal(t, model.ErrMissingFields, err)
			assert.Nil(t, product)
			catalogRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}

	t.Run("Negative price", func(t *testing.T) {
		catalogRepo := new(MockCatalogRepository)
		images := new(MockImageStore)

		svc := NewCatalogService(catalogRepo, images, logger)

		_, err := svc.Create(ctx, &CreateProductRequest{ID: "p1", Name: "Mug", Price: -1})

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrKindValidation, domainErr.Kind)
	})
}

func TestCatalogService_Create_ImageStoreError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	catalogRepo := new(MockCatalogRepository)
	images := new(MockImageStore)

	images.On("Save", ctx, "mug.png", mock.Anything).Return("", errors.New("disk full"))

	svc := NewCatalogService(catalogRepo, images, logger)

	_, err := svc.Create(ctx, &CreateProductRequest{
		ID:        "p1",
		Name:      "Mug",
		Price:     10.00,
		ImageName: "mug.png",
		ImageData: strings.NewReader("image-bytes"),
	})

	assert.Equal(t, model.ErrStorageUnavailable, err)
	catalogRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
