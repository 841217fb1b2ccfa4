package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminProductHandler_CreateProduct(t *testing.T) {
	adminID := uuid.New()

	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		mockAdminService := new(mocks.AdminProductService)
		adminHandler := handlers.NewAdminProductHandler(mockAdminService)

		body := models.CreateProductRequest{
			Name:     models.Localized{Ar: "مانجو", En: "Mango"},
			Category: models.CategoryImported,
			Price:    money("2.50"),
			Unit:     models.UnitPiece,
		}

		mockAdminService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Name.En == "Mango" && req.Price.Equal(money("2.50"))
		})).Return(&models.Product{ID: "p-1", Name: body.Name, Price: body.Price, InStock: true}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/products", jsonBody(t, body), adminID, nil)
		rr := httptest.NewRecorder()

		// Act
		adminHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Product
		decodeData(t, rr, &got)
		assert.Equal(t, "p-1", got.ID)
		mockAdminService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Unit", func(t *testing.T) {
		mockAdminService := new(mocks.AdminProductService)
		adminHandler := handlers.NewAdminProductHandler(mockAdminService)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/products",
			strings.NewReader(`{"name":{"ar":"x","en":"x"},"category":"fruits","price":"1","unit":"crate"}`), adminID, nil)
		rr := httptest.NewRecorder()

		adminHandler.CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAdminService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Deal Rule", func(t *testing.T) {
		mockAdminService := new(mocks.AdminProductService)
		adminHandler := handlers.NewAdminProductHandler(mockAdminService)

		mockAdminService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, appErrors.ValidationError("Invalid product").WithFields(map[string]string{"deal_price": "required"})).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/products",
			strings.NewReader(`{"name":{"ar":"x","en":"x"},"category":"fruits","price":"1","unit":"kg","is_deal":true}`), adminID, nil)
		rr := httptest.NewRecorder()

		adminHandler.CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "required", decodeError(t, rr).Fields["deal_price"])
	})

	t.Run("Failure - Missing Claims", func(t *testing.T) {
		mockAdminService := new(mocks.AdminProductService)
		adminHandler := handlers.NewAdminProductHandler(mockAdminService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/admin/products", strings.NewReader(`{}`), nil)
		rr := httptest.NewRecorder()

		adminHandler.CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockAdminService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestAdminProductHandler_Registry(t *testing.T) {
	adminID := uuid.New()
	mockAdminService := new(mocks.AdminProductService)
	adminHandler := handlers.NewAdminProductHandler(mockAdminService)

	t.Run("Success - List With Stats", func(t *testing.T) {
		mockAdminService.On("ListProducts", mock.Anything).Return(&models.ProductList{
			Products: []*models.Product{},
			Source:   models.SourceStore,
			Stats:    &models.CatalogStats{Total: 0, ByCategory: map[models.Category]int{models.CategoryFruits: 0}},
		}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/admin/products", nil, adminID, nil)
		rr := httptest.NewRecorder()

		adminHandler.ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.ProductList
		decodeData(t, rr, &got)
		assert.NotNil(t, got.Stats)
	})

	t.Run("Success - Update", func(t *testing.T) {
		mockAdminService.On("UpdateProduct", mock.Anything, "p-1", mock.MatchedBy(func(req *models.UpdateProductRequest) bool {
			return req.InStock != nil && !*req.InStock && req.Name == nil
		})).Return(&models.Product{ID: "p-1"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/admin/products/p-1",
			strings.NewReader(`{"in_stock":false}`), adminID, map[string]string{"id": "p-1"})
		rr := httptest.NewRecorder()

		adminHandler.UpdateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Static Product Hidden", func(t *testing.T) {
		mockAdminService.On("DeleteProduct", mock.Anything, "herb-mint").
			Return(&models.DeleteProductResponse{ID: "herb-mint", Masked: true, Message: "Product deleted"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/admin/products/herb-mint", nil, adminID, map[string]string{"id": "herb-mint"})
		rr := httptest.NewRecorder()

		adminHandler.DeleteProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.DeleteProductResponse
		decodeData(t, rr, &got)
		assert.True(t, got.Masked)
	})

	t.Run("Failure - Delete Unknown", func(t *testing.T) {
		mockAdminService.On("DeleteProduct", mock.Anything, "nope").Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/admin/products/nope", nil, adminID, map[string]string{"id": "nope"})
		rr := httptest.NewRecorder()

		adminHandler.DeleteProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - Seed Into Populated Store", func(t *testing.T) {
		mockAdminService.On("SeedProducts", mock.Anything).Return(nil, appErrors.ConflictError("Product store already has data")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/products/seed", nil, adminID, nil)
		rr := httptest.NewRecorder()

		adminHandler.SeedProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, appErrors.ErrCodeConflict, decodeError(t, rr).Code)
	})

	t.Run("Success - Seed", func(t *testing.T) {
		mockAdminService.On("SeedProducts", mock.Anything).Return(&models.SeedResponse{Inserted: 44}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/products/seed", nil, adminID, nil)
		rr := httptest.NewRecorder()

		adminHandler.SeedProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Success - Dedupe", func(t *testing.T) {
		mockAdminService.On("RemoveDuplicates", mock.Anything).Return(&models.DedupeResponse{Removed: []string{"p-9"}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/admin/products/dedupe", nil, adminID, nil)
		rr := httptest.NewRecorder()

		adminHandler.RemoveDuplicates().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.DedupeResponse
		decodeData(t, rr, &got)
		assert.Equal(t, []string{"p-9"}, got.Removed)
	})

	mockAdminService.AssertExpectations(t)
}
