package usecase_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/MoBa75/webshop/internal/domain/model"
	repo "github.com/MoBa75/webshop/internal/repository"
	"github.com/MoBa75/webshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, want, he.Status)
}

func TestProductUsecase_CreateProduct(t *testing.T) {
	products := new(productRepoMock)
	inventory := new(inventoryRepoMock)
	imageDir := t.TempDir()
	uc := usecase.NewProductUsecase(products, inventory, imageDir)

	products.On("FindByName", mock.Anything, "Kaffee Crema").
		Return(model.Product{}, repo.ErrNotFound)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Kaffee Crema" && p.Stock == 12
	})).Return(model.Product{ID: 1, Name: "Kaffee Crema", Stock: 12}, nil)

	created, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:  "Kaffee Crema",
		Unit:  "500g",
		Price: 899,
		Stock: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	info, statErr := os.Stat(filepath.Join(imageDir, "kaffee_crema"))
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())

	products.AssertExpectations(t)
}

func TestProductUsecase_CreateProduct_DuplicateName(t *testing.T) {
	products := new(productRepoMock)
	inventory := new(inventoryRepoMock)
	uc := usecase.NewProductUsecase(products, inventory, t.TempDir())

	products.On("FindByName", mock.Anything, "Kaffee").
		Return(model.Product{ID: 7, Name: "Kaffee"}, nil)

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name: "Kaffee", Unit: "500g", Price: 899,
	})

	assertHTTPStatus(t, err, http.StatusConflict)
	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_CreateProduct_Validation(t *testing.T) {
	uc := usecase.NewProductUsecase(new(productRepoMock), new(inventoryRepoMock), t.TempDir())

	cases := []struct {
		name string
		in   usecase.ProductInput
	}{
		{"empty name", usecase.ProductInput{Name: " ", Unit: "kg", Price: 1}},
		{"empty unit", usecase.ProductInput{Name: "Mehl", Unit: "", Price: 1}},
		{"negative price", usecase.ProductInput{Name: "Mehl", Unit: "kg", Price: -1}},
		{"negative stock", usecase.ProductInput{Name: "Mehl", Unit: "kg", Price: 1, Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), tc.in)
			assertHTTPStatus(t, err, http.StatusBadRequest)
		})
	}
}

func TestProductUsecase_UpdateProduct_DoesNotTouchStock(t *testing.T) {
	products := new(productRepoMock)
	uc := usecase.NewProductUsecase(products, new(inventoryRepoMock), t.TempDir())

	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Kaffee", Unit: "500g", Price: 899, Stock: 20}, nil)
	products.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Price == 999 && p.Stock == 20
	})).Return(nil)

	updated, err := uc.UpdateProduct(context.Background(), 1, usecase.ProductInput{
		Name:  "Kaffee",
		Unit:  "500g",
		Price: 999,
		Stock: 3, // must be ignored
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20), updated.Stock)
	products.AssertExpectations(t)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	products := new(productRepoMock)
	uc := usecase.NewProductUsecase(products, new(inventoryRepoMock), t.TempDir())

	products.On("FindByID", mock.Anything, int64(42)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), 42)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestProductUsecase_Restock(t *testing.T) {
	inventory := new(inventoryRepoMock)
	uc := usecase.NewProductUsecase(new(productRepoMock), inventory, t.TempDir())

	inventory.On("IncreaseStock", mock.Anything, int64(1), int64(30)).Return(nil)
	inventory.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(a model.InventoryAdjustment) bool {
		return a.ProductID == 1 && a.AdminUserID == 9 && a.Delta == 30 && a.Reason == "delivery"
	})).Return(nil)

	err := uc.Restock(context.Background(), 9, 1, usecase.RestockInput{Quantity: 30, Reason: "delivery"})

	require.NoError(t, err)
	inventory.AssertExpectations(t)
}

func TestProductUsecase_Restock_InvalidQuantity(t *testing.T) {
	inventory := new(inventoryRepoMock)
	uc := usecase.NewProductUsecase(new(productRepoMock), inventory, t.TempDir())

	err := uc.Restock(context.Background(), 9, 1, usecase.RestockInput{Quantity: 0})

	assert.ErrorIs(t, err, usecase.ErrInvalidQuantity)
	inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_Restock_UnknownProduct(t *testing.T) {
	inventory := new(inventoryRepoMock)
	uc := usecase.NewProductUsecase(new(productRepoMock), inventory, t.TempDir())

	inventory.On("IncreaseStock", mock.Anything, int64(42), int64(5)).Return(repo.ErrNotFound)

	err := uc.Restock(context.Background(), 9, 42, usecase.RestockInput{Quantity: 5})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestProductUsecase_SetStock_RecordsDelta(t *testing.T) {
	products := new(productRepoMock)
	inventory := new(inventoryRepoMock)
	uc := usecase.NewProductUsecase(products, inventory, t.TempDir())

	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Kaffee", Stock: 20}, nil)
	inventory.On("SetStock", mock.Anything, int64(1), int64(8)).Return(nil)
	inventory.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(a model.InventoryAdjustment) bool {
		return a.Delta == -12
	})).Return(nil)

	err := uc.SetStock(context.Background(), 9, 1, usecase.SetStockInput{Stock: 8, Reason: "inventory count"})

	require.NoError(t, err)
	inventory.AssertExpectations(t)
}

func TestProductUsecase_SetStock_NegativeRejected(t *testing.T) {
	uc := usecase.NewProductUsecase(new(productRepoMock), new(inventoryRepoMock), t.TempDir())

	err := uc.SetStock(context.Background(), 9, 1, usecase.SetStockInput{Stock: -1})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestProductUsecase_DeleteProduct_RemovesImageFolder(t *testing.T) {
	products := new(productRepoMock)
	imageDir := t.TempDir()
	uc := usecase.NewProductUsecase(products, new(inventoryRepoMock), imageDir)

	folder := filepath.Join(imageDir, "kaffee")
	require.NoError(t, os.MkdirAll(folder, 0o755))

	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Kaffee"}, nil)
	products.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := uc.DeleteProduct(context.Background(), 1)

	require.NoError(t, err)
	_, statErr := os.Stat(folder)
	assert.True(t, os.IsNotExist(statErr))
}
