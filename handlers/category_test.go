package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/rodrigofez/food-order-admin/models"
	"github.com/rodrigofez/food-order-admin/services"
)

func TestAddCategory(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db)

	w := doRequest(router, http.MethodPost, "/categories", models.CategoryInput{
		Name:        "Test Category",
		Description: "Test Description",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status code %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var response models.Category
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if response.ID == 0 || response.Name != "Test Category" || !response.Active {
		t.Errorf("Unexpected category %+v", response)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories WHERE name = ?", "Test Category").Scan(&count); err != nil {
		t.Fatalf("Error checking category: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 category, got %d", count)
	}
}

func TestAddCategoryRequiresName(t *testing.T) {
	router := newTestRouter(setupTestDB(t))

	w := doRequest(router, http.MethodPost, "/categories", models.CategoryInput{Name: "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetCategories(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db)

	_, err := db.Exec(`INSERT INTO categories (name, description) VALUES (?, ?), (?, ?)`,
		"Pizzas", "A la piedra", "Bebidas", "Frías")
	if err != nil {
		t.Fatal(err)
	}

	w := doRequest(router, http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}

	var response []models.Category
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Error decoding response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(response))
	}
	if response[0].Name != "Pizzas" || response[1].Name != "Bebidas" {
		t.Errorf("Unexpected categories %+v", response)
	}
}

func TestGetCategoriesEmptyReturnsArray(t *testing.T) {
	router := newTestRouter(setupTestDB(t))

	w := doRequest(router, http.MethodGet, "/categories", nil)
	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", got)
	}
}

func TestGetCategory(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db)

	if _, err := db.Exec(`INSERT INTO categories (name) VALUES ('Postres')`); err != nil {
		t.Fatal(err)
	}

	w := doRequest(router, http.MethodGet, "/categories/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}

	w = doRequest(router, http.MethodGet, "/categories/99", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestUpdateCategory(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db)

	if _, err := db.Exec(`INSERT INTO categories (name) VALUES ('Postres')`); err != nil {
		t.Fatal(err)
	}

	inactive := false
	w := doRequest(router, http.MethodPut, "/categories/1", models.CategoryInput{
		Name:        "Postres",
		Description: "Helados",
		Active:      &inactive,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var response models.Category
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatal(err)
	}
	if response.Description != "Helados" || response.Active {
		t.Errorf("Unexpected category %+v", response)
	}
}

func TestDeleteCategory(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db)

	if _, err := db.Exec(`INSERT INTO categories (name) VALUES ('Postres')`); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		url      string
		expected int
	}{
		{name: "Existing category", url: "/categories/1", expected: http.StatusNoContent},
		{name: "Already deleted", url: "/categories/1", expected: http.StatusNotFound},
		{name: "Non numeric id", url: "/categories/abc", expected: http.StatusBadRequest},
		{name: "Zero id", url: "/categories/0", expected: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodDelete, tc.url, nil)
			if w.Code != tc.expected {
				t.Errorf("Expected status code %d, got %d", tc.expected, w.Code)
			}
		})
	}
}

func TestDeleteCategoryDatabaseFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = ?")).
		WithArgs(3).
		WillReturnError(errors.New("database is locked"))

	router := newTestRouter(db)
	w := doRequest(router, http.MethodDelete, "/categories/3", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "failed to delete category" {
		t.Errorf("Unexpected error body %q", body.Error)
	}
}

func TestDuplicateCategoryNameConflict(t *testing.T) {
	db := setupTestDB(t)
	router := newTestRouter(db)

	if _, err := db.Exec(`INSERT INTO categories (name) VALUES ('Pizzas'), ('Bebidas')`); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name   string
		method string
		url    string
	}{
		{name: "Create", method: http.MethodPost, url: "/categories"},
		{name: "Rename", method: http.MethodPut, url: "/categories/2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, tc.method, tc.url, models.CategoryInput{Name: "Pizzas"})
			if w.Code != http.StatusConflict {
				t.Fatalf("Expected status code %d, got %d: %s", http.StatusConflict, w.Code, w.Body.String())
			}

			var body ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Error != "category name already exists" {
				t.Errorf("Unexpected error body %q", body.Error)
			}
		})
	}
}

func TestWritesInvalidateCategoryList(t *testing.T) {
	db := setupTestDB(t)
	cache := services.NewMemoryCache()
	router := newCachedTestRouter(db, cache)
	ctx := context.Background()

	testCases := []struct {
		name     string
		method   string
		url      string
		body     interface{}
		expected int
	}{
		{name: "Create", method: http.MethodPost, url: "/categories", body: models.CategoryInput{Name: "Ensaladas"}, expected: http.StatusCreated},
		{name: "Update", method: http.MethodPut, url: "/categories/1", body: models.CategoryInput{Name: "Ensaladas verdes"}, expected: http.StatusOK},
		{name: "Delete", method: http.MethodDelete, url: "/categories/1", expected: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := cache.Set(ctx, services.CategoriesCacheKey, []byte(`[]`), 0); err != nil {
				t.Fatal(err)
			}

			w := doRequest(router, tc.method, tc.url, tc.body)
			if w.Code != tc.expected {
				t.Fatalf("Expected status code %d, got %d: %s", tc.expected, w.Code, w.Body.String())
			}
			if _, ok, _ := cache.Get(ctx, services.CategoriesCacheKey); ok {
				t.Errorf("Expected %s to clear the cached category list", tc.name)
			}
		})
	}
}

func TestFailedWriteKeepsCategoryList(t *testing.T) {
	db := setupTestDB(t)
	cache := services.NewMemoryCache()
	router := newCachedTestRouter(db, cache)
	ctx := context.Background()

	if err := cache.Set(ctx, services.CategoriesCacheKey, []byte(`[]`), 0); err != nil {
		t.Fatal(err)
	}

	w := doRequest(router, http.MethodDelete, "/categories/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status code %d, got %d", http.StatusNotFound, w.Code)
	}
	if _, ok, _ := cache.Get(ctx, services.CategoriesCacheKey); !ok {
		t.Errorf("Expected a failed delete to leave the cached list alone")
	}
}

func TestHealthCheck(t *testing.T) {
	w := doRequest(http.HandlerFunc(HealthCheck), http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
}
