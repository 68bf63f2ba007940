package dashboard

import (
	"errors"
	"testing"

	"github.com/rodrigofez/food-order-admin/models"
)

func TestNewCategoriesViewStates(t *testing.T) {
	data := []models.Category{{ID: 1, Name: "Pizzas"}, {ID: 2, Name: "Bebidas"}}

	testCases := []struct {
		name     string
		query    QueryResult
		expected ViewState
	}{
		{name: "Uninitialized", query: QueryResult{IsUninitialized: true}, expected: StateLoading},
		{name: "Loading", query: QueryResult{IsLoading: true}, expected: StateLoading},
		{name: "Loading wins over error", query: QueryResult{IsLoading: true, IsError: true}, expected: StateLoading},
		{name: "Error", query: QueryResult{IsError: true, Err: errors.New("boom")}, expected: StateError},
		{name: "Loaded", query: QueryResult{Data: data}, expected: StateLoaded},
		{name: "Loaded empty", query: QueryResult{}, expected: StateLoaded},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewCategoriesView(tc.query, 0)
			if v.State != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, v.State)
			}
			if v.State != StateLoaded && len(v.Categories) != 0 {
				t.Errorf("Expected no categories outside the loaded state")
			}
		})
	}
}

func TestNewCategoriesViewPendingRemoval(t *testing.T) {
	data := []models.Category{{ID: 1, Name: "Pizzas"}, {ID: 2, Name: "Bebidas"}}

	v := NewCategoriesView(QueryResult{Data: data}, 2)
	if v.ToRemove == nil || v.ToRemove.Name != "Bebidas" {
		t.Fatalf("Expected Bebidas pending removal, got %+v", v.ToRemove)
	}

	v.ToRemove.Name = "changed"
	if data[1].Name != "Bebidas" {
		t.Errorf("ToRemove must not alias the source record")
	}

	if v := NewCategoriesView(QueryResult{Data: data}, 9); v.ToRemove != nil {
		t.Errorf("Expected unknown id to leave the dialog closed")
	}
	if v := NewCategoriesView(QueryResult{IsError: true}, 2); v.ToRemove != nil {
		t.Errorf("Expected no dialog in the error state")
	}
}

func TestViewStateString(t *testing.T) {
	if StateLoaded.String() != "loaded" || ViewState(9).String() != "unknown" {
		t.Errorf("Unexpected state names")
	}
}
