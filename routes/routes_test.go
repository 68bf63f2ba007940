package routes

import (
	"net/url"
	"testing"
)

func TestPaths(t *testing.T) {
	testCases := []struct {
		name     string
		got      string
		expected string
	}{
		{"List", CategoriesList(), "/dashboard/categorias"},
		{"Confirm", ConfirmRemove(4), "/dashboard/categorias?eliminar=4"},
		{"Table", CategoriesTable(0), "/dashboard/categorias/tabla"},
		{"Table with pending", CategoriesTable(4), "/dashboard/categorias/tabla?eliminar=4"},
		{"Remove", RemoveCategory(4), "/dashboard/categorias/4/eliminar"},
		{"Edit", EditCategory(4), "/dashboard/categorias/editar/4"},
		{"New", NewCategory(), "/dashboard/categorias/editar"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, tc.got)
			}
		})
	}
}

func TestRemoveID(t *testing.T) {
	testCases := []struct {
		query    string
		expected int
	}{
		{"eliminar=3", 3},
		{"", 0},
		{"eliminar=abc", 0},
		{"eliminar=-1", 0},
	}

	for _, tc := range testCases {
		q, _ := url.ParseQuery(tc.query)
		if got := RemoveID(q); got != tc.expected {
			t.Errorf("RemoveID(%q) = %d, want %d", tc.query, got, tc.expected)
		}
	}
}
