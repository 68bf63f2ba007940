// Package routes builds dashboard navigation paths.
package routes

import (
	"net/url"
	"strconv"
)

const (
	Dashboard  = "/dashboard"
	Categories = Dashboard + "/categorias"

	// RemoveParam selects the category pending deletion on the list page.
	RemoveParam = "eliminar"
)

// CategoriesList returns the list page path.
func CategoriesList() string {
	return Categories
}

// ConfirmRemove returns the list page with the confirmation dialog open for id.
func ConfirmRemove(id int) string {
	return Categories + "?" + url.Values{RemoveParam: {strconv.Itoa(id)}}.Encode()
}

// CategoriesTable returns the table fragment path. A positive removeID keeps
// the confirmation dialog open for that category.
func CategoriesTable(removeID int) string {
	path := Categories + "/tabla"
	if removeID > 0 {
		path += "?" + url.Values{RemoveParam: {strconv.Itoa(removeID)}}.Encode()
	}
	return path
}

// RemoveCategory returns the path the confirmation dialog posts to.
func RemoveCategory(id int) string {
	return Categories + "/" + strconv.Itoa(id) + "/eliminar"
}

// EditCategory returns the edit view path for id.
func EditCategory(id int) string {
	return Categories + "/editar/" + strconv.Itoa(id)
}

// NewCategory returns the edit view path for a new category.
func NewCategory() string {
	return Categories + "/editar"
}

// RemoveID parses the pending removal id from a query; zero means none.
func RemoveID(q url.Values) int {
	id, err := strconv.Atoi(q.Get(RemoveParam))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
