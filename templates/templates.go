// Package templates renders the dashboard HTML.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/rodrigofez/food-order-admin/notifications"
	"github.com/rodrigofez/food-order-admin/routes"
)

//go:embed html
var files embed.FS

// Page names.
const (
	PageCategories = "categories"
)

// Fragment names rendered on their own for htmx requests.
const (
	FragmentCategoriesTable = "categories_table"
)

var funcs = template.FuncMap{
	"listURL":    routes.CategoriesList,
	"tableURL":   routes.CategoriesTable,
	"confirmURL": routes.ConfirmRemove,
	"removeURL":  routes.RemoveCategory,
	"editURL":    routes.EditCategory,
	"iconGlyph":  iconGlyph,
}

// Renderer holds the parsed template set of every page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageCategories} {
		t, err := template.New(page).Funcs(funcs).ParseFS(files,
			"html/layout.html",
			"html/partials/*.html",
			"html/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Page renders a full page inside the dashboard layout.
func (r *Renderer) Page(w io.Writer, page string, data any) error {
	return r.Fragment(w, page, "layout", data)
}

// Fragment renders one named template of a page.
func (r *Renderer) Fragment(w io.Writer, page, name string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s/%s: %w", page, name, err)
	}
	return nil
}

func iconGlyph(icon string) string {
	switch icon {
	case notifications.IconCheck:
		return "✓"
	case notifications.IconX:
		return "✕"
	default:
		return ""
	}
}
