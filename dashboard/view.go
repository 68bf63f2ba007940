package dashboard

import "github.com/rodrigofez/food-order-admin/models"

// ViewState is the lifecycle of the categories view.
type ViewState int

const (
	StateLoading ViewState = iota
	StateError
	StateLoaded
)

func (s ViewState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// QueryResult is the outcome of the category list query as the view sees it.
type QueryResult struct {
	Data            []models.Category
	IsLoading       bool
	IsUninitialized bool
	IsError         bool
	Err             error
}

// CategoriesView is everything the categories page renders.
type CategoriesView struct {
	State      ViewState
	Categories []models.Category
	// ToRemove is the category named by the open confirmation dialog.
	ToRemove *models.Category
}

// NewCategoriesView derives the view from a query result. removeID selects
// the category whose confirmation dialog is open; it is ignored unless the
// list is loaded and contains that id.
func NewCategoriesView(q QueryResult, removeID int) CategoriesView {
	if q.IsLoading || q.IsUninitialized {
		return CategoriesView{State: StateLoading}
	}
	if q.IsError {
		return CategoriesView{State: StateError}
	}

	v := CategoriesView{State: StateLoaded, Categories: q.Data}
	if removeID > 0 {
		for i := range q.Data {
			if q.Data[i].ID == removeID {
				c := q.Data[i]
				v.ToRemove = &c
				break
			}
		}
	}
	return v
}

func (v CategoriesView) IsLoading() bool { return v.State == StateLoading }
func (v CategoriesView) IsError() bool   { return v.State == StateError }
func (v CategoriesView) IsLoaded() bool  { return v.State == StateLoaded }
