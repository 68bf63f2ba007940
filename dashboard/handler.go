// Package dashboard serves the categories administration page.
package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/rodrigofez/food-order-admin/i18n"
	"github.com/rodrigofez/food-order-admin/models"
	"github.com/rodrigofez/food-order-admin/notifications"
	"github.com/rodrigofez/food-order-admin/routes"
	"github.com/rodrigofez/food-order-admin/templates"
)

// RemoveNotificationID addresses the notification that follows a deletion
// from pending to its outcome.
const RemoveNotificationID = "delete-category"

// notificationAutoClose is how long result notifications stay visible.
const notificationAutoClose = 2000 * time.Millisecond

// CategoryService is the query and mutation layer the page depends on.
type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	RemoveCategory(ctx context.Context, id int) error
}

// Handler serves the categories page and its fragments.
type Handler struct {
	categories    CategoryService
	notifications *notifications.Store
	renderer      *templates.Renderer
	logger        *zap.Logger
}

func NewHandler(categories CategoryService, store *notifications.Store, renderer *templates.Renderer, logger *zap.Logger) *Handler {
	return &Handler{
		categories:    categories,
		notifications: store,
		renderer:      renderer,
		logger:        logger,
	}
}

// Register mounts the dashboard routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc(routes.Categories, h.CategoriesPage).Methods(http.MethodGet)
	r.HandleFunc(routes.Categories+"/tabla", h.CategoriesTable).Methods(http.MethodGet)
	r.HandleFunc(routes.Categories+"/{id:[0-9]+}/eliminar", h.RemoveCategory).Methods(http.MethodPost)
}

type link struct {
	Href  string
	Label string
}

// pageData is the template model for the page and its fragments.
type pageData struct {
	CategoriesView
	Lang          string
	Title         string
	RightAction   *link
	Notifications []notifications.Notification
	TableURL      string
	printer       *message.Printer
}

// T formats the message with key in the request language.
func (d pageData) T(key string, args ...any) string {
	return d.printer.Sprintf(key, args...)
}

func (h *Handler) newPageData(r *http.Request, view CategoriesView) pageData {
	tag := i18n.ResolveTag(r)
	p := i18n.Printer(tag)
	return pageData{
		CategoriesView: view,
		Lang:           tag.String(),
		Title:          p.Sprintf(i18n.CategoriesTitle),
		RightAction:    &link{Href: routes.NewCategory(), Label: p.Sprintf(i18n.CategoriesAdd)},
		TableURL:       routes.CategoriesTable(routes.RemoveID(r.URL.Query())),
		printer:        p,
	}
}

// CategoriesPage renders the layout in the loading state; the table is
// fetched by the browser from CategoriesTable.
func (h *Handler) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r, CategoriesView{State: StateLoading})
	data.Notifications = h.notifications.Drain(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.renderer.Page(w, templates.PageCategories, data); err != nil {
		h.logger.Error("Error rendering categories page", zap.Error(err))
	}
}

// CategoriesTable runs the list query and renders the loaded table or the
// error placeholder.
func (h *Handler) CategoriesTable(w http.ResponseWriter, r *http.Request) {
	q := h.query(r.Context())
	if q.Err != nil {
		h.logger.Error("Error fetching categories", zap.Error(q.Err))
	}

	view := NewCategoriesView(q, routes.RemoveID(r.URL.Query()))
	data := h.newPageData(r, view)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.renderer.Fragment(w, templates.PageCategories, templates.FragmentCategoriesTable, data); err != nil {
		h.logger.Error("Error rendering categories table", zap.Error(err))
	}
}

func (h *Handler) query(ctx context.Context) QueryResult {
	categories, err := h.categories.GetAllCategories(ctx)
	if err != nil {
		return QueryResult{IsError: true, Err: err}
	}
	return QueryResult{Data: categories}
}

// RemoveCategory handles the confirmation dialog submit. It issues one
// delete request and reports the outcome through the delete-category
// notification. On success the dialog closes; on failure it stays open.
func (h *Handler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	p := i18n.Printer(i18n.ResolveTag(r))
	if !sameOriginRequest(r) {
		h.logger.Warn("Rejected cross-site removal",
			zap.Int("id", id),
			zap.String("origin", r.Header.Get("Origin")),
			zap.String("sec_fetch_site", r.Header.Get("Sec-Fetch-Site")),
		)
		http.Error(w, p.Sprintf(i18n.ErrorCrossSite), http.StatusForbidden)
		return
	}

	center := h.notifications.Load(r)
	center.Show(notifications.Notification{
		ID:            RemoveNotificationID,
		Title:         p.Sprintf(i18n.RemovingTitle),
		Message:       p.Sprintf(i18n.RemovingMessage),
		Loading:       true,
		DisallowClose: true,
	})

	next := routes.CategoriesList()
	if err := h.categories.RemoveCategory(r.Context(), id); err != nil {
		h.logger.Warn("Error removing category", zap.Int("id", id), zap.Error(err))
		center.Update(notifications.Notification{
			ID:        RemoveNotificationID,
			Color:     notifications.ColorRed,
			Title:     p.Sprintf(i18n.RemoveFailedTitle),
			Message:   p.Sprintf(i18n.RemoveFailedMessage),
			Icon:      notifications.IconX,
			AutoClose: notificationAutoClose,
		})
		next = routes.ConfirmRemove(id)
	} else {
		h.logger.Info("Category removed", zap.Int("id", id))
		center.Update(notifications.Notification{
			ID:        RemoveNotificationID,
			Color:     notifications.ColorTeal,
			Title:     p.Sprintf(i18n.RemovedTitle),
			Message:   p.Sprintf(i18n.RemovedMessage),
			Icon:      notifications.IconCheck,
			AutoClose: notificationAutoClose,
		})
	}

	if err := center.Save(w, r); err != nil {
		h.logger.Error("Error saving notifications", zap.Error(err))
	}
	redirect(w, r, next)
}

// redirect sends the browser to path, using HX-Redirect for htmx requests.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
