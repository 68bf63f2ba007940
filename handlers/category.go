package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rodrigofez/food-order-admin/database"
	"github.com/rodrigofez/food-order-admin/models"
	"github.com/rodrigofez/food-order-admin/services"
)

// CategoryHandler serves the category JSON API.
type CategoryHandler struct {
	db     *sql.DB
	cache  services.ListCache
	logger *zap.Logger
}

// NewCategoryHandler creates a new category handler. Every successful write
// drops the cached category list from cache; a nil cache skips that.
func NewCategoryHandler(db *sql.DB, cache services.ListCache, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{db: db, cache: cache, logger: logger}
}

// Register mounts the category routes on r.
func (h *CategoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/categories", h.GetCategories).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.AddCategory).Methods(http.MethodPost)
	r.HandleFunc("/categories/{id}", h.GetCategory).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id}", h.UpdateCategory).Methods(http.MethodPut)
	r.HandleFunc("/categories/{id}", h.DeleteCategory).Methods(http.MethodDelete)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := database.ListCategories(r.Context(), h.db)
	if err != nil {
		h.logger.Error("Error listing categories", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryID(w, r)
	if !ok {
		return
	}

	c, err := database.GetCategory(r.Context(), h.db, id)
	if err != nil {
		h.storeError(w, err, "failed to get category", id)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	c, err := database.CreateCategory(r.Context(), h.db, in)
	if errors.Is(err, database.ErrDuplicateName) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("Error creating category", zap.String("name", in.Name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	h.invalidateList(r.Context())
	h.logger.Info("Category created", zap.Int("id", c.ID), zap.String("name", c.Name))
	writeJSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryID(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	c, err := database.UpdateCategory(r.Context(), h.db, id, in)
	if err != nil {
		h.storeError(w, err, "failed to update category", id)
		return
	}
	h.invalidateList(r.Context())
	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryID(w, r)
	if !ok {
		return
	}

	if err := database.DeleteCategory(r.Context(), h.db, id); err != nil {
		h.storeError(w, err, "failed to delete category", id)
		return
	}

	h.invalidateList(r.Context())
	h.logger.Info("Category deleted", zap.Int("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) storeError(w http.ResponseWriter, err error, msg string, id int) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, database.ErrDuplicateName):
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	h.logger.Error(msg, zap.Int("id", id), zap.Error(err))
	writeError(w, http.StatusInternalServerError, msg)
}

func (h *CategoryHandler) invalidateList(ctx context.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(ctx, services.CategoriesCacheKey); err != nil {
		h.logger.Warn("Category cache invalidation failed", zap.Error(err))
	}
}

func categoryID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return 0, false
	}
	return id, true
}

func decodeInput(w http.ResponseWriter, r *http.Request) (models.CategoryInput, bool) {
	var in models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return in, false
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return in, false
	}
	return in, true
}
