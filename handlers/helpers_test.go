package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rodrigofez/food-order-admin/config"
	"github.com/rodrigofez/food-order-admin/database"
	"github.com/rodrigofez/food-order-admin/migrations"
	"github.com/rodrigofez/food-order-admin/services"
)

// setupTestDB opens an in-memory database with the current schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.RunMigrations(db, zap.NewNop(), false); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestRouter mounts a category handler on a fresh router.
func newTestRouter(db *sql.DB) *mux.Router {
	return newCachedTestRouter(db, nil)
}

// newCachedTestRouter mounts a category handler that invalidates cache.
func newCachedTestRouter(db *sql.DB, cache services.ListCache) *mux.Router {
	r := mux.NewRouter()
	NewCategoryHandler(db, cache, zap.NewNop()).Register(r)
	return r
}

// doRequest runs a request through handler and returns the recorder.
func doRequest(handler http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		buf, _ := json.Marshal(body)
		req = httptest.NewRequest(method, url, bytes.NewBuffer(buf))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
