package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigofez/food-order-admin/models"
)

// CategoriesCacheKey holds the cached category list. Mutations invalidate it.
const CategoriesCacheKey = "categories:all"

// ErrNotFound is returned when the category service reports a missing id.
var ErrNotFound = errors.New("category not found")

// APIError describes a non-2xx answer from the category service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("category api returned status %d", e.Status)
	}
	return fmt.Sprintf("category api returned status %d: %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 answers.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// CategoryClient talks to the category service over HTTP JSON.
type CategoryClient struct {
	baseURL string
	http    *http.Client
	cache   ListCache
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCategoryClient creates a client for the service at baseURL. A nil
// cache disables caching.
func NewCategoryClient(baseURL string, httpClient *http.Client, cache ListCache, ttl time.Duration, logger *zap.Logger) *CategoryClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cache == nil {
		cache = noCache{}
	}
	return &CategoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

// GetAllCategories returns the full category list, served from cache when
// possible.
func (c *CategoryClient) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	if raw, ok, err := c.cache.Get(ctx, CategoriesCacheKey); err != nil {
		c.logger.Warn("Category cache read failed", zap.Error(err))
	} else if ok {
		var categories []models.Category
		if err := json.Unmarshal(raw, &categories); err == nil {
			return categories, nil
		}
		c.logger.Warn("Discarding undecodable category cache entry")
	}

	resp, err := c.do(ctx, http.MethodGet, "/api/categories")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	var categories []models.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	if err := c.cache.Set(ctx, CategoriesCacheKey, raw, c.ttl); err != nil {
		c.logger.Warn("Category cache write failed", zap.Error(err))
	}
	return categories, nil
}

// RemoveCategory deletes the category with the given id. It issues exactly
// one request and never retries. The cached list is dropped on success and
// when the service reports the id as already gone.
func (c *CategoryClient) RemoveCategory(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.invalidateList(ctx)
		}
		return err
	}
	resp.Body.Close()

	c.invalidateList(ctx)
	return nil
}

func (c *CategoryClient) invalidateList(ctx context.Context) {
	if err := c.cache.Delete(ctx, CategoriesCacheKey); err != nil {
		c.logger.Warn("Category cache invalidation failed", zap.Error(err))
	}
}

// do sends a request and converts non-2xx answers into *APIError.
func (c *CategoryClient) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := BearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling category api: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
			if json.Unmarshal(raw, &body) == nil {
				apiErr.Message = body.Error
			}
		}
		c.logger.Warn("Category API error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return nil, apiErr
	}
	return resp, nil
}

type tokenKey struct{}

// WithBearerToken returns a context whose outgoing category API calls carry
// token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// BearerToken returns the token stored by WithBearerToken.
func BearerToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
