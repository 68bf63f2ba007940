// Package notifications keeps transient status messages addressed by id and
// carries them across redirects in a sealed cookie.
package notifications

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rodrigofez/food-order-admin/security"
)

// CookieName is the cookie holding pending notifications.
const CookieName = "foa_notifications"

// maxPending bounds how many notifications survive in the cookie.
const maxPending = 5

// Color names map onto the dashboard palette.
const (
	ColorBlue = "blue"
	ColorTeal = "teal"
	ColorRed  = "red"
)

// Icons rendered next to a notification title.
const (
	IconNone  = ""
	IconCheck = "check"
	IconX     = "x"
)

// Notification is one transient status message.
type Notification struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	Color         string        `json:"color,omitempty"`
	Icon          string        `json:"icon,omitempty"`
	Loading       bool          `json:"loading,omitempty"`
	AutoClose     time.Duration `json:"autoClose,omitempty"`
	DisallowClose bool          `json:"disallowClose,omitempty"`
}

// AutoCloseMillis returns the auto close delay in milliseconds; zero means
// the notification stays until dismissed.
func (n Notification) AutoCloseMillis() int64 {
	return n.AutoClose.Milliseconds()
}

// Store loads and persists notification centers for requests.
type Store struct {
	box *security.Box
}

func NewStore(box *security.Box) *Store {
	return &Store{box: box}
}

// Center holds the notifications of one request.
type Center struct {
	store *Store
	items []Notification
}

// Load returns the center for r, seeded with notifications that are still
// pending from earlier requests.
func (s *Store) Load(r *http.Request) *Center {
	return &Center{store: s, items: s.read(r)}
}

// Drain returns pending notifications in creation order and clears them.
func (s *Store) Drain(w http.ResponseWriter, r *http.Request) []Notification {
	items := s.read(r)
	if len(items) > 0 {
		clearCookie(w, r)
	}
	return items
}

// Show creates notification n, replacing any notification with the same id.
func (c *Center) Show(n Notification) {
	n.ID = strings.TrimSpace(n.ID)
	if n.ID == "" {
		return
	}
	for i := range c.items {
		if c.items[i].ID == n.ID {
			c.items[i] = n
			return
		}
	}
	c.items = append(c.items, n)
	if len(c.items) > maxPending {
		c.items = c.items[len(c.items)-maxPending:]
	}
}

// Update replaces the notification with n.ID in place. Unknown ids are
// created.
func (c *Center) Update(n Notification) {
	c.Show(n)
}

// Get returns the notification with id.
func (c *Center) Get(id string) (Notification, bool) {
	for _, n := range c.items {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// List returns a copy of the current notifications.
func (c *Center) List() []Notification {
	return append([]Notification(nil), c.items...)
}

// Save writes the center to the response cookie for the next render.
func (c *Center) Save(w http.ResponseWriter, r *http.Request) error {
	if len(c.items) == 0 {
		clearCookie(w, r)
		return nil
	}
	payload, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	sealed, err := c.store.box.Seal(payload)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sealed,
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Store) read(r *http.Request) []Notification {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil
	}
	payload, err := s.box.Open(cookie.Value)
	if err != nil {
		return nil
	}
	var items []Notification
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil
	}
	return items
}

func clearCookie(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
