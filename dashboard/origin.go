package dashboard

import (
	"net/http"
	"net/url"
	"strings"
)

// sameOriginRequest reports whether a state-changing request came from a page
// served by this host. Browsers send Sec-Fetch-Site, Origin or Referer with
// form posts; a request carrying none of them is refused.
func sameOriginRequest(r *http.Request) bool {
	switch strings.ToLower(strings.TrimSpace(r.Header.Get("Sec-Fetch-Site"))) {
	case "":
	case "same-origin", "none":
		return true
	default:
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return sameOrigin(origin, r)
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		return sameOrigin(referer, r)
	}
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "null" {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	return strings.EqualFold(parsed.Scheme, requestScheme(r))
}

func requestScheme(r *http.Request) string {
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		first, _, _ := strings.Cut(proto, ",")
		return strings.ToLower(strings.TrimSpace(first))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
