// Package i18n resolves the dashboard language and formats its copy.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supportedTags = []language.Tag{
	language.Spanish,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return language.Spanish
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the language for r from the lang query parameter or the
// Accept-Language header.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, err := language.Parse(value); err == nil {
			return match(tag)
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return match(tags...)
		}
	}

	return Default()
}

func match(tags ...language.Tag) language.Tag {
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}
