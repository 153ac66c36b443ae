// Package snippets loads typing snippets from embedded data, directories,
// HTTP endpoints or the local catalog.
package snippets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/sniptype/internal/model"
)

var (
	// ErrNotFound is returned when no snippet file exists for a language.
	ErrNotFound = errors.New("snippet file not found")
)

// Source provides snippets for a language and level.
type Source interface {
	Fetch(ctx context.Context, language string, level model.Level) ([]model.Snippet, error)
}

// Lister is implemented by sources that can enumerate their languages.
type Lister interface {
	Languages(ctx context.Context) ([]string, error)
}

// CatalogSource is implemented by the SQLite catalog.
type CatalogSource interface {
	Source
	Lister
}

// Open selects a source from its configured location. An empty location means the
// embedded snippets, "catalog" the SQLite catalog, an http(s) URL a remote
// directory, and anything else a local directory.
func Open(location string, catalog func() (CatalogSource, error)) (Source, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "" || location == "embedded":
		return Embedded(), nil
	case location == "catalog":
		if catalog == nil {
			return nil, fmt.Errorf("catalog source is not available")
		}
		src, err := catalog()
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		return src, nil
	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, nil), nil
	default:
		return NewDirSource(location), nil
	}
}

// FileName returns the resource name for a language, e.g. "go-snippets.json".
func FileName(language, ext string) string {
	return normalizeLanguage(language) + "-snippets" + ext
}

// LanguageFromFileName extracts the language from a snippet file name.
func LanguageFromFileName(name string) (string, bool) {
	for _, ext := range fileExts {
		if strings.HasSuffix(name, "-snippets"+ext) {
			lang := strings.TrimSuffix(name, "-snippets"+ext)
			if lang == "" {
				return "", false
			}
			return normalizeLanguage(lang), true
		}
	}
	return "", false
}

func normalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

func filterLevel(all []model.Snippet, level model.Level) []model.Snippet {
	out := make([]model.Snippet, 0, len(all))
	for _, s := range all {
		if s.Level == level {
			out = append(out, s)
		}
	}
	return out
}
