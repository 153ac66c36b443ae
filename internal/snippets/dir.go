package snippets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/verte-zerg/sniptype/internal/model"
)

// DirSource reads <lang>-snippets.{json,yaml,yml} files from a directory.
type DirSource struct {
	dir string
}

// NewDirSource returns a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Fetch implements Source.
func (d *DirSource) Fetch(ctx context.Context, language string, level model.Level) ([]model.Snippet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range fileExts {
		path := filepath.Join(d.dir, FileName(language, ext))
		all, err := readFile(path, language, ext)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return filterLevel(all, level), nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, FileName(language, ".json"), d.dir)
}

// Languages implements Lister.
func (d *DirSource) Languages(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snippet directory: %w", err)
	}
	seen := map[string]struct{}{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if lang, ok := LanguageFromFileName(entry.Name()); ok {
			seen[lang] = struct{}{}
		}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// ReadFile decodes a snippet file, inferring its language from the file name
// unless language is set.
func ReadFile(path, language string) ([]model.Snippet, error) {
	if language == "" {
		lang, ok := LanguageFromFileName(filepath.Base(path))
		if !ok {
			return nil, fmt.Errorf("cannot infer language from %s (expected <lang>-snippets.json)", filepath.Base(path))
		}
		language = lang
	}
	return readFile(path, language, filepath.Ext(path))
}

func readFile(path, language, ext string) ([]model.Snippet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only snippet file.
			_ = cerr
		}
	}()
	snippets, err := Decode(file, language, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snippets, nil
}
