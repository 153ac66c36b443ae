package snippets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/verte-zerg/sniptype/internal/model"
)

//go:embed data/*.json
var embedded embed.FS

// FSSource reads snippet files from an fs.FS.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// Embedded returns the snippets compiled into the binary.
func Embedded() *FSSource {
	return &FSSource{fsys: embedded, dir: "data"}
}

// Fetch implements Source.
func (f *FSSource) Fetch(ctx context.Context, language string, level model.Level) ([]model.Snippet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := path.Join(f.dir, FileName(language, ".json"))
	file, err := f.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, FileName(language, ".json"))
		}
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			_ = cerr
		}
	}()
	all, err := Decode(file, language, ".json")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return filterLevel(all, level), nil
}

// Languages implements Lister.
func (f *FSSource) Languages(_ context.Context) ([]string, error) {
	entries, err := fs.ReadDir(f.fsys, f.dir)
	if err != nil {
		return nil, err
	}
	var langs []string
	for _, entry := range entries {
		if lang, ok := LanguageFromFileName(entry.Name()); ok {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs, nil
}
