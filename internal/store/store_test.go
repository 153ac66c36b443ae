package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/sniptype/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestImportAndFetch(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	snippets := []model.Snippet{
		{Code: "a\nb", Level: model.LevelBeginner, Language: "Go"},
		{Code: "c", Level: model.LevelBeginner, Language: "go"},
		{Code: "d", Level: model.LevelAdvanced, Language: "python"},
	}
	added, err := st.ImportSnippets(ctx, snippets)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 3 {
		t.Fatalf("expected 3 added, got %d", added)
	}
	added, err = st.ImportSnippets(ctx, snippets[:1])
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if added != 0 {
		t.Fatalf("expected duplicate to be skipped, got %d", added)
	}

	got, err := st.Fetch(ctx, "GO", model.LevelBeginner)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 2 || got[0].Code != "a\nb" || got[0].Language != "go" {
		t.Fatalf("unexpected snippets: %+v", got)
	}
	got, err = st.Fetch(ctx, "go", model.LevelIntermediate)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %d %v", len(got), err)
	}

	langs, err := st.Languages(ctx)
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if strings.Join(langs, ",") != "go,python" {
		t.Fatalf("unexpected languages: %v", langs)
	}

	summary, err := st.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(summary))
	}
	if summary[0] != (model.CatalogEntry{Language: "go", Level: model.LevelBeginner, Count: 2}) {
		t.Fatalf("unexpected summary row: %+v", summary[0])
	}
}

func TestImportRejectsMissingLanguage(t *testing.T) {
	st := openTestStore(t)
	_, err := st.ImportSnippets(context.Background(), []model.Snippet{{Code: "x", Level: model.LevelBeginner}})
	if err == nil {
		t.Fatalf("expected error for snippet without language")
	}
	langs, err := st.Languages(context.Background())
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if len(langs) != 0 {
		t.Fatalf("expected rollback, got %v", langs)
	}
}
