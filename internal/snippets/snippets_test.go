package snippets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/sniptype/internal/model"
)

const sampleJSON = `{"snippets": [
	{"code": "a\nb", "level": "beginner"},
	{"code": "let x = 1;", "level": "advanced"},
	{"code": "c\r\nd", "level": "beginner"}
]}`

func TestDecodeJSON(t *testing.T) {
	got, err := Decode(strings.NewReader(sampleJSON), "JavaScript", ".json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 snippets, got %d", len(got))
	}
	if got[1].Level != model.LevelAdvanced || got[1].Language != "javascript" {
		t.Fatalf("unexpected snippet: %+v", got[1])
	}
	if got[2].Code != "c\nd" {
		t.Fatalf("expected CRLF normalized, got %q", got[2].Code)
	}
}

func TestDecodeYAML(t *testing.T) {
	data := "snippets:\n  - code: |-\n      x = 1\n      y = 2\n    level: intermediate\n"
	got, err := Decode(strings.NewReader(data), "python", ".yaml")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Code != "x = 1\ny = 2" || got[0].Level != model.LevelIntermediate {
		t.Fatalf("unexpected snippets: %+v", got)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json"), "go", ".json"); err == nil {
		t.Fatalf("expected malformed json error")
	}
	if _, err := Decode(strings.NewReader("snippets: [unclosed"), "go", ".yaml"); err == nil {
		t.Fatalf("expected malformed yaml error")
	}
}

func TestDecodeSkipsUnknownLevel(t *testing.T) {
	data := `{"snippets": [
		{"code": "let a = 1;", "level": "beginner"},
		{"code": "x", "level": "expert"},
		{"code": "y", "level": "Beginner"},
		{"code": "  ", "level": "beginner"}
	]}`
	got, err := Decode(strings.NewReader(data), "javascript", ".json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Code != "let a = 1;" {
		t.Fatalf("expected only the beginner snippet, got %+v", got)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "javascript-snippets.json"), []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	list, err := NewDirSource(dir).Fetch(context.Background(), "javascript", model.LevelBeginner)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 beginner snippet, got %d", len(list))
	}
	list, err = NewDirSource(dir).Fetch(context.Background(), "javascript", model.LevelAdvanced)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty advanced subset, got %d (%v)", len(list), err)
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "javascript-snippets.json"), []byte(sampleJSON), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	yamlData := "snippets:\n  - code: print(1)\n    level: beginner\n"
	if err := os.WriteFile(filepath.Join(dir, "python-snippets.yml"), []byte(yamlData), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src := NewDirSource(dir)
	ctx := context.Background()

	got, err := src.Fetch(ctx, "JavaScript", model.LevelBeginner)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 beginner snippets, got %d", len(got))
	}
	got, err = src.Fetch(ctx, "javascript", model.LevelIntermediate)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty subset without error, got %d %v", len(got), err)
	}
	got, err = src.Fetch(ctx, "python", model.LevelBeginner)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected yaml snippet, got %d %v", len(got), err)
	}
	if _, err := src.Fetch(ctx, "rust", model.LevelBeginner); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	langs, err := src.Languages(ctx)
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if strings.Join(langs, ",") != "javascript,python" {
		t.Fatalf("unexpected languages: %v", langs)
	}
}

func TestReadFileInfersLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-snippets.json")
	if err := os.WriteFile(path, []byte(`{"snippets":[{"code":"x := 1","level":"beginner"}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFile(path, "")
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if got[0].Language != "go" {
		t.Fatalf("expected language go, got %q", got[0].Language)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "snippets.json"), ""); err == nil {
		t.Fatalf("expected error for unrecognized file name")
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/snippets/javascript-snippets.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleJSON))
		case "/snippets/broken-snippets.json":
			_, _ = w.Write([]byte("{"))
		case "/snippets/down-snippets.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/snippets/", srv.Client())
	ctx := context.Background()
	got, err := src.Fetch(ctx, "javascript", model.LevelAdvanced)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 1 || got[0].Code != "let x = 1;" {
		t.Fatalf("unexpected snippets: %+v", got)
	}
	if _, err := src.Fetch(ctx, "rust", model.LevelBeginner); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := src.Fetch(ctx, "broken", model.LevelBeginner); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := src.Fetch(ctx, "down", model.LevelBeginner); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestEmbeddedHasAllLevels(t *testing.T) {
	src := Embedded()
	ctx := context.Background()
	langs, err := src.Languages(ctx)
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	if len(langs) == 0 {
		t.Fatalf("expected embedded languages")
	}
	for _, lang := range langs {
		for _, lvl := range model.Levels {
			got, err := src.Fetch(ctx, lang, lvl)
			if err != nil {
				t.Fatalf("%s/%s: %v", lang, lvl, err)
			}
			if len(got) == 0 {
				t.Fatalf("%s/%s: expected snippets", lang, lvl)
			}
		}
	}
}

func TestOpenSelectsSource(t *testing.T) {
	cases := map[string]any{
		"":                    &FSSource{},
		"https://example.com": &HTTPSource{},
		"/tmp/snippets":       &DirSource{},
	}
	for location, want := range cases {
		src, err := Open(location, nil)
		if err != nil {
			t.Fatalf("open %q: %v", location, err)
		}
		switch want.(type) {
		case *FSSource:
			if _, ok := src.(*FSSource); !ok {
				t.Fatalf("%q: expected embedded source, got %T", location, src)
			}
		case *HTTPSource:
			if _, ok := src.(*HTTPSource); !ok {
				t.Fatalf("%q: expected http source, got %T", location, src)
			}
		case *DirSource:
			if _, ok := src.(*DirSource); !ok {
				t.Fatalf("%q: expected dir source, got %T", location, src)
			}
		}
	}
	if _, err := Open("catalog", nil); err == nil {
		t.Fatalf("expected error without catalog opener")
	}
}
