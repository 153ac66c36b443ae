package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/sniptype/internal/model"
)

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	res := Result{
		Snippet:  model.Snippet{Code: "fmt.Println()", Level: model.LevelBeginner, Language: "go"},
		Duration: 15 * time.Second,
		Outcome:  OutcomeExpired,
		Final:    FinalMetrics{TotalTyped: 10, CorrectChars: 9, WPM: 8, Accuracy: 90},
	}
	if err := RenderResult(&buf, res); err != nil {
		t.Fatalf("render result: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"go · beginner · time over", "WPM", "90%", "10/13", "15s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("result missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCatalog(t *testing.T) {
	var buf bytes.Buffer
	entries := []model.CatalogEntry{
		{Language: "go", Level: model.LevelBeginner, Count: 2},
		{Language: "python", Level: model.LevelAdvanced, Count: 5},
	}
	if err := RenderCatalog(&buf, entries); err != nil {
		t.Fatalf("render catalog: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[3] != "total                  7" {
		t.Fatalf("unexpected total line: %q", lines[3])
	}

	buf.Reset()
	if err := RenderCatalog(&buf, nil); err != nil {
		t.Fatalf("render empty catalog: %v", err)
	}
	if !strings.Contains(buf.String(), "Catalog is empty.") {
		t.Fatalf("expected empty message")
	}
}
