package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/sniptype/internal/model"
)

// RenderCatalog prints snippet counts per language and level.
func RenderCatalog(w io.Writer, entries []model.CatalogEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "Catalog is empty.")
		return err
	}
	rows := make([][]string, 0, len(entries))
	total := 0
	for _, e := range entries {
		rows = append(rows, []string{e.Language, string(e.Level), fmt.Sprintf("%d", e.Count)})
		total += e.Count
	}
	rows = append(rows, []string{"total", "", fmt.Sprintf("%d", total)})
	for _, line := range formatTable([]string{"Lang", "Level", "Snippets"}, rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
