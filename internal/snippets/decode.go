package snippets

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/sniptype/internal/model"
)

var fileExts = []string{".json", ".yaml", ".yml"}

type fileData struct {
	Snippets []fileSnippet `json:"snippets" yaml:"snippets"`
}

type fileSnippet struct {
	Code  string `json:"code" yaml:"code"`
	Level string `json:"level" yaml:"level"`
}

// Decode reads a snippet file. The format is chosen by extension; anything
// other than .yaml/.yml is treated as JSON. Snippets whose level is not an
// exact known level name, or whose code is blank, are skipped.
func Decode(r io.Reader, language, ext string) ([]model.Snippet, error) {
	var data fileData
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode yaml snippets: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode json snippets: %w", err)
		}
	}
	language = normalizeLanguage(language)
	out := make([]model.Snippet, 0, len(data.Snippets))
	for _, fs := range data.Snippets {
		level, ok := exactLevel(fs.Level)
		if !ok {
			continue
		}
		code := strings.ReplaceAll(fs.Code, "\r\n", "\n")
		if strings.TrimSpace(code) == "" {
			continue
		}
		out = append(out, model.Snippet{Code: code, Level: level, Language: language})
	}
	return out, nil
}

func exactLevel(s string) (model.Level, bool) {
	for _, lvl := range model.Levels {
		if string(lvl) == s {
			return lvl, true
		}
	}
	return "", false
}
