package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/sniptype/internal/model"
)

// Outcome describes how a session ended.
type Outcome string

// Session outcomes.
const (
	OutcomeCompleted Outcome = "completed"
	OutcomeExpired   Outcome = "time over"
)

// Result is a finished session ready for reporting.
type Result struct {
	Snippet  model.Snippet
	Duration time.Duration
	Outcome  Outcome
	Final    FinalMetrics
}

// RenderResult prints a summary table for a finished session.
func RenderResult(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "Result (%s · %s · %s)\n", res.Snippet.Language, res.Snippet.Level, res.Outcome); err != nil {
		return err
	}
	rows := [][]string{
		{"WPM", fmt.Sprintf("%d", res.Final.WPM)},
		{"Accuracy", fmt.Sprintf("%d%%", res.Final.Accuracy)},
		{"Typed", fmt.Sprintf("%d/%d", res.Final.TotalTyped, len([]rune(res.Snippet.Code)))},
		{"Correct", fmt.Sprintf("%d", res.Final.CorrectChars)},
		{"Duration", fmt.Sprintf("%ds", int(res.Duration.Seconds()))},
	}
	lines := formatTable(nil, rows, map[int]bool{1: true})
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return err
	}
	return nil
}
