// Package stats computes typing metrics.
package stats

import (
	"math"
	"strings"
	"time"
)

// LiveMetrics are recomputed on every keystroke while a session is active.
type LiveMetrics struct {
	Progress int
	Accuracy int
	WPM      int
	Correct  int
}

// FinalMetrics are computed once when a session ends.
type FinalMetrics struct {
	TotalTyped   int
	CorrectChars int
	WPM          int
	Accuracy     int
}

// CorrectCount counts positions where accepted matches code.
func CorrectCount(code, accepted []rune) int {
	correct := 0
	for i, r := range accepted {
		if i < len(code) && r == code[i] {
			correct++
		}
	}
	return correct
}

// Progress returns the typed share of code as a floored percentage in [0,100].
func Progress(codeLen, typedLen int) int {
	if codeLen <= 0 {
		return 0
	}
	p := int(math.Floor(float64(typedLen) / float64(codeLen) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Live computes progress, accuracy and word-based WPM. A zero startedAt
// yields zero WPM.
func Live(code, accepted []rune, startedAt, now time.Time) LiveMetrics {
	correct := CorrectCount(code, accepted)
	m := LiveMetrics{
		Progress: Progress(len(code), len(accepted)),
		Correct:  correct,
	}
	if len(accepted) > 0 {
		m.Accuracy = int(math.Floor(float64(correct) / float64(len(accepted)) * 100))
	}
	if startedAt.IsZero() {
		return m
	}
	minutes := float64(now.Sub(startedAt).Milliseconds()) / 60000.0
	if minutes <= 0 {
		return m
	}
	words := len(strings.Fields(strings.TrimSpace(string(accepted))))
	wpm := math.Round(float64(words) / minutes)
	if math.IsNaN(wpm) || math.IsInf(wpm, 0) {
		return m
	}
	m.WPM = int(wpm)
	return m
}

// Final computes end-of-session metrics. WPM uses the nominal duration and
// five characters per word.
func Final(code, accepted []rune, duration time.Duration) FinalMetrics {
	total := len(accepted)
	correct := CorrectCount(code, accepted)
	m := FinalMetrics{TotalTyped: total, CorrectChars: correct}
	minutes := duration.Minutes()
	if minutes > 0 {
		m.WPM = int(math.Round((float64(total) / 5.0) / minutes))
	}
	if total > 0 {
		m.Accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return m
}
