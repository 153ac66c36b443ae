// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownLevel is returned when a difficulty level name is not recognized.
var ErrUnknownLevel = errors.New("unknown level")

// Level is a snippet difficulty.
type Level string

// Supported difficulty levels.
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists all levels in cycling order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBeginner:
		return LevelBeginner, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelAdvanced:
		return LevelAdvanced, nil
	}
	return "", fmt.Errorf("%w %q (want beginner, intermediate or advanced)", ErrUnknownLevel, s)
}

// Duration returns the countdown length for the level.
func (l Level) Duration() time.Duration {
	switch l {
	case LevelBeginner:
		return 15 * time.Second
	case LevelAdvanced:
		return 50 * time.Second
	default:
		return 30 * time.Second
	}
}

// Next returns the level after l, wrapping around.
func (l Level) Next() Level {
	for i, lvl := range Levels {
		if lvl == l {
			return Levels[(i+1)%len(Levels)]
		}
	}
	return LevelBeginner
}

// Snippet is a piece of code to type.
type Snippet struct {
	Code     string
	Level    Level
	Language string
}

// Config defines practice settings.
type Config struct {
	Lang      string
	Level     Level
	Source    string
	Sound     bool
	Languages []string
}

// CatalogEntry summarizes catalog contents for one language and level.
type CatalogEntry struct {
	Language string
	Level    Level
	Count    int
}
