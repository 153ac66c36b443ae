package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/sniptype/internal/diff"
)

const (
	wrongSpaceMarker = '•'
	lineBreakMarker  = "⏎"
	tabWidth         = 4
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isBreak bool
}

func buildStyledRunes(cells []diff.Cell, cursorIndex int) []styledRune {
	words := findWords(cells)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(cells))
	for i, cell := range cells {
		if cell.Status == diff.LineBreak {
			item := styledRune{isBreak: true}
			// The cursor sits on a line break: show what has to be typed.
			if i == cursorIndex {
				item.s = cursorStyle.Render(lineBreakMarker)
				item.width = runewidth.StringWidth(lineBreakMarker)
			}
			out = append(out, item)
			continue
		}

		displayed := string(cell.Char)
		width := runewidth.RuneWidth(cell.Char)
		isSpace := cell.Char == ' ' || cell.Char == '\t'
		if cell.Char == '\t' {
			displayed = strings.Repeat(" ", tabWidth)
			width = tabWidth
		}

		style := pendingStyle
		switch cell.Status {
		case diff.Correct:
			style = correctStyle
		case diff.Incorrect:
			style = incorrectStyle
			if isSpace {
				displayed = string(wrongSpaceMarker)
				width = runewidth.RuneWidth(wrongSpaceMarker)
			}
		default:
			if !isSpace && currentWord != nil && i >= currentWord.start && i < currentWord.end {
				style = currentWordStyle
			}
		}
		if i == cursorIndex && !cell.Typed {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(displayed),
			width:   width,
			isSpace: isSpace,
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

func isWordBoundary(cell diff.Cell) bool {
	return cell.Char == ' ' || cell.Char == '\t' || cell.Char == '\n'
}

func findWords(cells []diff.Cell) []wordRange {
	words := []wordRange{}
	start := -1
	for i, cell := range cells {
		if isWordBoundary(cell) {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(cells)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex >= w.start && cursorIndex < w.end {
			return &words[i]
		}
		if cursorIndex < w.start {
			return &words[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at snippet line breaks and soft-wraps long
// lines at the last space that fits.
func wrapStyledRunes(runes []styledRune, width int) string {
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if item.isBreak {
			out.WriteString(renderStyledRunes(line))
			out.WriteString(item.s)
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			i++
			continue
		}
		if width > 0 && lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx+1]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
