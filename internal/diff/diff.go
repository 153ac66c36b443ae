// Package diff classifies typed input against a target snippet.
package diff

// Status is the display state of one snippet character.
type Status int

// Character states.
const (
	Pending Status = iota
	Correct
	Incorrect
	LineBreak
)

// Cell is one snippet character with its status.
type Cell struct {
	Char   rune
	Status Status
	// Typed reports whether the position has been reached by the input.
	Typed bool
}

// Render returns one cell per rune of code. Newlines become LineBreak cells
// regardless of input; Typed still tells whether the break has been entered.
func Render(code, accepted []rune) []Cell {
	cells := make([]Cell, len(code))
	for i, expected := range code {
		typed := i < len(accepted)
		cell := Cell{Char: expected, Typed: typed}
		switch {
		case expected == '\n':
			cell.Status = LineBreak
		case !typed:
			cell.Status = Pending
		case accepted[i] == expected:
			cell.Status = Correct
		default:
			cell.Status = Incorrect
		}
		cells[i] = cell
	}
	return cells
}

// Summary counts cells by status.
type Summary struct {
	Pending    int
	Correct    int
	Incorrect  int
	LineBreaks int
}

// Counts summarizes rendered cells.
func Counts(cells []Cell) Summary {
	var s Summary
	for _, c := range cells {
		switch c.Status {
		case Pending:
			s.Pending++
		case Correct:
			s.Correct++
		case Incorrect:
			s.Incorrect++
		case LineBreak:
			s.LineBreaks++
		}
	}
	return s
}
