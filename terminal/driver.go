package terminal

import (
	"github.com/mattn/go-runewidth"
)

// Driver is the primitive device boundary a Console renders through
// Every method is atomic on its own; sequences of calls are not, Console supplies that
// Out-of-range cursor positions are the driver's to clamp, wrap or ignore
type Driver interface {
	// Colors
	Foreground() Color
	Background() Color
	SetForeground(c Color) error
	SetBackground(c Color) error

	// Cursor (0-indexed)
	CursorPosition() (column, row int)
	SetCursorPosition(column, row int) error
	CursorVisible() bool
	SetCursorVisible(visible bool) error

	// Size returns the window dimensions in cells
	Size() (width, height int)

	// WriteRaw emits text at the cursor using the current colors
	WriteRaw(text string) error

	// Clear blanks the screen and homes the cursor
	Clear() error
}

// AdvanceCursor returns the cursor position after text is emitted at (column, row)
// '\n' starts the next row, '\r' returns to column 0, filling the last column wraps
// to the next row, and rows past the bottom stay on the last row
func AdvanceCursor(column, row, width, height int, text string) (int, int) {
	for _, r := range text {
		column, row, _, _ = advanceRune(column, row, width, height, r)
	}
	return column, row
}

// advanceRune moves the cursor over one rune and also returns the cell the rune lands in
// The cell column is -1 for runes that occupy no cell
func advanceRune(column, row, width, height int, r rune) (int, int, int, int) {
	cellX, cellY := -1, row
	switch r {
	case '\n':
		column = 0
		row++
	case '\r':
		column = 0
	default:
		w := runewidth.RuneWidth(r)
		if w == 0 {
			return column, row, cellX, cellY
		}
		// Wide rune that does not fit moves to the next row first
		if width > 0 && column+w > width && column > 0 {
			column = 0
			row = scrollRow(row+1, height)
		}
		cellX, cellY = column, row
		column += w
		if width > 0 && column >= width {
			column = 0
			row++
		}
	}
	return column, scrollRow(row, height), cellX, cellY
}

func scrollRow(row, height int) int {
	if height > 0 && row >= height {
		return height - 1
	}
	return row
}
