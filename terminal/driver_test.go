package terminal

import (
	"testing"
)

func TestAdvanceCursor(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		text     string
		wantCol  int
		wantRow  int
	}{
		{"Plain", 0, 0, "hello", 5, 0},
		{"Newline", 0, 0, "ab\ncd", 2, 1},
		{"CarriageReturn", 4, 2, "ab\rc", 1, 2},
		{"WrapAtRightEdge", 78, 0, "abc", 1, 1},
		{"FillLastColumn", 79, 3, "x", 0, 4},
		{"BottomRowStays", 0, 23, "x\ny\n", 0, 23},
		{"WideRuneWraps", 79, 0, "世", 2, 1},
		{"WideRune", 0, 0, "世界", 4, 0},
		{"CombiningMark", 3, 0, "\u0301", 3, 0},
		{"Empty", 7, 7, "", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := AdvanceCursor(tt.col, tt.row, 80, 24, tt.text)
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("Expected %d,%d, got %d,%d", tt.wantCol, tt.wantRow, col, row)
			}
		})
	}
}

func TestAdvanceCursorUnbounded(t *testing.T) {
	col, row := AdvanceCursor(0, 0, 0, 0, "abc\nde")
	if col != 2 || row != 1 {
		t.Errorf("Expected 2,1 without window bounds, got %d,%d", col, row)
	}
}
