package terminal

// State is a snapshot of the ambient terminal state
// Fields are named by axis; NewState takes column before row
type State struct {
	Foreground    Color
	Background    Color
	Column        int
	Row           int
	CursorVisible bool
}

// NewState builds a snapshot from explicit values, stored verbatim
// Coordinates are not validated; the driver decides what an out-of-range position means
func NewState(foreground, background Color, column, row int, cursorVisible bool) State {
	return State{
		Foreground:    foreground,
		Background:    background,
		Column:        column,
		Row:           row,
		CursorVisible: cursorVisible,
	}
}

// Capture reads a fresh snapshot from the driver
func Capture(d Driver) State {
	col, row := d.CursorPosition()
	return State{
		Foreground:    d.Foreground(),
		Background:    d.Background(),
		Column:        col,
		Row:           row,
		CursorVisible: d.CursorVisible(),
	}
}

// Colors returns the color pair held by the snapshot
func (s State) Colors() Colors {
	return NewColors(s.Foreground, s.Background)
}

// Equal reports whether all five fields match
func (s State) Equal(other State) bool {
	return s == other
}
