package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellDriver renders into a tcell.Screen
// tcell keeps no notion of a text cursor with colors, so the driver tracks
// colors, position and visibility itself and turns text into styled cells
type TcellDriver struct {
	screen tcell.Screen

	mu      sync.Mutex
	fg      Color
	bg      Color
	column  int
	row     int
	visible bool
	closed  bool
}

var _ Driver = (*TcellDriver)(nil)

// NewTcellDriver wraps an initialized screen
// Initial state is gray on black with a visible cursor at the origin
func NewTcellDriver(screen tcell.Screen) *TcellDriver {
	d := &TcellDriver{
		screen:  screen,
		fg:      Gray,
		bg:      Black,
		visible: true,
	}
	screen.SetStyle(d.style())
	screen.ShowCursor(0, 0)
	return d
}

// Screen returns the wrapped screen
func (d *TcellDriver) Screen() tcell.Screen {
	return d.screen
}

// Fini finalizes the screen; later mutations return ErrClosed. Safe to call multiple times
func (d *TcellDriver) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	d.screen.Fini()
}

func (d *TcellDriver) Foreground() Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fg
}

func (d *TcellDriver) Background() Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bg
}

func (d *TcellDriver) SetForeground(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("invalid color %s", c)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.fg = c
	return nil
}

func (d *TcellDriver) SetBackground(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("invalid color %s", c)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.bg = c
	return nil
}

func (d *TcellDriver) CursorPosition() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.column, d.row
}

// SetCursorPosition moves the cursor; positions off screen are kept and writes there are clipped
func (d *TcellDriver) SetCursorPosition(column, row int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.column, d.row = column, row
	d.syncCursor()
	d.screen.Show()
	return nil
}

func (d *TcellDriver) CursorVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

func (d *TcellDriver) SetCursorVisible(visible bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.visible = visible
	d.syncCursor()
	d.screen.Show()
	return nil
}

func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

// WriteRaw sets cells from the cursor onward in the current colors
// The screen does not scroll: output past the bottom keeps overwriting the last row
func (d *TcellDriver) WriteRaw(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}

	w, h := d.screen.Size()
	style := d.style()
	for _, r := range text {
		var x, y int
		d.column, d.row, x, y = advanceRune(d.column, d.row, w, h, r)
		if x >= 0 && y >= 0 && x < w && y < h {
			d.screen.SetContent(x, y, r, nil, style)
		}
	}

	d.syncCursor()
	d.screen.Show()
	return nil
}

// Clear blanks the screen in the current background and homes the cursor
func (d *TcellDriver) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.screen.SetStyle(d.style())
	d.screen.Clear()
	d.column, d.row = 0, 0
	d.syncCursor()
	d.screen.Show()
	return nil
}

// style builds the cell style for the current colors; caller holds mu
func (d *TcellDriver) style() tcell.Style {
	return tcell.StyleDefault.Foreground(d.fg.Tcell()).Background(d.bg.Tcell())
}

// syncCursor mirrors position and visibility onto the screen; caller holds mu
func (d *TcellDriver) syncCursor() {
	if d.visible {
		d.screen.ShowCursor(d.column, d.row)
	} else {
		d.screen.HideCursor()
	}
}
