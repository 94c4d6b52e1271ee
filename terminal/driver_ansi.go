package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Fallback window size when the output is not a terminal
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ANSIDriver renders through ANSI escape sequences written to an io.Writer
// A terminal cannot be asked for its current colors synchronously, so the driver
// keeps shadow state of everything it emitted and assumes it owns the output
type ANSIDriver struct {
	out    io.Writer
	writer *bufio.Writer
	fd     int // -1 when output is not a terminal

	mu            sync.Mutex
	fg            Color
	bg            Color
	column        int
	row           int
	visible       bool
	width, height int // fixed size, 0 queries the device
}

var _ Driver = (*ANSIDriver)(nil)

// NewANSIDriver creates a driver writing to w
// Shadow state starts as gray on black with a visible cursor at the origin; call Reset
// to bring the device in line with it
func NewANSIDriver(w io.Writer) *ANSIDriver {
	d := &ANSIDriver{
		out:     w,
		writer:  bufio.NewWriterSize(w, 4096),
		fd:      -1,
		fg:      Gray,
		bg:      Black,
		visible: true,
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		d.fd = int(f.Fd())
	}
	return d
}

// SetSize fixes the reported window size; zero width or height resumes querying the device
func (d *ANSIDriver) SetSize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width, d.height = width, height
}

// Reset emits the full shadow state: attributes, colors, cursor position and visibility
func (d *ANSIDriver) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	w := d.writer
	w.Write(csiSGR0)
	writeSGR(w, d.fg.FgCode())
	writeSGR(w, d.bg.BgCode())
	writeCursorPos(w, d.column, d.row)
	if d.visible {
		w.Write(csiCursorShow)
	} else {
		w.Write(csiCursorHide)
	}
	return d.flush()
}

func (d *ANSIDriver) Foreground() Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fg
}

func (d *ANSIDriver) Background() Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bg
}

func (d *ANSIDriver) SetForeground(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("invalid color %s", c)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	writeSGR(d.writer, c.FgCode())
	if err := d.flush(); err != nil {
		return err
	}
	d.fg = c
	return nil
}

func (d *ANSIDriver) SetBackground(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("invalid color %s", c)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	writeSGR(d.writer, c.BgCode())
	if err := d.flush(); err != nil {
		return err
	}
	d.bg = c
	return nil
}

func (d *ANSIDriver) CursorPosition() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.column, d.row
}

// SetCursorPosition moves the cursor, clamping into the window
func (d *ANSIDriver) SetCursorPosition(column, row int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	w, h := d.size()
	if column < 0 {
		column = 0
	}
	if row < 0 {
		row = 0
	}
	if column >= w {
		column = w - 1
	}
	if row >= h {
		row = h - 1
	}

	writeCursorPos(d.writer, column, row)
	if err := d.flush(); err != nil {
		return err
	}
	d.column, d.row = column, row
	return nil
}

func (d *ANSIDriver) CursorVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

func (d *ANSIDriver) SetCursorVisible(visible bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if visible {
		d.writer.Write(csiCursorShow)
	} else {
		d.writer.Write(csiCursorHide)
	}
	if err := d.flush(); err != nil {
		return err
	}
	d.visible = visible
	return nil
}

// Size returns the fixed size, the device size, or 80x24 for non-terminal output
func (d *ANSIDriver) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size()
}

func (d *ANSIDriver) WriteRaw(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.writer.WriteString(text)
	if err := d.flush(); err != nil {
		return err
	}
	w, h := d.size()
	d.column, d.row = AdvanceCursor(d.column, d.row, w, h, text)
	return nil
}

func (d *ANSIDriver) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.writer.Write(csiClear)
	if err := d.flush(); err != nil {
		return err
	}
	d.column, d.row = 0, 0
	return nil
}

// size resolves window dimensions; caller holds mu
func (d *ANSIDriver) size() (int, int) {
	if d.width > 0 && d.height > 0 {
		return d.width, d.height
	}
	if d.fd >= 0 {
		if w, h, ok := getTerminalSize(d.fd); ok {
			return w, h
		}
	}
	return defaultWidth, defaultHeight
}

// flush pushes buffered output to the device; caller holds mu
// bufio.Writer keeps its first error forever, so a failed flush drops the pending
// bytes and starts a fresh buffer; the next call reaches the device again
func (d *ANSIDriver) flush() error {
	if err := d.writer.Flush(); err != nil {
		d.writer.Reset(d.out)
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery when the Console can no longer be trusted
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
