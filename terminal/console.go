package terminal

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

// Writer emits plain text with whatever colors are current
type Writer interface {
	Print(text string) error
	Printf(format string, args ...any) error
	PrintLine(text string) error
	PrintLinef(format string, args ...any) error
	Clear() error
}

// ColorWriter writes text in a foreground color and puts the previous colors back before returning
// Implementations are safe for concurrent use
type ColorWriter interface {
	PrintColor(c Color, text string) error
	PrintColorf(c Color, format string, args ...any) error
	PrintLineColor(c Color, text string) error
	PrintLineColorf(c Color, format string, args ...any) error
}

// ColorPositionWriter writes colored text at absolute coordinates
type ColorPositionWriter interface {
	// PrintAtColor writes text at (x, y) in fg, and in bg when one is given
	PrintAtColor(fg Color, x, y int, text string, bg ...Color) error
}

// PositionWriter writes at absolute coordinates and leaves cursor and colors where they were
type PositionWriter interface {
	ColorPositionWriter

	PrintAt(x, y int, text string) error
	PrintAtf(x, y int, format string, args ...any) error
	PrintAtRune(x, y int, r rune) error

	WindowWidth() int
	WindowHeight() int
}

var (
	_ Writer         = (*Console)(nil)
	_ ColorWriter    = (*Console)(nil)
	_ PositionWriter = (*Console)(nil)
	_ io.Writer      = (*Console)(nil)
)

// touched marks state a scoped operation changes on purpose and always restores
type touched uint8

const (
	touchFg touched = 1 << iota
	touchBg
	touchCursor
)

// Console implements every output capability over a single Driver
// One mutex guards the driver for all capabilities, so colored and positional
// writers never see each other's temporary state
type Console struct {
	driver Driver
	logger *log.Logger

	mu sync.Mutex
}

// Option configures a Console
type Option func(*Console)

// WithLogger sets the logger that receives restore failures
func WithLogger(l *log.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConsole wraps d; callers sharing a screen must share the Console
func NewConsole(d Driver, opts ...Option) *Console {
	c := &Console{
		driver: d,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Driver returns the underlying driver
func (c *Console) Driver() Driver {
	return c.driver
}

// --- Plain writer ---

// Print writes text at the cursor
func (c *Console) Print(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.emit(text)
}

// Printf formats according to format and writes the result
func (c *Console) Printf(format string, args ...any) error {
	return c.Print(fmt.Sprintf(format, args...))
}

// PrintLine writes text followed by a newline
func (c *Console) PrintLine(text string) error {
	return c.Print(text + "\n")
}

// PrintLinef formats according to format and writes the result followed by a newline
func (c *Console) PrintLinef(format string, args ...any) error {
	return c.Print(fmt.Sprintf(format, args...) + "\n")
}

// Write implements io.Writer on top of Print
func (c *Console) Write(p []byte) (int, error) {
	if err := c.Print(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Clear blanks the screen
func (c *Console) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.driver.Clear(); err != nil {
		return fmt.Errorf("terminal: clear: %w", err)
	}
	return nil
}

// --- Scoped color writer ---

// PrintColor writes text in color, leaving the ambient colors unchanged
func (c *Console) PrintColor(color Color, text string) error {
	return c.scoped(touchFg, func() error {
		if err := c.setForeground(color); err != nil {
			return err
		}
		return c.emit(text)
	})
}

// PrintColorf formats according to format and writes the result in color
func (c *Console) PrintColorf(color Color, format string, args ...any) error {
	return c.PrintColor(color, fmt.Sprintf(format, args...))
}

// PrintLineColor writes text and a newline in color
func (c *Console) PrintLineColor(color Color, text string) error {
	return c.PrintColor(color, text+"\n")
}

// PrintLineColorf formats according to format and writes the result and a newline in color
func (c *Console) PrintLineColorf(color Color, format string, args ...any) error {
	return c.PrintColor(color, fmt.Sprintf(format, args...)+"\n")
}

// --- Positional writer ---

// PrintAt writes text at column x, row y
func (c *Console) PrintAt(x, y int, text string) error {
	return c.printAt(x, y, text, 0, 0, 0)
}

// PrintAtf formats according to format and writes the result at column x, row y
func (c *Console) PrintAtf(x, y int, format string, args ...any) error {
	return c.printAt(x, y, fmt.Sprintf(format, args...), 0, 0, 0)
}

// PrintAtRune writes a single rune at column x, row y
func (c *Console) PrintAtRune(x, y int, r rune) error {
	return c.printAt(x, y, string(r), 0, 0, 0)
}

// PrintAtColor writes text at column x, row y in fg
// Background changes only when bg is given; values past the first are ignored
func (c *Console) PrintAtColor(fg Color, x, y int, text string, bg ...Color) error {
	mask := touchFg
	var back Color
	if len(bg) > 0 {
		mask |= touchBg
		back = bg[0]
	}
	return c.printAt(x, y, text, mask, fg, back)
}

// WindowWidth returns the window width in cells
func (c *Console) WindowWidth() int {
	w, _ := c.driver.Size()
	return w
}

// WindowHeight returns the window height in cells
func (c *Console) WindowHeight() int {
	_, h := c.driver.Size()
	return h
}

// printAt moves the cursor, applies the colors selected by mask and emits text
func (c *Console) printAt(x, y int, text string, mask touched, fg, bg Color) error {
	return c.scoped(mask|touchCursor, func() error {
		if err := c.driver.SetCursorPosition(x, y); err != nil {
			return fmt.Errorf("terminal: move cursor to %d,%d: %w", x, y, err)
		}
		if mask&touchFg != 0 {
			if err := c.setForeground(fg); err != nil {
				return err
			}
		}
		if mask&touchBg != 0 {
			if err := c.setBackground(bg); err != nil {
				return err
			}
		}
		return c.emit(text)
	})
}

// --- State bracket ---

// scoped runs fn between a snapshot and its restoration while holding the lock
// Restoration runs on every exit path, panics included
func (c *Console) scoped(mask touched, fn func() error) (err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	saved := Capture(c.driver)
	defer func() {
		if rerr := c.restore(saved, mask); rerr != nil {
			c.logger.Printf("terminal: restore %+v: %v", saved, rerr)
			err = &RestoreError{Err: err, Restore: rerr}
		}
	}()

	return fn()
}

// restore resets state listed in mask, and anything else that drifted from s
// Cursor position is only restored when touched, since emitted text is expected to advance it
// Every step is attempted even after a failure
func (c *Console) restore(s State, mask touched) error {
	d := c.driver
	var errs []error

	if mask&touchCursor != 0 {
		if err := d.SetCursorPosition(s.Column, s.Row); err != nil {
			errs = append(errs, fmt.Errorf("cursor: %w", err))
		}
	}
	if d.CursorVisible() != s.CursorVisible {
		if err := d.SetCursorVisible(s.CursorVisible); err != nil {
			errs = append(errs, fmt.Errorf("cursor visibility: %w", err))
		}
	}
	if mask&touchFg != 0 || d.Foreground() != s.Foreground {
		if err := d.SetForeground(s.Foreground); err != nil {
			errs = append(errs, fmt.Errorf("foreground: %w", err))
		}
	}
	if mask&touchBg != 0 || d.Background() != s.Background {
		if err := d.SetBackground(s.Background); err != nil {
			errs = append(errs, fmt.Errorf("background: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (c *Console) setForeground(color Color) error {
	if err := c.driver.SetForeground(color); err != nil {
		return fmt.Errorf("terminal: set foreground %s: %w", color, err)
	}
	return nil
}

func (c *Console) setBackground(color Color) error {
	if err := c.driver.SetBackground(color); err != nil {
		return fmt.Errorf("terminal: set background %s: %w", color, err)
	}
	return nil
}

// emit writes text through the driver; caller holds mu
func (c *Console) emit(text string) error {
	if err := c.driver.WriteRaw(text); err != nil {
		return fmt.Errorf("terminal: write: %w", err)
	}
	return nil
}
