// Package terminaltest provides a terminal.Driver that records what it is asked to do.
package terminaltest

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/lixenwraith/konsole/terminal"
)

// Op names a mutating driver call
type Op string

const (
	OpForeground Op = "fg"
	OpBackground Op = "bg"
	OpCursor     Op = "cursor"
	OpVisible    Op = "visible"
	OpWrite      Op = "write"
	OpClear      Op = "clear"
)

// Recorder is an in-memory terminal.Driver
// Every mutating call is appended to a trace as "op=value", e.g. `fg=Red`,
// `cursor=10,2`, `write="hi\n"`, `clear`. Positions are stored verbatim.
// Failures injected with Fail are returned instead of applying the call,
// but the attempt is still traced with a trailing " !" marker
type Recorder struct {
	mu      sync.Mutex
	state   terminal.State
	width   int
	height  int
	trace   []string
	failure map[Op]error
}

var _ terminal.Driver = (*Recorder)(nil)

// NewRecorder returns a recorder sized width x height starting in state s
func NewRecorder(width, height int, s terminal.State) *Recorder {
	return &Recorder{
		state:   s,
		width:   width,
		height:  height,
		failure: make(map[Op]error),
	}
}

// Fail makes every later call of op return err; a nil err clears the failure
func (r *Recorder) Fail(op Op, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.failure, op)
		return
	}
	r.failure[op] = err
}

// State returns the current ambient state
func (r *Recorder) State() terminal.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Trace returns a copy of the recorded calls
func (r *Recorder) Trace() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.trace))
	copy(out, r.trace)
	return out
}

// Reset drops the recorded trace
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trace = r.trace[:0]
}

func (r *Recorder) Foreground() terminal.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Foreground
}

func (r *Recorder) Background() terminal.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Background
}

func (r *Recorder) SetForeground(c terminal.Color) error {
	return r.apply(OpForeground, c.String(), func() { r.state.Foreground = c })
}

func (r *Recorder) SetBackground(c terminal.Color) error {
	return r.apply(OpBackground, c.String(), func() { r.state.Background = c })
}

func (r *Recorder) CursorPosition() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Column, r.state.Row
}

func (r *Recorder) SetCursorPosition(column, row int) error {
	return r.apply(OpCursor, fmt.Sprintf("%d,%d", column, row), func() {
		r.state.Column, r.state.Row = column, row
	})
}

func (r *Recorder) CursorVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.CursorVisible
}

func (r *Recorder) SetCursorVisible(visible bool) error {
	return r.apply(OpVisible, strconv.FormatBool(visible), func() { r.state.CursorVisible = visible })
}

func (r *Recorder) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// SetSize changes the reported window size
func (r *Recorder) SetSize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
}

func (r *Recorder) WriteRaw(text string) error {
	return r.apply(OpWrite, strconv.Quote(text), func() {
		r.state.Column, r.state.Row = terminal.AdvanceCursor(r.state.Column, r.state.Row, r.width, r.height, text)
	})
}

func (r *Recorder) Clear() error {
	return r.apply(OpClear, "", func() { r.state.Column, r.state.Row = 0, 0 })
}

// apply traces op and runs fn unless a failure is injected
func (r *Recorder) apply(op Op, value string, fn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := string(op)
	if value != "" {
		entry += "=" + value
	}
	if err, ok := r.failure[op]; ok {
		r.trace = append(r.trace, entry+" !")
		return err
	}
	r.trace = append(r.trace, entry)
	fn()
	return nil
}
