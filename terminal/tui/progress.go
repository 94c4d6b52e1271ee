package tui

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/konsole/terminal"
)

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// ProgressBar renders a horizontal bar w cells wide for pct (0.0-1.0)
func ProgressBar(w int, pct float64) string {
	if w <= 0 {
		return ""
	}
	pct = clamp01(pct)

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	var b strings.Builder
	b.Grow(w * 3)
	for i := 0; i < w; i++ {
		switch {
		case i < filled:
			b.WriteRune(progressFull)
		case i == filled && remainder >= 0.5:
			b.WriteRune(progressHalf)
		default:
			b.WriteRune(progressEmpty)
		}
	}
	return b.String()
}

// Progress draws a progress bar at (x, y)
func Progress(pw terminal.PositionWriter, x, y, w int, pct float64, fg terminal.Color) error {
	if w <= 0 {
		return nil
	}
	return pw.PrintAtColor(fg, x, y, ProgressBar(w, pct))
}

// GaugeText renders a labeled gauge w cells wide, e.g. "[████░░░░]  50%"
func GaugeText(w int, value, max int) string {
	var pct float64
	if max > 0 {
		pct = float64(value) / float64(max)
	}
	pct = clamp01(pct)

	// Label is " XXX%"
	labelW := 5
	barW := w - labelW - 2
	if barW < 1 {
		barW = 1
	}

	label := strconv.Itoa(int(pct*100)) + "%"
	return "[" + ProgressBar(barW, pct) + "]" + PadLeft(label, labelW)
}

// Gauge draws a labeled gauge at (x, y); nothing is drawn below 5 cells
func Gauge(pw terminal.PositionWriter, x, y, w int, value, max int, fg terminal.Color) error {
	if w < 5 {
		return nil
	}
	return pw.PrintAtColor(fg, x, y, GaugeText(w, value, max))
}

// Spinner draws the spinner character for frame at (x, y)
func Spinner(pw terminal.PositionWriter, x, y int, frame int, fg terminal.Color) error {
	idx := frame % len(spinnerFrames)
	if idx < 0 {
		idx = -idx
	}
	return pw.PrintAtColor(fg, x, y, string(spinnerFrames[idx]))
}

// Label draws text padded or truncated to exactly w cells at (x, y)
func Label(pw terminal.PositionWriter, x, y, w int, text string, fg terminal.Color) error {
	if w <= 0 {
		return nil
	}
	return pw.PrintAtColor(fg, x, y, PadRight(Truncate(text, w), w))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
