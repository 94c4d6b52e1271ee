package tui

import (
	"github.com/mattn/go-runewidth"
)

// Truncate truncates string with … suffix if it exceeds maxWidth display cells
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads string with spaces to width display cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft left-pads string with spaces to width display cells
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
