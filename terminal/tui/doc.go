// Package tui draws small widgets through a terminal.PositionWriter.
//
// Every widget is rendered with a single positional write, so goroutines that
// each own a widget can animate concurrently on one shared screen without
// corrupting each other's colors or cursor.
//
// Usage pattern:
//
//	con := terminal.NewConsole(driver)
//	for i, job := range jobs {
//	    go func() {
//	        for pct := range job.Progress() {
//	            tui.Gauge(con, 0, i, 40, pct, 100, terminal.Green)
//	        }
//	    }()
//	}
package tui
