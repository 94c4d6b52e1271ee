// @focus: #sys { term }
// Package terminal provides thread-safe colored and positional text output
// over a pluggable terminal driver.
//
// Callers depend on the narrow capability they need:
//   - Writer: plain text and screen clear
//   - ColorWriter: text in a color, previous colors restored afterwards
//   - PositionWriter: text at absolute coordinates, cursor and colors restored afterwards
//
// Console implements all of them over one Driver and one mutex. Every scoped
// write captures a State, mutates the device, emits text and restores the State
// as a single critical section, so concurrent writers never see each other's
// temporary colors or cursor moves.
//
// Drivers:
//   - ANSIDriver: escape sequences to any io.Writer, shadow state for queries
//   - TcellDriver: cells on a tcell.Screen
//   - terminaltest.Recorder: in-memory trace for tests
package terminal
