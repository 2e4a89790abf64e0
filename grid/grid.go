// Package grid defines the cell grid a status bar renders into and provides
// an in-memory reference implementation.
package grid

import "github.com/charmbracelet/lipgloss"

// CellGrid is the drawing surface a status bar writes into. Hosts that
// already maintain their own cell buffer implement this interface; Buffer
// is a ready-made implementation for everyone else.
//
// SetCell must treat out-of-bounds coordinates as a silent no-op.
type CellGrid interface {
	// Size returns the grid dimensions in columns and rows.
	Size() (width, height int)
	// SetCell writes a styled rune at column x, row y.
	SetCell(x, y int, r rune, style lipgloss.Style)
}
