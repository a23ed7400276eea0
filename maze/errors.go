package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for non-positive generation dimensions
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrExhaustedRetries is returned when RandomFloorTile gives up
	ErrExhaustedRetries = errors.New("exhausted retries")
	// ErrFormat is the sentinel every *FormatError unwraps to
	ErrFormat = errors.New("malformed maze layout")
	// ErrOffMap is the contract violation raised when a troll steps outside the grid
	ErrOffMap = errors.New("troll stepped off the map")
)

// FormatError reports a layout that cannot be loaded
// Line and Column are 1-based; both are 0 when the error concerns the layout as a whole
type FormatError struct {
	Line   int
	Column int
	Char   rune
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Column > 0:
		return fmt.Sprintf("maze layout line %d column %d: %s %q", e.Line, e.Column, e.Reason, e.Char)
	case e.Line > 0:
		return fmt.Sprintf("maze layout line %d: %s", e.Line, e.Reason)
	default:
		return "maze layout: " + e.Reason
	}
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
