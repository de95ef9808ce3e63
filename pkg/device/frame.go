package device

import (
	"errors"
	"sync"
)

const (
	// DefaultWidth is the visible width of a 16x2 module.
	DefaultWidth = 16
	// SecondLine is the address of column 0 on line 2.
	SecondLine uint8 = 40

	lineMemory = 40 // DDRAM bytes per line
)

// ErrCursorRange is returned for a cursor address outside display memory.
var ErrCursorRange = errors.New("cursor position out of range")

// Frame is the character memory of a two-line display.
// Addresses follow the HD44780 layout: 0..39 on line 1, 40..79 on line 2.
// Only the first width columns of each line are visible. Writes never wrap.
type Frame struct {
	mu    sync.RWMutex
	width int
	rows  [2][lineMemory]byte
	row   int
	col   int
}

var _ Display = (*Frame)(nil)

// NewFrame creates a blank frame with the given visible width.
func NewFrame(width int) *Frame {
	if width <= 0 || width > lineMemory {
		width = DefaultWidth
	}
	f := &Frame{width: width}
	f.blank()
	return f
}

// Width returns the visible width.
func (f *Frame) Width() int {
	return f.width
}

// Clear blanks both lines and homes the cursor.
func (f *Frame) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blank()
	return nil
}

// ResetCursor homes the cursor without touching the contents.
func (f *Frame) ResetCursor() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.row, f.col = 0, 0
	return nil
}

// SetCursor moves the cursor to a display address.
func (f *Frame) SetCursor(pos uint8) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case pos < SecondLine:
		f.row, f.col = 0, int(pos)
	case int(pos) < int(SecondLine)+lineMemory:
		f.row, f.col = 1, int(pos-SecondLine)
	default:
		return ErrCursorRange
	}
	return nil
}

// WriteString writes s at the cursor. Characters past the end of line memory
// are dropped.
func (f *Frame) WriteString(s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := 0; i < len(s); i++ {
		if f.col >= lineMemory {
			break
		}
		f.rows[f.row][f.col] = s[i]
		f.col++
	}
	return nil
}

// Lines returns the visible text of both lines, space padded to width.
func (f *Frame) Lines() [2]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return [2]string{
		string(f.rows[0][:f.width]),
		string(f.rows[1][:f.width]),
	}
}

// Cursor returns the current cursor address.
func (f *Frame) Cursor() uint8 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint8(f.row)*SecondLine + uint8(f.col)
}

func (f *Frame) blank() {
	for r := range f.rows {
		for c := range f.rows[r] {
			f.rows[r][c] = ' '
		}
	}
	f.row, f.col = 0, 0
}
