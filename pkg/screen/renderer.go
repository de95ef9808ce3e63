package screen

import (
	"fmt"
	"time"

	"github.com/potatoeggy/ece198/pkg/device"
)

const (
	// DefaultWidth is the visible line width.
	DefaultWidth = device.DefaultWidth
	// DefaultSettleDelay is the pause before a screen is drawn.
	DefaultSettleDelay = 10 * time.Millisecond
)

// Renderer draws screens on a character display.
type Renderer struct {
	display device.Display
	sleeper device.Sleeper
	width   int
	settle  time.Duration
}

// NewRenderer creates a renderer for a display of the given width.
func NewRenderer(d device.Display, s device.Sleeper, width int, settle time.Duration) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if settle < 0 {
		settle = DefaultSettleDelay
	}
	return &Renderer{
		display: d,
		sleeper: s,
		width:   width,
		settle:  settle,
	}
}

// Width returns the line width.
func (r *Renderer) Width() int {
	return r.width
}

// Show clears the display and draws both lines of scr.
func (r *Renderer) Show(scr Screen) error {
	r.sleeper.Sleep(r.settle)

	if err := r.display.Clear(); err != nil {
		return fmt.Errorf("failed to clear display: %w", err)
	}
	if err := r.display.ResetCursor(); err != nil {
		return fmt.Errorf("failed to reset cursor: %w", err)
	}
	if err := r.display.WriteString(r.Truncate(scr.First)); err != nil {
		return fmt.Errorf("failed to write line 1: %w", err)
	}
	if err := r.display.SetCursor(device.SecondLine); err != nil {
		return fmt.Errorf("failed to move to line 2: %w", err)
	}
	if err := r.display.WriteString(r.Truncate(scr.Second)); err != nil {
		return fmt.Errorf("failed to write line 2: %w", err)
	}
	return nil
}

// Prompt shows title on line 1 and leaves the cursor at the start of line 2
// for the entry echo.
func (r *Renderer) Prompt(title string) error {
	if err := r.Show(Screen{First: title}); err != nil {
		return err
	}
	if err := r.display.SetCursor(device.SecondLine); err != nil {
		return fmt.Errorf("failed to move to line 2: %w", err)
	}
	return nil
}

// Echo writes one entered character at the cursor.
func (r *Renderer) Echo(c byte) error {
	return r.display.WriteString(string(c))
}

// Truncate cuts s to the line width.
func (r *Renderer) Truncate(s string) string {
	if len(s) > r.width {
		return s[:r.width]
	}
	return s
}
