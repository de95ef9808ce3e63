package input

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/potatoeggy/ece198/pkg/device"
)

const (
	// DefaultMaxWidth is the longest entry, one display line.
	DefaultMaxWidth = 16
	// DefaultDebounce is the pause after every key read.
	DefaultDebounce = 100 * time.Millisecond
)

// ErrInvalidNumericInput is returned when a confirmed entry does not parse.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

// Event is the outcome of feeding one key to the Editor.
type Event int

const (
	// Ignored: idle key, or enter on an empty buffer.
	Ignored Event = iota
	// Appended: a character was added to the buffer.
	Appended
	// Dropped: the buffer is full and the key was discarded.
	Dropped
	// Confirmed: enter on a non-empty buffer.
	Confirmed
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case Appended:
		return "appended"
	case Dropped:
		return "dropped"
	case Confirmed:
		return "confirmed"
	default:
		return "ignored"
	}
}

// Editor collects a bounded numeric entry from keypad presses.
// It is Collecting until a non-empty buffer is confirmed with '#'.
type Editor struct {
	buf       []byte
	width     int
	debounce  time.Duration
	confirmed bool
}

// New creates an editor accepting at most width characters.
func New(width int, debounce time.Duration) *Editor {
	if width <= 0 {
		width = DefaultMaxWidth
	}
	if debounce < 0 {
		debounce = DefaultDebounce
	}
	return &Editor{
		buf:      make([]byte, 0, width),
		width:    width,
		debounce: debounce,
	}
}

// Feed applies one key. Keys after confirmation are ignored until Reset.
func (e *Editor) Feed(k device.Key) Event {
	if e.confirmed {
		return Ignored
	}

	switch {
	case k == device.KeyHash:
		if len(e.buf) == 0 {
			return Ignored
		}
		e.confirmed = true
		return Confirmed
	case k == device.KeyStar:
		return e.append('.')
	case k.IsDigit():
		return e.append(byte(k))
	default:
		return Ignored
	}
}

func (e *Editor) append(c byte) Event {
	if len(e.buf) >= e.width {
		return Dropped
	}
	e.buf = append(e.buf, c)
	return Appended
}

// Text returns the buffer contents.
func (e *Editor) Text() string {
	return string(e.buf)
}

// Len returns the buffer length.
func (e *Editor) Len() int {
	return len(e.buf)
}

// Width returns the maximum buffer length.
func (e *Editor) Width() int {
	return e.width
}

// Confirmed reports whether the entry was confirmed.
func (e *Editor) Confirmed() bool {
	return e.confirmed
}

// Reset empties the buffer and returns to Collecting.
func (e *Editor) Reset() {
	e.buf = e.buf[:0]
	e.confirmed = false
}

// Value parses the buffer as a float.
func (e *Editor) Value() (float64, error) {
	v, err := strconv.ParseFloat(e.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumericInput, e.Text())
	}
	return v, nil
}

// Read collects one entry from kp and returns its value. Every appended
// character is passed to echo. After each key read it sleeps the debounce
// interval. On a parse failure the editor is reset and ErrInvalidNumericInput
// is returned; keypad and echo errors are returned as is.
func (e *Editor) Read(kp device.Keypad, s device.Sleeper, echo func(c byte) error) (float64, error) {
	e.Reset()

	for !e.confirmed {
		k, err := kp.ReadKey()
		if err != nil {
			return 0, fmt.Errorf("failed to read keypad: %w", err)
		}

		if e.Feed(k) == Appended && echo != nil {
			if err := echo(e.buf[len(e.buf)-1]); err != nil {
				return 0, fmt.Errorf("failed to echo input: %w", err)
			}
		}

		s.Sleep(e.debounce)
	}

	v, err := e.Value()
	if err != nil {
		e.Reset()
		return 0, err
	}
	return v, nil
}
