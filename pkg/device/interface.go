package device

import (
	"errors"
	"fmt"
	"time"
)

// Key is one symbol from the 4x3 keypad.
type Key byte

const (
	// KeyNone is returned when no key is pressed.
	KeyNone Key = 0
	// KeyStar is the '*' key, used as the decimal point.
	KeyStar Key = '*'
	// KeyHash is the '#' key, used as enter.
	KeyHash Key = '#'
)

// IsDigit reports whether k is one of '0'..'9'.
func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// String returns the key symbol, or "none" for KeyNone.
func (k Key) String() string {
	if k == KeyNone {
		return "none"
	}
	return string(rune(k))
}

// ErrMissingPeripheral is returned when a required collaborator was not bound.
var ErrMissingPeripheral = errors.New("peripheral not configured")

// Keypad defines the blocking keypad read.
type Keypad interface {
	// ReadKey returns the key currently pressed, or KeyNone.
	ReadKey() (Key, error)
}

// Display defines the character display primitives.
// Position 0 is column 0 of line 1, position 40 is column 0 of line 2.
type Display interface {
	Clear() error
	ResetCursor() error
	SetCursor(pos uint8) error
	WriteString(s string) error
}

// Sleeper defines a blocking delay.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Buzzer defines a single-channel tone output.
type Buzzer interface {
	Tone(hz uint32) error
	Silence() error
}

// Peripherals holds the exclusive handles the session drives.
// Buzzer is optional.
type Peripherals struct {
	Keypad  Keypad
	Display Display
	Sleeper Sleeper
	Buzzer  Buzzer
}

// Validate checks that the required collaborators are bound.
func (p Peripherals) Validate() error {
	switch {
	case p.Keypad == nil:
		return fmt.Errorf("%w: keypad", ErrMissingPeripheral)
	case p.Display == nil:
		return fmt.Errorf("%w: display", ErrMissingPeripheral)
	case p.Sleeper == nil:
		return fmt.Errorf("%w: sleeper", ErrMissingPeripheral)
	}
	return nil
}

// SystemSleeper delays with time.Sleep.
type SystemSleeper struct{}

// Sleep blocks for d.
func (SystemSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

var _ Sleeper = SystemSleeper{}
