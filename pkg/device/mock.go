package device

import (
	"errors"
	"sync"
	"time"
)

// ErrScriptExhausted is returned by MockKeypad once every scripted key was read.
var ErrScriptExhausted = errors.New("keypad script exhausted")

// MockKeypad replays a scripted sequence of keys.
type MockKeypad struct {
	mu   sync.Mutex
	keys []Key
	pos  int
}

var _ Keypad = (*MockKeypad)(nil)

// NewMockKeypad creates a keypad that returns keys in order.
func NewMockKeypad(keys ...Key) *MockKeypad {
	return &MockKeypad{keys: keys}
}

// KeysFromString converts a script to keys. A space stands for KeyNone,
// '.' for the '*' key.
func KeysFromString(script string) []Key {
	keys := make([]Key, 0, len(script))
	for i := 0; i < len(script); i++ {
		switch c := script[i]; c {
		case ' ':
			keys = append(keys, KeyNone)
		case '.':
			keys = append(keys, KeyStar)
		default:
			keys = append(keys, Key(c))
		}
	}
	return keys
}

// Push appends keys to the script.
func (m *MockKeypad) Push(keys ...Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, keys...)
}

// PushString appends a script, see KeysFromString.
func (m *MockKeypad) PushString(script string) {
	m.Push(KeysFromString(script)...)
}

// ReadKey returns the next scripted key.
func (m *MockKeypad) ReadKey() (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pos >= len(m.keys) {
		return KeyNone, ErrScriptExhausted
	}
	k := m.keys[m.pos]
	m.pos++
	return k, nil
}

// Remaining returns the number of unread keys.
func (m *MockKeypad) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys) - m.pos
}

// MockDisplay is a Frame that keeps every screen it showed.
// A screen is captured each time the display is cleared.
type MockDisplay struct {
	*Frame

	mu      sync.Mutex
	screens [][2]string
}

var _ Display = (*MockDisplay)(nil)

// NewMockDisplay creates a recording display of the given width.
func NewMockDisplay(width int) *MockDisplay {
	return &MockDisplay{Frame: NewFrame(width)}
}

// Clear captures the current screen and blanks the frame.
func (m *MockDisplay) Clear() error {
	m.capture()
	return m.Frame.Clear()
}

// Screens returns all captured screens followed by the current one.
// Blank screens are skipped.
func (m *MockDisplay) Screens() [][2]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][2]string, len(m.screens), len(m.screens)+1)
	copy(out, m.screens)
	if cur := m.Frame.Lines(); !isBlank(cur) {
		out = append(out, cur)
	}
	return out
}

func (m *MockDisplay) capture() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur := m.Frame.Lines(); !isBlank(cur) {
		m.screens = append(m.screens, cur)
	}
}

func isBlank(lines [2]string) bool {
	for _, l := range lines {
		for i := 0; i < len(l); i++ {
			if l[i] != ' ' {
				return false
			}
		}
	}
	return true
}

// MockSleeper records requested delays without blocking.
type MockSleeper struct {
	mu    sync.Mutex
	calls []time.Duration
}

var _ Sleeper = (*MockSleeper)(nil)

// Sleep records d.
func (m *MockSleeper) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, d)
}

// Calls returns the recorded delays.
func (m *MockSleeper) Calls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.calls))
	copy(out, m.calls)
	return out
}

// Total returns the sum of recorded delays.
func (m *MockSleeper) Total() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total time.Duration
	for _, d := range m.calls {
		total += d
	}
	return total
}

// MockBuzzer records tones. Silence is recorded as 0 Hz.
type MockBuzzer struct {
	mu    sync.Mutex
	tones []uint32
}

var _ Buzzer = (*MockBuzzer)(nil)

// Tone records hz.
func (m *MockBuzzer) Tone(hz uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tones = append(m.tones, hz)
	return nil
}

// Silence records a 0 Hz entry.
func (m *MockBuzzer) Silence() error {
	return m.Tone(0)
}

// Tones returns the recorded tones.
func (m *MockBuzzer) Tones() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint32, len(m.tones))
	copy(out, m.tones)
	return out
}
