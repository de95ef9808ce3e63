//go:build !tinygo

package device

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the console line speed.
	DefaultBaudRate = 115200
	// DefaultReadTimeout bounds a single key read so idle scans return KeyNone.
	DefaultReadTimeout = 50 * time.Millisecond
)

// ErrNotConnected is returned when the console port is not open.
var ErrNotConnected = errors.New("not connected")

// Console carries the keypad and display over a serial line to a terminal.
// Inbound bytes are keys; every display change redraws the frame.
type Console struct {
	port        string
	baudRate    int
	readTimeout time.Duration

	mu        sync.Mutex
	conn      io.ReadWriteCloser
	frame     *Frame
	lastCR    bool
	connected bool
}

var (
	_ Keypad  = (*Console)(nil)
	_ Display = (*Console)(nil)
	_ Buzzer  = (*Console)(nil)
)

// NewConsole creates a console for the named serial port.
func NewConsole(port string, baudRate int, readTimeout time.Duration, width int) *Console {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if readTimeout == 0 {
		readTimeout = DefaultReadTimeout
	}
	return &Console{
		port:        port,
		baudRate:    baudRate,
		readTimeout: readTimeout,
		frame:       NewFrame(width),
	}
}

// Ports returns the names of the available serial ports.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}

// Connect opens the serial port.
func (c *Console) Connect() error {
	mode := &serial.Mode{
		BaudRate: c.baudRate,
	}

	port, err := serial.Open(c.port, mode)
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", c.port, err)
	}
	if err := port.SetReadTimeout(c.readTimeout); err != nil {
		port.Close()
		return fmt.Errorf("failed to set read timeout on %s: %w", c.port, err)
	}

	return c.attach(port)
}

// attach binds an already open connection.
func (c *Console) attach(conn io.ReadWriteCloser) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return fmt.Errorf("already connected")
	}
	c.conn = conn
	c.connected = true
	return nil
}

// Close closes the port. A blocked ReadKey returns an error afterwards.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	c.connected = false
	if err := c.conn.Close(); err != nil {
		log.Printf("Error closing serial port: %v", err)
	}
	return nil
}

// IsConnected returns whether the port is open.
func (c *Console) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// ReadKey reads one byte. A read timeout yields KeyNone.
func (c *Console) ReadKey() (Key, error) {
	c.mu.Lock()
	conn, connected := c.conn, c.connected
	c.mu.Unlock()
	if !connected {
		return KeyNone, ErrNotConnected
	}

	var buf [1]byte
	n, err := conn.Read(buf[:])
	if err != nil {
		// A Close during the read surfaces as the driver's own error.
		if !c.IsConnected() {
			return KeyNone, ErrNotConnected
		}
		if errors.Is(err, io.EOF) {
			return KeyNone, fmt.Errorf("serial port %s closed: %w", c.port, err)
		}
		return KeyNone, fmt.Errorf("failed to read from serial port: %w", err)
	}
	if n == 0 {
		return KeyNone, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Terminals send CR LF for enter; the LF must not count as a second key.
	if buf[0] == '\n' && c.lastCR {
		c.lastCR = false
		return KeyNone, nil
	}
	c.lastCR = buf[0] == '\r'
	return parseKey(buf[0]), nil
}

// parseKey maps a terminal byte to a keypad key.
func parseKey(b byte) Key {
	switch {
	case b >= '0' && b <= '9':
		return Key(b)
	case b == '*' || b == '.':
		return KeyStar
	case b == '#' || b == '\r' || b == '\n':
		return KeyHash
	default:
		return KeyNone
	}
}

// Clear blanks the frame and redraws.
func (c *Console) Clear() error {
	c.frame.Clear()
	return c.redraw()
}

// ResetCursor homes the cursor.
func (c *Console) ResetCursor() error {
	return c.frame.ResetCursor()
}

// SetCursor moves the cursor.
func (c *Console) SetCursor(pos uint8) error {
	return c.frame.SetCursor(pos)
}

// WriteString writes at the cursor and redraws.
func (c *Console) WriteString(s string) error {
	c.frame.WriteString(s)
	return c.redraw()
}

// Tone rings the terminal bell.
func (c *Console) Tone(hz uint32) error {
	if hz == 0 {
		return nil
	}
	return c.write("\a")
}

// Silence is a no-op on a terminal.
func (c *Console) Silence() error {
	return nil
}

// Lines returns the visible text.
func (c *Console) Lines() [2]string {
	return c.frame.Lines()
}

// redraw clears the terminal and draws the frame in a box.
func (c *Console) redraw() error {
	lines := c.frame.Lines()
	border := "+" + strings.Repeat("-", c.frame.Width()) + "+\r\n"

	var b strings.Builder
	b.WriteString("\x1b[2J\x1b[H")
	b.WriteString(border)
	for _, l := range lines {
		b.WriteString("|")
		b.WriteString(l)
		b.WriteString("|\r\n")
	}
	b.WriteString(border)
	return c.write(b.String())
}

func (c *Console) write(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return ErrNotConnected
	}
	if _, err := io.WriteString(c.conn, s); err != nil {
		return fmt.Errorf("failed to write to serial port: %w", err)
	}
	return nil
}
