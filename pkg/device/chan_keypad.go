package device

import (
	"errors"
	"sync"
	"time"
)

// ErrKeypadClosed is returned by ChanKeypad after Close.
var ErrKeypadClosed = errors.New("keypad closed")

// DefaultScanTimeout is how long ChanKeypad waits for a press before
// reporting an idle scan.
const DefaultScanTimeout = 20 * time.Millisecond

// ChanKeypad is a keypad fed from another goroutine, such as a UI event loop.
// ReadKey returns KeyNone when no key arrives within the scan timeout.
type ChanKeypad struct {
	keys    chan Key
	done    chan struct{}
	once    sync.Once
	timeout time.Duration
}

var _ Keypad = (*ChanKeypad)(nil)

// NewChanKeypad creates a keypad that buffers up to buffer presses.
func NewChanKeypad(buffer int, timeout time.Duration) *ChanKeypad {
	if buffer <= 0 {
		buffer = 1
	}
	if timeout <= 0 {
		timeout = DefaultScanTimeout
	}
	return &ChanKeypad{
		keys:    make(chan Key, buffer),
		done:    make(chan struct{}),
		timeout: timeout,
	}
}

// Press queues k. It never blocks; the press is dropped and false returned
// when the buffer is full or the keypad is closed.
func (k *ChanKeypad) Press(key Key) bool {
	select {
	case <-k.done:
		return false
	default:
	}

	select {
	case k.keys <- key:
		return true
	default:
		return false
	}
}

// ReadKey returns the next queued press, or KeyNone after the scan timeout.
func (k *ChanKeypad) ReadKey() (Key, error) {
	select {
	case <-k.done:
		return KeyNone, ErrKeypadClosed
	default:
	}

	timer := time.NewTimer(k.timeout)
	defer timer.Stop()

	select {
	case <-k.done:
		return KeyNone, ErrKeypadClosed
	case key := <-k.keys:
		return key, nil
	case <-timer.C:
		return KeyNone, nil
	}
}

// Close makes every later ReadKey fail, unblocking a waiting reader.
func (k *ChanKeypad) Close() error {
	k.once.Do(func() { close(k.done) })
	return nil
}
