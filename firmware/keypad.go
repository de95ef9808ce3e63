//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/potatoeggy/ece198/pkg/device"
)

var keymap = [4][3]device.Key{
	{'1', '2', '3'},
	{'4', '5', '6'},
	{'7', '8', '9'},
	{device.KeyStar, '0', device.KeyHash},
}

// matrixKeypad scans a 4x3 membrane keypad. It reports the first pressed
// key in row-major order, or KeyNone.
type matrixKeypad struct {
	rows [4]machine.Pin
	cols [3]machine.Pin
}

func newMatrixKeypad() *matrixKeypad {
	k := &matrixKeypad{
		rows: [4]machine.Pin{PIN_ROW1, PIN_ROW2, PIN_ROW3, PIN_ROW4},
		cols: [3]machine.Pin{PIN_COL1, PIN_COL2, PIN_COL3},
	}
	for _, r := range k.rows {
		r.Configure(machine.PinConfig{Mode: machine.PinOutput})
		r.High()
	}
	for _, c := range k.cols {
		c.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return k
}

func (k *matrixKeypad) ReadKey() (device.Key, error) {
	for i, r := range k.rows {
		r.Low()
		time.Sleep(ROW_SETTLE_US * time.Microsecond)
		for j, c := range k.cols {
			if !c.Get() {
				r.High()
				return keymap[i][j], nil
			}
		}
		r.High()
	}
	return device.KeyNone, nil
}
