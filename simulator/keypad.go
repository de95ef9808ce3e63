package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/potatoeggy/ece198/pkg/device"
)

// keypadLayout is the 4x3 matrix as printed on the keypad.
var keypadLayout = [4][3]device.Key{
	{'1', '2', '3'},
	{'4', '5', '6'},
	{'7', '8', '9'},
	{device.KeyStar, '0', device.KeyHash},
}

// createKeypad creates the 12-button keypad grid.
func createKeypad(state *appState) fyne.CanvasObject {
	buttons := make([]fyne.CanvasObject, 0, 12)
	for _, row := range keypadLayout {
		for _, k := range row {
			btn := widget.NewButton(k.String(), func() {
				state.press(k)
			})
			if k == device.KeyHash {
				btn.Importance = widget.HighImportance
			}
			buttons = append(buttons, btn)
		}
	}
	return container.NewGridWithColumns(3, buttons...)
}

// runeKey maps a typed character to a keypad key. '.' types the '*' key.
func runeKey(r rune) device.Key {
	switch {
	case r >= '0' && r <= '9':
		return device.Key(r)
	case r == '*' || r == '.':
		return device.KeyStar
	case r == '#':
		return device.KeyHash
	default:
		return device.KeyNone
	}
}
