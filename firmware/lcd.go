//go:build tinygo

package main

import (
	"machine"

	"github.com/potatoeggy/ece198/pkg/device"
	"tinygo.org/x/drivers/hd44780"
)

// characterLCD adapts the hd44780 driver to device.Display. The driver
// buffers writes, so every change is flushed with Display.
type characterLCD struct {
	dev hd44780.Device
}

func newCharacterLCD() (*characterLCD, error) {
	dev, err := hd44780.NewGPIO4Bit(
		[]machine.Pin{PIN_LCD_D4, PIN_LCD_D5, PIN_LCD_D6, PIN_LCD_D7},
		PIN_LCD_E, PIN_LCD_RS, machine.NoPin,
	)
	if err != nil {
		return nil, err
	}
	if err := dev.Configure(hd44780.Config{Width: LCD_WIDTH, Height: LCD_HEIGHT}); err != nil {
		return nil, err
	}
	return &characterLCD{dev: dev}, nil
}

func (l *characterLCD) Clear() error {
	l.dev.ClearDisplay()
	return nil
}

func (l *characterLCD) ResetCursor() error {
	l.dev.SetCursor(0, 0)
	return nil
}

func (l *characterLCD) SetCursor(pos uint8) error {
	switch {
	case pos < device.SecondLine:
		l.dev.SetCursor(pos, 0)
	case pos < 2*device.SecondLine:
		l.dev.SetCursor(pos-device.SecondLine, 1)
	default:
		return device.ErrCursorRange
	}
	return nil
}

func (l *characterLCD) WriteString(s string) error {
	if _, err := l.dev.Write([]byte(s)); err != nil {
		return err
	}
	return l.dev.Display()
}
