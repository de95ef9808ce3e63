//go:build tinygo

package main

import "machine"

const (
	// Keypad matrix: rows are driven low one at a time, columns read with pull-ups
	PIN_ROW1 = machine.GP2
	PIN_ROW2 = machine.GP3
	PIN_ROW3 = machine.GP4
	PIN_ROW4 = machine.GP5
	PIN_COL1 = machine.GP6
	PIN_COL2 = machine.GP7
	PIN_COL3 = machine.GP8

	// HD44780 in 4-bit mode, RW tied to ground
	PIN_LCD_RS = machine.GP10
	PIN_LCD_E  = machine.GP11
	PIN_LCD_D4 = machine.GP12
	PIN_LCD_D5 = machine.GP13
	PIN_LCD_D6 = machine.GP14
	PIN_LCD_D7 = machine.GP16

	// Piezo buzzer, PWM slice 7 channel B
	PIN_BUZZER = machine.GP15

	// Status LED, blinks when peripheral setup failed
	PIN_LED = machine.LED

	LCD_WIDTH  = 16
	LCD_HEIGHT = 2

	// Time a row is held low before the columns are sampled
	ROW_SETTLE_US = 5
)
