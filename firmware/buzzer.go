//go:build tinygo

package main

import (
	"machine"
)

// pwmTimer is the part of a TinyGo PWM peripheral the buzzer needs.
type pwmTimer interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetPeriod(period uint64) error
	Top() uint32
	Set(channel uint8, value uint32)
}

// pwmBuzzer drives a piezo with a 50% duty square wave.
type pwmBuzzer struct {
	pwm     pwmTimer
	channel uint8
}

func newPWMBuzzer(pwm pwmTimer, pin machine.Pin) (*pwmBuzzer, error) {
	if err := pwm.Configure(machine.PWMConfig{Period: 1e9 / 2000}); err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	b := &pwmBuzzer{pwm: pwm, channel: ch}
	b.Silence()
	return b, nil
}

func (b *pwmBuzzer) Tone(hz uint32) error {
	if hz == 0 {
		return b.Silence()
	}
	if err := b.pwm.SetPeriod(1e9 / uint64(hz)); err != nil {
		return err
	}
	b.pwm.Set(b.channel, b.pwm.Top()/2)
	return nil
}

func (b *pwmBuzzer) Silence() error {
	b.pwm.Set(b.channel, 0)
	return nil
}
