//go:build tinygo

//go:generate tinygo flash -target=pico

package main

import (
	"machine"
	"time"

	"github.com/potatoeggy/ece198/pkg/config"
	"github.com/potatoeggy/ece198/pkg/device"
	"github.com/potatoeggy/ece198/pkg/session"
)

func main() {
	PIN_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	cfg := config.Default()
	cfg.Melody.BootTune = "mario"

	display, err := newCharacterLCD()
	if err != nil {
		halt("lcd", err)
	}

	buzzer, err := newPWMBuzzer(machine.PWM7, PIN_BUZZER)
	if err != nil {
		halt("buzzer", err)
	}

	ctrl, err := session.New(device.Peripherals{
		Keypad:  newMatrixKeypad(),
		Display: display,
		Sleeper: device.SystemSleeper{},
		Buzzer:  buzzer,
	}, cfg)
	if err != nil {
		halt("session", err)
	}

	if err := ctrl.Run(); err != nil {
		halt("run", err)
	}
}

// halt reports a fatal peripheral error on the UART and blinks the LED forever.
func halt(what string, err error) {
	for {
		println("failed to start", what+":", err.Error())
		PIN_LED.High()
		time.Sleep(250 * time.Millisecond)
		PIN_LED.Low()
		time.Sleep(750 * time.Millisecond)
	}
}
