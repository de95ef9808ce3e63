package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/potatoeggy/ece198/pkg/device"
)

// labelBuzzer shows the tone being played in a status label.
// Tone and Silence are called from the session goroutine, so the label is
// updated on the main thread with fyne.Do.
type labelBuzzer struct {
	label *widget.Label
}

var _ device.Buzzer = (*labelBuzzer)(nil)

func newLabelBuzzer() *labelBuzzer {
	return &labelBuzzer{label: widget.NewLabel(" ")}
}

func (b *labelBuzzer) Tone(hz uint32) error {
	text := fmt.Sprintf("Buzzer %d Hz", hz)
	fyne.Do(func() {
		b.label.SetText(text)
	})
	return nil
}

func (b *labelBuzzer) Silence() error {
	fyne.Do(func() {
		b.label.SetText(" ")
	})
	return nil
}
