package lcd

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/potatoeggy/ece198/pkg/device"
)

// LCDWidget is a Fyne widget that shows a two-line character display.
// Its Display methods may be called from any goroutine; the redraw is
// scheduled on the UI thread.
type LCDWidget struct {
	widget.BaseWidget

	frame *device.Frame
}

var _ device.Display = (*LCDWidget)(nil)

// New creates an LCD of the given visible width.
func New(width int) *LCDWidget {
	w := &LCDWidget{frame: device.NewFrame(width)}
	w.ExtendBaseWidget(w)
	return w
}

// Width returns the number of visible columns.
func (w *LCDWidget) Width() int {
	return w.frame.Width()
}

// Lines returns the visible text of both lines.
func (w *LCDWidget) Lines() [2]string {
	return w.frame.Lines()
}

// Cursor returns the current cursor address.
func (w *LCDWidget) Cursor() uint8 {
	return w.frame.Cursor()
}

func (w *LCDWidget) Clear() error {
	return w.update(w.frame.Clear())
}

func (w *LCDWidget) ResetCursor() error {
	return w.update(w.frame.ResetCursor())
}

func (w *LCDWidget) SetCursor(pos uint8) error {
	return w.update(w.frame.SetCursor(pos))
}

func (w *LCDWidget) WriteString(s string) error {
	return w.update(w.frame.WriteString(s))
}

// update schedules a redraw and passes err through.
func (w *LCDWidget) update(err error) error {
	fyne.Do(w.Refresh)
	return err
}

// CreateRenderer creates the widget renderer.
func (w *LCDWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &lcdRenderer{lcd: w}
	r.build()
	r.Refresh()
	return r
}
