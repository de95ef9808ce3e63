package screen

import (
	"errors"
	"testing"
	"time"

	"github.com/potatoeggy/ece198/pkg/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDisplay struct {
	device.Display
	err error
}

func (f failingDisplay) Clear() error { return f.err }

func TestRenderer_Show(t *testing.T) {
	d := device.NewMockDisplay(16)
	s := &device.MockSleeper{}
	r := NewRenderer(d, s, 16, DefaultSettleDelay)

	require.NoError(t, r.Show(Menu()))

	screens := d.Screens()
	require.Len(t, screens, 1)
	assert.Equal(t, "1. New data     ", screens[0][0])
	assert.Equal(t, "2. Summary      ", screens[0][1])
	assert.Equal(t, []time.Duration{DefaultSettleDelay}, s.Calls())
}

func TestRenderer_Truncates(t *testing.T) {
	d := device.NewMockDisplay(16)
	r := NewRenderer(d, &device.MockSleeper{}, 16, 0)

	require.NoError(t, r.Show(Screen{First: "Conduc. (mS/cm): extra", Second: "     400.00  12.35"}))

	lines := d.Lines()
	assert.Equal(t, "Conduc. (mS/cm):", lines[0])
	assert.Equal(t, "     400.00  12.", lines[1])
	assert.Equal(t, "abc", r.Truncate("abc"))
}

func TestRenderer_PromptAndEcho(t *testing.T) {
	d := device.NewMockDisplay(16)
	r := NewRenderer(d, &device.MockSleeper{}, 16, 0)

	require.NoError(t, r.Prompt("pH:"))
	assert.Equal(t, device.SecondLine, d.Cursor())

	for _, c := range []byte("7.2") {
		require.NoError(t, r.Echo(c))
	}

	lines := d.Lines()
	assert.Equal(t, "pH:             ", lines[0])
	assert.Equal(t, "7.2             ", lines[1])
}

func TestRenderer_DisplayError(t *testing.T) {
	boom := errors.New("bus fault")
	r := NewRenderer(failingDisplay{Display: device.NewFrame(16), err: boom}, &device.MockSleeper{}, 16, 0)

	assert.ErrorIs(t, r.Show(Menu()), boom)
}

func TestNewRenderer_Defaults(t *testing.T) {
	r := NewRenderer(device.NewFrame(16), &device.MockSleeper{}, 0, -1)
	assert.Equal(t, DefaultWidth, r.Width())
	assert.Equal(t, DefaultSettleDelay, r.settle)
}
