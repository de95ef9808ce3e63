package session

import (
	"testing"
	"time"

	"github.com/potatoeggy/ece198/pkg/config"
	"github.com/potatoeggy/ece198/pkg/device"
	"github.com/potatoeggy/ece198/pkg/quality"
	"github.com/potatoeggy/ece198/pkg/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rig struct {
	keypad  *device.MockKeypad
	display *device.MockDisplay
	sleeper *device.MockSleeper
	buzzer  *device.MockBuzzer
	ctrl    *Controller
}

func newRig(t *testing.T, cfg *config.Config, script string) *rig {
	t.Helper()
	r := &rig{
		keypad:  device.NewMockKeypad(device.KeysFromString(script)...),
		display: device.NewMockDisplay(16),
		sleeper: &device.MockSleeper{},
		buzzer:  &device.MockBuzzer{},
	}
	ctrl, err := New(device.Peripherals{
		Keypad:  r.keypad,
		Display: r.display,
		Sleeper: r.sleeper,
		Buzzer:  r.buzzer,
	}, cfg)
	require.NoError(t, err)
	r.ctrl = ctrl
	return r
}

func lines(first, second string) [2]string {
	pad := func(s string) string {
		for len(s) < 16 {
			s += " "
		}
		return s
	}
	return [2]string{pad(first), pad(second)}
}

func TestNew_MissingPeripheral(t *testing.T) {
	_, err := New(device.Peripherals{Display: device.NewMockDisplay(16)}, nil)
	assert.ErrorIs(t, err, device.ErrMissingPeripheral)
}

func TestNew_BadPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Policy = "fifo"
	_, err := New(device.Peripherals{
		Keypad:  device.NewMockKeypad(),
		Display: device.NewMockDisplay(16),
		Sleeper: &device.MockSleeper{},
	}, cfg)
	assert.Error(t, err)
}

// Salinity of conductivity 204 is about 80 mg/L, inside the good band.
func TestStep_NewEntryAllGood(t *testing.T) {
	r := newRig(t, nil, "1 7#204#90#####")

	require.NoError(t, r.ctrl.Step())
	assert.Equal(t, 0, r.keypad.Remaining())

	assert.Equal(t, [][2]string{
		lines("1. New data", "2. Summary"),
		lines("pH:", "7"),
		lines("Conduc. (mS/cm):", "204"),
		lines("Hardness (mg/L):", "90"),
		lines("pH OK   Cond  OK", "Ha OK   Total OK"),
		lines("pH: add base:", "9.00e-08 M OH-"),
		lines("Cond: Good", ""),
		lines("Ha: Good", ""),
	}, r.display.Screens())

	require.Equal(t, 1, r.ctrl.Store().Len())
	assert.Equal(t, sample.WaterSample{PH: 7, Conductivity: 204, Hardness: 90}, r.ctrl.Store().Samples()[0])
}

func TestNewEntry_Suggestions(t *testing.T) {
	r := newRig(t, nil, "9#1000#70#####")

	s, err := r.ctrl.NewEntry()
	require.NoError(t, err)
	assert.Equal(t, sample.WaterSample{PH: 9, Conductivity: 1000, Hardness: 70}, s)

	screens := r.display.Screens()
	require.Len(t, screens, 7)
	assert.Equal(t, lines("pH XD   Cond  XD", "Ha ME   Total XD"), screens[3])
	assert.Equal(t, lines("pH: remove base:", "9.99e-07 M OH-"), screens[4])
	assert.Equal(t, lines("Cond: rem. salt:", "280.37 mg/L"), screens[5])
	assert.Equal(t, lines("Ha: add CaCO3:", "10.00 mg/L CaCO3"), screens[6])
}

func TestNewEntry_RepromptOnInvalid(t *testing.T) {
	r := newRig(t, nil, "#.#7#204#90#####")

	s, err := r.ctrl.NewEntry()
	require.NoError(t, err)
	assert.Equal(t, 7.0, s.PH)

	screens := r.display.Screens()
	assert.Equal(t, lines("pH:", "."), screens[0])
	assert.Equal(t, lines("Invalid number", "Try again"), screens[1])
	assert.Equal(t, lines("pH:", "7"), screens[2])
	assert.Contains(t, r.sleeper.Calls(), noticeDelay)
}

func TestNewEntry_StoreFull(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Capacity = 1
	r := newRig(t, cfg, "7#204#90#####"+"8#300#100######")

	_, err := r.ctrl.NewEntry()
	require.NoError(t, err)
	_, err = r.ctrl.NewEntry()
	require.NoError(t, err)

	screens := r.display.Screens()
	assert.Equal(t, lines("Storage full", "Discarded (1)"), screens[len(screens)-1])
	require.Equal(t, 1, r.ctrl.Store().Len())
	assert.Equal(t, 7.0, r.ctrl.Store().Samples()[0].PH)
}

func TestNewEntry_OverwriteOldest(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Capacity = 1
	cfg.Store.Policy = "overwrite-oldest"
	r := newRig(t, cfg, "7#204#90#####"+"8#300#100#####")

	_, err := r.ctrl.NewEntry()
	require.NoError(t, err)
	_, err = r.ctrl.NewEntry()
	require.NoError(t, err)

	require.Equal(t, 1, r.ctrl.Store().Len())
	assert.Equal(t, 8.0, r.ctrl.Store().Samples()[0].PH)
}

func TestStep_SummaryNoData(t *testing.T) {
	r := newRig(t, nil, "2###")

	require.NoError(t, r.ctrl.Step())
	assert.Equal(t, [][2]string{
		lines("1. New data", "2. Summary"),
		lines("pH: no data", "Add a sample"),
		lines("Cond: no data", "Add a sample"),
		lines("Ha: no data", "Add a sample"),
	}, r.display.Screens())
}

func TestStep_Summary(t *testing.T) {
	r := newRig(t, nil, "2######")
	st := r.ctrl.Store()
	require.NoError(t, st.Append(sample.WaterSample{PH: 7, Conductivity: 90, Hardness: 85}))
	require.NoError(t, st.Append(sample.WaterSample{PH: 9, Conductivity: 90, Hardness: 95}))

	require.NoError(t, r.ctrl.Step())
	assert.Equal(t, [][2]string{
		lines("1. New data", "2. Summary"),
		lines("pH Avg   Stdev", "     8.00  1.00"),
		lines("Std: 7.00", "1/2 met std"),
		lines("Cond Avg   Stdev", "     90.00  0.00"),
		lines("Std: 400.00", "2/2 met std"),
		lines("Ha Avg   Stdev", "     90.00  5.00"),
		lines("Std: 90.00", "2/2 met std"),
	}, r.display.Screens())
}

// Three digit means and two digit deviations must not be cut off.
func TestStep_SummaryWideValues(t *testing.T) {
	r := newRig(t, nil, "2######")
	st := r.ctrl.Store()
	require.NoError(t, st.Append(sample.WaterSample{PH: 7, Conductivity: 204, Hardness: 80}))
	require.NoError(t, st.Append(sample.WaterSample{PH: 7, Conductivity: 300, Hardness: 100}))

	require.NoError(t, r.ctrl.Step())
	screens := r.display.Screens()
	require.Len(t, screens, 7)
	assert.Equal(t, lines("Cond Avg   Stdev", "   252.00  48.00"), screens[3])
	assert.Equal(t, lines("Ha Avg   Stdev", "    90.00  10.00"), screens[5])
}

func TestNewEntry_WideAdvice(t *testing.T) {
	r := newRig(t, nil, "7#204#220#####")

	_, err := r.ctrl.NewEntry()
	require.NoError(t, err)

	screens := r.display.Screens()
	require.Len(t, screens, 7)
	assert.Equal(t, lines("Ha: rem. CaCO3:", "120.00mg/L CaCO3"), screens[6])
}

func TestStep_IgnoresOtherKeys(t *testing.T) {
	r := newRig(t, nil, "5# 2###")

	require.NoError(t, r.ctrl.Step())
	assert.Equal(t, 0, r.keypad.Remaining())
}

func TestRun_StopsOnKeypadError(t *testing.T) {
	cfg := config.Default()
	cfg.Melody.BootTune = "twinkle"
	r := newRig(t, cfg, "2###")

	err := r.ctrl.Run()
	assert.ErrorIs(t, err, device.ErrScriptExhausted)
	assert.NotEmpty(t, r.buzzer.Tones())
	assert.Equal(t, uint32(261), r.buzzer.Tones()[0])
}

func TestRun_UnknownBootTune(t *testing.T) {
	cfg := config.Default()
	cfg.Melody.BootTune = "nope"
	r := newRig(t, cfg, "")

	assert.Error(t, r.ctrl.PlayBootTune())
	assert.ErrorIs(t, r.ctrl.Run(), device.ErrScriptExhausted)
	assert.Empty(t, r.buzzer.Tones())
}

func TestWaitKey_Debounce(t *testing.T) {
	r := newRig(t, nil, "  3")

	k, err := r.ctrl.waitKey()
	require.NoError(t, err)
	assert.Equal(t, device.Key('3'), k)
	assert.Equal(t, []time.Duration{pollInterval, pollInterval, 100 * time.Millisecond}, r.sleeper.Calls())
}

func TestStandard(t *testing.T) {
	r := newRig(t, nil, "")
	assert.Equal(t, 7.0, r.ctrl.standard(quality.PH))
	assert.Equal(t, 400.0, r.ctrl.standard(quality.Conductivity))
	assert.Equal(t, 90.0, r.ctrl.standard(quality.Hardness))
}
