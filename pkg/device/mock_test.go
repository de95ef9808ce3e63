package device

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysFromString(t *testing.T) {
	assert.Equal(t, []Key{'2', KeyStar, '5', KeyHash, KeyNone}, KeysFromString("2.5# "))
	assert.Equal(t, []Key{KeyStar}, KeysFromString("*"))
	assert.Empty(t, KeysFromString(""))
}

func TestMockKeypad(t *testing.T) {
	kp := NewMockKeypad('1', KeyHash)
	kp.PushString("2")
	assert.Equal(t, 3, kp.Remaining())

	for _, want := range []Key{'1', KeyHash, '2'} {
		k, err := kp.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, want, k)
	}

	k, err := kp.ReadKey()
	assert.ErrorIs(t, err, ErrScriptExhausted)
	assert.Equal(t, KeyNone, k)
	assert.Equal(t, 0, kp.Remaining())
}

func TestMockDisplay_Screens(t *testing.T) {
	d := NewMockDisplay(16)
	assert.Empty(t, d.Screens())

	require.NoError(t, d.Clear())
	require.NoError(t, d.WriteString("first"))
	require.NoError(t, d.Clear())
	require.NoError(t, d.WriteString("second"))
	require.NoError(t, d.SetCursor(SecondLine))
	require.NoError(t, d.WriteString("line two"))

	screens := d.Screens()
	require.Len(t, screens, 2)
	assert.Equal(t, "first           ", screens[0][0])
	assert.Equal(t, "second          ", screens[1][0])
	assert.Equal(t, "line two        ", screens[1][1])
}

func TestMockSleeper(t *testing.T) {
	s := &MockSleeper{}
	s.Sleep(10 * time.Millisecond)
	s.Sleep(100 * time.Millisecond)

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 100 * time.Millisecond}, s.Calls())
	assert.Equal(t, 110*time.Millisecond, s.Total())
}

func TestMockBuzzer(t *testing.T) {
	b := &MockBuzzer{}
	require.NoError(t, b.Tone(440))
	require.NoError(t, b.Silence())
	assert.Equal(t, []uint32{440, 0}, b.Tones())
}

func TestPeripherals_Validate(t *testing.T) {
	full := Peripherals{
		Keypad:  NewMockKeypad(),
		Display: NewMockDisplay(16),
		Sleeper: &MockSleeper{},
	}
	assert.NoError(t, full.Validate())

	noKeypad := full
	noKeypad.Keypad = nil
	assert.ErrorIs(t, noKeypad.Validate(), ErrMissingPeripheral)

	noDisplay := full
	noDisplay.Display = nil
	assert.ErrorIs(t, noDisplay.Validate(), ErrMissingPeripheral)

	noSleeper := full
	noSleeper.Sleeper = nil
	assert.ErrorIs(t, noSleeper.Validate(), ErrMissingPeripheral)
}

func TestKey(t *testing.T) {
	assert.True(t, Key('0').IsDigit())
	assert.True(t, Key('9').IsDigit())
	assert.False(t, KeyStar.IsDigit())
	assert.False(t, KeyNone.IsDigit())
	assert.Equal(t, "none", KeyNone.String())
	assert.Equal(t, "#", KeyHash.String())
}
