package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Blank(t *testing.T) {
	f := NewFrame(16)
	lines := f.Lines()
	assert.Equal(t, "                ", lines[0])
	assert.Equal(t, "                ", lines[1])
	assert.Equal(t, uint8(0), f.Cursor())
}

func TestFrame_InvalidWidth(t *testing.T) {
	assert.Equal(t, DefaultWidth, NewFrame(0).Width())
	assert.Equal(t, DefaultWidth, NewFrame(80).Width())
	assert.Equal(t, 20, NewFrame(20).Width())
}

func TestFrame_WriteLines(t *testing.T) {
	f := NewFrame(16)
	require.NoError(t, f.WriteString("1. New data"))
	require.NoError(t, f.SetCursor(SecondLine))
	require.NoError(t, f.WriteString("2. Summary"))

	lines := f.Lines()
	assert.Equal(t, "1. New data     ", lines[0])
	assert.Equal(t, "2. Summary      ", lines[1])
	assert.Equal(t, SecondLine+10, f.Cursor())
}

func TestFrame_NoWrap(t *testing.T) {
	f := NewFrame(16)
	require.NoError(t, f.WriteString("0123456789abcdefOVERFLOW"))

	lines := f.Lines()
	assert.Equal(t, "0123456789abcdef", lines[0])
	assert.Equal(t, "                ", lines[1])

	// Filling all of line memory still does not spill onto line 2.
	require.NoError(t, f.WriteString("xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"))
	assert.Equal(t, "                ", f.Lines()[1])
}

func TestFrame_SetCursor(t *testing.T) {
	tests := []struct {
		name    string
		pos     uint8
		wantErr bool
	}{
		{name: "line 1 start", pos: 0},
		{name: "line 1 hidden", pos: 39},
		{name: "line 2 start", pos: 40},
		{name: "line 2 end", pos: 79},
		{name: "out of range", pos: 80, wantErr: true},
		{name: "far out of range", pos: 255, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(16)
			err := f.SetCursor(tt.pos)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCursorRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pos, f.Cursor())
		})
	}
}

func TestFrame_ClearAndReset(t *testing.T) {
	f := NewFrame(16)
	require.NoError(t, f.WriteString("abc"))
	require.NoError(t, f.ResetCursor())
	require.NoError(t, f.WriteString("X"))
	assert.Equal(t, "Xbc             ", f.Lines()[0])

	require.NoError(t, f.Clear())
	assert.Equal(t, "                ", f.Lines()[0])
	assert.Equal(t, uint8(0), f.Cursor())
}
