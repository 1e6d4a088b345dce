package led

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNoopController(t *testing.T) {
	var out bytes.Buffer
	ctrl := newNoop(&out, testLogger())

	state := State{LED: Ring, Brightness: 100, Mode: Blink1Hz, Color: byte(RingWhite)}
	require.NoError(t, ctrl.Set(state))

	assert.Equal(t, "ring white Blink1Hz 100%: control word 0x07016402\n", out.String())
	assert.Equal(t, BackendNoop, ctrl.Name())
}

func TestNoopControllerNilWriter(t *testing.T) {
	ctrl := newNoop(nil, nil)
	assert.NoError(t, ctrl.Set(State{LED: Button}))
}

func TestACPICommand(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{
			name:  "ring fade",
			state: State{LED: Ring, Brightness: 80, Mode: FadePoint5Hz, Color: byte(RingGreen)},
			want:  "ring,80,fade_medium,green",
		},
		{
			name:  "button steady",
			state: State{LED: Button, Brightness: 100, Mode: On, Color: byte(ButtonAmber)},
			want:  "power,100,none,amber",
		},
		{
			name:  "button slow blink",
			state: State{LED: Button, Brightness: 5, Mode: BlinkPoint25Hz, Color: byte(ButtonBlue)},
			want:  "power,5,blink_slow,blue",
		},
		{
			name:  "off forces color off",
			state: State{LED: Ring, Brightness: 50, Mode: Off, Color: byte(RingRed)},
			want:  "ring,50,none,off",
		},
	}

	ctrl := newACPI("", nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctrl.command(tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestACPICommandCoversEveryMode(t *testing.T) {
	ctrl := newACPI("", nil)
	for _, term := range modeTerms {
		_, err := ctrl.command(State{LED: Ring, Mode: Mode(term.code)})
		assert.NoError(t, err, term.name)
	}

	_, err := ctrl.command(State{LED: LED(7)})
	assert.Error(t, err)
}

func TestACPIControllerSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuc_led")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	ctrl := newACPI(path, testLogger())
	require.NoError(t, ctrl.Set(State{LED: Ring, Brightness: 30, Mode: Fade1Hz, Color: byte(RingCyan)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ring,30,fade_fast,cyan", string(data))
	assert.Equal(t, BackendACPI, ctrl.Name())
}

func TestACPIControllerMissingDriver(t *testing.T) {
	ctrl := newACPI(filepath.Join(t.TempDir(), "nuc_led"), nil)

	err := ctrl.Set(State{LED: Ring, Brightness: 30, Mode: On, Color: byte(RingCyan)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "nuc_led module")
}

func TestACPIDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultACPIPath, newACPI("", nil).path)
}
