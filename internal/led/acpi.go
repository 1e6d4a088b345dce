package led

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/smazurov/nucled/internal/logging"
)

// DefaultACPIPath is the control file exposed by the nuc_led kernel module.
const DefaultACPIPath = "/proc/acpi/nuc_led"

// acpi implements Controller through the Linux nuc_led driver, which
// forwards to the same WMI method from kernel space.
type acpi struct {
	path   string
	logger logging.Logger
}

var acpiLEDs = map[LED]string{
	Button: "power",
	Ring:   "ring",
}

// The driver has no "off" mode; Off is written as color off.
var acpiModes = map[Mode]string{
	Off:            "none",
	On:             "none",
	Blink1Hz:       "blink_fast",
	BlinkPoint5Hz:  "blink_medium",
	BlinkPoint25Hz: "blink_slow",
	Fade1Hz:        "fade_fast",
	FadePoint5Hz:   "fade_medium",
	FadePoint25Hz:  "fade_slow",
}

// newACPI creates a controller writing to the given nuc_led control file.
func newACPI(path string, logger logging.Logger) *acpi {
	if path == "" {
		path = DefaultACPIPath
	}
	return &acpi{
		path:   path,
		logger: logger,
	}
}

// command renders the driver's "<led>,<brightness>,<blink_fade>,<color>" line.
func (a *acpi) command(state State) (string, error) {
	ledName, ok := acpiLEDs[state.LED]
	if !ok {
		return "", fmt.Errorf("LED %s not supported by nuc_led", state.LED)
	}
	mode, ok := acpiModes[state.Mode]
	if !ok {
		return "", fmt.Errorf("mode %s not supported by nuc_led", state.Mode)
	}

	color := state.ColorName()
	if state.Mode == Off {
		color = "off"
	}

	return fmt.Sprintf("%s,%d,%s,%s", ledName, state.Brightness, mode, color), nil
}

// Set writes the state to the nuc_led control file.
func (a *acpi) Set(state State) error {
	line, err := a.command(state)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(a.path); errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s not found (is the nuc_led module loaded?)", ErrUnavailable, a.path)
	}

	if a.logger != nil {
		a.logger.Debug("Writing nuc_led command", "path", a.path, "command", line)
	}

	if err := os.WriteFile(a.path, []byte(line), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.path, err)
	}

	return nil
}

func (a *acpi) Name() string {
	return BackendACPI
}
