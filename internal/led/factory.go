package led

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/smazurov/nucled/internal/logging"
)

// Backend identifiers accepted by New.
const (
	BackendAuto = "auto"
	BackendWMI  = "wmi"
	BackendACPI = "acpi"
	BackendNoop = "noop"
)

const dmiPath = "/sys/class/dmi/id"

// Options selects and configures a controller backend.
type Options struct {
	Backend  string
	ACPIPath string
	// Out receives dry-run output from the noop backend.
	Out io.Writer
}

// Backends returns the accepted backend identifiers.
func Backends() []string {
	return []string{BackendAuto, BackendWMI, BackendACPI, BackendNoop}
}

// New creates the LED controller for the requested backend.
// "auto" picks WMI on Windows and the nuc_led driver on Linux.
func New(opts Options, logger logging.Logger) (Controller, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" {
		backend = BackendAuto
	}

	if backend == BackendAuto {
		if logger != nil {
			logger.Debug("Detecting board for LED control", "board", detectBoard(), "os", runtime.GOOS)
		}

		switch runtime.GOOS {
		case "windows":
			backend = BackendWMI
		case "linux":
			backend = BackendACPI
		default:
			return nil, fmt.Errorf("%w: no LED backend for %s", ErrUnavailable, runtime.GOOS)
		}
	}

	switch backend {
	case BackendWMI:
		return newWMI(logger), nil
	case BackendACPI:
		return newACPI(opts.ACPIPath, logger), nil
	case BackendNoop:
		return newNoop(opts.Out, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedBackend, opts.Backend, strings.Join(Backends(), ", "))
	}
}

// detectBoard reads the DMI board identity to identify the host.
func detectBoard() string {
	vendor := readDMI("board_vendor")
	name := readDMI("board_name")
	if vendor == "" && name == "" {
		return "unknown"
	}
	return strings.TrimSpace(vendor + " " + name)
}

func readDMI(field string) string {
	data, err := os.ReadFile(filepath.Join(dmiPath, field))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
