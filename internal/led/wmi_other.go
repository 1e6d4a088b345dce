//go:build !windows

package led

import (
	"fmt"
	"runtime"
)

// Set always fails: WMI only exists on Windows.
func (w *wmi) Set(_ State) error {
	return fmt.Errorf("%w: WMI is not available on %s", ErrUnavailable, runtime.GOOS)
}
