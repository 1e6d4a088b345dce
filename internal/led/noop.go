package led

import (
	"fmt"
	"io"

	"github.com/smazurov/nucled/internal/logging"
)

// noop implements Controller as a dry run that never touches hardware.
type noop struct {
	out    io.Writer
	logger logging.Logger
}

// newNoop creates a dry-run controller reporting to out.
func newNoop(out io.Writer, logger logging.Logger) *noop {
	if out == nil {
		out = io.Discard
	}
	return &noop{
		out:    out,
		logger: logger,
	}
}

// Set reports the state and control word but performs no LED control.
func (n *noop) Set(state State) error {
	if n.logger != nil {
		n.logger.Debug("LED control skipped (dry run)",
			"led", state.LED.String(),
			"color", state.ColorName(),
			"mode", state.Mode.String(),
			"brightness", state.Brightness,
			"word", fmt.Sprintf("0x%08x", state.Word()))
	}
	_, err := fmt.Fprintf(n.out, "%s: control word 0x%08x\n", state, state.Word())
	return err
}

func (n *noop) Name() string {
	return BackendNoop
}
