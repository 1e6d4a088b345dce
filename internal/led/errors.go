package led

import (
	"errors"
	"fmt"
)

// Field names used in parse errors and help output.
const (
	FieldLED         = "led"
	FieldColor       = "color"
	FieldButtonColor = "buttoncolor"
	FieldRingColor   = "ringcolor"
	FieldMode        = "mode"
	FieldBrightness  = "brightness"
)

// ErrUnavailable is returned when the management subsystem cannot be reached,
// including hosts with no supported subsystem at all.
var ErrUnavailable = errors.New("management interface unavailable")

// ErrUnsupportedBackend is returned by New for unknown or unbuildable backends.
var ErrUnsupportedBackend = errors.New("unsupported LED backend")

// ParseError reports a token that is not in its field's vocabulary.
type ParseError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("failed to parse %s from %q", e.Field, e.Value)
}

func newParseError(field, value, reason string) *ParseError {
	return &ParseError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// Status is the error byte returned by the SetState method.
type Status byte

const (
	StatusNone                 Status = 0x00
	StatusFunctionNotSupported Status = 0xe1
	StatusUndefinedDevice      Status = 0xe2
	StatusNoECResponse         Status = 0xe3
	StatusInvalidParameter     Status = 0xe4
	StatusUnexpectedError      Status = 0xef
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusFunctionNotSupported:
		return "function not supported"
	case StatusUndefinedDevice:
		return "undefined device"
	case StatusNoECResponse:
		return "no EC response"
	case StatusInvalidParameter:
		return "invalid parameter"
	case StatusUnexpectedError:
		return "unexpected error"
	default:
		return fmt.Sprintf("unknown status 0x%02x", byte(s))
	}
}

// StatusError is a non-zero status reported by the firmware.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("SetState failed: %s (0x%02x)", e.Status, byte(e.Status))
}

// checkStatus decodes the low byte of a SetState return value.
func checkStatus(ret uint32) error {
	if s := Status(ret & 0xff); s != StatusNone {
		return &StatusError{Status: s}
	}
	return nil
}
