package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/smazurov/nucled/internal/led"
)

// helpFields are the field names accepted by "help".
var helpFields = []string{
	led.FieldLED,
	led.FieldMode,
	led.FieldButtonColor,
	led.FieldRingColor,
	led.FieldBrightness,
}

// usageError is reported together with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// dispatchError wraps a failure of the management interface call.
type dispatchError struct {
	err error
}

func (e *dispatchError) Error() string { return e.err.Error() }
func (e *dispatchError) Unwrap() error { return e.err }

func printUsage(w io.Writer, name string) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "\t%s led color mode brightness\n", name)
	fmt.Fprintf(w, "\t%s help [", name)
	for i, f := range helpFields {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, f)
	}
	fmt.Fprintln(w, "]")
}

// explain prints usage followed by the permissible values of each field.
func explain(w io.Writer, name string, fields []string) {
	printUsage(w, name)
	if len(fields) == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, field := range fields {
		values, ok := led.Explain(field)
		if !ok {
			values = "unknown argument"
		}
		fmt.Fprintf(w, "\t%s: %s\n", field, values)
	}
}

// report prints err to w in the form matching its class.
func report(w io.Writer, name string, err error) {
	var usageErr *usageError
	var dispatchErr *dispatchError

	switch {
	case errors.As(err, &usageErr):
		printUsage(w, name)
		fmt.Fprintf(w, "\n%v\n", usageErr)
	case errors.As(err, &dispatchErr):
		fmt.Fprintf(w, "management interface error: %v (host hardware may not be supported)\n", dispatchErr)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
