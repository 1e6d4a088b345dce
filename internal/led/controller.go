package led

// Controller applies a State to the indicator LEDs.
// Implementations wrap one platform transport for the SetState call.
type Controller interface {
	// Set sends the state's control word to every matching management
	// instance. It blocks until the platform reports success or failure.
	Set(state State) error

	// Name returns the backend identifier (wmi, acpi, noop).
	Name() string
}
