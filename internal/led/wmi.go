package led

import "github.com/smazurov/nucled/internal/logging"

// Fixed coordinates of the Intel NUC LED management interface.
const (
	wmiNamespace = `root\WMI`
	wmiQuery     = "SELECT * FROM CISD_WMI"
	wmiMethod    = "SetState"
)

// wmi implements Controller by invoking SetState on every CISD_WMI instance.
type wmi struct {
	namespace string
	query     string
	method    string
	logger    logging.Logger
}

func newWMI(logger logging.Logger) *wmi {
	return &wmi{
		namespace: wmiNamespace,
		query:     wmiQuery,
		method:    wmiMethod,
		logger:    logger,
	}
}

func (w *wmi) Name() string {
	return BackendWMI
}
