//go:build !windows

package led

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWMIUnavailableOffWindows(t *testing.T) {
	ctrl := newWMI(nil)

	err := ctrl.Set(State{LED: Ring, Brightness: 10, Mode: On, Color: byte(RingBlue)})
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, `root\WMI`, ctrl.namespace)
	assert.Equal(t, "SELECT * FROM CISD_WMI", ctrl.query)
	assert.Equal(t, "SetState", ctrl.method)
}
