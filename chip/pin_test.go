package chip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/gpio"
)

func TestStatusPinBusyWhileArmed(t *testing.T) {
	m := New(DefaultGeometry, nil)
	m.deadline.Arm(50 * time.Millisecond)

	assert.Equal(t, gpio.High, m.Pins().Get(Status))

	m.deadline.Clear()
	assert.Equal(t, gpio.Low, m.Pins().Get(Status))
}

func TestResetPinPulseDrivesBusyAndIdle(t *testing.T) {
	m := New(DefaultGeometry, nil)
	m.state = ReadAwaitPage

	m.Pins().Set(Reset, gpio.High)

	assert.Equal(t, Idle, m.State())
	assert.Equal(t, gpio.High, m.Pins().Get(Status), "reset must arm the busy deadline")
}

func TestResetPinGetAlwaysLow(t *testing.T) {
	m := New(DefaultGeometry, nil)
	assert.Equal(t, gpio.Low, m.Pins().Get(Reset))
}

func TestSetStatusPinIsNoOp(t *testing.T) {
	m := New(DefaultGeometry, nil)
	m.Pins().Set(Status, gpio.High)
	assert.Equal(t, gpio.Low, m.Pins().Get(Status))
}
