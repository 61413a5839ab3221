package faulty

import (
	"testing"
	"time"

	"github.com/nandsim/nandsim/chip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysTimeoutNeverReportsReady(t *testing.T) {
	d := &AlwaysTimeout{
		SetRegisterFn: func(int, byte) error { return nil },
		ReadBufferFn:  func([]byte) error { return nil },
		WriteBufferFn: func([]byte) error { return nil },
	}

	err := d.WaitReady(2 * time.Millisecond)
	assert.ErrorIs(t, err, ErrAlwaysTimeout)
}

func TestSkippingReaderDropsEveryNthByte(t *testing.T) {
	m := chip.New(chip.DefaultGeometry, nil)

	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ProgramSetup}))
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ProgramSetup, Address: 0}))
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ProgramSetup, Address: 0}))
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ProgramSetup, Address: 0}))
	for i := 0; i < 8; i++ {
		require.NoError(t, m.WriteRegister(chip.Register{Command: chip.Dummy, Data: 0x7A}))
	}
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ProgramExecute}))
	time.Sleep(700 * time.Microsecond)

	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup}))
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup, Address: 0}))
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup, Address: 0}))
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup, Address: 0}))
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadExecute}))

	d := &SkippingReader{M: m, Skip: 4}
	out := make([]byte, 8)
	assert.NoError(t, d.ReadBuffer(out))

	assert.Equal(t, byte(0), out[3])
	assert.Equal(t, byte(0), out[7])
	assert.Equal(t, byte(0x7A), out[0])
}
