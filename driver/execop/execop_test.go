package execop

import (
	"testing"
	"time"

	"github.com/nandsim/nandsim/chip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreterProgramThenReadRoundTrip(t *testing.T) {
	m := chip.New(chip.DefaultGeometry, nil)
	in := NewInterpreter(m)

	data := make([]byte, 256)
	for i := range data {
		data[i] = 0x42
	}

	writeOps := []Instruction{
		{Kind: CMD, Opcode: chip.ProgramSetup},
		{Kind: ADDR, Addrs: []byte{0, 0, 0}},
		{Kind: DataIn, Buf: data},
		{Kind: CMD, Opcode: chip.ProgramExecute},
		{Kind: WAIT, Timeout: 660 * time.Microsecond},
	}
	require.NoError(t, in.ExecOp(writeOps))

	out := make([]byte, 256)
	readOps := []Instruction{
		{Kind: CMD, Opcode: chip.ReadSetup},
		{Kind: ADDR, Addrs: []byte{0, 0, 0}},
		{Kind: CMD, Opcode: chip.ReadExecute},
		{Kind: WAIT, Timeout: 110 * time.Microsecond},
		{Kind: DataOut, Buf: out},
	}
	require.NoError(t, in.ExecOp(readOps))

	assert.Equal(t, data, out)
}

func TestInterpreterProgramNonUniformBufferAtOffset(t *testing.T) {
	m := chip.New(chip.DefaultGeometry, nil)
	in := NewInterpreter(m)

	data := []byte{1, 2, 3, 4, 5}

	writeOps := []Instruction{
		{Kind: CMD, Opcode: chip.ProgramSetup},
		{Kind: ADDR, Addrs: []byte{0, 0, 10}},
		{Kind: DataIn, Buf: data},
		{Kind: CMD, Opcode: chip.ProgramExecute},
		{Kind: WAIT, Timeout: 660 * time.Microsecond},
	}
	require.NoError(t, in.ExecOp(writeOps))

	out := make([]byte, len(data))
	readOps := []Instruction{
		{Kind: CMD, Opcode: chip.ReadSetup},
		{Kind: ADDR, Addrs: []byte{0, 0, 10}},
		{Kind: CMD, Opcode: chip.ReadExecute},
		{Kind: WAIT, Timeout: 110 * time.Microsecond},
		{Kind: DataOut, Buf: out},
	}
	require.NoError(t, in.ExecOp(readOps))

	assert.Equal(t, data, out)
}

func TestInterpreterEraseZeroesBlock(t *testing.T) {
	m := chip.New(chip.DefaultGeometry, nil)
	in := NewInterpreter(m)

	data := make([]byte, 256)
	for i := range data {
		data[i] = 0xEE
	}
	require.NoError(t, in.ExecOp([]Instruction{
		{Kind: CMD, Opcode: chip.ProgramSetup},
		{Kind: ADDR, Addrs: []byte{3, 0, 0}},
		{Kind: DataIn, Buf: data},
		{Kind: CMD, Opcode: chip.ProgramExecute},
		{Kind: WAIT, Timeout: 660 * time.Microsecond},
	}))

	require.NoError(t, in.ExecOp([]Instruction{
		{Kind: CMD, Opcode: chip.EraseSetup},
		{Kind: ADDR, Addrs: []byte{3}},
		{Kind: CMD, Opcode: chip.EraseExecute},
		{Kind: WAIT, Timeout: 2200 * time.Microsecond},
	}))

	out := make([]byte, 256)
	require.NoError(t, in.ExecOp([]Instruction{
		{Kind: CMD, Opcode: chip.ReadSetup},
		{Kind: ADDR, Addrs: []byte{3, 0, 0}},
		{Kind: CMD, Opcode: chip.ReadExecute},
		{Kind: WAIT, Timeout: 110 * time.Microsecond},
		{Kind: DataOut, Buf: out},
	}))

	assert.Equal(t, make([]byte, 256), out)
}
