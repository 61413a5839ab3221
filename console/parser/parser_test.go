package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/driver"
	"github.com/nandsim/nandsim/framework"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	m := chip.New(chip.DefaultGeometry, nil)
	fw := framework.New(chip.DefaultGeometry, driver.NewChip(m))
	return &Session{FW: fw, M: m}
}

func TestEraseThenWriteThenReadRoundTrip(t *testing.T) {
	sess := newSession(t)

	quit, err := ProcessCommand("erase 0 1", sess)
	require.NoError(t, err)
	assert.False(t, quit)

	quit, err = ProcessCommand("write 0 deadbeef", sess)
	require.NoError(t, err)
	assert.False(t, quit)

	quit, err = ProcessCommand("read 0 4", sess)
	require.NoError(t, err)
	assert.False(t, quit)

	got := make([]byte, 4)
	require.NoError(t, sess.FW.Read(got, 0, 4))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got)
}

func TestAbbreviatedCommandsMatch(t *testing.T) {
	sess := newSession(t)
	quit, err := ProcessCommand("st", sess)
	require.NoError(t, err)
	assert.False(t, quit)
}

func TestAbbreviationShorterThanMinimumErrors(t *testing.T) {
	sess := newSession(t)
	_, err := ProcessCommand("s", sess) // status requires at least 2 letters
	assert.Error(t, err)
}

func TestUnknownCommandErrors(t *testing.T) {
	sess := newSession(t)
	_, err := ProcessCommand("frobnicate", sess)
	assert.Error(t, err)
}

func TestQuitReportsDone(t *testing.T) {
	sess := newSession(t)
	quit, err := ProcessCommand("quit", sess)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestResetReturnsMachineToIdle(t *testing.T) {
	sess := newSession(t)
	require.NoError(t, sess.M.WriteRegister(chip.Register{Command: chip.ReadSetup}))
	quit, err := ProcessCommand("reset", sess)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, chip.Idle, sess.M.State())
}

func TestCompleteCmdListsMatchingCommands(t *testing.T) {
	assert.Contains(t, CompleteCmd("r"), "read")
	assert.Contains(t, CompleteCmd("res"), "reset")
}
