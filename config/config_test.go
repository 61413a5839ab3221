package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/config/flashprofile"
)

func TestDefaultMatchesBaseline(t *testing.T) {
	cfg := Default()
	assert.Equal(t, JumpTable, cfg.Driver)
	assert.Equal(t, flashprofile.Baseline, cfg.Timing)
}

func TestParseAppliesAllDirectives(t *testing.T) {
	src := `
# a comment
CHIP blocks=200 pages=32 bytes=256
DRIVER execop
TIMING fast
`
	cfg, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Geometry.NumBlocks)
	assert.Equal(t, 32, cfg.Geometry.NumPages)
	assert.Equal(t, 256, cfg.Geometry.NumBytes)
	assert.Equal(t, ExecOp, cfg.Driver)
	assert.Equal(t, flashprofile.Fast, cfg.Timing)
}

func TestParseUnknownDirectiveFails(t *testing.T) {
	_, err := Parse(strings.NewReader("BOGUS foo"))
	assert.Error(t, err)
}

func TestParseInvalidChipOptionFails(t *testing.T) {
	_, err := Parse(strings.NewReader("CHIP blocks=notanumber"))
	assert.Error(t, err)
}

func TestParseUnknownDriverFails(t *testing.T) {
	_, err := Parse(strings.NewReader("DRIVER bogus"))
	assert.Error(t, err)
}

func TestParseOversizedGeometryFails(t *testing.T) {
	_, err := Parse(strings.NewReader("CHIP blocks=9999"))
	assert.Error(t, err)
}

func TestParseUnknownTimingFallsBackToBaseline(t *testing.T) {
	cfg, err := Parse(strings.NewReader("TIMING nonexistent"))
	require.NoError(t, err)
	assert.Equal(t, flashprofile.Baseline, cfg.Timing)
}

func TestApplyInstallsTimingOnMachine(t *testing.T) {
	cfg, err := Parse(strings.NewReader("TIMING compressed"))
	require.NoError(t, err)

	m := chip.New(chip.DefaultGeometry, nil)
	cfg.Apply(m)

	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup})) // -> READ_AWAIT_BLOCK
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup})) // block byte -> READ_AWAIT_PAGE
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup})) // page byte -> READ_AWAIT_BYTE
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadSetup})) // byte byte -> READ_AWAIT_EXEC
	require.NoError(t, m.WriteRegister(chip.Register{Command: chip.ReadExecute}))
	assert.Equal(t, gpio.High, m.Pins().Get(chip.Status))

	time.Sleep(flashprofile.Compressed.Read + 5*time.Microsecond)
	assert.Equal(t, gpio.Low, m.Pins().Get(chip.Status))
}
