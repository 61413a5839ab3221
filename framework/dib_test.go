package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilDIBIsWellFormed(t *testing.T) {
	assert.NoError(t, Init(nil).Verify())
}

func wellFormedController() *Controller {
	ctl := &Controller{ChipCount: 1}
	ctl.Storages = []*Storage{{Name: "chip0", Controller: ctl}}
	return ctl
}

func TestWellFormedDIBPasses(t *testing.T) {
	ctl := wellFormedController()
	dib := &DIB{Devices: []*Device{{Name: "nand0", Controller: ctl}}}
	assert.NoError(t, dib.Verify())
	assert.Same(t, ctl.FirstStorage(), ctl.LastStorage())
}

func TestDeviceWithoutControllerFails(t *testing.T) {
	dib := &DIB{Devices: []*Device{{Name: "nand0"}}}
	assert.Error(t, dib.Verify())
}

func TestControllerWithNoStorageFails(t *testing.T) {
	ctl := &Controller{}
	dib := &DIB{Devices: []*Device{{Name: "nand0", Controller: ctl}}}
	assert.Error(t, dib.Verify())
}

func TestControllerChipCountMismatchFails(t *testing.T) {
	ctl := wellFormedController()
	ctl.ChipCount = 2
	dib := &DIB{Devices: []*Device{{Name: "nand0", Controller: ctl}}}
	assert.Error(t, dib.Verify())
}

func TestControllerExceedingMaxStorageFails(t *testing.T) {
	ctl := &Controller{ChipCount: MaxStorageChipsPerController + 1}
	for i := 0; i < MaxStorageChipsPerController+1; i++ {
		ctl.Storages = append(ctl.Storages, &Storage{Controller: ctl})
	}
	dib := &DIB{Devices: []*Device{{Name: "nand0", Controller: ctl}}}
	assert.Error(t, dib.Verify())
}

func TestFirstLastBackrefMismatchFails(t *testing.T) {
	ctl := wellFormedController()
	other := &Controller{}
	ctl.Storages[0].Controller = other
	dib := &DIB{Devices: []*Device{{Name: "nand0", Controller: ctl}}}
	assert.Error(t, dib.Verify())
}
