/*
 * nandsim - Device Information Base.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package framework

import "fmt"

// MaxStorageChipsPerController bounds Controller.Storages, mirroring the
// "controller has >=1 storage chip and <= a maximum" well-formedness
// rule.
const MaxStorageChipsPerController = 8

// Storage names one storage chip owned by a Controller. The back-link to
// Controller is a weak reference: Controller owns the Storage slice, not
// the other way around, so the graph has no cycle to break at teardown.
type Storage struct {
	Name       string
	Controller *Controller
}

// Controller owns an ordered list of Storage chips.
type Controller struct {
	Storages  []*Storage
	ChipCount int // declared count, cross-checked against len(Storages) by Verify
}

// FirstStorage and LastStorage are computed, not stored — the Design
// Notes' treatment of first/last as weak references derived at verify
// time rather than persisted pointers that would create a cycle.
func (c *Controller) FirstStorage() *Storage {
	if len(c.Storages) == 0 {
		return nil
	}
	return c.Storages[0]
}

func (c *Controller) LastStorage() *Storage {
	if len(c.Storages) == 0 {
		return nil
	}
	return c.Storages[len(c.Storages)-1]
}

// Device owns one Controller.
type Device struct {
	Name       string
	Controller *Controller
}

// DIB (Device Information Base) is an acyclic list of installed devices.
// A nil/empty DIB is well-formed.
type DIB struct {
	Devices []*Device
}

// Init returns a fresh DIB from oldDIB, or a new empty one if oldDIB is
// nil. This mirrors the framework surface's init(old_dib) -> new_dib
// contract: an initially null DIB is well-formed.
func Init(oldDIB *DIB) *DIB {
	if oldDIB == nil {
		return &DIB{}
	}
	return oldDIB
}

// Verify checks the DIB's well-formedness: every device has a
// controller, every controller has between 1 and
// MaxStorageChipsPerController storage chips, every storage chip's
// back-reference resolves to its owning controller, and the declared
// ChipCount matches the structural count.
func (d *DIB) Verify() error {
	if d == nil {
		return nil
	}
	for i, dev := range d.Devices {
		if dev.Controller == nil {
			return fmt.Errorf("framework: device %d (%s) has no controller", i, dev.Name)
		}
		ctl := dev.Controller
		if len(ctl.Storages) == 0 {
			return fmt.Errorf("framework: device %d (%s) controller has no storage chips", i, dev.Name)
		}
		if len(ctl.Storages) > MaxStorageChipsPerController {
			return fmt.Errorf("framework: device %d (%s) controller exceeds max storage chips (%d > %d)",
				i, dev.Name, len(ctl.Storages), MaxStorageChipsPerController)
		}
		if ctl.ChipCount != len(ctl.Storages) {
			return fmt.Errorf("framework: device %d (%s) controller chip count %d does not match %d storages",
				i, dev.Name, ctl.ChipCount, len(ctl.Storages))
		}
		if ctl.FirstStorage().Controller != ctl {
			return fmt.Errorf("framework: device %d (%s) first storage does not link back to its controller", i, dev.Name)
		}
		if ctl.LastStorage().Controller != ctl {
			return fmt.Errorf("framework: device %d (%s) last storage does not link back to its controller", i, dev.Name)
		}
	}
	return nil
}
