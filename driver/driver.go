/*
 * nandsim - Jump-table driver surface.
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

// Package driver implements the jump-table driver surface: four entry
// points (SetRegister, ReadBuffer, WriteBuffer, WaitReady) that the
// framework calls directly instead of building an instruction list.
package driver

import (
	"errors"
	"time"

	"github.com/nandsim/nandsim/chip"
	"periph.io/x/conn/v3/gpio"
)

// Register field offsets, the three bytes of a chip.Register.
const (
	OffsetCommand = 0
	OffsetAddress = 1
	OffsetData    = 2
)

// Driver timeouts are 10% longer than the device's own busy durations, to
// absorb polling granularity and scheduling jitter.
const (
	TimeoutRead    = 110 * time.Microsecond
	TimeoutProgram = 660 * time.Microsecond
	TimeoutErase   = 2200 * time.Microsecond
	TimeoutReset   = 550 * time.Microsecond
)

// pollInterval is how long WaitReady sleeps between status polls. Each
// poll is far cheaper than this sleep, so WaitReady spends the majority of
// its wall-clock time asleep rather than spinning.
const pollInterval = 25 * time.Microsecond

// ErrTimeout is returned by WaitReady when the device never reports
// READY before the timeout elapses.
var ErrTimeout = errors.New("driver: device did not become ready before timeout")

// Chip is the default jump-table driver: it talks directly to an
// in-process chip.Machine. SetRegister maintains a shadow of the full
// register word, since the real device watches the whole word on every
// write, not just the field that changed.
type Chip struct {
	m      *chip.Machine
	shadow chip.Register
}

// NewChip wraps m as a jump-table driver.
func NewChip(m *chip.Machine) *Chip {
	return &Chip{m: m}
}

// SetRegister updates one field of the shadow register and resubmits the
// full word to the chip.
func (c *Chip) SetRegister(offset int, b byte) error {
	switch offset {
	case OffsetCommand:
		c.shadow.Command = chip.Command(b)
	case OffsetAddress:
		c.shadow.Address = b
	case OffsetData:
		c.shadow.Data = b
	}
	return c.m.WriteRegister(c.shadow)
}

// ReadBuffer fills dst one register read at a time.
func (c *Chip) ReadBuffer(dst []byte) error {
	for i := range dst {
		dst[i] = c.m.ReadRegister().Data
	}
	return nil
}

// WriteBuffer streams src into the chip's data register as a sequence of
// DUMMY-tagged writes (the host protocol for "this is a data byte, not a
// command"). The DUMMY tag is folded into the shadow register directly,
// not submitted as its own write: every Command==Dummy write the chip
// sees is a real data byte that consumes a cursor position, so there is
// no separate "announce the command" step.
func (c *Chip) WriteBuffer(src []byte) error {
	c.shadow.Command = chip.Dummy
	for _, b := range src {
		if err := c.SetRegister(OffsetData, b); err != nil {
			return err
		}
	}
	return nil
}

// WaitReady polls the STATUS pin until READY or timeout, sleeping
// pollInterval between polls so most of its wall-clock time is spent
// asleep rather than spinning.
func (c *Chip) WaitReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if c.m.Pins().Get(chip.Status) == gpio.Low {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(pollInterval)
	}
}
