/*
 * nandsim - Intentionally buggy driver fixtures, for test use only.
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

// Package faulty collects driver fixtures with intentional protocol bugs,
// for exercising error paths; none of them is a recommended driver
// implementation. Only this package's own tests use them.
package faulty

import (
	"errors"
	"time"

	"github.com/nandsim/nandsim/chip"
)

// ErrAlwaysTimeout is what AlwaysTimeout.WaitReady always returns.
var ErrAlwaysTimeout = errors.New("faulty: driver never reports ready")

// AlwaysTimeout wraps a real chip driver but makes WaitReady always fail,
// regardless of the device's actual status. It models the "nand_wait()
// bug that never reports ready" fixture class.
type AlwaysTimeout struct {
	SetRegisterFn func(offset int, b byte) error
	ReadBufferFn  func(dst []byte) error
	WriteBufferFn func(src []byte) error
}

func (d *AlwaysTimeout) SetRegister(offset int, b byte) error {
	return d.SetRegisterFn(offset, b)
}

func (d *AlwaysTimeout) ReadBuffer(dst []byte) error {
	return d.ReadBufferFn(dst)
}

func (d *AlwaysTimeout) WriteBuffer(src []byte) error {
	return d.WriteBufferFn(src)
}

// WaitReady ignores the device's real status and always times out after
// sleeping the full interval, so callers measuring CPU/wall ratio still
// see realistic behavior from the bug itself.
func (d *AlwaysTimeout) WaitReady(timeout time.Duration) error {
	time.Sleep(timeout)
	return ErrAlwaysTimeout
}

// SkippingReader wraps a real chip driver's ReadBuffer to silently drop
// every Nth byte read from the register, modeling a driver that loses
// bytes under its own buggy offset arithmetic.
type SkippingReader struct {
	M    *chip.Machine
	Skip int // drop every Skip'th byte; Skip<=0 disables dropping
}

func (d *SkippingReader) SetRegister(offset int, b byte) error {
	return errors.New("faulty: SkippingReader only implements ReadBuffer")
}

func (d *SkippingReader) WriteBuffer(src []byte) error {
	return errors.New("faulty: SkippingReader only implements ReadBuffer")
}

func (d *SkippingReader) WaitReady(timeout time.Duration) error {
	return nil
}

// ReadBuffer reads len(dst) live bytes from the register but discards
// every Skip'th one read, leaving whatever dst already held at that
// position instead of the byte the device actually produced.
func (d *SkippingReader) ReadBuffer(dst []byte) error {
	for i := range dst {
		b := d.M.ReadRegister().Data
		if d.Skip > 0 && (i+1)%d.Skip == 0 {
			continue
		}
		dst[i] = b
	}
	return nil
}
