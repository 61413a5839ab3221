/*
 * nandsim - STATUS/RESET pin interface.
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

package chip

import "periph.io/x/conn/v3/gpio"

// Pin names the two host-visible lines.
type Pin int

const (
	Status Pin = iota
	Reset
)

// Pins exposes the STATUS/RESET level semantics of §4.3 in terms of
// gpio.Level, the same host-facing pin vocabulary a real flash bus uses.
type Pins struct {
	m *Machine
}

func newPins(m *Machine) *Pins {
	return &Pins{m: m}
}

// Get returns the current level of the named pin. STATUS is High (BUSY)
// iff the device is before its deadline; RESET always reads Low, since it
// carries no meaningful value on read.
func (p *Pins) Get(pin Pin) gpio.Level {
	switch pin {
	case Status:
		if p.m.deadline.Busy() {
			return gpio.High
		}
		return gpio.Low
	case Reset:
		return gpio.Low
	default:
		return gpio.Low
	}
}

// Set drives the named pin. Setting STATUS is a no-op (host-read-only).
// Setting RESET to a non-zero level clears the full parser state, returns
// to IDLE, and arms the reset deadline (500us unless SetTiming changed it)
// before further commands may be accepted.
func (p *Pins) Set(pin Pin, level gpio.Level) {
	if pin != Reset || level != gpio.High {
		return
	}
	p.m.resetPulse()
}
