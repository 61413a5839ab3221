/*
 * nandsim - Busy-until deadline tracker.
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

import "time"

// Deadline is a single-slot "device busy until T" timer. A zero deadline
// means ready.
type Deadline struct {
	clock *Clock
	until int64 // microseconds; 0 means ready
}

// NewDeadline creates a deadline tracker backed by clock.
func NewDeadline(clock *Clock) *Deadline {
	return &Deadline{clock: clock}
}

// Arm installs deadline = now() + d.
func (dl *Deadline) Arm(d time.Duration) {
	dl.until = dl.clock.Now() + d.Microseconds()
}

// Clear returns the deadline to ready.
func (dl *Deadline) Clear() {
	dl.until = 0
}

// Busy reports whether the current time is still before the deadline.
func (dl *Deadline) Busy() bool {
	if dl.until == 0 {
		return false
	}
	return dl.clock.Now() < dl.until
}
