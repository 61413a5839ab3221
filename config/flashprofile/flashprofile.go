/*
 * nandsim - Named chip timing profiles.
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

// Package flashprofile names realistic per-model timing profiles a
// device can be configured with, beyond the spec's baseline durations.
// It is a compressed-timescale analogue of the AC characteristic tables
// real flash datasheets publish.
package flashprofile

import "time"

// Profile holds the four busy durations a device's timing model needs.
type Profile struct {
	Name    string
	Read    time.Duration
	Program time.Duration
	Erase   time.Duration
	Reset   time.Duration
}

// Baseline is the spec's own fixed timing model: 100/600/2000/500us.
var Baseline = Profile{
	Name:    "baseline",
	Read:    100 * time.Microsecond,
	Program: 600 * time.Microsecond,
	Erase:   2000 * time.Microsecond,
	Reset:   500 * time.Microsecond,
}

// Fast models a small SLC part with aggressive program/erase times,
// useful for shortening test suite wall-clock time.
var Fast = Profile{
	Name:    "fast",
	Read:    20 * time.Microsecond,
	Program: 120 * time.Microsecond,
	Erase:   400 * time.Microsecond,
	Reset:   100 * time.Microsecond,
}

// Compressed further shrinks every duration by another order of
// magnitude, for unit tests that exercise many operations and cannot
// afford to actually wait out busy windows.
var Compressed = Profile{
	Name:    "compressed",
	Read:    2 * time.Microsecond,
	Program: 12 * time.Microsecond,
	Erase:   40 * time.Microsecond,
	Reset:   10 * time.Microsecond,
}

var known = map[string]Profile{
	Baseline.Name:   Baseline,
	Fast.Name:       Fast,
	Compressed.Name: Compressed,
}

// Lookup returns the named profile, falling back to Baseline if the name
// is unrecognized (paramOrMax's "fall back to a default" idiom, but
// deterministic rather than a computed maximum since each profile here
// is a fully-specified named preset, not a single missing parameter).
func Lookup(name string) Profile {
	if p, ok := known[name]; ok {
		return p
	}
	return Baseline
}
