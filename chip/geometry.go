/*
 * nandsim - Chip geometry.
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

// Package chip implements the NAND flash device emulator: the command
// register/address/data state machine, the one-page staging cache, the
// block-addressed storage array, and the STATUS/RESET pin interface.
package chip

// Geometry holds the block/page/byte counts for a device. Each cursor
// field is loaded from one 8-bit register address byte, so each count must
// not exceed 256.
type Geometry struct {
	NumBlocks int
	NumPages  int
	NumBytes  int
}

// DefaultGeometry is the 256/256/256 geometry spec.md assumes throughout
// its worked examples.
var DefaultGeometry = Geometry{NumBlocks: 256, NumPages: 256, NumBytes: 256}

// PageSize is the number of bytes transferred by one program or read.
func (g Geometry) PageSize() int { return g.NumBytes }

// BlockSize is the number of bytes erased by one erase operation.
func (g Geometry) BlockSize() int { return g.NumPages * g.NumBytes }

// DeviceSize is the total addressable byte range of the device.
func (g Geometry) DeviceSize() int { return g.NumBlocks * g.BlockSize() }

// Valid reports whether the geometry fits the 8-bit cursor fields.
func (g Geometry) Valid() bool {
	return g.NumBlocks > 0 && g.NumBlocks <= 256 &&
		g.NumPages > 0 && g.NumPages <= 256 &&
		g.NumBytes > 0 && g.NumBytes <= 256
}
