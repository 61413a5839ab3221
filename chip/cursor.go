/*
 * nandsim - 24-bit block:page:byte cursor.
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

// Cursor is the emulator's (block, page, byte) position. A source idiom
// packs this into a 24-bit word so the parser can mask/shift on each
// address byte write; here it is a plain three-field record, per the
// equivalent design noted alongside that idiom.
type Cursor struct {
	geom Geometry

	Block int
	Page  int
	Byte  int
}

// NewCursor returns a zeroed cursor for the given geometry.
func NewCursor(geom Geometry) Cursor {
	return Cursor{geom: geom}
}

// Clear zeroes all three fields.
func (c *Cursor) Clear() {
	c.Block, c.Page, c.Byte = 0, 0, 0
}

// AdvanceByte moves the byte field forward by one. If stayInPage is true,
// only the byte field wraps at PageSize and block/page are untouched
// (program streaming within PROG_ACCEPTING_DATA). If false, the full
// linear address advances and wraps at DeviceSize (read streaming in
// READ_PROVIDING_DATA, which may cross page and block boundaries).
func (c *Cursor) AdvanceByte(stayInPage bool) {
	if stayInPage {
		c.Byte = (c.Byte + 1) % c.geom.NumBytes
		return
	}

	linear := c.linear() + 1
	if size := c.geom.DeviceSize(); size > 0 {
		linear %= size
	}
	c.setLinear(linear)
}

// AdvancePage resets the byte field and moves to the next page, rolling
// into the next block on page overflow and wrapping block at NumBlocks.
func (c *Cursor) AdvancePage() {
	c.Byte = 0
	c.Page++
	if c.Page >= c.geom.NumPages {
		c.Page = 0
		c.Block++
		if c.Block >= c.geom.NumBlocks {
			c.Block = 0
		}
	}
}

// AdvanceBlock resets byte and page and moves to the next block, wrapping
// at NumBlocks.
func (c *Cursor) AdvanceBlock() {
	c.Byte = 0
	c.Page = 0
	c.Block = (c.Block + 1) % c.geom.NumBlocks
}

// linear returns the full byte-addressed offset the cursor currently names.
func (c *Cursor) linear() int {
	return c.Block*c.geom.BlockSize() + c.Page*c.geom.PageSize() + c.Byte
}

// setLinear decomposes a linear offset back into block/page/byte fields.
func (c *Cursor) setLinear(offset int) {
	c.Byte = offset % c.geom.PageSize()
	offset /= c.geom.PageSize()
	c.Page = offset % c.geom.NumPages
	offset /= c.geom.NumPages
	c.Block = offset % c.geom.NumBlocks
}
