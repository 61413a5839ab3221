/*
 * nandsim - Block-addressed storage array and one-page staging cache.
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

// Storage is the DeviceSize-byte backing array, zero-initialized and
// persisting for the lifetime of the device. Erase zeroes a block; program
// commits a full page in one shot.
type Storage struct {
	geom Geometry
	data []byte
}

// NewStorage allocates a zeroed storage array for the given geometry.
func NewStorage(geom Geometry) *Storage {
	return &Storage{geom: geom, data: make([]byte, geom.DeviceSize())}
}

func (s *Storage) pageOffset(block, page int) int {
	return block*s.geom.BlockSize() + page*s.geom.PageSize()
}

// ReadPage copies one full page out of storage.
func (s *Storage) ReadPage(block, page int) []byte {
	off := s.pageOffset(block, page)
	out := make([]byte, s.geom.PageSize())
	copy(out, s.data[off:off+s.geom.PageSize()])
	return out
}

// WritePage commits a full page-sized buffer to storage at block:page.
func (s *Storage) WritePage(block, page int, buf []byte) {
	off := s.pageOffset(block, page)
	copy(s.data[off:off+s.geom.PageSize()], buf)
}

// EraseBlock zeroes every byte of the given block.
func (s *Storage) EraseBlock(block int) {
	off := block * s.geom.BlockSize()
	for i := 0; i < s.geom.BlockSize(); i++ {
		s.data[off+i] = 0
	}
}

// Cache is the PageSize-byte staging buffer between host register events
// and the storage array.
type Cache struct {
	geom Geometry
	buf  []byte
}

// NewCache allocates a zeroed cache buffer for the given geometry.
func NewCache(geom Geometry) *Cache {
	return &Cache{geom: geom, buf: make([]byte, geom.PageSize())}
}

// Clear zeroes the cache. Performed at reset, after program-execute, and
// at every command-driven state reset.
func (c *Cache) Clear() {
	for i := range c.buf {
		c.buf[i] = 0
	}
}

// LoadPage fills the cache by copying a page out of storage.
func (c *Cache) LoadPage(s *Storage, block, page int) {
	copy(c.buf, s.ReadPage(block, page))
}

// FlushPage commits the cache to storage at block:page.
func (c *Cache) FlushPage(s *Storage, block, page int) {
	s.WritePage(block, page, c.buf)
}

// ByteAt returns the cache byte at the given offset within the page.
func (c *Cache) ByteAt(i int) byte {
	return c.buf[i%c.geom.PageSize()]
}

// SetByteAt stores a byte into the cache at the given offset within the
// page.
func (c *Cache) SetByteAt(i int, v byte) {
	c.buf[i%c.geom.PageSize()] = v
}
