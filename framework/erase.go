/*
 * nandsim - Block-aligned erase plan construction.
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

import (
	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/driver"
	"github.com/nandsim/nandsim/driver/execop"
)

// Erase zeroes every block intersecting [offset, offset+size). offset is
// rounded down to its containing block start and offset+size rounded up
// to the next block boundary, so impolite callers who don't align to
// block boundaries still get whole blocks erased.
func (f *Framework) Erase(offset, size int) error {
	return f.run(f.buildErasePlan(offset, size))
}

func (f *Framework) buildErasePlan(offset, size int) Plan {
	blockSize := f.geom.BlockSize()
	startBlock := offset / blockSize
	endBlock := (offset + size) / blockSize
	if (offset+size)%blockSize != 0 {
		endBlock++
	}
	if endBlock > 0 {
		endBlock--
	}
	numBlocks := endBlock - startBlock + 1

	ins := make([]execop.Instruction, 0, eraseInstructionCount(numBlocks))
	ins = append(ins,
		execop.Instruction{Kind: execop.CMD, Opcode: chip.EraseSetup},
		execop.Instruction{Kind: execop.ADDR, Addrs: []byte{byte(startBlock)}},
	)
	for b := startBlock; b <= endBlock; b++ {
		ins = append(ins,
			execop.Instruction{Kind: execop.CMD, Opcode: chip.EraseExecute},
			execop.Instruction{Kind: execop.WAIT, Timeout: driver.TimeoutErase},
		)
	}

	return Plan{Instructions: ins}
}
