/*
 * nandsim - Operation plan construction.
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

// Package framework turns logical read/write/erase calls into
// chip-level plans, dispatches them against either driver surface, and
// owns the Device Information Base describing the installed hardware.
package framework

import (
	"strings"

	"github.com/nandsim/nandsim/driver/execop"
)

// Plan is the chip-level instruction sequence for one logical
// read/write/erase call. It is always built, regardless of which driver
// surface eventually executes it, so both surfaces share one
// decomposition implementation and so cmd/nanddebug has something to
// single-step.
type Plan struct {
	Instructions []execop.Instruction
}

func (p Plan) String() string {
	var b strings.Builder
	for i, ins := range p.Instructions {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ins.String())
	}
	return b.String()
}

// dataXferInstructionCount returns the instruction count for a read or
// write spanning byteAddr..byteAddr+size: one setup, one address, and
// three instructions (xfer, execute, wait) per page touched, including
// any final partial page.
func dataXferInstructionCount(byteAddr, size, pageSize int) int {
	count := 2
	total := size + byteAddr
	count += 3 * (total / pageSize)
	if total%pageSize != 0 {
		count += 3
	}
	return count
}

// eraseInstructionCount returns the instruction count for erasing
// numBlocks contiguous blocks: one setup, one address, and two
// instructions (execute, wait) per block.
func eraseInstructionCount(numBlocks int) int {
	return 2 + 2*numBlocks
}

