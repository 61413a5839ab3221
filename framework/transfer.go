/*
 * nandsim - Read/write page-wrapping plan construction.
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

// Write stages buf[0:size] into the device starting at offset, spanning
// as many pages as needed. offset+size larger than the device size wraps
// the cursor rather than erroring.
func (f *Framework) Write(buf []byte, offset, size int) error {
	plan := f.buildWritePlan(buf[:size], offset, size)
	return f.run(plan)
}

// Read fills buf[0:size] from the device starting at offset, spanning as
// many pages as needed.
func (f *Framework) Read(buf []byte, offset, size int) error {
	plan := f.buildReadPlan(buf[:size], offset, size)
	return f.run(plan)
}

func (f *Framework) buildWritePlan(buf []byte, offset, size int) Plan {
	block, page, byteAddr := f.decompose(offset)
	pageSize := f.geom.PageSize()

	ins := make([]execop.Instruction, 0, dataXferInstructionCount(byteAddr, size, pageSize))
	ins = append(ins,
		execop.Instruction{Kind: execop.CMD, Opcode: chip.ProgramSetup},
		execop.Instruction{Kind: execop.ADDR, Addrs: []byte{byte(block), byte(page), byte(byteAddr)}},
	)

	cursor := 0
	bytesLeft := size
	pageOffset := byteAddr
	for bytesLeft > 0 {
		chunk := pageSize
		if pageOffset != 0 {
			chunk = pageSize - pageOffset
			pageOffset = 0
		}
		if chunk > bytesLeft {
			chunk = bytesLeft
		}

		ins = append(ins,
			execop.Instruction{Kind: execop.DataIn, Buf: buf[cursor : cursor+chunk]},
			execop.Instruction{Kind: execop.CMD, Opcode: chip.ProgramExecute},
			execop.Instruction{Kind: execop.WAIT, Timeout: driver.TimeoutProgram},
		)

		cursor += chunk
		bytesLeft -= chunk
	}

	return Plan{Instructions: ins}
}

func (f *Framework) buildReadPlan(buf []byte, offset, size int) Plan {
	block, page, byteAddr := f.decompose(offset)
	pageSize := f.geom.PageSize()

	ins := make([]execop.Instruction, 0, dataXferInstructionCount(byteAddr, size, pageSize))
	ins = append(ins,
		execop.Instruction{Kind: execop.CMD, Opcode: chip.ReadSetup},
		execop.Instruction{Kind: execop.ADDR, Addrs: []byte{byte(block), byte(page), byte(byteAddr)}},
	)

	cursor := 0
	bytesLeft := size
	pageOffset := byteAddr
	for bytesLeft > 0 {
		chunk := pageSize
		if pageOffset != 0 {
			chunk = pageSize - pageOffset
			pageOffset = 0
		}
		if chunk > bytesLeft {
			chunk = bytesLeft
		}

		ins = append(ins,
			execop.Instruction{Kind: execop.CMD, Opcode: chip.ReadExecute},
			execop.Instruction{Kind: execop.WAIT, Timeout: driver.TimeoutRead},
			execop.Instruction{Kind: execop.DataOut, Buf: buf[cursor : cursor+chunk]},
		)

		cursor += chunk
		bytesLeft -= chunk
	}

	return Plan{Instructions: ins}
}
