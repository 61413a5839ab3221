/*
 * nandsim - Logical read/write/erase decomposition.
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
	"time"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/driver"
	"github.com/nandsim/nandsim/driver/execop"
)

// JumpTableDriver is the four-call capability surface a driver may
// implement. driver.Chip satisfies this structurally; framework never
// imports the driver package's types to define the interface, which is
// what keeps driver and driver/execop free of any dependency on
// framework.
type JumpTableDriver interface {
	SetRegister(offset int, b byte) error
	ReadBuffer(dst []byte) error
	WriteBuffer(src []byte) error
	WaitReady(timeout time.Duration) error
}

// ExecOpDriver is the single-entry-point capability surface. execop.
// Interpreter satisfies this structurally.
type ExecOpDriver interface {
	ExecOp(ops []execop.Instruction) error
}

// Framework decomposes logical read/write/erase calls into a Plan and
// dispatches it against whichever driver surface was configured. New sets
// only jumpTable and NewExecOp sets only execOp; a Framework built with a
// nil driver can still build plans but not run them.
type Framework struct {
	geom      chip.Geometry
	jumpTable JumpTableDriver
	execOp    ExecOpDriver
}

// New builds a framework bound to the jump-table driver surface.
func New(geom chip.Geometry, jt JumpTableDriver) *Framework {
	return &Framework{geom: geom, jumpTable: jt}
}

// NewExecOp builds a framework bound to the exec-op driver surface.
func NewExecOp(geom chip.Geometry, eo ExecOpDriver) *Framework {
	return &Framework{geom: geom, execOp: eo}
}

// decompose splits a linear offset into block/page/byte components.
func (f *Framework) decompose(offset int) (block, page, byteAddr int) {
	blockSize := f.geom.BlockSize()
	pageSize := f.geom.PageSize()
	block = offset / blockSize
	rem := offset % blockSize
	page = rem / pageSize
	byteAddr = rem % pageSize
	return
}

// run dispatches a built plan against whichever driver surface is
// configured.
func (f *Framework) run(plan Plan) error {
	if f.execOp != nil {
		return f.execOp.ExecOp(plan.Instructions)
	}
	return runOnJumpTable(f.jumpTable, plan)
}

// runOnJumpTable replays a Plan's instructions as successive
// set_register/read_buffer/write_buffer/wait_ready calls — the same
// structural plan the exec-op surface executes, just without an
// explicit instruction list sitting between the framework and the chip.
func runOnJumpTable(jt JumpTableDriver, plan Plan) error {
	for _, ins := range plan.Instructions {
		switch ins.Kind {
		case execop.CMD:
			if err := jt.SetRegister(driver.OffsetCommand, byte(ins.Opcode)); err != nil {
				return err
			}
		case execop.ADDR:
			for _, a := range ins.Addrs {
				if err := jt.SetRegister(driver.OffsetAddress, a); err != nil {
					return err
				}
			}
		case execop.DataIn:
			if err := jt.WriteBuffer(ins.Buf); err != nil {
				return err
			}
		case execop.DataOut:
			if err := jt.ReadBuffer(ins.Buf); err != nil {
				return err
			}
		case execop.WAIT:
			if err := jt.WaitReady(ins.Timeout); err != nil {
				return err
			}
		}
	}
	return nil
}
