/*
 * nandsim - Exec-op instruction interpreter.
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

// Package execop implements the other driver surface: a single entry
// point that replays an ordered instruction list against the chip,
// rather than a jump table of four capability calls.
package execop

import (
	"fmt"
	"time"

	"github.com/nandsim/nandsim/chip"
	"periph.io/x/conn/v3/gpio"
)

// Kind tags the variant carried by an Instruction.
type Kind int

const (
	CMD Kind = iota
	ADDR
	DataIn
	DataOut
	WAIT
)

func (k Kind) String() string {
	switch k {
	case CMD:
		return "CMD"
	case ADDR:
		return "ADDR"
	case DataIn:
		return "DATA_IN"
	case DataOut:
		return "DATA_OUT"
	case WAIT:
		return "WAIT"
	default:
		return "UNKNOWN"
	}
}

// Instruction is one step of an exec-op program. Only the fields
// meaningful to Kind are populated.
type Instruction struct {
	Kind    Kind
	Opcode  chip.Command  // CMD
	Addrs   []byte        // ADDR: 1 byte for erase, 3 for read/program
	Buf     []byte        // DATA_IN (written from) / DATA_OUT (written into)
	Timeout time.Duration // WAIT
}

func (ins Instruction) String() string {
	switch ins.Kind {
	case CMD:
		return fmt.Sprintf("CMD %s", ins.Opcode)
	case ADDR:
		return fmt.Sprintf("ADDR %v", ins.Addrs)
	case DataIn:
		return fmt.Sprintf("DATA_IN len=%d", len(ins.Buf))
	case DataOut:
		return fmt.Sprintf("DATA_OUT len=%d", len(ins.Buf))
	case WAIT:
		return fmt.Sprintf("WAIT %s", ins.Timeout)
	default:
		return "?"
	}
}

// pollInterval mirrors the jump-table driver's polling cadence so both
// surfaces exhibit the same mostly-asleep WAIT behavior.
const pollInterval = 25 * time.Microsecond

// Interpreter executes Instruction lists against an in-process
// chip.Machine. It is the exec-op counterpart of driver.Chip.
type Interpreter struct {
	m *chip.Machine
}

// NewInterpreter wraps m as an exec-op driver.
func NewInterpreter(m *chip.Machine) *Interpreter {
	return &Interpreter{m: m}
}

// ErrTimeout is returned by a WAIT instruction that outlasts its timeout.
var ErrTimeout = fmt.Errorf("execop: device did not become ready before timeout")

// ExecOp replays ops against the wrapped machine in order, stopping and
// returning an error at the first failing instruction.
func (in *Interpreter) ExecOp(ops []Instruction) error {
	for _, ins := range ops {
		if err := in.step(ins); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction, for callers that want to observe
// machine state between instructions (the step debugger) rather than
// replaying a whole plan via ExecOp.
func (in *Interpreter) Step(ins Instruction) error {
	return in.step(ins)
}

func (in *Interpreter) step(ins Instruction) error {
	switch ins.Kind {
	case CMD:
		return in.m.WriteRegister(chip.Register{Command: ins.Opcode})

	case ADDR:
		for _, a := range ins.Addrs {
			cmd := in.currentAddrCommand()
			if err := in.m.WriteRegister(chip.Register{Command: cmd, Address: a}); err != nil {
				return err
			}
		}
		return nil

	case DataIn:
		// Every Command==Dummy write the chip sees is a real data byte
		// that consumes a cursor position: there is no separate
		// "announce the command" write, the tag rides along with the
		// first real byte.
		for _, b := range ins.Buf {
			if err := in.m.WriteRegister(chip.Register{Command: chip.Dummy, Data: b}); err != nil {
				return err
			}
		}
		return nil

	case DataOut:
		for i := range ins.Buf {
			ins.Buf[i] = in.m.ReadRegister().Data
		}
		return nil

	case WAIT:
		deadline := time.Now().Add(ins.Timeout)
		for {
			if in.m.Pins().Get(chip.Status) == gpio.Low {
				return nil
			}
			if time.Now().After(deadline) {
				return ErrTimeout
			}
			time.Sleep(pollInterval)
		}
	}
	return nil
}

// currentAddrCommand reports which *_SETUP opcode is driving the
// address-loading chain the machine is presently in, so ADDR can resend
// it alongside each address byte exactly as the jump-table driver's
// shadow register does.
func (in *Interpreter) currentAddrCommand() chip.Command {
	switch in.m.State() {
	case chip.ReadAwaitBlock, chip.ReadAwaitPage, chip.ReadAwaitByte:
		return chip.ReadSetup
	case chip.ProgAwaitBlock, chip.ProgAwaitPage, chip.ProgAwaitByte:
		return chip.ProgramSetup
	case chip.EraseAwaitBlock:
		return chip.EraseSetup
	default:
		return chip.Dummy
	}
}
