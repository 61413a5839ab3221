/*
 * nandsim - Register word.
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

import "fmt"

// Command is the upper byte of a register word.
type Command byte

const (
	ReadSetup      Command = 1
	ReadExecute    Command = 2
	ProgramSetup   Command = 3
	ProgramExecute Command = 4
	EraseSetup     Command = 5
	EraseExecute   Command = 6
	Dummy          Command = 7
)

func (c Command) String() string {
	switch c {
	case ReadSetup:
		return "READ_SETUP"
	case ReadExecute:
		return "READ_EXECUTE"
	case ProgramSetup:
		return "PROGRAM_SETUP"
	case ProgramExecute:
		return "PROGRAM_EXECUTE"
	case EraseSetup:
		return "ERASE_SETUP"
	case EraseExecute:
		return "ERASE_EXECUTE"
	case Dummy:
		return "DUMMY"
	default:
		return fmt.Sprintf("Command(%d)", byte(c))
	}
}

// isSetup reports whether c is one of the three *_SETUP opcodes, the only
// commands allowed to interrupt a busy device.
func (c Command) isSetup() bool {
	return c == ReadSetup || c == ProgramSetup || c == EraseSetup
}

// Register is the 24-bit logical word exchanged between driver and chip:
// command in bits 23..16, address in bits 15..8, data in bits 7..0.
type Register struct {
	Command Command
	Address byte
	Data    byte
}

// Pack folds the register into a 24-bit machine word.
func (r Register) Pack() uint32 {
	return uint32(r.Command)<<16 | uint32(r.Address)<<8 | uint32(r.Data)
}

// UnpackRegister splits a 24-bit machine word into its three fields.
func UnpackRegister(word uint32) Register {
	return Register{
		Command: Command(byte(word >> 16)),
		Address: byte(word >> 8),
		Data:    byte(word),
	}
}
