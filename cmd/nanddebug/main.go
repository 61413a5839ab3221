/*
 * nandsim - Single-step plan debugger.
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

// nanddebug is a TUI that single-steps a read, write, or erase plan
// against an in-process chip.Machine, showing the instruction list and the
// parser state after every step. The cursor, cache, and deadline are not
// displayed.
package main

import (
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/driver/execop"
	"github.com/nandsim/nandsim/framework"
)

func main() {
	op := getopt.StringLong("op", 'o', "write", "operation to step through: read, write, erase")
	offset := getopt.IntLong("offset", 'O', 0, "byte offset")
	size := getopt.IntLong("size", 's', 256, "byte count")
	getopt.Parse()

	m := chip.New(chip.DefaultGeometry, nil)

	// Plan construction only decomposes the offset against the geometry;
	// it never touches the driver surface, so a nil JumpTableDriver is fine.
	fw := framework.New(chip.DefaultGeometry, nil)

	buf := make([]byte, *size)
	for i := range buf {
		buf[i] = 0xA5
	}

	var plan framework.Plan
	switch *op {
	case "read":
		plan = fw.PlanRead(buf, *offset, *size)
	case "write":
		plan = fw.PlanWrite(buf, *offset, *size)
	case "erase":
		plan = fw.PlanErase(*offset, *size)
	default:
		fmt.Fprintf(os.Stderr, "unknown op %q: want read, write, or erase\n", *op)
		os.Exit(1)
	}

	interp := execop.NewInterpreter(m)
	if err := runProgram(m, interp, plan); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
