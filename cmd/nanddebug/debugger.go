/*
 * nandsim - Step-debugger TUI model.
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

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/driver/execop"
	"github.com/nandsim/nandsim/framework"
)

type model struct {
	m       *chip.Machine
	interp  *execop.Interpreter
	plan    framework.Plan
	pc      int
	lastErr error
	done    bool
}

func (md model) Init() tea.Cmd {
	return nil
}

func (md model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return md, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return md, tea.Quit
	case " ", "n":
		if md.done || md.pc >= len(md.plan.Instructions) {
			md.done = true
			return md, nil
		}
		ins := md.plan.Instructions[md.pc]
		if err := md.interp.Step(ins); err != nil {
			md.lastErr = err
			md.done = true
			return md, nil
		}
		md.pc++
		if md.pc >= len(md.plan.Instructions) {
			md.done = true
		}
	}
	return md, nil
}

func (md model) instructionList() string {
	lines := make([]string, len(md.plan.Instructions))
	for i, ins := range md.plan.Instructions {
		marker := "  "
		if i == md.pc {
			marker = "->"
		}
		lines[i] = fmt.Sprintf("%s %3d  %s", marker, i, ins.String())
	}
	return strings.Join(lines, "\n")
}

func (md model) status() string {
	s := fmt.Sprintf("state: %s\n", md.m.State())
	if md.lastErr != nil {
		s += fmt.Sprintf("error: %v\n", md.lastErr)
	}
	if md.done {
		s += "done (q to quit)\n"
	} else {
		s += "space/n: step, q: quit\n"
	}
	return s
}

func (md model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		md.instructionList(),
		"",
		md.status(),
		spew.Sdump(md.m.State()),
	)
}

// runProgram single-steps plan against m's interpreter under a TUI,
// returning the first instruction error encountered, if any.
func runProgram(m *chip.Machine, interp *execop.Interpreter, plan framework.Plan) error {
	final, err := tea.NewProgram(model{m: m, interp: interp, plan: plan}).Run()
	if err != nil {
		return err
	}
	return final.(model).lastErr
}
