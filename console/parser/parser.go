/*
 * nandsim - Command parser.
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

// Package parser implements the interactive console's command language:
// a line of text naming an (abbreviatable) command plus arguments,
// dispatched against a Session wrapping a framework.Framework and its
// chip.Machine.
package parser

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/framework"
	"periph.io/x/conn/v3/gpio"
)

// Session is the state a console command line runs against.
type Session struct {
	FW *framework.Framework
	M  *chip.Machine
}

type cmd struct {
	name     string
	min      int
	process  func(*cmdLine, *Session) (bool, error)
	complete func(*cmdLine) []string
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "read", min: 1, process: read},
	{name: "write", min: 1, process: write},
	{name: "erase", min: 1, process: erase},
	{name: "status", min: 2, process: status},
	{name: "reset", min: 3, process: reset},
	{name: "quit", min: 1, process: quit},
	{name: "help", min: 1, process: help, complete: helpComplete},
}

// ProcessCommand dispatches one line of input against sess, returning
// true if the session should exit.
func ProcessCommand(commandLine string, sess *Session) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return match[0].process(&line, sess)
}

// CompleteCmd returns the completions for commandLine, for use as a
// line editor's tab-completer.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	if !line.isEOL() && line.line[line.pos] == ' ' {
		line.skipSpace()
		match := matchList(name)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}
		return match[0].complete(&line)
	}

	match := matchList(name)
	names := make([]string, len(match))
	for i, m := range match {
		names[i] = m.name
	}
	return names
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	l := 0
	for l = range len(name) {
		if m.name[l] != name[l] {
			return false
		}
	}
	return (l + 1) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line) || l.line[l.pos] == '#'
}

func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && !unicode.IsSpace(rune(l.line[l.pos])) && l.line[l.pos] != '#' {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

func (l *cmdLine) getInt() (int, error) {
	w := l.getWord()
	if w == "" {
		return 0, errors.New("expected a number")
	}
	base := 10
	if strings.HasPrefix(w, "0x") {
		w = w[2:]
		base = 16
	}
	n, err := strconv.ParseInt(w, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", w, err)
	}
	return int(n), nil
}

func read(l *cmdLine, sess *Session) (bool, error) {
	offset, err := l.getInt()
	if err != nil {
		return false, err
	}
	size, err := l.getInt()
	if err != nil {
		return false, err
	}
	buf := make([]byte, size)
	if err := sess.FW.Read(buf, offset, size); err != nil {
		return false, err
	}
	fmt.Println(hex.Dump(buf))
	return false, nil
}

func write(l *cmdLine, sess *Session) (bool, error) {
	offset, err := l.getInt()
	if err != nil {
		return false, err
	}
	l.skipSpace()
	data := strings.TrimSpace(l.line[l.pos:])
	buf, err := hex.DecodeString(data)
	if err != nil {
		return false, fmt.Errorf("invalid hex data: %w", err)
	}
	return false, sess.FW.Write(buf, offset, len(buf))
}

func erase(l *cmdLine, sess *Session) (bool, error) {
	offset, err := l.getInt()
	if err != nil {
		return false, err
	}
	size, err := l.getInt()
	if err != nil {
		return false, err
	}
	return false, sess.FW.Erase(offset, size)
}

func status(_ *cmdLine, sess *Session) (bool, error) {
	fmt.Printf("state: %s  busy: %v\n", sess.M.State(), sess.M.Pins().Get(chip.Status) == gpio.High)
	return false, nil
}

func reset(_ *cmdLine, sess *Session) (bool, error) {
	sess.M.Pins().Set(chip.Reset, gpio.High)
	return false, nil
}

func quit(_ *cmdLine, _ *Session) (bool, error) {
	return true, nil
}

func help(_ *cmdLine, _ *Session) (bool, error) {
	fmt.Println("commands: read <offset> <size>, write <offset> <hex>, erase <offset> <size>, status, reset, quit")
	return false, nil
}

func helpComplete(_ *cmdLine) []string {
	names := make([]string, len(cmdList))
	for i, m := range cmdList {
		names[i] = m.name
	}
	return names
}
