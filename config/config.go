/*
 * nandsim - Configuration file parser.
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

// Package config parses the line-oriented configuration file that
// selects a device's geometry overrides, driver surface, and named
// timing profile.
//
// Format, one directive per line, '#' starts a comment:
//
//	CHIP blocks=<n> pages=<n> bytes=<n>
//	DRIVER jumptable|execop
//	TIMING baseline|fast|compressed
package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/config/flashprofile"
)

// DriverSurface selects which driver style a Config requests.
type DriverSurface int

const (
	JumpTable DriverSurface = iota
	ExecOp
)

// Config is the parsed result of a configuration file.
type Config struct {
	Geometry chip.Geometry
	Driver   DriverSurface
	Timing   flashprofile.Profile
}

// Default returns a Config matching the spec's own baseline assumptions.
func Default() Config {
	return Config{
		Geometry: chip.DefaultGeometry,
		Driver:   JumpTable,
		Timing:   flashprofile.Baseline,
	}
}

// Apply installs cfg's timing profile on m. Geometry and Driver are
// construction-time choices (a Machine's geometry is fixed at New, and
// the driver surface picks which package wraps the Machine) so only
// Timing has anything left to apply post-construction.
func (cfg Config) Apply(m *chip.Machine) {
	m.SetTiming(cfg.Timing.Read, cfg.Timing.Program, cfg.Timing.Erase, cfg.Timing.Reset)
}

// Parse reads directives from r into a Config seeded with Default().
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		directive := strings.ToUpper(fields[0])
		args := fields[1:]

		var err error
		switch directive {
		case "CHIP":
			err = applyChip(&cfg, args)
		case "DRIVER":
			err = applyDriver(&cfg, args)
		case "TIMING":
			err = applyTiming(&cfg, args)
		default:
			err = fmt.Errorf("unknown directive %q", fields[0])
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: line %d: %w", lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}

	if !cfg.Geometry.Valid() {
		return Config{}, fmt.Errorf("config: geometry %+v exceeds 8-bit cursor fields", cfg.Geometry)
	}
	return cfg, nil
}

func applyChip(cfg *Config, args []string) error {
	geom := cfg.Geometry
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("CHIP option %q missing '='", arg)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("CHIP option %q: %w", arg, err)
		}
		switch strings.ToLower(name) {
		case "blocks":
			geom.NumBlocks = n
		case "pages":
			geom.NumPages = n
		case "bytes":
			geom.NumBytes = n
		default:
			return fmt.Errorf("unknown CHIP option %q", name)
		}
	}
	cfg.Geometry = geom
	return nil
}

func applyDriver(cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("DRIVER expects exactly one argument")
	}
	switch strings.ToLower(args[0]) {
	case "jumptable":
		cfg.Driver = JumpTable
	case "execop":
		cfg.Driver = ExecOp
	default:
		return fmt.Errorf("unknown driver surface %q", args[0])
	}
	return nil
}

func applyTiming(cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("TIMING expects exactly one argument")
	}
	cfg.Timing = flashprofile.Lookup(strings.ToLower(args[0]))
	return nil
}
