/*
 * nandsim - Main process.
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

// nandctl starts an interactive console session against a simulated NAND
// flash device: a chip.Machine wrapped by the configured driver surface
// and exposed through framework operations.
package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/nandsim/nandsim/chip"
	"github.com/nandsim/nandsim/config"
	"github.com/nandsim/nandsim/console/parser"
	"github.com/nandsim/nandsim/console/reader"
	"github.com/nandsim/nandsim/driver"
	"github.com/nandsim/nandsim/driver/execop"
	"github.com/nandsim/nandsim/framework"
	"github.com/nandsim/nandsim/internal/logging"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror debug-level records to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile *os.File
	if *optLogFile != "" {
		var err error
		logFile, err = os.Create(*optLogFile)
		if err != nil {
			fatal("cannot create log file: " + err.Error())
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = logging.New(logFile, programLevel, *optDebug)
	slog.SetDefault(Logger)

	Logger.Info("nandctl started")

	cfg := config.Default()
	if *optConfig != "" {
		f, err := os.Open(*optConfig)
		if err != nil {
			fatal("cannot open configuration file: " + err.Error())
		}
		defer f.Close()
		cfg, err = config.Parse(f)
		if err != nil {
			fatal(err.Error())
		}
	}

	m := chip.New(cfg.Geometry, Logger)
	cfg.Apply(m)

	var fw *framework.Framework
	switch cfg.Driver {
	case config.ExecOp:
		fw = framework.NewExecOp(cfg.Geometry, execop.NewInterpreter(m))
		Logger.Info("driver surface: exec-op")
	default:
		fw = framework.New(cfg.Geometry, driver.NewChip(m))
		Logger.Info("driver surface: jump-table")
	}

	sess := &parser.Session{FW: fw, M: m}
	reader.ConsoleReader(sess)

	Logger.Info("nandctl exiting")
}

func fatal(msg string) {
	if Logger != nil {
		Logger.Error(msg)
	}
	os.Exit(1)
}
