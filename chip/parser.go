/*
 * nandsim - Command parser state machine.
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

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// State is one of the parser's 13 discrete states.
type State int

const (
	Idle State = iota
	ReadAwaitBlock
	ReadAwaitPage
	ReadAwaitByte
	ReadAwaitExec
	ReadProvidingData
	ProgAwaitBlock
	ProgAwaitPage
	ProgAwaitByte
	ProgAcceptingData
	EraseAwaitBlock
	EraseAwaitExec
	Bug
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case ReadAwaitBlock:
		return "READ_AWAIT_BLOCK"
	case ReadAwaitPage:
		return "READ_AWAIT_PAGE"
	case ReadAwaitByte:
		return "READ_AWAIT_BYTE"
	case ReadAwaitExec:
		return "READ_AWAIT_EXEC"
	case ReadProvidingData:
		return "READ_PROVIDING_DATA"
	case ProgAwaitBlock:
		return "PROG_AWAIT_BLOCK"
	case ProgAwaitPage:
		return "PROG_AWAIT_PAGE"
	case ProgAwaitByte:
		return "PROG_AWAIT_BYTE"
	case ProgAcceptingData:
		return "PROG_ACCEPTING_DATA"
	case EraseAwaitBlock:
		return "ERASE_AWAIT_BLOCK"
	case EraseAwaitExec:
		return "ERASE_AWAIT_EXEC"
	case Bug:
		return "BUG"
	default:
		return "UNKNOWN"
	}
}

// Fixed busy durations, per the timing model. Drivers should time out at
// 110% of these.
const (
	DurationRead    = 100 * time.Microsecond
	DurationProgram = 600 * time.Microsecond
	DurationErase   = 2000 * time.Microsecond
	DurationReset   = 500 * time.Microsecond
)

// ErrBug reports that the parser has entered the fatal BUG state: a
// protocol violation the real device would treat as a hardware contract
// breach. There is no recovery; the caller should terminate.
var ErrBug = errors.New("chip: protocol violation, device entered BUG state")

// Machine is the command parser / state machine together with the
// storage, cache, cursor, and deadline it drives. It is the heart of the
// emulator: every host register access passes through WriteRegister or
// ReadRegister.
type Machine struct {
	mu sync.Mutex

	geom     Geometry
	clock    *Clock
	deadline *Deadline
	cursor   Cursor
	cache    *Cache
	storage  *Storage
	pins     *Pins
	log      *slog.Logger

	state        State
	activeSetup  Command
	pendingReply Register

	durations timingModel
}

// timingModel holds the busy durations armed by each operation. It
// defaults to the fixed durations of §4.1 but can be overridden with
// SetTiming to model other parts (see config/flashprofile).
type timingModel struct {
	read, program, erase, reset time.Duration
}

// New constructs a fresh machine in IDLE state for the given geometry.
func New(geom Geometry, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}
	m := &Machine{
		geom:    geom,
		clock:   NewClock(),
		cache:   NewCache(geom),
		storage: NewStorage(geom),
		state:   Idle,
		log:     log,
		durations: timingModel{
			read:    DurationRead,
			program: DurationProgram,
			erase:   DurationErase,
			reset:   DurationReset,
		},
	}
	m.cursor = NewCursor(geom)
	m.deadline = NewDeadline(m.clock)
	m.pins = newPins(m)
	return m
}

// SetTiming overrides the busy durations armed by read, program, erase,
// and reset operations, e.g. to install a named flashprofile.Profile.
func (m *Machine) SetTiming(read, program, erase, reset time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations = timingModel{read: read, program: program, erase: erase, reset: reset}
}

// Pins returns the STATUS/RESET pin interface for this machine.
func (m *Machine) Pins() *Pins { return m.pins }

// State returns the machine's current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Bugged reports whether the machine has entered BUG.
func (m *Machine) Bugged() bool {
	return m.State() == Bug
}

// clearState zeroes the cursor, deadline, and cache, per §4.2's "clear
// state" definition.
func (m *Machine) clearState() {
	m.cursor.Clear()
	m.deadline.Clear()
	m.cache.Clear()
	m.pendingReply = Register{}
}

// resetPulse implements pin_set(RESET, nonzero): clear full state, return
// to IDLE, and arm the reset deadline.
func (m *Machine) resetPulse() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearState()
	m.state = Idle
	m.activeSetup = 0
	m.deadline.Arm(m.durations.reset)
	m.log.Debug("reset pulse", "state", m.state.String())
}

// awaitBlockFor returns the AWAIT_BLOCK state that begins cmd's address
// chain.
func awaitBlockFor(cmd Command) State {
	switch cmd {
	case ReadSetup:
		return ReadAwaitBlock
	case ProgramSetup:
		return ProgAwaitBlock
	case EraseSetup:
		return EraseAwaitBlock
	default:
		return Bug
	}
}

// restart clears state and begins a fresh address-loading chain for a
// newly observed *_SETUP command. Used both from IDLE and as the "any
// *_SETUP always redirects" escape hatch from every other live state.
func (m *Machine) restart(cmd Command) {
	m.clearState()
	m.activeSetup = cmd
	m.state = awaitBlockFor(cmd)
}

// WriteRegister processes a host write of a full register word and
// returns ErrBug if the machine enters (or already occupies) the fatal
// BUG state.
func (m *Machine) WriteRegister(r Register) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Bug {
		return ErrBug
	}

	if m.deadline.Busy() && !r.Command.isSetup() {
		m.state = Bug
		m.log.Error("command while busy", "command", r.Command.String(), "state", m.state.String())
		return ErrBug
	}

	switch m.state {
	case Idle:
		if r.Command.isSetup() {
			m.restart(r.Command)
			return nil
		}

	case ReadAwaitBlock, ReadAwaitPage, ReadAwaitByte:
		if r.Command.isSetup() {
			if r.Command != m.activeSetup {
				m.restart(r.Command)
				return nil
			}
			m.loadAddressByte(r.Address)
			return nil
		}

	case ReadAwaitExec:
		if r.Command == ReadExecute {
			m.deadline.Arm(m.durations.read)
			m.cache.LoadPage(m.storage, m.cursor.Block, m.cursor.Page)
			m.state = ReadProvidingData
			m.pendingReply = Register{Command: Dummy}
			return nil
		}
		if r.Command.isSetup() {
			m.restart(r.Command)
			return nil
		}

	case ReadProvidingData:
		if r.Command == ReadExecute {
			m.deadline.Arm(m.durations.read)
			m.cache.LoadPage(m.storage, m.cursor.Block, m.cursor.Page)
			return nil
		}
		if r.Command.isSetup() {
			m.restart(r.Command)
			return nil
		}

	case ProgAwaitBlock, ProgAwaitPage, ProgAwaitByte:
		if r.Command.isSetup() {
			if r.Command != m.activeSetup {
				m.restart(r.Command)
				return nil
			}
			m.loadAddressByte(r.Address)
			return nil
		}

	case ProgAcceptingData:
		if r.Command == Dummy {
			m.cache.SetByteAt(m.cursor.Byte, r.Data)
			m.cursor.AdvanceByte(true)
			return nil
		}
		if r.Command == ProgramExecute {
			m.deadline.Arm(m.durations.program)
			m.cache.FlushPage(m.storage, m.cursor.Block, m.cursor.Page)
			m.cache.Clear()
			m.cursor.AdvancePage()
			m.pendingReply = Register{Command: Dummy}
			return nil
		}
		if r.Command.isSetup() {
			m.restart(r.Command)
			return nil
		}

	case EraseAwaitBlock:
		if r.Command == EraseSetup {
			m.cursor.Block = int(r.Address) % m.geom.NumBlocks
			m.state = EraseAwaitExec
			return nil
		}
		if r.Command.isSetup() {
			m.restart(r.Command)
			return nil
		}

	case EraseAwaitExec:
		if r.Command == EraseExecute {
			m.deadline.Arm(m.durations.erase)
			m.storage.EraseBlock(m.cursor.Block)
			m.pendingReply = Register{Command: Dummy}
			m.cursor.AdvanceBlock()
			return nil
		}
		if r.Command.isSetup() {
			m.restart(r.Command)
			return nil
		}
	}

	m.state = Bug
	m.log.Error("unexpected command", "command", r.Command.String(), "state", m.state.String())
	return ErrBug
}

// loadAddressByte stores r's address byte into the cursor field named by
// the current AWAIT state and advances to the next link in the chain.
// The three READ/PROG address-loading chains are structurally identical;
// only the final step differs (READ has an explicit AWAIT_EXEC, PROG
// instead opens the data-streaming state directly).
func (m *Machine) loadAddressByte(addr byte) {
	isRead := m.activeSetup == ReadSetup

	switch m.state {
	case ReadAwaitBlock, ProgAwaitBlock:
		m.cursor.Block = int(addr) % m.geom.NumBlocks
		if isRead {
			m.state = ReadAwaitPage
		} else {
			m.state = ProgAwaitPage
		}
	case ReadAwaitPage, ProgAwaitPage:
		m.cursor.Page = int(addr) % m.geom.NumPages
		if isRead {
			m.state = ReadAwaitByte
		} else {
			m.state = ProgAwaitByte
		}
	case ReadAwaitByte:
		m.cursor.Byte = int(addr) % m.geom.NumBytes
		m.state = ReadAwaitExec
	case ProgAwaitByte:
		m.cursor.Byte = int(addr) % m.geom.NumBytes
		m.state = ProgAcceptingData
		m.pendingReply = Register{Command: Dummy}
	}
}

// ReadRegister processes a host read of the register word. In
// READ_PROVIDING_DATA, each read synthesizes the next cache byte and
// advances the cursor (§4.6); elsewhere it returns the last value the
// parser pushed in response to a write.
func (m *Machine) ReadRegister() Register {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != ReadProvidingData {
		return m.pendingReply
	}

	b := m.cache.ByteAt(m.cursor.Byte)
	m.cursor.AdvanceByte(false)
	return Register{Command: Dummy, Data: b}
}
