// This file is part of emulator_m0.
//
// emulator_m0 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emulator_m0 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emulator_m0.  If not, see <https://www.gnu.org/licenses/>.

// Package arm implements the fetch/decode/execute pipeline for a Cortex-M0
// class core running the 16-bit Thumb instruction set: the register file
// and PSR, the two-slot prefetch queue, the MMU and peripheral registry, and
// the executors for every Thumb instruction form.
package arm

import (
	"fmt"

	"github.com/m0sim/emulator_m0/logger"
)

// CPU is a complete emulator instance: register file, status register,
// prefetch queue, and the MMU it reads and writes through. An instance owns
// its MMU and register file exclusively for its entire lifetime and does no
// locking, so it is not safe for concurrent use.
type CPU struct {
	Regs Registers
	PSR  PSR
	MMU  *MMU

	prefetch [2]uint16

	halted bool

	Log   *logger.Logger
	Prefs Preferences
}

// NewCPU creates a CPU driving the given MMU. log may be nil, in which case
// diagnostic events are simply not recorded.
func NewCPU(mmu *MMU, log *logger.Logger, prefs Preferences) *CPU {
	return &CPU{
		MMU:   mmu,
		Log:   log,
		Prefs: prefs,
	}
}

// Reset performs the §4.7 reset sequence: NZCV cleared, T set, registers
// zeroed, PC loaded from the reset vector, and both prefetch slots filled.
func (c *CPU) Reset() {
	c.PSR.Reset()
	c.halted = false

	for i := 0; i < NumRegisters; i++ {
		c.Regs.Set(i, 0)
	}

	nextPC := c.MMU.Read32(PCInitAddress)
	c.prefetch[0] = c.MMU.Read16(nextPC)
	c.prefetch[1] = c.MMU.Read16(nextPC + 2)
	c.Regs.Set(PC, nextPC+2)
}

// Halted reports whether the run loop should stop before the next step.
func (c *CPU) Halted() bool {
	return c.halted
}

// Halt marks the CPU as halted; Run and RunN stop after the current step.
func (c *CPU) Halt() {
	c.halted = true
}

// SetRegister writes v to register n, routing writes that target PC through
// Branch so the prefetch queue and architectural PC view stay consistent.
// Executors whose destination can be PC go through this (design note, §9
// "PC write as side effect"); writes that can only target a low register,
// SP or LR call Regs.Set directly.
func (c *CPU) SetRegister(n int, v uint32) {
	if n == PC {
		c.Branch(v)
		return
	}
	c.Regs.Set(n, v)
}

// Branch implements the §4.4 register-write-to-PC sequence: clear the low
// bit, refill both prefetch slots from the new address, and set R15 to
// next_pc+2 so the architectural PC read convention holds for the
// instructions about to execute. Executors that need the BX/BLX "must stay
// in Thumb state" check perform it themselves before calling Branch.
func (c *CPU) Branch(addr uint32) {
	target := addr &^ 1
	c.prefetch[0] = c.MMU.Read16(target)
	c.prefetch[1] = c.MMU.Read16(target + 2)
	c.Regs.Set(PC, target+2)
}

// Step executes exactly one instruction per the §4.7 sequence, unless the
// CPU is already halted.
func (c *CPU) Step() error {
	if c.halted {
		return nil
	}

	instr := c.prefetch[0]
	c.prefetch[0] = c.prefetch[1]

	oldPC := c.Regs.Get(PC)
	instrAddr := oldPC - 2
	c.Regs.Set(PC, oldPC+2)
	c.prefetch[1] = c.MMU.Read16(oldPC + 2)

	if c.Prefs.Verbose {
		fmt.Printf("%#08x: %#04x\n", instrAddr, instr)
	}

	return c.execute(instr, instrAddr)
}

// RunN steps the CPU up to n times, stopping early if the CPU halts or an
// executor returns an error.
func (c *CPU) RunN(n int) error {
	for i := 0; i < n; i++ {
		if c.halted {
			return nil
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run steps the CPU until it halts or an executor returns an error.
func (c *CPU) Run() error {
	for !c.halted {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// execute dispatches a decoded instruction to its executor.
func (c *CPU) execute(instr uint16, instrAddr uint32) error {
	switch Decode(instr) {
	case FormMoveShiftedRegister:
		return execMoveShiftedRegister(c, instr)
	case FormAddSub:
		return execAddSub(c, instr)
	case FormImmediate8:
		return execImmediate8(c, instr)
	case FormALU:
		return execALU(c, instr)
	case FormHiRegisterOps:
		return execHiRegisterOps(c, instr, instrAddr)
	case FormPCRelativeLoad:
		return execPCRelativeLoad(c, instr)
	case FormLoadStoreRegOffset:
		return execLoadStoreRegOffset(c, instr)
	case FormLoadStoreSignExtended:
		return execLoadStoreSignExtended(c, instr)
	case FormLoadStoreImmOffset:
		return execLoadStoreImmOffset(c, instr)
	case FormLoadStoreHalfwordImm:
		return execLoadStoreHalfwordImm(c, instr)
	case FormSPRelativeLoadStore:
		return execSPRelativeLoadStore(c, instr)
	case FormLoadAddress:
		return execLoadAddress(c, instr)
	case FormAddSubSPImm7:
		return execAddSubSPImm7(c, instr)
	case FormPushPop:
		return execPushPop(c, instr)
	case FormLDMSTM:
		return execLDMSTM(c, instr)
	case FormConditionalBranch:
		return execConditionalBranch(c, instr)
	case FormUnconditionalBranch:
		return execUnconditionalBranch(c, instr)
	case FormLongBranchWithLink:
		return execLongBranchWithLink(c, instr)
	case FormNOP:
		return nil
	case FormSVC:
		return c.unimplemented("SVC", instr, instrAddr)
	case FormBKPT:
		return c.unimplemented("BKPT", instr, instrAddr)
	case FormSEV:
		return c.unimplemented("SEV", instr, instrAddr)
	case FormWFIE:
		return c.unimplemented("WFI/WFE", instr, instrAddr)
	case FormCPSIDE:
		return c.unimplemented("CPSID/CPSIE", instr, instrAddr)
	default:
		if c.Log != nil {
			c.Log.Log(logger.Allow, "arm", errIllegal(instr, instrAddr))
		}
		return errIllegal(instr, instrAddr)
	}
}

// unimplemented handles the stub forms: NOP is a true no-op but
// SVC/BKPT/SEV/WFI/WFE/CPSID/CPSIE are either fatal or a logged no-op,
// controlled by Prefs.HaltOnUnimplemented. The decode table has no rows for
// the barrier or sign/zero-extend instructions, so they never reach here; a
// sign/zero-extend opcode decodes as illegal.
func (c *CPU) unimplemented(name string, instr uint16, instrAddr uint32) error {
	err := errUnimplemented(name, instr, instrAddr)
	if c.Log != nil {
		c.Log.Log(logger.Allow, "arm", err)
	}
	if c.Prefs.HaltOnUnimplemented {
		return err
	}
	return nil
}
