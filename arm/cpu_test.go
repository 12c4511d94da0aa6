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

package arm

import "testing"

func newTestCPU(codeSize, sramSize int) *CPU {
	mmu := NewMMU(make([]byte, codeSize), make([]byte, sramSize), nil)
	return NewCPU(mmu, nil, DefaultPreferences())
}

// TestMovAdd is scenario S1.
func TestMovAdd(t *testing.T) {
	cpu := newTestCPU(256, 64)
	cpu.MMU.Write32(PCInitAddress, 0x58)
	cpu.MMU.Write16(0x58, 0x200C) // MOV R0,#12
	cpu.MMU.Write16(0x5A, 0x2101) // MOV R1,#1
	cpu.MMU.Write16(0x5C, 0x1840) // ADD R0,R1

	cpu.Reset()
	if err := cpu.RunN(3); err != nil {
		t.Fatalf("RunN: %v", err)
	}

	if got := cpu.Regs.Get(0); got != 13 {
		t.Errorf("R0 = %d, want 13", got)
	}
	if got := cpu.Regs.Get(1); got != 1 {
		t.Errorf("R1 = %d, want 1", got)
	}
	if cpu.PSR.Negative || cpu.PSR.Zero || cpu.PSR.Carry || cpu.PSR.Overflow {
		t.Errorf("flags = %s, want all clear", cpu.PSR.String())
	}
	if !cpu.PSR.Thumb {
		t.Errorf("T flag cleared, want set")
	}
}

// TestMovSubNegative is scenario S2.
func TestMovSubNegative(t *testing.T) {
	cpu := newTestCPU(256, 64)
	cpu.MMU.Write32(PCInitAddress, 0x58)
	cpu.MMU.Write16(0x58, 0x200C) // MOV R0,#12
	cpu.MMU.Write16(0x5A, 0x210D) // MOV R1,#13
	cpu.MMU.Write16(0x5C, 0x1A40) // SUB R0,R1

	cpu.Reset()
	if err := cpu.RunN(3); err != nil {
		t.Fatalf("RunN: %v", err)
	}

	if got := cpu.Regs.Get(0); got != 0xFFFFFFFF {
		t.Errorf("R0 = %#x, want 0xFFFFFFFF", got)
	}
	if got := cpu.Regs.Get(1); got != 13 {
		t.Errorf("R1 = %d, want 13", got)
	}
	if !cpu.PSR.Negative {
		t.Errorf("N flag clear, want set")
	}
	if cpu.PSR.Zero || cpu.PSR.Carry || cpu.PSR.Overflow {
		t.Errorf("flags = %s, want only N set", cpu.PSR.String())
	}
	if !cpu.PSR.Thumb {
		t.Errorf("T flag cleared, want set")
	}
}

// TestCountdownLoopWithBX is scenario S3: a hand-written loop that uses
// MOV Rd,PC to capture a Thumb-marked return address and BX to branch back
// to it, decrementing R0 until it hits zero.
func TestCountdownLoopWithBX(t *testing.T) {
	cpu := newTestCPU(256, 64)
	cpu.MMU.Write32(PCInitAddress, 0x58)
	cpu.MMU.Write16(0x58, 0x200C) // MOV R0,#12
	cpu.MMU.Write16(0x5A, 0x2101) // MOV R1,#1
	cpu.MMU.Write16(0x5C, 0x467A) // MOV R2,R15
	cpu.MMU.Write16(0x5E, 0x3201) // ADD R2,#1
	cpu.MMU.Write16(0x60, 0x1A40) // SUB R0,R1
	cpu.MMU.Write16(0x62, 0xD000) // BEQ +0
	cpu.MMU.Write16(0x64, 0x4710) // BX R2

	cpu.Reset()
	if err := cpu.RunN(39); err != nil {
		t.Fatalf("RunN: %v", err)
	}

	if got := cpu.Regs.Get(0); got != 0 {
		t.Errorf("R0 = %d, want 0", got)
	}
	if got := cpu.Regs.Get(1); got != 1 {
		t.Errorf("R1 = %d, want 1", got)
	}
	if !cpu.PSR.Zero {
		t.Errorf("Z flag clear, want set")
	}
	// the final SUB computes 1 - 1 without a borrow, so C is set
	if !cpu.PSR.Carry {
		t.Errorf("C flag clear, want set")
	}
	if cpu.PSR.Negative || cpu.PSR.Overflow {
		t.Errorf("flags = %s, want only Z and C set", cpu.PSR.String())
	}
	if !cpu.PSR.Thumb {
		t.Errorf("T flag cleared, want set")
	}
}

// TestThumbStateInvariant is invariant 1: T is true in every reachable
// state, including immediately after reset and after ordinary steps.
func TestThumbStateInvariant(t *testing.T) {
	cpu := newTestCPU(256, 64)
	cpu.MMU.Write32(PCInitAddress, 0x58)
	cpu.MMU.Write16(0x58, 0x200C)
	cpu.MMU.Write16(0x5A, 0x46C0) // NOP (MOV R8,R8)

	cpu.Reset()
	if !cpu.PSR.Thumb {
		t.Fatalf("T flag clear immediately after reset")
	}
	for i := 0; i < 2; i++ {
		if err := cpu.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if !cpu.PSR.Thumb {
			t.Fatalf("T flag clear after step %d", i)
		}
	}
}

// TestPrefetchInvariant is invariant 2: after any step, the prefetch slots
// mirror what the MMU holds at the (possibly just-branched) PC.
func TestPrefetchInvariant(t *testing.T) {
	cpu := newTestCPU(256, 64)
	cpu.MMU.Write32(PCInitAddress, 0x58)
	cpu.MMU.Write16(0x58, 0x200C)
	cpu.MMU.Write16(0x5A, 0x2101)
	cpu.MMU.Write16(0x5C, 0x1840)

	cpu.Reset()
	if err := cpu.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	nextPC := cpu.Regs.Get(PC) - 2
	if got := cpu.prefetch[0]; got != cpu.MMU.Read16(nextPC) {
		t.Errorf("prefetch[0] = %#04x, want %#04x", got, cpu.MMU.Read16(nextPC))
	}
	if got := cpu.prefetch[1]; got != cpu.MMU.Read16(nextPC+2) {
		t.Errorf("prefetch[1] = %#04x, want %#04x", got, cpu.MMU.Read16(nextPC+2))
	}
}

func TestUnsupportedModeTransitionIsFatal(t *testing.T) {
	cpu := newTestCPU(256, 64)
	cpu.MMU.Write32(PCInitAddress, 0x58)
	cpu.MMU.Write16(0x58, 0x4700) // BX R0, R0 == 0 (even address -> ARM state)

	cpu.Reset()
	err := cpu.Step()
	if err == nil {
		t.Fatalf("expected a mode-transition error, got nil")
	}
}

func TestUnimplementedInstructionIsReported(t *testing.T) {
	cpu := newTestCPU(256, 64)
	cpu.MMU.Write32(PCInitAddress, 0x58)
	// WFE decodes to the WFI/WFE stub form; with HaltOnUnimplemented left at
	// its default, executing it returns an error.
	cpu.MMU.Write16(0x58, 0xBF20) // WFE

	cpu.Reset()
	err := cpu.Step()
	if err == nil {
		t.Fatalf("expected an unimplemented-instruction error, got nil")
	}
}
