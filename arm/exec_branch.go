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

// conditionHolds evaluates one of the fourteen defined Thumb branch
// conditions (cond 14 and 15 are reserved and never hold).
func conditionHolds(p *PSR, cond uint8) bool {
	switch cond {
	case 0: // EQ
		return p.Zero
	case 1: // NE
		return !p.Zero
	case 2: // CS
		return p.Carry
	case 3: // CC
		return !p.Carry
	case 4: // MI
		return p.Negative
	case 5: // PL
		return !p.Negative
	case 6: // VS
		return p.Overflow
	case 7: // VC
		return !p.Overflow
	case 8: // HI
		return p.Carry && !p.Zero
	case 9: // LS
		return !p.Carry || p.Zero
	case 10: // GE
		return p.Negative == p.Overflow
	case 11: // LT
		return p.Negative != p.Overflow
	case 12: // GT
		return !p.Zero && p.Negative == p.Overflow
	case 13: // LE
		return p.Zero || p.Negative != p.Overflow
	default:
		return false
	}
}

// execConditionalBranch implements `1101 Cond4 Off8`.
func execConditionalBranch(c *CPU, instr uint16) error {
	cond := uint8((instr >> 8) & 0xF)
	if !conditionHolds(&c.PSR, cond) {
		return nil
	}

	off8 := uint8(instr & 0xFF)
	offset := signExtend8(off8) << 1
	c.Branch(c.Regs.Get(PC) + offset)
	return nil
}

// execUnconditionalBranch implements `11100 Off11`.
func execUnconditionalBranch(c *CPU, instr uint16) error {
	off11 := instr & 0x7FF
	var offset int32
	if off11&0x400 != 0 {
		offset = int32(off11) - 0x800
	} else {
		offset = int32(off11)
	}
	c.Branch(c.Regs.Get(PC) + uint32(offset*2))
	return nil
}

// execLongBranchWithLink implements the two-step BL encoding: the first
// half (H=0) stashes a PC-relative high part in LR; the second half (H=1)
// combines it with the low part, branches, and sets LR to the Thumb-marked
// return address.
func execLongBranchWithLink(c *CPU, instr uint16) error {
	h := (instr >> 11) & 1
	off11 := uint32(instr & 0x7FF)

	if h == 0 {
		var offsetHi int32
		if off11&0x400 != 0 {
			offsetHi = int32(off11) - 0x800
		} else {
			offsetHi = int32(off11)
		}
		pc := c.Regs.Get(PC)
		c.Regs.Set(LR, pc+uint32(offsetHi<<12))
		return nil
	}

	lr := c.Regs.Get(LR)
	target := (lr + (off11 << 1)) &^ 1
	returnAddr := c.Regs.Get(PC) - 2
	c.Regs.Set(LR, returnAddr|1)
	c.Branch(target)
	return nil
}
