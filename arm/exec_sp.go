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

// execSPRelativeLoadStore implements `1001 L Rd Off8`: word load/store
// relative to SP.
func execSPRelativeLoadStore(c *CPU, instr uint16) error {
	l := (instr >> 11) & 1
	rd := int((instr >> 8) & 0x7)
	off8 := uint32(instr & 0xFF)

	addr := c.Regs.Get(SP) + off8*4

	if l == 0 {
		c.MMU.Write32(addr, c.Regs.Get(rd))
	} else {
		c.SetRegister(rd, c.MMU.Read32(addr))
	}
	return nil
}

// execLoadAddress implements `1010 SP Rd Off8`: load a PC- or SP-relative
// address into Rd, without touching memory.
func execLoadAddress(c *CPU, instr uint16) error {
	spSel := (instr >> 11) & 1
	rd := int((instr >> 8) & 0x7)
	off8 := uint32(instr & 0xFF)

	var result uint32
	if spSel == 0 {
		pc := c.Regs.Get(PC)
		result = (pc &^ 3) + (off8 << 2)
	} else {
		result = c.Regs.Get(SP) + (off8 << 2)
	}
	c.SetRegister(rd, result)
	return nil
}

// execAddSubSPImm7 implements `10110000 S Off7`: adjust SP by a signed
// 7-bit offset scaled by 4. No flags are affected.
func execAddSubSPImm7(c *CPU, instr uint16) error {
	s := (instr >> 7) & 1
	off7 := uint32(instr & 0x7F)
	offset := off7 << 2

	sp := c.Regs.Get(SP)
	if s == 0 {
		c.Regs.Set(SP, sp+offset)
	} else {
		c.Regs.Set(SP, sp-offset)
	}
	return nil
}
