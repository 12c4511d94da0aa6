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

// execPCRelativeLoad implements `01001 Rd Off8`: a word load relative to
// the word-aligned PC.
func execPCRelativeLoad(c *CPU, instr uint16) error {
	rd := int((instr >> 8) & 0x7)
	off8 := uint32(instr & 0xFF)

	pc := c.Regs.Get(PC)
	addr := (pc &^ 3) + (off8 << 2)
	c.SetRegister(rd, c.MMU.Read32(addr))
	return nil
}

// execLoadStoreRegOffset implements `0101 L B 0 Ro Rb Rd`: word/byte
// load/store at a register-plus-register address.
func execLoadStoreRegOffset(c *CPU, instr uint16) error {
	l := (instr >> 11) & 1
	b := (instr >> 10) & 1
	ro := int((instr >> 6) & 0x7)
	rb := int((instr >> 3) & 0x7)
	rd := int(instr & 0x7)

	addr := c.Regs.Get(rb) + c.Regs.Get(ro)

	switch {
	case l == 0 && b == 0: // STR
		c.MMU.Write32(addr, c.Regs.Get(rd))
	case l == 0 && b == 1: // STRB
		c.MMU.Write8(addr, Byte(c.Regs.Get(rd), 0))
	case l == 1 && b == 0: // LDR
		c.SetRegister(rd, c.MMU.Read32(addr))
	case l == 1 && b == 1: // LDRB
		c.SetRegister(rd, uint32(c.MMU.Read8(addr)))
	}
	return nil
}

// execLoadStoreSignExtended implements `0101 H S 1 Ro Rb Rd`: halfword
// store/load and sign-extended byte/halfword load.
func execLoadStoreSignExtended(c *CPU, instr uint16) error {
	h := (instr >> 11) & 1
	s := (instr >> 10) & 1
	ro := int((instr >> 6) & 0x7)
	rb := int((instr >> 3) & 0x7)
	rd := int(instr & 0x7)

	addr := c.Regs.Get(rb) + c.Regs.Get(ro)

	switch {
	case h == 0 && s == 0: // STRH
		c.MMU.Write16(addr, Halfword(c.Regs.Get(rd), 0))
	case h == 0 && s == 1: // LDRH
		c.SetRegister(rd, uint32(c.MMU.Read16(addr)))
	case h == 1 && s == 0: // LDSB
		c.SetRegister(rd, signExtend8(c.MMU.Read8(addr)))
	case h == 1 && s == 1: // LDSH
		c.SetRegister(rd, uint32(c.MMU.Read16Signed(addr)))
	}
	return nil
}

// execLoadStoreImmOffset implements `011 B L Off5 Rb Rd`. Word accesses
// scale the 5-bit offset by 4; byte accesses use it unscaled (§9's
// correction of the original source's bit-shift).
func execLoadStoreImmOffset(c *CPU, instr uint16) error {
	b := (instr >> 12) & 1
	l := (instr >> 11) & 1
	off5 := uint32((instr >> 6) & 0x1F)
	rb := int((instr >> 3) & 0x7)
	rd := int(instr & 0x7)

	var addr uint32
	if b == 0 {
		addr = c.Regs.Get(rb) + off5*4
	} else {
		addr = c.Regs.Get(rb) + off5
	}

	switch {
	case b == 0 && l == 0: // STR
		c.MMU.Write32(addr, c.Regs.Get(rd))
	case b == 0 && l == 1: // LDR
		c.SetRegister(rd, c.MMU.Read32(addr))
	case b == 1 && l == 0: // STRB
		c.MMU.Write8(addr, Byte(c.Regs.Get(rd), 0))
	case b == 1 && l == 1: // LDRB
		c.SetRegister(rd, uint32(c.MMU.Read8(addr)))
	}
	return nil
}

// execLoadStoreHalfwordImm implements `1000 L Off5 Rb Rd`: halfword
// load/store with the 5-bit offset scaled by 2.
func execLoadStoreHalfwordImm(c *CPU, instr uint16) error {
	l := (instr >> 11) & 1
	off5 := uint32((instr >> 6) & 0x1F)
	rb := int((instr >> 3) & 0x7)
	rd := int(instr & 0x7)

	addr := c.Regs.Get(rb) + off5*2

	if l == 0 {
		c.MMU.Write16(addr, Halfword(c.Regs.Get(rd), 0))
	} else {
		c.SetRegister(rd, uint32(c.MMU.Read16(addr)))
	}
	return nil
}
