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

// execImmediate8 implements `001 Op Rd Off8`: MOV/CMP/ADD/SUB against an
// 8-bit immediate. MOV only updates N (always cleared) and Z; the
// arithmetic forms update all four flags.
func execImmediate8(c *CPU, instr uint16) error {
	op := (instr >> 11) & 0x3
	rd := int((instr >> 8) & 0x7)
	imm := uint32(instr & 0xFF)

	a := c.Regs.Get(rd)

	switch op {
	case 0b00: // MOV
		c.SetRegister(rd, imm)
		c.PSR.Negative = false
		c.PSR.Zero = zero(imm)
	case 0b01: // CMP
		result := a - imm
		c.PSR.SetSub(a, imm, result)
	case 0b10: // ADD
		result := a + imm
		c.PSR.SetAdd(a, imm, result)
		c.SetRegister(rd, result)
	case 0b11: // SUB
		result := a - imm
		c.PSR.SetSub(a, imm, result)
		c.SetRegister(rd, result)
	}
	return nil
}
