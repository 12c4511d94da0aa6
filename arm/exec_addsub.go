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

// execAddSub implements `00011 I Op Rn/Off3 Rs Rd`: two-operand ADD/SUB
// where the second operand is either a register or a 3-bit immediate.
func execAddSub(c *CPU, instr uint16) error {
	i := (instr >> 10) & 1
	op := (instr >> 9) & 1
	rnOff3 := uint32((instr >> 6) & 0x7)
	rs := int((instr >> 3) & 0x7)
	rd := int(instr & 0x7)

	a := c.Regs.Get(rs)
	var b uint32
	if i == 1 {
		b = rnOff3
	} else {
		b = c.Regs.Get(int(rnOff3))
	}

	var result uint32
	if op == 0 {
		result = a + b
		c.PSR.SetAdd(a, b, result)
	} else {
		result = a - b
		c.PSR.SetSub(a, b, result)
	}
	c.SetRegister(rd, result)
	return nil
}
