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

// execMoveShiftedRegister implements `000 Op Off5 Rs Rd`: LSL/LSR/ASR by an
// immediate shift count encoded directly in the opcode. Off5==0 encodes a
// shift of 32 for LSR/ASR (ARM reference quirk); for LSL, Off5==0 is a
// straight register move with C unchanged.
func execMoveShiftedRegister(c *CPU, instr uint16) error {
	op := (instr >> 11) & 0x3
	off5 := uint32((instr >> 6) & 0x1F)
	rs := int((instr >> 3) & 0x7)
	rd := int(instr & 0x7)

	val := c.Regs.Get(rs)
	var result uint32
	carry := c.PSR.Carry

	switch op {
	case 0b00: // LSL
		if off5 == 0 {
			result = val
		} else {
			carry = (val>>(32-off5))&1 == 1
			result = val << off5
		}
	case 0b01: // LSR
		shift := off5
		if shift == 0 {
			shift = 32
		}
		if shift >= 32 {
			carry = val&0x80000000 != 0
			result = 0
		} else {
			carry = (val>>(shift-1))&1 == 1
			result = val >> shift
		}
	case 0b10: // ASR
		shift := off5
		if shift == 0 {
			shift = 32
		}
		if shift >= 32 {
			if val&0x80000000 != 0 {
				result = 0xFFFFFFFF
				carry = true
			} else {
				result = 0
				carry = false
			}
		} else {
			carry = (val>>(shift-1))&1 == 1
			result = uint32(int32(val) >> shift)
		}
	}

	c.SetRegister(rd, result)
	c.PSR.Negative = negative(result)
	c.PSR.Zero = zero(result)
	c.PSR.Carry = carry
	return nil
}
