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

// execHiRegisterOps implements `010001 Op2 H1 H2 Rs3 Rd3`. H1/H2 extend Rd3
// and Rs3 into the full 0-15 register range, which is how this form reaches
// R8-R15 despite the rest of the low-register forms being stuck at R0-R7.
// None of ADD/CMP/MOV here update flags except CMP, per the ARM reference.
func execHiRegisterOps(c *CPU, instr uint16, instrAddr uint32) error {
	op2 := (instr >> 8) & 0x3
	h1 := (instr >> 7) & 1
	h2 := (instr >> 6) & 1
	rs3 := int((instr >> 3) & 0x7)
	rd3 := int(instr & 0x7)

	code := (op2 << 2) | (h1 << 1) | h2
	rs := rs3 + int(h2)<<3
	rd := rd3 + int(h1)<<3

	switch code {
	case 0b0001, 0b0010, 0b0011: // ADD Rd,Hs / ADD Hd,Rs / ADD Hd,Hs
		result := c.Regs.Get(rd) + c.Regs.Get(rs)
		c.SetRegister(rd, result)
	case 0b0101, 0b0110, 0b0111: // CMP Rd,Hs / CMP Hd,Rs / CMP Hd,Hs
		a, b := c.Regs.Get(rd), c.Regs.Get(rs)
		result := a - b
		c.PSR.SetSub(a, b, result)
	case 0b1001, 0b1010, 0b1011: // MOV Rd,Hs / MOV Hd,Rs / MOV Hd,Hs
		c.SetRegister(rd, c.Regs.Get(rs))
	case 0b1100, 0b1101: // BX
		target := c.Regs.Get(rs)
		if target&1 == 0 {
			return errModeTransition(target)
		}
		c.Branch(target)
	case 0b1110, 0b1111: // BLX
		target := c.Regs.Get(rs)
		if target&1 == 0 {
			return errModeTransition(target)
		}
		c.Regs.Set(LR, (instrAddr+2)|1)
		c.Branch(target)
	default:
		return errIllegal(instr, instrAddr)
	}
	return nil
}
