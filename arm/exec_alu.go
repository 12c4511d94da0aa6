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

// shiftLSL performs a logical shift left by a register-supplied amount
// (0-255, as opposed to the move-shifted-register form's 0-31 immediate).
// Amount 0 leaves the value and carry untouched.
func shiftLSL(val, amount uint32, carryIn bool) (uint32, bool) {
	switch {
	case amount == 0:
		return val, carryIn
	case amount == 32:
		return 0, val&1 == 1
	case amount > 32:
		return 0, false
	default:
		return val << amount, (val>>(32-amount))&1 == 1
	}
}

// shiftLSR performs a logical shift right by a register-supplied amount.
func shiftLSR(val, amount uint32, carryIn bool) (uint32, bool) {
	switch {
	case amount == 0:
		return val, carryIn
	case amount == 32:
		return 0, val&0x80000000 != 0
	case amount > 32:
		return 0, false
	default:
		return val >> amount, (val>>(amount-1))&1 == 1
	}
}

// shiftASR performs an arithmetic shift right by a register-supplied amount.
func shiftASR(val, amount uint32, carryIn bool) (uint32, bool) {
	switch {
	case amount == 0:
		return val, carryIn
	case amount >= 32:
		if val&0x80000000 != 0 {
			return 0xFFFFFFFF, true
		}
		return 0, false
	default:
		return uint32(int32(val) >> amount), (val>>(amount-1))&1 == 1
	}
}

// shiftROR rotates val right by a register-supplied amount.
func shiftROR(val, amount uint32, carryIn bool) (uint32, bool) {
	if amount == 0 {
		return val, carryIn
	}
	amt := amount % 32
	if amt == 0 {
		return val, val&0x80000000 != 0
	}
	result := (val >> amt) | (val << (32 - amt))
	return result, (val>>(amt-1))&1 == 1
}

// execALU implements `010000 Op4 Rs Rd`, the sixteen two-operand ALU
// operations. ADC/SBC fold the carry flag into a wide (64-bit) intermediate
// rather than reusing the plain add/sub flag formulas, since those are only
// defined for a two-operand sum (§4.1 has no carry-in term).
func execALU(c *CPU, instr uint16) error {
	op4 := (instr >> 6) & 0xF
	rs := int((instr >> 3) & 0x7)
	rd := int(instr & 0x7)

	a := c.Regs.Get(rd)
	b := c.Regs.Get(rs)

	switch op4 {
	case 0: // AND
		result := a & b
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
	case 1: // EOR
		result := a ^ b
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
	case 2: // LSL
		result, carry := shiftLSL(a, uint32(Byte(b, 0)), c.PSR.Carry)
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
		c.PSR.Carry = carry
	case 3: // LSR
		result, carry := shiftLSR(a, uint32(Byte(b, 0)), c.PSR.Carry)
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
		c.PSR.Carry = carry
	case 4: // ASR
		result, carry := shiftASR(a, uint32(Byte(b, 0)), c.PSR.Carry)
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
		c.PSR.Carry = carry
	case 5: // ADC
		carryIn := uint64(0)
		if c.PSR.Carry {
			carryIn = 1
		}
		wide := uint64(a) + uint64(b) + carryIn
		result := uint32(wide)
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
		c.PSR.Carry = wide > 0xFFFFFFFF
		na, nb, nc := sign(a), sign(b), sign(result)
		c.PSR.Overflow = na == nb && na != nc
	case 6: // SBC
		borrowIn := uint64(0)
		if !c.PSR.Carry {
			borrowIn = 1
		}
		wide := uint64(a) - uint64(b) - borrowIn
		result := uint32(wide)
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
		c.PSR.Carry = uint64(a) >= uint64(b)+borrowIn
		na, nb, nc := sign(a), sign(b), sign(result)
		c.PSR.Overflow = na != nb && nc != na
	case 7: // ROR
		result, carry := shiftROR(a, uint32(Byte(b, 0)), c.PSR.Carry)
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
		c.PSR.Carry = carry
	case 8: // TST
		result := a & b
		c.PSR.SetNZ(result)
	case 9: // NEG
		result := uint32(0) - b
		c.PSR.SetSub(0, b, result)
		c.SetRegister(rd, result)
	case 10: // CMP
		result := a - b
		c.PSR.SetSub(a, b, result)
	case 11: // CMN
		result := a + b
		c.PSR.SetAdd(a, b, result)
	case 12: // ORR
		result := a | b
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
	case 13: // MUL
		result := a * b
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
	case 14: // BIC
		result := a &^ b
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
	case 15: // MVN
		result := ^b
		c.SetRegister(rd, result)
		c.PSR.SetNZ(result)
	}
	return nil
}
