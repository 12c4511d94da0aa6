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

// popcount counts the set bits in an 8-bit register list.
func popcount(b uint8) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

// execPushPop implements `1011 L 10 R Rlist8`. PUSH decrements SP once for
// the whole transfer before writing; POP writes SP back to the final
// address after reading, branching last if R pops PC.
func execPushPop(c *CPU, instr uint16) error {
	l := (instr >> 11) & 1
	r := (instr >> 8) & 1
	rlist := uint8(instr & 0xFF)

	total := popcount(rlist)
	if r == 1 {
		total++
	}

	if l == 0 { // PUSH
		addr := c.Regs.Get(SP) - uint32(total)*4
		sp := addr
		for i := 0; i < 8; i++ {
			if rlist&(1<<uint(i)) != 0 {
				c.MMU.Write32(addr, c.Regs.Get(i))
				addr += 4
			}
		}
		if r == 1 {
			c.MMU.Write32(addr, c.Regs.Get(LR))
		}
		c.Regs.Set(SP, sp)
		return nil
	}

	// POP
	addr := c.Regs.Get(SP)
	for i := 0; i < 8; i++ {
		if rlist&(1<<uint(i)) != 0 {
			c.Regs.Set(i, c.MMU.Read32(addr))
			addr += 4
		}
	}
	var pc uint32
	popPC := r == 1
	if popPC {
		pc = c.MMU.Read32(addr)
		addr += 4
	}
	c.Regs.Set(SP, addr)
	if popPC {
		c.Branch(pc)
	}
	return nil
}

// execLDMSTM implements `1100 L Rb Rlist8`. STMIA always writes the final
// address back to Rb; LDMIA only does so when Rb itself wasn't reloaded.
func execLDMSTM(c *CPU, instr uint16) error {
	l := (instr >> 11) & 1
	rb := int((instr >> 8) & 0x7)
	rlist := uint8(instr & 0xFF)

	rbInList := rlist&(1<<uint(rb)) != 0
	addr := c.Regs.Get(rb)

	for i := 0; i < 8; i++ {
		if rlist&(1<<uint(i)) == 0 {
			continue
		}
		if l == 0 {
			c.MMU.Write32(addr, c.Regs.Get(i))
		} else {
			c.Regs.Set(i, c.MMU.Read32(addr))
		}
		addr += 4
	}

	if l == 0 || !rbInList {
		c.Regs.Set(rb, addr)
	}
	return nil
}
