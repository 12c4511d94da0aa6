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

import "strings"

// PSR is the program status register: the NZCV condition flags, the Thumb
// state bit, and the exception number. T is true for the entire lifetime of
// a CPU — there is no supported path back to ARM state.
type PSR struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool
	Thumb    bool

	Exception uint8
}

// String renders the flags the way a debugger would, upper case for set,
// lower case for clear.
func (p *PSR) String() string {
	s := strings.Builder{}
	for _, f := range []struct {
		set  bool
		char rune
	}{
		{p.Negative, 'N'},
		{p.Zero, 'Z'},
		{p.Carry, 'C'},
		{p.Overflow, 'V'},
		{p.Thumb, 'T'},
	} {
		if f.set {
			s.WriteRune(f.char)
		} else {
			s.WriteRune(f.char + ('a' - 'A'))
		}
	}
	return s.String()
}

// Reset clears NZCV and the exception number and re-establishes the Thumb
// state invariant.
func (p *PSR) Reset() {
	*p = PSR{Thumb: true}
}

// SetNZ updates N and Z from a result, leaving C and V untouched. Used by
// logical/move operations that don't carry a defined carry/overflow.
func (p *PSR) SetNZ(result uint32) {
	p.Negative = negative(result)
	p.Zero = zero(result)
}

// SetAdd updates all four flags from an addition c = a + b.
func (p *PSR) SetAdd(a, b, c uint32) {
	p.SetNZ(c)
	p.Carry = addCarry(a, b, c)
	p.Overflow = addOverflow(a, b, c)
}

// SetSub updates all four flags from a subtraction c = a - b.
func (p *PSR) SetSub(a, b, c uint32) {
	p.SetNZ(c)
	p.Carry = subCarry(a, b, c)
	p.Overflow = subOverflow(a, b, c)
}
