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

// sign reports the sign bit (bit 31) of v.
func sign(v uint32) bool {
	return v&0x80000000 != 0
}

// negative is true when the MSB of c is set.
func negative(c uint32) bool {
	return sign(c)
}

// zero is true when c is the all-zero value.
func zero(c uint32) bool {
	return c == 0
}

// addCarry computes the unsigned carry-out of c = a + b (mod 2^32).
func addCarry(a, b, c uint32) bool {
	na, nb, pc := sign(a), sign(b), !sign(c)
	return (na && nb) || (na && pc) || (nb && pc)
}

// addOverflow computes the signed overflow of c = a + b (mod 2^32).
func addOverflow(a, b, c uint32) bool {
	na, nb, nc := sign(a), sign(b), sign(c)
	pa, pb, pc := !na, !nb, !nc
	return (na && nb && pc) || (pa && pb && nc)
}

// subCarry computes carry using the ARM convention (C=1 on no-borrow) for
// c = a - b (mod 2^32).
func subCarry(a, b, c uint32) bool {
	na, pb, pc := sign(a), !sign(b), !sign(c)
	return (na && pb) || (na && pc) || (pb && pc)
}

// subOverflow computes the signed overflow of c = a - b (mod 2^32).
func subOverflow(a, b, c uint32) bool {
	na, pb, pc := sign(a), !sign(b), !sign(c)
	pa, nb, nc := !na, sign(b), sign(c)
	return (na && pb && pc) || (pa && nb && nc)
}
