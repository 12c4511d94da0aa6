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

// Peripheral is the memory-mapped peripheral contract. Implementations must
// be deterministic functions of address and their own internal state; the
// MMU calls these directly on every access that falls within Range.
type Peripheral interface {
	// Name identifies the peripheral for conflict and debug messages.
	Name() string

	// Range returns the inclusive [start, end] address range this
	// peripheral occupies.
	Range() (start, end uint32)

	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32

	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
}

// inRange reports whether addr falls within the inclusive range [start, end].
func inRange(addr, start, end uint32) bool {
	return addr >= start && addr <= end
}

// inConflict reports whether two inclusive ranges intersect.
func inConflict(start1, end1, start2, end2 uint32) bool {
	return start1 <= end2 && start2 <= end1
}
