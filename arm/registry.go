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

import "github.com/m0sim/emulator_m0/curated"

// PeripheralRegistry tracks registered peripherals by address range and
// dispatches reads and writes that fall within a registered range. The
// non-overlap invariant is enforced at Register time, so Lookup never has to
// resolve an ambiguous match.
type PeripheralRegistry struct {
	peripherals []Peripheral
}

// NewPeripheralRegistry creates an empty registry.
func NewPeripheralRegistry() *PeripheralRegistry {
	return &PeripheralRegistry{}
}

// Register adds p to the registry after checking that its range does not
// intersect any already-registered peripheral's range. On conflict, p is not
// registered and a curated error naming both peripherals is returned.
func (reg *PeripheralRegistry) Register(p Peripheral) error {
	start, end := p.Range()

	for _, existing := range reg.peripherals {
		existingStart, existingEnd := existing.Range()
		if inConflict(start, end, existingStart, existingEnd) {
			return curated.Errorf("arm: peripheral registration conflict: %s overlaps %s", p.Name(), existing.Name())
		}
	}

	reg.peripherals = append(reg.peripherals, p)
	return nil
}

// Lookup returns the peripheral whose range covers addr, or nil if none
// does. The non-overlap invariant guarantees at most one match.
func (reg *PeripheralRegistry) Lookup(addr uint32) Peripheral {
	for _, p := range reg.peripherals {
		start, end := p.Range()
		if inRange(addr, start, end) {
			return p
		}
	}
	return nil
}
