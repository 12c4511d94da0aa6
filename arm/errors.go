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

// Error patterns, exported so callers can curated.Is/Has against a specific
// failure category without depending on exact wording.
const (
	PatternModeTransition = "arm: unsupported mode transition: BX/BLX target %#08x would enter ARM state"
	PatternUnimplemented  = "arm: unimplemented instruction: %s (opcode %#04x at %#08x)"
	PatternIllegal        = "arm: illegal instruction: opcode %#04x at %#08x"
)

func errModeTransition(target uint32) error {
	return curated.Errorf(PatternModeTransition, target)
}

func errUnimplemented(name string, opcode uint16, addr uint32) error {
	return curated.Errorf(PatternUnimplemented, name, opcode, addr)
}

func errIllegal(opcode uint16, addr uint32) error {
	return curated.Errorf(PatternIllegal, opcode, addr)
}
