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

// Form identifies a Thumb instruction class.
type Form int

const (
	FormIllegal Form = iota
	FormNOP
	FormCPSIDE
	FormWFIE
	FormSEV
	FormSVC
	FormBKPT
	FormAddSubSPImm7
	FormLoadStoreRegOffset
	FormLoadStoreSignExtended
	FormPushPop
	FormALU
	FormHiRegisterOps
	FormAddSub
	FormPCRelativeLoad
	FormUnconditionalBranch
	FormLoadStoreHalfwordImm
	FormSPRelativeLoadStore
	FormLoadAddress
	FormLDMSTM
	FormConditionalBranch
	FormLongBranchWithLink
	FormImmediate8
	FormMoveShiftedRegister
	FormLoadStoreImmOffset
)

// decodeEntry is one row of the §4.5 classification table. Matching is
// top-to-bottom: the first row whose mask/value pair matches wins.
type decodeEntry struct {
	mask  uint16
	value uint16
	form  Form
}

// decodeTable is the §4.5 table in priority order; its unconditional-branch
// row matches the 11100 prefix that execUnconditionalBranch decodes. Do not
// reorder it: later, broader rows (conditional branch, for instance) would
// then pre-empt earlier, narrower ones (SVC, BKPT) sharing the same high bits.
var decodeTable = []decodeEntry{
	{0b1111111111111111, 0b0100011011000000, FormNOP},
	{0b1111111111101111, 0b1011011001100010, FormCPSIDE},
	{0b1111111111101111, 0b1011111100100000, FormWFIE},
	{0b1111111111111111, 0b1011111101000000, FormSEV},
	{0b1111111100000000, 0b1101111100000000, FormSVC},
	{0b1111111100000000, 0b1101111000000000, FormBKPT},
	{0b1111111100000000, 0b1011000000000000, FormAddSubSPImm7},
	{0b1111001000000000, 0b0101000000000000, FormLoadStoreRegOffset},
	{0b1111001000000000, 0b0101001000000000, FormLoadStoreSignExtended},
	{0b1111011000000000, 0b1011010000000000, FormPushPop},
	{0b1111110000000000, 0b0100000000000000, FormALU},
	{0b1111110000000000, 0b0100010000000000, FormHiRegisterOps},
	{0b1111100000000000, 0b0001100000000000, FormAddSub},
	{0b1111100000000000, 0b0100100000000000, FormPCRelativeLoad},
	{0b1111100000000000, 0b1110000000000000, FormUnconditionalBranch},
	{0b1111000000000000, 0b1000000000000000, FormLoadStoreHalfwordImm},
	{0b1111000000000000, 0b1001000000000000, FormSPRelativeLoadStore},
	{0b1111000000000000, 0b1010000000000000, FormLoadAddress},
	{0b1111000000000000, 0b1100000000000000, FormLDMSTM},
	{0b1111000000000000, 0b1101000000000000, FormConditionalBranch},
	{0b1111000000000000, 0b1111000000000000, FormLongBranchWithLink},
	{0b1110000000000000, 0b0010000000000000, FormImmediate8},
	{0b1110000000000000, 0b0000000000000000, FormMoveShiftedRegister},
	{0b1110000000000000, 0b0110000000000000, FormLoadStoreImmOffset},
}

// Decode classifies a 16-bit opcode into its instruction Form. FormIllegal
// is returned when no row matches.
func Decode(opcode uint16) Form {
	for _, e := range decodeTable {
		if opcode&e.mask == e.value {
			return e.form
		}
	}
	return FormIllegal
}
