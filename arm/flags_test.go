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

import "testing"

func TestAddFlags(t *testing.T) {
	tests := []struct {
		name             string
		a, b             uint32
		wantCarry, wantV bool
	}{
		{"no overflow no carry", 1, 1, false, false},
		{"unsigned carry out", 0xFFFFFFFF, 1, true, false},
		{"signed overflow, two positives", 0x7FFFFFFF, 1, false, true},
		{"signed overflow, two negatives", 0x80000000, 0x80000000, true, true},
		{"negative plus positive, no overflow", 0xFFFFFFFF, 0x7FFFFFFF, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.a + tt.b
			if got := addCarry(tt.a, tt.b, c); got != tt.wantCarry {
				t.Errorf("addCarry(%#x, %#x, %#x) = %v, want %v", tt.a, tt.b, c, got, tt.wantCarry)
			}
			if got := addOverflow(tt.a, tt.b, c); got != tt.wantV {
				t.Errorf("addOverflow(%#x, %#x, %#x) = %v, want %v", tt.a, tt.b, c, got, tt.wantV)
			}
		})
	}
}

func TestSubFlags(t *testing.T) {
	tests := []struct {
		name             string
		a, b             uint32
		wantCarry, wantV bool
	}{
		{"no borrow, a > b", 13, 12, true, false},
		{"borrow, a < b", 12, 13, false, false},
		{"equal operands", 5, 5, true, false},
		{"signed overflow, min minus positive", 0x80000000, 1, true, true},
		{"signed overflow, max minus negative", 0x7FFFFFFF, 0xFFFFFFFF, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.a - tt.b
			if got := subCarry(tt.a, tt.b, c); got != tt.wantCarry {
				t.Errorf("subCarry(%#x, %#x, %#x) = %v, want %v", tt.a, tt.b, c, got, tt.wantCarry)
			}
			if got := subOverflow(tt.a, tt.b, c); got != tt.wantV {
				t.Errorf("subOverflow(%#x, %#x, %#x) = %v, want %v", tt.a, tt.b, c, got, tt.wantV)
			}
		})
	}
}

func TestNegativeAndZero(t *testing.T) {
	if !negative(0x80000000) {
		t.Errorf("expected 0x80000000 to be negative")
	}
	if negative(0x7FFFFFFF) {
		t.Errorf("expected 0x7FFFFFFF to not be negative")
	}
	if !zero(0) {
		t.Errorf("expected 0 to be zero")
	}
	if zero(1) {
		t.Errorf("expected 1 to not be zero")
	}
}
