// Copyright 2024 The go-governance Authors
// This file is part of the go-governance library.
//
// The go-governance library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-governance library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-governance library. If not, see <http://www.gnu.org/licenses/>.

package governance

import (
	"math"
	"testing"
)

func TestRequiredQuorum(t *testing.T) {
	tests := []struct {
		snapshot uint64
		percent  uint64
		want     uint64
	}{
		{0, 50, 0},
		{1, 1, 1},
		{1, 100, 1},
		{100, 20, 20},
		{101, 20, 21}, // ceiling, not floor
		{6, 50, 3},
		{10, 50, 5},
		{3, 34, 2},
		{199, 1, 2},
		{200, 1, 2},
		{201, 1, 3},
		{1000, 100, 1000},
		// Values whose product overflows 64-bit arithmetic.
		{math.MaxUint64, 100, math.MaxUint64},
		{math.MaxUint64, 50, math.MaxUint64/2 + 1},
	}

	for _, tt := range tests {
		if got := RequiredQuorum(tt.snapshot, tt.percent); got != tt.want {
			t.Errorf("RequiredQuorum(%d, %d) = %d, want %d", tt.snapshot, tt.percent, got, tt.want)
		}
	}
}

func TestQuorumMet(t *testing.T) {
	// snapshot 10 at 50% requires 5 units of cast weight.
	if QuorumMet(2, 2, 10, 50) {
		t.Error("4 of 5 required units should not meet quorum")
	}
	if !QuorumMet(3, 2, 10, 50) {
		t.Error("5 of 5 required units should meet quorum")
	}
	if !QuorumMet(0, 7, 10, 50) {
		t.Error("quorum counts both sides of the tally")
	}
}

func TestOutcome(t *testing.T) {
	if !Outcome(3, 0) {
		t.Error("strict majority should pass")
	}
	if Outcome(2, 2) {
		t.Error("tie should fail")
	}
	if Outcome(1, 2) {
		t.Error("minority should fail")
	}
	if Outcome(0, 0) {
		t.Error("empty tally should fail")
	}
}
