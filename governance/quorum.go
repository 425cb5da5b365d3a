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

import "math/bits"

// RequiredQuorum computes the minimum cast weight required for a proposal to
// be executable: ceil(snapshot * quorumPercent / 100). The intermediate
// product is kept in 128 bits so the result is exact for any uint64
// snapshot.
func RequiredQuorum(snapshot, quorumPercent uint64) uint64 {
	hi, lo := bits.Mul64(snapshot, quorumPercent)
	lo, carry := bits.Add64(lo, 99, 0)
	hi += carry
	// hi < 100 always holds here since quorumPercent <= 100, so the
	// division cannot overflow.
	quo, _ := bits.Div64(hi, lo, 100)
	return quo
}

// QuorumMet reports whether the total cast weight meets the required quorum
// for the given snapshot and percent.
func QuorumMet(forVotes, againstVotes, snapshot, quorumPercent uint64) bool {
	return forVotes+againstVotes >= RequiredQuorum(snapshot, quorumPercent)
}

// Outcome reports whether a proposal passes on its final tallies. A strict
// majority of supporting weight is required; ties fail.
func Outcome(forVotes, againstVotes uint64) bool {
	return forVotes > againstVotes
}
