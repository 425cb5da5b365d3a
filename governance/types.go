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
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Proposal represents a governance proposal. Proposal ids are 1-based,
// monotonically increasing and never reused. The Snapshot field freezes the
// total voting power at creation time; quorum is always judged against it,
// never against the live registry total.
type Proposal struct {
	ID           uint64         // proposal id
	Title        string         // short title
	Description  string         // opaque description text
	Proposer     common.Address // identity that created the proposal
	ForVotes     uint64         // accumulated supporting weight
	AgainstVotes uint64         // accumulated opposing weight
	Deadline     time.Time      // end of the voting window
	Executed     bool           // terminal flag, mutually exclusive with Canceled
	Canceled     bool           // terminal flag, mutually exclusive with Executed
	Snapshot     uint64         // total voting power at creation time
}

// Voter is a registered voting identity and its weight.
type Voter struct {
	Address common.Address // voter identity
	Weight  uint64         // vote multiplier, >= 1 while registered
}

// Clock supplies the current time to the engine. Deadlines are compared
// against it; within a single operation the engine reads it at most once.
type Clock interface {
	Now() time.Time
}

// systemClock is the default wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config holds the tunable parameters of a governance engine.
type Config struct {
	QuorumPercent uint64 // percentage of the snapshot required as cast weight, 1..100

	// Clock overrides the time source. Nil means the system clock.
	Clock Clock

	// OnExecuted, if set, is invoked with a copy of the proposal after an
	// execution has committed. It runs outside the state lock but inside
	// the execution guard: calling ExecuteProposal from the hook fails
	// with ErrReentrantCall instead of deadlocking.
	OnExecuted func(Proposal)
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		QuorumPercent: 50, // simple majority of the snapshot
	}
}

const dayDuration = 24 * time.Hour
