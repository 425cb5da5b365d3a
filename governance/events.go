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

// Event is a governance lifecycle notification. Events are delivered on a
// single ordered stream: subscribers observe them in the order the
// corresponding mutations were committed. Delivery is best-effort; a
// subscriber failing to keep up never rolls back committed state.
type Event interface{}

// ProposalCreatedEvent is emitted when a new proposal is created.
type ProposalCreatedEvent struct {
	ID            uint64
	Title         string
	Proposer      common.Address
	Snapshot      uint64 // total voting power frozen into the proposal
	QuorumPercent uint64 // quorum percent in effect at creation
}

// VoteCastEvent is emitted when a vote is recorded.
type VoteCastEvent struct {
	ID      uint64
	Voter   common.Address
	Support bool
	Weight  uint64
}

// ProposalExecutedEvent is emitted when a proposal is executed, with the
// final tallies and the majority outcome.
type ProposalExecutedEvent struct {
	ID           uint64
	Passed       bool
	ForVotes     uint64
	AgainstVotes uint64
}

// ProposalCanceledEvent is emitted when a proposal is canceled.
type ProposalCanceledEvent struct {
	ID uint64
	By common.Address
}

// ProposalExtendedEvent is emitted when a proposal's voting window is
// extended.
type ProposalExtendedEvent struct {
	ID          uint64
	NewDeadline time.Time
}

// VoterUpdatedEvent is emitted when a voter is registered, re-weighted or
// removed. Removed is true when the update deregistered the voter.
type VoterUpdatedEvent struct {
	Address common.Address
	Weight  uint64
	Removed bool
}

// AdminTransferredEvent is emitted when the admin role changes hands.
type AdminTransferredEvent struct {
	Old common.Address
	New common.Address
}
