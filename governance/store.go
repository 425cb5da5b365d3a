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
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalStore owns the proposal records and the per-proposal vote ledger.
// Ids are allocated sequentially starting at 1 and are never reused;
// proposals are never deleted. The internal mutators (setCanceled,
// setExecuted, extendDeadline) are invoked by the engine after its own
// precondition checks and do not re-validate authorization.
type ProposalStore struct {
	mu        sync.RWMutex
	proposals []*Proposal
	voted     map[uint64]map[common.Address]bool
}

// NewProposalStore creates an empty proposal store.
func NewProposalStore() *ProposalStore {
	return &ProposalStore{
		voted: make(map[uint64]map[common.Address]bool),
	}
}

// Create allocates the next proposal id and stores a new open proposal with
// a deadline of now plus the given number of days and the supplied voting
// power snapshot.
func (s *ProposalStore) Create(title, description string, durationDays uint64, proposer common.Address, snapshot uint64, now time.Time) (uint64, error) {
	if durationDays == 0 {
		return 0, ErrInvalidDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uint64(len(s.proposals)) + 1
	s.proposals = append(s.proposals, &Proposal{
		ID:          id,
		Title:       title,
		Description: description,
		Proposer:    proposer,
		Deadline:    now.Add(time.Duration(durationDays) * dayDuration),
		Snapshot:    snapshot,
	})
	s.voted[id] = make(map[common.Address]bool)

	return id, nil
}

// RecordVote marks the (proposal, voter) pair as voted and adds the given
// weight to the matching tally. A second vote by the same voter on the same
// proposal fails with ErrAlreadyVoted; votes on canceled proposals or after
// the deadline fail with ErrVotingClosed. The failed calls leave the
// tallies untouched.
func (s *ProposalStore) RecordVote(id uint64, voter common.Address, support bool, weight uint64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, err := s.byID(id)
	if err != nil {
		return err
	}
	if proposal.Canceled || proposal.Executed || !now.Before(proposal.Deadline) {
		return ErrVotingClosed
	}
	if s.voted[id][voter] {
		return ErrAlreadyVoted
	}

	s.voted[id][voter] = true
	if support {
		proposal.ForVotes += weight
	} else {
		proposal.AgainstVotes += weight
	}

	return nil
}

// Get returns a copy of the proposal with the given id.
func (s *ProposalStore) Get(id uint64) (*Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	proposal, err := s.byID(id)
	if err != nil {
		return nil, err
	}

	proposalCopy := *proposal
	return &proposalCopy, nil
}

// ListAll returns copies of all proposals in ascending id order.
func (s *ProposalStore) ListAll() []*Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	proposals := make([]*Proposal, 0, len(s.proposals))
	for _, proposal := range s.proposals {
		proposalCopy := *proposal
		proposals = append(proposals, &proposalCopy)
	}

	return proposals
}

// HasVoted reports whether the voter has already cast a vote on the
// proposal.
func (s *ProposalStore) HasVoted(id uint64, voter common.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.byID(id); err != nil {
		return false, err
	}
	return s.voted[id][voter], nil
}

// Count returns the number of proposals ever created.
func (s *ProposalStore) Count() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint64(len(s.proposals))
}

// setCanceled marks the proposal as canceled. The engine has already
// verified the id and the terminal flags.
func (s *ProposalStore) setCanceled(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if proposal, err := s.byID(id); err == nil {
		proposal.Canceled = true
	}
}

// setExecuted marks the proposal as executed. The engine has already
// verified the id and the terminal flags.
func (s *ProposalStore) setExecuted(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if proposal, err := s.byID(id); err == nil {
		proposal.Executed = true
	}
}

// extendDeadline pushes the proposal deadline out by the given number of
// days and returns the new deadline. The engine has already verified the id,
// the window and the duration.
func (s *ProposalStore) extendDeadline(id uint64, extraDays uint64) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, err := s.byID(id)
	if err != nil {
		return time.Time{}
	}
	proposal.Deadline = proposal.Deadline.Add(time.Duration(extraDays) * dayDuration)
	return proposal.Deadline
}

// byID resolves an id to the stored proposal. Callers hold s.mu.
func (s *ProposalStore) byID(id uint64) (*Proposal, error) {
	if id == 0 || id > uint64(len(s.proposals)) {
		return nil, ErrProposalNotFound
	}
	return s.proposals[id-1], nil
}
