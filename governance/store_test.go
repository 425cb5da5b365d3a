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
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var storeEpoch = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestStore_Create(t *testing.T) {
	s := NewProposalStore()
	proposer := common.HexToAddress("0x1")

	id1, err := s.Create("first", "d", 7, proposer, 10, storeEpoch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, _ := s.Create("second", "d", 3, proposer, 12, storeEpoch)

	if id1 != 1 || id2 != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", id1, id2)
	}

	p, err := s.Get(id1)
	if err != nil {
		t.Fatalf("failed to get proposal: %v", err)
	}
	if p.Title != "first" || p.Proposer != proposer || p.Snapshot != 10 {
		t.Errorf("proposal fields not stored: %+v", p)
	}
	if want := storeEpoch.Add(7 * 24 * time.Hour); !p.Deadline.Equal(want) {
		t.Errorf("expected deadline %v, got %v", want, p.Deadline)
	}
	if p.ForVotes != 0 || p.AgainstVotes != 0 || p.Executed || p.Canceled {
		t.Errorf("new proposal should be open with zero tallies: %+v", p)
	}
}

func TestStore_CreateZeroDuration(t *testing.T) {
	s := NewProposalStore()

	if _, err := s.Create("t", "d", 0, common.HexToAddress("0x1"), 10, storeEpoch); err != ErrInvalidDuration {
		t.Errorf("expected error %v, got %v", ErrInvalidDuration, err)
	}
	if s.Count() != 0 {
		t.Error("failed create should not allocate an id")
	}
}

func TestStore_RecordVote(t *testing.T) {
	s := NewProposalStore()
	voter := common.HexToAddress("0x2")
	id, _ := s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)

	if err := s.RecordVote(id, voter, true, 3, storeEpoch.Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, _ := s.Get(id)
	if p.ForVotes != 3 || p.AgainstVotes != 0 {
		t.Errorf("expected tallies 3/0, got %d/%d", p.ForVotes, p.AgainstVotes)
	}

	voted, err := s.HasVoted(id, voter)
	if err != nil || !voted {
		t.Errorf("expected voter to be recorded, got %v %v", voted, err)
	}
}

func TestStore_VoteOnce(t *testing.T) {
	s := NewProposalStore()
	voter := common.HexToAddress("0x2")
	id, _ := s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)

	s.RecordVote(id, voter, true, 3, storeEpoch.Add(time.Hour))
	if err := s.RecordVote(id, voter, false, 3, storeEpoch.Add(2*time.Hour)); err != ErrAlreadyVoted {
		t.Errorf("expected error %v, got %v", ErrAlreadyVoted, err)
	}

	// The failed call must not touch the tallies.
	p, _ := s.Get(id)
	if p.ForVotes != 3 || p.AgainstVotes != 0 {
		t.Errorf("tallies changed by rejected vote: %d/%d", p.ForVotes, p.AgainstVotes)
	}
}

func TestStore_VoteAfterDeadline(t *testing.T) {
	s := NewProposalStore()
	id, _ := s.Create("t", "d", 1, common.HexToAddress("0x1"), 10, storeEpoch)

	// Exactly at the deadline the window is already closed.
	atDeadline := storeEpoch.Add(24 * time.Hour)
	if err := s.RecordVote(id, common.HexToAddress("0x2"), true, 1, atDeadline); err != ErrVotingClosed {
		t.Errorf("expected error %v, got %v", ErrVotingClosed, err)
	}
}

func TestStore_VoteOnCanceled(t *testing.T) {
	s := NewProposalStore()
	id, _ := s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)
	s.setCanceled(id)

	if err := s.RecordVote(id, common.HexToAddress("0x2"), true, 1, storeEpoch.Add(time.Hour)); err != ErrVotingClosed {
		t.Errorf("expected error %v, got %v", ErrVotingClosed, err)
	}
}

func TestStore_UnknownProposal(t *testing.T) {
	s := NewProposalStore()
	s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)

	if _, err := s.Get(0); err != ErrProposalNotFound {
		t.Errorf("expected error %v for id 0, got %v", ErrProposalNotFound, err)
	}
	if _, err := s.Get(2); err != ErrProposalNotFound {
		t.Errorf("expected error %v for id out of range, got %v", ErrProposalNotFound, err)
	}
	if err := s.RecordVote(99, common.HexToAddress("0x2"), true, 1, storeEpoch); err != ErrProposalNotFound {
		t.Errorf("expected error %v, got %v", ErrProposalNotFound, err)
	}
}

func TestStore_ListAllOrdered(t *testing.T) {
	s := NewProposalStore()
	proposer := common.HexToAddress("0x1")
	for i := 0; i < 5; i++ {
		s.Create("t", "d", 7, proposer, 10, storeEpoch)
	}

	all := s.ListAll()
	if len(all) != 5 {
		t.Fatalf("expected 5 proposals, got %d", len(all))
	}
	for i, p := range all {
		if p.ID != uint64(i)+1 {
			t.Errorf("expected ascending ids, got %d at position %d", p.ID, i)
		}
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewProposalStore()
	id, _ := s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)

	p, _ := s.Get(id)
	p.ForVotes = 999
	p.Canceled = true

	fresh, _ := s.Get(id)
	if fresh.ForVotes != 0 || fresh.Canceled {
		t.Error("mutating a returned proposal must not affect the store")
	}
}

func TestStore_ExtendDeadline(t *testing.T) {
	s := NewProposalStore()
	id, _ := s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)

	newDeadline := s.extendDeadline(id, 3)
	if want := storeEpoch.Add(10 * 24 * time.Hour); !newDeadline.Equal(want) {
		t.Errorf("expected deadline %v, got %v", want, newDeadline)
	}

	p, _ := s.Get(id)
	if !p.Deadline.Equal(newDeadline) {
		t.Error("extended deadline not persisted")
	}
}

func TestStore_TerminalFlags(t *testing.T) {
	s := NewProposalStore()
	id1, _ := s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)
	id2, _ := s.Create("t", "d", 7, common.HexToAddress("0x1"), 10, storeEpoch)

	s.setExecuted(id1)
	s.setCanceled(id2)

	p1, _ := s.Get(id1)
	p2, _ := s.Get(id2)
	if !p1.Executed || p1.Canceled {
		t.Errorf("expected executed only, got %+v", p1)
	}
	if !p2.Canceled || p2.Executed {
		t.Errorf("expected canceled only, got %+v", p2)
	}
}
