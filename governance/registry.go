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
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// VoterRegistry tracks the authorized voters and their weights, and keeps a
// running total of all registered weight. The total always equals the sum of
// the weights of the currently registered voters; every mutation adjusts it
// by the exact delta it applies.
type VoterRegistry struct {
	mu         sync.RWMutex
	voters     map[common.Address]uint64
	totalPower uint64
}

// NewVoterRegistry creates an empty voter registry.
func NewVoterRegistry() *VoterRegistry {
	return &VoterRegistry{
		voters: make(map[common.Address]uint64),
	}
}

// SetVoter registers, re-weights or deregisters an identity. Weight zero
// deregisters: if the identity was registered its weight is subtracted from
// the total, otherwise the call is a no-op. A positive weight registers the
// identity or adjusts the total by the delta from its previous weight.
// The returned flag reports whether any state changed.
func (r *VoterRegistry) SetVoter(addr common.Address, weight uint64) (bool, error) {
	if addr == (common.Address{}) {
		return false, ErrZeroAddress
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, registered := r.voters[addr]
	if weight == 0 {
		if !registered {
			return false, nil
		}
		r.totalPower -= prev
		delete(r.voters, addr)
		return true, nil
	}

	r.totalPower += weight - prev
	r.voters[addr] = weight
	return true, nil
}

// WeightOf returns the weight of an identity, or zero if it is not
// registered.
func (r *VoterRegistry) WeightOf(addr common.Address) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.voters[addr]
}

// IsRegistered reports whether an identity is a registered voter.
func (r *VoterRegistry) IsRegistered(addr common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, registered := r.voters[addr]
	return registered
}

// TotalVotingPower returns the sum of the weights of all registered voters.
func (r *VoterRegistry) TotalVotingPower() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.totalPower
}

// Voters returns all registered voters ordered by address.
func (r *VoterRegistry) Voters() []Voter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voters := make([]Voter, 0, len(r.voters))
	for addr, weight := range r.voters {
		voters = append(voters, Voter{Address: addr, Weight: weight})
	}
	sort.Slice(voters, func(i, j int) bool {
		return voters[i].Address.Hex() < voters[j].Address.Hex()
	})
	return voters
}
