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
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
)

// Engine orchestrates the voter registry, the proposal store and the quorum
// rules under a single-admin authority model. All mutating operations are
// serialized by one mutex: no operation ever observes a partially applied
// mutation, and every operation either commits fully or returns exactly one
// error with no state change. Read-only queries run concurrently against
// the component read locks.
//
// The admin is registered as a voter with weight 1 at construction.
type Engine struct {
	mu        sync.RWMutex // serializes all mutating operations
	executing atomic.Bool  // single-in-flight marker for execution

	admin         common.Address
	quorumPercent uint64

	registry *VoterRegistry
	store    *ProposalStore
	clock    Clock
	onExec   func(Proposal)

	feed   event.FeedOf[Event]
	scope  event.SubscriptionScope
	logger log.Logger
}

// NewEngine creates a governance engine with the given admin identity. A nil
// config means DefaultConfig.
func NewEngine(admin common.Address, config *Config) (*Engine, error) {
	if admin == (common.Address{}) {
		return nil, ErrZeroAddress
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.QuorumPercent == 0 || config.QuorumPercent > 100 {
		return nil, ErrInvalidQuorumPercent
	}

	clock := config.Clock
	if clock == nil {
		clock = systemClock{}
	}

	e := &Engine{
		admin:         admin,
		quorumPercent: config.QuorumPercent,
		registry:      NewVoterRegistry(),
		store:         NewProposalStore(),
		clock:         clock,
		onExec:        config.OnExecuted,
		logger:        log.New("module", "governance"),
	}
	// The admin votes with weight 1 unless re-weighted later.
	if _, err := e.registry.SetVoter(admin, 1); err != nil {
		return nil, err
	}

	return e, nil
}

// CreateProposal creates a new proposal on behalf of a registered voter,
// freezing the current total voting power into it as the quorum snapshot.
func (e *Engine) CreateProposal(from common.Address, title, description string, durationDays uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.registry.IsRegistered(from) {
		return 0, ErrNotAuthorized
	}
	snapshot := e.registry.TotalVotingPower()
	if snapshot == 0 {
		return 0, ErrNoVotingPower
	}

	id, err := e.store.Create(title, description, durationDays, from, snapshot, e.clock.Now())
	if err != nil {
		return 0, err
	}

	proposalCreatedCounter.Inc(1)
	e.logger.Info("Proposal created", "id", id, "title", title, "proposer", from, "snapshot", snapshot, "quorumPercent", e.quorumPercent)
	e.feed.Send(ProposalCreatedEvent{
		ID:            id,
		Title:         title,
		Proposer:      from,
		Snapshot:      snapshot,
		QuorumPercent: e.quorumPercent,
	})

	return id, nil
}

// Vote casts a weighted vote on an open proposal. Each voter may vote at
// most once per proposal.
func (e *Engine) Vote(from common.Address, id uint64, support bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.registry.IsRegistered(from) {
		return ErrNotAuthorized
	}
	weight := e.registry.WeightOf(from)
	if weight == 0 {
		// Unreachable while the registry invariant holds.
		return ErrNoVotingPower
	}

	if err := e.store.RecordVote(id, from, support, weight, e.clock.Now()); err != nil {
		return err
	}

	voteCastCounter.Inc(1)
	e.logger.Debug("Vote cast", "id", id, "voter", from, "support", support, "weight", weight)
	e.feed.Send(VoteCastEvent{ID: id, Voter: from, Support: support, Weight: weight})

	return nil
}

// ExecuteProposal executes a proposal whose voting window has elapsed,
// judging quorum against the snapshot stored at creation time. The call is
// protected by a single-in-flight guard: a nested invocation (for example
// from the OnExecuted hook) fails with ErrReentrantCall instead of
// deadlocking.
func (e *Engine) ExecuteProposal(from common.Address, id uint64) error {
	if !e.executing.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}
	defer e.executing.Store(false)

	executed, err := e.execute(from, id)
	if err != nil {
		return err
	}
	if e.onExec != nil {
		e.onExec(*executed)
	}

	return nil
}

// execute performs the execution state transition under the engine lock and
// returns a copy of the executed proposal.
func (e *Engine) execute(from common.Address, id uint64) (*Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.registry.IsRegistered(from) {
		return nil, ErrNotAuthorized
	}
	proposal, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if proposal.Executed {
		return nil, ErrAlreadyExecuted
	}
	if proposal.Canceled {
		return nil, ErrProposalCanceled
	}
	if !e.clock.Now().After(proposal.Deadline) {
		return nil, ErrVotingStillOpen
	}
	if !QuorumMet(proposal.ForVotes, proposal.AgainstVotes, proposal.Snapshot, e.quorumPercent) {
		return nil, ErrQuorumNotReached
	}

	e.store.setExecuted(id)
	proposal.Executed = true
	passed := Outcome(proposal.ForVotes, proposal.AgainstVotes)

	proposalExecutedCounter.Inc(1)
	e.logger.Info("Proposal executed", "id", id, "passed", passed, "for", proposal.ForVotes, "against", proposal.AgainstVotes)
	e.feed.Send(ProposalExecutedEvent{
		ID:           id,
		Passed:       passed,
		ForVotes:     proposal.ForVotes,
		AgainstVotes: proposal.AgainstVotes,
	})

	return proposal, nil
}

// CancelProposal cancels a proposal that has reached no terminal state yet.
// Only the original proposer or the admin may cancel. Cancellation remains
// possible after the deadline, up until execution.
func (e *Engine) CancelProposal(from common.Address, id uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	proposal, err := e.store.Get(id)
	if err != nil {
		return err
	}
	if from != proposal.Proposer && from != e.admin {
		return ErrNotAuthorized
	}
	if proposal.Executed {
		return ErrAlreadyExecuted
	}
	if proposal.Canceled {
		return ErrProposalCanceled
	}

	e.store.setCanceled(id)

	proposalCanceledCounter.Inc(1)
	e.logger.Info("Proposal canceled", "id", id, "by", from)
	e.feed.Send(ProposalCanceledEvent{ID: id, By: from})

	return nil
}

// ExtendProposal pushes the voting deadline of an open proposal out by
// extraDays. Only the original proposer may extend, and only before the
// current deadline has passed.
func (e *Engine) ExtendProposal(from common.Address, id uint64, extraDays uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	proposal, err := e.store.Get(id)
	if err != nil {
		return err
	}
	if from != proposal.Proposer {
		return ErrNotAuthorized
	}
	if extraDays == 0 {
		return ErrInvalidDuration
	}
	if proposal.Canceled || !e.clock.Now().Before(proposal.Deadline) {
		return ErrVotingClosed
	}

	newDeadline := e.store.extendDeadline(id, extraDays)

	proposalExtendedCounter.Inc(1)
	e.logger.Info("Proposal extended", "id", id, "deadline", newDeadline)
	e.feed.Send(ProposalExtendedEvent{ID: id, NewDeadline: newDeadline})

	return nil
}

// SetVoter registers, re-weights or deregisters a voter. Admin only.
func (e *Engine) SetVoter(from common.Address, addr common.Address, weight uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if from != e.admin {
		return ErrNotAuthorized
	}

	changed, err := e.registry.SetVoter(addr, weight)
	if err != nil {
		return err
	}
	if changed {
		e.logger.Info("Voter updated", "voter", addr, "weight", weight, "totalPower", e.registry.TotalVotingPower())
		e.feed.Send(VoterUpdatedEvent{Address: addr, Weight: weight, Removed: weight == 0})
	}

	return nil
}

// SetQuorumPercent changes the quorum percentage applied to future quorum
// checks. Admin only.
func (e *Engine) SetQuorumPercent(from common.Address, percent uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if from != e.admin {
		return ErrNotAuthorized
	}
	if percent == 0 || percent > 100 {
		return ErrInvalidQuorumPercent
	}

	e.quorumPercent = percent
	e.logger.Info("Quorum percent changed", "percent", percent)

	return nil
}

// TransferAdmin hands the admin role to a new identity. Admin only.
func (e *Engine) TransferAdmin(from common.Address, newAdmin common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if from != e.admin {
		return ErrNotAuthorized
	}
	if newAdmin == (common.Address{}) {
		return ErrZeroAddress
	}

	old := e.admin
	e.admin = newAdmin
	e.logger.Info("Admin transferred", "old", old, "new", newAdmin)
	e.feed.Send(AdminTransferredEvent{Old: old, New: newAdmin})

	return nil
}

// GetProposal returns a copy of the proposal with the given id.
func (e *Engine) GetProposal(id uint64) (*Proposal, error) {
	return e.store.Get(id)
}

// ListProposals returns copies of all proposals in ascending id order.
func (e *Engine) ListProposals() []*Proposal {
	return e.store.ListAll()
}

// HasVoted reports whether the voter has already voted on the proposal.
func (e *Engine) HasVoted(id uint64, voter common.Address) (bool, error) {
	return e.store.HasVoted(id, voter)
}

// TotalVotingPower returns the live sum of all registered voter weights.
func (e *Engine) TotalVotingPower() uint64 {
	return e.registry.TotalVotingPower()
}

// IsVoter reports whether the identity is a registered voter.
func (e *Engine) IsVoter(addr common.Address) bool {
	return e.registry.IsRegistered(addr)
}

// WeightOf returns the voting weight of an identity, zero if unregistered.
func (e *Engine) WeightOf(addr common.Address) uint64 {
	return e.registry.WeightOf(addr)
}

// Voters returns all registered voters ordered by address.
func (e *Engine) Voters() []Voter {
	return e.registry.Voters()
}

// Admin returns the current admin identity.
func (e *Engine) Admin() common.Address {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.admin
}

// QuorumPercent returns the quorum percentage currently in effect.
func (e *Engine) QuorumPercent() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.quorumPercent
}

// SubscribeEvents subscribes the channel to the ordered governance event
// stream. Events are sent in commit order.
func (e *Engine) SubscribeEvents(ch chan<- Event) event.Subscription {
	return e.scope.Track(e.feed.Subscribe(ch))
}

// Stop closes all event subscriptions. The engine remains usable for state
// operations afterwards, but no further events are delivered.
func (e *Engine) Stop() {
	e.scope.Close()
}
