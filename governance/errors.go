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

import "errors"

// Authorization errors
var (
	ErrNotAuthorized = errors.New("caller is not authorized for this operation")
	ErrNoVotingPower = errors.New("caller has no voting power")
)

// Argument errors
var (
	ErrZeroAddress          = errors.New("zero address is not a valid identity")
	ErrInvalidDuration      = errors.New("duration must be greater than zero")
	ErrInvalidQuorumPercent = errors.New("quorum percent must be between 1 and 100")
)

// Proposal lifecycle errors
var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrVotingClosed     = errors.New("voting period has ended or proposal was canceled")
	ErrAlreadyVoted     = errors.New("voter has already voted on this proposal")
	ErrAlreadyExecuted  = errors.New("proposal already executed")
	ErrProposalCanceled = errors.New("proposal has been canceled")
	ErrVotingStillOpen  = errors.New("voting period has not ended yet")
	ErrQuorumNotReached = errors.New("quorum has not been reached")
)

// Execution exclusion errors
var (
	ErrReentrantCall = errors.New("reentrant execution call rejected")
)
