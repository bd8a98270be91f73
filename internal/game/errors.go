package game

import "errors"

var (
	ErrNoRound          = errors.New("no active round")
	ErrRoundInProgress  = errors.New("round already in progress")
	ErrInvalidPhase     = errors.New("invalid phase for action")
	ErrEmptyResponse    = errors.New("response requires text or audio")
	ErrPartnerRequired  = errors.New("duo round requires a partner before responding")
	ErrInvalidPartner   = errors.New("partner must be another mesa member")
	ErrNotResponder     = errors.New("player is not a responder for this round")
	ErrSelfVote         = errors.New("players cannot vote for themselves")
	ErrDuplicateVote    = errors.New("voter has already voted for this candidate")
	ErrInvalidCandidate = errors.New("candidate is not part of this round")
	ErrIneligibleVoter  = errors.New("voter is not part of this round's roster")
	ErrVotingClosed     = errors.New("voting is closed for this round")
	ErrEmptyRoster      = errors.New("round requires at least one player")
)
