package game

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

type VoteCount struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

type candidateVotes struct {
	up     int
	down   int
	voters map[uint]bool
}

// Tally collects up/down votes for the candidates of one round. Eligibility
// is captured at construction time; roster changes mid-round have no effect.
// Not safe for concurrent use: the manager serializes all events per mesa.
type Tally struct {
	candidates []uint // responder set, iteration order preserved
	counts     map[uint]*candidateVotes
	eligible   map[uint]map[uint]bool // candidateID -> voter IDs allowed to vote
	duo        bool
	closed     bool
	finalized  bool
	scores     map[uint]int
}

// NewTally builds a tally for the given responder set. In individual and duo
// modes the eligible voters for every candidate are the roster minus the
// responder set; in group mode every player is a candidate and may vote for
// everyone but themselves.
func NewTally(responders []Player, roster []Player, mode Mode) *Tally {
	t := &Tally{
		counts:   make(map[uint]*candidateVotes),
		eligible: make(map[uint]map[uint]bool),
		duo:      mode == ModeDuo,
	}

	responderSet := make(map[uint]bool, len(responders))
	for _, p := range responders {
		responderSet[p.ID] = true
	}

	for _, p := range responders {
		if _, ok := t.counts[p.ID]; ok {
			continue
		}
		t.candidates = append(t.candidates, p.ID)
		t.counts[p.ID] = &candidateVotes{voters: make(map[uint]bool)}

		voters := make(map[uint]bool)
		for _, r := range roster {
			if mode == ModeGroup {
				if r.ID != p.ID {
					voters[r.ID] = true
				}
			} else if !responderSet[r.ID] {
				voters[r.ID] = true
			}
		}
		t.eligible[p.ID] = voters
	}

	return t
}

// CastVote applies one vote. In duo mode a single call is a vote for the
// pair: both members' counters move together under the same voter, or
// neither moves at all.
func (t *Tally) CastVote(voterID, candidateID uint, dir Direction) error {
	if t.closed {
		return ErrVotingClosed
	}

	cv, ok := t.counts[candidateID]
	if !ok {
		return ErrInvalidCandidate
	}
	if voterID == candidateID {
		return ErrSelfVote
	}
	if t.duo {
		// A vote for the pair touches both members, so neither member may
		// be the voter.
		if _, isMember := t.counts[voterID]; isMember {
			return ErrSelfVote
		}
	}
	if !t.eligible[candidateID][voterID] {
		return ErrIneligibleVoter
	}

	targets := []*candidateVotes{cv}
	if t.duo {
		targets = targets[:0]
		for _, id := range t.candidates {
			targets = append(targets, t.counts[id])
		}
	}

	// Validate everything before mutating anything.
	for _, target := range targets {
		if target.voters[voterID] {
			return ErrDuplicateVote
		}
	}
	for _, target := range targets {
		if dir == DirectionDown {
			target.down++
		} else {
			target.up++
		}
		target.voters[voterID] = true
	}
	return nil
}

// Complete reports whether every eligible voter has voted for every
// candidate. With no eligible voters at all it stays false and the window
// timer becomes the effective closure mechanism.
func (t *Tally) Complete() bool {
	any := false
	for id, voters := range t.eligible {
		if len(voters) == 0 {
			continue
		}
		any = true
		if len(t.counts[id].voters) < len(voters) {
			return false
		}
	}
	return any
}

// Close rejects further votes without computing scores. Used by the window
// timer; Finalize also closes.
func (t *Tally) Close() {
	t.closed = true
}

// Finalize computes up minus down per candidate. Idempotent: repeated calls
// return the cached scores without recounting.
func (t *Tally) Finalize() map[uint]int {
	if t.finalized {
		return t.scores
	}
	t.closed = true
	t.finalized = true
	t.scores = make(map[uint]int, len(t.candidates))
	for _, id := range t.candidates {
		cv := t.counts[id]
		t.scores[id] = cv.up - cv.down
	}
	return t.scores
}

// Winner returns the candidate with the highest score, ties broken by
// responder-set order. Only meaningful after Finalize.
func (t *Tally) Winner() (uint, bool) {
	if !t.finalized || len(t.candidates) == 0 {
		return 0, false
	}
	winner := t.candidates[0]
	best := t.scores[winner]
	for _, id := range t.candidates[1:] {
		if t.scores[id] > best {
			winner, best = id, t.scores[id]
		}
	}
	return winner, true
}

func (t *Tally) HasVoted(voterID, candidateID uint) bool {
	cv, ok := t.counts[candidateID]
	return ok && cv.voters[voterID]
}

// Counts returns a snapshot of the per-candidate counters.
func (t *Tally) Counts() map[uint]VoteCount {
	out := make(map[uint]VoteCount, len(t.candidates))
	for id, cv := range t.counts {
		out[id] = VoteCount{Up: cv.up, Down: cv.down}
	}
	return out
}

func (t *Tally) Candidates() []uint {
	out := make([]uint, len(t.candidates))
	copy(out, t.candidates)
	return out
}
