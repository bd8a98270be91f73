package game

import (
	"errors"
	"testing"
)

func players(ids ...uint) []Player {
	out := make([]Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, Player{ID: id})
	}
	return out
}

func TestTallyIndividualScoring(t *testing.T) {
	roster := players(1, 2, 3, 4)
	tally := NewTally(players(1), roster, ModeIndividual)

	if err := tally.CastVote(2, 1, DirectionUp); err != nil {
		t.Fatalf("vote from 2: %v", err)
	}
	if err := tally.CastVote(3, 1, DirectionUp); err != nil {
		t.Fatalf("vote from 3: %v", err)
	}
	if err := tally.CastVote(4, 1, DirectionDown); err != nil {
		t.Fatalf("vote from 4: %v", err)
	}

	scores := tally.Finalize()
	if scores[1] != 1 {
		t.Fatalf("expected score 1 for candidate, got %d", scores[1])
	}
}

func TestTallySelfVoteRejected(t *testing.T) {
	tally := NewTally(players(1), players(1, 2, 3), ModeIndividual)
	if err := tally.CastVote(1, 1, DirectionUp); !errors.Is(err, ErrSelfVote) {
		t.Fatalf("expected ErrSelfVote, got %v", err)
	}
}

func TestTallyDuplicateVoteRejected(t *testing.T) {
	tally := NewTally(players(1), players(1, 2, 3), ModeIndividual)
	if err := tally.CastVote(2, 1, DirectionUp); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	if err := tally.CastVote(2, 1, DirectionDown); !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("expected ErrDuplicateVote, got %v", err)
	}

	counts := tally.Counts()
	if counts[1].Up != 1 || counts[1].Down != 0 {
		t.Fatalf("duplicate vote mutated counts: %+v", counts[1])
	}
}

func TestTallyInvalidCandidate(t *testing.T) {
	tally := NewTally(players(1), players(1, 2, 3), ModeIndividual)
	if err := tally.CastVote(2, 99, DirectionUp); !errors.Is(err, ErrInvalidCandidate) {
		t.Fatalf("expected ErrInvalidCandidate, got %v", err)
	}
}

func TestTallyClosedRejectsVotes(t *testing.T) {
	tally := NewTally(players(1), players(1, 2, 3), ModeIndividual)
	tally.Close()
	if err := tally.CastVote(2, 1, DirectionUp); !errors.Is(err, ErrVotingClosed) {
		t.Fatalf("expected ErrVotingClosed, got %v", err)
	}
}

func TestTallyFinalizeIdempotent(t *testing.T) {
	tally := NewTally(players(1), players(1, 2), ModeIndividual)
	if err := tally.CastVote(2, 1, DirectionUp); err != nil {
		t.Fatalf("vote: %v", err)
	}

	first := tally.Finalize()
	second := tally.Finalize()
	if first[1] != 1 || second[1] != 1 {
		t.Fatalf("finalize not stable: first=%d second=%d", first[1], second[1])
	}
}

func TestTallyDuoVoteIsSymmetric(t *testing.T) {
	roster := players(1, 2, 3, 4)
	tally := NewTally(players(1, 2), roster, ModeDuo)

	if err := tally.CastVote(3, 1, DirectionUp); err != nil {
		t.Fatalf("duo vote: %v", err)
	}

	counts := tally.Counts()
	if counts[1].Up != 1 || counts[2].Up != 1 {
		t.Fatalf("duo vote not applied to both members: %+v", counts)
	}
	if !tally.HasVoted(3, 1) || !tally.HasVoted(3, 2) {
		t.Fatal("voter not recorded against both duo members")
	}
}

func TestTallyDuoMemberCannotVote(t *testing.T) {
	tally := NewTally(players(1, 2), players(1, 2, 3), ModeDuo)
	if err := tally.CastVote(2, 1, DirectionUp); !errors.Is(err, ErrSelfVote) {
		t.Fatalf("expected ErrSelfVote for duo member voting, got %v", err)
	}
}

func TestTallyDuoDuplicateIsAtomic(t *testing.T) {
	tally := NewTally(players(1, 2), players(1, 2, 3, 4), ModeDuo)
	if err := tally.CastVote(3, 1, DirectionUp); err != nil {
		t.Fatalf("first duo vote: %v", err)
	}
	// Voting for the other member is still the same logical vote.
	if err := tally.CastVote(3, 2, DirectionDown); !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("expected ErrDuplicateVote, got %v", err)
	}

	counts := tally.Counts()
	if counts[1].Up != 1 || counts[1].Down != 0 || counts[2].Up != 1 || counts[2].Down != 0 {
		t.Fatalf("rejected duo vote mutated counters: %+v", counts)
	}
}

func TestTallyGroupSelfVoteOnly(t *testing.T) {
	roster := players(1, 2, 3)
	tally := NewTally(roster, roster, ModeGroup)

	if err := tally.CastVote(1, 1, DirectionUp); !errors.Is(err, ErrSelfVote) {
		t.Fatalf("expected ErrSelfVote, got %v", err)
	}
	if err := tally.CastVote(1, 2, DirectionUp); err != nil {
		t.Fatalf("cross vote in group mode: %v", err)
	}
}

func TestTallyGroupWinnerTieBreak(t *testing.T) {
	roster := players(1, 2, 3)
	tally := NewTally(roster, roster, ModeGroup)

	// 1 and 2 both end at score 1; candidate order breaks the tie.
	if err := tally.CastVote(2, 1, DirectionUp); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if err := tally.CastVote(3, 2, DirectionUp); err != nil {
		t.Fatalf("vote: %v", err)
	}

	tally.Finalize()
	winner, ok := tally.Winner()
	if !ok {
		t.Fatal("expected a winner")
	}
	if winner != 1 {
		t.Fatalf("tie should go to first responder, got %d", winner)
	}
}

func TestTallyCompleteFastPath(t *testing.T) {
	tally := NewTally(players(1), players(1, 2, 3), ModeIndividual)
	if tally.Complete() {
		t.Fatal("tally complete before any votes")
	}
	if err := tally.CastVote(2, 1, DirectionUp); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if tally.Complete() {
		t.Fatal("tally complete with one of two voters")
	}
	if err := tally.CastVote(3, 1, DirectionDown); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if !tally.Complete() {
		t.Fatal("tally should be complete once all eligible voters voted")
	}
}

func TestTallyNoEligibleVotersNeverCompletes(t *testing.T) {
	// Solo mesa: the only player is the responder, nobody can vote.
	tally := NewTally(players(1), players(1), ModeIndividual)
	if tally.Complete() {
		t.Fatal("tally with no eligible voters must rely on the window timer")
	}
	scores := tally.Finalize()
	if scores[1] != 0 {
		t.Fatalf("expected zero score, got %d", scores[1])
	}
}

func TestTallyIneligibleVoterRejected(t *testing.T) {
	// Eligibility is captured at construction; player 9 joined later.
	tally := NewTally(players(1), players(1, 2), ModeIndividual)
	if err := tally.CastVote(9, 1, DirectionUp); !errors.Is(err, ErrIneligibleVoter) {
		t.Fatalf("expected ErrIneligibleVoter, got %v", err)
	}
}
