package game

import (
	"errors"
	"testing"
	"time"
)

type scriptedPersona struct{}

func (scriptedPersona) Opening(card Card) ChatMessage {
	return ChatMessage{From: "persona", Text: "opening"}
}

func (scriptedPersona) Closing(card Card) ChatMessage {
	return ChatMessage{From: "persona", Text: "closing"}
}

func testCard(mode Mode) Card {
	return Card{ID: 1, Name: "El Delulu", Description: "test", Mode: mode}
}

func startedRound(t *testing.T, mode Mode, roster []Player, activeID, partnerID uint) *Round {
	t.Helper()
	r, err := newRound(testCard(mode), roster, activeID, partnerID, 1)
	if err != nil {
		t.Fatalf("newRound: %v", err)
	}
	r.showChallenge(Challenge{Text: "reto", Source: SourceFallback})
	return r
}

func TestRoundEmptyRoster(t *testing.T) {
	if _, err := newRound(testCard(ModeIndividual), nil, 0, 0, 1); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
}

func TestRoundUnknownActiveDefaultsToFirst(t *testing.T) {
	r := startedRound(t, ModeIndividual, players(5, 6), 99, 0)
	if len(r.Responders) != 1 || r.Responders[0].ID != 5 {
		t.Fatalf("expected first roster player as responder, got %+v", r.Responders)
	}
}

func TestRoundGroupRespondersAreWholeRoster(t *testing.T) {
	r := startedRound(t, ModeGroup, players(1, 2, 3), 1, 0)
	if len(r.Responders) != 3 {
		t.Fatalf("expected 3 responders, got %d", len(r.Responders))
	}
}

func TestRoundPhaseTransitions(t *testing.T) {
	r := startedRound(t, ModeIndividual, players(1, 2), 1, 0)
	if r.Phase() != PhaseChallengeShown {
		t.Fatalf("expected challenge_shown, got %s", r.Phase())
	}

	if err := r.enterChat(scriptedPersona{}); err != nil {
		t.Fatalf("enterChat: %v", err)
	}
	if r.Phase() != PhaseChat {
		t.Fatalf("expected chat, got %s", r.Phase())
	}
	if len(r.Chat) != 1 || r.Chat[0].Text != "opening" {
		t.Fatalf("expected persona opening, got %+v", r.Chat)
	}

	advanced, err := r.addChatMessage("mi respuesta", scriptedPersona{})
	if err != nil {
		t.Fatalf("addChatMessage: %v", err)
	}
	if !advanced {
		t.Fatal("single-turn chat should advance after one message")
	}
	if r.Phase() != PhaseAwaitingResponse {
		t.Fatalf("expected awaiting_response, got %s", r.Phase())
	}
	if r.Response.Text != "mi respuesta" {
		t.Fatalf("last chat message should seed the response, got %q", r.Response.Text)
	}
	if r.Chat[len(r.Chat)-1].Text != "closing" {
		t.Fatal("persona closing missing")
	}

	if err := r.submitResponse(1, Response{Text: "mi respuesta final"}); err != nil {
		t.Fatalf("submitResponse: %v", err)
	}
	r.beginVoting(30*time.Second, time.Now())
	if r.Phase() != PhaseVoting {
		t.Fatalf("expected voting, got %s", r.Phase())
	}

	r.resolve()
	if r.Phase() != PhaseResolved {
		t.Fatalf("expected resolved, got %s", r.Phase())
	}
}

func TestRoundChatBoundedTurns(t *testing.T) {
	r, err := newRound(testCard(ModeIndividual), players(1, 2), 1, 0, 2)
	if err != nil {
		t.Fatalf("newRound: %v", err)
	}
	r.showChallenge(Challenge{Text: "reto", Source: SourceFallback})
	if err := r.enterChat(scriptedPersona{}); err != nil {
		t.Fatalf("enterChat: %v", err)
	}

	advanced, err := r.addChatMessage("primero", scriptedPersona{})
	if err != nil || advanced {
		t.Fatalf("first of two turns should not advance (advanced=%v err=%v)", advanced, err)
	}
	advanced, err = r.addChatMessage("segundo", scriptedPersona{})
	if err != nil || !advanced {
		t.Fatalf("second turn should advance (advanced=%v err=%v)", advanced, err)
	}
	if r.Response.Text != "segundo" {
		t.Fatalf("expected last message as response, got %q", r.Response.Text)
	}

	if _, err := r.addChatMessage("tercero", scriptedPersona{}); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("chat after advancing should fail, got %v", err)
	}
}

func TestRoundSkipChat(t *testing.T) {
	r := startedRound(t, ModeIndividual, players(1, 2), 1, 0)
	if err := r.skipChat(); err != nil {
		t.Fatalf("skipChat: %v", err)
	}
	if r.Phase() != PhaseAwaitingResponse {
		t.Fatalf("expected awaiting_response, got %s", r.Phase())
	}
}

func TestRoundEmptyResponseRejected(t *testing.T) {
	r := startedRound(t, ModeIndividual, players(1, 2), 1, 0)
	if err := r.skipChat(); err != nil {
		t.Fatalf("skipChat: %v", err)
	}
	if err := r.submitResponse(1, Response{}); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
	if err := r.submitResponse(1, Response{AudioURL: "/uploads/audio.mp3"}); err != nil {
		t.Fatalf("audio-only response should be accepted: %v", err)
	}
}

func TestRoundNonResponderCannotSubmit(t *testing.T) {
	r := startedRound(t, ModeIndividual, players(1, 2), 1, 0)
	if err := r.skipChat(); err != nil {
		t.Fatalf("skipChat: %v", err)
	}
	if err := r.submitResponse(2, Response{Text: "no soy yo"}); !errors.Is(err, ErrNotResponder) {
		t.Fatalf("expected ErrNotResponder, got %v", err)
	}
}

func TestRoundDuoPartnerRequired(t *testing.T) {
	r := startedRound(t, ModeDuo, players(1, 2, 3), 1, 0)
	if err := r.skipChat(); err != nil {
		t.Fatalf("skipChat: %v", err)
	}
	if err := r.submitResponse(1, Response{Text: "juntos"}); !errors.Is(err, ErrPartnerRequired) {
		t.Fatalf("expected ErrPartnerRequired, got %v", err)
	}

	if err := r.setPartner(2); err != nil {
		t.Fatalf("setPartner: %v", err)
	}
	if err := r.submitResponse(1, Response{Text: "juntos"}); err != nil {
		t.Fatalf("submit with partner: %v", err)
	}
}

func TestRoundDuoPartnerReplaceableUntilVoting(t *testing.T) {
	r := startedRound(t, ModeDuo, players(1, 2, 3), 1, 2)
	if err := r.setPartner(3); err != nil {
		t.Fatalf("replacing partner before submission: %v", err)
	}
	if r.Responders[1].ID != 3 {
		t.Fatalf("partner not replaced, got %d", r.Responders[1].ID)
	}

	if err := r.setPartner(1); !errors.Is(err, ErrInvalidPartner) {
		t.Fatalf("active player as partner should fail, got %v", err)
	}
	if err := r.setPartner(99); !errors.Is(err, ErrInvalidPartner) {
		t.Fatalf("unknown partner should fail, got %v", err)
	}

	if err := r.skipChat(); err != nil {
		t.Fatalf("skipChat: %v", err)
	}
	if err := r.submitResponse(1, Response{Text: "juntos"}); err != nil {
		t.Fatalf("submitResponse: %v", err)
	}
	r.beginVoting(30*time.Second, time.Now())
	if err := r.setPartner(2); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("partner change during voting should fail, got %v", err)
	}
}

func TestRoundVoteOutsideVotingPhase(t *testing.T) {
	r := startedRound(t, ModeIndividual, players(1, 2), 1, 0)
	if err := r.castVote(2, 1, DirectionUp); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("expected ErrInvalidPhase before voting, got %v", err)
	}

	if err := r.skipChat(); err != nil {
		t.Fatalf("skipChat: %v", err)
	}
	if err := r.submitResponse(1, Response{Text: "ok"}); err != nil {
		t.Fatalf("submitResponse: %v", err)
	}
	r.beginVoting(30*time.Second, time.Now())
	r.resolve()
	if err := r.castVote(2, 1, DirectionUp); !errors.Is(err, ErrVotingClosed) {
		t.Fatalf("expected ErrVotingClosed after resolution, got %v", err)
	}
}

func TestRoundResolveIdempotent(t *testing.T) {
	r := startedRound(t, ModeGroup, players(1, 2, 3), 1, 0)
	if err := r.skipChat(); err != nil {
		t.Fatalf("skipChat: %v", err)
	}
	if err := r.submitResponse(1, Response{Text: "grupo"}); err != nil {
		t.Fatalf("submitResponse: %v", err)
	}
	r.beginVoting(30*time.Second, time.Now())
	if err := r.castVote(2, 1, DirectionUp); err != nil {
		t.Fatalf("castVote: %v", err)
	}

	r.resolve()
	winner := r.WinnerID
	r.resolve()
	if r.WinnerID != winner {
		t.Fatalf("winner changed on second resolve: %d != %d", r.WinnerID, winner)
	}
	if r.scores[1] != 1 {
		t.Fatalf("expected score 1, got %d", r.scores[1])
	}
}
