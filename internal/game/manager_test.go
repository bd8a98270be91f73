package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type stubProvider struct {
	fail bool
}

func (p stubProvider) GenerateChallenge(ctx context.Context, card Card, vibe string) Challenge {
	if p.fail {
		return Challenge{Text: "reto de respaldo", Source: SourceFallback, Err: "provider timeout"}
	}
	return Challenge{Text: "reto generado para " + card.Name, Source: SourceGenerated}
}

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(ctx context.Context, text, audioURL string, card Card) Analysis {
	return Analysis{Creativity: 80, Humor: 60, Authenticity: 70, Virality: 50, Category: "Humor", Feedback: "ok"}
}

type stubRewards struct{}

func (stubRewards) Resolve(ctx context.Context, analysis *Analysis) []Reward {
	return []Reward{
		{Kind: "playlist", Name: "a"},
		{Kind: "filter", Name: "b"},
		{Kind: "document", Name: "c"},
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Emit(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestManager(opts Options) (*Manager, *recordingSink) {
	sink := &recordingSink{}
	m := NewManager(stubProvider{}, stubAnalyzer{}, stubRewards{}, scriptedPersona{}, sink, opts)
	return m, sink
}

func TestManagerFullIndividualRound(t *testing.T) {
	m, sink := newTestManager(Options{})
	roster := players(1, 2, 3)
	ctx := context.Background()

	view, err := m.StartRound(ctx, 7, testCard(ModeIndividual), roster, 1, 0, "delulu")
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if view.Phase != PhaseChallengeShown {
		t.Fatalf("expected challenge_shown, got %s", view.Phase)
	}
	if view.Challenge.Source != SourceGenerated {
		t.Fatalf("expected generated challenge, got %s", view.Challenge.Source)
	}

	if _, err := m.SkipChat(7); err != nil {
		t.Fatalf("SkipChat: %v", err)
	}
	view, err = m.SubmitResponse(7, 1, Response{Text: "mi confesión"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if view.Phase != PhaseVoting {
		t.Fatalf("expected voting, got %s", view.Phase)
	}
	if view.EndsAt == nil {
		t.Fatal("voting view missing window deadline")
	}

	if _, err := m.CastVote(7, 2, 1, DirectionUp); err != nil {
		t.Fatalf("vote from 2: %v", err)
	}
	view, err = m.CastVote(7, 3, 1, DirectionUp)
	if err != nil {
		t.Fatalf("vote from 3: %v", err)
	}

	// All eligible voters voted: the fast path resolves immediately.
	if view.Phase != PhaseResolved {
		t.Fatalf("expected resolved after last vote, got %s", view.Phase)
	}
	if view.Scores[1] != 2 {
		t.Fatalf("expected score 2, got %d", view.Scores[1])
	}
	if view.Analysis == nil {
		t.Fatal("resolved view missing analysis")
	}
	if len(view.Rewards) != 3 {
		t.Fatalf("expected 3 rewards, got %d", len(view.Rewards))
	}

	got := sink.types()
	want := []string{"round_started", "phase_changed", "voting_opened", "vote_cast", "vote_cast", "round_resolved"}
	if len(got) != len(want) {
		t.Fatalf("event sequence %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, got[i], want[i])
		}
	}

	if err := m.EndRound(7); err != nil {
		t.Fatalf("EndRound: %v", err)
	}
	if _, err := m.RoundView(7); !errors.Is(err, ErrNoRound) {
		t.Fatalf("expected ErrNoRound after EndRound, got %v", err)
	}
}

func TestManagerRejectsConcurrentRound(t *testing.T) {
	m, _ := newTestManager(Options{})
	ctx := context.Background()
	roster := players(1, 2)

	if _, err := m.StartRound(ctx, 1, testCard(ModeIndividual), roster, 1, 0, ""); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if _, err := m.StartRound(ctx, 1, testCard(ModeIndividual), roster, 2, 0, ""); !errors.Is(err, ErrRoundInProgress) {
		t.Fatalf("expected ErrRoundInProgress, got %v", err)
	}

	// A different mesa is unaffected.
	if _, err := m.StartRound(ctx, 2, testCard(ModeIndividual), roster, 1, 0, ""); err != nil {
		t.Fatalf("StartRound on second mesa: %v", err)
	}
}

func TestManagerEndRoundRequiresResolution(t *testing.T) {
	m, _ := newTestManager(Options{})
	if _, err := m.StartRound(context.Background(), 1, testCard(ModeIndividual), players(1, 2), 1, 0, ""); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if err := m.EndRound(1); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("expected ErrInvalidPhase, got %v", err)
	}
}

func TestManagerWindowTimerResolves(t *testing.T) {
	m, _ := newTestManager(Options{VotingWindow: 30 * time.Millisecond})
	ctx := context.Background()

	if _, err := m.StartRound(ctx, 1, testCard(ModeIndividual), players(1, 2, 3), 1, 0, ""); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if _, err := m.SkipChat(1); err != nil {
		t.Fatalf("SkipChat: %v", err)
	}
	if _, err := m.SubmitResponse(1, 1, Response{Text: "tarde"}); err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if _, err := m.CastVote(1, 2, 1, DirectionUp); err != nil {
		t.Fatalf("vote: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		view, err := m.RoundView(1)
		if err != nil {
			t.Fatalf("RoundView: %v", err)
		}
		if view.Phase == PhaseResolved {
			if view.Scores[1] != 1 {
				t.Fatalf("expected score 1 from partial voting, got %d", view.Scores[1])
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("window timer did not resolve the round")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if _, err := m.CastVote(1, 3, 1, DirectionUp); !errors.Is(err, ErrVotingClosed) {
		t.Fatalf("expected ErrVotingClosed after timeout, got %v", err)
	}
}

func TestManagerForceResolve(t *testing.T) {
	m, _ := newTestManager(Options{})
	ctx := context.Background()

	if _, err := m.StartRound(ctx, 1, testCard(ModeIndividual), players(1, 2, 3), 1, 0, ""); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if _, err := m.ForceResolve(1); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("force resolve outside voting should fail, got %v", err)
	}

	if _, err := m.SkipChat(1); err != nil {
		t.Fatalf("SkipChat: %v", err)
	}
	if _, err := m.SubmitResponse(1, 1, Response{Text: "ya"}); err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	view, err := m.ForceResolve(1)
	if err != nil {
		t.Fatalf("ForceResolve: %v", err)
	}
	if view.Phase != PhaseResolved {
		t.Fatalf("expected resolved, got %s", view.Phase)
	}
}

func TestManagerDuoFlow(t *testing.T) {
	m, _ := newTestManager(Options{})
	ctx := context.Background()
	roster := players(1, 2, 3, 4)

	if _, err := m.StartRound(ctx, 1, testCard(ModeDuo), roster, 1, 0, ""); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if _, err := m.ChoosePartner(1, 2); err != nil {
		t.Fatalf("ChoosePartner: %v", err)
	}
	if _, err := m.SkipChat(1); err != nil {
		t.Fatalf("SkipChat: %v", err)
	}
	if _, err := m.SubmitResponse(1, 1, Response{Text: "dueto"}); err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	view, err := m.CastVote(1, 3, 1, DirectionUp)
	if err != nil {
		t.Fatalf("vote: %v", err)
	}
	if view.Votes[1].Up != 1 || view.Votes[2].Up != 1 {
		t.Fatalf("duo vote not mirrored: %+v", view.Votes)
	}

	view, err = m.CastVote(1, 4, 2, DirectionUp)
	if err != nil {
		t.Fatalf("vote: %v", err)
	}
	if view.Phase != PhaseResolved {
		t.Fatalf("expected fast-path resolution, got %s", view.Phase)
	}
	if view.Scores[1] != 2 || view.Scores[2] != 2 {
		t.Fatalf("expected symmetric scores of 2, got %v", view.Scores)
	}
}

func TestManagerProviderFallback(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(stubProvider{fail: true}, nil, stubRewards{}, scriptedPersona{}, sink, Options{})

	view, err := m.StartRound(context.Background(), 1, testCard(ModeIndividual), players(1, 2), 1, 0, "")
	if err != nil {
		t.Fatalf("StartRound must absorb provider failures: %v", err)
	}
	if view.Challenge.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", view.Challenge.Source)
	}
	if view.Challenge.Text == "" {
		t.Fatal("fallback challenge must have text")
	}
}

func TestManagerChatFlow(t *testing.T) {
	m, _ := newTestManager(Options{ChatTurns: 1})
	ctx := context.Background()

	if _, err := m.StartRound(ctx, 1, testCard(ModeIndividual), players(1, 2), 1, 0, ""); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	view, err := m.EnterChat(1)
	if err != nil {
		t.Fatalf("EnterChat: %v", err)
	}
	if view.Phase != PhaseChat {
		t.Fatalf("expected chat, got %s", view.Phase)
	}

	view, err = m.SendChatMessage(1, "hola crush")
	if err != nil {
		t.Fatalf("SendChatMessage: %v", err)
	}
	if view.Phase != PhaseAwaitingResponse {
		t.Fatalf("expected awaiting_response after final turn, got %s", view.Phase)
	}
	if view.Response == nil || view.Response.Text != "hola crush" {
		t.Fatalf("chat should seed the response, got %+v", view.Response)
	}
}
