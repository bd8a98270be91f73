package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mesa-game-backend/internal/game"
)

func testGameCard() game.Card {
	return game.Card{ID: 1, Name: "El Delulu", Description: "teorías delulu", Mode: game.ModeIndividual}
}

func TestGenerateChallengeWithoutKey(t *testing.T) {
	s := NewChallengeService("", "https://api.openai.com/v1", "gpt-4")

	ch := s.GenerateChallenge(context.Background(), testGameCard(), "delulu")
	if ch.Source != game.SourceFallback {
		t.Fatalf("expected fallback without API key, got %s", ch.Source)
	}
	if ch.Text != FallbackChallenge("El Delulu") {
		t.Fatalf("expected card fallback, got %q", ch.Text)
	}
}

func TestGenerateChallengeFromAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Confiesa tu ick más random 🚩 #TraumaBonding"}}]}`))
	}))
	defer server.Close()

	s := NewChallengeService("test-key", server.URL, "gpt-4")
	ch := s.GenerateChallenge(context.Background(), testGameCard(), "delulu")
	if ch.Source != game.SourceGenerated {
		t.Fatalf("expected generated challenge, got %s (err=%q)", ch.Source, ch.Err)
	}
	if ch.Text != "Confiesa tu ick más random 🚩 #TraumaBonding" {
		t.Fatalf("unexpected challenge text %q", ch.Text)
	}
}

func TestGenerateChallengeAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := NewChallengeService("test-key", server.URL, "gpt-4")
	ch := s.GenerateChallenge(context.Background(), testGameCard(), "delulu")
	if ch.Source != game.SourceFallback {
		t.Fatalf("expected fallback on API failure, got %s", ch.Source)
	}
	if ch.Text == "" {
		t.Fatal("fallback must carry text")
	}
	if ch.Err == "" {
		t.Fatal("fallback from a failure should record the error")
	}
}

func TestGenerateChallengeUnknownCard(t *testing.T) {
	s := NewChallengeService("", "", "")
	ch := s.GenerateChallenge(context.Background(), game.Card{Name: "Carta Nueva"}, "")
	if ch.Text != defaultChallenge {
		t.Fatalf("unknown card should use the default challenge, got %q", ch.Text)
	}
}

func TestCleanJSONContent(t *testing.T) {
	in := "```json\n{\"humor\": 80}\n```"
	if got := cleanJSONContent(in); got != `{"humor": 80}` {
		t.Fatalf("cleanJSONContent = %q", got)
	}
	if got := cleanJSONContent(`{"humor": 80}`); got != `{"humor": 80}` {
		t.Fatalf("plain JSON changed: %q", got)
	}
}
