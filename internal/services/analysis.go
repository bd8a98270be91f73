package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"

	"mesa-game-backend/internal/game"
)

// AnalysisService scores a submitted response on the four reward
// dimensions. Like the challenge provider it never fails outward: any
// upstream problem produces a generated default analysis instead.
type AnalysisService struct {
	challenge *ChallengeService
}

func NewAnalysisService(challenge *ChallengeService) *AnalysisService {
	return &AnalysisService{challenge: challenge}
}

type analysisPayload struct {
	Creativity   int    `json:"creativity"`
	Humor        int    `json:"humor"`
	Authenticity int    `json:"authenticity"`
	Virality     int    `json:"virality"`
	Category     string `json:"category"`
	Feedback     string `json:"feedback"`
}

func (s *AnalysisService) Analyze(ctx context.Context, text, audioURL string, card game.Card) game.Analysis {
	if s.challenge == nil || !s.challenge.IsAvailable() {
		return defaultAnalysis(card)
	}

	audioNote := ""
	if audioURL != "" {
		audioNote = "El usuario también grabó un audio (no puedes escucharlo, pero asume que fue increíble)."
	}

	prompt := fmt.Sprintf(`Analiza esta respuesta a un desafío de un juego de cartas Gen Z: "%s"

Contexto: La carta era "%s" que trata sobre "%s". %s

Responde SOLO con JSON válido (sin markdown) con estos campos:
- creativity: número del 1 al 100
- humor: número del 1 al 100
- authenticity: número del 1 al 100
- virality: número del 1 al 100
- category: una de ["Humor", "Creatividad", "Drama", "Confesión", "Viral", "Delulu", "Cringe", "Aesthetic"]
- feedback: 2 líneas máximo con slang de Gen Z, incluye 1 emoji y 1 referencia a Instagram`,
		text, card.Name, card.Description, audioNote)

	content, err := s.challenge.complete(ctx, prompt, 0.7)
	if err != nil {
		log.Printf("analysis: scoring failed for card %q, using default: %v", card.Name, err)
		return defaultAnalysis(card)
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleanJSONContent(content)), &payload); err != nil {
		log.Printf("analysis: model returned invalid JSON, using default: %v", err)
		return defaultAnalysis(card)
	}

	analysis := game.Analysis{
		Creativity:   clampScore(payload.Creativity),
		Humor:        clampScore(payload.Humor),
		Authenticity: clampScore(payload.Authenticity),
		Virality:     clampScore(payload.Virality),
		Category:     payload.Category,
		Feedback:     payload.Feedback,
	}
	if analysis.Category == "" {
		analysis.Category = DefaultRewardCategory
	}
	if analysis.Feedback == "" {
		analysis.Feedback = randomFeedback()
	}
	return analysis
}

// defaultAnalysis fabricates plausible scores; the primary category is the
// highest-scoring dimension so rewards still vary.
func defaultAnalysis(card game.Card) game.Analysis {
	a := game.Analysis{
		Creativity:   rand.Intn(100),
		Humor:        rand.Intn(100),
		Authenticity: rand.Intn(100),
		Virality:     rand.Intn(100),
		Feedback:     randomFeedback(),
	}

	a.Category = "Creatividad"
	best := a.Creativity
	if a.Humor > best {
		a.Category, best = "Humor", a.Humor
	}
	if a.Authenticity > best {
		a.Category, best = "Confesión", a.Authenticity
	}
	if a.Virality > best {
		a.Category = "Viral"
	}
	return a
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
