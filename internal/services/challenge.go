package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"mesa-game-backend/internal/game"
)

// ChallengeService is the content provider for round challenges. Every
// failure path degrades to the fallback table; GenerateChallenge never
// surfaces an error to the round.
type ChallengeService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewChallengeService(apiKey, apiURL, model string) *ChallengeService {
	return &ChallengeService{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *ChallengeService) IsAvailable() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *ChallengeService) GenerateChallenge(ctx context.Context, card game.Card, vibe string) game.Challenge {
	if !s.IsAvailable() {
		return game.Challenge{Text: FallbackChallenge(card.Name), Source: game.SourceFallback}
	}
	if vibe == "" {
		vibe = "delulu"
	}

	prompt := fmt.Sprintf(`Eres un influencer tóxico de TikTok con 2M seguidores. Genera un reto para %s que:
- Use 1 slang de Gen Z (ej: "delulu", "ick", "no pick me")
- Incluya 1 referencia a cultura pop (ej: "Taylor Swift", "Dua Lipa en la peda")
- Tenga 1 emoji y 1 hashtag inventado
- Ejemplo: "Confiesa tu ick más random (🚩) y gana un shot si usas #TraumaBonding"

Vibe del usuario: %s

Descripción de la carta: %s

IMPORTANTE: Genera un desafío único y creativo relacionado específicamente con el tema de la carta.`,
		card.Name, vibe, card.Description)

	text, err := s.complete(ctx, prompt, 0.9)
	if err != nil {
		log.Printf("challenge: generation failed for card %q, using fallback: %v", card.Name, err)
		return game.Challenge{
			Text:   FallbackChallenge(card.Name),
			Source: game.SourceFallback,
			Err:    err.Error(),
		}
	}
	if text == "" {
		return game.Challenge{Text: FallbackChallenge(card.Name), Source: game.SourceFallback}
	}
	return game.Challenge{Text: text, Source: game.SourceGenerated}
}

func (s *ChallengeService) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
