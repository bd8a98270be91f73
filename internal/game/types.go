package game

import "context"

type Phase string

const (
	PhaseSelecting        Phase = "selecting"
	PhaseChallengeShown   Phase = "challenge_shown"
	PhaseChat             Phase = "chat"
	PhaseAwaitingResponse Phase = "awaiting_response"
	PhaseVoting           Phase = "voting"
	PhaseResolved         Phase = "resolved"
)

type Mode string

const (
	ModeIndividual Mode = "individual"
	ModeDuo        Mode = "duo"
	ModeGroup      Mode = "group"
)

// ParseMode maps unknown or missing modes to individual.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeIndividual, ModeDuo, ModeGroup:
		return Mode(s)
	default:
		return ModeIndividual
	}
}

type Player struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
}

type Card struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Mode        Mode                   `json:"mode"`
	Variables   map[string]interface{} `json:"variables,omitempty"`
}

const (
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

// Challenge is what a ContentProvider returns. Source is always exactly
// "generated" or "fallback"; provider failures surface as a fallback with
// Err set for observability, never as an error value.
type Challenge struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Err    string `json:"error,omitempty"`
}

type ContentProvider interface {
	GenerateChallenge(ctx context.Context, card Card, vibe string) Challenge
}

type Analysis struct {
	Creativity   int    `json:"creativity"`
	Humor        int    `json:"humor"`
	Authenticity int    `json:"authenticity"`
	Virality     int    `json:"virality"`
	Category     string `json:"category"`
	Feedback     string `json:"feedback"`
}

// Analyzer scores a submitted response. A nil Analyzer is a supported
// configuration; the reward resolver then works from its defaults.
type Analyzer interface {
	Analyze(ctx context.Context, text, audioURL string, card Card) Analysis
}

type Reward struct {
	ID          uint   `json:"id,omitempty"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Tier        int    `json:"tier,omitempty"`
}

// RewardResolver must degrade to built-in generics rather than fail.
type RewardResolver interface {
	Resolve(ctx context.Context, analysis *Analysis) []Reward
}

type ChatMessage struct {
	From string `json:"from"` // "player" or "persona"
	Text string `json:"text"`
}

// ChatPersona supplies the scripted side of the contextual chat for a card.
type ChatPersona interface {
	Opening(card Card) ChatMessage
	Closing(card Card) ChatMessage
}

type Event struct {
	Type   string      `json:"type"`
	MesaID uint        `json:"mesa_id"`
	Data   interface{} `json:"data,omitempty"`
}

// EventSink receives round lifecycle events. Emission is fire-and-forget:
// round correctness never depends on a sink succeeding.
type EventSink interface {
	Emit(event Event)
}
