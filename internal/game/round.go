package game

import "time"

type Response struct {
	Text     string `json:"text,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
}

func (r Response) Empty() bool {
	return r.Text == "" && r.AudioURL == ""
}

// Round is the mutable unit of play for one mesa. All methods assume the
// caller holds the mesa lock; phases only ever move forward.
type Round struct {
	Card       Card
	Mode       Mode
	Responders []Player
	Roster     []Player
	Challenge  Challenge
	Chat       []ChatMessage
	Response   Response

	Analysis *Analysis
	Rewards  []Reward
	WinnerID uint

	phase        Phase
	chatTurns    int
	maxChatTurns int
	tally        *Tally
	scores       map[uint]int
	votingEndsAt time.Time
}

func newRound(card Card, roster []Player, activeID, partnerID uint, maxChatTurns int) (*Round, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	if maxChatTurns < 1 {
		maxChatTurns = 1
	}

	card.Mode = ParseMode(string(card.Mode))
	r := &Round{
		Card:         card,
		Mode:         card.Mode,
		Roster:       append([]Player(nil), roster...),
		phase:        PhaseSelecting,
		maxChatTurns: maxChatTurns,
	}

	active, ok := findPlayer(roster, activeID)
	if !ok {
		active = roster[0]
	}

	switch r.Mode {
	case ModeGroup:
		r.Responders = append([]Player(nil), roster...)
	case ModeDuo:
		r.Responders = []Player{active}
		if partner, ok := findPlayer(roster, partnerID); ok && partner.ID != active.ID {
			r.Responders = append(r.Responders, partner)
		}
	default:
		r.Responders = []Player{active}
	}

	return r, nil
}

func (r *Round) Phase() Phase {
	return r.phase
}

func (r *Round) showChallenge(ch Challenge) {
	r.Challenge = ch
	r.phase = PhaseChallengeShown
}

func (r *Round) enterChat(persona ChatPersona) error {
	if r.phase != PhaseChallengeShown {
		return ErrInvalidPhase
	}
	r.phase = PhaseChat
	if persona != nil {
		r.Chat = append(r.Chat, persona.Opening(r.Card))
	}
	return nil
}

// addChatMessage appends a participant message. Once the bounded number of
// participant turns is reached the persona supplies a closing message, the
// last participant message becomes the candidate response text, and the
// round advances to awaiting_response.
func (r *Round) addChatMessage(text string, persona ChatPersona) (advanced bool, err error) {
	if r.phase != PhaseChat {
		return false, ErrInvalidPhase
	}
	r.Chat = append(r.Chat, ChatMessage{From: "player", Text: text})
	r.chatTurns++
	if r.chatTurns >= r.maxChatTurns {
		if persona != nil {
			r.Chat = append(r.Chat, persona.Closing(r.Card))
		}
		r.Response.Text = text
		r.phase = PhaseAwaitingResponse
		return true, nil
	}
	return false, nil
}

func (r *Round) skipChat() error {
	if r.phase != PhaseChallengeShown && r.phase != PhaseChat {
		return ErrInvalidPhase
	}
	r.phase = PhaseAwaitingResponse
	return nil
}

// setPartner completes a duo responder set. The partner can be replaced up
// until the response is submitted; after that the set is immutable.
func (r *Round) setPartner(partnerID uint) error {
	if r.Mode != ModeDuo {
		return ErrInvalidPhase
	}
	if r.phase == PhaseVoting || r.phase == PhaseResolved {
		return ErrInvalidPhase
	}
	partner, ok := findPlayer(r.Roster, partnerID)
	if !ok || partner.ID == r.Responders[0].ID {
		return ErrInvalidPartner
	}
	if len(r.Responders) > 1 {
		r.Responders[1] = partner
	} else {
		r.Responders = append(r.Responders, partner)
	}
	return nil
}

func (r *Round) submitResponse(submitterID uint, resp Response) error {
	if r.phase != PhaseAwaitingResponse {
		return ErrInvalidPhase
	}
	if _, ok := findPlayer(r.Responders, submitterID); !ok {
		return ErrNotResponder
	}
	if resp.Empty() {
		return ErrEmptyResponse
	}
	if r.Mode == ModeDuo && len(r.Responders) < 2 {
		return ErrPartnerRequired
	}
	r.Response = resp
	return nil
}

func (r *Round) beginVoting(window time.Duration, now time.Time) {
	r.tally = NewTally(r.Responders, r.Roster, r.Mode)
	r.votingEndsAt = now.Add(window)
	r.phase = PhaseVoting
}

func (r *Round) castVote(voterID, candidateID uint, dir Direction) error {
	switch r.phase {
	case PhaseVoting:
		return r.tally.CastVote(voterID, candidateID, dir)
	case PhaseResolved:
		return ErrVotingClosed
	default:
		return ErrInvalidPhase
	}
}

// resolve finalizes the tally and freezes the scores. Safe to call more
// than once; only the first call does any work.
func (r *Round) resolve() {
	if r.phase == PhaseResolved {
		return
	}
	r.scores = r.tally.Finalize()
	if r.Mode == ModeGroup {
		if winner, ok := r.tally.Winner(); ok {
			r.WinnerID = winner
		}
	}
	r.phase = PhaseResolved
}

func findPlayer(players []Player, id uint) (Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
