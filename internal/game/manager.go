package game

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultVotingWindow = 30 * time.Second
	DefaultChatTurns    = 1
)

type Options struct {
	VotingWindow time.Duration
	ChatTurns    int
}

// Manager owns the active round for every mesa. Each mesa has its own lock,
// so events for one mesa are handled strictly one at a time while distinct
// mesas proceed in parallel without coordination.
type Manager struct {
	mu    sync.RWMutex
	mesas map[uint]*mesaState

	provider ContentProvider
	analyzer Analyzer
	rewards  RewardResolver
	persona  ChatPersona
	sink     EventSink

	votingWindow time.Duration
	chatTurns    int
}

type mesaState struct {
	mu    sync.Mutex
	round *Round
	timer *time.Timer
}

func NewManager(provider ContentProvider, analyzer Analyzer, rewards RewardResolver, persona ChatPersona, sink EventSink, opts Options) *Manager {
	if opts.VotingWindow <= 0 {
		opts.VotingWindow = DefaultVotingWindow
	}
	if opts.ChatTurns <= 0 {
		opts.ChatTurns = DefaultChatTurns
	}
	return &Manager{
		mesas:        make(map[uint]*mesaState),
		provider:     provider,
		analyzer:     analyzer,
		rewards:      rewards,
		persona:      persona,
		sink:         sink,
		votingWindow: opts.VotingWindow,
		chatTurns:    opts.ChatTurns,
	}
}

func (m *Manager) mesa(mesaID uint) *mesaState {
	m.mu.Lock()
	defer m.mu.Unlock()
	ms := m.mesas[mesaID]
	if ms == nil {
		ms = &mesaState{}
		m.mesas[mesaID] = ms
	}
	return ms
}

// StartRound binds a fresh round to the chosen card and requests challenge
// text from the content provider. Provider failures are absorbed into a
// fallback challenge; this call only fails on caller errors (round already
// running, empty roster).
func (m *Manager) StartRound(ctx context.Context, mesaID uint, card Card, roster []Player, activeID, partnerID uint, vibe string) (*RoundView, error) {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.round != nil && ms.round.Phase() != PhaseResolved {
		return nil, ErrRoundInProgress
	}

	round, err := newRound(card, roster, activeID, partnerID, m.chatTurns)
	if err != nil {
		return nil, err
	}

	challenge := m.provider.GenerateChallenge(ctx, round.Card, vibe)
	round.showChallenge(challenge)
	ms.round = round

	m.emit(Event{Type: "round_started", MesaID: mesaID, Data: m.viewLocked(round)})
	return m.viewLocked(round), nil
}

func (m *Manager) EnterChat(mesaID uint) (*RoundView, error) {
	return m.withRound(mesaID, func(r *Round) error {
		return r.enterChat(m.persona)
	}, "phase_changed")
}

func (m *Manager) SendChatMessage(mesaID uint, text string) (*RoundView, error) {
	return m.withRound(mesaID, func(r *Round) error {
		_, err := r.addChatMessage(text, m.persona)
		return err
	}, "chat_message")
}

func (m *Manager) SkipChat(mesaID uint) (*RoundView, error) {
	return m.withRound(mesaID, func(r *Round) error {
		return r.skipChat()
	}, "phase_changed")
}

func (m *Manager) ChoosePartner(mesaID, partnerID uint) (*RoundView, error) {
	return m.withRound(mesaID, func(r *Round) error {
		return r.setPartner(partnerID)
	}, "partner_chosen")
}

// SubmitResponse accepts the responder set's answer and opens the voting
// window. The window timer resolves the round if voting does not complete
// in time.
func (m *Manager) SubmitResponse(mesaID, submitterID uint, resp Response) (*RoundView, error) {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.round == nil {
		return nil, ErrNoRound
	}
	if err := ms.round.submitResponse(submitterID, resp); err != nil {
		return nil, err
	}

	ms.round.beginVoting(m.votingWindow, time.Now())
	round := ms.round
	ms.timer = time.AfterFunc(m.votingWindow, func() {
		m.resolveOnTimeout(mesaID, round)
	})

	m.emit(Event{Type: "voting_opened", MesaID: mesaID, Data: m.viewLocked(ms.round)})
	return m.viewLocked(ms.round), nil
}

// CastVote applies one vote in arrival order. The all-voted check runs
// after the vote is applied, so a completing vote and the window timer can
// never double-resolve the round.
func (m *Manager) CastVote(mesaID, voterID, candidateID uint, dir Direction) (*RoundView, error) {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.round == nil {
		return nil, ErrNoRound
	}
	if err := ms.round.castVote(voterID, candidateID, dir); err != nil {
		return nil, err
	}

	m.emit(Event{Type: "vote_cast", MesaID: mesaID, Data: map[string]interface{}{
		"voter_id":     voterID,
		"candidate_id": candidateID,
		"direction":    dir,
		"votes":        ms.round.tally.Counts(),
	}})

	if ms.round.tally.Complete() {
		m.resolveLocked(mesaID, ms)
	}
	return m.viewLocked(ms.round), nil
}

// ForceResolve closes voting early, the equivalent of the host ending the
// vote by hand.
func (m *Manager) ForceResolve(mesaID uint) (*RoundView, error) {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.round == nil {
		return nil, ErrNoRound
	}
	if ms.round.Phase() != PhaseVoting {
		return nil, ErrInvalidPhase
	}
	m.resolveLocked(mesaID, ms)
	return m.viewLocked(ms.round), nil
}

func (m *Manager) RoundView(mesaID uint) (*RoundView, error) {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.round == nil {
		return nil, ErrNoRound
	}
	return m.viewLocked(ms.round), nil
}

// EndRound drops a resolved round so the mesa returns to card selection.
func (m *Manager) EndRound(mesaID uint) error {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.round == nil {
		return ErrNoRound
	}
	if ms.round.Phase() != PhaseResolved {
		return ErrInvalidPhase
	}
	ms.round = nil
	return nil
}

func (m *Manager) resolveOnTimeout(mesaID uint, round *Round) {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	// The round may have resolved via the fast path or been replaced while
	// the timer was pending.
	if ms.round != round || round.Phase() != PhaseVoting {
		return
	}
	m.resolveLocked(mesaID, ms)
}

// resolveLocked finalizes the tally, runs the optional analyzer and the
// reward resolver, and emits the terminal event. Collaborator failures
// degrade; they never fail the round.
func (m *Manager) resolveLocked(mesaID uint, ms *mesaState) {
	round := ms.round
	round.resolve()
	if ms.timer != nil {
		ms.timer.Stop()
		ms.timer = nil
	}

	ctx := context.Background()
	if m.analyzer != nil && !round.Response.Empty() {
		analysis := m.analyzer.Analyze(ctx, round.Response.Text, round.Response.AudioURL, round.Card)
		round.Analysis = &analysis
	}
	if m.rewards != nil {
		round.Rewards = m.rewards.Resolve(ctx, round.Analysis)
	}

	m.emit(Event{Type: "round_resolved", MesaID: mesaID, Data: m.viewLocked(round)})
}

func (m *Manager) withRound(mesaID uint, fn func(*Round) error, eventType string) (*RoundView, error) {
	ms := m.mesa(mesaID)
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.round == nil {
		return nil, ErrNoRound
	}
	if err := fn(ms.round); err != nil {
		return nil, err
	}
	view := m.viewLocked(ms.round)
	m.emit(Event{Type: eventType, MesaID: mesaID, Data: view})
	return view, nil
}

func (m *Manager) emit(event Event) {
	if m.sink != nil {
		m.sink.Emit(event)
	}
}

type RoundView struct {
	Phase      Phase              `json:"phase"`
	Card       Card               `json:"card"`
	Mode       Mode               `json:"mode"`
	Responders []Player           `json:"responders"`
	Challenge  Challenge          `json:"challenge"`
	Chat       []ChatMessage      `json:"chat,omitempty"`
	Response   *Response          `json:"response,omitempty"`
	Votes      map[uint]VoteCount `json:"votes,omitempty"`
	EndsAt     *time.Time         `json:"voting_ends_at,omitempty"`
	Scores     map[uint]int       `json:"scores,omitempty"`
	WinnerID   uint               `json:"winner_id,omitempty"`
	Analysis   *Analysis          `json:"analysis,omitempty"`
	Rewards    []Reward           `json:"rewards,omitempty"`
}

func (m *Manager) viewLocked(r *Round) *RoundView {
	v := &RoundView{
		Phase:      r.phase,
		Card:       r.Card,
		Mode:       r.Mode,
		Responders: append([]Player(nil), r.Responders...),
		Challenge:  r.Challenge,
		Chat:       append([]ChatMessage(nil), r.Chat...),
	}
	if !r.Response.Empty() {
		resp := r.Response
		v.Response = &resp
	}
	if r.tally != nil {
		v.Votes = r.tally.Counts()
	}
	if r.phase == PhaseVoting {
		endsAt := r.votingEndsAt
		v.EndsAt = &endsAt
	}
	if r.phase == PhaseResolved {
		scores := make(map[uint]int, len(r.scores))
		for id, s := range r.scores {
			scores[id] = s
		}
		v.Scores = scores
		v.WinnerID = r.WinnerID
		v.Analysis = r.Analysis
		v.Rewards = r.Rewards
	}
	return v
}
