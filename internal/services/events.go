package services

import (
	"log"
	"strconv"

	"mesa-game-backend/internal/game"
	"mesa-game-backend/internal/models"
	"mesa-game-backend/internal/ws"

	"gorm.io/gorm"
)

// EventRouter fans game events out to websocket clients and mirrors the
// durable ones into the database. Persistence failures are logged and
// dropped so a slow database can never stall a round.
type EventRouter struct {
	db      *gorm.DB
	hub     *ws.Hub
	mesas   *MesaService
	rewards *RewardService
}

func NewEventRouter(db *gorm.DB, hub *ws.Hub, mesas *MesaService, rewards *RewardService) *EventRouter {
	return &EventRouter{db: db, hub: hub, mesas: mesas, rewards: rewards}
}

func (r *EventRouter) Emit(event game.Event) {
	r.hub.Broadcast(event.MesaID, event.Type, event.Data)

	switch event.Type {
	case "vote_cast":
		r.persistVote(event)
	case "round_resolved":
		r.persistResolution(event)
	}
}

func (r *EventRouter) persistVote(event game.Event) {
	data, ok := event.Data.(map[string]interface{})
	if !ok {
		return
	}
	voterID, _ := data["voter_id"].(uint)
	candidateID, _ := data["candidate_id"].(uint)
	dir, _ := data["direction"].(game.Direction)

	value := 1
	if dir == game.DirectionDown {
		value = -1
	}
	record := models.VoteRecord{
		MesaID:      event.MesaID,
		VoterID:     voterID,
		CandidateID: candidateID,
		Value:       value,
	}
	if err := r.db.Create(&record).Error; err != nil {
		log.Printf("events: failed to persist vote for mesa %d: %v", event.MesaID, err)
	}
}

func (r *EventRouter) persistResolution(event game.Event) {
	view, ok := event.Data.(*game.RoundView)
	if !ok {
		return
	}

	var responseID uint
	if view.Response != nil && len(view.Responders) > 0 {
		resp := models.Response{
			MesaID:   event.MesaID,
			CardID:   view.Card.ID,
			MemberID: view.Responders[0].ID,
			Text:     view.Response.Text,
			AudioURL: view.Response.AudioURL,
		}
		if err := r.db.Create(&resp).Error; err != nil {
			log.Printf("events: failed to persist response for mesa %d: %v", event.MesaID, err)
		} else {
			responseID = resp.ID
		}
	}

	if view.Analysis != nil && len(view.Responders) > 0 {
		record := models.ResponseAnalysis{
			ResponseID:   responseID,
			MesaID:       event.MesaID,
			MemberID:     view.Responders[0].ID,
			Creativity:   view.Analysis.Creativity,
			Humor:        view.Analysis.Humor,
			Authenticity: view.Analysis.Authenticity,
			Virality:     view.Analysis.Virality,
			Category:     view.Analysis.Category,
			Feedback:     view.Analysis.Feedback,
		}
		if err := r.db.Create(&record).Error; err != nil {
			log.Printf("events: failed to persist analysis for mesa %d: %v", event.MesaID, err)
		}
	}

	scores := make(models.JSONMap, len(view.Scores))
	for memberID, score := range view.Scores {
		scores[strconv.FormatUint(uint64(memberID), 10)] = score
		if err := r.mesas.AddPoints(memberID, score); err != nil {
			log.Printf("events: failed to add points for member %d: %v", memberID, err)
		}
	}
	result := models.RoundResult{
		MesaID: event.MesaID,
		CardID: view.Card.ID,
		Mode:   string(view.Mode),
		Scores: scores,
	}
	if err := r.db.Create(&result).Error; err != nil {
		log.Printf("events: failed to persist round result for mesa %d: %v", event.MesaID, err)
	}

	if len(view.Rewards) > 0 {
		feedback := ""
		if view.Analysis != nil {
			feedback = view.Analysis.Feedback
		}
		for _, memberID := range rewardRecipients(view) {
			r.rewards.Grant(event.MesaID, memberID, view.Rewards, feedback)
		}
	}
}

// rewardRecipients picks who keeps the round's rewards: the winner in
// group mode, the full responder set otherwise.
func rewardRecipients(view *game.RoundView) []uint {
	if view.Mode == game.ModeGroup && view.WinnerID != 0 {
		return []uint{view.WinnerID}
	}
	ids := make([]uint, 0, len(view.Responders))
	for _, p := range view.Responders {
		ids = append(ids, p.ID)
	}
	return ids
}

var _ game.EventSink = (*EventRouter)(nil)
