package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mesa-game-backend/internal/game"
	"mesa-game-backend/internal/models"
	"mesa-game-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PlayHandler drives the round flow: card selection, contextual chat,
// response submission, voting and resolution.
type PlayHandler struct {
	manager     *game.Manager
	mesaService *services.MesaService
	cardService *services.CardService
	uploadDir   string
}

func NewPlayHandler(manager *game.Manager, mesaService *services.MesaService, cardService *services.CardService, uploadDir string) *PlayHandler {
	return &PlayHandler{
		manager:     manager,
		mesaService: mesaService,
		cardService: cardService,
		uploadDir:   uploadDir,
	}
}

type StartRoundRequest struct {
	CardID    uint `json:"card_id" example:"1"`
	Surprise  bool `json:"surprise" example:"false"`
	PartnerID uint `json:"partner_id,omitempty"`
}

type ChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type ChoosePartnerRequest struct {
	PartnerID uint `json:"partner_id" binding:"required"`
}

type RespondRequest struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url"`
}

type VoteRequest struct {
	CandidateID uint   `json:"candidate_id" binding:"required"`
	Direction   string `json:"direction" binding:"required" example:"up"`
}

// member resolves the calling player from the mesa code and the web token
// set by the middleware.
func (h *PlayHandler) member(c *gin.Context) (*models.Mesa, *models.MesaMember, bool) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return nil, nil, false
	}
	member, err := h.mesaService.GetMemberByToken(mesa.ID, c.GetString("web_token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return nil, nil, false
	}
	return mesa, member, true
}

func statusForRoundError(err error) int {
	switch {
	case errors.Is(err, game.ErrNoRound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrRoundInProgress),
		errors.Is(err, game.ErrDuplicateVote),
		errors.Is(err, game.ErrVotingClosed):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// StartRound godoc
// @Summary      Start a round
// @Description  Picks a card (or a random one) and generates the challenge
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        request body StartRoundRequest true "Card selection"
// @Success      201 {object} game.RoundView
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round [post]
func (h *PlayHandler) StartRound(c *gin.Context) {
	mesa, member, ok := h.member(c)
	if !ok {
		return
	}

	var req StartRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var card *models.Card
	var err error
	if req.Surprise || req.CardID == 0 {
		card, err = h.cardService.RandomCard()
	} else {
		card, err = h.cardService.GetCard(req.CardID)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	roster, err := h.mesaService.Roster(mesa.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.manager.StartRound(c.Request.Context(), mesa.ID, services.ToGameCard(card), roster, member.ID, req.PartnerID, member.Vibe)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetRound godoc
// @Summary      Current round state
// @Tags         play
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {object} game.RoundView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round [get]
func (h *PlayHandler) GetRound(c *gin.Context) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.manager.RoundView(mesa.ID)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// EnterChat godoc
// @Summary      Open the contextual chat
// @Tags         play
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {object} game.RoundView
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/chat [post]
func (h *PlayHandler) EnterChat(c *gin.Context) {
	mesa, _, ok := h.member(c)
	if !ok {
		return
	}

	view, err := h.manager.EnterChat(mesa.ID)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SendChatMessage godoc
// @Summary      Send a chat message
// @Description  The last participant message within the turn limit becomes the response text
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        request body ChatMessageRequest true "Message"
// @Success      200 {object} game.RoundView
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/chat/message [post]
func (h *PlayHandler) SendChatMessage(c *gin.Context) {
	mesa, _, ok := h.member(c)
	if !ok {
		return
	}

	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.manager.SendChatMessage(mesa.ID, req.Text)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SkipChat godoc
// @Summary      Skip the contextual chat
// @Tags         play
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {object} game.RoundView
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/chat/skip [post]
func (h *PlayHandler) SkipChat(c *gin.Context) {
	mesa, _, ok := h.member(c)
	if !ok {
		return
	}

	view, err := h.manager.SkipChat(mesa.ID)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ChoosePartner godoc
// @Summary      Choose a duo partner
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        request body ChoosePartnerRequest true "Partner"
// @Success      200 {object} game.RoundView
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/partner [post]
func (h *PlayHandler) ChoosePartner(c *gin.Context) {
	mesa, _, ok := h.member(c)
	if !ok {
		return
	}

	var req ChoosePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.manager.ChoosePartner(mesa.ID, req.PartnerID)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Respond godoc
// @Summary      Submit the round response
// @Description  Accepts text, an uploaded audio URL, or both; opens the voting window
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        request body RespondRequest true "Response"
// @Success      200 {object} game.RoundView
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/response [post]
func (h *PlayHandler) Respond(c *gin.Context) {
	mesa, member, ok := h.member(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.manager.SubmitResponse(mesa.ID, member.ID, game.Response{Text: req.Text, AudioURL: req.AudioURL})
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UploadAudio godoc
// @Summary      Upload an audio response
// @Tags         play
// @Accept       multipart/form-data
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        file formData file true "Audio file"
// @Success      200 {object} map[string]string
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/audio [post]
func (h *PlayHandler) UploadAudio(c *gin.Context) {
	if _, _, ok := h.member(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	audioExts := map[string]bool{".mp3": true, ".ogg": true, ".wav": true, ".m4a": true, ".aac": true, ".webm": true}
	if !audioExts[ext] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported audio format"})
		return
	}
	if file.Size > 25<<20 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large (max 25MB)"})
		return
	}

	filename := fmt.Sprintf("%d_%d%s", time.Now().UnixNano(), rand.Intn(100000), ext)
	dst := filepath.Join(h.uploadDir, filename)

	os.MkdirAll(h.uploadDir, 0755)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + filename, "type": "audio"})
}

// Vote godoc
// @Summary      Cast a vote
// @Tags         play
// @Accept       json
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        request body VoteRequest true "Vote"
// @Success      200 {object} game.RoundView
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/vote [post]
func (h *PlayHandler) Vote(c *gin.Context) {
	mesa, member, ok := h.member(c)
	if !ok {
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dir := game.DirectionUp
	if req.Direction == string(game.DirectionDown) {
		dir = game.DirectionDown
	} else if req.Direction != string(game.DirectionUp) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "direction must be up or down"})
		return
	}

	view, err := h.manager.CastVote(mesa.ID, member.ID, req.CandidateID, dir)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ResolveRound godoc
// @Summary      End voting early
// @Tags         play
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {object} game.RoundView
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round/resolve [post]
func (h *PlayHandler) ResolveRound(c *gin.Context) {
	mesa, _, ok := h.member(c)
	if !ok {
		return
	}

	view, err := h.manager.ForceResolve(mesa.ID)
	if err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// EndRound godoc
// @Summary      Clear a resolved round
// @Description  Returns the mesa to card selection
// @Tags         play
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/round [delete]
func (h *PlayHandler) EndRound(c *gin.Context) {
	mesa, _, ok := h.member(c)
	if !ok {
		return
	}

	if err := h.manager.EndRound(mesa.ID); err != nil {
		c.JSON(statusForRoundError(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "round cleared"})
}
