package handlers

import (
	"net/http"
	"strconv"

	"mesa-game-backend/internal/models"
	"mesa-game-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService *services.CardService
}

func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

type CardRequest struct {
	Name        string         `json:"name" example:"El Delulu"`
	Description string         `json:"description" example:"Confiesa tu teoría más delulu"`
	Mode        string         `json:"mode" example:"individual"`
	Variables   models.JSONMap `json:"variables,omitempty"`
}

// ListCards godoc
// @Summary      List all cards
// @Tags         cards
// @Produce      json
// @Success      200 {array} Card
// @Router       /api/v1/cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.cardService.ListCards()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetCard godoc
// @Summary      Get a card
// @Tags         cards
// @Produce      json
// @Param        id path int true "Card ID"
// @Success      200 {object} Card
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/cards/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	card, err := h.cardService.GetCard(uint(cardID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, card)
}

// RandomCard godoc
// @Summary      Get a random card
// @Description  Used by the "sorpréndeme" flow
// @Tags         cards
// @Produce      json
// @Success      200 {object} Card
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/cards/random [get]
func (h *CardHandler) RandomCard(c *gin.Context) {
	card, err := h.cardService.RandomCard()
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, card)
}

// CreateCard godoc
// @Summary      Create a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CardRequest true "Card data"
// @Success      201 {object} Card
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	hostID := c.GetUint("host_id")

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	card, err := h.cardService.CreateCard(hostID, req.Name, req.Description, req.Mode, req.Variables)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}

// UpdateCard godoc
// @Summary      Update a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Card ID"
// @Param        request body CardRequest true "Card data"
// @Success      200 {object} Card
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	card, err := h.cardService.UpdateCard(uint(cardID), req.Name, req.Description, req.Mode, req.Variables)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteCard godoc
// @Summary      Delete a card
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Card ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid card id"})
		return
	}

	if err := h.cardService.DeleteCard(uint(cardID)); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "card deleted"})
}
