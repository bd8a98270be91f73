package handlers

import (
	"net/http"

	"mesa-game-backend/internal/services"
	"mesa-game-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type MesaHandler struct {
	mesaService *services.MesaService
	hub         *ws.Hub
}

func NewMesaHandler(mesaService *services.MesaService, hub *ws.Hub) *MesaHandler {
	return &MesaHandler{mesaService: mesaService, hub: hub}
}

type CreateMesaRequest struct {
	Name string `json:"name" example:"La mesa del viernes"`
}

type JoinMesaRequest struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=100" example:"valen"`
	Vibe     string `json:"vibe" example:"delulu"`
	WebToken string `json:"web_token,omitempty"`
}

type ReconnectRequest struct {
	WebToken string `json:"web_token" binding:"required"`
}

// CreateMesa godoc
// @Summary      Create a new mesa
// @Description  Open a mesa with a friendly join code
// @Tags         mesas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMesaRequest true "Mesa data"
// @Success      201 {object} Mesa
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mesas [post]
func (h *MesaHandler) CreateMesa(c *gin.Context) {
	var req CreateMesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	mesa, err := h.mesaService.CreateMesa(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, mesa)
}

// GetMesa godoc
// @Summary      Get a mesa by code
// @Tags         mesas
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {object} Mesa
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code} [get]
func (h *MesaHandler) GetMesa(c *gin.Context) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, mesa)
}

// JoinMesa godoc
// @Summary      Join a mesa
// @Description  Join by code; sending a previous web_token rejoins the existing seat
// @Tags         mesas
// @Accept       json
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        request body JoinMesaRequest true "Join data"
// @Success      200 {object} services.MesaJoinResult
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/join [post]
func (h *MesaHandler) JoinMesa(c *gin.Context) {
	var req JoinMesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.mesaService.JoinMesa(c.Param("code"), req.Nickname, req.Vibe, req.WebToken)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	if !result.IsRejoin {
		h.hub.Broadcast(result.Mesa.ID, "member_joined", result.Member)
	}
	c.JSON(http.StatusOK, result)
}

// LeaveMesa godoc
// @Summary      Leave a mesa
// @Tags         mesas
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/leave [post]
func (h *MesaHandler) LeaveMesa(c *gin.Context) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	member, err := h.mesaService.GetMemberByToken(mesa.ID, c.GetString("web_token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.mesaService.LeaveMesa(mesa.ID, member.ID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(mesa.ID, "member_left", gin.H{"member_id": member.ID, "nickname": member.Nickname})
	c.JSON(http.StatusOK, MessageResponse{Message: "left mesa"})
}

// Reconnect godoc
// @Summary      Reconnect to a mesa
// @Tags         mesas
// @Accept       json
// @Produce      json
// @Param        code path string true "Mesa code"
// @Param        request body ReconnectRequest true "Reconnect data"
// @Success      200 {object} services.MesaJoinResult
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/reconnect [post]
func (h *MesaHandler) Reconnect(c *gin.Context) {
	var req ReconnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.mesaService.Reconnect(req.WebToken, c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMembers godoc
// @Summary      List mesa members
// @Tags         mesas
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {array} MesaMember
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/members [get]
func (h *MesaHandler) ListMembers(c *gin.Context) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	members, err := h.mesaService.ListMembers(mesa.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// Leaderboard godoc
// @Summary      Mesa leaderboard
// @Description  Members ordered by accumulated points
// @Tags         mesas
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {array} MesaMember
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/leaderboard [get]
func (h *MesaHandler) Leaderboard(c *gin.Context) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	members, err := h.mesaService.Leaderboard(mesa.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// CloseMesa godoc
// @Summary      Close a mesa
// @Tags         mesas
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Mesa code"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code} [delete]
func (h *MesaHandler) CloseMesa(c *gin.Context) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.mesaService.CloseMesa(mesa.ID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(mesa.ID, "mesa_closed", gin.H{"code": mesa.Code})
	h.hub.CloseMesa(mesa.ID)
	c.JSON(http.StatusOK, MessageResponse{Message: "mesa closed"})
}
