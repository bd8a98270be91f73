package handlers

import (
	"net/http"
	"strconv"

	"mesa-game-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	rewardService *services.RewardService
	mesaService   *services.MesaService
}

func NewRewardHandler(rewardService *services.RewardService, mesaService *services.MesaService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService, mesaService: mesaService}
}

type RewardRequest struct {
	Category    string `json:"category" binding:"required" example:"Humor"`
	Kind        string `json:"kind" example:"playlist"`
	Name        string `json:"name" binding:"required" example:"Playlist Exclusiva"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Tier        int    `json:"tier" example:"1"`
}

// ListCatalog godoc
// @Summary      List the reward catalog
// @Tags         rewards
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Reward
// @Router       /api/v1/rewards [get]
func (h *RewardHandler) ListCatalog(c *gin.Context) {
	rewards, err := h.rewardService.ListCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rewards)
}

// CreateCatalogEntry godoc
// @Summary      Add a reward to the catalog
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RewardRequest true "Reward data"
// @Success      201 {object} Reward
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/rewards [post]
func (h *RewardHandler) CreateCatalogEntry(c *gin.Context) {
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reward, err := h.rewardService.CreateCatalogEntry(req.Category, req.Kind, req.Name, req.Description, req.URL, req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reward)
}

// DeleteCatalogEntry godoc
// @Summary      Remove a reward from the catalog
// @Tags         rewards
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Reward ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/rewards/{id} [delete]
func (h *RewardHandler) DeleteCatalogEntry(c *gin.Context) {
	rewardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reward id"})
		return
	}

	if err := h.rewardService.DeleteCatalogEntry(uint(rewardID)); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "reward deleted"})
}

// MyRewards godoc
// @Summary      List rewards granted to the calling member
// @Tags         rewards
// @Produce      json
// @Param        code path string true "Mesa code"
// @Success      200 {array} models.RewardGrant
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mesas/{code}/rewards [get]
func (h *RewardHandler) MyRewards(c *gin.Context) {
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

	grants, err := h.rewardService.ListGrants(mesa.ID, member.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, grants)
}
