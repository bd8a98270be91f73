package handlers

import (
	"log"
	"net/http"

	"mesa-game-backend/internal/services"
	"mesa-game-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub         *ws.Hub
	mesaService *services.MesaService
}

func NewWSHandler(hub *ws.Hub, mesaService *services.MesaService) *WSHandler {
	return &WSHandler{hub: hub, mesaService: mesaService}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for mesa updates
// @Description  Connect via WebSocket to receive real-time round events for a mesa
// @Tags         websocket
// @Param        code path string true "Mesa code"
// @Router       /ws/mesa/{code} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	mesa, err := h.mesaService.GetMesaByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(mesa.ID, conn)
	defer h.hub.RemoveConnection(mesa.ID, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
