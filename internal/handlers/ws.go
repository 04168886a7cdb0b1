package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleRoomWebSocket godoc
// @Summary      Subscribe to a room channel
// @Description  Receive share, slide, setting and presence events for a room
// @Tags         websocket
// @Param        id path int true "Room ID"
// @Router       /ws/room/{id} [get]
func (h *WSHandler) HandleRoomWebSocket(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid room id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(roomID, conn)
	defer h.hub.RemoveConnection(roomID, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
