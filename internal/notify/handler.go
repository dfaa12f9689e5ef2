package notify

import (
	"log"
	"net/http"

	"tendorai/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// WSHandler upgrades dashboard connections. Auth rides in the query
// string since browsers cannot set headers on WebSocket upgrades.
type WSHandler struct {
	hub *Hub
	jwt *jwt.Service
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service) *WSHandler {
	return &WSHandler{hub: hub, jwt: jwtService}
}

// HandleWebSocket handles GET /ws/dashboard?token=JWT
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.ServeWS(conn, claims.UserID)
}

// RegisterRoutes mounts the dashboard socket
func RegisterRoutes(r *gin.Engine, handler *WSHandler) {
	r.GET("/ws/dashboard", handler.HandleWebSocket)
}
