package handlers

import (
	"log"
	"net/http"

	"estate-server/utils"
	"estate-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades authenticated users to a notification websocket.
type WSHandler struct {
	mgr       *ws.Manager
	jwtSecret string
}

func NewWSHandler(mgr *ws.Manager, jwtSecret string) *WSHandler {
	return &WSHandler{mgr: mgr, jwtSecret: jwtSecret}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserWS registers the caller for live message notifications.
// GET /ws?token=<bearer token>
func (h *WSHandler) HandleUserWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token provided"})
		return
	}
	claims, err := utils.ValidateJWT(h.jwtSecret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(claims.UserID, conn)
	log.Printf("user connected: %s", claims.UserID)

	defer func() {
		h.mgr.Unregister(claims.UserID)
		log.Printf("user disconnected: %s", claims.UserID)
	}()

	// The socket is push-only; drain incoming frames until close so control
	// messages keep being processed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %s closed connection", claims.UserID)
			} else {
				log.Printf("read error from %s: %v", claims.UserID, err)
			}
			return
		}
	}
}
