package socket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServeWsGin upgrades the request and registers the connection with the hub.
// Poll membership is not fixed at connect time; the client joins and leaves
// polls with poll:join / poll:leave frames.
func ServeWsGin(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if userID == "" {
			log.Printf("Invalid user ID")
			c.Status(http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("Error upgrading to WebSocket: %v", err)
			return
		}

		client := &Client{
			hub:    hub,
			conn:   conn,
			send:   make(chan []byte, 512),
			connID: uuid.NewString(),
			userID: userID,
			polls:  make(map[string]bool),
		}

		hub.register <- client

		go client.writePump()
		go client.readPump()

		log.Printf("WebSocket connection established for user %s (conn %s)", userID, client.connID)
	}
}
