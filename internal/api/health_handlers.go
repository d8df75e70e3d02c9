package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandlers struct {
	db *mongo.Database
}

func NewHealthHandlers(db *mongo.Database) *HealthHandlers {
	return &HealthHandlers{
		db: db,
	}
}

func (h *HealthHandlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   "Real-Time Polling API",
		"health": "/health",
		"api": gin.H{
			"users": []string{"/api/v1/users (GET, POST)"},
			"polls": []string{"/api/v1/polls (GET, POST)", "/api/v1/polls/:poll_id (GET)"},
			"votes": []string{"/api/v1/votes (POST)"},
		},
		"ws": gin.H{
			"join":    "send {type: 'poll:join', pollId}",
			"leave":   "send {type: 'poll:leave', pollId}",
			"results": "listen for {type: 'poll:results'}",
		},
	})
}

func (h *HealthHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandlers) HealthDB(c *gin.Context) {
	if err := h.db.Client().Ping(c, readpref.Primary()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "database-unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
