package api

import (
	"errors"
	"net/http"

	"polling-service/internal/models"
	"polling-service/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// CastVote handles POST /api/v1/votes. The response bodies are part of the
// wire contract consumed by the poll UI, so they are emitted verbatim rather
// than wrapped in the APIResponse envelope.
func (h *VoteHandler) CastVote(c *gin.Context) {

	var req models.CastVoteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if req.UserID == "" || req.PollOptionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and pollOptionId are required"})
		return
	}

	err := h.voteService.CastVote(c, &req)
	switch {
	case errors.Is(err, models.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Poll option not found"})
	case errors.Is(err, models.ErrDuplicateVote):
		c.JSON(http.StatusConflict, gin.H{"error": "User already voted for this option"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cast vote"})
	default:
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
}
