package api

import (
	"errors"
	"fmt"
	"net/http"

	"polling-service/internal/models"
	"polling-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PollHandlers struct {
	pollService service.PollService
}

func NewPollHandlers(pollService service.PollService) *PollHandlers {
	return &PollHandlers{
		pollService: pollService,
	}
}

func (h *PollHandlers) CreatePoll(c *gin.Context) {

	var req models.CreatePollRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}

	if req.Question == "" {
		SendError(c, http.StatusBadRequest, fmt.Errorf("question must not be empty"), models.ErrInvalidRequest)
		return
	}

	if len(req.Options) < 2 {
		SendError(c, http.StatusBadRequest, fmt.Errorf("a poll needs at least 2 options"), models.ErrInvalidRequest)
		return
	}

	for _, text := range req.Options {
		if text == "" {
			SendError(c, http.StatusBadRequest, fmt.Errorf("option text must not be empty"), models.ErrInvalidRequest)
			return
		}
	}

	if req.CreatorID == "" {
		SendError(c, http.StatusBadRequest, fmt.Errorf("creatorId must not be empty"), models.ErrInvalidRequest)
		return
	}

	poll, err := h.pollService.CreatePoll(c, &req)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			SendError(c, http.StatusBadRequest, fmt.Errorf("creatorId not found"), models.ErrInvalidRequest)
			return
		}
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusCreated, "Poll created successfully", poll)
}

func (h *PollHandlers) GetAllPolls(c *gin.Context) {

	polls, err := h.pollService.GetAllPolls(c)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Get polls successfully", polls)
}

func (h *PollHandlers) GetPollDetail(c *gin.Context) {

	pollID := c.Param("poll_id")

	if pollID == "" {
		SendError(c, http.StatusBadRequest, fmt.Errorf("poll ID be not empty"), models.ErrInvalidRequest)
		return
	}

	detail, err := h.pollService.GetPollDetail(c, pollID)
	if err != nil {
		if errors.Is(err, models.ErrPollNotFound) {
			SendError(c, http.StatusNotFound, err, models.ErrInvalidRequest)
			return
		}
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Get poll detail successfully", detail)
}
