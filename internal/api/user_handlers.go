package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"polling-service/internal/models"
	"polling-service/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandlers struct {
	userService service.UserService
}

func NewUserHandlers(userService service.UserService) *UserHandlers {
	return &UserHandlers{
		userService: userService,
	}
}

func (h *UserHandlers) CreateUser(c *gin.Context) {

	var req models.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}

	if req.Name == "" {
		SendError(c, http.StatusBadRequest, fmt.Errorf("name must not be empty"), models.ErrInvalidRequest)
		return
	}

	if !strings.Contains(req.Email, "@") {
		SendError(c, http.StatusBadRequest, fmt.Errorf("invalid email"), models.ErrInvalidRequest)
		return
	}

	if len(req.Password) < 6 {
		SendError(c, http.StatusBadRequest, fmt.Errorf("password must be at least 6 characters"), models.ErrInvalidRequest)
		return
	}

	user, err := h.userService.CreateUser(c, &req)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			SendError(c, http.StatusConflict, err, models.ErrInvalidRequest)
			return
		}
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandlers) GetAllUsers(c *gin.Context) {

	users, err := h.userService.GetAllUsers(c)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Get users successfully", users)
}
