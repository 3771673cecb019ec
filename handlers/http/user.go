package httpHandler

import (
	"net/http"

	"estate-server/middleware"
	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.AuthUseCase
}

func NewUserHandler(useCase *usecases.AuthUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Profile handles GET /users/profile
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.useCase.Profile(c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email})
}
