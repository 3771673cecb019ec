package httpHandler

import (
	"errors"
	"net/http"

	"estate-server/usecases"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError converts usecase errors into the wire taxonomy. Everything
// crossing the route boundary becomes a {msg} body plus a status.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, usecases.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid OTP"})
	case errors.Is(err, usecases.ErrNotVerified):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User not verified"})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid credentials"})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
	case errors.Is(err, usecases.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"msg": "Forbidden"})
	case errors.Is(err, usecases.ErrEmailDelivery):
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error sending OTP"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, gin.H{"msg": "Already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
	}
}
