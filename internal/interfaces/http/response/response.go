package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "handshake.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel domain errors map to their HTTP
// status; anything unrecognized becomes a 500 without leaking its message.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"error": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.Unauthorized("invalid email or password")
	case errors.Is(err, domainerrors.ErrInvalidCode):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrCodeExpired):
		return domainerrors.Gone(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyVerified):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrEmailNotVerified):
		return domainerrors.Forbidden(err.Error())
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden(err.Error())
	case errors.Is(err, domainerrors.ErrTooManyRequests):
		return domainerrors.TooManyRequests(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
