package middleware

import (
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const InvalidDataMessage = "Invalid data"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var validationErr *domain.ValidationError
		var appErr *apperror.AppError

		switch {
		case errors.As(err, &validationErr):
			response.Error(c, http.StatusBadRequest, InvalidDataMessage, validationErr.Fields)
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "request_id", c.GetString(RequestIDKey), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
		default:
			// Never expose internal error details to clients
			logger.Log.Error("Internal Server Error", "request_id", c.GetString(RequestIDKey), "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
