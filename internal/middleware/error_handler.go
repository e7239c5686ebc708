package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restockd/replenishment-service/internal/apperr"
	"github.com/restockd/replenishment-service/internal/domain/dto"
	"github.com/restockd/replenishment-service/internal/i18n"
	"github.com/restockd/replenishment-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Typed input errors keep their status, code and translated message;
// everything else becomes a 500 with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)
		locale := i18n.GetLocale(c)
		translator := i18n.GetTranslator()

		log := logger.Logger()

		if appErr := apperr.From(err); appErr != nil {
			log.Warn().
				Str("request_id", requestID).
				Str("error_code", appErr.Code).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Rejected request")

			if !c.Writer.Written() {
				message := translator.Translate(appErr.MessageKey, locale)
				c.JSON(appErr.Status, dto.NewError(appErr.Code, message).WithRequestID(requestID))
			}
			return
		}

		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := translator.Translate(i18n.ErrKeyInternalError, locale)
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
