package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sharelearning/internal/pkg/apperrors"
	"github.com/yigit/sharelearning/internal/pkg/logger"
)

// StatusFor maps a failure kind to its HTTP status. Internal failures use fallback.
func StatusFor(kind apperrors.Kind, fallback int) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindBadRequest:
		return http.StatusBadRequest
	case apperrors.KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return fallback
	}
}

// HandleAPIError writes err as a plain text response.
//
// Classified failures use their own status and message. Anything else is
// reported with fallbackStatus and fallbackMsg so that no internal detail
// reaches the client.
func HandleAPIError(c *gin.Context, err error, fallbackStatus int, fallbackMsg string) {
	ce := apperrors.AsCustomError(err)
	status := StatusFor(ce.Kind, fallbackStatus)

	message := ce.Message
	if message == "" {
		message = fallbackMsg
	}

	event := logger.Debug()
	if ce.Kind == apperrors.KindInternal {
		event = logger.Error()
	}
	event.Err(ce.Err).
		Str("request_id", RequestID(c)).
		Str("kind", ce.Kind.String()).
		Int("status", status).
		Interface("details", ce.Details).
		Msg("Request failed")

	c.String(status, message)
}

// Guard recovers a panic in the handlers that follow and answers with status and message.
func Guard(status int, message string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Str("request_id", RequestID(c)).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Msg("Recovered from panic")
		c.String(status, message)
		c.Abort()
	})
}
