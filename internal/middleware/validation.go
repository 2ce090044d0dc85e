package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/sharelearning/internal/pkg/logger"
)

// BindJSON decodes the request body into obj.
// A body that is not valid JSON is answered with status and message and false is returned.
// Field rules are checked later by the service pipelines, not here.
func BindJSON(c *gin.Context, obj interface{}, status int, message string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Debug().Err(err).Str("request_id", RequestID(c)).Msg("Malformed request body")
		c.String(status, message)
		c.Abort()
		return false
	}
	return true
}

// DecodeJSON decodes the request body into a T. A body that is not valid JSON yields
// the zero T so that handlers whose pipelines check a path resource first still do so;
// the missing fields are then reported by the pipeline's validation step.
func DecodeJSON[T any](c *gin.Context) T {
	var obj T
	if err := c.ShouldBindJSON(&obj); err != nil {
		logger.Debug().Err(err).Str("request_id", RequestID(c)).Msg("Undecodable request body, continuing with an empty one")
		var empty T
		return empty
	}
	return obj
}
