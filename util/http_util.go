// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/model"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithDenial writes the structured error envelope used by the weather
// and token endpoints.
func RespondWithDenial(c *gin.Context, httpStatus int, detail model.ErrorDetail) {
	logger.Warn("Request denied",
		zap.String("code", detail.Code),
		zap.String("path", c.Request.URL.Path))
	c.JSON(httpStatus, model.ErrorEnvelope{Success: false, Error: detail})
}
