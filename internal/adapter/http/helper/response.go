package helper

import (
	"github.com/gin-gonic/gin"

	"todoapi/internal/core/model/response"
)

// Every response carries the uniform envelope: success payloads go out
// as-is, failures (status >= 400) wrap the message as {"error": message}.

func SendSuccess(c *gin.Context, statusCode int, payload any) {
	c.JSON(statusCode, payload)
}

// SendEmpty is the no-content success: an empty string body, literally.
func SendEmpty(c *gin.Context, statusCode int) {
	c.String(statusCode, "")
}

func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.ErrorResponse{Error: message})
}
