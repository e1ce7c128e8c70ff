package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

// Envelope is the uniform response contract. Exactly one of Data/Error is set
// on terminal responses; Success mirrors which one.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// JSON sends a success envelope with an optional human-readable message.
func JSON(c *gin.Context, status int, data interface{}, message ...string) {
	c.Header("Cache-Control", "no-store")
	envelope := Envelope{Success: true, Data: data}
	if len(message) > 0 && message[0] != "" {
		envelope.Message = message[0]
	}
	c.JSON(status, envelope)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}, message ...string) {
	JSON(c, http.StatusOK, data, message...)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends a failure envelope, normalising the error to the typed form so
// the status code and user-facing message are always consistent.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, Envelope{Success: false, Error: appErr.Message})
}
