package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape for success and error alike.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func RespondSuccess(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func RespondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Envelope{
		Status:  status,
		Message: message,
	})
}

func RespondBadRequest(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusBadRequest, message)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message)
}

func RespondInternal(ctx *gin.Context) {
	RespondError(ctx, http.StatusInternalServerError, "Internal server error")
}

// bind-level failures keep the envelope but carry field details in data
func respondBindError(ctx *gin.Context, details any) {
	ctx.JSON(http.StatusBadRequest, Envelope{
		Status:  http.StatusBadRequest,
		Message: "Invalid request body",
		Data:    details,
	})
}
