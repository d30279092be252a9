package handlers

import (
	"errors"
	"net/http"

	"github.com/geocoder89/userdesk/internal/domain/user"
	"github.com/geocoder89/userdesk/internal/http/middlewares"
	"github.com/geocoder89/userdesk/internal/reconcile"
	"github.com/geocoder89/userdesk/internal/view"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	if id := ctx.GetString(middlewares.CtxRequestID); id != "" {
		return id
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

func RespondConflict(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusConflict, code, message, nil)
}

func RespondLoading(ctx *gin.Context) {
	ctx.Header("Retry-After", "1")
	RespondError(ctx, http.StatusServiceUnavailable, "loading", "Users are still loading", nil)
}

// RespondViewError maps a view operation error onto the error envelope.
func RespondViewError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, view.ErrLoading):
		RespondLoading(ctx)
	case errors.Is(err, view.ErrUserNotFound):
		RespondNotFound(ctx, "User not found")
	case errors.Is(err, user.ErrUnknownField):
		RespondBadRequest(ctx, "Unknown form field", gin.H{"allowed": user.Fields()})
	case errors.Is(err, reconcile.ErrNotEditing):
		RespondConflict(ctx, "not_editing", "No user is being edited")
	default:
		RespondInternal(ctx, "Could not apply change")
	}
}
