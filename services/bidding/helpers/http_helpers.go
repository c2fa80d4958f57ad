package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-engine/internal/biddingerrors"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader carries the caller's user id on authenticated routes
	UserIDHeader = "X-User-ID"
	// ContextUserKey is where the current user id is stored on the gin context
	ContextUserKey = "current_user_id"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrNotHigherThanCurrentBest):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrBelowStartingPrice):
		return http.StatusBadRequest, "bid must exceed the starting price"
	case errors.Is(err, biddingerrors.ErrSelfBid):
		return http.StatusForbidden, "sellers cannot bid on their own auction"
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found"
	}

	switch biddingerrors.KindOf(err) {
	case biddingerrors.KindValidation:
		return http.StatusBadRequest, "invalid request"
	case biddingerrors.KindState:
		return http.StatusConflict, "auction state does not allow this operation"
	case biddingerrors.KindNotFound:
		return http.StatusNotFound, "not found"
	case biddingerrors.KindAuth:
		return http.StatusUnauthorized, "login required"
	case biddingerrors.KindInsufficientFunds:
		return http.StatusPaymentRequired, "insufficient balance"
	case biddingerrors.KindConflict:
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err, writes the JSON error and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// CurrentUserID returns the user id resolved by the current-user middleware,
// or "" when the request carries none
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
