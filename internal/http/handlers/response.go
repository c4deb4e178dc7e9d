// Package handlers provides HTTP handler implementations for the public API.
//
// Every endpoint, success or failure, replies with the same APIResponse
// envelope so clients can branch on a single shape:
//
//	HTTP/1.1 200 OK
//	{
//	  "statusCode": 200,
//	  "data": { "id": "abc123", "title": "First upload" },
//	  "message": "Success",
//	  "success": true
//	}
//
//	HTTP/1.1 404 Not Found
//	{
//	  "statusCode": 404,
//	  "data": null,
//	  "message": "video not found",
//	  "success": false
//	}
//
// Conventions:
//   - respond() writes successes; message defaults to "Success" when blank.
//   - fail() writes failures and logs 5xx with the request-scoped logger.
//   - failErr() translates service-layer sentinel errors into status codes so
//     individual handlers never hand-map errors.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipstream/go-video-backend/internal/http/middleware"
	"github.com/clipstream/go-video-backend/internal/services"
)

// APIResponse is the uniform envelope returned by all endpoints.
type APIResponse struct {
	// StatusCode mirrors the HTTP status of the response.
	StatusCode int `json:"statusCode" example:"200"`
	// Data carries the payload; null on failures.
	Data any `json:"data"`
	// Message is a human-readable outcome description.
	Message string `json:"message" example:"Success"`
	// Success is true exactly when StatusCode is below 400.
	Success bool `json:"success" example:"true"`
}

// respond writes a success envelope with the given status and payload.
func respond(c *gin.Context, status int, data any, message string) {
	if message == "" {
		message = "Success"
	}
	c.JSON(status, APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < http.StatusBadRequest,
	})
}

// fail aborts the request with a failure envelope and logs server errors.
func fail(c *gin.Context, status int, message string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", message).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, APIResponse{
		StatusCode: status,
		Data:       nil,
		Message:    message,
		Success:    false,
	})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup, auth middleware) call Fail to return
// consistent envelopes without depending on unexported helpers.
func Fail(c *gin.Context, status int, message string) { fail(c, status, message) }

// failErr maps service sentinel errors onto HTTP statuses and writes the
// failure envelope. Unknown errors become a 500 with a generic message.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrVideoNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrTweetNotFound),
		errors.Is(err, services.ErrPlaylistNotFound),
		errors.Is(err, services.ErrChannelNotFound),
		errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrEmptyTitle),
		errors.Is(err, services.ErrEmptyName),
		errors.Is(err, services.ErrSelfSubscription):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicatePlaylistVideo),
		errors.Is(err, services.ErrAccountExists):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUploadFailed):
		fail(c, http.StatusInternalServerError, services.ErrUploadFailed.Error())
	default:
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("unhandled service error")
		fail(c, http.StatusInternalServerError, "internal error")
	}
}
