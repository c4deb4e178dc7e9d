// Tweet HTTP handlers.
//
//   - POST   /tweets                 (create)
//   - GET    /tweets/user/{userId}   (list a user's tweets)
//   - PATCH  /tweets/{tweetId}       (edit own tweet)
//   - DELETE /tweets/{tweetId}       (delete own tweet)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// TweetService defines tweet operations consumed by HTTP handlers.
type TweetService interface {
	// Create posts a tweet authored by the caller.
	Create(ctx context.Context, userID, content string) (*domain.Tweet, error)
	// ListByUser returns all tweets by a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Tweet, error)
	// Update replaces the content of a tweet authored by the caller. Blank
	// content leaves the stored content unchanged.
	Update(ctx context.Context, callerID, tweetID, content string) (*domain.Tweet, error)
	// Delete removes a tweet authored by the caller.
	Delete(ctx context.Context, callerID, tweetID string) error
}

// TweetRequest is the JSON payload for creating or editing a tweet. On create
// blank content is rejected; on edit it preserves the stored content.
type TweetRequest struct {
	Content string `json:"content" example:"Shipping a new upload today"`
}

// CreateTweet godoc
// @ID          createTweet
// @Summary     Post a tweet
// @Tags        Tweets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.TweetRequest  true  "Tweet payload"
//
// @Success     201  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Router      /tweets [post]
func (h *Handlers) CreateTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	t, err := h.tweetSvc.Create(c.Request.Context(), userID(c), req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, t, "tweet created successfully")
}

// ListUserTweets godoc
// @ID          listUserTweets
// @Summary     List a user's tweets
// @Tags        Tweets
// @Produce     json
// @Security    BearerAuth
//
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "User not found"
// @Router      /tweets/user/{userId} [get]
func (h *Handlers) ListUserTweets(c *gin.Context) {
	uid := c.Param("userId")
	if _, err := uuid.Parse(uid); err != nil {
		fail(c, http.StatusBadRequest, "user id must be a UUID")
		return
	}
	tweets, err := h.tweetSvc.ListByUser(c.Request.Context(), uid)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, tweets, "tweets fetched successfully")
}

// UpdateTweet godoc
// @ID          updateTweet
// @Summary     Edit a tweet
// @Description Replaces the content of a tweet authored by the caller. Blank content preserves the stored content.
// @Tags        Tweets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       tweetId  path  string                 true  "Tweet ID (UUID)"  format(uuid)
// @Param       body     body  handlers.TweetRequest  true  "New content"
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the author"
// @Failure     404  {object}  handlers.APIResponse "Tweet not found"
// @Router      /tweets/{tweetId} [patch]
func (h *Handlers) UpdateTweet(c *gin.Context) {
	tweetID := c.Param("tweetId")
	if _, err := uuid.Parse(tweetID); err != nil {
		fail(c, http.StatusBadRequest, "tweet id must be a UUID")
		return
	}
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	t, err := h.tweetSvc.Update(c.Request.Context(), userID(c), tweetID, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, t, "tweet updated successfully")
}

// DeleteTweet godoc
// @ID          deleteTweet
// @Summary     Delete a tweet
// @Tags        Tweets
// @Produce     json
// @Security    BearerAuth
//
// @Param       tweetId  path  string  true  "Tweet ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the author"
// @Failure     404  {object}  handlers.APIResponse "Tweet not found"
// @Router      /tweets/{tweetId} [delete]
func (h *Handlers) DeleteTweet(c *gin.Context) {
	tweetID := c.Param("tweetId")
	if _, err := uuid.Parse(tweetID); err != nil {
		fail(c, http.StatusBadRequest, "tweet id must be a UUID")
		return
	}
	if err := h.tweetSvc.Delete(c.Request.Context(), userID(c), tweetID); err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "tweet deleted successfully")
}
