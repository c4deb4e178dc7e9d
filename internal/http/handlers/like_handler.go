// Like HTTP handlers. Each toggle reports the resulting state in the data
// payload as {"liked": bool}; creating the like answers 201, removing it 200.
//
//   - POST /likes/toggle/v/{videoId}     (toggle like on video)
//   - POST /likes/toggle/c/{commentId}   (toggle like on comment)
//   - POST /likes/toggle/t/{tweetId}     (toggle like on tweet)
//   - GET  /likes/videos                 (caller's liked videos)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// LikeService defines the like toggles consumed by HTTP handlers.
type LikeService interface {
	// ToggleVideo flips the caller's like on a video; true means liked.
	ToggleVideo(ctx context.Context, userID, videoID string) (bool, error)
	// ToggleComment flips the caller's like on a comment.
	ToggleComment(ctx context.Context, userID, commentID string) (bool, error)
	// ToggleTweet flips the caller's like on a tweet.
	ToggleTweet(ctx context.Context, userID, tweetID string) (bool, error)
	// LikedVideos returns the videos the caller has liked, newest like first.
	LikedVideos(ctx context.Context, userID string) ([]domain.Video, error)
}

// ToggleVideoLike godoc
// @ID          toggleVideoLike
// @Summary     Toggle a like on a video
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
//
// @Param       videoId  path  string  true  "Video ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse "Like removed"
// @Success     201  {object}  handlers.APIResponse "Like created"
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Video not found"
// @Router      /likes/toggle/v/{videoId} [post]
func (h *Handlers) ToggleVideoLike(c *gin.Context) {
	videoID := c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return
	}
	liked, err := h.likeSvc.ToggleVideo(c.Request.Context(), userID(c), videoID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, toggleStatus(liked), gin.H{"liked": liked}, toggleMessage(liked))
}

// ToggleCommentLike godoc
// @ID          toggleCommentLike
// @Summary     Toggle a like on a comment
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
//
// @Param       commentId  path  string  true  "Comment ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse "Like removed"
// @Success     201  {object}  handlers.APIResponse "Like created"
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Comment not found"
// @Router      /likes/toggle/c/{commentId} [post]
func (h *Handlers) ToggleCommentLike(c *gin.Context) {
	commentID := c.Param("commentId")
	if _, err := uuid.Parse(commentID); err != nil {
		fail(c, http.StatusBadRequest, "comment id must be a UUID")
		return
	}
	liked, err := h.likeSvc.ToggleComment(c.Request.Context(), userID(c), commentID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, toggleStatus(liked), gin.H{"liked": liked}, toggleMessage(liked))
}

// ToggleTweetLike godoc
// @ID          toggleTweetLike
// @Summary     Toggle a like on a tweet
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
//
// @Param       tweetId  path  string  true  "Tweet ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse "Like removed"
// @Success     201  {object}  handlers.APIResponse "Like created"
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Tweet not found"
// @Router      /likes/toggle/t/{tweetId} [post]
func (h *Handlers) ToggleTweetLike(c *gin.Context) {
	tweetID := c.Param("tweetId")
	if _, err := uuid.Parse(tweetID); err != nil {
		fail(c, http.StatusBadRequest, "tweet id must be a UUID")
		return
	}
	liked, err := h.likeSvc.ToggleTweet(c.Request.Context(), userID(c), tweetID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, toggleStatus(liked), gin.H{"liked": liked}, toggleMessage(liked))
}

// ListLikedVideos godoc
// @ID          listLikedVideos
// @Summary     List the caller's liked videos
// @Tags        Likes
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.APIResponse
// @Router      /likes/videos [get]
func (h *Handlers) ListLikedVideos(c *gin.Context) {
	videos, err := h.likeSvc.LikedVideos(c.Request.Context(), userID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "liked videos fetched successfully")
}

func toggleMessage(liked bool) string {
	if liked {
		return "liked successfully"
	}
	return "like removed successfully"
}

// toggleStatus maps a toggle outcome to its HTTP status: creating the
// association answers 201, removing it 200.
func toggleStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
