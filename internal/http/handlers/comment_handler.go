// Comment HTTP handlers.
//
//   - GET    /comments/{videoId}       (list a video's comments, paginated)
//   - POST   /comments/{videoId}       (add)
//   - PATCH  /comments/c/{commentId}   (edit own comment)
//   - DELETE /comments/c/{commentId}   (delete own comment)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// CommentService defines comment operations consumed by HTTP handlers.
type CommentService interface {
	// ListByVideo returns a page of comments for a video, newest first.
	ListByVideo(ctx context.Context, videoID string, page, pageSize int) ([]domain.Comment, error)
	// Add creates a comment by the caller on a video.
	Add(ctx context.Context, userID, videoID, content string) (*domain.Comment, error)
	// Update replaces the content of a comment authored by the caller.
	// Blank content leaves the stored content unchanged.
	Update(ctx context.Context, callerID, commentID, content string) (*domain.Comment, error)
	// Delete removes a comment authored by the caller.
	Delete(ctx context.Context, callerID, commentID string) error
}

// CommentRequest is the JSON payload for adding or editing a comment. On add
// blank content is rejected; on edit it preserves the stored content.
type CommentRequest struct {
	Content string `json:"content" example:"Great video!"`
}

// ListComments godoc
// @ID          listComments
// @Summary     List a video's comments
// @Description Returns a page of comments on a video, newest first, with author summaries.
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
//
// @Param       videoId  path   string  true  "Video ID (UUID)"  format(uuid)
// @Param       page     query  int     false "Page number"      minimum(1) default(1)
// @Param       limit    query  int     false "Items per page"   minimum(1) maximum(100) default(10)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Video not found"
// @Router      /comments/{videoId} [get]
func (h *Handlers) ListComments(c *gin.Context) {
	videoID := c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return
	}
	page, pageSize := clampPagination(c)
	comments, err := h.commentSvc.ListByVideo(c.Request.Context(), videoID, page, pageSize)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, comments, "comments fetched successfully")
}

// AddComment godoc
// @ID          addComment
// @Summary     Comment on a video
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       videoId  path  string                   true  "Video ID (UUID)"  format(uuid)
// @Param       body     body  handlers.CommentRequest  true  "Comment payload"
//
// @Success     201  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Video not found"
// @Router      /comments/{videoId} [post]
func (h *Handlers) AddComment(c *gin.Context) {
	videoID := c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	cm, err := h.commentSvc.Add(c.Request.Context(), userID(c), videoID, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, cm, "comment added successfully")
}

// UpdateComment godoc
// @ID          updateComment
// @Summary     Edit a comment
// @Description Replaces the content of a comment authored by the caller. Blank content preserves the stored content.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       commentId  path  string                   true  "Comment ID (UUID)"  format(uuid)
// @Param       body       body  handlers.CommentRequest  true  "New content"
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the author"
// @Failure     404  {object}  handlers.APIResponse "Comment not found"
// @Router      /comments/c/{commentId} [patch]
func (h *Handlers) UpdateComment(c *gin.Context) {
	commentID := c.Param("commentId")
	if _, err := uuid.Parse(commentID); err != nil {
		fail(c, http.StatusBadRequest, "comment id must be a UUID")
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	cm, err := h.commentSvc.Update(c.Request.Context(), userID(c), commentID, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, cm, "comment updated successfully")
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
//
// @Param       commentId  path  string  true  "Comment ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the author"
// @Failure     404  {object}  handlers.APIResponse "Comment not found"
// @Router      /comments/c/{commentId} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	commentID := c.Param("commentId")
	if _, err := uuid.Parse(commentID); err != nil {
		fail(c, http.StatusBadRequest, "comment id must be a UUID")
		return
	}
	if err := h.commentSvc.Delete(c.Request.Context(), userID(c), commentID); err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "comment deleted successfully")
}
