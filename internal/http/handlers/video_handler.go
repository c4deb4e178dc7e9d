// Video HTTP handlers.
//
// This file exposes REST endpoints for video resources:
//   - GET    /videos                                  (list, filtered + paginated)
//   - POST   /videos                                  (publish: multipart upload)
//   - GET    /videos/{videoId}                        (fetch one)
//   - PATCH  /videos/{videoId}                        (partial update)
//   - DELETE /videos/{videoId}                        (delete)
//   - PATCH  /videos/{videoId}/toggle-publish         (flip publish flag)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into envelope responses.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/http/middleware"
	"github.com/clipstream/go-video-backend/internal/repo"
	"github.com/clipstream/go-video-backend/internal/services"
)

// publishScope keys idempotency records for the video publish endpoint.
const publishScope = "video_publish"

// publishIdempotencyTTL bounds how long a publish may be replayed by key.
const publishIdempotencyTTL = 24 * time.Hour

// VideoService defines the video lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type VideoService interface {
	// List returns a page of videos matching the options.
	List(ctx context.Context, opts services.ListOptions) ([]domain.Video, error)
	// Publish uploads the media and inserts the video row.
	Publish(ctx context.Context, uploaderID, title, description string, media services.Upload, thumbnail *services.Upload) (*domain.Video, error)
	// Get fetches one video with its uploader summary.
	Get(ctx context.Context, id string) (*domain.Video, error)
	// Update applies a partial update to a video owned by the caller.
	Update(ctx context.Context, callerID, videoID string, patch services.VideoPatch) (*domain.Video, error)
	// Delete removes a video owned by the caller.
	Delete(ctx context.Context, callerID, videoID string) error
	// TogglePublish flips the publish flag of a video owned by the caller.
	TogglePublish(ctx context.Context, callerID, videoID string) (*domain.Video, error)
}

// UpdateVideoRequest is the JSON payload for a partial video update. Absent
// or blank fields leave the stored values unchanged.
type UpdateVideoRequest struct {
	Title        *string `json:"title,omitempty"         example:"My first upload"`
	Description  *string `json:"description,omitempty"   example:"A short clip"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" example:"https://media.example.com/thumbnails/abc"`
}

// ListVideos godoc
// @ID          listVideos
// @Summary     List videos
// @Description Returns a page of videos, optionally filtered by title substring and uploader, sorted by createdAt, views, or title.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
//
// @Param       query     query  string  false "Title substring filter"
// @Param       userId    query  string  false "Restrict to one uploader" format(uuid)
// @Param       sortBy    query  string  false "Sort field"  Enums(createdAt, views, title) default(createdAt)
// @Param       sortType  query  string  false "Sort order"  Enums(asc, desc) default(desc)
// @Param       page      query  int     false "Page number" minimum(1) default(1)
// @Param       limit     query  int     false "Items per page" minimum(1) maximum(100) default(10)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     500  {object}  handlers.APIResponse "Internal error"
// @Router      /videos [get]
func (h *Handlers) ListVideos(c *gin.Context) {
	uploaderID := c.Query("userId")
	if uploaderID != "" {
		if _, err := uuid.Parse(uploaderID); err != nil {
			fail(c, http.StatusBadRequest, "userId must be a UUID")
			return
		}
	}
	page, pageSize := clampPagination(c)

	videos, err := h.videoSvc.List(c.Request.Context(), services.ListOptions{
		Query:      c.Query("query"),
		UploaderID: uploaderID,
		SortBy:     c.DefaultQuery("sortBy", "createdAt"),
		SortDir:    c.DefaultQuery("sortType", "desc"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "videos fetched successfully")
}

// PublishVideo godoc
// @ID          publishVideo
// @Summary     Publish a video
// @Description Uploads the media file (and optional thumbnail) to object storage and creates the video. Supports safe retries via the Idempotency-Key header.
// @Tags        Videos
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
//
// @Param       Idempotency-Key  header    string  false "Key for safe retries"
// @Param       title            formData  string  true  "Video title"
// @Param       description      formData  string  false "Video description"
// @Param       videoFile        formData  file    true  "Media file"
// @Param       thumbnail        formData  file    false "Thumbnail image"
//
// @Success     201  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     500  {object}  handlers.APIResponse "Internal error"
// @Router      /videos [post]
func (h *Handlers) PublishVideo(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	// Replay a previously completed publish for the same key (best effort).
	if key, ok := middleware.GetIdempotencyKey(c); ok && middleware.IsReplay(c) {
		if db := h.videoDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, uid, publishScope, key, time.Now().UTC()); err == nil {
				if v, err := h.videoSvc.Get(ctx, rec.ResourceID); err == nil {
					respond(c, rec.Status, v, "video published successfully")
					return
				}
			}
		}
	}

	title := c.PostForm("title")
	description := c.PostForm("description")

	mediaHeader, err := c.FormFile("videoFile")
	if err != nil {
		fail(c, http.StatusBadRequest, "videoFile is required")
		return
	}
	media, err := mediaHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "cannot read videoFile")
		return
	}
	defer media.Close()

	upload := services.Upload{
		Reader:      media,
		Size:        mediaHeader.Size,
		ContentType: mediaHeader.Header.Get("Content-Type"),
	}

	var thumb *services.Upload
	if th, err := c.FormFile("thumbnail"); err == nil {
		f, err := th.Open()
		if err != nil {
			fail(c, http.StatusBadRequest, "cannot read thumbnail")
			return
		}
		defer f.Close()
		thumb = &services.Upload{
			Reader:      f,
			Size:        th.Size,
			ContentType: th.Header.Get("Content-Type"),
		}
	}

	v, err := h.videoSvc.Publish(ctx, uid, title, description, upload, thumb)
	if err != nil {
		failErr(c, err)
		return
	}

	// Record the key so retries replay instead of re-uploading (best effort).
	if key, ok := middleware.GetIdempotencyKey(c); ok {
		if db := h.videoDB(); db != nil {
			_, _ = repo.CreateIdempotency(ctx, db, uid, publishScope, key, v.ID, http.StatusCreated, publishIdempotencyTTL)
		}
	}

	respond(c, http.StatusCreated, v, "video published successfully")
}

// GetVideo godoc
// @ID          getVideo
// @Summary     Get a video
// @Description Returns one video with its uploader summary.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
//
// @Param       videoId  path  string  true  "Video ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Video not found"
// @Router      /videos/{videoId} [get]
func (h *Handlers) GetVideo(c *gin.Context) {
	videoID := c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return
	}
	v, err := h.videoSvc.Get(c.Request.Context(), videoID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, v, "video fetched successfully")
}

// UpdateVideo godoc
// @ID          updateVideo
// @Summary     Update a video
// @Description Partially updates title, description, or thumbnail of a video owned by the caller. Blank fields preserve stored values.
// @Tags        Videos
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       videoId  path  string                        true  "Video ID (UUID)"  format(uuid)
// @Param       body     body  handlers.UpdateVideoRequest   true  "Fields to update"
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the owner"
// @Failure     404  {object}  handlers.APIResponse "Video not found"
// @Router      /videos/{videoId} [patch]
func (h *Handlers) UpdateVideo(c *gin.Context) {
	videoID := c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return
	}
	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	v, err := h.videoSvc.Update(c.Request.Context(), userID(c), videoID, services.VideoPatch{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, v, "video updated successfully")
}

// DeleteVideo godoc
// @ID          deleteVideo
// @Summary     Delete a video
// @Description Deletes a video owned by the caller; comments and likes cascade.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
//
// @Param       videoId  path  string  true  "Video ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the owner"
// @Failure     404  {object}  handlers.APIResponse "Video not found"
// @Router      /videos/{videoId} [delete]
func (h *Handlers) DeleteVideo(c *gin.Context) {
	videoID := c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return
	}
	if err := h.videoSvc.Delete(c.Request.Context(), userID(c), videoID); err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "video deleted successfully")
}

// TogglePublish godoc
// @ID          togglePublishVideo
// @Summary     Toggle a video's publish flag
// @Description Flips is_published on a video owned by the caller and returns the updated video.
// @Tags        Videos
// @Produce     json
// @Security    BearerAuth
//
// @Param       videoId  path  string  true  "Video ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the owner"
// @Failure     404  {object}  handlers.APIResponse "Video not found"
// @Router      /videos/{videoId}/toggle-publish [patch]
func (h *Handlers) TogglePublish(c *gin.Context) {
	videoID := c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return
	}
	v, err := h.videoSvc.TogglePublish(c.Request.Context(), userID(c), videoID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, v, "publish status toggled successfully")
}

// videoDB exposes the concrete service's DB handle for the idempotency
// side-table (best effort; nil when the handler is wired with a stub).
func (h *Handlers) videoDB() *gorm.DB {
	if svc, ok := h.videoSvc.(*services.VideoService); ok {
		return svc.DB
	}
	return nil
}
