// Playlist HTTP handlers.
//
//   - POST   /playlists                                   (create)
//   - GET    /playlists                                   (list the caller's playlists)
//   - GET    /playlists/user/{userId}                     (list a user's playlists)
//   - GET    /playlists/{playlistId}                      (fetch with ordered videos)
//   - PATCH  /playlists/{playlistId}                      (partial update)
//   - DELETE /playlists/{playlistId}                      (delete)
//   - PATCH  /playlists/{playlistId}/videos/{videoId}     (add video)
//   - DELETE /playlists/{playlistId}/videos/{videoId}     (remove video)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/services"
)

// PlaylistService defines playlist operations consumed by HTTP handlers.
type PlaylistService interface {
	// Create makes an empty playlist owned by the caller.
	Create(ctx context.Context, ownerID, name, description string) (*domain.Playlist, error)
	// ListByUser returns a user's playlists without member videos.
	ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error)
	// Get fetches a playlist with its member videos in insertion order.
	Get(ctx context.Context, id string) (*domain.Playlist, error)
	// Update applies a partial update to a playlist owned by the caller.
	Update(ctx context.Context, callerID, playlistID string, patch services.PlaylistPatch) (*domain.Playlist, error)
	// Delete removes a playlist owned by the caller.
	Delete(ctx context.Context, callerID, playlistID string) error
	// AddVideo appends a video to a playlist owned by the caller.
	AddVideo(ctx context.Context, callerID, playlistID, videoID string) error
	// RemoveVideo drops a video from a playlist owned by the caller.
	RemoveVideo(ctx context.Context, callerID, playlistID, videoID string) error
}

// CreatePlaylistRequest is the JSON payload for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required" example:"Watch later"`
	Description string `json:"description"             example:"Clips to revisit"`
}

// UpdatePlaylistRequest is the JSON payload for a partial playlist update.
// Absent or blank fields leave the stored values unchanged.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name,omitempty"        example:"Favorites"`
	Description *string `json:"description,omitempty" example:"The very best"`
}

// CreatePlaylist godoc
// @ID          createPlaylist
// @Summary     Create a playlist
// @Tags        Playlists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreatePlaylistRequest  true  "Playlist payload"
//
// @Success     201  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Router      /playlists [post]
func (h *Handlers) CreatePlaylist(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name is required")
		return
	}
	p, err := h.playlistSvc.Create(c.Request.Context(), userID(c), req.Name, req.Description)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, p, "playlist created successfully")
}

// ListMyPlaylists godoc
// @ID          listMyPlaylists
// @Summary     List the caller's playlists
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.APIResponse
// @Router      /playlists [get]
func (h *Handlers) ListMyPlaylists(c *gin.Context) {
	playlists, err := h.playlistSvc.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, playlists, "playlists fetched successfully")
}

// ListUserPlaylists godoc
// @ID          listUserPlaylists
// @Summary     List a user's playlists
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
//
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "User not found"
// @Router      /playlists/user/{userId} [get]
func (h *Handlers) ListUserPlaylists(c *gin.Context) {
	uid := c.Param("userId")
	if _, err := uuid.Parse(uid); err != nil {
		fail(c, http.StatusBadRequest, "user id must be a UUID")
		return
	}
	playlists, err := h.playlistSvc.ListByUser(c.Request.Context(), uid)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, playlists, "playlists fetched successfully")
}

// GetPlaylist godoc
// @ID          getPlaylist
// @Summary     Get a playlist
// @Description Returns a playlist with its member videos in insertion order.
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
//
// @Param       playlistId  path  string  true  "Playlist ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     404  {object}  handlers.APIResponse "Playlist not found"
// @Router      /playlists/{playlistId} [get]
func (h *Handlers) GetPlaylist(c *gin.Context) {
	playlistID := c.Param("playlistId")
	if _, err := uuid.Parse(playlistID); err != nil {
		fail(c, http.StatusBadRequest, "playlist id must be a UUID")
		return
	}
	p, err := h.playlistSvc.Get(c.Request.Context(), playlistID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, p, "playlist fetched successfully")
}

// UpdatePlaylist godoc
// @ID          updatePlaylist
// @Summary     Update a playlist
// @Description Partially updates name or description of a playlist owned by the caller.
// @Tags        Playlists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       playlistId  path  string                           true  "Playlist ID (UUID)"  format(uuid)
// @Param       body        body  handlers.UpdatePlaylistRequest   true  "Fields to update"
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the owner"
// @Failure     404  {object}  handlers.APIResponse "Playlist not found"
// @Router      /playlists/{playlistId} [patch]
func (h *Handlers) UpdatePlaylist(c *gin.Context) {
	playlistID := c.Param("playlistId")
	if _, err := uuid.Parse(playlistID); err != nil {
		fail(c, http.StatusBadRequest, "playlist id must be a UUID")
		return
	}
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p, err := h.playlistSvc.Update(c.Request.Context(), userID(c), playlistID, services.PlaylistPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, p, "playlist updated successfully")
}

// DeletePlaylist godoc
// @ID          deletePlaylist
// @Summary     Delete a playlist
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
//
// @Param       playlistId  path  string  true  "Playlist ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the owner"
// @Failure     404  {object}  handlers.APIResponse "Playlist not found"
// @Router      /playlists/{playlistId} [delete]
func (h *Handlers) DeletePlaylist(c *gin.Context) {
	playlistID := c.Param("playlistId")
	if _, err := uuid.Parse(playlistID); err != nil {
		fail(c, http.StatusBadRequest, "playlist id must be a UUID")
		return
	}
	if err := h.playlistSvc.Delete(c.Request.Context(), userID(c), playlistID); err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "playlist deleted successfully")
}

// AddPlaylistVideo godoc
// @ID          addPlaylistVideo
// @Summary     Add a video to a playlist
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
//
// @Param       playlistId  path  string  true  "Playlist ID (UUID)"  format(uuid)
// @Param       videoId     path  string  true  "Video ID (UUID)"     format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the owner"
// @Failure     404  {object}  handlers.APIResponse "Playlist or video not found"
// @Failure     409  {object}  handlers.APIResponse "Video already in playlist"
// @Router      /playlists/{playlistId}/videos/{videoId} [patch]
func (h *Handlers) AddPlaylistVideo(c *gin.Context) {
	playlistID, videoID, ok := playlistVideoIDs(c)
	if !ok {
		return
	}
	if err := h.playlistSvc.AddVideo(c.Request.Context(), userID(c), playlistID, videoID); err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "video added to playlist successfully")
}

// RemovePlaylistVideo godoc
// @ID          removePlaylistVideo
// @Summary     Remove a video from a playlist
// @Description Removing a video that is not a member succeeds without effect.
// @Tags        Playlists
// @Produce     json
// @Security    BearerAuth
//
// @Param       playlistId  path  string  true  "Playlist ID (UUID)"  format(uuid)
// @Param       videoId     path  string  true  "Video ID (UUID)"     format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     403  {object}  handlers.APIResponse "Not the owner"
// @Failure     404  {object}  handlers.APIResponse "Playlist not found"
// @Router      /playlists/{playlistId}/videos/{videoId} [delete]
func (h *Handlers) RemovePlaylistVideo(c *gin.Context) {
	playlistID, videoID, ok := playlistVideoIDs(c)
	if !ok {
		return
	}
	if err := h.playlistSvc.RemoveVideo(c.Request.Context(), userID(c), playlistID, videoID); err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "video removed from playlist successfully")
}

// playlistVideoIDs validates the two path params of membership routes. On
// failure a 400 envelope has already been written.
func playlistVideoIDs(c *gin.Context) (playlistID, videoID string, ok bool) {
	playlistID = c.Param("playlistId")
	if _, err := uuid.Parse(playlistID); err != nil {
		fail(c, http.StatusBadRequest, "playlist id must be a UUID")
		return "", "", false
	}
	videoID = c.Param("videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		fail(c, http.StatusBadRequest, "video id must be a UUID")
		return "", "", false
	}
	return playlistID, videoID, true
}
