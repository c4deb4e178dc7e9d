// Dashboard HTTP handlers.
//
//   - GET /dashboard/{channelId}/stats    (aggregate counters)
//   - GET /dashboard/{channelId}/videos   (channel uploads, including unpublished)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// DashboardService exposes channel aggregates consumed by HTTP handlers.
type DashboardService interface {
	// Stats returns the channel aggregates; zeros for an empty channel.
	Stats(ctx context.Context, channelID string) (*repo.ChannelStats, error)
	// Videos returns a page of the channel's own uploads, newest first.
	Videos(ctx context.Context, channelID string, page, pageSize int) ([]domain.Video, error)
}

// GetChannelStats godoc
// @ID          getChannelStats
// @Summary     Get a channel's statistics
// @Description Returns total videos, views, subscribers, and likes received. A channel with no activity reports zeros.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
//
// @Param       channelId  path  string  true  "Channel (user) ID (UUID)"  format(uuid)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Router      /dashboard/{channelId}/stats [get]
func (h *Handlers) GetChannelStats(c *gin.Context) {
	channelID := c.Param("channelId")
	if _, err := uuid.Parse(channelID); err != nil {
		fail(c, http.StatusBadRequest, "channel id must be a UUID")
		return
	}
	stats, err := h.dashboardSvc.Stats(c.Request.Context(), channelID)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "channel stats fetched successfully")
}

// ListChannelVideos godoc
// @ID          listChannelVideos
// @Summary     List a channel's uploads
// @Description Returns a page of the channel's videos, newest first, including unpublished ones.
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
//
// @Param       channelId  path   string  true  "Channel (user) ID (UUID)"  format(uuid)
// @Param       page       query  int     false "Page number"    minimum(1) default(1)
// @Param       limit      query  int     false "Items per page" minimum(1) maximum(100) default(10)
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Router      /dashboard/{channelId}/videos [get]
func (h *Handlers) ListChannelVideos(c *gin.Context) {
	channelID := c.Param("channelId")
	if _, err := uuid.Parse(channelID); err != nil {
		fail(c, http.StatusBadRequest, "channel id must be a UUID")
		return
	}
	page, pageSize := clampPagination(c)
	videos, err := h.dashboardSvc.Videos(c.Request.Context(), channelID, page, pageSize)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "channel videos fetched successfully")
}
