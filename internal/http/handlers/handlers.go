// Handler wiring shared by all endpoint files. Handlers depends on abstract
// service interfaces (declared next to the endpoints that consume them) to
// keep transport concerns separate from business logic.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clipstream/go-video-backend/internal/utils"
)

// Handlers groups the HTTP endpoints for every API resource.
type Handlers struct {
	accountSvc      AccountService
	videoSvc        VideoService
	commentSvc      CommentService
	tweetSvc        TweetService
	likeSvc         LikeService
	playlistSvc     PlaylistService
	subscriptionSvc SubscriptionService
	dashboardSvc    DashboardService

	token TokenConfig
}

// New constructs a Handlers instance bound to the given services.
func New(
	accountSvc AccountService,
	videoSvc VideoService,
	commentSvc CommentService,
	tweetSvc TweetService,
	likeSvc LikeService,
	playlistSvc PlaylistService,
	subscriptionSvc SubscriptionService,
	dashboardSvc DashboardService,
) *Handlers {
	return &Handlers{
		accountSvc:      accountSvc,
		videoSvc:        videoSvc,
		commentSvc:      commentSvc,
		tweetSvc:        tweetSvc,
		likeSvc:         likeSvc,
		playlistSvc:     playlistSvc,
		subscriptionSvc: subscriptionSvc,
		dashboardSvc:    dashboardSvc,
	}
}

// userID extracts the authenticated user id set by the auth middleware. An
// empty return means the middleware did not run; protected routes always have
// it set.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// clampPagination parses and bounds the page and limit query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 10
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("limit"), defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}
