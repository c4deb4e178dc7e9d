package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// DashboardService exposes the caller's channel aggregates and uploads.
type DashboardService struct {
	DB *gorm.DB
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Stats returns the channel aggregates for channelID. A channel with no
// videos or subscribers reports zeros, never an error.
func (s *DashboardService) Stats(ctx context.Context, channelID string) (*repo.ChannelStats, error) {
	return repo.GetChannelStats(ctx, s.DB, channelID)
}

// Videos returns a page of the channel's own uploads, newest first, including
// unpublished ones.
func (s *DashboardService) Videos(ctx context.Context, channelID string, page, pageSize int) ([]domain.Video, error) {
	page, size := clampPage(page, pageSize)
	return repo.ListVideos(ctx, s.DB, repo.VideoFilter{UploaderID: channelID}, "created_at", true, (page-1)*size, size)
}
