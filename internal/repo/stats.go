// Aggregate queries backing the channel dashboard. Each function is a single
// grouped/filtered statement; the view sum is COALESCE'd so a channel with no
// videos reports zero instead of a NULL scan error.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// ChannelStats bundles the dashboard aggregates for one channel.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

// GetChannelStats computes, for the channel identified by channelID: the
// count of owned videos, the sum of their view counters, the count of inbound
// subscriptions, and the count of likes received on owned videos (via the
// denormalized video_owner_id column on likes).
func GetChannelStats(ctx context.Context, db *gorm.DB, channelID string) (*ChannelStats, error) {
	var s ChannelStats

	err := db.WithContext(ctx).
		Model(&domain.Video{}).
		Where("uploader_id = ?", channelID).
		Count(&s.TotalVideos).Error
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).
		Model(&domain.Video{}).
		Where("uploader_id = ?", channelID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&s.TotalViews).Error
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&s.TotalSubscribers).Error
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("video_owner_id = ?", channelID).
		Count(&s.TotalLikes).Error
	if err != nil {
		return nil, err
	}

	return &s, nil
}
