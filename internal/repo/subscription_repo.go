// Subscription repository functions. The (subscriber, channel) unique index
// is the concurrency backstop for the subscribe toggle.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// DeleteSubscription removes the edge subscriberID → channelID, reporting
// whether one existed.
func DeleteSubscription(ctx context.Context, db *gorm.DB, subscriberID, channelID string) (bool, error) {
	res := db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&domain.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CreateSubscription inserts the edge subscriberID → channelID. A concurrent
// duplicate maps to ErrDuplicate via the unique index.
func CreateSubscription(ctx context.Context, db *gorm.DB, subscriberID, channelID string) error {
	s := &domain.Subscription{
		ID:           uuid.NewString(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ListChannelSubscribers returns the subscriptions pointing at channelID with
// each subscriber's public summary populated.
func ListChannelSubscribers(ctx context.Context, db *gorm.DB, channelID string) ([]domain.Subscription, error) {
	var out []domain.Subscription
	err := db.WithContext(ctx).
		Preload("Subscriber", uploaderSummary).
		Where("channel_id = ?", channelID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListSubscribedChannels returns the subscriptions made by subscriberID with
// each channel's public summary populated.
func ListSubscribedChannels(ctx context.Context, db *gorm.DB, subscriberID string) ([]domain.Subscription, error) {
	var out []domain.Subscription
	err := db.WithContext(ctx).
		Preload("Channel", uploaderSummary).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
