package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// SubscriptionService manages the follows-graph between users. Subscribing to
// one's own channel is rejected; the toggle converges under concurrency via
// the (subscriber, channel) unique index.
type SubscriptionService struct {
	DB *gorm.DB
}

// NewSubscriptionService constructs a SubscriptionService.
func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{DB: db}
}

// Toggle flips the caller's subscription to channelID and reports the
// resulting state (true = subscribed).
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if subscriberID == channelID {
		return false, ErrSelfSubscription
	}
	ok, err := repo.UserExists(ctx, s.DB, channelID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrChannelNotFound
	}

	removed, err := repo.DeleteSubscription(ctx, s.DB, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	if err := repo.CreateSubscription(ctx, s.DB, subscriberID, channelID); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Subscribers returns the users subscribed to channelID.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID string) ([]domain.User, error) {
	ok, err := repo.UserExists(ctx, s.DB, channelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrChannelNotFound
	}
	subs, err := repo.ListChannelSubscribers(ctx, s.DB, channelID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(subs))
	for _, e := range subs {
		if e.Subscriber != nil {
			out = append(out, *e.Subscriber)
		}
	}
	return out, nil
}

// SubscribedChannels returns the channels the caller is subscribed to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]domain.User, error) {
	subs, err := repo.ListSubscribedChannels(ctx, s.DB, subscriberID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(subs))
	for _, e := range subs {
		if e.Channel != nil {
			out = append(out, *e.Channel)
		}
	}
	return out, nil
}
