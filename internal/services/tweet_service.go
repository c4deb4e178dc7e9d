package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// TweetService manages short text posts. Edits and deletes are restricted to
// the tweet's author.
type TweetService struct {
	DB *gorm.DB
}

// NewTweetService constructs a TweetService.
func NewTweetService(db *gorm.DB) *TweetService {
	return &TweetService{DB: db}
}

// Create posts a tweet authored by userID.
func (s *TweetService) Create(ctx context.Context, userID, content string) (*domain.Tweet, error) {
	content = normalizeText(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return repo.CreateTweet(ctx, s.DB, userID, content)
}

// ListByUser returns all tweets by the given user, newest first. The user
// must exist.
func (s *TweetService) ListByUser(ctx context.Context, userID string) ([]domain.Tweet, error) {
	ok, err := repo.UserExists(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return repo.ListTweetsByAuthor(ctx, s.DB, userID)
}

// Update replaces the content of a tweet authored by callerID. Blank content
// leaves the stored content unchanged.
func (s *TweetService) Update(ctx context.Context, callerID, tweetID, content string) (*domain.Tweet, error) {
	t, err := s.ownedTweet(ctx, callerID, tweetID)
	if err != nil {
		return nil, err
	}
	content = normalizeText(content)
	if content == "" {
		return t, nil
	}
	if err := repo.UpdateTweetContent(ctx, s.DB, tweetID, content); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	t.Content = content
	return t, nil
}

// Delete removes a tweet authored by callerID.
func (s *TweetService) Delete(ctx context.Context, callerID, tweetID string) error {
	if _, err := s.ownedTweet(ctx, callerID, tweetID); err != nil {
		return err
	}
	err := repo.DeleteTweet(ctx, s.DB, tweetID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTweetNotFound
	}
	return err
}

func (s *TweetService) ownedTweet(ctx context.Context, callerID, tweetID string) (*domain.Tweet, error) {
	t, err := repo.GetTweet(ctx, s.DB, tweetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTweetNotFound
	}
	if err != nil {
		return nil, err
	}
	if t.AuthorID != callerID {
		return nil, ErrNotOwner
	}
	return t, nil
}
