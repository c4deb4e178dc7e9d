// Tweet repository functions.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// CreateTweet inserts a tweet authored by authorID.
func CreateTweet(ctx context.Context, db *gorm.DB, authorID, content string) (*domain.Tweet, error) {
	t := &domain.Tweet{
		ID:        uuid.NewString(),
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ListTweetsByAuthor returns all tweets by authorID, newest first.
func ListTweetsByAuthor(ctx context.Context, db *gorm.DB, authorID string) ([]domain.Tweet, error) {
	var out []domain.Tweet
	err := db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetTweet fetches a tweet by ID or ErrNotFound.
func GetTweet(ctx context.Context, db *gorm.DB, id string) (*domain.Tweet, error) {
	var t domain.Tweet
	if err := db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTweetContent replaces a tweet's content. Returns ErrNotFound when no
// row matched.
func UpdateTweetContent(ctx context.Context, db *gorm.DB, id, content string) error {
	res := db.WithContext(ctx).
		Model(&domain.Tweet{}).
		Where("id = ?", id).
		Updates(map[string]any{"content": content, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTweet removes a tweet row. Returns ErrNotFound when no row matched.
func DeleteTweet(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Tweet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
