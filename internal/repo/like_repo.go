// Like repository functions. A like row targets exactly one of a video,
// comment, or tweet; the target column constants below are the only values
// ever interpolated into the WHERE clause.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// Target columns for like rows. Keep in sync with domain.Like.
const (
	LikeTargetVideo   = "video_id"
	LikeTargetComment = "comment_id"
	LikeTargetTweet   = "tweet_id"
)

// DeleteLike removes the like by userID on the given target, reporting
// whether a row existed. targetColumn must be one of the LikeTarget
// constants.
func DeleteLike(ctx context.Context, db *gorm.DB, userID, targetColumn, targetID string) (bool, error) {
	res := db.WithContext(ctx).
		Where("user_id = ? AND "+targetColumn+" = ?", userID, targetID).
		Delete(&domain.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CreateLike inserts a like row. The partial unique indexes on
// (user_id, <target>) reject concurrent duplicates; violations are returned
// as ErrDuplicate so the service can resolve the race.
func CreateLike(ctx context.Context, db *gorm.DB, like *domain.Like) error {
	if like.ID == "" {
		like.ID = uuid.NewString()
	}
	like.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ListVideoLikesByUser returns the caller's video likes with the liked video
// populated, newest like first.
func ListVideoLikesByUser(ctx context.Context, db *gorm.DB, userID string) ([]domain.Like, error) {
	var out []domain.Like
	err := db.WithContext(ctx).
		Preload("Video").
		Where("user_id = ? AND video_id IS NOT NULL", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
