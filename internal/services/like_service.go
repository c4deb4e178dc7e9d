package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// LikeService implements the like toggles for videos, comments, and tweets.
//
// Toggle semantics: delete first, and when nothing was deleted insert the
// like. A concurrent insert that trips the unique index resolves to
// "already liked" rather than an error, so two racing toggles converge on a
// single like row.
type LikeService struct {
	DB *gorm.DB
}

// NewLikeService constructs a LikeService.
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{DB: db}
}

// ToggleVideo flips the caller's like on a video and reports the resulting
// state (true = liked).
func (s *LikeService) ToggleVideo(ctx context.Context, userID, videoID string) (bool, error) {
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrVideoNotFound
	}
	if err != nil {
		return false, err
	}
	return s.toggle(ctx, userID, repo.LikeTargetVideo, videoID, &domain.Like{
		UserID:       userID,
		VideoID:      &videoID,
		VideoOwnerID: v.UploaderID,
	})
}

// ToggleComment flips the caller's like on a comment.
func (s *LikeService) ToggleComment(ctx context.Context, userID, commentID string) (bool, error) {
	if _, err := repo.GetComment(ctx, s.DB, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCommentNotFound
		}
		return false, err
	}
	return s.toggle(ctx, userID, repo.LikeTargetComment, commentID, &domain.Like{
		UserID:    userID,
		CommentID: &commentID,
	})
}

// ToggleTweet flips the caller's like on a tweet.
func (s *LikeService) ToggleTweet(ctx context.Context, userID, tweetID string) (bool, error) {
	if _, err := repo.GetTweet(ctx, s.DB, tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrTweetNotFound
		}
		return false, err
	}
	return s.toggle(ctx, userID, repo.LikeTargetTweet, tweetID, &domain.Like{
		UserID:  userID,
		TweetID: &tweetID,
	})
}

// LikedVideos returns the videos the caller has liked, newest like first.
func (s *LikeService) LikedVideos(ctx context.Context, userID string) ([]domain.Video, error) {
	likes, err := repo.ListVideoLikesByUser(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Video, 0, len(likes))
	for _, l := range likes {
		if l.Video != nil {
			out = append(out, *l.Video)
		}
	}
	return out, nil
}

func (s *LikeService) toggle(ctx context.Context, userID, targetColumn, targetID string, like *domain.Like) (bool, error) {
	removed, err := repo.DeleteLike(ctx, s.DB, userID, targetColumn, targetID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	if err := repo.CreateLike(ctx, s.DB, like); err != nil {
		// Lost a race against a concurrent toggle that inserted first; the
		// like exists, which is the state this call was converging on.
		if errors.Is(err, repo.ErrDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
