package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// CommentService manages comments on videos. Edits and deletes are restricted
// to the comment's author.
type CommentService struct {
	DB *gorm.DB
}

// NewCommentService constructs a CommentService.
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{DB: db}
}

// ListByVideo returns a page of comments for a video, newest first. The video
// must exist.
func (s *CommentService) ListByVideo(ctx context.Context, videoID string, page, pageSize int) ([]domain.Comment, error) {
	if _, err := repo.GetVideo(ctx, s.DB, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	page, size := clampPage(page, pageSize)
	return repo.ListCommentsByVideo(ctx, s.DB, videoID, (page-1)*size, size)
}

// Add creates a comment by userID on videoID.
func (s *CommentService) Add(ctx context.Context, userID, videoID, content string) (*domain.Comment, error) {
	content = normalizeText(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if _, err := repo.GetVideo(ctx, s.DB, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return repo.CreateComment(ctx, s.DB, videoID, userID, content)
}

// Update replaces the content of a comment authored by callerID. Blank
// content leaves the stored content unchanged.
func (s *CommentService) Update(ctx context.Context, callerID, commentID, content string) (*domain.Comment, error) {
	c, err := s.ownedComment(ctx, callerID, commentID)
	if err != nil {
		return nil, err
	}
	content = normalizeText(content)
	if content == "" {
		return c, nil
	}
	if err := repo.UpdateCommentContent(ctx, s.DB, commentID, content); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	c.Content = content
	return c, nil
}

// Delete removes a comment authored by callerID.
func (s *CommentService) Delete(ctx context.Context, callerID, commentID string) error {
	if _, err := s.ownedComment(ctx, callerID, commentID); err != nil {
		return err
	}
	err := repo.DeleteComment(ctx, s.DB, commentID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrCommentNotFound
	}
	return err
}

func (s *CommentService) ownedComment(ctx context.Context, callerID, commentID string) (*domain.Comment, error) {
	c, err := repo.GetComment(ctx, s.DB, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.UserID != callerID {
		return nil, ErrNotOwner
	}
	return c, nil
}
