// Package repo implements the data persistence layer for domain entities,
// backed by GORM. Repository functions are context-aware, accept a *gorm.DB
// handle so they compose with transactions, and follow the "thin repository"
// approach: no business logic, only CRUD persistence and query composition.
//
// Error semantics:
//   - Missing records surface as ErrNotFound (alias of gorm.ErrRecordNotFound).
//   - Unique-constraint violations surface as ErrDuplicate.
//   - Other DB errors propagate raw; the service layer translates them.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for consistency across services and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates a unique-constraint violation (like pairs,
// subscription edges, playlist membership, usernames, idempotency keys).
var ErrDuplicate = errors.New("duplicate record")

// isUniqueViolation detects unique-constraint failures across drivers that
// may not map to gorm.ErrDuplicatedKey. glebarez/sqlite in particular often
// reports plain-text constraint errors.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed: unique") ||
		strings.Contains(msg, "duplicate key")
}

// uploaderSummary restricts a preloaded uploader/author to public fields.
func uploaderSummary(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "username", "email", "profile_picture")
}

// VideoFilter narrows ListVideos. Zero values mean "no constraint".
type VideoFilter struct {
	// TitleQuery is matched as a case-insensitive substring of the title.
	TitleQuery string
	// UploaderID restricts results to a single uploader.
	UploaderID string
	// PublishedOnly hides unpublished videos when set.
	PublishedOnly bool
}

// CreateVideo inserts a new video row owned by uploaderID. The ID is a
// generated UUID and CreatedAt is set to UTC.
func CreateVideo(ctx context.Context, db *gorm.DB, uploaderID, title, description, videoURL, thumbnailURL string) (*domain.Video, error) {
	v := &domain.Video{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		IsPublished:  true,
		UploaderID:   uploaderID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// ListVideos returns a page of videos matching the filter, ordered by the
// given column. sortColumn must already be validated against a whitelist by
// the caller; it is interpolated into the ORDER BY clause.
func ListVideos(ctx context.Context, db *gorm.DB, f VideoFilter, sortColumn string, descending bool, offset, limit int) ([]domain.Video, error) {
	q := db.WithContext(ctx).Model(&domain.Video{})
	if f.TitleQuery != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.TitleQuery)+"%")
	}
	if f.UploaderID != "" {
		q = q.Where("uploader_id = ?", f.UploaderID)
	}
	if f.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	dir := "asc"
	if descending {
		dir = "desc"
	}
	var out []domain.Video
	err := q.Order(sortColumn + " " + dir).
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetVideo fetches a single video with its uploader summary populated.
// Returns ErrNotFound when the record does not exist.
func GetVideo(ctx context.Context, db *gorm.DB, id string) (*domain.Video, error) {
	var v domain.Video
	err := db.WithContext(ctx).
		Preload("Uploader", uploaderSummary).
		Where("id = ?", id).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVideo persists changed columns of an already-loaded video.
func UpdateVideo(ctx context.Context, db *gorm.DB, v *domain.Video) error {
	v.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Video{}).
		Where("id = ?", v.ID).
		Updates(map[string]any{
			"title":         v.Title,
			"description":   v.Description,
			"thumbnail_url": v.ThumbnailURL,
			"is_published":  v.IsPublished,
			"updated_at":    v.UpdatedAt,
		}).Error
}

// DeleteVideo removes a video row. Returns ErrNotFound when no row matched.
func DeleteVideo(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
