// Playlist repository functions. Membership is modelled as explicit
// playlist_videos rows with a position column; GetPlaylist re-assembles the
// ordered video slice with a single join.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
)

// CreatePlaylist inserts an empty playlist owned by ownerID.
func CreatePlaylist(ctx context.Context, db *gorm.DB, ownerID, name, description string) (*domain.Playlist, error) {
	p := &domain.Playlist{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ListPlaylistsByOwner returns all playlists owned by ownerID, newest first,
// without member videos.
func ListPlaylistsByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]domain.Playlist, error) {
	var out []domain.Playlist
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetPlaylist fetches a playlist with its member videos in insertion order.
// Returns ErrNotFound when the playlist does not exist.
func GetPlaylist(ctx context.Context, db *gorm.DB, id string) (*domain.Playlist, error) {
	var p domain.Playlist
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	err := db.WithContext(ctx).
		Model(&domain.Video{}).
		Joins("JOIN playlist_videos pv ON pv.video_id = videos.id").
		Where("pv.playlist_id = ?", id).
		Order("pv.position asc").
		Find(&p.Videos).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePlaylist persists name/description changes of an already-loaded
// playlist.
func UpdatePlaylist(ctx context.Context, db *gorm.DB, p *domain.Playlist) error {
	p.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Model(&domain.Playlist{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"updated_at":  p.UpdatedAt,
		}).Error
}

// DeletePlaylist removes a playlist and, via FK cascade, its membership rows.
// Returns ErrNotFound when no row matched.
func DeletePlaylist(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Playlist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddPlaylistVideo appends videoID to the playlist, assigning the next
// position. A duplicate membership maps to ErrDuplicate via the unique index.
func AddPlaylistVideo(ctx context.Context, db *gorm.DB, playlistID, videoID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int64
		err := tx.Model(&domain.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), -1) + 1").
			Scan(&next).Error
		if err != nil {
			return err
		}
		row := &domain.PlaylistVideo{
			ID:         uuid.NewString(),
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   int(next),
			CreatedAt:  time.Now().UTC(),
		}
		if err := tx.Create(row).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return err
		}
		return nil
	})
}

// RemovePlaylistVideo deletes the membership row, reporting whether one
// existed. Removal of an absent member is not an error at this layer.
func RemovePlaylistVideo(ctx context.Context, db *gorm.DB, playlistID, videoID string) (bool, error) {
	res := db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&domain.PlaylistVideo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
