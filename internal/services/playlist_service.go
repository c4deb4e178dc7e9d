package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// PlaylistService manages playlists and their video membership. All mutations,
// including membership changes, are restricted to the playlist's owner.
type PlaylistService struct {
	DB *gorm.DB
}

// NewPlaylistService constructs a PlaylistService.
func NewPlaylistService(db *gorm.DB) *PlaylistService {
	return &PlaylistService{DB: db}
}

// Create makes an empty playlist owned by ownerID.
func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (*domain.Playlist, error) {
	name = normalizeText(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return repo.CreatePlaylist(ctx, s.DB, ownerID, name, description)
}

// ListByUser returns a user's playlists without member videos. The user must
// exist.
func (s *PlaylistService) ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error) {
	ok, err := repo.UserExists(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return repo.ListPlaylistsByOwner(ctx, s.DB, userID)
}

// Get fetches a playlist with its member videos in insertion order.
func (s *PlaylistService) Get(ctx context.Context, id string) (*domain.Playlist, error) {
	p, err := repo.GetPlaylist(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlaylistNotFound
	}
	return p, err
}

// PlaylistPatch carries the optional fields of a partial update; blank values
// preserve the originals.
type PlaylistPatch struct {
	Name        *string
	Description *string
}

// Update applies a partial update to a playlist owned by callerID.
func (s *PlaylistService) Update(ctx context.Context, callerID, playlistID string, patch PlaylistPatch) (*domain.Playlist, error) {
	p, err := s.ownedPlaylist(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}
	if n := deref(patch.Name); n != "" {
		p.Name = normalizeText(n)
	}
	if d := deref(patch.Description); d != "" {
		p.Description = d
	}
	if err := repo.UpdatePlaylist(ctx, s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a playlist owned by callerID together with its membership
// rows.
func (s *PlaylistService) Delete(ctx context.Context, callerID, playlistID string) error {
	if _, err := s.ownedPlaylist(ctx, callerID, playlistID); err != nil {
		return err
	}
	err := repo.DeletePlaylist(ctx, s.DB, playlistID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrPlaylistNotFound
	}
	return err
}

// AddVideo appends a video to a playlist owned by callerID. The video must
// exist and not already be a member.
func (s *PlaylistService) AddVideo(ctx context.Context, callerID, playlistID, videoID string) error {
	if _, err := s.ownedPlaylist(ctx, callerID, playlistID); err != nil {
		return err
	}
	if _, err := repo.GetVideo(ctx, s.DB, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	err := repo.AddPlaylistVideo(ctx, s.DB, playlistID, videoID)
	if errors.Is(err, repo.ErrDuplicate) {
		return ErrDuplicatePlaylistVideo
	}
	return err
}

// RemoveVideo drops a video from a playlist owned by callerID. Removing a
// video that is not a member is a no-op.
func (s *PlaylistService) RemoveVideo(ctx context.Context, callerID, playlistID, videoID string) error {
	if _, err := s.ownedPlaylist(ctx, callerID, playlistID); err != nil {
		return err
	}
	_, err := repo.RemovePlaylistVideo(ctx, s.DB, playlistID, videoID)
	return err
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, callerID, playlistID string) (*domain.Playlist, error) {
	var p domain.Playlist
	err := s.DB.WithContext(ctx).Where("id = ?", playlistID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.OwnerID != callerID {
		return nil, ErrNotOwner
	}
	return &p, nil
}
