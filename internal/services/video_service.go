// Package services – VideoService
//
// Manages the video lifecycle: publishing (media upload + row insert),
// listing with filter/sort/pagination, owner-gated partial updates and
// deletes, and the publish-flag toggle. Titles are normalized and clipped
// before storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
	"github.com/clipstream/go-video-backend/internal/storage"
)

// sortColumns whitelists caller-chosen sort fields and maps them to the
// physical column. Anything else falls back to creation time.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"title":     "title",
}

// VideoService provides video-level operations. It enforces ownership on
// mutations and delegates media bytes to the configured object store.
type VideoService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store receives uploaded media and thumbnails.
	Store storage.Uploader

	// TitleMaxLen caps stored titles by rune length.
	TitleMaxLen int
	// TitleLocale selects the collation locale for title normalization.
	TitleLocale language.Tag
}

// NewVideoService constructs a VideoService with sane defaults.
func NewVideoService(db *gorm.DB, store storage.Uploader) *VideoService {
	return &VideoService{
		DB:          db,
		Store:       store,
		TitleMaxLen: 120,
		TitleLocale: language.Und,
	}
}

// ListOptions narrows and pages the video listing.
type ListOptions struct {
	// Query filters by case-insensitive title substring when non-empty.
	Query string
	// UploaderID filters to one uploader when non-empty.
	UploaderID string
	// SortBy is one of createdAt, views, title; default createdAt.
	SortBy string
	// SortDir is "asc" or "desc"; default desc (newest first).
	SortDir string
	// Page and PageSize control skip/limit; defaults 1 and 10.
	Page     int
	PageSize int
}

// Upload carries one media part handed to the object store.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// List returns a page of videos. Invalid sort fields fall back to creation
// time and invalid paging values to the defaults, mirroring the behavior of
// the query parameters they come from.
func (s *VideoService) List(ctx context.Context, opts ListOptions) ([]domain.Video, error) {
	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "created_at"
	}
	descending := opts.SortDir != "asc"

	page, size := clampPage(opts.Page, opts.PageSize)
	return repo.ListVideos(ctx, s.DB, repo.VideoFilter{
		TitleQuery: opts.Query,
		UploaderID: opts.UploaderID,
	}, column, descending, (page-1)*size, size)
}

// Publish uploads the media (and optional thumbnail), then inserts the video
// row owned by uploaderID. Storage failures are wrapped in ErrUploadFailed;
// no row is written when the upload did not complete.
func (s *VideoService) Publish(ctx context.Context, uploaderID, title, description string, media Upload, thumbnail *Upload) (*domain.Video, error) {
	title = normalizeText(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	id := uuid.NewString()
	videoURL, err := s.Store.Upload(ctx, media.Reader, media.Size, media.ContentType, "videos/"+id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	var thumbURL string
	if thumbnail != nil {
		thumbURL, err = s.Store.Upload(ctx, thumbnail.Reader, thumbnail.Size, thumbnail.ContentType, "thumbnails/"+id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
	}

	return repo.CreateVideo(ctx, s.DB, uploaderID, s.clip(title), description, videoURL, thumbURL)
}

// Get fetches one video with its uploader summary.
func (s *VideoService) Get(ctx context.Context, id string) (*domain.Video, error) {
	v, err := repo.GetVideo(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVideoNotFound
	}
	return v, err
}

// VideoPatch carries the optional fields of a partial update. A nil field
// means "no change requested"; a present-but-blank value also preserves the
// original.
type VideoPatch struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
}

// Update applies a partial update to a video owned by callerID.
func (s *VideoService) Update(ctx context.Context, callerID, videoID string, patch VideoPatch) (*domain.Video, error) {
	v, err := s.ownedVideo(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}

	if t := deref(patch.Title); t != "" {
		v.Title = s.clip(normalizeText(t))
	}
	if d := deref(patch.Description); d != "" {
		v.Description = d
	}
	if u := deref(patch.ThumbnailURL); u != "" {
		v.ThumbnailURL = u
	}

	if err := repo.UpdateVideo(ctx, s.DB, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes a video owned by callerID.
func (s *VideoService) Delete(ctx context.Context, callerID, videoID string) error {
	if _, err := s.ownedVideo(ctx, callerID, videoID); err != nil {
		return err
	}
	err := repo.DeleteVideo(ctx, s.DB, videoID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrVideoNotFound
	}
	return err
}

// TogglePublish flips the publish flag of a video owned by callerID and
// returns the updated row.
func (s *VideoService) TogglePublish(ctx context.Context, callerID, videoID string) (*domain.Video, error) {
	v, err := s.ownedVideo(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}
	v.IsPublished = !v.IsPublished
	if err := repo.UpdateVideo(ctx, s.DB, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ownedVideo loads a video and verifies callerID is its uploader.
func (s *VideoService) ownedVideo(ctx context.Context, callerID, videoID string) (*domain.Video, error) {
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	if v.UploaderID != callerID {
		return nil, ErrNotOwner
	}
	return v, nil
}

// clip truncates a title to the configured maximum rune length.
func (s *VideoService) clip(title string) string {
	if s.TitleMaxLen > 0 && utf8.RuneCountInString(title) > s.TitleMaxLen {
		return string([]rune(title)[:s.TitleMaxLen])
	}
	return title
}

// clampPage bounds page/pageSize to usable values (defaults 1 and 10,
// page size capped at 100).
func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// deref returns the trimmed value of an optional string field.
func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// normalizeText trims whitespace and collapses runs of spaces to one.
func normalizeText(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
