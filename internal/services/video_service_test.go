package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clipstream/go-video-backend/internal/domain"
	"github.com/clipstream/go-video-backend/internal/repo"
)

// newSvcDB opens a throwaway SQLite database with the full schema. Shared by
// every service test file in this package.
func newSvcDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("svc_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func svcUser(t *testing.T, db *gorm.DB, id, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return u
}

// stubUploader records object names and can be forced to fail.
type stubUploader struct {
	uploads []string
	err     error
}

func (s *stubUploader) Upload(_ context.Context, r io.Reader, _ int64, _, objectName string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	_, _ = io.Copy(io.Discard, r)
	s.uploads = append(s.uploads, objectName)
	return "http://store/" + objectName, nil
}

func ptr(s string) *string { return &s }

func TestVideoPublish_EmptyTitle(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewVideoService(db, &stubUploader{})

	_, err := svc.Publish(context.Background(), "u1", "   ", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("want ErrEmptyTitle, got %v", err)
	}
}

func TestVideoPublish_UploadsMediaAndThumbnail(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	store := &stubUploader{}
	svc := NewVideoService(db, store)

	v, err := svc.Publish(context.Background(), "u1", "  My   clip  ", "d",
		Upload{Reader: strings.NewReader("media"), Size: 5, ContentType: "video/mp4"},
		&Upload{Reader: strings.NewReader("thumb"), Size: 5, ContentType: "image/png"},
	)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if v.Title != "My clip" {
		t.Fatalf("title not normalized: %q", v.Title)
	}
	if !strings.HasPrefix(v.VideoURL, "http://store/videos/") || !strings.HasPrefix(v.ThumbnailURL, "http://store/thumbnails/") {
		t.Fatalf("unexpected URLs: %q %q", v.VideoURL, v.ThumbnailURL)
	}
	if len(store.uploads) != 2 {
		t.Fatalf("want 2 uploads, got %v", store.uploads)
	}
}

func TestVideoPublish_StorageFailureLeavesNoRow(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewVideoService(db, &stubUploader{err: errors.New("boom")})

	_, err := svc.Publish(context.Background(), "u1", "T", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("want ErrUploadFailed, got %v", err)
	}
	var n int64
	db.Model(&domain.Video{}).Count(&n)
	if n != 0 {
		t.Fatalf("video row written despite failed upload")
	}
}

func TestVideoUpdate_BlankFieldsPreserveOriginals(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewVideoService(db, &stubUploader{})
	v, err := svc.Publish(context.Background(), "u1", "Original", "desc", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// Present-but-blank fields must not clobber stored values.
	got, err := svc.Update(context.Background(), "u1", v.ID, VideoPatch{
		Title:       ptr("   "),
		Description: ptr("new desc"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "Original" || got.Description != "new desc" {
		t.Fatalf("patch semantics wrong: %+v", got)
	}

	// Nil fields are untouched too.
	got, err = svc.Update(context.Background(), "u1", v.ID, VideoPatch{Title: ptr("Renamed")})
	if err != nil || got.Title != "Renamed" || got.Description != "new desc" {
		t.Fatalf("second patch: got=%+v err=%v", got, err)
	}
}

func TestVideoUpdate_OwnershipEnforced(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svcUser(t, db, "u2", "bob")
	svc := NewVideoService(db, &stubUploader{})
	v, _ := svc.Publish(context.Background(), "u1", "T", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)

	if _, err := svc.Update(context.Background(), "u2", v.ID, VideoPatch{Title: ptr("X")}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("update: want ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u2", v.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("delete: want ErrNotOwner, got %v", err)
	}
	if _, err := svc.TogglePublish(context.Background(), "u2", v.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("toggle: want ErrNotOwner, got %v", err)
	}
}

func TestVideoTogglePublish_Involution(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewVideoService(db, &stubUploader{})
	v, _ := svc.Publish(context.Background(), "u1", "T", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)

	once, err := svc.TogglePublish(context.Background(), "u1", v.ID)
	if err != nil || once.IsPublished {
		t.Fatalf("first toggle: published=%v err=%v", once.IsPublished, err)
	}
	twice, err := svc.TogglePublish(context.Background(), "u1", v.ID)
	if err != nil || !twice.IsPublished {
		t.Fatalf("second toggle: published=%v err=%v", twice.IsPublished, err)
	}
}

func TestVideoDelete_ThenGetNotFound(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewVideoService(db, &stubUploader{})
	v, _ := svc.Publish(context.Background(), "u1", "T", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)

	if err := svc.Delete(context.Background(), "u1", v.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), v.ID); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("want ErrVideoNotFound, got %v", err)
	}
}

func TestVideoList_InvalidSortFallsBack(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewVideoService(db, &stubUploader{})
	for i := 0; i < 3; i++ {
		_, _ = svc.Publish(context.Background(), "u1", fmt.Sprintf("Clip %d", i), "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	}

	got, err := svc.List(context.Background(), ListOptions{SortBy: "evil; DROP TABLE videos", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 videos, got %d", len(got))
	}
}
