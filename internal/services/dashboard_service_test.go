package services

import (
	"context"
	"strings"
	"testing"

	"github.com/clipstream/go-video-backend/internal/domain"
)

func TestDashboardStats_EmptyChannelIsZeros(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewDashboardService(db)

	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVideos != 0 || stats.TotalViews != 0 || stats.TotalSubscribers != 0 || stats.TotalLikes != 0 {
		t.Fatalf("want zeros, got %+v", stats)
	}
}

func TestDashboardStats_Aggregates(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svcUser(t, db, "u2", "bob")
	videos := NewVideoService(db, &stubUploader{})
	v1, _ := videos.Publish(context.Background(), "u1", "One", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	v2, _ := videos.Publish(context.Background(), "u1", "Two", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	db.Model(&domain.Video{}).Where("id = ?", v1.ID).Update("views", 100)
	db.Model(&domain.Video{}).Where("id = ?", v2.ID).Update("views", 50)

	likes := NewLikeService(db)
	_, _ = likes.ToggleVideo(context.Background(), "u2", v1.ID)
	_, _ = likes.ToggleVideo(context.Background(), "u2", v2.ID)
	subs := NewSubscriptionService(db)
	_, _ = subs.Toggle(context.Background(), "u2", "u1")

	svc := NewDashboardService(db)
	stats, err := svc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVideos != 2 || stats.TotalViews != 150 || stats.TotalSubscribers != 1 || stats.TotalLikes != 2 {
		t.Fatalf("unexpected aggregates: %+v", stats)
	}
}

func TestDashboardVideos_IncludesUnpublished(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	videos := NewVideoService(db, &stubUploader{})
	v, _ := videos.Publish(context.Background(), "u1", "Draft", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	if _, err := videos.TogglePublish(context.Background(), "u1", v.ID); err != nil {
		t.Fatalf("unpublish: %v", err)
	}

	svc := NewDashboardService(db)
	got, err := svc.Videos(context.Background(), "u1", 1, 10)
	if err != nil || len(got) != 1 || got[0].IsPublished {
		t.Fatalf("Videos: got=%+v err=%v", got, err)
	}
}
