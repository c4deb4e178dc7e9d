package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPlaylistCreateAndGet(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewPlaylistService(db)

	if _, err := svc.Create(context.Background(), "u1", "  ", "d"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name: want ErrEmptyName, got %v", err)
	}
	p, err := svc.Create(context.Background(), "u1", " Watch   later ", "queue")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "Watch later" {
		t.Fatalf("name not normalized: %q", p.Name)
	}

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("Get: got=%+v err=%v", got, err)
	}
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("want ErrPlaylistNotFound, got %v", err)
	}
}

func TestPlaylistListByUser(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svc := NewPlaylistService(db)
	_, _ = svc.Create(context.Background(), "u1", "A", "")
	_, _ = svc.Create(context.Background(), "u1", "B", "")

	if _, err := svc.ListByUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user: want ErrUserNotFound, got %v", err)
	}
	got, err := svc.ListByUser(context.Background(), "u1")
	if err != nil || len(got) != 2 {
		t.Fatalf("ListByUser: len=%d err=%v", len(got), err)
	}
}

func TestPlaylistMembership(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svcUser(t, db, "u2", "bob")
	videos := NewVideoService(db, &stubUploader{})
	v1, _ := videos.Publish(context.Background(), "u1", "One", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	v2, _ := videos.Publish(context.Background(), "u1", "Two", "", Upload{Reader: strings.NewReader("x"), Size: 1}, nil)
	svc := NewPlaylistService(db)
	p, _ := svc.Create(context.Background(), "u1", "Mix", "")

	if err := svc.AddVideo(context.Background(), "u2", p.ID, v1.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("add by non-owner: want ErrNotOwner, got %v", err)
	}
	if err := svc.AddVideo(context.Background(), "u1", p.ID, "missing"); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("missing video: want ErrVideoNotFound, got %v", err)
	}
	if err := svc.AddVideo(context.Background(), "u1", p.ID, v1.ID); err != nil {
		t.Fatalf("add v1: %v", err)
	}
	if err := svc.AddVideo(context.Background(), "u1", p.ID, v2.ID); err != nil {
		t.Fatalf("add v2: %v", err)
	}
	if err := svc.AddVideo(context.Background(), "u1", p.ID, v1.ID); !errors.Is(err, ErrDuplicatePlaylistVideo) {
		t.Fatalf("duplicate add: want ErrDuplicatePlaylistVideo, got %v", err)
	}

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil || len(got.Videos) != 2 || got.Videos[0].ID != v1.ID {
		t.Fatalf("membership: got=%+v err=%v", got, err)
	}

	if err := svc.RemoveVideo(context.Background(), "u2", p.ID, v1.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("remove by non-owner: want ErrNotOwner, got %v", err)
	}
	if err := svc.RemoveVideo(context.Background(), "u1", p.ID, v1.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// Removing a video that is not in the playlist is a no-op.
	if err := svc.RemoveVideo(context.Background(), "u1", p.ID, v1.ID); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestPlaylistUpdateDelete_OwnershipEnforced(t *testing.T) {
	db := newSvcDB(t)
	svcUser(t, db, "u1", "alice")
	svcUser(t, db, "u2", "bob")
	svc := NewPlaylistService(db)
	p, _ := svc.Create(context.Background(), "u1", "Mix", "old")

	if _, err := svc.Update(context.Background(), "u2", p.ID, PlaylistPatch{Name: ptr("X")}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("update by non-owner: want ErrNotOwner, got %v", err)
	}
	got, err := svc.Update(context.Background(), "u1", p.ID, PlaylistPatch{Description: ptr("new")})
	if err != nil || got.Name != "Mix" || got.Description != "new" {
		t.Fatalf("patch: got=%+v err=%v", got, err)
	}

	if err := svc.Delete(context.Background(), "u2", p.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("delete by non-owner: want ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("want ErrPlaylistNotFound, got %v", err)
	}
}
