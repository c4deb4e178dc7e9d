package repo

import (
	"context"
	"testing"

	"github.com/clipstream/go-video-backend/internal/domain"
)

func TestAddPlaylistVideo_AssignsPositionsAndRejectsDuplicates(t *testing.T) {
	db := newTestDB(t, &domain.User{}, &domain.Video{}, &domain.Playlist{}, &domain.PlaylistVideo{})
	seedUser(t, db, "u1", "alice")
	p, err := CreatePlaylist(context.Background(), db, "u1", "Mix", "")
	if err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	v1, _ := CreateVideo(context.Background(), db, "u1", "A", "", "http://v", "")
	v2, _ := CreateVideo(context.Background(), db, "u1", "B", "", "http://v", "")

	if err := AddPlaylistVideo(context.Background(), db, p.ID, v1.ID); err != nil {
		t.Fatalf("add v1: %v", err)
	}
	if err := AddPlaylistVideo(context.Background(), db, p.ID, v2.ID); err != nil {
		t.Fatalf("add v2: %v", err)
	}
	if err := AddPlaylistVideo(context.Background(), db, p.ID, v1.ID); err != ErrDuplicate {
		t.Fatalf("duplicate add: want ErrDuplicate, got %v", err)
	}

	got, err := GetPlaylist(context.Background(), db, p.ID)
	if err != nil {
		t.Fatalf("GetPlaylist: %v", err)
	}
	if len(got.Videos) != 2 || got.Videos[0].ID != v1.ID || got.Videos[1].ID != v2.ID {
		t.Fatalf("insertion order lost: %+v", got.Videos)
	}
}

func TestRemovePlaylistVideo_IdempotentAtRepoLayer(t *testing.T) {
	db := newTestDB(t, &domain.User{}, &domain.Video{}, &domain.Playlist{}, &domain.PlaylistVideo{})
	seedUser(t, db, "u1", "alice")
	p, _ := CreatePlaylist(context.Background(), db, "u1", "Mix", "")
	v, _ := CreateVideo(context.Background(), db, "u1", "A", "", "http://v", "")
	_ = AddPlaylistVideo(context.Background(), db, p.ID, v.ID)

	removed, err := RemovePlaylistVideo(context.Background(), db, p.ID, v.ID)
	if err != nil || !removed {
		t.Fatalf("first remove: removed=%v err=%v", removed, err)
	}
	removed, err = RemovePlaylistVideo(context.Background(), db, p.ID, v.ID)
	if err != nil || removed {
		t.Fatalf("second remove: removed=%v err=%v", removed, err)
	}
}

func TestGetPlaylist_NotFound(t *testing.T) {
	db := newTestDB(t, &domain.Playlist{}, &domain.PlaylistVideo{}, &domain.Video{})
	if _, err := GetPlaylist(context.Background(), db, "missing"); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListPlaylistsByOwner(t *testing.T) {
	db := newTestDB(t, &domain.User{}, &domain.Playlist{})
	seedUser(t, db, "u1", "alice")
	seedUser(t, db, "u2", "bob")
	_, _ = CreatePlaylist(context.Background(), db, "u1", "One", "")
	_, _ = CreatePlaylist(context.Background(), db, "u1", "Two", "")
	_, _ = CreatePlaylist(context.Background(), db, "u2", "Other", "")

	lists, err := ListPlaylistsByOwner(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("ListPlaylistsByOwner: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("want 2 playlists, got %d", len(lists))
	}
}
