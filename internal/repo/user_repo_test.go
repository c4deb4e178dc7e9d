package repo

import (
	"context"
	"testing"

	"github.com/clipstream/go-video-backend/internal/domain"
)

func TestCreateUser_DuplicateUsernameOrEmail(t *testing.T) {
	db := newTestDB(t, &domain.User{})

	if _, err := CreateUser(context.Background(), db, "alice", "alice@example.com", "h", ""); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}
	if _, err := CreateUser(context.Background(), db, "alice", "other@example.com", "h", ""); err != ErrDuplicate {
		t.Fatalf("duplicate username: want ErrDuplicate, got %v", err)
	}
	if _, err := CreateUser(context.Background(), db, "alice2", "alice@example.com", "h", ""); err != ErrDuplicate {
		t.Fatalf("duplicate email: want ErrDuplicate, got %v", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	db := newTestDB(t, &domain.User{})
	u, _ := CreateUser(context.Background(), db, "alice", "alice@example.com", "h", "")

	got, err := GetUserByEmail(context.Background(), db, "alice@example.com")
	if err != nil || got.ID != u.ID {
		t.Fatalf("GetUserByEmail: got=%+v err=%v", got, err)
	}
	if _, err := GetUserByEmail(context.Background(), db, "nobody@example.com"); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUserExists(t *testing.T) {
	db := newTestDB(t, &domain.User{})
	u, _ := CreateUser(context.Background(), db, "alice", "alice@example.com", "h", "")

	ok, err := UserExists(context.Background(), db, u.ID)
	if err != nil || !ok {
		t.Fatalf("existing user: ok=%v err=%v", ok, err)
	}
	ok, err = UserExists(context.Background(), db, "missing")
	if err != nil || ok {
		t.Fatalf("missing user: ok=%v err=%v", ok, err)
	}
}
